package roster

import (
	"fmt"
	"strconv"
	"time"

	"rostersrt/internal/textutil"
)

// Stats summarizes a NormalizeAll pass.
type Stats struct {
	Raw     int
	Valid   int
	Dropped int
}

// NormalizeAll normalizes every raw entry, dropping those that are not
// record-shaped or lack a usable name. Position is the index in raws.
func NormalizeAll(raws []any) ([]Record, Stats) {
	records := make([]Record, 0, len(raws))
	stats := Stats{Raw: len(raws)}
	for i, raw := range raws {
		record, ok := Normalize(raw)
		if !ok {
			stats.Dropped++
			continue
		}
		record.Position = i
		records = append(records, record)
	}
	stats.Valid = len(records)
	return records, stats
}

// Normalize maps one raw entry onto the canonical shape. The boolean is false
// when the entry must be dropped.
func Normalize(raw any) (Record, bool) {
	fields, ok := raw.(map[string]any)
	if !ok {
		return Record{}, false
	}
	name := textField(fields, FieldName)
	if textutil.IsPlaceholder(name) {
		return Record{}, false
	}
	return Record{
		Name:        name,
		FullName:    textField(fields, FieldFullName),
		Nation:      textField(fields, FieldNation),
		NationCode:  textField(fields, FieldNationCode),
		Team:        textField(fields, FieldTeam),
		Date:        textField(fields, FieldDate),
		DateOfBirth: textField(fields, FieldDateOfBirth),
		Roles:       listField(fields, FieldRoles),
		Image:       textField(fields, FieldImage),
		Description: textField(fields, FieldDescription),
		League:      textField(fields, FieldLeague),
		LogoLeague:  textField(fields, FieldLogoLeague),
		Tier:        textField(fields, FieldTier),
		Heros:       listField(fields, FieldHeros),
	}, true
}

func textField(fields map[string]any, field string) string {
	value, ok := Resolve(fields, field)
	if !ok {
		return ""
	}
	return textutil.CleanText(stringify(value))
}

// listField accepts a sequence or a single scalar and drops entries that
// clean to nothing.
func listField(fields map[string]any, field string) []string {
	value, ok := Resolve(fields, field)
	if !ok {
		return nil
	}
	items, isList := value.([]any)
	if !isList {
		items = []any{value}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if isEmpty(item) {
			continue
		}
		cleaned := textutil.CleanText(stringify(item))
		if textutil.IsPlaceholder(cleaned) {
			continue
		}
		out = append(out, cleaned)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.DateOnly)
	default:
		return fmt.Sprint(v)
	}
}
