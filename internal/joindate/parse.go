package joindate

import (
	"strings"
	"time"
)

// Sentinel is returned for dates that cannot be parsed. It sorts before every
// date a roster can realistically carry.
var Sentinel = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// strictLayouts are tried in order; the first that consumes the whole input
// wins. Single-digit days and months are accepted.
var strictLayouts = []string{
	"2006-1-2",
	"2.1.2006",
	"2/1/2006",
	"2006/1/2",
}

// Parser converts free-form join dates into comparable times.
type Parser struct {
	// NaturalLanguage enables the Indonesian/English month-name fallback.
	NaturalLanguage bool
}

// Parse returns the parsed date or Sentinel. It never fails.
func (p Parser) Parse(text string) time.Time {
	if parsed, ok := p.Lookup(text); ok {
		return parsed
	}
	return Sentinel
}

// Lookup reports the parsed date and whether any format matched.
func (p Parser) Lookup(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	if parsed, ok := parseStrict(text); ok {
		return parsed, true
	}
	if p.NaturalLanguage {
		return parseNatural(text)
	}
	return time.Time{}, false
}

// ParseValue is Parse for decoded values of unknown type; anything that is not
// a string yields Sentinel.
func (p Parser) ParseValue(value any) time.Time {
	text, ok := value.(string)
	if !ok {
		return Sentinel
	}
	return p.Parse(text)
}

func parseStrict(text string) (time.Time, bool) {
	for _, layout := range strictLayouts {
		parsed, err := time.ParseInLocation(layout, text, time.UTC)
		if err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
