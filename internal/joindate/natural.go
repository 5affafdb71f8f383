package joindate

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// monthNames maps lowercase English and Indonesian month names and their
// common abbreviations.
var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January, "januari": time.January,
	"february": time.February, "feb": time.February, "februari": time.February, "pebruari": time.February,
	"march": time.March, "mar": time.March, "maret": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May, "mei": time.May,
	"june": time.June, "jun": time.June, "juni": time.June,
	"july": time.July, "jul": time.July, "juli": time.July,
	"august": time.August, "aug": time.August, "agustus": time.August, "agu": time.August, "agt": time.August, "ags": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October, "oktober": time.October, "okt": time.October,
	"november": time.November, "nov": time.November, "nop": time.November,
	"december": time.December, "dec": time.December, "desember": time.December, "des": time.December,
}

// ignoredWords may appear around a date without carrying information.
var ignoredWords = map[string]struct{}{
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {}, "friday": {}, "saturday": {}, "sunday": {},
	"mon": {}, "tue": {}, "wed": {}, "thu": {}, "fri": {}, "sat": {}, "sun": {},
	"senin": {}, "selasa": {}, "rabu": {}, "kamis": {}, "jumat": {}, "sabtu": {}, "minggu": {},
	"of": {}, "the": {}, "tanggal": {}, "tgl": {},
}

// parseNatural handles "1 Juni 2019", "June 1st, 2019", "Jun 2019" and
// similar. A year is required and a missing day defaults to the first.
func parseNatural(text string) (time.Time, bool) {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var (
		month    time.Month
		day      int
		year     int
		hasMonth bool
	)
	for _, token := range tokens {
		if m, ok := monthNames[token]; ok {
			if hasMonth {
				return time.Time{}, false
			}
			month, hasMonth = m, true
			continue
		}
		if _, ok := ignoredWords[token]; ok {
			continue
		}
		digits := stripOrdinal(token)
		n, err := strconv.Atoi(digits)
		if err != nil {
			return time.Time{}, false
		}
		switch {
		case len(digits) == 4 && year == 0:
			year = n
		case len(digits) <= 2 && day == 0 && n >= 1 && n <= 31:
			day = n
		default:
			return time.Time{}, false
		}
	}
	if !hasMonth || year == 0 {
		return time.Time{}, false
	}
	if day == 0 {
		day = 1
	}
	parsed := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if parsed.Month() != month || parsed.Day() != day {
		return time.Time{}, false
	}
	return parsed, true
}

func stripOrdinal(token string) string {
	for _, suffix := range []string{"st", "nd", "rd", "th"} {
		if trimmed, ok := strings.CutSuffix(token, suffix); ok && trimmed != "" {
			return trimmed
		}
	}
	return token
}
