package joindate

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Display languages for formatted dates.
const (
	LanguageEnglish    = "en"
	LanguageIndonesian = "id"
)

var indonesianMonths = [...]string{
	"januari", "februari", "maret", "april", "mei", "juni",
	"juli", "agustus", "september", "oktober", "november", "desember",
}

// Formatter renders join dates for caption text.
type Formatter struct {
	Parser   Parser
	Language string
	// Unknown replaces absent dates and dates at or before Sentinel.
	Unknown string
}

// Display returns the caption form of a join date: a formatted date when it
// parses, the original text when it does not, and Unknown when it is absent.
func (f Formatter) Display(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return f.Unknown
	}
	parsed, ok := f.Parser.Lookup(text)
	if !ok {
		return text
	}
	if !parsed.After(Sentinel) {
		return f.Unknown
	}
	return f.Format(parsed)
}

// Format renders t as "02 January 2006" in the configured language.
func (f Formatter) Format(t time.Time) string {
	if strings.EqualFold(f.Language, LanguageIndonesian) {
		month := cases.Title(language.Indonesian).String(indonesianMonths[t.Month()-1])
		return fmt.Sprintf("%02d %s %d", t.Day(), month, t.Year())
	}
	return t.Format("02 January 2006")
}
