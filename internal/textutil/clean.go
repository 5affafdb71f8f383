package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Placeholder is the literal upstream sentinel meaning "no data".
const Placeholder = "no data"

var whitespaceRun = regexp.MustCompile(`\s+`)

var quoteReplacer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

// CleanText collapses whitespace runs, straightens curly quotes, strips the
// placeholder substring and trims the result.
func CleanText(value string) string {
	if value == "" {
		return ""
	}
	value = norm.NFC.String(value)
	value = whitespaceRun.ReplaceAllString(value, " ")
	value = quoteReplacer.Replace(value)
	value = strings.ReplaceAll(value, Placeholder, "")
	return strings.TrimSpace(value)
}

// IsPlaceholder reports whether value is empty or only the placeholder once
// surrounding whitespace is ignored.
func IsPlaceholder(value string) bool {
	trimmed := strings.TrimSpace(value)
	return trimmed == "" || trimmed == Placeholder
}
