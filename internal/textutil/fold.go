package textutil

import (
	"golang.org/x/text/cases"
)

// FoldKey returns a case-folded key suitable for case-insensitive ordering.
// A fresh caser is used per call because cases.Caser is not safe for
// concurrent use.
func FoldKey(value string) string {
	return cases.Fold().String(value)
}
