package timeline

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"rostersrt/internal/joindate"
	"rostersrt/internal/roster"
	"rostersrt/internal/textutil"
)

// Policy names accepted in configuration.
const (
	PolicyOldestFirst = "oldest_first"
	PolicyNewestFirst = "newest_first"
)

// Entry is a record with its sort keys precomputed.
type Entry struct {
	Record roster.Record
	Joined time.Time
	// Parsed is false when Joined is the sentinel for unparseable text.
	Parsed  bool
	NameKey string
}

// Policy orders precomputed entries. Less must be a strict weak ordering that
// never consults input order; Order applies Position as the final tiebreak.
type Policy interface {
	Name() string
	Key(name string) string
	Less(a, b Entry) bool
}

// OldestFirst sorts ascending by join date, unparseable dates first.
type OldestFirst struct {
	CaseSensitive bool
}

func (OldestFirst) Name() string { return PolicyOldestFirst }

func (p OldestFirst) Key(name string) string {
	if p.CaseSensitive {
		return name
	}
	return textutil.FoldKey(name)
}

func (OldestFirst) Less(a, b Entry) bool {
	if a.Parsed != b.Parsed {
		return !a.Parsed
	}
	if !a.Joined.Equal(b.Joined) {
		return a.Joined.Before(b.Joined)
	}
	return a.NameKey < b.NameKey
}

// NewestFirstMissingLast sorts dated records newest first and places every
// record without date text after them.
type NewestFirstMissingLast struct{}

func (NewestFirstMissingLast) Name() string { return PolicyNewestFirst }

func (NewestFirstMissingLast) Key(name string) string { return textutil.FoldKey(name) }

func (NewestFirstMissingLast) Less(a, b Entry) bool {
	aHas, bHas := a.Record.HasDate(), b.Record.HasDate()
	if aHas != bHas {
		return aHas
	}
	if aHas && a.Parsed != b.Parsed {
		return a.Parsed
	}
	if aHas && !a.Joined.Equal(b.Joined) {
		return a.Joined.After(b.Joined)
	}
	return a.NameKey < b.NameKey
}

// PolicyFor resolves a configured policy name.
func PolicyFor(name string, caseSensitive bool) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PolicyOldestFirst, "":
		return OldestFirst{CaseSensitive: caseSensitive}, nil
	case PolicyNewestFirst:
		return NewestFirstMissingLast{}, nil
	default:
		return nil, fmt.Errorf("ordering policy: unsupported value %q", name)
	}
}

// Order returns records in display order without modifying the input.
func Order(records []roster.Record, policy Policy, parser joindate.Parser) []roster.Record {
	entries := make([]Entry, len(records))
	for i, record := range records {
		joined, parsed := parser.Lookup(record.Date)
		if !parsed {
			joined = joindate.Sentinel
		}
		entries[i] = Entry{
			Record:  record,
			Joined:  joined,
			Parsed:  parsed,
			NameKey: policy.Key(record.Name),
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if policy.Less(a, b) {
			return true
		}
		if policy.Less(b, a) {
			return false
		}
		return a.Record.Position < b.Record.Position
	})
	ordered := make([]roster.Record, len(entries))
	for i, entry := range entries {
		ordered[i] = entry.Record
	}
	return ordered
}
