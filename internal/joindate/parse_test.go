package joindate

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseStrictLayouts(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2019-06-01", date(2019, time.June, 1)},
		{"01.06.2019", date(2019, time.June, 1)},
		{"01/06/2019", date(2019, time.June, 1)},
		{"2019/06/01", date(2019, time.June, 1)},
		{"2019-6-1", date(2019, time.June, 1)},
		{" 2020-01-01 ", date(2020, time.January, 1)},
	}
	var p Parser
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := p.Parse(tt.input); !got.Equal(tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseIsTotal(t *testing.T) {
	var p Parser
	for _, input := range []string{"", "   ", "unknown", "2019-13-01", "31/02/2020", "2019-06-01 extra", "June 2019", "no data"} {
		if got := p.Parse(input); !got.Equal(Sentinel) {
			t.Errorf("Parse(%q) = %v, want sentinel", input, got)
		}
	}
	for _, value := range []any{nil, 2019, 3.5, true, []any{"2019-06-01"}} {
		if got := p.ParseValue(value); !got.Equal(Sentinel) {
			t.Errorf("ParseValue(%v) = %v, want sentinel", value, got)
		}
	}
}

func TestParseNaturalLanguage(t *testing.T) {
	p := Parser{NaturalLanguage: true}
	tests := []struct {
		input string
		want  time.Time
	}{
		{"1 Juni 2019", date(2019, time.June, 1)},
		{"17 Agustus 2021", date(2021, time.August, 17)},
		{"Desember 2020", date(2020, time.December, 1)},
		{"June 1st, 2019", date(2019, time.June, 1)},
		{"Sunday, 3 March 2024", date(2024, time.March, 3)},
		{"Mei 5, 2022", date(2022, time.May, 5)},
		{"2019-06-01", date(2019, time.June, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := p.Parse(tt.input); !got.Equal(tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNaturalLanguageRejectsAmbiguousInput(t *testing.T) {
	p := Parser{NaturalLanguage: true}
	for _, input := range []string{"Juni", "1 Juni", "30 Februari 2020", "June July 2020", "sometime in 2019", "12 34 2019"} {
		if _, ok := p.Lookup(input); ok {
			t.Errorf("Lookup(%q) matched, want no match", input)
		}
	}
}

func TestNaturalLanguageDisabledByDefault(t *testing.T) {
	var p Parser
	if _, ok := p.Lookup("1 Juni 2019"); ok {
		t.Fatalf("expected month names to be ignored without natural language parsing")
	}
}

func TestSentinelSortsBeforeParsedDates(t *testing.T) {
	var p Parser
	if !Sentinel.Before(p.Parse("1900-01-02")) {
		t.Fatalf("expected sentinel before earliest parsed date")
	}
}
