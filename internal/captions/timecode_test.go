package captions

import (
	"math"
	"testing"
)

func TestFormatTimecode(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00,000"},
		{2, "00:00:02,000"},
		{3661.5, "01:01:01,500"},
		{59.9996, "00:01:00,000"},
		{12.0004, "00:00:12,000"},
		{360000, "100:00:00,000"},
		{-1, "00:00:00,000"},
		{math.NaN(), "00:00:00,000"},
	}
	for _, tt := range tests {
		if got := FormatTimecode(tt.seconds); got != tt.want {
			t.Errorf("FormatTimecode(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatTimecodeMillisecondBoundary(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		// 2.0005 is stored as 2.00050000000000016..., just above the tie.
		{"stored above tie", 2.0005, "00:00:02,001"},
		// 0.0625 and 0.1875 are exact binary ties and round to even.
		{"exact tie rounds down to even", 0.0625, "00:00:00,062"},
		{"exact tie rounds up to even", 0.1875, "00:00:00,188"},
		{"below half", 1.0004, "00:00:01,000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimecode(tt.seconds); got != tt.want {
				t.Fatalf("FormatTimecode(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestParseTimecodeRoundTrip(t *testing.T) {
	for _, value := range []string{"00:00:02,000", "01:01:01,500", "123:59:59,999"} {
		seconds, err := ParseTimecode(value)
		if err != nil {
			t.Fatalf("ParseTimecode(%q) returned error: %v", value, err)
		}
		if got := FormatTimecode(seconds); got != value {
			t.Fatalf("round trip of %q produced %q", value, got)
		}
	}
	if got, err := ParseTimecode("00:00:01.250"); err != nil || got != 1.25 {
		t.Fatalf("expected period separator to parse, got %v, %v", got, err)
	}
	for _, bad := range []string{"", "00:00:01", "00:61:00,000", "aa:bb:cc,ddd"} {
		if _, err := ParseTimecode(bad); err == nil {
			t.Errorf("ParseTimecode(%q) expected error", bad)
		}
	}
}
