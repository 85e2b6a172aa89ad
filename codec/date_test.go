package codec

import (
	"testing"
	"time"
)

func TestParseDate_Layouts(t *testing.T) {
	for _, in := range []string{
		"2025-01-01T00:00:00Z",
		"2025-01-01T09:30:00.123+09:00",
		"2025-01-01",
		"2025-01-01 10:00:00",
		"2025-01",
		"Mon, 02 Jan 2006 15:04:05 MST",
		"January 2, 2006",
		" 2025-01-01 ",
	} {
		if _, err := ParseDate(in); err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "not a date", "2025-13-01", "01/02/2025"} {
		if _, err := ParseDate(in); err != ErrInvalidDate {
			t.Fatalf("%q: expected ErrInvalidDate, got %v", in, err)
		}
	}
}

func TestFormatDate(t *testing.T) {
	in := time.Date(2025, 1, 1, 9, 0, 0, 0, time.FixedZone("JST", 9*3600))
	if got := FormatDate(in); got != "2025-01-01T00:00:00Z" {
		t.Fatalf("unexpected rendering: %s", got)
	}
	frac := time.Date(2025, 1, 1, 0, 0, 0, 500_000_000, time.UTC)
	if got := FormatDate(frac); got != "2025-01-01T00:00:00.5Z" {
		t.Fatalf("unexpected rendering: %s", got)
	}
}
