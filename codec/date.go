package codec

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDate is returned by ParseDate when no supported layout matches.
var ErrInvalidDate = errors.New("codec: invalid date")

// dateLayouts are tried in order. RFC3339 first (trailing zeros optional),
// then the date-only and space-separated forms authors commonly write, then
// the RFC 1123/822 family.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01",
	"2006",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.RFC822,
	time.RFC822Z,
	time.ANSIC,
	time.UnixDate,
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ParseDate parses a date example written in one of the supported layouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// FormatDate renders a native timestamp the way it appears in converted
// output: UTC, RFC3339 with trailing zeros trimmed.
func FormatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
