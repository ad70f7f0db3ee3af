package util

import "time"

const dateLayout = "2006-01-02"

// ParseDate parses a calendar date in YYYY-MM-DD form. Returns (t, true) if it worked.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Today returns the wall-clock date as YYYY-MM-DD.
func Today() string {
	return FormatDate(time.Now())
}
