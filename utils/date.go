package utils

import "time"

const dateLayout = "2006-01-02"

// DateKey formats t as the canonical Day key, in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// WeekdayLabel returns the weekday name for a Day key ("Monday", ...), or ""
// when the date doesn't parse.
func WeekdayLabel(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}
