package engine

import "time"

// Clock is the time seam: the engine never reads wall-clock time
// directly, so tests can pin "now" and "today".
type Clock interface {
	Now() time.Time
}

// SystemClock reads the device-local time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Today formats a calendar day in the engine's date layout.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// Yesterday returns the calendar day before the given one. Invalid
// input yields an empty string, which never matches a stored date.
func Yesterday(day string) string {
	t, err := time.Parse(DateLayout, day)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(DateLayout)
}
