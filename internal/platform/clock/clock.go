package clock

import "time"

// Clock abstracts time so goal evaluation stays deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports local time. Day boundaries are the user's wall-clock
// days, so local time is the right frame for "today" and "yesterday".
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// DayStart returns midnight of the day containing t, in t's location.
func DayStart(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time {
	return f.At
}
