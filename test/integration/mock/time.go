package mock

import "time"

// Time is a clock that can be pinned to a date and keeps ticking from there.
type Time struct {
	currentStartTime time.Time
	updatedAt        time.Time
}

// NewTime returns a clock running at wall time.
func NewTime() *Time {
	now := time.Now()
	return &Time{
		currentStartTime: now,
		updatedAt:        now,
	}
}

// SetCurrentTime pins the clock to currentTime.
func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.currentStartTime = currentTime
	t.updatedAt = time.Now()
}

// Now returns the pinned time plus the wall time elapsed since it was pinned.
func (t *Time) Now() time.Time {
	return t.currentStartTime.Add(time.Since(t.updatedAt))
}

// Today returns the current date in YYYY-MM-DD form.
func (t *Time) Today() string {
	return t.Now().Format("2006-01-02")
}

// DaysAgo returns the date n days before the current date in YYYY-MM-DD form.
func (t *Time) DaysAgo(n int) string {
	return t.Now().AddDate(0, 0, -n).Format("2006-01-02")
}
