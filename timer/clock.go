package timer

import "time"

// Clock provides the current instant to the engine and the task queue.
// Readings from time.Now carry a monotonic component, so differences between
// them are unaffected by wall clock adjustments.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when advanced. Used to simulate time.
type ManualClock struct {
	current time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

func (m *ManualClock) Now() time.Time {
	return m.current
}

func (m *ManualClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
