package search

import "time"

// Clock is the time source for waits and settle pauses.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// RealClock returns the wall clock. Durations use Go's monotonic reading.
func RealClock() Clock { return realClock{} }
