package o2sched

import "github.com/aristanetworks/goarista/monotime"

// LocalClock reports monotonic local time in seconds.
type LocalClock interface {
	LocalTime() float64
}

// LocalClockFunc adapts a function to LocalClock.
type LocalClockFunc func() float64

// LocalTime implements LocalClock.
func (f LocalClockFunc) LocalTime() float64 { return f() }

// GlobalClock converts local time to synchronized global time. It is only
// consulted once the global domain is enabled.
type GlobalClock interface {
	LocalToGlobal(local float64) float64
}

// GlobalClockFunc adapts a function to GlobalClock.
type GlobalClockFunc func(local float64) float64

// LocalToGlobal implements GlobalClock.
func (f GlobalClockFunc) LocalToGlobal(local float64) float64 { return f(local) }

// OffsetClock is a GlobalClock that adds a fixed offset to local time.
type OffsetClock float64

// LocalToGlobal implements GlobalClock.
func (o OffsetClock) LocalToGlobal(local float64) float64 { return local + float64(o) }

type monotonicClock struct {
	base uint64
}

// NewMonotonicClock returns a LocalClock counting seconds from its creation.
func NewMonotonicClock() LocalClock {
	return &monotonicClock{base: monotime.Now()}
}

func (c *monotonicClock) LocalTime() float64 {
	return monotime.Since(c.base).Seconds()
}
