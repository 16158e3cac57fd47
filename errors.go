package o2sched

import "errors"

var (
	// ErrPoolExhausted is returned when the pool has reached its slot limit
	// and the free list is empty.
	ErrPoolExhausted = errors.New("o2sched: message pool exhausted")
	// ErrMessageTooLarge is returned when a requested capacity exceeds the
	// configured maximum message size.
	ErrMessageTooLarge = errors.New("o2sched: message too large")
	// ErrNoClock is returned when a message is submitted to the global domain
	// before the global scheduler is enabled.
	ErrNoClock = errors.New("o2sched: global clock not enabled")
	// ErrNoGlobalClock is returned by EnableGlobal when no GlobalClock is set.
	ErrNoGlobalClock = errors.New("o2sched: no global clock configured")
	// ErrInvalidConfig is returned when a configuration file cannot be used.
	ErrInvalidConfig = errors.New("o2sched: invalid config")
)
