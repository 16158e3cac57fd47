package o2sched

import (
	"context"
	"fmt"
	"time"
)

// Coordinator drives a local and a global scheduler from one poll loop.
// The local scheduler is started at construction; the global one only runs
// after EnableGlobal.
//
// A Coordinator is single threaded: Poll, Schedule, Send and handlers all run
// on the caller's goroutine.
type Coordinator struct {
	Options       // inherited options
	local         *Scheduler
	global        *Scheduler
	globalEnabled bool
}

// New creates a coordinator and starts its local scheduler at the current
// local time.
func New(opts ...Option) *Coordinator {
	o := NewOptions(opts...)
	c := &Coordinator{
		Options: o,
		local:   newScheduler(Local, o),
		global:  newScheduler(Global, o),
	}
	c.local.Start(c.LocalClock.LocalTime())

	return c
}

// Scheduler returns the scheduler of domain.
func (c *Coordinator) Scheduler(domain Domain) *Scheduler {
	if domain == Global {
		return c.global
	}
	return c.local
}

// Start restarts the scheduler of domain at startTime, returning any pending
// messages to the pool.
func (c *Coordinator) Start(domain Domain, startTime float64) {
	c.Scheduler(domain).Start(startTime)
}

// EnableGlobal activates the global domain. The global scheduler is started
// at the current global time unless it was started already.
func (c *Coordinator) EnableGlobal() error {
	if c.GlobalClock == nil {
		return ErrNoGlobalClock
	}
	if !c.global.Started() {
		c.global.Start(c.GlobalClock.LocalToGlobal(c.LocalClock.LocalTime()))
	}
	c.globalEnabled = true
	c.Logger.Printf("[%s] domain enabled at %g\n", Global, c.global.Horizon())

	return nil
}

// GlobalEnabled reports whether the global domain is active.
func (c *Coordinator) GlobalEnabled() bool { return c.globalEnabled }

// LocalTime is the current local time.
func (c *Coordinator) LocalTime() float64 { return c.LocalClock.LocalTime() }

// GlobalTime is the current global time, available once the global domain
// is enabled.
func (c *Coordinator) GlobalTime() (float64, error) {
	if !c.globalEnabled {
		return 0, ErrNoClock
	}
	return c.GlobalClock.LocalToGlobal(c.LocalClock.LocalTime()), nil
}

// Poll delivers everything due on the local domain, then on the global
// domain if it is enabled.
func (c *Coordinator) Poll() {
	now := c.LocalClock.LocalTime()
	c.local.DispatchUntil(now)

	if c.globalEnabled {
		c.global.DispatchUntil(c.GlobalClock.LocalToGlobal(now))
	}
}

// Schedule submits ref to domain. Global submissions fail with ErrNoClock
// until EnableGlobal; the caller keeps ownership of ref in that case.
func (c *Coordinator) Schedule(domain Domain, ref Ref) error {
	if domain == Global && !c.globalEnabled {
		return fmt.Errorf("schedule message %d: %w", ref, ErrNoClock)
	}
	c.Scheduler(domain).Schedule(ref)

	return nil
}

// Send builds a message from the pool and schedules it on domain. A
// timestamp behind the domain's horizon, such as 0, is delivered at once.
func (c *Coordinator) Send(domain Domain, timestamp float64, address string, payload []byte) error {
	if domain == Global && !c.globalEnabled {
		return fmt.Errorf("send %s: %w", address, ErrNoClock)
	}
	ref, err := build(c.Pool, timestamp, address, payload)
	if err != nil {
		return fmt.Errorf("send %s: %w", address, err)
	}
	c.Scheduler(domain).Schedule(ref)

	return nil
}

// Run polls every PollInterval until ctx is done, and returns ctx.Err().
// It blocks the calling goroutine, which becomes the scheduling thread.
func (c *Coordinator) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.PollInterval)
	defer ticker.Stop()

	c.Poll()
	for {
		select {
		case <-ticker.C:
			c.Poll()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
