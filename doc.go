// Package o2sched delivers timestamped messages to local handlers in time
// order.
//
// Messages come from a Pool, an arena of reusable payload buffers addressed
// by Ref. A Scheduler holds messages for one time domain in a 128-bin timing
// wheel of 10ms bins and releases them when DispatchUntil reaches their
// timestamp. A Coordinator runs two schedulers: Local, driven by the local
// monotonic clock, and Global, driven by a synchronized clock once
// EnableGlobal is called.
//
// Handlers receive a Dispatch naming the scheduler that delivered the
// message. Scheduling through it keeps follow-up messages in the same domain:
//
//	c := o2sched.New(o2sched.WithHandler(o2sched.NewHandlerFunc(
//		func(d o2sched.Dispatch, ref o2sched.Ref) {
//			defer d.Release(ref)
//			_ = d.Send(d.Time()+0.5, "/next", nil)
//		})))
//	_ = c.Send(o2sched.Local, c.LocalTime()+1, "/first", nil)
//	_ = c.Run(ctx)
//
// Nothing in this package is safe for concurrent use; Poll, Schedule and all
// handlers run on one goroutine.
package o2sched
