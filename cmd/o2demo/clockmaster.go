package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/hyperjiang/o2sched"
	"github.com/urfave/cli"
)

// clockmaster runs a status handler on the global domain that sends itself
// again period seconds later, until the duration elapses.
func clockmaster(ctx *cli.Context) error {
	opts, err := options(ctx)
	if err != nil {
		return err
	}
	period := ctx.Float64("period")
	out := ctx.App.Writer

	var c *o2sched.Coordinator
	reports := 0
	handler := o2sched.NewHandlerFunc(func(d o2sched.Dispatch, ref o2sched.Ref) {
		d.Release(ref)
		reports++
		global, _ := c.GlobalTime()
		fmt.Fprintf(out, "clockmaster: local time %.3f global time %.3f\n", c.LocalTime(), global)
		if err := d.Send(global+period, "/server/clockmaster", nil); err != nil {
			fmt.Fprintf(out, "clockmaster: %v\n", err)
		}
	})

	c = o2sched.New(append(opts,
		o2sched.WithHandler(handler),
		o2sched.WithGlobalClock(o2sched.OffsetClock(ctx.Float64("offset"))),
	)...)
	if err := c.EnableGlobal(); err != nil {
		return err
	}
	if err := c.Send(o2sched.Global, 0, "/server/clockmaster", nil); err != nil {
		return err
	}

	runCtx, cancel := context.WithTimeout(context.Background(), ctx.Duration("duration"))
	defer cancel()
	if err := c.Run(runCtx); !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	fmt.Fprintf(out, "clockmaster: %d reports\n", reports)
	return nil
}
