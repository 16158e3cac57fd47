package main

import (
	"fmt"
	"strings"

	"github.com/hyperjiang/o2sched"
	"github.com/urfave/cli"
)

const nAddrs = 20

// pingpong bounces a message between services one and two. Every handler
// sends the next message at its own delivery time, so each follow-up is
// linked into the bin that is being scanned.
func pingpong(ctx *cli.Context) error {
	opts, err := options(ctx)
	if err != nil {
		return err
	}
	count := ctx.Int("count")
	report := ctx.Int("report")
	out := ctx.App.Writer

	received := map[string]int{}
	var sendErr error
	handler := o2sched.NewHandlerFunc(func(d o2sched.Dispatch, ref o2sched.Ref) {
		m := d.Message(ref)
		service := strings.SplitN(strings.TrimPrefix(m.Address, "/"), "/", 2)[0]
		d.Release(ref)

		n := received[service]
		received[service] = n + 1
		if report > 0 && n%report == 0 {
			fmt.Fprintf(out, "service %s received %d messages\n", service, n)
		}
		if received["one"]+received["two"] >= count {
			return
		}

		peer := "two"
		if service == "two" {
			peer = "one"
		}
		path := fmt.Sprintf("/%s/benchmark/%d", peer, n%nAddrs)
		if err := d.Send(d.Time(), path, nil); err != nil && sendErr == nil {
			sendErr = err
		}
	})

	c := o2sched.New(append(opts, o2sched.WithHandler(handler))...)
	if err := c.Send(o2sched.Local, 0, "/one/benchmark/0", nil); err != nil {
		return err
	}
	for received["one"]+received["two"] < count && sendErr == nil {
		c.Poll()
	}
	if sendErr != nil {
		return sendErr
	}

	fmt.Fprintf(out, "exchanged %d messages using %d pooled buffers\n",
		received["one"]+received["two"], c.Pool.Len())
	return nil
}
