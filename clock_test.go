package o2sched_test

import (
	"testing"
	"time"

	"github.com/hyperjiang/o2sched"
	"github.com/stretchr/testify/require"
)

func TestMonotonicClock(t *testing.T) {
	should := require.New(t)

	c := o2sched.NewMonotonicClock()
	first := c.LocalTime()
	should.GreaterOrEqual(first, 0.0)

	time.Sleep(20 * time.Millisecond)
	second := c.LocalTime()
	should.GreaterOrEqual(second-first, 0.015)
}

func TestGlobalClocks(t *testing.T) {
	should := require.New(t)

	should.Equal(12.5, o2sched.OffsetClock(10).LocalToGlobal(2.5))
	double := o2sched.GlobalClockFunc(func(local float64) float64 { return local * 2 })
	should.Equal(5.0, double.LocalToGlobal(2.5))
}

func TestDomainString(t *testing.T) {
	should := require.New(t)

	should.Equal("local", o2sched.Local.String())
	should.Equal("global", o2sched.Global.String())
	should.Equal("unknown", o2sched.Domain(7).String())
}
