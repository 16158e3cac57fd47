package o2sched

import "log"

// Handler receives due messages. It takes ownership of ref and must either
// release it to the pool or schedule it again.
type Handler interface {
	Handle(d Dispatch, ref Ref)
}

// HandlerFunc is a function type that implements the Handler interface.
type HandlerFunc func(d Dispatch, ref Ref)

func (f HandlerFunc) Handle(d Dispatch, ref Ref) {
	f(d, ref)
}

// NewHandlerFunc creates a new HandlerFunc.
// It is a convenience function to create a Handler from a function.
func NewHandlerFunc(f HandlerFunc) Handler {
	return HandlerFunc(f)
}

var defaultHandler = NewHandlerFunc(func(d Dispatch, ref Ref) {
	m := d.Message(ref)
	log.Printf("[%s] delivering %s at %g\n", d.Domain(), m.Address, m.Timestamp)
	d.Release(ref)
})

// Dispatch is passed to a Handler for every delivered message. It names the
// scheduler that made the delivery, so follow-up messages scheduled through
// it stay in the same time domain.
type Dispatch struct {
	s *Scheduler
}

// Domain is the time domain of the delivering scheduler.
func (d Dispatch) Domain() Domain { return d.s.domain }

// Time is the delivering scheduler's horizon, which is the timestamp of the
// message being delivered unless it arrived late.
func (d Dispatch) Time() float64 { return d.s.horizon }

// Pool is the pool the delivered message belongs to.
func (d Dispatch) Pool() *Pool { return d.s.pool }

// Message resolves ref in the delivering scheduler's pool.
func (d Dispatch) Message(ref Ref) *Message { return d.s.pool.Get(ref) }

// Release returns ref to the pool.
func (d Dispatch) Release(ref Ref) { d.s.pool.Release(ref) }

// Schedule submits ref to the delivering scheduler.
func (d Dispatch) Schedule(ref Ref) { d.s.Schedule(ref) }

// Send builds a message and schedules it on the delivering scheduler.
func (d Dispatch) Send(timestamp float64, address string, payload []byte) error {
	ref, err := build(d.s.pool, timestamp, address, payload)
	if err != nil {
		return err
	}
	d.s.Schedule(ref)
	return nil
}

// build allocates a message and fills it.
func build(p *Pool, timestamp float64, address string, payload []byte) (Ref, error) {
	ref, err := p.AllocSize(len(payload))
	if err != nil {
		return NoRef, err
	}
	m := p.Get(ref)
	m.Timestamp = timestamp
	m.Address = address
	if ref, err = p.Append(ref, payload...); err != nil {
		p.Release(ref)
		return NoRef, err
	}
	return ref, nil
}
