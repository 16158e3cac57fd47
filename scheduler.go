package o2sched

// maxStep bounds a single dispatch pass so the cursor never laps the wheel.
const maxStep = 1.0

// Scheduler holds timestamped messages for one time domain until they are
// due. It is not safe for concurrent use.
type Scheduler struct {
	domain  Domain
	pool    *Pool
	wheel   *wheel
	handler Handler
	logger  Logger
	lastBin int64   // bin to revisit on the next pass, never wrapped
	horizon float64 // time up to which dispatch has completed
	started bool
}

// NewScheduler creates a scheduler for domain. It must be started before use.
func NewScheduler(domain Domain, opts ...Option) *Scheduler {
	return newScheduler(domain, NewOptions(opts...))
}

func newScheduler(domain Domain, o Options) *Scheduler {
	return &Scheduler{
		domain:  domain,
		pool:    o.Pool,
		wheel:   newWheel(o.Pool, o.SlotNum),
		handler: o.Handler,
		logger:  domainLogger{Logger: o.Logger, domain: domain},
	}
}

// Start empties the scheduler and sets its horizon to startTime. Messages
// still pending are returned to the pool.
func (s *Scheduler) Start(startTime float64) {
	s.wheel.reset()
	s.lastBin = binOf(startTime)
	s.horizon = startTime
	s.started = true
	s.logger.Printf("scheduler started at %g\n", startTime)
}

// Domain returns the time domain of s.
func (s *Scheduler) Domain() Domain { return s.domain }

// Horizon is the time up to which messages have been delivered.
func (s *Scheduler) Horizon() float64 { return s.horizon }

// Started reports whether Start was called.
func (s *Scheduler) Started() bool { return s.started }

// Pending counts the messages waiting in the wheel.
func (s *Scheduler) Pending() int { return s.wheel.len() }

// Schedule takes ownership of ref, whose Timestamp must be set. A message
// that is already behind the horizon is delivered before Schedule returns.
func (s *Scheduler) Schedule(ref Ref) {
	m := s.pool.Get(ref)
	if m.Timestamp < s.horizon {
		s.logger.Printf("message %d at %g is behind %g, delivering now\n",
			ref, m.Timestamp, s.horizon)
		s.deliver(ref)
		return
	}
	s.wheel.insert(ref)
}

// DispatchUntil delivers every message with a timestamp up to until, in
// timestamp order, and moves the horizon to until. Calls with a time behind
// the horizon do nothing.
func (s *Scheduler) DispatchUntil(until float64) {
	if until < s.horizon {
		return
	}
	if until-s.horizon > maxStep {
		s.logger.Printf("time jumped %gs, dispatching in %gs steps\n",
			until-s.horizon, maxStep)
	}
	for s.horizon+maxStep < until {
		s.dispatch(s.horizon + maxStep)
	}
	s.dispatch(until)
}

// dispatch scans bins from lastBin through the bin of until. until must be
// less than the wheel span ahead of the horizon.
func (s *Scheduler) dispatch(until float64) {
	end := binOf(until)
	for ; s.lastBin <= end; s.lastBin++ {
		for {
			ref, ok := s.wheel.popDue(s.lastBin, until)
			if !ok {
				break
			}
			// a handler scheduling earlier than this gets immediate delivery
			if ts := s.pool.Get(ref).Timestamp; ts > s.horizon {
				s.horizon = ts
			}
			s.deliver(ref)
		}
	}
	// the last bin may still hold messages later than until
	s.lastBin--
	s.horizon = until
}

func (s *Scheduler) deliver(ref Ref) {
	s.handler.Handle(Dispatch{s: s}, ref)
}
