package o2sched

import "math"

const (
	// defaultSlotNum bins of binsPerSecond each give a 1.28 second wheel.
	defaultSlotNum = 128
	binsPerSecond  = 100
)

// binOf quantizes t to a 10ms bin number.
func binOf(t float64) int64 {
	return int64(math.Floor(t * binsPerSecond))
}

// wheel is a fixed ring of bins. Each bin heads a chain of pool messages
// sorted by timestamp, ties in insertion order.
type wheel struct {
	pool *Pool
	bins []Ref
	mask int64
}

// newWheel creates a wheel with slotNum bins; slotNum must be a power of two.
func newWheel(pool *Pool, slotNum int) *wheel {
	w := &wheel{
		pool: pool,
		bins: make([]Ref, slotNum),
		mask: int64(slotNum - 1),
	}
	for i := range w.bins {
		w.bins[i] = NoRef
	}
	return w
}

// reset empties every bin, returning linked messages to the pool.
func (w *wheel) reset() {
	for i, ref := range w.bins {
		for ref != NoRef {
			next := w.pool.Get(ref).next
			w.pool.Release(ref)
			ref = next
		}
		w.bins[i] = NoRef
	}
}

func (w *wheel) index(bin int64) int {
	return int(bin & w.mask)
}

// insert links ref after every entry whose timestamp is not later than its own.
func (w *wheel) insert(ref Ref) {
	m := w.pool.Get(ref)
	i := w.index(binOf(m.Timestamp))

	prev := NoRef
	cur := w.bins[i]
	for cur != NoRef {
		c := w.pool.Get(cur)
		if c.Timestamp > m.Timestamp {
			break
		}
		prev, cur = cur, c.next
	}

	m.next = cur
	if prev == NoRef {
		w.bins[i] = ref
	} else {
		w.pool.Get(prev).next = ref
	}
}

// popDue unlinks and returns the head of bin if it is due at until.
// The head is re-read on every call, so the chain may change in between.
func (w *wheel) popDue(bin int64, until float64) (Ref, bool) {
	i := w.index(bin)
	head := w.bins[i]
	if head == NoRef {
		return NoRef, false
	}
	m := w.pool.Get(head)
	if m.Timestamp > until {
		return NoRef, false
	}
	w.bins[i] = m.next
	m.next = NoRef
	return head, true
}

// len counts linked messages.
func (w *wheel) len() int {
	n := 0
	for _, ref := range w.bins {
		for ref != NoRef {
			n++
			ref = w.pool.Get(ref).next
		}
	}
	return n
}
