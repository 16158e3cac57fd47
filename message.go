package o2sched

// Ref addresses a message slot in a Pool. Refs are stable for the lifetime of
// the pool; a released Ref may be handed out again by a later allocation.
type Ref int32

// NoRef is the empty link.
const NoRef Ref = -1

// Message is a pooled payload carrier with a delivery timestamp.
//
// A message is linked into at most one list at a time: the pool's free list or
// one bin of one Scheduler. The next field is only touched by those lists.
type Message struct {
	// Timestamp is the delivery time in seconds, in the domain of the
	// scheduler the message is submitted to.
	Timestamp float64
	// Address is the path the dispatch collaborator resolves to handlers.
	Address string

	data []byte
	ref  Ref
	next Ref
}

// Ref returns the slot handle of m.
func (m *Message) Ref() Ref { return m.ref }

// Bytes returns the written payload. The slice is only valid until the
// message is grown or released.
func (m *Message) Bytes() []byte { return m.data }

// Len is the number of payload bytes written.
func (m *Message) Len() int { return len(m.data) }

// Cap is the payload capacity before the message must grow.
func (m *Message) Cap() int { return cap(m.data) }

// Truncate shortens the payload to n bytes, keeping capacity.
func (m *Message) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(m.data) {
		m.data = m.data[:n]
	}
}

func (m *Message) reset() {
	m.Timestamp = 0
	m.Address = ""
	m.data = m.data[:0]
	m.next = NoRef
}
