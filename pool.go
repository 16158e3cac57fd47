package o2sched

import "fmt"

// DefaultMessageSize is the payload capacity of a message from Alloc.
const DefaultMessageSize = 240

// Pool owns message slots and recycles them through an index free stack.
//
// A Pool is not safe for concurrent use. Releasing a message that is still
// linked into a scheduler corrupts that scheduler.
type Pool struct {
	slots       []*Message
	free        []Ref
	messageSize int
	maxMessages int
	maxSize     int
	logger      Logger
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// PoolMessageSize sets the default payload capacity, ignored if not positive.
func PoolMessageSize(n int) PoolOption {
	return func(p *Pool) {
		if n > 0 {
			p.messageSize = n
		}
	}
}

// PoolMaxMessages caps the number of slots the pool may create. Zero means
// no limit.
func PoolMaxMessages(n int) PoolOption {
	return func(p *Pool) {
		if n >= 0 {
			p.maxMessages = n
		}
	}
}

// PoolMaxMessageSize caps the payload capacity of a single message. Zero
// means no limit.
func PoolMaxMessageSize(n int) PoolOption {
	return func(p *Pool) {
		if n >= 0 {
			p.maxSize = n
		}
	}
}

// PoolLogger sets the logger used to report allocation failures.
func PoolLogger(l Logger) PoolOption {
	return func(p *Pool) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPool creates an empty pool.
func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{
		messageSize: DefaultMessageSize,
		logger:      defaultLogger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Get returns the message stored at ref. The pointer stays valid for the
// lifetime of the pool.
func (p *Pool) Get(ref Ref) *Message {
	return p.slots[ref]
}

// Len is the number of slots ever created.
func (p *Pool) Len() int { return len(p.slots) }

// Free is the number of slots waiting on the free list.
func (p *Pool) Free() int { return len(p.free) }

// Alloc returns a message with at least the default capacity.
func (p *Pool) Alloc() (Ref, error) {
	return p.AllocSize(p.messageSize)
}

// AllocSize returns a message whose payload can hold at least size bytes.
// A recycled slot that is too small is grown before it is returned.
func (p *Pool) AllocSize(size int) (Ref, error) {
	if p.maxSize > 0 && size > p.maxSize {
		return NoRef, fmt.Errorf("alloc %d bytes: %w", size, ErrMessageTooLarge)
	}
	if n := len(p.free); n > 0 {
		ref := p.free[n-1]
		p.free = p.free[:n-1]
		m := p.slots[ref]
		m.reset()
		if cap(m.data) < size {
			m.data = make([]byte, 0, size)
		}
		return ref, nil
	}

	if p.maxMessages > 0 && len(p.slots) >= p.maxMessages {
		p.logger.Printf("pool exhausted at %d messages\n", len(p.slots))
		return NoRef, fmt.Errorf("alloc %d bytes: %w", size, ErrPoolExhausted)
	}

	if size < p.messageSize {
		size = p.messageSize
	}
	ref := Ref(len(p.slots))
	p.slots = append(p.slots, &Message{
		data: make([]byte, 0, size),
		ref:  ref,
		next: NoRef,
	})
	return ref, nil
}

// Grow makes sure ref can hold needed payload bytes, moving the payload to
// larger storage if necessary. Written bytes are preserved. The returned Ref
// is authoritative; the message must not be linked into a scheduler.
func (p *Pool) Grow(ref Ref, needed int) (Ref, error) {
	m := p.slots[ref]
	if cap(m.data) >= needed {
		return ref, nil
	}
	if p.maxSize > 0 && needed > p.maxSize {
		return ref, fmt.Errorf("grow to %d bytes: %w", needed, ErrMessageTooLarge)
	}

	size := cap(m.data) * 2
	if size < needed {
		size = needed
	}
	if p.maxSize > 0 && size > p.maxSize {
		size = p.maxSize
	}
	data := make([]byte, len(m.data), size)
	copy(data, m.data)
	m.data = data
	return ref, nil
}

// Append writes b to the end of the payload, growing the message as needed.
func (p *Pool) Append(ref Ref, b ...byte) (Ref, error) {
	m := p.slots[ref]
	ref, err := p.Grow(ref, len(m.data)+len(b))
	if err != nil {
		return ref, err
	}
	m = p.slots[ref]
	m.data = append(m.data, b...)
	return ref, nil
}

// Release returns ref to the free list. The caller must not use ref again
// until it is handed out by a later allocation.
func (p *Pool) Release(ref Ref) {
	m := p.slots[ref]
	m.next = NoRef
	p.free = append(p.free, ref)
}
