package o2sched_test

import (
	"testing"

	"github.com/hyperjiang/o2sched"
	"github.com/stretchr/testify/require"
)

func TestPoolReuse(t *testing.T) {
	should := require.New(t)
	p := o2sched.NewPool()

	const n = 16
	refs := make([]o2sched.Ref, 0, n)
	for i := 0; i < n; i++ {
		ref, err := p.Alloc()
		should.NoError(err)
		should.Equal(o2sched.DefaultMessageSize, p.Get(ref).Cap())
		refs = append(refs, ref)
	}
	for _, ref := range refs {
		p.Release(ref)
	}
	should.Equal(n, p.Free())

	for i := 0; i < n; i++ {
		_, err := p.Alloc()
		should.NoError(err)
	}
	should.Equal(n, p.Len(), "no fresh slots while the free list has some")
	should.Zero(p.Free())
}

func TestPoolRecycledMessageIsReset(t *testing.T) {
	should := require.New(t)
	p := o2sched.NewPool()

	ref, err := p.Alloc()
	should.NoError(err)
	m := p.Get(ref)
	m.Timestamp = 3.5
	m.Address = "/a/b"
	_, err = p.Append(ref, 1, 2, 3)
	should.NoError(err)
	p.Release(ref)

	again, err := p.Alloc()
	should.NoError(err)
	should.Equal(ref, again)
	m = p.Get(again)
	should.Zero(m.Timestamp)
	should.Empty(m.Address)
	should.Zero(m.Len())
}

func TestPoolGrowPreservesBytes(t *testing.T) {
	should := require.New(t)
	p := o2sched.NewPool(o2sched.PoolMessageSize(8))

	ref, err := p.Alloc()
	should.NoError(err)
	ref, err = p.Append(ref, []byte("timestamp")...)
	should.NoError(err)
	should.GreaterOrEqual(p.Get(ref).Cap(), 9)

	ref, err = p.Grow(ref, 100)
	should.NoError(err)
	m := p.Get(ref)
	should.GreaterOrEqual(m.Cap(), 100)
	should.Equal("timestamp", string(m.Bytes()))

	// growing to a smaller size is a no-op
	same, err := p.Grow(ref, 4)
	should.NoError(err)
	should.Equal(ref, same)
	should.Equal(m.Cap(), p.Get(same).Cap())
}

func TestPoolAllocSizeGrowsRecycledSlot(t *testing.T) {
	should := require.New(t)
	p := o2sched.NewPool()

	ref, err := p.Alloc()
	should.NoError(err)
	p.Release(ref)

	big, err := p.AllocSize(1000)
	should.NoError(err)
	should.Equal(ref, big)
	should.GreaterOrEqual(p.Get(big).Cap(), 1000)
	should.Equal(1, p.Len())
}

func TestPoolExhausted(t *testing.T) {
	should := require.New(t)
	p := o2sched.NewPool(o2sched.PoolMaxMessages(2))

	a, err := p.Alloc()
	should.NoError(err)
	_, err = p.Alloc()
	should.NoError(err)

	_, err = p.Alloc()
	should.ErrorIs(err, o2sched.ErrPoolExhausted)

	p.Release(a)
	_, err = p.Alloc()
	should.NoError(err)
}

func TestPoolMaxMessageSize(t *testing.T) {
	should := require.New(t)
	p := o2sched.NewPool(o2sched.PoolMessageSize(16), o2sched.PoolMaxMessageSize(32))

	_, err := p.AllocSize(64)
	should.ErrorIs(err, o2sched.ErrMessageTooLarge)

	ref, err := p.Alloc()
	should.NoError(err)
	ref, err = p.Append(ref, make([]byte, 20)...)
	should.NoError(err)
	should.Equal(32, p.Get(ref).Cap(), "doubling is capped at the limit")

	_, err = p.Append(ref, make([]byte, 20)...)
	should.ErrorIs(err, o2sched.ErrMessageTooLarge)
	should.Equal(20, p.Get(ref).Len())
}

func TestMessageTruncate(t *testing.T) {
	should := require.New(t)
	p := o2sched.NewPool()

	ref, err := p.Append(mustAlloc(t, p), []byte("abcdef")...)
	should.NoError(err)
	m := p.Get(ref)
	should.Equal(ref, m.Ref())

	m.Truncate(3)
	should.Equal("abc", string(m.Bytes()))
	m.Truncate(10)
	should.Equal(3, m.Len())
	m.Truncate(-1)
	should.Zero(m.Len())
	should.Equal(o2sched.DefaultMessageSize, m.Cap())
}

func mustAlloc(t *testing.T, p *o2sched.Pool) o2sched.Ref {
	t.Helper()
	ref, err := p.Alloc()
	require.NoError(t, err)
	return ref
}
