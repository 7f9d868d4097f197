// File: freelist/ring_test.go
// License: Apache-2.0

package freelist_test

import (
	"math/rand"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastpath/pktpool/api"
	"github.com/fastpath/pktpool/freelist"
)

func TestHandoffRingRequiresPowerOfTwo(t *testing.T) {
	assert.Panics(t, func() { freelist.NewHandoffRing(0) })
	assert.Panics(t, func() { freelist.NewHandoffRing(100) })
	assert.NotPanics(t, func() { freelist.NewHandoffRing(128) })
}

func TestHandoffRingFIFO(t *testing.T) {
	p := newPool(t, 16)
	ring := freelist.NewHandoffRing(16)

	for i := 0; i < 10; i++ {
		pkt := p.Allocate()
		pkt.Set([]byte{byte(i)})
		require.True(t, ring.Enqueue(pkt))
	}
	require.Equal(t, 10, ring.Len())

	for i := 0; i < 10; i++ {
		pkt, ok := ring.Dequeue()
		require.True(t, ok)
		assert.EqualValues(t, byte(i), pkt.Data[0], "ring must preserve arrival order")
		p.Release(pkt)
	}
	_, ok := ring.Dequeue()
	assert.False(t, ok)
	assert.Equal(t, 16, p.Available())
}

// TestHandoffRingMultiProducer pushes distinct packets from many
// producers through a small ring and verifies every packet is handed
// off exactly once. Run with -race.
func TestHandoffRingMultiProducer(t *testing.T) {
	const (
		producers          = 8
		packetsPerProducer = 500
		total              = producers * packetsPerProducer
	)
	p := freelist.NewShared(total)
	p.Init()
	defer p.Close()
	ring := freelist.NewHandoffRing(16)

	for g := 0; g < producers; g++ {
		go func() {
			for i := 0; i < packetsPerProducer; i++ {
				pkt := p.Allocate()
				for !ring.Enqueue(pkt) {
					runtime.Gosched()
				}
			}
		}()
	}

	seen := make(map[*freelist.Packet]int, total)
	for drained := 0; drained < total; {
		pkt, ok := ring.Dequeue()
		if !ok {
			runtime.Gosched()
			continue
		}
		seen[pkt]++
		p.Release(pkt)
		drained++
	}

	require.Len(t, seen, total, "every packet must be handed off")
	for pkt, n := range seen {
		if n != 1 {
			t.Fatalf("packet %p dequeued %d times", pkt, n)
		}
	}
	assert.Equal(t, total, p.Available())
}

// TestHandoffRingRejectsPoolOwnedPacket covers the ownership guard: a
// packet the pool still owns must not enter the ring.
func TestHandoffRingRejectsPoolOwnedPacket(t *testing.T) {
	p := newPool(t, 2)
	ring := freelist.NewHandoffRing(2)

	pkt := p.Allocate()
	p.Release(pkt)
	requirePanicCode(t, api.ErrCodeInvalidArgument, func() { ring.Enqueue(pkt) })
	requirePanicCode(t, api.ErrCodeInvalidArgument, func() { ring.Enqueue(nil) })
	requirePanicCode(t, api.ErrCodeInvalidArgument, func() { ring.Enqueue(&freelist.Packet{}) })
	assert.Equal(t, 0, ring.Len())
}

// TestHandoffRingProperty performs randomized operations to check the
// length invariant against a model.
func TestHandoffRingProperty(t *testing.T) {
	const size = 64
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		p := freelist.New(size)
		p.Init()
		ring := freelist.NewHandoffRing(size)

		length := 0
		for i := 0; i < 5000; i++ {
			if rng.Intn(2) == 0 {
				if pkt, err := p.TryAllocate(); err == nil {
					if ring.Enqueue(pkt) {
						length++
					} else {
						p.Release(pkt)
					}
				}
			} else {
				if pkt, ok := ring.Dequeue(); ok {
					p.Release(pkt)
					length--
				}
			}
			if ring.Len() != length {
				t.Fatalf("length invariant failed: expected %d, got %d", length, ring.Len())
			}
			if ring.Len() < 0 || ring.Len() > size {
				t.Fatalf("ring length out of bounds: %d", ring.Len())
			}
		}
		for {
			pkt, ok := ring.Dequeue()
			if !ok {
				break
			}
			p.Release(pkt)
		}
		if p.Available() != size {
			t.Fatalf("pool did not refill: %d", p.Available())
		}
		p.Close()
	}
}
