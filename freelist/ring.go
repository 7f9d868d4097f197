// File: freelist/ring.go
// License: Apache-2.0
//
// Lock-free MPMC ring for handing checked-out packets between
// goroutines. Each slot carries a sequence number (the bounded-queue
// scheme by Dmitry Vyukov): producers reserve the tail by CAS and
// publish by bumping the slot sequence, so concurrent producers can
// never hand off the same slot twice. Padding separates the hot
// counters from each other and from the slot array.

package freelist

import (
	"sync/atomic"

	"github.com/fastpath/pktpool/api"
)

type ringSlot struct {
	seq atomic.Uint64
	pkt *Packet
}

// HandoffRing is a lock-free ring of checked-out packets (power-of-two
// capacity). The ring moves ownership between goroutines, it never
// releases: whoever dequeues a packet owns it and must release it.
//
// Only checked-out packets may enter the ring. Handing off a packet the
// pool still owns would create two paths to the same slot, so Enqueue
// treats it as misuse and panics.
type HandoffRing struct {
	head  uint64
	_     [64]byte
	tail  uint64
	_     [64]byte
	mask  uint64
	slots []ringSlot
}

// NewHandoffRing allocates a ring of the given size, which must be a
// power of two.
func NewHandoffRing(size uint64) *HandoffRing {
	if size == 0 || (size&(size-1)) != 0 {
		panic("handoff ring size must be power of two")
	}
	r := &HandoffRing{
		mask:  size - 1,
		slots: make([]ringSlot, size),
	}
	for i := range r.slots {
		r.slots[i].seq.Store(uint64(i))
	}
	return r
}

// Enqueue adds a checked-out packet; returns false if the ring is full.
// Panics with ErrCodeInvalidArgument when the packet is nil or still
// pool-owned.
func (r *HandoffRing) Enqueue(pkt *Packet) bool {
	if pkt == nil || !pkt.checkedOut {
		panic(api.NewError(api.ErrCodeInvalidArgument, "handoff requires a checked-out packet"))
	}
	for {
		tail := atomic.LoadUint64(&r.tail)
		slot := &r.slots[tail&r.mask]
		seq := slot.seq.Load()
		dif := int64(seq) - int64(tail)

		switch {
		case dif == 0:
			if atomic.CompareAndSwapUint64(&r.tail, tail, tail+1) {
				slot.pkt = pkt
				slot.seq.Store(tail + 1)
				return true
			}
		case dif < 0:
			return false
		}
		// Lost the race for this slot; retry on the fresh tail.
	}
}

// Dequeue removes and returns (packet, ok); ok==false if empty. The
// returned packet belongs to the caller.
func (r *HandoffRing) Dequeue() (pkt *Packet, ok bool) {
	for {
		head := atomic.LoadUint64(&r.head)
		slot := &r.slots[head&r.mask]
		seq := slot.seq.Load()
		dif := int64(seq) - int64(head+1)

		switch {
		case dif == 0:
			if atomic.CompareAndSwapUint64(&r.head, head, head+1) {
				pkt = slot.pkt
				slot.pkt = nil
				slot.seq.Store(head + r.mask + 1)
				return pkt, true
			}
		case dif < 0:
			return nil, false
		}
	}
}

// Len returns the number of packets in the ring. Under concurrent
// traffic the value is a snapshot, exact only when the ring is quiet.
func (r *HandoffRing) Len() int {
	return int(atomic.LoadUint64(&r.tail) - atomic.LoadUint64(&r.head))
}

// Cap returns the ring capacity.
func (r *HandoffRing) Cap() int {
	return len(r.slots)
}
