// File: freelist/batch.go
// License: Apache-2.0
//
// Bulk borrow/return. Not thread-safe; a batch belongs to one goroutine.

package freelist

// PacketBatch holds packets borrowed together so they can be returned
// together.
type PacketBatch struct {
	pool    *Pool
	packets []*Packet
}

// NewBatch creates an empty batch bound to pool with room for capacity
// packets before the slice grows.
func NewBatch(pool *Pool, capacity int) *PacketBatch {
	return &PacketBatch{
		pool:    pool,
		packets: make([]*Packet, 0, capacity),
	}
}

// Allocate borrows n packets into the batch. On underflow the packets
// borrowed so far stay in the batch and the error is returned; the
// caller decides whether to release or keep them.
func (b *PacketBatch) Allocate(n int) error {
	for i := 0; i < n; i++ {
		pkt, err := b.pool.TryAllocate()
		if err != nil {
			return err
		}
		b.packets = append(b.packets, pkt)
	}
	return nil
}

// Append adds an already checked-out packet to the batch.
func (b *PacketBatch) Append(pkt *Packet) {
	b.packets = append(b.packets, pkt)
}

// Len returns the number of packets in the batch.
func (b *PacketBatch) Len() int {
	return len(b.packets)
}

// Get retrieves the packet at index.
func (b *PacketBatch) Get(idx int) *Packet {
	return b.packets[idx]
}

// Packets returns the underlying slice.
func (b *PacketBatch) Packets() []*Packet {
	return b.packets
}

// ReleaseAll returns every packet to the pool and empties the batch,
// retaining the underlying slice.
func (b *PacketBatch) ReleaseAll() {
	for i, pkt := range b.packets {
		b.pool.Release(pkt)
		b.packets[i] = nil
	}
	b.packets = b.packets[:0]
}
