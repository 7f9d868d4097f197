// File: freelist/freelist.go
// Package freelist: the fixed-capacity LIFO packet pool.
// License: Apache-2.0

package freelist

import (
	"sync/atomic"

	"github.com/fastpath/pktpool/api"
	"github.com/fastpath/pktpool/internal/arena"
)

// DefaultCapacity is the pool size used by New and by the process-wide
// default pool.
const DefaultCapacity = 1000

// Pool is a fixed-capacity freelist of packets.
//
// Only the first nfree entries of slots are pool-owned; everything above
// is logically stale. The most recently released packet is returned
// first. Pool is not safe for concurrent use; wrap it in a SharedPool
// when multiple goroutines allocate and release.
type Pool struct {
	payloadSize int
	slots       []*Packet
	nfree       int
	store       *arena.Arena
	initialized bool

	allocs        atomic.Int64
	frees         atomic.Int64
	releasedBytes atomic.Int64
	highWater     atomic.Int64
}

// New constructs an empty pool of the given capacity with PayloadSize
// packets. The pool holds no packets until Init is called.
func New(capacity int) *Pool {
	return NewWithPayloadSize(capacity, PayloadSize)
}

// NewWithPayloadSize constructs an empty pool whose packets carry
// payloadSize-byte payloads. Panics on non-positive sizes or payloads
// too large for the Length field.
func NewWithPayloadSize(capacity, payloadSize int) *Pool {
	if capacity <= 0 {
		panic(api.NewError(api.ErrCodeInvalidArgument, "pool capacity must be positive").
			WithContext("capacity", capacity))
	}
	if payloadSize <= 0 || payloadSize > int(^uint16(0)) {
		panic(api.NewError(api.ErrCodeInvalidArgument, "payload size out of range").
			WithContext("payloadSize", payloadSize))
	}
	return &Pool{
		payloadSize: payloadSize,
		slots:       make([]*Packet, capacity),
	}
}

// Init populates the pool: one arena allocation carved into capacity
// zero-filled packets, all pushed onto the freelist. Must be called
// exactly once, before any Allocate or Release; a second call panics
// with ErrCodeAlreadyInitialized.
//
// This is the single heavyweight step. Allocate and Release never touch
// the allocator again.
func (p *Pool) Init() {
	if p.initialized {
		panic(api.NewError(api.ErrCodeAlreadyInitialized, "pool already initialized").
			WithContext("capacity", len(p.slots)))
	}
	p.store = arena.New(len(p.slots) * p.payloadSize)
	backing := p.store.Bytes()
	packets := make([]Packet, len(p.slots))
	for i := range packets {
		lo, hi := i*p.payloadSize, (i+1)*p.payloadSize
		packets[i].Data = backing[lo:hi:hi]
		packets[i].owner = p
		p.slots[i] = &packets[i]
	}
	p.nfree = len(p.slots)
	p.initialized = true
}

// Allocate pops the most recently released packet and transfers
// ownership to the caller. The packet's contents are whatever the last
// owner left behind, except Length, which always reads 0.
//
// Panics with ErrCodeUnderflow when no packet is available: the pool is
// sized for the known maximum concurrent demand, so exhaustion means the
// caller is leaking packets or the pool is undersized. Panics with
// ErrCodeNotInitialized before Init has run.
func (p *Pool) Allocate() *Packet {
	pkt, err := p.allocate()
	if err != nil {
		panic(err)
	}
	return pkt
}

// TryAllocate is the recoverable form of Allocate. The returned error
// matches api.ErrUnderflow via errors.Is.
func (p *Pool) TryAllocate() (*Packet, error) {
	pkt, err := p.allocate()
	if err != nil {
		return nil, err
	}
	return pkt, nil
}

func (p *Pool) allocate() (*Packet, *api.Error) {
	if !p.initialized {
		return nil, api.NewError(api.ErrCodeNotInitialized, "pool not initialized")
	}
	if p.nfree == 0 {
		return nil, api.NewError(api.ErrCodeUnderflow, "packet freelist underflow").
			WithContext("capacity", len(p.slots))
	}
	p.nfree--
	pkt := p.slots[p.nfree]
	pkt.checkedOut = true

	p.allocs.Add(1)
	if inUse := int64(len(p.slots) - p.nfree); inUse > p.highWater.Load() {
		p.highWater.Store(inUse)
	}
	return pkt, nil
}

// Release returns a checked-out packet to the pool. Length is reset to
// 0; payload bytes are NOT cleared and persist for the next user.
//
// Panics with ErrCodeOverflow when the pool is already full, with
// ErrCodeDoubleRelease when the packet is already pool-owned, and with
// ErrCodeForeignPacket when it came from another pool (and with
// ErrCodeNotInitialized before Init has run). All of these mean
// the allocate/release pairing has been violated somewhere, and the
// ownership model can no longer be trusted.
func (p *Pool) Release(pkt *Packet) {
	if err := p.release(pkt); err != nil {
		panic(err)
	}
}

// TryRelease is the recoverable form of Release.
func (p *Pool) TryRelease(pkt *Packet) error {
	if err := p.release(pkt); err != nil {
		return err
	}
	return nil
}

func (p *Pool) release(pkt *Packet) *api.Error {
	if !p.initialized {
		return api.NewError(api.ErrCodeNotInitialized, "pool not initialized")
	}
	if p.nfree == len(p.slots) {
		return api.NewError(api.ErrCodeOverflow, "packet freelist overflow").
			WithContext("capacity", len(p.slots))
	}
	if pkt.owner != p {
		return api.NewError(api.ErrCodeForeignPacket, "packet does not belong to this pool")
	}
	if !pkt.checkedOut {
		return api.NewError(api.ErrCodeDoubleRelease, "packet already released")
	}

	p.releasedBytes.Add(int64(pkt.Length))
	pkt.Length = 0
	pkt.checkedOut = false
	p.slots[p.nfree] = pkt
	p.nfree++

	p.frees.Add(1)
	return nil
}

// Available returns the number of packets currently in the pool.
func (p *Pool) Available() int {
	return p.nfree
}

// Capacity returns the fixed pool capacity.
func (p *Pool) Capacity() int {
	return len(p.slots)
}

// Stats returns a snapshot of the pool accounting.
func (p *Pool) Stats() api.PoolStats {
	return api.PoolStats{
		Capacity:       len(p.slots),
		Available:      p.nfree,
		InUse:          len(p.slots) - p.nfree,
		TotalAllocates: p.allocs.Load(),
		TotalReleases:  p.frees.Load(),
		ReleasedBytes:  p.releasedBytes.Load(),
		HighWater:      int(p.highWater.Load()),
	}
}

// Close returns arena memory to the OS. Optional: a pool may simply be
// dropped and collected. The pool must not be used after Close.
func (p *Pool) Close() {
	if p.store != nil {
		p.store.Release()
		p.store = nil
	}
	for i := range p.slots {
		p.slots[i] = nil
	}
	p.nfree = 0
}

// Compile-time interface compliance.
var (
	_ api.Allocator[*Packet]    = (*Pool)(nil)
	_ api.TryAllocator[*Packet] = (*Pool)(nil)
	_ api.StatsProvider         = (*Pool)(nil)
)
