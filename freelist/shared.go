// File: freelist/shared.go
// License: Apache-2.0
//
// Mutex-guarded pool for concurrent callers. Every operation is one
// atomic critical section; there is no finer-grained protocol.

package freelist

import (
	"sync"

	"github.com/fastpath/pktpool/api"
)

// SharedPool makes one Pool safe for concurrent Allocate/Release.
type SharedPool struct {
	mu   sync.Mutex
	pool *Pool
}

// NewShared constructs a shared pool of the given capacity. Init must
// still be called before use.
func NewShared(capacity int) *SharedPool {
	return &SharedPool{pool: New(capacity)}
}

// Share wraps an existing pool. The caller must stop using the bare pool
// directly afterwards.
func Share(p *Pool) *SharedPool {
	return &SharedPool{pool: p}
}

// Init populates the pool. Same contract as Pool.Init.
func (s *SharedPool) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool.Init()
}

// Allocate borrows a packet. Same contract as Pool.Allocate.
func (s *SharedPool) Allocate() *Packet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool.Allocate()
}

// TryAllocate borrows a packet without the fail-fast panic.
func (s *SharedPool) TryAllocate() (*Packet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool.TryAllocate()
}

// Release returns a packet. Same contract as Pool.Release.
func (s *SharedPool) Release(pkt *Packet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool.Release(pkt)
}

// TryRelease returns a packet without the fail-fast panic.
func (s *SharedPool) TryRelease(pkt *Packet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool.TryRelease(pkt)
}

// Available returns the number of packets currently in the pool.
func (s *SharedPool) Available() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool.Available()
}

// Capacity returns the fixed pool capacity.
func (s *SharedPool) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool.Capacity()
}

// Stats returns a snapshot of the pool accounting.
func (s *SharedPool) Stats() api.PoolStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool.Stats()
}

// Close releases the underlying pool storage.
func (s *SharedPool) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool.Close()
}

var (
	_ api.Allocator[*Packet]    = (*SharedPool)(nil)
	_ api.TryAllocator[*Packet] = (*SharedPool)(nil)
	_ api.StatsProvider         = (*SharedPool)(nil)
)
