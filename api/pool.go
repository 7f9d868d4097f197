// File: api/pool.go
// License: Apache-2.0
//
// Abstract pooling APIs: allocate/release surfaces and pool accounting.

package api

// Allocator is the fail-fast borrowing surface of a fixed-capacity pool.
// Both operations panic with an *Error on misuse.
type Allocator[T any] interface {
	// Allocate transfers exclusive ownership of one instance to the
	// caller. Panics with ErrCodeUnderflow when the pool is empty.
	Allocate() T

	// Release returns an instance to the pool. Panics with
	// ErrCodeOverflow when the pool is already full.
	Release(T)
}

// TryAllocator is the recoverable counterpart of Allocator.
type TryAllocator[T any] interface {
	TryAllocate() (T, error)
	TryRelease(T) error
}

// StatsProvider exposes pool accounting for observability.
type StatsProvider interface {
	Stats() PoolStats
}

// PoolStats aggregates allocation/reuse accounting for one pool.
type PoolStats struct {
	// Capacity is the fixed number of instances the pool owns.
	Capacity int
	// Available is the number of instances currently in the pool.
	Available int
	// InUse is the number of instances currently checked out.
	InUse int

	// TotalAllocates and TotalReleases count completed operations over
	// the pool lifetime.
	TotalAllocates int64
	TotalReleases  int64

	// ReleasedBytes accumulates the Length of every released packet.
	ReleasedBytes int64

	// HighWater is the maximum number of instances ever checked out
	// concurrently.
	HighWater int
}
