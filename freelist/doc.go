// Package freelist implements a fixed-capacity packet pool.
//
// A Pool pre-allocates all of its packets once, at Init time, and then
// hands them out and takes them back LIFO with no further allocation on
// the hot path. Exhausting the pool or returning more packets than were
// borrowed is treated as a caller bug and panics immediately; see the
// Try* methods for the recoverable variants.
//
// Pool itself is single-threaded. SharedPool wraps one behind a mutex,
// and HandoffRing moves checked-out packets between goroutines without
// locks. See freelist.go, shared.go, ring.go for details.
package freelist
