// File: internal/arena/arena.go
// License: Apache-2.0
//
// Contiguous zero-initialized backing storage for packet payloads.
//
// One Arena backs one pool: a single allocation carved into fixed-size
// payload slices. On Linux the storage comes from an anonymous mmap,
// hugepage-backed when the system allows it; everywhere else (and when
// mmap fails) it falls back to the Go heap. Either way the memory starts
// zero-filled.

package arena

// Arena is a single contiguous allocation. The zero value is not usable;
// construct with New.
type Arena struct {
	data    []byte
	mapping []byte // full mmap region when OS-backed, nil on heap
}

// New allocates an arena of exactly size bytes, zero-filled.
func New(size int) *Arena {
	if size <= 0 {
		return &Arena{}
	}
	if data, mapping, ok := osAlloc(size); ok {
		return &Arena{data: data, mapping: mapping}
	}
	return &Arena{data: make([]byte, size)}
}

// Bytes returns the full arena region.
func (a *Arena) Bytes() []byte {
	return a.data
}

// Size returns the usable arena length in bytes.
func (a *Arena) Size() int {
	return len(a.data)
}

// Mapped reports whether the arena is OS-backed rather than heap-backed.
func (a *Arena) Mapped() bool {
	return a.mapping != nil
}

// Release returns OS-backed memory to the kernel. Heap-backed arenas are
// left to the garbage collector. Idempotent; the arena must not be used
// after Release.
func (a *Arena) Release() {
	if a.mapping != nil {
		osFree(a.mapping)
		a.mapping = nil
	}
	a.data = nil
}
