// File: internal/arena/arena_linux.go
//go:build linux

// Package arena: Linux backing via anonymous mmap.
//
// Tries MAP_HUGETLB (2 MiB pages) first, then a plain anonymous mapping.
// Returns ok=false when both fail so the caller falls back to the heap.
//
// License: Apache-2.0

package arena

import "golang.org/x/sys/unix"

const hugePageSize = 2 << 20

func osAlloc(size int) (data, mapping []byte, ok bool) {
	// Round to hugepage boundary; the pool only sees the first size bytes.
	length := ((size + hugePageSize - 1) / hugePageSize) * hugePageSize

	mapping, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE|unix.MAP_HUGETLB)
	if err != nil {
		mapping, err = unix.Mmap(-1, 0, size,
			unix.PROT_READ|unix.PROT_WRITE,
			unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
		if err != nil {
			return nil, nil, false
		}
	}
	return mapping[:size], mapping, true
}

func osFree(mapping []byte) {
	_ = unix.Munmap(mapping)
}
