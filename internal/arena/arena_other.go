// File: internal/arena/arena_other.go
//go:build !linux

// Package arena: non-Linux platforms use the Go heap.
//
// License: Apache-2.0

package arena

func osAlloc(int) (data, mapping []byte, ok bool) {
	return nil, nil, false
}

func osFree([]byte) {}
