// File: freelist/default.go
// License: Apache-2.0

package freelist

import "sync"

var (
	defaultOnce sync.Once
	defaultPool *SharedPool
)

// Default returns a process-wide pool of DefaultCapacity packets so
// components can share one freelist instead of fragmenting allocations.
// It is initialized on first use and safe for concurrent callers.
func Default() *SharedPool {
	defaultOnce.Do(func() {
		defaultPool = NewShared(DefaultCapacity)
		defaultPool.Init()
	})
	return defaultPool
}
