// File: freelist/shared_test.go
// License: Apache-2.0

package freelist_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastpath/pktpool/freelist"
)

func TestSharedPoolBasicCycle(t *testing.T) {
	s := freelist.NewShared(4)
	s.Init()
	defer s.Close()

	pkt := s.Allocate()
	pkt.Length = 3
	s.Release(pkt)

	assert.Equal(t, 4, s.Available())
	assert.Equal(t, 4, s.Capacity())
	assert.EqualValues(t, 1, s.Stats().TotalAllocates)
}

// TestSharedPoolConcurrent hammers one pool from many goroutines and
// checks the accounting balances out. Run with -race.
func TestSharedPoolConcurrent(t *testing.T) {
	const (
		capacity   = 64
		goroutines = 8
		iterations = 500
	)
	s := freelist.NewShared(capacity)
	s.Init()
	defer s.Close()

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				pkt, err := s.TryAllocate()
				if err != nil {
					continue
				}
				pkt.Data[0] = byte(g)
				pkt.Length = 1
				s.Release(pkt)
			}
		}(g)
	}
	wg.Wait()

	st := s.Stats()
	require.Equal(t, capacity, st.Available, "all packets must be back in the pool")
	assert.Equal(t, 0, st.InUse)
	assert.Equal(t, st.TotalAllocates, st.TotalReleases)
	assert.LessOrEqual(t, st.HighWater, capacity)
	assert.Equal(t, st.TotalReleases, st.ReleasedBytes, "every release carried one byte")
}

func TestShareWrapsExistingPool(t *testing.T) {
	p := freelist.New(2)
	p.Init()
	s := freelist.Share(p)
	defer s.Close()

	pkt := s.Allocate()
	s.Release(pkt)
	assert.Equal(t, 2, s.Available())
}
