// File: freelist/batch_test.go
// License: Apache-2.0

package freelist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastpath/pktpool/api"
	"github.com/fastpath/pktpool/freelist"
)

func TestBatchAllocateRelease(t *testing.T) {
	p := newPool(t, 8)
	batch := freelist.NewBatch(p, 8)

	require.NoError(t, batch.Allocate(8))
	assert.Equal(t, 8, batch.Len())
	assert.Equal(t, 0, p.Available())

	batch.ReleaseAll()
	assert.Equal(t, 0, batch.Len())
	assert.Equal(t, 8, p.Available())
}

func TestBatchAllocatePartialShortfall(t *testing.T) {
	p := newPool(t, 4)
	batch := freelist.NewBatch(p, 8)

	err := batch.Allocate(8)
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrUnderflow)
	// Packets borrowed before the shortfall stay in the batch.
	assert.Equal(t, 4, batch.Len())
	assert.Equal(t, 0, p.Available())

	batch.ReleaseAll()
	assert.Equal(t, 4, p.Available())
}

func TestBatchAppendAndGet(t *testing.T) {
	p := newPool(t, 4)
	batch := freelist.NewBatch(p, 4)

	pkt := p.Allocate()
	batch.Append(pkt)
	require.Equal(t, 1, batch.Len())
	assert.Same(t, pkt, batch.Get(0))
	assert.Same(t, pkt, batch.Packets()[0])

	batch.ReleaseAll()
	assert.Equal(t, 4, p.Available())
}
