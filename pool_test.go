package zerobuf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolReuse(t *testing.T) {
	pool, err := NewBufferPool(1, 16)
	require.NoError(t, err)

	buf, err := pool.Buffer()
	require.NoError(t, err)
	assert.Equal(t, 16, buf.Capacity())

	_, err = buf.AddBytes([]byte("abc"))
	require.NoError(t, err)

	buf.Release()

	reused, err := pool.Buffer()
	require.NoError(t, err)

	// the released buffer comes back reset
	assert.True(t, buf == reused)
	assert.Equal(t, 0, reused.Writepos())
	assert.Equal(t, 16, reused.Free())
}

func TestPoolExhausted(t *testing.T) {
	pool, err := NewBufferPool(1, 16)
	require.NoError(t, err)

	first, err := pool.Buffer()
	require.NoError(t, err)

	second, err := pool.Buffer()
	require.NoError(t, err)

	// past capacity the pool allocates fresh buffers
	assert.True(t, first != second)
	assert.Equal(t, 16, second.Capacity())
}

func TestPoolReturnPastCapacity(t *testing.T) {
	pool, err := NewBufferPool(1, 16)
	require.NoError(t, err)

	first, err := pool.Buffer()
	require.NoError(t, err)

	second, err := pool.Buffer()
	require.NoError(t, err)

	first.Release()
	second.Release()

	assert.Len(t, pool.freelist, 1)
}

func TestPoolZeroCapacity(t *testing.T) {
	pool, err := NewBufferPool(0, 16)
	require.NoError(t, err)

	buf, err := pool.Buffer()
	require.NoError(t, err)

	buf.Release()

	assert.Len(t, pool.freelist, 0)
}

func TestPoolClean(t *testing.T) {
	pool, err := NewBufferPool(4, 16)
	require.NoError(t, err)
	require.Len(t, pool.freelist, 4)

	err = pool.Clean(context.Background())
	require.NoError(t, err)

	assert.Len(t, pool.freelist, 0)

	// the pool keeps working after a clean
	buf, err := pool.Buffer()
	require.NoError(t, err)

	buf.Release()
	assert.Len(t, pool.freelist, 1)
}

func TestPoolID(t *testing.T) {
	pool, err := NewBufferPool(0, 16)
	require.NoError(t, err)

	assert.Equal(t, "buffer-pool", pool.ID())
}
