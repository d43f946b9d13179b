package zerobuf

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failReader struct {
	data []byte
	err  error
}

func (o *failReader) Read(p []byte) (int, error) {
	n := copy(p, o.data)

	return n, o.err
}

func TestAllocate(t *testing.T) {
	buf, err := Allocate(16)
	require.NoError(t, err)

	assert.Equal(t, 16, buf.Capacity())
	assert.Equal(t, 0, buf.Writepos())
	assert.Equal(t, 16, buf.Free())
}

func TestAllocateEmpty(t *testing.T) {
	buf, err := Allocate(0)
	require.NoError(t, err)

	assert.Equal(t, 0, buf.Capacity())
	assert.Equal(t, 0, buf.Free())
}

func TestFromBytes(t *testing.T) {
	data := []byte("abc123")

	buf, err := FromBytes(data)
	require.NoError(t, err)

	assert.Equal(t, len(data), buf.Capacity())
	assert.Equal(t, len(data), buf.Writepos())
	assert.Equal(t, data, buf.View().Bytes())
}

func TestBufferAddBytes(t *testing.T) {
	buf, err := Allocate(16)
	require.NoError(t, err)

	copied, err := buf.AddBytes([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, copied)
	assert.Equal(t, 3, buf.Writepos())
	assert.Equal(t, 13, buf.Free())
}

func TestBufferAddBytesShortCopy(t *testing.T) {
	buf, err := Allocate(16)
	require.NoError(t, err)

	copied, err := buf.AddBytes(bytes.Repeat([]byte("a"), 20))
	require.NoError(t, err)
	assert.Equal(t, 16, copied)
	assert.Equal(t, 16, buf.Writepos())
}

func TestBufferAddBytesFull(t *testing.T) {
	buf, err := Allocate(16)
	require.NoError(t, err)

	_, err = buf.AddBytes(bytes.Repeat([]byte("a"), 16))
	require.NoError(t, err)

	_, err = buf.AddBytes([]byte("abc"))
	require.Equal(t, ErrBufferFull, err)
	assert.Equal(t, 16, buf.Writepos())
}

func TestBufferAddBytesSum(t *testing.T) {
	buf, err := Allocate(16)
	require.NoError(t, err)

	total := 0

	for _, data := range [][]byte{
		[]byte("abc"),
		[]byte(""),
		[]byte("0123456789"),
		[]byte("xyz"),
	} {
		expected := len(data)
		if free := buf.Free(); expected > free {
			expected = free
		}

		copied, err := buf.AddBytes(data)
		require.NoError(t, err)
		assert.Equal(t, expected, copied)

		total += copied
	}

	assert.Equal(t, total, buf.Writepos())
}

func TestBufferReadFrom(t *testing.T) {
	buf, err := Allocate(16)
	require.NoError(t, err)

	n, err := buf.ReadFrom(strings.NewReader("abc123"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, 6, buf.Writepos())
	assert.Equal(t, 10, buf.Free())
}

func TestBufferReadFromEndOfInput(t *testing.T) {
	buf, err := Allocate(16)
	require.NoError(t, err)

	_, err = buf.ReadFrom(strings.NewReader(""))
	require.Equal(t, ErrEndOfInput, err)
	assert.Equal(t, 0, buf.Writepos())
}

func TestBufferReadFromFull(t *testing.T) {
	buf, err := Allocate(16)
	require.NoError(t, err)

	n, err := buf.ReadFrom(strings.NewReader(strings.Repeat("a", 16)))
	require.NoError(t, err)
	require.Equal(t, 16, n)

	_, err = buf.ReadFrom(strings.NewReader("abc"))
	require.Equal(t, ErrBufferFull, err)
	assert.Equal(t, 16, buf.Writepos())
}

func TestBufferReadFromFailure(t *testing.T) {
	cause := errors.New("broken source")

	buf, err := Allocate(16)
	require.NoError(t, err)

	_, err = buf.ReadFrom(&failReader{err: cause})
	require.Error(t, err)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, cause, ioErr.Cause)
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, 0, buf.Writepos())
}

func TestBufferReadFromPartialFailure(t *testing.T) {
	cause := errors.New("broken source")

	buf, err := Allocate(16)
	require.NoError(t, err)

	n, err := buf.ReadFrom(&failReader{data: []byte("abc"), err: cause})
	require.Error(t, err)
	assert.True(t, errors.Is(err, cause))

	// the transferred count is authoritative even when the read failed
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, buf.Writepos())
	assert.Equal(t, []byte("abc"), buf.View().Bytes())
}

func TestBufferView(t *testing.T) {
	buf, err := Allocate(16)
	require.NoError(t, err)

	_, err = buf.AddBytes([]byte("abc123"))
	require.NoError(t, err)

	view := buf.View()
	assert.Equal(t, 6, view.Len())
	assert.Equal(t, []byte("abc123"), view.Bytes())
}

func TestBufferViewRange(t *testing.T) {
	buf, err := Allocate(16)
	require.NoError(t, err)

	_, err = buf.AddBytes([]byte("abc123"))
	require.NoError(t, err)

	view, err := buf.ViewRange(2, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Len())
	assert.Equal(t, []byte("c12"), view.Bytes())
}

func TestBufferViewRangeInvalid(t *testing.T) {
	buf, err := Allocate(16)
	require.NoError(t, err)

	_, err = buf.AddBytes([]byte("abc123"))
	require.NoError(t, err)

	for _, bounds := range [][2]int{
		{3, 0},
		{10, 11},
		{0, 11},
		{-2, 0},
		{0, -2},
	} {
		_, err := buf.ViewRange(bounds[0], bounds[1])
		assert.Equal(t, ErrInvalidRange, err)
	}
}

func TestBufferViewStableWhileGrowing(t *testing.T) {
	buf, err := Allocate(16)
	require.NoError(t, err)

	_, err = buf.AddBytes([]byte("abc"))
	require.NoError(t, err)

	view := buf.View()

	_, err = buf.AddBytes([]byte("123"))
	require.NoError(t, err)

	// the view never observes bytes written after its creation
	assert.Equal(t, 3, view.Len())
	assert.Equal(t, []byte("abc"), view.Bytes())
}

func TestBufferRoundTrip(t *testing.T) {
	buf, err := Allocate(16)
	require.NoError(t, err)

	_, err = buf.AddBytes([]byte("round trip"))
	require.NoError(t, err)

	view := buf.View()

	other, err := Allocate(view.Len())
	require.NoError(t, err)

	_, err = other.AddBytes(view.Bytes())
	require.NoError(t, err)

	assert.True(t, other.View().Equal(view))
}

func TestBufferRelease(t *testing.T) {
	buf, err := Allocate(16)
	require.NoError(t, err)

	_, err = buf.AddBytes([]byte("abc"))
	require.NoError(t, err)

	buf.Release()

	assert.Equal(t, 0, buf.Writepos())
	assert.Equal(t, 16, buf.Free())
}
