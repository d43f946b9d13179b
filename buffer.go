// Package zerobuf implements a fixed-capacity, append-only byte buffer
// with immutable zero-copy views, and a collator that merges many views
// into one with the minimum amount of copying.
package zerobuf

import (
	"io"
)

// Buffer is a fixed-capacity, append-only byte region. It is the only
// holder of the write capability of its block; already-written bytes are
// immutable, which is what keeps outstanding views byte-stable while the
// buffer keeps growing. A Buffer has exactly one producer: append calls
// must be serialized by the caller.
type Buffer struct {
	block    *rawBlock
	writepos int
	pool     *BufferPool
}

// Allocate creates a Buffer over a fresh block of exactly size bytes.
func Allocate(size int) (*Buffer, error) {
	block, err := newRawBlock(size)
	if err != nil {
		return nil, err
	}

	return &Buffer{
		block: block,
	}, nil
}

// FromBytes allocates a buffer of exactly len(data) bytes and fills it.
func FromBytes(data []byte) (*Buffer, error) {
	buf, err := Allocate(len(data))
	if err != nil {
		return nil, err
	}

	if len(data) > 0 {
		if _, err := buf.AddBytes(data); err != nil {
			return nil, err
		}
	}

	return buf, nil
}

func (o *Buffer) Capacity() int {
	return o.block.capacity()
}

func (o *Buffer) Writepos() int {
	return o.writepos
}

func (o *Buffer) Free() int {
	return o.block.capacity() - o.writepos
}

// ReadFrom reads once from r into the free region and advances the write
// position by the number of bytes actually transferred. The transferred
// count is authoritative: it is applied before any error is considered.
// A full buffer fails with ErrBufferFull before touching r; a zero-byte
// read at end of input fails with ErrEndOfInput; any other source failure
// is returned as *IOError wrapping the cause.
func (o *Buffer) ReadFrom(r io.Reader) (int, error) {
	if o.Free() == 0 {
		return 0, ErrBufferFull
	}

	n, err := r.Read(o.block.buf[o.writepos:])
	o.writepos += n

	switch {
	case err == io.EOF:
		if n == 0 {
			return 0, ErrEndOfInput
		}

		return n, nil
	case err != nil:
		return n, &IOError{Cause: err}
	}

	return n, nil
}

// AddBytes copies min(len(data), free) bytes into the free region and
// returns the copied count. A short copy is a success; only a full buffer
// fails with ErrBufferFull.
func (o *Buffer) AddBytes(data []byte) (int, error) {
	if o.Free() == 0 {
		return 0, ErrBufferFull
	}

	copied := copy(o.block.buf[o.writepos:], data)
	o.writepos += copied

	return copied, nil
}

// View returns a view over everything written so far. No copy.
func (o *Buffer) View() BufferView {
	return BufferView{
		block:  o.block,
		length: o.writepos,
	}
}

// ViewRange returns a view over [start, stop). Bounds must satisfy
// 0 <= start <= stop <= Writepos(). No copy.
func (o *Buffer) ViewRange(start, stop int) (BufferView, error) {
	if start < 0 || stop < start || start > o.writepos || stop > o.writepos {
		return BufferView{block: emptyBlock}, ErrInvalidRange
	}

	return BufferView{
		block:  o.block,
		start:  start,
		length: stop - start,
	}, nil
}

// Release resets the write position and, for pooled buffers, hands the
// buffer back to its pool. The caller must not release a buffer while
// views derived from it are still in use: a reused buffer writes over the
// same block.
func (o *Buffer) Release() {
	o.writepos = 0

	if o.pool != nil {
		o.pool.ReturnBuffer(o)
	}
}
