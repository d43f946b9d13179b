package zerobuf

import (
	"bytes"
	"io"
)

var asciiWhitespace = []byte(" \t\n\v\f\r")

// BufferView is an immutable window over a shared block: an absolute start
// offset plus a length. Views derived from views compose offsets against
// the same block, so a chain of slices stays a single (block, start,
// length) triple. Views are safe to read from any number of goroutines,
// including while the originating Buffer keeps appending.
type BufferView struct {
	block  *rawBlock
	start  int
	length int
}

func (o BufferView) Len() int {
	return o.length
}

// Bytes copies the viewed range into a fresh slice. This is the only view
// operation guaranteed to allocate.
func (o BufferView) Bytes() []byte {
	data := make([]byte, o.length)
	copy(data, o.raw())

	return data
}

func (o BufferView) String() string {
	return string(o.raw())
}

func (o BufferView) Equal(other BufferView) bool {
	return bytes.Equal(o.raw(), other.raw())
}

func (o BufferView) EqualBytes(data []byte) bool {
	return bytes.Equal(o.raw(), data)
}

func (o BufferView) Contains(needle []byte) bool {
	return bytes.Contains(o.raw(), needle)
}

// At returns the byte at idx; a negative idx counts from the end.
func (o BufferView) At(idx int) (byte, error) {
	if idx < 0 {
		idx += o.length
	}

	if idx < 0 || idx >= o.length {
		return 0, ErrIndexOutOfRange
	}

	return o.raw()[idx], nil
}

// Slice returns a sub-view over [start, stop). Negative bounds count from
// the end and out-of-range bounds are clamped; a normalized start past
// stop fails with ErrInvalidRange. No copy.
func (o BufferView) Slice(start, stop int) (BufferView, error) {
	start = o.normalize(start)
	stop = o.normalize(stop)

	if start > stop {
		return BufferView{block: emptyBlock}, ErrInvalidRange
	}

	return BufferView{
		block:  o.block,
		start:  o.start + start,
		length: stop - start,
	}, nil
}

func (o BufferView) normalize(idx int) int {
	if idx < 0 {
		idx += o.length
	}

	if idx < 0 {
		return 0
	}

	if idx > o.length {
		return o.length
	}

	return idx
}

// Concat joins two views. When other starts exactly where o ends within
// the same block the result is a single spanning view and no bytes move;
// otherwise a block of exactly Len()+other.Len() bytes is allocated and
// both ranges are copied once.
func (o BufferView) Concat(other BufferView) BufferView {
	if o.block != nil && o.block == other.block && other.start == o.start+o.length {
		return BufferView{
			block:  o.block,
			start:  o.start,
			length: o.length + other.length,
		}
	}

	block := &rawBlock{
		buf: make([]byte, o.length+other.length),
	}

	copy(block.buf, o.raw())
	copy(block.buf[o.length:], other.raw())

	return BufferView{
		block:  block,
		length: o.length + other.length,
	}
}

// WriteTo writes the viewed bytes to w without copying them first.
func (o BufferView) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(o.raw())
	if err != nil {
		return int64(n), &IOError{Cause: err}
	}

	return int64(n), nil
}

// IsSpace reports whether the view is non-empty and all ASCII whitespace.
func (o BufferView) IsSpace() bool {
	return o.every(isSpaceByte)
}

// IsDigit reports whether the view is non-empty and all ASCII digits.
func (o BufferView) IsDigit() bool {
	return o.every(func(c byte) bool {
		return c >= '0' && c <= '9'
	})
}

// IsAlpha reports whether the view is non-empty and all ASCII letters.
func (o BufferView) IsAlpha() bool {
	return o.every(func(c byte) bool {
		return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
	})
}

func (o BufferView) every(class func(byte) bool) bool {
	if o.length == 0 {
		return false
	}

	for _, c := range o.raw() {
		if !class(c) {
			return false
		}
	}

	return true
}

func isSpaceByte(c byte) bool {
	return c == ' ' || (c >= '\t' && c <= '\r')
}

// Strip returns a sub-view with leading and trailing bytes in chars
// removed; nil chars means ASCII whitespace. No copy.
func (o BufferView) Strip(chars []byte) BufferView {
	return o.strip(chars, true, true)
}

func (o BufferView) LStrip(chars []byte) BufferView {
	return o.strip(chars, true, false)
}

func (o BufferView) RStrip(chars []byte) BufferView {
	return o.strip(chars, false, true)
}

func (o BufferView) strip(chars []byte, left, right bool) BufferView {
	if chars == nil {
		chars = asciiWhitespace
	}

	var (
		data = o.raw()
		lpos = 0
		rpos = len(data)
	)

	if left {
		for lpos < rpos && bytes.IndexByte(chars, data[lpos]) >= 0 {
			lpos++
		}
	}

	if right {
		for rpos > lpos && bytes.IndexByte(chars, data[rpos-1]) >= 0 {
			rpos--
		}
	}

	return BufferView{
		block:  o.block,
		start:  o.start + lpos,
		length: rpos - lpos,
	}
}

func (o BufferView) raw() []byte {
	if o.block == nil {
		return nil
	}

	return o.block.buf[o.start : o.start+o.length]
}
