package zerobuf

import (
	"bytes"
)

// Find locates the first occurrence of needle, -1 if absent. An empty
// needle matches at 0.
func (o BufferView) Find(needle []byte) int {
	return o.FindRange(needle, 0, o.length)
}

// FindRange locates the first occurrence of needle within [start, stop).
// A negative start is clamped to 0 and a stop past the end is clamped to
// Len(); stop below start yields -1. An empty needle matches at start.
func (o BufferView) FindRange(needle []byte, start, stop int) int {
	start, stop, ok := o.clampRange(start, stop)
	if !ok {
		return -1
	}

	if len(needle) == 0 {
		return start
	}

	pos := bytes.Index(o.raw()[start:stop], needle)
	if pos < 0 {
		return -1
	}

	return start + pos
}

// RFind locates the last occurrence of needle, -1 if absent. An empty
// needle matches at Len().
func (o BufferView) RFind(needle []byte) int {
	return o.RFindRange(needle, 0, o.length)
}

// RFindRange locates the last occurrence of needle within [start, stop),
// with the same bound clamping as FindRange. An empty needle matches at
// the clamped stop.
func (o BufferView) RFindRange(needle []byte, start, stop int) int {
	start, stop, ok := o.clampRange(start, stop)
	if !ok {
		return -1
	}

	if len(needle) == 0 {
		return stop
	}

	pos := bytes.LastIndex(o.raw()[start:stop], needle)
	if pos < 0 {
		return -1
	}

	return start + pos
}

// Index is Find reporting ErrNotFound instead of -1.
func (o BufferView) Index(needle []byte) (int, error) {
	return o.IndexRange(needle, 0, o.length)
}

func (o BufferView) IndexRange(needle []byte, start, stop int) (int, error) {
	pos := o.FindRange(needle, start, stop)
	if pos < 0 {
		return 0, ErrNotFound
	}

	return pos, nil
}

// RIndex is RFind reporting ErrNotFound instead of -1.
func (o BufferView) RIndex(needle []byte) (int, error) {
	return o.RIndexRange(needle, 0, o.length)
}

func (o BufferView) RIndexRange(needle []byte, start, stop int) (int, error) {
	pos := o.RFindRange(needle, start, stop)
	if pos < 0 {
		return 0, ErrNotFound
	}

	return pos, nil
}

func (o BufferView) clampRange(start, stop int) (int, int, bool) {
	if start < 0 {
		start = 0
	}

	if stop > o.length {
		stop = o.length
	}

	return start, stop, stop >= start
}
