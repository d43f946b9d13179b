package zerobuf

// Split returns a lazy iterator over the pieces of the view between
// occurrences of sep, left to right. A non-negative maxsplit caps the
// number of splits; the remainder becomes the final element. An empty
// separator fails with ErrInvalidArgument. Each piece is a sub-view, no
// copy. The iterator is finite and cannot be restarted.
func (o BufferView) Split(sep []byte, maxsplit int) (*SplitIterator, error) {
	if len(sep) == 0 {
		return nil, ErrInvalidArgument
	}

	return &SplitIterator{
		view:     o,
		sep:      sep,
		maxsplit: maxsplit,
	}, nil
}

type SplitIterator struct {
	view     BufferView
	sep      []byte
	maxsplit int
	start    int
	done     bool
}

func (o *SplitIterator) Next() (BufferView, bool) {
	if o.done {
		return BufferView{block: emptyBlock}, false
	}

	if o.maxsplit != 0 {
		next := o.view.FindRange(o.sep, o.start, o.view.Len())
		if next >= 0 {
			piece, _ := o.view.Slice(o.start, next)

			o.start = next + len(o.sep)
			o.maxsplit--

			return piece, true
		}
	}

	piece, _ := o.view.Slice(o.start, o.view.Len())
	o.done = true

	return piece, true
}

// SplitLines returns a lazy iterator over the lines of the view. The
// terminators are \n, \r and \r\n, with \r\n counted as a single
// terminator. When keepends is true each line includes its terminator.
func (o BufferView) SplitLines(keepends bool) *LineIterator {
	return &LineIterator{
		view:     o,
		keepends: keepends,
	}
}

type LineIterator struct {
	view     BufferView
	keepends bool
	pos      int
}

func (o *LineIterator) Next() (BufferView, bool) {
	if o.pos >= o.view.Len() {
		return BufferView{block: emptyBlock}, false
	}

	var (
		data  = o.view.raw()
		start = o.pos
		end   = start
	)

	for end < len(data) && data[end] != '\n' && data[end] != '\r' {
		end++
	}

	next := end
	if next < len(data) {
		if data[next] == '\r' && next+1 < len(data) && data[next+1] == '\n' {
			next += 2
		} else {
			next++
		}
	}

	o.pos = next

	if o.keepends {
		end = next
	}

	line, _ := o.view.Slice(start, end)

	return line, true
}
