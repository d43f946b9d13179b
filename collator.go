package zerobuf

// BufferCollator accumulates views in order and merges them into a single
// view on demand with the minimum amount of copying. The zero value is
// ready to use.
type BufferCollator struct {
	views []BufferView
}

func NewBufferCollator() *BufferCollator {
	return &BufferCollator{}
}

// Append stores the view reference. The content is not inspected or
// copied until Collapse.
func (o *BufferCollator) Append(view BufferView) {
	o.views = append(o.views, view)
}

// Len is the total byte length accumulated so far.
func (o *BufferCollator) Len() int {
	total := 0

	for _, view := range o.views {
		total += view.Len()
	}

	return total
}

// Collapse merges the accumulated views into one and resets the collator.
// When every consecutive pair is contiguous within one block the result is
// a spanning view and nothing is allocated or copied; otherwise one block
// of the exact total length is allocated and every byte is copied exactly
// once, in order. An empty collator collapses to an empty view.
func (o *BufferCollator) Collapse() BufferView {
	views := o.views
	o.views = nil

	if len(views) == 0 {
		return BufferView{block: emptyBlock}
	}

	merged := views[0]
	contiguous := true

	for _, view := range views[1:] {
		if merged.block != nil && merged.block == view.block && view.start == merged.start+merged.length {
			merged.length += view.length
			continue
		}

		contiguous = false

		break
	}

	if contiguous {
		return merged
	}

	total := 0
	for _, view := range views {
		total += view.length
	}

	block := &rawBlock{
		buf: make([]byte, total),
	}

	pos := 0
	for _, view := range views {
		pos += copy(block.buf[pos:], view.raw())
	}

	return BufferView{
		block:  block,
		length: total,
	}
}
