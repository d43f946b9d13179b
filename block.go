package zerobuf

var emptyBlock = &rawBlock{}

// rawBlock is a fixed-size memory region shared between the owning Buffer
// and every view derived from it. It is never resized; bytes below the
// owner's write position are never modified.
type rawBlock struct {
	buf []byte
}

func newRawBlock(size int) (block *rawBlock, err error) {
	defer func() {
		if r := recover(); r != nil {
			block = nil
			err = ErrAllocationFailure
		}
	}()

	return &rawBlock{
		buf: make([]byte, size),
	}, nil
}

func (o *rawBlock) capacity() int {
	return len(o.buf)
}
