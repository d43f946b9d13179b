package zerobuf

import (
	"context"
	"sync"
)

// BufferPool keeps up to capacity fixed-size buffers for reuse. Unlike a
// single Buffer it is shared between producers, so access is serialized
// internally. A buffer obtained here routes its Release back to the pool;
// the caller must drop every view into a buffer before releasing it.
type BufferPool struct {
	sync.Mutex

	bufferSize int
	freelist   []*Buffer
}

func NewBufferPool(capacity, bufferSize int) (*BufferPool, error) {
	pool := &BufferPool{
		bufferSize: bufferSize,
		freelist:   make([]*Buffer, 0, capacity),
	}

	for i := 0; i < capacity; i++ {
		buf, err := pool.create()
		if err != nil {
			return nil, err
		}

		pool.freelist = append(pool.freelist, buf)
	}

	return pool, nil
}

// Buffer pops a free buffer, or allocates a fresh one when the freelist
// is empty.
func (o *BufferPool) Buffer() (*Buffer, error) {
	o.Lock()

	if n := len(o.freelist); n > 0 {
		buf := o.freelist[n-1]
		o.freelist[n-1] = nil
		o.freelist = o.freelist[:n-1]

		o.Unlock()

		return buf, nil
	}

	o.Unlock()

	return o.create()
}

// ReturnBuffer keeps the buffer for reuse when the freelist has room,
// otherwise drops it.
func (o *BufferPool) ReturnBuffer(buf *Buffer) {
	o.Lock()
	defer o.Unlock()

	if len(o.freelist) < cap(o.freelist) {
		o.freelist = append(o.freelist, buf)
	}
}

func (o *BufferPool) ID() string {
	return "buffer-pool"
}

// Clean drops the cached free buffers so idle memory can be reclaimed.
// Subsequent Buffer calls allocate fresh ones.
func (o *BufferPool) Clean(ctx context.Context) error {
	o.Lock()
	defer o.Unlock()

	for len(o.freelist) > 0 {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		n := len(o.freelist) - 1
		o.freelist[n] = nil
		o.freelist = o.freelist[:n]
	}

	return nil
}

func (o *BufferPool) create() (*Buffer, error) {
	buf, err := Allocate(o.bufferSize)
	if err != nil {
		return nil, err
	}

	buf.pool = o

	return buf, nil
}
