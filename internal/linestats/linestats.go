package linestats

import (
	"io"

	"github.com/7phs/zerobuf"
	"github.com/minio/highwayhash"
)

var (
	_ Counter = (*PoolCounter)(nil)

	newline = []byte("\n")
)

type Stats struct {
	Lines  int `json:"lines"`
	Blank  int `json:"blank"`
	Unique int `json:"unique"`
	Bytes  int `json:"bytes"`
}

type Counter interface {
	Count(r io.Reader) (Stats, error)
}

// PoolCounter streams a byte source through pooled buffers and counts its
// lines without copying: chunks are collected as views, partial lines are
// carried across buffer boundaries by a collator, and distinct lines are
// tracked by their highwayhash sum.
type PoolCounter struct {
	pool  *zerobuf.BufferPool
	nonce [32]byte
}

func NewPoolCounter(pool *zerobuf.BufferPool) *PoolCounter {
	return &PoolCounter{
		pool: pool,
	}
}

func (o *PoolCounter) Count(r io.Reader) (Stats, error) {
	buf, err := o.pool.Buffer()
	if err != nil {
		return Stats{}, err
	}

	var (
		stats    Stats
		collator zerobuf.BufferCollator
		seen     = map[uint64]struct{}{}
	)

	for {
		last := buf.Writepos()

		n, err := buf.ReadFrom(r)
		switch err {
		case nil:
		case zerobuf.ErrBufferFull:
			// pending views may still reference this block, so the full
			// buffer is dropped rather than released
			buf, err = o.pool.Buffer()
			if err != nil {
				return Stats{}, err
			}

			continue
		case zerobuf.ErrEndOfInput:
			o.countLines(collator.Collapse(), &stats, seen)
			stats.Unique = len(seen)

			buf.Release()

			return stats, nil
		default:
			return Stats{}, err
		}

		chunk, err := buf.ViewRange(last, last+n)
		if err != nil {
			return Stats{}, err
		}

		stats.Bytes += n

		collator.Append(chunk)

		if !chunk.Contains(newline) {
			continue
		}

		data := collator.Collapse()
		cut := data.RFind(newline)

		complete, err := data.Slice(0, cut+1)
		if err != nil {
			return Stats{}, err
		}

		o.countLines(complete, &stats, seen)

		rest, err := data.Slice(cut+1, data.Len())
		if err != nil {
			return Stats{}, err
		}

		if rest.Len() > 0 {
			collator.Append(rest)
		}
	}
}

func (o *PoolCounter) countLines(data zerobuf.BufferView, stats *Stats, seen map[uint64]struct{}) {
	lines := data.SplitLines(false)

	for {
		line, ok := lines.Next()
		if !ok {
			return
		}

		stats.Lines++

		if line.Len() == 0 || line.IsSpace() {
			stats.Blank++
			continue
		}

		seen[o.hash(line.Strip(nil))] = struct{}{}
	}
}

func (o *PoolCounter) hash(line zerobuf.BufferView) uint64 {
	return highwayhash.Sum64(line.Bytes(), o.nonce[:])
}
