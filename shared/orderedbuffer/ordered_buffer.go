package orderedbuffer

import (
	"context"
	"errors"
	"sort"
	"sync"
)

var ErrClosedBuffer = errors.New("buffer is closed")

type CompareFunc[T any] func(a, b T) int

// OrderedBoundedBuffer keeps up to maxBufLen values sorted by compare. When
// it overflows, the smallest value is released to Source; Close releases
// the rest in order and closes Source. Safe for concurrent Insert.
type OrderedBoundedBuffer[T any] struct {
	mu        sync.Mutex
	data      []T
	maxBufLen int
	compare   CompareFunc[T]
	closed    bool

	sink chan T
}

func NewOrderedBoundedBuffer[T any](maxBufLen int, cmp CompareFunc[T]) *OrderedBoundedBuffer[T] {
	if maxBufLen <= 0 {
		maxBufLen = 1
	}
	return &OrderedBoundedBuffer[T]{
		data:      make([]T, 0, maxBufLen+1),
		maxBufLen: maxBufLen,
		compare:   cmp,
		sink:      make(chan T, maxBufLen*2),
	}
}

// Insert places val in order. Equal values keep insertion order.
func (b *OrderedBoundedBuffer[T]) Insert(ctx context.Context, val T) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosedBuffer
	}

	idx := sort.Search(len(b.data), func(i int) bool {
		return b.compare(val, b.data[i]) < 0
	})
	b.data = append(b.data, val)
	copy(b.data[idx+1:], b.data[idx:])
	b.data[idx] = val

	if len(b.data) > b.maxBufLen {
		evicted := b.data[0]
		b.data = b.data[1:]
		select {
		case <-ctx.Done():
			return ctx.Err()
		case b.sink <- evicted:
		}
	}
	return nil
}

func (b *OrderedBoundedBuffer[T]) Source() <-chan T {
	return b.sink
}

// Close flushes the buffered values to Source and closes it. Values not yet
// flushed when ctx is done are lost. Closing twice is a no-op.
func (b *OrderedBoundedBuffer[T]) Close(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	defer close(b.sink)

	for _, v := range b.data {
		select {
		case <-ctx.Done():
			return
		case b.sink <- v:
		}
	}
	b.data = nil
}
