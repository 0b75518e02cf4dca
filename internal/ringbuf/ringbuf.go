package ringbuf

import (
	"fmt"
	"iter"
)

// Buffer is a bounded FIFO ring. The zero value is unusable; construct with
// New. Not safe for concurrent use.
type Buffer[T any] struct {
	buf   []T
	head  int // index of the oldest element
	count int
}

// New returns a Buffer holding at most capacity values. Capacity 0 yields a
// buffer that drops everything pushed into it. Negative capacity panics.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("ringbuf: negative capacity %d", capacity))
	}
	b := &Buffer[T]{}
	if capacity > 0 {
		b.buf = make([]T, capacity)
	}
	return b
}

// Push inserts v. When the buffer is full the oldest value is evicted to
// make room and returned with dropped=true. With capacity 0, v itself is
// discarded immediately. Push never fails and never blocks.
func (b *Buffer[T]) Push(v T) (evicted T, dropped bool) {
	if len(b.buf) == 0 {
		return v, true
	}
	if b.count == len(b.buf) {
		evicted = b.buf[b.head]
		b.buf[b.head] = v
		b.head = (b.head + 1) % len(b.buf)
		return evicted, true
	}
	b.buf[(b.head+b.count)%len(b.buf)] = v
	b.count++
	return evicted, false
}

// Drain returns a one-shot iterator over the buffered values, oldest first.
// Each value is removed as it is yielded; consuming the sequence fully
// leaves the buffer empty. Stopping early keeps the unyielded remainder.
func (b *Buffer[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for b.count > 0 {
			v := b.buf[b.head]
			var zero T
			b.buf[b.head] = zero // release for GC
			b.head = (b.head + 1) % len(b.buf)
			b.count--
			if !yield(v) {
				return
			}
		}
	}
}

// Len returns the number of values currently held, 0..Cap.
func (b *Buffer[T]) Len() int { return b.count }

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int { return len(b.buf) }
