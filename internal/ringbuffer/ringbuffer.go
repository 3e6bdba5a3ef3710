// Package ringbuffer implements a fixed capacity FIFO queue that can also be
// trimmed from its newest end.
package ringbuffer

type RingBuffer[T any] struct {
	buf   []T
	first int
	count int
}

// New returns an empty buffer holding up to capacity items; zero means one.
func New[T any](capacity uint) *RingBuffer[T] {
	return &RingBuffer[T]{
		buf: make([]T, max(1, capacity)),
	}
}

func (r *RingBuffer[T]) Len() int {
	return r.count
}

func (r *RingBuffer[T]) Cap() int {
	return len(r.buf)
}

func (r *RingBuffer[T]) IsFull() bool {
	return r.count == len(r.buf)
}

// Push appends item as the newest element. It returns false when the buffer is full.
func (r *RingBuffer[T]) Push(item T) bool {
	if r.IsFull() {
		return false
	}

	r.buf[r.index(r.count)] = item
	r.count++
	return true
}

// Pop removes and returns the oldest item.
func (r *RingBuffer[T]) Pop() (T, bool) {
	var zero T
	if r.count == 0 {
		return zero, false
	}

	item := r.buf[r.first]
	r.buf[r.first] = zero
	r.first = r.index(1)
	r.count--
	return item, true
}

// Back returns the newest item without removing it.
func (r *RingBuffer[T]) Back() (T, bool) {
	if r.count == 0 {
		var zero T
		return zero, false
	}

	return r.buf[r.index(r.count-1)], true
}

// At returns the item at offset i from the oldest one.
func (r *RingBuffer[T]) At(i int) (T, bool) {
	if i < 0 || i >= r.count {
		var zero T
		return zero, false
	}

	return r.buf[r.index(i)], true
}

// PopBack removes and returns the newest item.
func (r *RingBuffer[T]) PopBack() (T, bool) {
	item, ok := r.Back()
	if !ok {
		return item, false
	}

	var zero T
	r.buf[r.index(r.count-1)] = zero
	r.count--
	return item, true
}

// index maps an offset from the oldest item to a slot in buf.
func (r *RingBuffer[T]) index(offset int) int {
	return (r.first + offset) % len(r.buf)
}
