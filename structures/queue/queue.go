package queue

import "iter"

const minBuffer = 4

// Queue is a FIFO queue backed by a growable ring buffer.
// It is not safe for concurrent use, callers must serialize access themselves.
//
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	values []T
	head   int
	count  int
}

// NewQueue creates a [Queue], optionally reserving space for initialBuffer values up front.
func NewQueue[T any](initialBuffer ...int) *Queue[T] {
	if len(initialBuffer) > 0 && initialBuffer[0] > 0 {
		return &Queue[T]{values: make([]T, initialBuffer[0])}
	}
	return &Queue[T]{}
}

// Len gets the length of the Queue
func (q *Queue[T]) Len() int {
	return q.count
}

// Push will push an item to the tail of the Queue.
func (q *Queue[T]) Push(val T) {
	if q.count == len(q.values) {
		q.grow()
	}
	q.values[(q.head+q.count)%len(q.values)] = val
	q.count++
}

// Pop will pop an item from the head of the Queue.
// False will be returned if the Queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	var mt T
	if q.count == 0 {
		return mt, false
	}
	val := q.values[q.head]
	// Zeroing the slot so the ring doesn't hold references past their lifetime.
	q.values[q.head] = mt
	q.head = (q.head + 1) % len(q.values)
	q.count--
	if q.count == 0 {
		q.head = 0
	}
	return val, true
}

// Peek returns the item at the head of the Queue without removing it.
// False will be returned if the Queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	if q.count == 0 {
		var mt T
		return mt, false
	}
	return q.values[q.head], true
}

// PeekRef returns a pointer to the item at the head of the Queue, or nil if the Queue is empty.
// The pointer is only valid until the next call to Push, Pop, or Clear.
func (q *Queue[T]) PeekRef() *T {
	if q.count == 0 {
		return nil
	}
	return &q.values[q.head]
}

// Clear removes all items from the Queue, keeping the allocated buffer for reuse.
func (q *Queue[T]) Clear() {
	clear(q.values)
	q.head = 0
	q.count = 0
}

// All returns an iterator that pops values from the Queue until it's empty or iteration stops.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := q.Pop()
			if !ok {
				return
			}
			if !yield(val) {
				return
			}
		}
	}
}

func (q *Queue[T]) grow() {
	size := len(q.values) * 2
	if size < minBuffer {
		size = minBuffer
	}
	values := make([]T, size)
	for i := 0; i < q.count; i++ {
		values[i] = q.values[(q.head+i)%len(q.values)]
	}
	q.values = values
	q.head = 0
}
