// Package list provides a doubly linked list that recycles its nodes through a [syncx.Pool].
//
// This is useful for structures with a lot of add/remove churn, where allocating a node per insertion would create garbage.
// A [List] is not safe for concurrent use.
package list

import (
	"github.com/saylorsolutions/broadcast/syncx"
	"iter"
)

// Node is an element of a [List].
// A Node must not be used after it's been removed, since it may be handed out again by the pool.
type Node[T any] struct {
	Value T
	prev  *Node[T]
	next  *Node[T]
	list  *List[T]
}

// Next returns the following [Node], or nil at the back of the [List].
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the preceding [Node], or nil at the front of the [List].
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// List is a doubly linked list with pooled nodes.
type List[T any] struct {
	head  *Node[T]
	tail  *Node[T]
	count int
	nodes *syncx.Pool[*Node[T]]
}

// New creates an empty [List].
func New[T any]() *List[T] {
	return &List[T]{
		nodes: syncx.NewPool(func() *Node[T] {
			return new(Node[T])
		}, func(n *Node[T]) {
			*n = Node[T]{}
		}),
	}
}

// Len returns the number of values in the [List].
func (l *List[T]) Len() int {
	return l.count
}

// Front returns the first [Node], or nil if the [List] is empty.
func (l *List[T]) Front() *Node[T] {
	return l.head
}

// Back returns the last [Node], or nil if the [List] is empty.
func (l *List[T]) Back() *Node[T] {
	return l.tail
}

// PushBack appends val to the [List], returning its [Node] as a handle for removal.
func (l *List[T]) PushBack(val T) *Node[T] {
	n := l.nodes.Get()
	n.Value = val
	n.list = l
	n.prev = l.tail
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.count++
	return n
}

// Remove unlinks n from the [List] and returns its value.
// Nodes that don't belong to this [List] are ignored, and the zero value is returned.
func (l *List[T]) Remove(n *Node[T]) T {
	var mt T
	if n == nil || n.list != l {
		return mt
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	l.count--
	val := n.Value
	l.nodes.Put(n)
	return val
}

// Clear removes all values, returning every [Node] to the pool.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		l.nodes.Put(n)
		n = next
	}
	l.head = nil
	l.tail = nil
	l.count = 0
}

// All iterates values from front to back.
// The [List] must not be modified during iteration, except for removing the current value.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; {
			next := n.next
			if !yield(n.Value) {
				return
			}
			n = next
		}
	}
}
