package set

import (
	"github.com/saylorsolutions/broadcast/structures/list"
	"iter"
)

// Ordered is a duplicate-free set that iterates in insertion order.
// Add, Remove, and Has are O(1), and removed slots are recycled through a pooled [list.List].
//
// Ordered is not safe for concurrent use.
type Ordered[T comparable] struct {
	index  map[T]*list.Node[T]
	values *list.List[T]
}

// NewOrdered creates an [Ordered] set containing vals, in the order given.
func NewOrdered[T comparable](vals ...T) *Ordered[T] {
	s := &Ordered[T]{
		index:  make(map[T]*list.Node[T], len(vals)),
		values: list.New[T](),
	}
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

// Add appends val to the end of the iteration order.
// Returns false if val was already present, in which case its position is unchanged.
func (s *Ordered[T]) Add(val T) bool {
	if _, ok := s.index[val]; ok {
		return false
	}
	s.index[val] = s.values.PushBack(val)
	return true
}

// Remove returns false if val wasn't present.
func (s *Ordered[T]) Remove(val T) bool {
	n, ok := s.index[val]
	if !ok {
		return false
	}
	delete(s.index, val)
	s.values.Remove(n)
	return true
}

func (s *Ordered[T]) Has(val T) bool {
	_, ok := s.index[val]
	return ok
}

func (s *Ordered[T]) Len() int {
	return len(s.index)
}

func (s *Ordered[T]) Clear() {
	clear(s.index)
	s.values.Clear()
}

// All iterates values in insertion order.
// The set must not be modified during iteration, except for removing the current value.
func (s *Ordered[T]) All() iter.Seq[T] {
	return s.values.All()
}

// Slice returns a copy of the values in insertion order, or nil if the set is empty.
func (s *Ordered[T]) Slice() []T {
	if s.Len() == 0 {
		return nil
	}
	vals := make([]T, 0, s.Len())
	for v := range s.All() {
		vals = append(vals, v)
	}
	return vals
}
