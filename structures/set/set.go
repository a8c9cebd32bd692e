// Package set provides set semantics over comparable values.
//
// [Set] is a plain map-backed set with no ordering guarantees.
// [Ordered] additionally remembers insertion order, which is needed anywhere iteration order is observable.
package set

// Set formalizes set semantics for a map of comparable keys.
type Set[T comparable] map[T]struct{}

// New creates a new [Set] from the given values.
// The returned [Set] will have no values if none are given.
func New[T comparable](vals ...T) Set[T] {
	s := Set[T]{}
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Slice() []T {
	if len(s) == 0 {
		return nil
	}
	vals := make([]T, len(s))
	i := 0
	for val := range s {
		vals[i] = val
		i++
	}
	return vals
}

func (s Set[T]) Add(val T, others ...T) Set[T] {
	if s == nil {
		s = Set[T]{}
	}
	s[val] = struct{}{}
	for _, v := range others {
		s[v] = struct{}{}
	}
	return s
}

// Remove deletes vals from the [Set] and returns it, for symmetry with [Set.Add].
// Values that aren't present are ignored, and removing from a nil [Set] does nothing.
func (s Set[T]) Remove(vals ...T) Set[T] {
	for _, v := range vals {
		delete(s, v)
	}
	return s
}

func (s Set[T]) Has(val T) bool {
	_, ok := s[val]
	return ok
}
