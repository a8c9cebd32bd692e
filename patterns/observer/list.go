package observer

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/broadcast/patterns/dispatch"
	"slices"
)

var (
	ErrOutOfRange = errors.New("index out of range")
)

// Added is broadcast when a value is inserted into a [List].
type Added[T any] struct {
	Index int
	Value T
}

func (e *Added[T]) Invoke(b *dispatch.Binding) error {
	return dispatch.InvokeValueCallbacks(b, ChannelAdded, e)
}

// Removed is broadcast when a value is removed from a [List].
type Removed[T any] struct {
	Index int
	Value T
}

func (e *Removed[T]) Invoke(b *dispatch.Binding) error {
	return dispatch.InvokeValueCallbacks(b, ChannelRemoved, e)
}

// Replaced is broadcast when a value in a [List] is overwritten.
type Replaced[T any] struct {
	Index int
	Old   T
	New   T
}

func (e *Replaced[T]) Invoke(b *dispatch.Binding) error {
	return dispatch.InvokeValueCallbacks(b, ChannelReplaced, e)
}

// Cleared is broadcast when all values are removed from a [List] at once.
type Cleared[T any] struct {
	Values []T
}

func (e *Cleared[T]) Invoke(b *dispatch.Binding) error {
	return dispatch.InvokeValueCallbacks(b, ChannelCleared, e)
}

// List is a slice that broadcasts every change to its observers.
// Errors returned from mutating methods come from observers, the mutation itself has been applied either way.
type List[T any] struct {
	subject *dispatch.Subject
	items   []T
}

// NewList creates a [List] with the given values.
// Options are passed through to [dispatch.NewSubject].
func NewList[T any](vals []T, opts ...dispatch.Option) *List[T] {
	return &List[T]{
		subject: dispatch.NewSubject(opts...),
		items:   slices.Clone(vals),
	}
}

func (l *List[T]) Len() int {
	return len(l.items)
}

// Get returns the value at idx, or false if idx is out of range.
func (l *List[T]) Get(idx int) (T, bool) {
	if idx < 0 || idx >= len(l.items) {
		var mt T
		return mt, false
	}
	return l.items[idx], true
}

// Items returns a copy of the current values.
func (l *List[T]) Items() []T {
	return slices.Clone(l.items)
}

// Add appends val to the end of the [List].
func (l *List[T]) Add(val T) error {
	return l.Insert(len(l.items), val)
}

// Insert places val at idx, shifting later values back.
// An idx equal to [List.Len] appends.
func (l *List[T]) Insert(idx int, val T) error {
	if idx < 0 || idx > len(l.items) {
		return fmt.Errorf("%w: cannot insert at %d with length %d", ErrOutOfRange, idx, len(l.items))
	}
	l.items = slices.Insert(l.items, idx, val)
	return dispatch.Publish(l.subject, Added[T]{Index: idx, Value: val})
}

// RemoveAt removes and returns the value at idx.
func (l *List[T]) RemoveAt(idx int) (T, error) {
	if idx < 0 || idx >= len(l.items) {
		var mt T
		return mt, fmt.Errorf("%w: cannot remove %d with length %d", ErrOutOfRange, idx, len(l.items))
	}
	val := l.items[idx]
	l.items = slices.Delete(l.items, idx, idx+1)
	return val, dispatch.Publish(l.subject, Removed[T]{Index: idx, Value: val})
}

// Set overwrites the value at idx.
func (l *List[T]) Set(idx int, val T) error {
	if idx < 0 || idx >= len(l.items) {
		return fmt.Errorf("%w: cannot set %d with length %d", ErrOutOfRange, idx, len(l.items))
	}
	old := l.items[idx]
	l.items[idx] = val
	return dispatch.Publish(l.subject, Replaced[T]{Index: idx, Old: old, New: val})
}

// Clear removes all values.
// Nothing is broadcast if the [List] is already empty.
func (l *List[T]) Clear() error {
	if len(l.items) == 0 {
		return nil
	}
	removed := l.items
	l.items = nil
	return dispatch.Publish(l.subject, Cleared[T]{Values: removed})
}

// ListObserver registers callbacks for changes to a [List].
type ListObserver[T any] struct {
	binding *dispatch.Binding
}

// Observe creates a [ListObserver] that is notified of every later change to l.
func (l *List[T]) Observe() (*ListObserver[T], error) {
	b, err := dispatch.NewBoundBinding(l.subject, ChannelAdded, ChannelRemoved, ChannelReplaced, ChannelCleared)
	return &ListObserver[T]{binding: b}, err
}

// Binding returns the underlying [dispatch.Binding].
func (o *ListObserver[T]) Binding() *dispatch.Binding {
	return o.binding
}

func (o *ListObserver[T]) OnAdded(fn func(idx int, val T) error) error {
	return dispatch.AddValueCallback(o.binding, ChannelAdded, func(e *Added[T]) error {
		return fn(e.Index, e.Value)
	})
}

func (o *ListObserver[T]) OnRemoved(fn func(idx int, val T) error) error {
	return dispatch.AddValueCallback(o.binding, ChannelRemoved, func(e *Removed[T]) error {
		return fn(e.Index, e.Value)
	})
}

func (o *ListObserver[T]) OnReplaced(fn func(idx int, oldVal, newVal T) error) error {
	return dispatch.AddValueCallback(o.binding, ChannelReplaced, func(e *Replaced[T]) error {
		return fn(e.Index, e.Old, e.New)
	})
}

// OnCleared registers fn to receive the values that were removed by [List.Clear].
func (o *ListObserver[T]) OnCleared(fn func(removed []T) error) error {
	return dispatch.AddValueCallback(o.binding, ChannelCleared, func(e *Cleared[T]) error {
		return fn(e.Values)
	})
}

// Close stops notifications to this observer.
func (o *ListObserver[T]) Close() error {
	return o.binding.Dispose()
}
