// Package observer provides observable values and lists built on a [dispatch.Subject].
//
// Changes are broadcast synchronously, so observers have been notified by the time a mutating method returns.
// A change made from within an observer is applied immediately, but its notification is queued behind the one currently being delivered.
package observer

import (
	"github.com/saylorsolutions/broadcast/patterns/dispatch"
)

const (
	ChannelChanged dispatch.Channel = iota // ChannelChanged carries [Changed] broadcasts from a [Value].
	ChannelAdded                           // ChannelAdded carries [Added] broadcasts from a [List].
	ChannelRemoved                         // ChannelRemoved carries [Removed] broadcasts from a [List].
	ChannelReplaced                        // ChannelReplaced carries [Replaced] broadcasts from a [List].
	ChannelCleared                         // ChannelCleared carries [Cleared] broadcasts from a [List].
)

// Observer receives the previous and new value from a [Value] when it's set.
// A returned error stops notification of later observers, and is returned from [Value.Set].
type Observer[T any] func(oldVal, newVal T) error

// Changed is broadcast when a [Value] is set.
type Changed[T any] struct {
	Old T
	New T
}

func (c *Changed[T]) Invoke(b *dispatch.Binding) error {
	return dispatch.InvokeValueCallbacks(b, ChannelChanged, c)
}

// Value is a value that may be observed for changes.
// Like the [dispatch.Subject] behind it, a Value is not safe for concurrent use.
type Value[T any] struct {
	subject *dispatch.Subject
	value   T
}

// NewValue creates a [Value] with an initial value.
// Options are passed through to [dispatch.NewSubject].
func NewValue[T any](val T, opts ...dispatch.Option) *Value[T] {
	return &Value[T]{
		subject: dispatch.NewSubject(opts...),
		value:   val,
	}
}

func (v *Value[T]) Get() T {
	return v.value
}

// Set updates the value and notifies observers.
// The value is updated even if an observer returns an error.
func (v *Value[T]) Set(newVal T) error {
	old := v.value
	v.value = newVal
	return dispatch.Publish(v.subject, Changed[T]{Old: old, New: newVal})
}

// Observe registers obs to be called for each later call to [Value.Set].
// Disposing the returned binding stops notifications.
func (v *Value[T]) Observe(obs Observer[T]) (*dispatch.Binding, error) {
	b := dispatch.NewBinding(ChannelChanged)
	if err := dispatch.AddValueCallback(b, ChannelChanged, func(c *Changed[T]) error {
		return obs(c.Old, c.New)
	}); err != nil {
		return nil, err
	}
	return b, b.Bind(v.subject)
}
