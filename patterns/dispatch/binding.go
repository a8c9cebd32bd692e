package dispatch

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/saylorsolutions/broadcast/structures/set"
	"reflect"
	"slices"
)

// Channel is a small integer naming a category of events within one kind of [Binding].
// It's recommended to declare a set of constants for each binding kind, like the observer package does.
type Channel int

// ValueCallback is a registered callback for values of exactly type V.
type ValueCallback[V any] struct {
	fn      func(*V) error
	filters []func(*V) bool
}

// Accepts reports whether every filter registered with the callback accepts val.
func (c ValueCallback[V]) Accepts(val *V) bool {
	for _, filter := range c.filters {
		if !filter(val) {
			return false
		}
	}
	return true
}

// Invoke calls the callback without checking filters.
func (c ValueCallback[V]) Invoke(val *V) error {
	return c.fn(val)
}

// RefCallback is a registered callback for reference values.
// Its type check is a type assertion, so a callback registered for an interface type accepts every implementation of it.
type RefCallback struct {
	typ     reflect.Type
	accepts func(val any) bool
	invoke  func(val any) error
}

// Type returns the type the callback was registered for.
func (c RefCallback) Type() reflect.Type {
	return c.typ
}

// Accepts reports whether val satisfies the callback's type check and filters.
func (c RefCallback) Accepts(val any) bool {
	return c.accepts(val)
}

// Invoke calls the callback without checking filters.
// An error wrapping [ErrInvalidArgument] is returned if val isn't assignable to [RefCallback.Type].
func (c RefCallback) Invoke(val any) error {
	return c.invoke(val)
}

type valueKey struct {
	ch  Channel
	typ reflect.Type
}

// Binding is one listener's registry of callbacks, scoped by [Channel] and payload type.
//
// Value callbacks are keyed by the exact payload type and receive a pointer to the payload, so a payload is never converted to an interface to reach them.
// Ref callbacks are matched with a type assertion and an optional filter, which allows registering for interfaces.
//
// A Binding may be bound to a [Subject] once, and is removed from it with [Binding.Dispose].
// Callbacks should be registered before broadcasts start flowing, and a Binding is not safe for concurrent use.
type Binding struct {
	id       uuid.UUID
	subject  *Subject
	disposed bool
	channels set.Set[Channel]
	values   map[valueKey]any
	refs     map[Channel][]RefCallback
}

// NewBinding creates an unbound [Binding] with the given channels declared.
func NewBinding(channels ...Channel) *Binding {
	return &Binding{
		id:       uuid.New(),
		channels: set.New(channels...),
		values:   map[valueKey]any{},
		refs:     map[Channel][]RefCallback{},
	}
}

// NewBoundBinding creates a [Binding] with the given channels declared, and binds it to subject.
// The binding is returned even when an error is returned by [Binding.Bind], since the error may have been raised by a queued broadcast to other bindings.
func NewBoundBinding(subject *Subject, channels ...Channel) (*Binding, error) {
	b := NewBinding(channels...)
	return b, b.Bind(subject)
}

// ID returns the identifier generated for the binding when it was created.
// It's only used to tell bindings apart in logs.
func (b *Binding) ID() uuid.UUID {
	return b.id
}

// AddChannel declares ch so callbacks may be registered for it.
// Declaring a channel again does nothing.
func (b *Binding) AddChannel(ch Channel) error {
	if b.disposed {
		return ErrDisposed
	}
	b.channels = b.channels.Add(ch)
	return nil
}

// RemoveChannel drops ch along with every callback registered on it.
// Removing a channel that isn't declared does nothing.
//
// Broadcasts that invoke ch on this binding fail with [ErrUndeclaredChannel] afterward.
func (b *Binding) RemoveChannel(ch Channel) error {
	if b.disposed {
		return ErrDisposed
	}
	b.channels = b.channels.Remove(ch)
	delete(b.refs, ch)
	for key := range b.values {
		if key.ch == ch {
			delete(b.values, key)
		}
	}
	return nil
}

// HasChannel reports whether ch has been declared.
func (b *Binding) HasChannel(ch Channel) bool {
	return b.channels.Has(ch)
}

// Channels returns the declared channels in ascending order.
func (b *Binding) Channels() []Channel {
	chans := b.channels.Slice()
	slices.Sort(chans)
	return chans
}

// Subject returns the [Subject] this binding was bound to, or nil.
func (b *Binding) Subject() *Subject {
	return b.subject
}

// Bound reports whether [Binding.Bind] has succeeded at some point, even if the binding was disposed since.
func (b *Binding) Bound() bool {
	return b.subject != nil
}

// Disposed reports whether [Binding.Dispose] has been called.
func (b *Binding) Disposed() bool {
	return b.disposed
}

// Bind attaches the binding to subject.
// A binding can only ever be bound once, and binding is never allowed after disposal.
//
// Any error returned from a listener while the subject processes queued work is returned as well.
// The binding is still bound in that case.
func (b *Binding) Bind(subject *Subject) error {
	if subject == nil {
		return fmt.Errorf("%w: nil subject", ErrInvalidArgument)
	}
	if b.disposed {
		return ErrDisposed
	}
	if b.subject != nil {
		return ErrAlreadyBound
	}
	b.subject = subject
	return subject.AddBinding(b)
}

// Dispose removes the binding from its [Subject] if it's bound, and drops all channels and callbacks.
// Calling Dispose again does nothing.
//
// If the subject is processing a broadcast, then the binding's remaining callbacks for that broadcast are skipped.
//
// Like [Binding.Bind], removal goes through the subject's log, so an error returned from another listener while queued work drains is returned here as well.
// The binding is disposed either way, and if that error left the removal queued, it's applied the next time the log is drained.
func (b *Binding) Dispose() error {
	if b.disposed {
		return nil
	}
	b.disposed = true
	clear(b.channels)
	clear(b.values)
	clear(b.refs)
	if b.subject != nil {
		return b.subject.RemoveBinding(b)
	}
	return nil
}

func (b *Binding) checkChannel(ch Channel) error {
	if b.disposed {
		return ErrDisposed
	}
	if !b.channels.Has(ch) {
		return undeclared(ch)
	}
	return nil
}

// AddValueCallback registers fn to be called for values of exactly type V broadcast on ch.
// If filters are given, then fn is only called when all of them accept the value.
func AddValueCallback[V any](b *Binding, ch Channel, fn func(val *V) error, filters ...func(val *V) bool) error {
	if err := b.checkChannel(ch); err != nil {
		return err
	}
	if fn == nil {
		return fmt.Errorf("%w: nil callback", ErrInvalidArgument)
	}
	key := valueKey{ch: ch, typ: reflect.TypeFor[V]()}
	cbs, _ := b.values[key].([]ValueCallback[V])
	b.values[key] = append(cbs, ValueCallback[V]{fn: fn, filters: compact(filters)})
	return nil
}

// AddRefCallback registers fn to be called for values broadcast on ch that can be asserted to type V.
// If filters are given, then fn is only called when all of them accept the value.
func AddRefCallback[V any](b *Binding, ch Channel, fn func(val V) error, filters ...func(val V) bool) error {
	if err := b.checkChannel(ch); err != nil {
		return err
	}
	if fn == nil {
		return fmt.Errorf("%w: nil callback", ErrInvalidArgument)
	}
	typ := reflect.TypeFor[V]()
	filters = compact(filters)
	b.refs[ch] = append(b.refs[ch], RefCallback{
		typ: typ,
		accepts: func(val any) bool {
			tval, ok := val.(V)
			if !ok {
				return false
			}
			for _, filter := range filters {
				if !filter(tval) {
					return false
				}
			}
			return true
		},
		invoke: func(val any) error {
			tval, ok := val.(V)
			if !ok {
				return fmt.Errorf("%w: %T is not assignable to %s", ErrInvalidArgument, val, typ)
			}
			return fn(tval)
		},
	})
	return nil
}

// ValueCallbacks returns a copy of the value callbacks registered for type V on ch, in registration order.
// An empty result with a nil error is returned if there are none for that type.
func ValueCallbacks[V any](b *Binding, ch Channel) ([]ValueCallback[V], error) {
	if err := b.checkChannel(ch); err != nil {
		return nil, err
	}
	cbs, _ := b.values[valueKey{ch: ch, typ: reflect.TypeFor[V]()}].([]ValueCallback[V])
	return slices.Clone(cbs), nil
}

// RefCallbacks returns a copy of all ref callbacks registered on ch, for any type, in registration order.
func (b *Binding) RefCallbacks(ch Channel) ([]RefCallback, error) {
	if err := b.checkChannel(ch); err != nil {
		return nil, err
	}
	return slices.Clone(b.refs[ch]), nil
}

// InvokeValueCallbacks calls each accepting value callback for type V on ch in registration order, passing val through.
// The first error returned by a callback stops invocation and is returned unmodified.
//
// Invoking a disposed binding does nothing, so that a broadcast already underway finishes normally.
func InvokeValueCallbacks[V any](b *Binding, ch Channel, val *V) error {
	if b.disposed {
		return nil
	}
	if !b.channels.Has(ch) {
		return undeclared(ch)
	}
	cbs, _ := b.values[valueKey{ch: ch, typ: reflect.TypeFor[V]()}].([]ValueCallback[V])
	for _, cb := range cbs {
		if b.disposed {
			return nil
		}
		if !cb.Accepts(val) {
			continue
		}
		if err := cb.fn(val); err != nil {
			return err
		}
	}
	return nil
}

// InvokeRefCallbacks calls each ref callback on ch that accepts val, in registration order.
// The first error returned by a callback stops invocation and is returned unmodified.
// A nil val is accepted by no callback.
//
// Invoking a disposed binding does nothing, so that a broadcast already underway finishes normally.
func (b *Binding) InvokeRefCallbacks(ch Channel, val any) error {
	if b.disposed {
		return nil
	}
	if !b.channels.Has(ch) {
		return undeclared(ch)
	}
	for _, cb := range b.refs[ch] {
		if b.disposed {
			return nil
		}
		if !cb.accepts(val) {
			continue
		}
		if err := cb.invoke(val); err != nil {
			return err
		}
	}
	return nil
}

func compact[F any](filters []func(F) bool) []func(F) bool {
	var kept []func(F) bool
	for _, filter := range filters {
		if filter != nil {
			kept = append(kept, filter)
		}
	}
	return kept
}
