package dispatch

// Broadcast is implemented by event values published with [Publish].
// A Broadcast knows which channels and types to invoke on a [Binding], usually by calling [InvokeValueCallbacks] or [Binding.InvokeRefCallbacks].
//
// Invoke is called through a pointer to the queued value, so a pointer receiver can pass its own fields to value callbacks without copying them.
// Broadcasts should be treated as immutable once published.
type Broadcast interface {
	Invoke(binding *Binding) error
}

// Publishable is the constraint satisfied by broadcast types T where *T implements [Broadcast].
// Value receivers count, since they're in the method set of *T.
type Publishable[T any] interface {
	*T
	Broadcast
}

var (
	_ Broadcast = (*ValueBroadcast[int])(nil)
	_ Broadcast = (*RefBroadcast)(nil)
)

// ValueBroadcast delivers Value to value callbacks for type V on a single channel.
type ValueBroadcast[V any] struct {
	Channel Channel
	Value   V
}

func (b *ValueBroadcast[V]) Invoke(binding *Binding) error {
	return InvokeValueCallbacks(binding, b.Channel, &b.Value)
}

// RefBroadcast delivers Value to ref callbacks on a single channel.
type RefBroadcast struct {
	Channel Channel
	Value   any
}

func (b *RefBroadcast) Invoke(binding *Binding) error {
	return binding.InvokeRefCallbacks(b.Channel, b.Value)
}
