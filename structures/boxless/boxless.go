package boxless

import (
	"github.com/saylorsolutions/broadcast/invariant"
	"github.com/saylorsolutions/broadcast/structures/queue"
	"reflect"
)

// Acceptor is implemented by values stored in a [Queue] with handler type H.
// Accept is called through a pointer to the stored value, so it may use a pointer receiver to avoid copying larger values.
type Acceptor[H any] interface {
	// Accept delivers the value to the handler.
	Accept(handler H)
}

// Storable is the constraint for elements of type V: *V must implement [Acceptor] for H.
type Storable[H any, V any] interface {
	*V
	Acceptor[H]
}

// Queue is a FIFO of heterogeneous values, each of which can be delivered to a handler of type H.
type Queue[H any] struct {
	order queue.Queue[typedQueue[H]]
	typed map[reflect.Type]typedQueue[H]
}

// New creates an empty [Queue].
func New[H any]() *Queue[H] {
	return &Queue[H]{
		typed: map[reflect.Type]typedQueue[H]{},
	}
}

// Enqueue adds val to the tail of q.
// This is a function rather than a method because it needs the concrete type of val as a type parameter.
func Enqueue[H any, V any, P Storable[H, V]](q *Queue[H], val V) {
	if q.typed == nil {
		q.typed = map[reflect.Type]typedQueue[H]{}
	}
	key := reflect.TypeFor[V]()
	tq, ok := q.typed[key]
	if !ok {
		tq = new(typed[H, V, P])
		q.typed[key] = tq
	}
	tq.(*typed[H, V, P]).push(val)
	q.order.Push(tq)
}

// Len returns the number of values across all types.
func (q *Queue[H]) Len() int {
	return q.order.Len()
}

// HasValues reports whether at least one value is queued.
func (q *Queue[H]) HasValues() bool {
	return q.order.Len() > 0
}

// Types returns the number of distinct element types that have been queued since creation.
// Sub-queues are kept after they drain so steady state traffic doesn't reallocate them.
func (q *Queue[H]) Types() int {
	return len(q.typed)
}

// Dequeue delivers the oldest value to handler and removes it.
// The value is delivered in place, and is removed even if the handler panics.
// Dequeue must not be called for the same [Queue] from within an Accept method.
// Returns false if the queue was empty.
func (q *Queue[H]) Dequeue(handler H) bool {
	tq, ok := q.order.Pop()
	if !ok {
		return false
	}
	tq.dequeue(handler)
	return true
}

// Peek delivers the oldest value to handler without removing it.
// Returns false if the queue was empty.
func (q *Queue[H]) Peek(handler H) bool {
	tq, ok := q.order.Peek()
	if !ok {
		return false
	}
	tq.peek(handler)
	return true
}

// Discard drops up to n values from the head of the queue without delivering them.
// Values of n <= 0 do nothing, and n larger than [Queue.Len] empties the queue.
func (q *Queue[H]) Discard(n int) {
	for ; n > 0; n-- {
		tq, ok := q.order.Pop()
		if !ok {
			return
		}
		tq.drop()
	}
}

// Clear drops all values.
func (q *Queue[H]) Clear() {
	q.order.Clear()
	for _, tq := range q.typed {
		tq.clear()
	}
}

type typedQueue[H any] interface {
	dequeue(handler H)
	peek(handler H)
	drop()
	clear()
}

// typed holds values of a single type.
// Most traffic never has more than one value of a type in flight, so the first lives in a slot and the overflow queue is only touched when that slot is taken.
// While the slot is occupied it's always older than anything in overflow.
type typed[H any, V any, P Storable[H, V]] struct {
	slot     V
	occupied bool
	overflow queue.Queue[V]
}

func (t *typed[H, V, P]) push(val V) {
	if !t.occupied && t.overflow.Len() == 0 {
		t.slot = val
		t.occupied = true
		return
	}
	t.overflow.Push(val)
}

func (t *typed[H, V, P]) head() *V {
	if t.occupied {
		return &t.slot
	}
	ref := t.overflow.PeekRef()
	invariant.Check("typed queue is not empty when ordered", ref != nil)
	return ref
}

func (t *typed[H, V, P]) dequeue(handler H) {
	// Values pushed while Accept runs land behind the head, so the head is still the one to drop afterward.
	defer t.drop()
	P(t.head()).Accept(handler)
}

func (t *typed[H, V, P]) peek(handler H) {
	P(t.head()).Accept(handler)
}

func (t *typed[H, V, P]) drop() {
	if t.occupied {
		var mt V
		t.slot = mt
		t.occupied = false
		return
	}
	t.overflow.Pop()
}

func (t *typed[H, V, P]) clear() {
	var mt V
	t.slot = mt
	t.occupied = false
	t.overflow.Clear()
}
