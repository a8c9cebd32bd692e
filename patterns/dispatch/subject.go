package dispatch

import (
	"context"
	"fmt"
	"github.com/saylorsolutions/broadcast/invariant"
	"github.com/saylorsolutions/broadcast/structures/boxless"
	"github.com/saylorsolutions/broadcast/structures/queue"
	"github.com/saylorsolutions/broadcast/structures/set"
	"log/slog"
)

type opKind uint8

const (
	opAddBinding opKind = iota
	opRemoveBinding
	opClearBindings
	opBroadcast
)

func (k opKind) String() string {
	switch k {
	case opAddBinding:
		return "add-binding"
	case opRemoveBinding:
		return "remove-binding"
	case opClearBindings:
		return "clear-bindings"
	case opBroadcast:
		return "broadcast"
	default:
		return fmt.Sprintf("opKind(%d)", uint8(k))
	}
}

type operation struct {
	kind    opKind
	binding *Binding
}

// delivery is the handler that queued broadcasts are delivered to.
type delivery struct {
	bindings *set.Ordered[*Binding]
	err      error
}

// envelope adapts a published value to the payload queue.
type envelope[T any, P Publishable[T]] struct {
	value T
}

func (e *envelope[T, P]) Accept(d *delivery) {
	for b := range d.bindings.All() {
		if err := P(&e.value).Invoke(b); err != nil {
			d.err = err
			return
		}
	}
}

// Subject is the dispatch hub for a set of [Binding].
//
// Every request (adding, removing, or clearing bindings, and publishing) is appended to one FIFO operation log, and the log is drained on the caller's stack.
// A request made while the log is being drained, like one made from within a callback, is appended to the log and the call returns immediately.
// The loop that is already running applies it once every earlier operation has completed.
//
// This means that a broadcast is always delivered to exactly the bindings that were members when its turn came.
// A binding added during a broadcast won't see it, and a binding removed during a broadcast still receives the rest of it.
//
// A Subject is not safe for concurrent use, callers on multiple goroutines must serialize access themselves.
type Subject struct {
	bindings   *set.Ordered[*Binding]
	ops        *queue.Queue[operation]
	payloads   *boxless.Queue[*delivery]
	current    delivery
	processing bool
	log        *slog.Logger
}

// NewSubject creates a [Subject] with no bindings.
// Panics if an [Option] returns an error, since that's a programming error.
func NewSubject(opts ...Option) *Subject {
	conf := defaultConf()
	for _, opt := range opts {
		if err := opt(&conf); err != nil {
			panic(fmt.Sprintf("invalid subject option: %v", err))
		}
	}
	s := &Subject{
		bindings: set.NewOrdered[*Binding](),
		ops:      queue.NewQueue[operation](conf.capacity),
		payloads: boxless.New[*delivery](),
		log:      conf.log,
	}
	s.current.bindings = s.bindings
	return s
}

// AddBinding queues b to be added as a member.
// Adding an existing member does nothing.
//
// An unbound binding becomes bound to this Subject.
// A binding bound to a different Subject is rejected with [ErrAlreadyBound], and a disposed binding with [ErrDisposed].
//
// Returns the first listener error raised while draining the log, or nil if the Subject was already processing.
func (s *Subject) AddBinding(b *Binding) error {
	if b == nil {
		return fmt.Errorf("%w: nil binding", ErrInvalidArgument)
	}
	if b.disposed {
		return ErrDisposed
	}
	switch b.subject {
	case nil:
		b.subject = s
	case s:
	default:
		return ErrAlreadyBound
	}
	s.ops.Push(operation{kind: opAddBinding, binding: b})
	return s.process()
}

// RemoveBinding queues b to be removed as a member.
// Removing a binding that isn't a member does nothing.
//
// Returns the first listener error raised while draining the log, or nil if the Subject was already processing.
func (s *Subject) RemoveBinding(b *Binding) error {
	if b == nil {
		return fmt.Errorf("%w: nil binding", ErrInvalidArgument)
	}
	s.ops.Push(operation{kind: opRemoveBinding, binding: b})
	return s.process()
}

// ClearBindings queues removal of all members.
// The bindings aren't disposed, and may be added again with [Subject.AddBinding].
//
// Returns the first listener error raised while draining the log, or nil if the Subject was already processing.
func (s *Subject) ClearBindings() error {
	s.ops.Push(operation{kind: opClearBindings})
	return s.process()
}

// Publish queues value to be broadcast to every member of s.
// If there are no members when its turn comes, then the broadcast is discarded.
//
// Members are visited in the order they were added, and all callbacks for one binding complete before the next binding is visited.
// If a callback returns an error, then delivery of this broadcast stops and the error is returned unmodified to whichever call is draining the log.
// Operations queued behind it are left in the log, and run on the next call that drains it.
//
// This is a function rather than a method because the concrete type of value is needed to queue it without boxing.
func Publish[T any, P Publishable[T]](s *Subject, value T) error {
	boxless.Enqueue(s.payloads, envelope[T, P]{value: value})
	s.ops.Push(operation{kind: opBroadcast})
	return s.process()
}

// Len returns the number of current members.
func (s *Subject) Len() int {
	return s.bindings.Len()
}

// Has reports whether b is currently a member.
func (s *Subject) Has(b *Binding) bool {
	return s.bindings.Has(b)
}

// Bindings returns the current members in the order they were added.
func (s *Subject) Bindings() []*Binding {
	return s.bindings.Slice()
}

// Pending returns the number of operations waiting in the log.
func (s *Subject) Pending() int {
	return s.ops.Len()
}

// Processing reports whether the log is being drained.
// This is only ever true when checked from within a callback.
func (s *Subject) Processing() bool {
	return s.processing
}

// Flush drains any operations left in the log by an earlier listener error.
func (s *Subject) Flush() error {
	return s.process()
}

func (s *Subject) process() error {
	if s.processing {
		return nil
	}
	s.processing = true
	defer func() {
		s.processing = false
	}()
	for {
		op, ok := s.ops.Pop()
		if !ok {
			return nil
		}
		if err := s.apply(op); err != nil {
			return err
		}
	}
}

func (s *Subject) apply(op operation) error {
	switch op.kind {
	case opAddBinding:
		// The binding may have been disposed while this was queued.
		if op.binding.disposed {
			return nil
		}
		if s.bindings.Add(op.binding) && s.debugEnabled() {
			s.debug("Added binding", slog.String("binding", op.binding.id.String()), slog.Int("bindings", s.bindings.Len()))
		}
	case opRemoveBinding:
		if s.bindings.Remove(op.binding) && s.debugEnabled() {
			s.debug("Removed binding", slog.String("binding", op.binding.id.String()), slog.Int("bindings", s.bindings.Len()))
		}
	case opClearBindings:
		if s.debugEnabled() {
			s.debug("Cleared bindings", slog.Int("removed", s.bindings.Len()))
		}
		s.bindings.Clear()
	case opBroadcast:
		return s.deliver()
	default:
		panic(fmt.Sprintf("unknown operation %s", op.kind))
	}
	return nil
}

func (s *Subject) deliver() error {
	if s.bindings.Len() == 0 {
		s.payloads.Discard(1)
		if s.debugEnabled() {
			s.debug("Discarded broadcast with no bindings")
		}
		return nil
	}
	s.current.err = nil
	ok := s.payloads.Dequeue(&s.current)
	invariant.Check("broadcast has a queued payload", ok)
	err := s.current.err
	s.current.err = nil
	if err != nil && s.debugEnabled() {
		s.debug("Listener failed, stopping delivery", slog.String("error", err.Error()), slog.Int("pending", s.ops.Len()))
	}
	return err
}

func (s *Subject) debugEnabled() bool {
	return s.log.Enabled(context.Background(), slog.LevelDebug)
}

func (s *Subject) debug(msg string, attrs ...slog.Attr) {
	s.log.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
