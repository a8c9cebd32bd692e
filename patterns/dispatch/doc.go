/*
Package dispatch provides a synchronous, in-process broadcast mechanism with strict ordering guarantees.

# Primitives

A [Binding] is one listener's registry of callbacks.
Callbacks are scoped by [Channel], a small integer naming a category of events, and each channel must be declared before callbacks can be registered for it.
There are two kinds of callbacks:

  - Value callbacks are registered with [AddValueCallback] for an exact payload type, and receive a pointer to the payload.
  - Ref callbacks are registered with [AddRefCallback], and are matched with a type assertion, so registering for an interface type matches every implementation.

A [Broadcast] is an immutable event value that knows which callbacks to invoke on a [Binding].
[ValueBroadcast] and [RefBroadcast] cover the common single channel cases.

A [Subject] owns an ordered set of bindings, and delivers each broadcast published with [Publish] to all of them.

# Ordering

Everything a [Subject] does goes through a single FIFO log that is drained on the calling goroutine.
There are no goroutines, channels, or locks involved, so a broadcast has been fully delivered by the time [Publish] returns, unless [Publish] was called from within a callback.
In that case the request is appended to the log, and the loop that's already running will get to it after the current broadcast completes.

Given this, these guarantees hold:

  - A binding only sees broadcasts published after it was added.
  - Bindings are visited in the order they were added, and all callbacks for one binding finish before the next binding is visited.
  - Membership changes made during a broadcast take effect after that broadcast is fully delivered.

# Errors

Mistakes in setup, like using an undeclared channel or binding twice, are reported with errors wrapping [ErrInvalidArgument] or [ErrInvalidOperation].

An error returned from a callback stops delivery of the current broadcast, and is returned unmodified from the call that was draining the log.
Later bindings don't receive that broadcast, but work queued behind it is kept, and runs the next time the log is drained.
A panic in a callback or filter unwinds the same way, and leaves the [Subject] ready for use.
*/
package dispatch
