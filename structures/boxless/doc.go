/*
Package boxless provides a FIFO [Queue] that multiplexes values of many concrete types without converting them to interfaces.

Storing mixed values in a []any means every non-pointer value is boxed onto the heap.
Instead, a [Queue] keeps one typed sub-queue per element type, and a separate queue of tags recording which sub-queue holds the next value.
The tag queue is the only source of ordering across types, so global enqueue order is preserved even though each sub-queue only knows its own order.

# Handlers

Go methods can't have type parameters, so a handler can't receive "any V" generically.
The relationship is inverted: each element type implements [Acceptor] for a handler type H, and delivers itself to the handler in its Accept method.
Inside Accept the element knows its own concrete type, so it can call strongly typed code without a type switch.

	type Tick struct{ N int }

	func (t Tick) Accept(r *Recorder) { r.ticks = append(r.ticks, t.N) }

	q := boxless.New[*Recorder]()
	boxless.Enqueue(q, Tick{N: 1})
	q.Dequeue(recorder)

A [Queue] is not safe for concurrent use.
*/
package boxless
