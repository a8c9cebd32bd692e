/*
Package broadcast is a synchronous, single-threaded broadcast engine for in-process events.

Listeners register callbacks on a [dispatch.Binding], scoped by channel and payload type, and bind to a [dispatch.Subject].
Publishers hand value-type events to the Subject, which queues them without converting them to interfaces and delivers each one to every bound listener in order.
Anything requested while a broadcast is being delivered, like a callback that publishes or unbinds, is queued behind it instead of running in the middle of it.

Packages:
  - patterns/dispatch: the [dispatch.Subject], [dispatch.Binding], and broadcast helpers.
  - patterns/observer: observable values and lists built on dispatch.
  - structures/boxless: the type-multiplexed FIFO used to queue payloads.
  - structures/queue, structures/list, structures/set, and syncx: supporting containers.
  - cli: the command tree used by cmd/broadcast-demo.
  - cmd/broadcast-demo: a small CLI that exercises the engine.

[dispatch.Subject]: https://pkg.go.dev/github.com/saylorsolutions/broadcast/patterns/dispatch#Subject
[dispatch.Binding]: https://pkg.go.dev/github.com/saylorsolutions/broadcast/patterns/dispatch#Binding
*/
package broadcast
