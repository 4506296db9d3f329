// counteractor project doc.go

/*
Package actor provides a minimal actor runtime and a Counter actor built
on top of it.

An actor owns its state exclusively and can only be reached by passing
messages to its ActorRef. Each actor runs in its own goroutine, draining
an ordered mailbox one message at a time, so handler code never needs
locking or synchronization. Senders enqueue concurrently; the mailbox
serializes them into a single total order, and messages from one sender
are processed in the order they were sent.

Two communication styles are supported. Send is fire-and-forget: it
enqueues a message and returns without any delivery confirmation. Call
is synchronous request/response: it enqueues a request carrying a fresh
one-shot reply channel and blocks the caller until the actor replies or
the timeout elapses, in which case it returns a *TimeoutError. A reply
arriving after the caller has given up is discarded; it never blocks or
kills the actor.

A panic while handling a message is fatal to that actor: the offending
message goes to the dead letter queue, a lifecycle event is published on
the system bus, and the actor terminates with its state lost. There is
no supervision or restart policy. Callers notice only indirectly, as
timeouts on subsequent calls.

The Counter actor is the package's worked example of the model: a single
int64 reachable through Add (fire-and-forget delta) and Value
(synchronous read with timeout). See counter.go and cmd/counter-demo.
*/
package actor
