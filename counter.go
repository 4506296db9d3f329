package actor

// counter
// A specialized actor owning a single int64 value. The value is
// created at start, lives for the lifetime of the actor, and is
// never touched by anything except the actor's own handler, one
// message at a time.
//
// Two messages exist. Add is fire-and-forget: it enqueues a
// delta that the handler folds into the value; the effect is
// observable only through a later read. Value is a synchronous
// Call: the handler writes the current value - unchanged - into
// the call's one-shot reply channel. Because both kinds travel
// through the same mailbox, all Adds sent before a Value by the
// same caller are applied before the read.

import (
	"fmt"
	"time"
)

// method name carried by Value calls
const counterGetMethod = "get"

// Add is the increment message. Negative deltas are fine.
type Add struct {
	Delta int64
}

// Counter is the handle callers use to reach a counter actor.
// It is a thin wrapper over the ActorRef; sharing it between
// goroutines is safe.
type Counter struct {
	ref *ActorRef
}

// Create a counter actor in the system, starting at initial.
// This is a convenience method to create a counter without
// calling the builder.
func (as *ActorSystem) NewCounter(name string, initial int64) (*Counter, error) {
	return as.BuildCounter(name).WithInitial(initial).Run()
}

type counterBuilder struct {
	as      *ActorSystem
	name    string
	initial int64
	delay   time.Duration
}

// Start building a counter actor. The value starts at 0 unless
// WithInitial says otherwise.
func (as *ActorSystem) BuildCounter(name string) *counterBuilder {
	return &counterBuilder{as: as, name: name}
}

// Set the starting value.
func (b *counterBuilder) WithInitial(initial int64) *counterBuilder {
	b.initial = initial
	return b
}

// Private method to slow down message handling. Lets tests pin
// the actor's processing latency above a call timeout.
func (b *counterBuilder) withDelay(d time.Duration) *counterBuilder {
	b.delay = d
	return b
}

// This must be the last call in the builder chain. It spawns the
// handler loop bound to a fresh mailbox and returns the handle.
func (b *counterBuilder) Run() (*Counter, error) {
	state := b.initial
	delay := b.delay
	ref, err := b.as.BuildActor(b.name, func(a *Actor, msg ActorMsg) {
		if delay > 0 {
			time.Sleep(delay)
		}
		switch m := msg.(type) {
		case CallRequest:
			switch m.Method() {
			case counterGetMethod:
				// read never mutates
				m.CallResponse(state, nil)
			default:
				m.CallResponse(nil, fmt.Errorf("counter %v: unknown method %v", a.Name(), m.Method()))
			}
		default:
			switch d := msg.Data().(type) {
			case Add:
				state += d.Delta
			default:
				a.ActorSystem().ToDeadLetter(msg.Wrap(
					fmt.Sprintf("counter %v cannot handle %T", a.Name(), msg.Data()), a.Ref()))
			}
		}
	}).Run()
	if err != nil {
		return nil, err
	}
	return &Counter{ref: ref}, nil
}

// Add enqueues a delta. It does not block and gives no delivery
// confirmation beyond "enqueued".
func (c *Counter) Add(delta int64) {
	c.ref.Send(Add{Delta: delta}, nil)
}

// Value reads the current value. It blocks the caller until the
// actor replies or timeout elapses; on timeout the error is a
// *TimeoutError and no value is returned.
func (c *Counter) Value(timeout time.Duration) (int64, error) {
	rsp, err := c.ref.Call(counterGetMethod, nil, timeout)
	if err != nil {
		return 0, err
	}
	v, ok := rsp.(int64)
	if !ok {
		return 0, fmt.Errorf("counter %v replied %T, want int64", c.Name(), rsp)
	}
	return v, nil
}

// Name of the underlying actor.
func (c *Counter) Name() string {
	return c.ref.Name()
}

// Ref exposes the underlying ActorRef, e.g. for Lookup-style
// plumbing or event bus subscriptions.
func (c *Counter) Ref() *ActorRef {
	return c.ref
}

// Stop poisons the counter. Messages already in the mailbox are
// processed first; the value is then discarded.
func (c *Counter) Stop() {
	c.ref.Kill()
}
