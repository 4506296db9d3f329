// actorBuilder
package actor

import (
	"fmt"
)

// Mailbox capacity unless WithMailboxSize says otherwise.
const defaultMailboxSize = 64

// ActorBuilder is used to build and decorate actors.
// An ActorBuilder instance is created by calling
// ActorSystem.BuildActor; Run must be the last call
// in the chain.
type ActorBuilder struct {
	as    *ActorSystem
	actor *Actor
	err   error
}

// Build a basic actor with a message handling function. The
// actor invokes the message handling function once per message
// read from its mailbox.
func (as *ActorSystem) BuildActor(name string, doFunc func(*Actor, ActorMsg)) *ActorBuilder {
	a := &Actor{
		as:       as,
		mailbox:  make(chan ActorMsg, defaultMailboxSize),
		doFunc:   doFunc,
		loopFunc: mainLoop,
		name:     name,
	}
	return &ActorBuilder{
		as:    as,
		actor: a,
		err:   a.validName(),
	}
}

// Add an enter function to the actor. The enter function
// gets called once when the actor starts.
func (b *ActorBuilder) WithEnter(enterFunc func(*Actor)) *ActorBuilder {
	if b.err == nil {
		b.actor.enterFunc = enterFunc
	}
	return b
}

// Add an exit function to the actor. The exit function
// gets called once when the actor is poisoned.
func (b *ActorBuilder) WithExit(exitFunc func(*Actor)) *ActorBuilder {
	if b.err == nil {
		b.actor.exitFunc = exitFunc
	}
	return b
}

// Set the mailbox capacity. Enqueueing never blocks a sender
// while the mailbox has room; sizing it is the caller's call.
func (b *ActorBuilder) WithMailboxSize(size int) *ActorBuilder {
	if b.err != nil {
		return b
	}
	if size < 1 {
		b.err = fmt.Errorf("Mailbox must hold at least 1 message (%v)", size)
		return b
	}
	b.actor.mailbox = make(chan ActorMsg, size)
	return b
}

// Private method to exclude an actor from the actor system
// directory. Used for transient and system actors.
func (b *ActorBuilder) withHidden() *ActorBuilder {
	if b.err == nil {
		b.actor.hidden = true
	}
	return b
}

// This must be the last call in the builder chain. It registers
// the actor in the actor system directory, calls the actor entry
// function, and starts the actor reading from its mailbox.
func (b *ActorBuilder) Run() (*ActorRef, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.actor.run(b.as)
}
