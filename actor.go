package actor

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// Actor is the core of the actor package. It is created by an
// ActorBuilder. An actor has no methods accessible from outside;
// it can only be reached by passing messages to its ActorRef.
//
// An Actor runs in its own goroutine. It drains its mailbox one
// message at a time and hands each one to the message handling
// function, so the handler owns the actor's state exclusively and
// never runs concurrently with itself. References of other actors
// to communicate with can be obtained by name from the actor
// system directory.
type Actor struct {
	as        *ActorSystem
	mailbox   chan ActorMsg
	doFunc    func(*Actor, ActorMsg)
	enterFunc func(*Actor)
	exitFunc  func(*Actor)
	loopFunc  func(*Actor)
	name      string
	hidden    bool
}

// Create an actor in the system. This is a convenience method
// to create an actor without calling ActorBuilder.
func (as *ActorSystem) NewActor(name string, doFunc func(*Actor, ActorMsg)) (*ActorRef, error) {
	return as.BuildActor(name, doFunc).Run()
}

// This is the main loop that reads messages from the actor
// mailbox and invokes the message handler. We can't make this a
// method because the builder needs to reference it before the
// actor exists.
//
// A poison message is intercepted here: the exit function runs
// and the actor leaves the directory. A panic in the handler is
// also fatal - the offending message goes to the DLQ and the
// actor terminates with its state lost. Senders are not told;
// they observe the death as timeouts on later calls.
func mainLoop(a *Actor) {
	for msg := range a.mailbox {
		if msg.IsPoison() {
			if a.exitFunc != nil {
				a.as.sysBus.Publish(ActorLifecycle, a.Name()+" exitFunc")
				a.exitFunc(a)
			}
			a.as.unregister(a.name)
			return
		}

		if fatal := protect(a, msg, a.doFunc); fatal {
			a.as.sysBus.Publish(ActorLifecycle, a.Name()+" terminated")
			a.as.unregister(a.name)
			return
		}
	}
}

// Run one handler invocation, converting a panic into a fatal
// verdict. The message being handled is written to the Dead
// Letter Queue so the failure is not silent.
// Note: the DLQ itself must never re-enter the DLQ.
func protect(a *Actor, m ActorMsg, doFunc func(a *Actor, m ActorMsg)) (fatal bool) {
	defer func() {
		if x := recover(); x != nil {
			a.as.sysBus.Publish(ActorProblem, fmt.Sprintf("%v caught panic: %v", a.Name(), x))
			if a.Name() == dlqName {
				log.Errorf("DLQ panicked handling %v - dropping message", m.Data())
			} else {
				a.as.ToDeadLetter(m.Wrap(fmt.Sprintf("%v caught panic: %v", a.Name(), x), a.Ref()))
			}
			fatal = true
		}
	}()
	doFunc(a, m)
	return false
}

// run the actor
func (a *Actor) run(as *ActorSystem) (*ActorRef, error) {
	if !a.hidden {
		if err := as.register(a.Ref()); err != nil {
			log.Error(err)
			return nil, err
		}
	}

	if a.enterFunc != nil {
		as.sysBus.Publish(ActorLifecycle, a.Name()+" enterFunc")
		a.enterFunc(a)
	}
	as.sysBus.Publish(ActorLifecycle, a.name+" running")
	go a.loopFunc(a)

	return a.Ref(), nil
}

// check valid name
func (a *Actor) validName() error {
	if a.name == "" || a.name[0] == '!' {
		return fmt.Errorf("Invalid Actor name %q", a.name)
	}
	return nil
}

// Get the ActorRef for this actor - used to set Sender in messages.
func (a *Actor) Ref() *ActorRef {
	return &ActorRef{a.as, &a.mailbox, a.name}
}

// Get the name for this actor.
func (a *Actor) Name() string {
	return a.name
}

// Send self a message after the specified duration. This
// fires one-off.
func (a *Actor) After(d time.Duration, data interface{}) {
	go func() {
		<-time.After(d)
		a.mailbox <- NewActorMsg(data, nil)
	}()
}

// Send self a message every specified duration. This fires
// repeatedly. It returns a channel - write anything to this
// channel to stop the timer.
func (a *Actor) Every(d time.Duration, data interface{}) chan interface{} {
	ch := make(chan interface{})
	go func() {
		ticker := time.NewTicker(d)
		for {
			select {
			case <-ticker.C:
				a.mailbox <- NewActorMsg(data, nil)
			case <-ch:
				ticker.Stop()
				return
			}
		}
	}()
	return ch
}

// Get the ActorSystem in which the actor is running.
func (a *Actor) ActorSystem() *ActorSystem {
	return a.as
}

// Get the SystemData for the ActorSystem in which the actor is running.
func (a *Actor) SystemData() interface{} {
	return a.as.SystemData()
}
