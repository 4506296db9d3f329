package actor

import (
	"fmt"
	"sync"
)

// Topics on the System Message Bus
const (
	ActorLifecycle = "actorLifecycle"
	ActorProblem   = "actorProblem"
)

const dlqName = "dlq"

// The system that all actors operate in. It keeps the directory
// of named actors, the dead letter queue and the system bus.
type ActorSystem struct {
	actors map[string]*ActorRef
	sysBus *EventBus
	dlq    *ActorRef
	sync.Mutex
	userData interface{}
}

// Create an actor system with the default dead letter queue.
func NewActorSystem() *ActorSystem {
	return BuildActorSystem().Run()
}

// Register the actor.
func (as *ActorSystem) register(ar *ActorRef) error {
	as.Lock()
	if _, ok := as.actors[ar.name]; ok {
		as.Unlock()
		return fmt.Errorf("Actor %v already registered", ar.name)
	}
	as.actors[ar.name] = ar
	as.Unlock()

	as.sysBus.Publish(ActorLifecycle, ar.name+" registered")

	return nil
}

// Unregister the actor.
func (as *ActorSystem) unregister(name string) {
	as.Lock()
	delete(as.actors, name)
	as.Unlock()

	as.sysBus.Publish(ActorLifecycle, name+" unregistered")
}

// Get an ActorRef by the name of the actor.
func (as *ActorSystem) Lookup(name string) (*ActorRef, error) {
	as.Lock()
	defer as.Unlock()
	ref, ok := as.actors[name]
	if !ok {
		return nil, fmt.Errorf("No actor named [%v]", name)
	}
	return ref, nil
}

// Return a list of all the actors in the system.
func (as *ActorSystem) ListActors() []string {
	as.Lock()
	defer as.Unlock()
	keys := make([]string, 0, len(as.actors))
	for k := range as.actors {
		keys = append(keys, k)
	}
	return keys
}

// Send an ActorMsg to the DLQ.
func (as *ActorSystem) ToDeadLetter(msg ActorMsg) {
	as.dlq.Forward(msg)
}

// Get the system bus. This is a special bus that publishes
// actor lifecycle events:
// registered
// enterFunc
// running
// exitFunc
// terminated
// unregistered
// and, on the actorProblem topic, caught panics.
func (as *ActorSystem) SystemBus() *EventBus {
	return as.sysBus
}

// Get the system data.
func (as *ActorSystem) SystemData() interface{} {
	return as.userData
}
