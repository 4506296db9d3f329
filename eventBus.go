// eventBus
package actor

import (
	"fmt"
	"regexp"
	"sync"
	"time"
)

// BusEvent is the message type delivered to subscribers.
type BusEvent interface {
	ActorMsg
	Timestamp() time.Time
	Topic() string
}

type busEvent struct {
	ActorMsg
	timestamp time.Time
	topic     string
}

// internal book-keeping
type subscriber struct {
	actorRef *ActorRef
	regexp   *regexp.Regexp
	filter   func(interface{}) bool
}

// EventBus delivers published events to subscribed actors.
// Subscribers receive events in their normal message handler,
// typed MsgTypeEvent. The system uses one of these as the
// lifecycle observability hook; user code can create more.
type EventBus struct {
	sync.Mutex
	filter      func(interface{}) bool
	subscribers []subscriber
}

func NewBusEvent(topic string, msg interface{}, caller *ActorRef) BusEvent {
	return busEvent{newActorMsg(MsgTypeEvent, msg, caller), time.Now(), topic}
}

// Create an event bus. The filter, if not nil, rejects
// publications wholesale before any subscriber sees them.
func NewEventBus(filter func(interface{}) bool) *EventBus {
	return &EventBus{filter: filter, subscribers: make([]subscriber, 0)}
}

// subscribe an actor to the event bus. The pattern, if not
// empty, is a regexp matched against the event topic; the
// filter, if not nil, is matched against the event data.
func (bus *EventBus) Subscribe(ar *ActorRef, pattern string, filter func(interface{}) bool) error {
	bus.Lock()
	defer bus.Unlock()
	for _, subs := range bus.subscribers {
		if ar == subs.actorRef {
			return nil // already subscribed
		}
	}
	var rx *regexp.Regexp
	if pattern != "" {
		var err error
		rx, err = regexp.Compile(pattern)
		if err != nil {
			return err
		}
	}
	bus.subscribers = append(bus.subscribers, subscriber{ar, rx, filter})
	return nil
}

// unsubscribe the actor from the event bus
func (bus *EventBus) Unsubscribe(ar *ActorRef) {
	bus.Lock()
	defer bus.Unlock()
	for idx, subs := range bus.subscribers {
		if ar == subs.actorRef {
			bus.subscribers = append(bus.subscribers[:idx], bus.subscribers[idx+1:]...)
			return
		}
	}
}

// publish to all subscribers whose pattern and filter match
func (bus *EventBus) Publish(topic string, msg interface{}) error {
	if bus.filter != nil && !bus.filter(msg) {
		return fmt.Errorf("Wrong message type for bus")
	}
	be := NewBusEvent(topic, msg, nil)
	bus.Lock()
	defer bus.Unlock()
	for _, subs := range bus.subscribers {
		if (subs.regexp == nil || subs.regexp.MatchString(topic)) &&
			(subs.filter == nil || subs.filter(msg)) {
			subs.actorRef.SendMsg(be)
		}
	}
	return nil
}

func (be busEvent) Timestamp() time.Time {
	return be.timestamp
}

func (be busEvent) Topic() string {
	return be.topic
}
