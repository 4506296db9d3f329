// actorRef
package actor

// ActorRef is the handle other code uses to reach an actor.
// It is safe to share between goroutines; all it does is
// enqueue messages on the actor's mailbox.
type ActorRef struct {
	as      *ActorSystem
	mailbox *chan ActorMsg
	name    string
}

const (
	noreply = "!noreply"
)

// send a pre-built message to the actor
func (ref *ActorRef) SendMsg(msg ActorMsg) {
	*ref.mailbox <- msg
}

// convenience method to build an ActorMsg and send it.
// Fire-and-forget: returns as soon as the message is enqueued.
func (ref *ActorRef) Send(data interface{}, sender *ActorRef) {
	if sender == nil {
		sender = NoreplyActorRef()
	}
	*ref.mailbox <- NewActorMsg(data, sender)
}

// forward a message to an actor, preserving the original sender
func (ref *ActorRef) Forward(msg ActorMsg) {
	*ref.mailbox <- msg
}

// Name of the actor this ref points at.
func (ref *ActorRef) Name() string {
	return ref.name
}

// kill an actor by poisoning its mailbox. Messages already
// queued ahead of the poison are still processed first.
func (ref *ActorRef) Kill() {
	*ref.mailbox <- newActorMsg(MsgTypePoison, "", nil)
}

// Noreply ActorRef - sentinel sender for messages
// that do not expect an answer
func NoreplyActorRef() *ActorRef {
	return &ActorRef{nil, nil, noreply}
}

// is it the noreply sentinel?
func (ref *ActorRef) IsNoreply() bool {
	return ref != nil && ref.name == noreply
}
