// actorCall
package actor

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// TimeoutError is returned by Call when the actor does not reply
// within the allotted duration. It is the only error the runtime
// surfaces for a call; it is never retried internally.
type TimeoutError struct {
	Actor   string
	Method  string
	CallID  string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("call %v to %v timed out after %v (call id %v)",
		e.Method, e.Actor, e.Timeout, e.CallID)
}

// IsTimeout reports whether err is (or wraps) a call timeout.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}

// CallRequest is how a synchronous call arrives in the actor's
// message handler. The handler answers by invoking CallResponse
// exactly once.
type CallRequest interface {
	ActorMsg
	Method() string
	Parameters() interface{}
	CallID() string
	CallResponse(data interface{}, err error)
}

type callRequest struct {
	ActorMsg
	method string
	callID string
	target string
	sys    *ActorSystem
	// one-shot reply channel. Buffered so the actor's single
	// write always lands, even if the caller timed out and is
	// no longer listening; the abandoned value is simply
	// garbage collected. Never closed.
	replyChan chan callResponse
}

type callResponse struct {
	payload interface{}
	err     error
}

// Call sends req to the actor and blocks until the actor replies
// or timeout elapses. On timeout the returned error is a
// *TimeoutError; the request stays in the mailbox and may still
// be processed later, in which case the reply is discarded.
func (ar *ActorRef) Call(method string, req interface{}, timeout time.Duration) (interface{}, error) {
	reqMsg := callRequest{
		ActorMsg:  newActorMsg(MsgTypeCall, req, nil),
		method:    method,
		callID:    uuid.NewString(),
		target:    ar.name,
		sys:       ar.as,
		replyChan: make(chan callResponse, 1),
	}
	ar.SendMsg(reqMsg)
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case rsp := <-reqMsg.replyChan:
		return rsp.payload, rsp.err
	case <-timer.C:
		return nil, &TimeoutError{
			Actor:   ar.name,
			Method:  method,
			CallID:  reqMsg.callID,
			Timeout: timeout,
		}
	}
}

// call method name
func (req callRequest) Method() string {
	return req.method
}

// call parameters are the message data
func (req callRequest) Parameters() interface{} {
	return req.Data()
}

// correlation id of this call - shows up in timeout errors
// and dead letter diagnostics
func (req callRequest) CallID() string {
	return req.callID
}

// reply to a Call. Write-once: a second response to the same
// call cannot be delivered and goes to the DLQ instead.
func (req callRequest) CallResponse(data interface{}, err error) {
	select {
	case req.replyChan <- callResponse{data, err}:
	default:
		log.WithFields(log.Fields{
			"actor":  req.target,
			"method": req.method,
			"callId": req.callID,
		}).Debug("duplicate call response discarded")
		if req.sys != nil {
			req.sys.ToDeadLetter(req.Wrap(
				fmt.Sprintf("duplicate response to call %v.%v (call id %v)",
					req.target, req.method, req.callID), nil))
		}
	}
}
