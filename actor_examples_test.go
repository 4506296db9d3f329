// actor_examples_test
package actor

import (
	"fmt"
	"time"
)

func ExampleActorSystemBuilder() {
	// create the actor system
	actorSystem := BuildActorSystem(). // this returns ActorSystemBuilder
						Run()

	// create the actor
	greeter, err := actorSystem.NewActor("greeter", func(actor *Actor, msg ActorMsg) {
		fmt.Printf("Hello %v\n", msg.Data())
	})

	// check for error
	if err != nil {
		fmt.Printf("Failed to create actor: %v\n", err)
	}

	// send a message to the greeter actor
	greeter.Send("Tom", nil)

	// wait for result
	time.Sleep(500 * time.Millisecond)

	// Output:
	// Hello Tom
}

func ExampleActorSystemBuilder_WithDeadLetterQueue() {
	as := BuildActorSystem().WithDeadLetterQueue(func(_ *Actor, msg ActorMsg) {
		fmt.Printf("DeadLetterQueue received %v", msg.Data())
	}).
		Run()

	as.ToDeadLetter(NewActorMsg("Dead", nil))

	// wait for result
	time.Sleep(500 * time.Millisecond)

	// Output:
	// DeadLetterQueue received Dead
}

func ExampleActorSystemBuilder_WithDeadLetterQueue_panic() {
	actorSystem := BuildActorSystem().WithDeadLetterQueue(func(_ *Actor, msg ActorMsg) {
		fmt.Println(msg.Data())
		msg = msg.Unwrap()
		if msg != nil {
			fmt.Printf("Message that caused panic: %v\n", msg.Data())
		}
	}).
		Run()

	// create the actor
	nervous, err := actorSystem.NewActor("nervous", func(actor *Actor, msg ActorMsg) {
		// force a panic; the message is written to the DLQ and
		// the actor terminates
		_ = msg.Data().(string)
	})

	// check for error
	if err != nil {
		fmt.Printf("Failed to create actor: %v\n", err)
	}

	// send a message the nervous actor cannot digest
	nervous.Send(1, nil)

	// wait for result
	time.Sleep(500 * time.Millisecond)

	// Output:
	// nervous caught panic: interface conversion: interface {} is int, not string
	// Message that caused panic: 1
}

func ExampleActorRef_Call() {
	// create the actor system
	actorSystem := NewActorSystem()

	// create an actor that answers calls
	doubler, err := actorSystem.NewActor("doubler", func(actor *Actor, msg ActorMsg) {
		if call, ok := msg.(CallRequest); ok {
			call.CallResponse(call.Parameters().(int)*2, nil)
		}
	})

	// check for error
	if err != nil {
		fmt.Printf("Failed to create actor: %v\n", err)
	}

	// call it synchronously
	rsp, err := doubler.Call("double", 21, time.Second)
	if err != nil {
		fmt.Printf("Call failed: %v\n", err)
	}
	fmt.Printf("%v\n", rsp)

	// Output:
	// 42
}

func ExampleCounter() {
	// create the actor system
	actorSystem := NewActorSystem()

	// start a counter at 0
	counter, err := actorSystem.NewCounter("counter", 0)
	if err != nil {
		fmt.Printf("Failed to create counter: %v\n", err)
	}

	// fire-and-forget increments
	counter.Add(5)
	counter.Add(3)

	// synchronous read with a 10ms timeout
	value, err := counter.Value(10 * time.Millisecond)
	if err != nil {
		fmt.Printf("Get failed: %v\n", err)
	}
	fmt.Printf("value: %v\n", value)

	// Output:
	// value: 8
}

func ExampleActorSystem_BuildCounter() {
	actorSystem := NewActorSystem()

	// counters can start anywhere, and go negative
	counter, err := actorSystem.BuildCounter("balance").
		WithInitial(10).
		Run()
	if err != nil {
		fmt.Printf("Failed to create counter: %v\n", err)
	}

	counter.Add(-15)

	value, err := counter.Value(time.Second)
	if err != nil {
		fmt.Printf("Get failed: %v\n", err)
	}
	fmt.Printf("balance: %v\n", value)

	// Output:
	// balance: -5
}

func ExampleActorSystem_Lookup() {
	// create the actor system
	actorSystem := NewActorSystem()

	// create the actor
	_, err := actorSystem.NewActor("greeter", func(actor *Actor, msg ActorMsg) {
		fmt.Printf("Hello %v\n", msg.Data())
	})
	if err != nil {
		fmt.Printf("Failed to create actor: %v\n", err)
	}

	// find it by name and send to it
	greeter, err := actorSystem.Lookup("greeter")
	if err != nil {
		fmt.Printf("Lookup failed: %v\n", err)
	}
	greeter.Send("Dick", nil)

	// wait for result
	time.Sleep(500 * time.Millisecond)

	// Output:
	// Hello Dick
}
