// counter-demo
// Demo driver for the counter actor: start a counter at
// COUNTER_INITIAL (default 0), send Add(5) and Add(3), then read
// the value synchronously with CALL_TIMEOUT (default 10ms) and
// check the arithmetic came out right.
package main

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	actor "github.com/pacs008/counteractor"
	log "github.com/sirupsen/logrus"
)

func main() {
	// .env is optional; real env vars win
	_ = godotenv.Load()

	if lvl, err := log.ParseLevel(envOr("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(lvl)
	}

	initial, err := strconv.ParseInt(envOr("COUNTER_INITIAL", "0"), 10, 64)
	if err != nil {
		log.Fatalf("Bad COUNTER_INITIAL: %v", err)
	}
	timeout, err := time.ParseDuration(envOr("CALL_TIMEOUT", "10ms"))
	if err != nil {
		log.Fatalf("Bad CALL_TIMEOUT: %v", err)
	}

	as := actor.NewActorSystem()
	counter, err := as.NewCounter("counter", initial)
	if err != nil {
		log.Fatalf("Failed to start counter: %v", err)
	}

	counter.Add(5)
	counter.Add(3)

	value, err := counter.Value(timeout)
	if err != nil {
		log.Fatalf("Get failed: %v", err)
	}
	log.WithFields(log.Fields{
		"counter": counter.Name(),
		"value":   value,
	}).Info("counter value")

	if want := initial + 8; value != want {
		log.Fatalf("Expected %v, got %v", want, value)
	}
	counter.Stop()
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
