package common

import (
	"os"
	"os/signal"
	"syscall"
)

// NewInterruptChannel creates a channel that receives interrupt signals
// (SIGINT or SIGTERM). Returns the channel and a cleanup function that
// should be called when done.
func NewInterruptChannel() (<-chan os.Signal, func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	cleanup := func() {
		signal.Stop(sigChan)
	}

	return sigChan, cleanup
}
