//go:build !unix

package core

import (
	"context"
	"os"
	"os/signal"
)

// WatchSignals calls handle for the first interrupt received before ctx is done
func WatchSignals(ctx context.Context, handle func(sig os.Signal)) <-chan struct{} {
	done := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)

	go func() {
		defer close(done)
		defer signal.Stop(sigCh)

		select {
		case <-ctx.Done():
		case sig := <-sigCh:
			handle(sig)
		}
	}()
	return done
}

// Terminate restores the terminal and exits
func Terminate(os.Signal) {
	Restore()
	exit(1)
}
