//go:build unix

package core

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// terminationSignals end the session; raw mode swallows Ctrl-C so SIGINT only arrives from kill
var terminationSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT}

// WatchSignals calls handle for the first termination signal received before ctx is done.
// The returned channel closes when the watcher exits.
func WatchSignals(ctx context.Context, handle func(sig os.Signal)) <-chan struct{} {
	done := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, terminationSignals...)

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

// Terminate restores the terminal and exits with the conventional 128+signal status
func Terminate(sig os.Signal) {
	Restore()
	code := 1
	if s, ok := sig.(syscall.Signal); ok {
		code = 128 + int(s)
	}
	exit(code)
}
