package cli

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// signalContext cancels itself on SIGINT or SIGTERM and remembers which
// signal arrived, so the shutdown path can tell an interrupt from a
// terminate. The handler is released after the first signal, leaving a
// second ctrl+c to the runtime's default of killing the process outright.
type signalContext struct {
	context.Context

	cancel context.CancelFunc

	mu  sync.Mutex
	sig os.Signal
}

func newSignalContext(parent context.Context) *signalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &signalContext{Context: ctx, cancel: cancel}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(ch)
		select {
		case sig := <-ch:
			sc.mu.Lock()
			sc.sig = sig
			sc.mu.Unlock()
			sc.cancel()
		case <-ctx.Done():
		}
	}()

	return sc
}

// Stop cancels the context and releases the signal handler.
func (sc *signalContext) Stop() {
	sc.cancel()
}

// Signal returns the signal that cancelled the context, or nil when the
// shutdown came from somewhere else.
func (sc *signalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sig
}
