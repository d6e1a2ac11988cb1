// Package clock drives time-boxed games. Engines count whole seconds and never
// read the wall clock themselves; a Ticker calls their Tick once per interval.
package clock

import (
	"context"
	"time"
)

// Ticker calls fn once per interval on its own goroutine until Stop is
// called or the parent context is done.
type Ticker struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func Start(ctx context.Context, interval time.Duration, fn func()) *Ticker {
	ctx, cancel := context.WithCancel(ctx)
	t := &Ticker{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(t.done)
		Run(ctx, interval, fn)
	}()
	return t
}

// Stop cancels the ticker and waits for an in-flight fn to return.
func (t *Ticker) Stop() {
	t.cancel()
	<-t.done
}

// Run blocks, calling fn every interval, until ctx is done.
func Run(ctx context.Context, interval time.Duration, fn func()) {
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			fn()
		}
	}
}
