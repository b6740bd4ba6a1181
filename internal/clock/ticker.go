package clock

import (
	"context"
	"sync"
	"time"
)

// Ticker calls fn on its own goroutine once per interval until stopped or
// until ctx is done.
type Ticker struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// NewTicker starts a Ticker. fn receives the tick time.
func NewTicker(ctx context.Context, interval time.Duration, fn func(time.Time)) *Ticker {
	ctx, cancel := context.WithCancel(ctx)

	t := &Ticker{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go t.run(ctx, interval, fn)

	return t
}

func (t *Ticker) run(ctx context.Context, interval time.Duration, fn func(time.Time)) {
	defer close(t.done)

	tk := time.NewTicker(interval)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-tk.C:
			fn(now)
		}
	}
}

// Stop cancels the ticker and waits for its goroutine to exit. Safe to call
// more than once.
func (t *Ticker) Stop() {
	t.once.Do(t.cancel)
	<-t.done
}

// Done is closed once the ticker goroutine has exited.
func (t *Ticker) Done() <-chan struct{} {
	return t.done
}
