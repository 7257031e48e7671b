package frontend

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const DefaultPollInterval = 5 * time.Second

// Refresher is anything that can reload the displayed list.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Poller refreshes the list once on start and then on every tick. Ticks do
// not wait for each other: a slow refresh may still be running when the next
// one starts, and whichever finishes last is what stays on screen.
type Poller struct {
	target   Refresher
	clock    clockwork.Clock
	interval time.Duration
}

func NewPoller(target Refresher, clock clockwork.Clock, interval time.Duration) *Poller {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		target:   target,
		clock:    clock,
		interval: interval,
	}
}

// Run blocks until ctx is done, then waits for in-flight refreshes and
// returns ctx.Err().
func (p *Poller) Run(ctx context.Context) error {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	refresh := func() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.target.Refresh(ctx)
		}()
	}

	refresh()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.Chan():
			refresh()
		}
	}
}
