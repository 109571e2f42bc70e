package search

import (
	"context"
	"time"

	"github.com/mj1618/kodi-search/internal/logging"
	"github.com/mj1618/kodi-search/internal/model"
	"github.com/mj1618/kodi-search/internal/platform"
)

const defaultPollInterval = 100 * time.Millisecond

// Waiter polls a condition until it holds or a timeout elapses.
type Waiter struct {
	inspector platform.Inspector
	clock     Clock
	log       logging.Logger
}

// NewWaiter creates a Waiter. inspector may be nil when only WaitFor is used.
func NewWaiter(inspector platform.Inspector, clock Clock, log logging.Logger) *Waiter {
	if clock == nil {
		clock = RealClock()
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Waiter{inspector: inspector, clock: clock, log: log}
}

// WaitFor evaluates cond immediately and then once per interval until it
// returns true or timeout has elapsed since the call started. The last
// sleep is shortened so the final evaluation lands on the deadline.
// A timeout is reported as OK=false; Polls counts sleeps.
func (w *Waiter) WaitFor(cond func() bool, timeout, interval time.Duration) model.WaitOutcome {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	start := w.clock.Now()
	polls := 0
	for {
		if cond() {
			return model.WaitOutcome{OK: true, Polls: polls, Elapsed: w.clock.Now().Sub(start)}
		}
		elapsed := w.clock.Now().Sub(start)
		if elapsed >= timeout {
			return model.WaitOutcome{OK: false, Polls: polls, Elapsed: elapsed}
		}
		pause := interval
		if remaining := timeout - elapsed; remaining < pause {
			pause = remaining
		}
		w.clock.Sleep(pause)
		polls++
	}
}

// WaitForCondition waits for a boolean info expression to become true.
// Query errors count as false. Queries share a deadline of timeout from the
// call, so a stalled host cannot stretch the wait past it.
func (w *Waiter) WaitForCondition(ctx context.Context, expr string, timeout, interval time.Duration) model.WaitOutcome {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	bound := timeout
	if bound <= 0 {
		bound = interval
	}
	qctx, cancel := context.WithTimeout(ctx, bound)
	defer cancel()

	return w.WaitFor(func() bool {
		ok, err := w.inspector.Condition(qctx, expr)
		if err != nil {
			w.log.WithError(err).WithField("condition", expr).Debug("condition query failed")
			return false
		}
		return ok
	}, timeout, interval)
}
