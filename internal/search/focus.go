package search

import (
	"context"
	"time"

	"github.com/mj1618/kodi-search/internal/logging"
	"github.com/mj1618/kodi-search/internal/platform"
)

// defaultCheckTimeout bounds each focus check.
const defaultCheckTimeout = time.Second

// FocusAcquirer moves focus to a results control, retrying a bounded number
// of times and optionally falling back to an alternate control.
type FocusAcquirer struct {
	commander platform.Commander
	inspector platform.Inspector
	clock     Clock
	pause     time.Duration
	log       logging.Logger

	checkTimeout time.Duration
}

// NewFocusAcquirer creates a FocusAcquirer that waits pause between each
// focus command and its check.
func NewFocusAcquirer(commander platform.Commander, inspector platform.Inspector, clock Clock, pause time.Duration, log logging.Logger) *FocusAcquirer {
	if clock == nil {
		clock = RealClock()
	}
	if log == nil {
		log = logging.Discard()
	}
	return &FocusAcquirer{
		commander:    commander,
		inspector:    inspector,
		clock:        clock,
		pause:        pause,
		log:          log,
		checkTimeout: defaultCheckTimeout,
	}
}

// Acquire tries primary up to maxAttempts times, then alternate once if set.
// It reports whether a control ended up focused.
func (f *FocusAcquirer) Acquire(ctx context.Context, primary, alternate string, maxAttempts int) bool {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if f.try(ctx, primary) {
			f.log.WithFields(logging.Fields{"control": primary, "attempt": attempt}).Debug("focus acquired")
			return true
		}
	}
	if alternate == "" {
		return false
	}
	if f.try(ctx, alternate) {
		f.log.WithField("control", alternate).Debug("focus acquired on alternate control")
		return true
	}
	return false
}

func (f *FocusAcquirer) try(ctx context.Context, control string) bool {
	if err := f.commander.Execute(ctx, platform.SetFocus(control)); err != nil {
		f.log.WithError(err).WithField("control", control).Warn("focus command failed")
	}
	f.clock.Sleep(f.pause)

	cctx, cancel := context.WithTimeout(ctx, f.checkTimeout)
	defer cancel()
	ok, err := f.inspector.Condition(cctx, platform.ControlHasFocus(control))
	if err != nil {
		f.log.WithError(err).WithField("control", control).Debug("focus check failed")
		return false
	}
	return ok
}
