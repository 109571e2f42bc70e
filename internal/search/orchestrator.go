package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mj1618/kodi-search/internal/logging"
	"github.com/mj1618/kodi-search/internal/model"
	"github.com/mj1618/kodi-search/internal/platform"
)

// Settings bound the waits of one search run.
type Settings struct {
	ReadyTimeout  time.Duration
	PollInterval  time.Duration
	FocusAttempts int
	FocusPause    time.Duration
}

// DefaultSettings mirror the config defaults.
func DefaultSettings() Settings {
	return Settings{
		ReadyTimeout:  5000 * time.Millisecond,
		PollInterval:  100 * time.Millisecond,
		FocusAttempts: 3,
		FocusPause:    200 * time.Millisecond,
	}
}

// Orchestrator drives the skin-specific search sequence:
// property → window → readiness wait → settle delay → results focus.
type Orchestrator struct {
	commander platform.Commander
	waiter    *Waiter
	focus     *FocusAcquirer
	clock     Clock
	settings  Settings
	log       logging.Logger
}

// NewOrchestrator wires the sequence against a host.
func NewOrchestrator(commander platform.Commander, inspector platform.Inspector, clock Clock, settings Settings, log logging.Logger) *Orchestrator {
	if clock == nil {
		clock = RealClock()
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Orchestrator{
		commander: commander,
		waiter:    NewWaiter(inspector, clock, log),
		focus:     NewFocusAcquirer(commander, inspector, clock, settings.FocusPause, log),
		clock:     clock,
		settings:  settings,
		log:       log,
	}
}

// Run executes the sequence for req. Every failure is logged and the run
// carries on; the returned Report only describes what happened.
func (o *Orchestrator) Run(ctx context.Context, req model.SearchRequest) Report {
	p := req.Profile
	log := o.log.WithFields(logging.Fields{"profile": p.ID, "query": req.Query})
	report := Report{Action: "search", Query: req.Query, Method: string(req.Method), Profile: p.ID, OK: true}

	// Idle → PropertySet
	if p.SearchProperty != "" {
		report.add(o.exec(ctx, StatePropertySet, platform.SetProperty(p.SearchProperty, req.Query, platform.HomeWindow)))
	} else {
		report.skip(StatePropertySet, "profile has no search property")
	}
	for _, prop := range req.Properties {
		report.add(o.exec(ctx, StatePropertySet, platform.SetProperty(prop.Name, prop.Value, platform.HomeWindow)))
	}

	// PropertySet → WindowActivated, or hand over to the built-in search.
	window := req.Window()
	if window == "" {
		report.skip(StateWindowActivated, "no search window; using built-in search")
		if p.Fallback != "" {
			report.add(o.exec(ctx, StateBuiltinSearch, expandFallback(p.Fallback, req.Query)))
		}
		log.Debug("profile defers to built-in search")
		return o.finish(report)
	}
	report.add(o.exec(ctx, StateWindowActivated, platform.ActivateWindow(window)))

	// WindowActivated → WaitingReady
	if p.ReadyCondition != "" {
		outcome := o.waiter.WaitForCondition(ctx, p.ReadyCondition, o.settings.ReadyTimeout, o.settings.PollInterval)
		step := Step{State: StateWaitingReady, OK: outcome.OK, Detail: p.ReadyCondition, Elapsed: outcome.Elapsed.String()}
		if !outcome.OK {
			step.Detail = fmt.Sprintf("%s not true after %s", p.ReadyCondition, o.settings.ReadyTimeout)
			log.WithField("condition", p.ReadyCondition).Warn("search window not ready; continuing")
		}
		report.add(step)
	} else {
		report.skip(StateWaitingReady, "profile has no readiness condition")
	}

	// WaitingReady → SettlingDelay
	delay := p.SettleDelay()
	o.clock.Sleep(delay)
	report.add(Step{State: StateSettlingDelay, OK: true, Elapsed: delay.String()})

	// SettlingDelay → FocusingResults
	if p.ResultsControl != "" {
		focused := o.focus.Acquire(ctx, p.ResultsControl, p.AlternateControl, o.settings.FocusAttempts)
		report.Focused = focused
		step := Step{State: StateFocusingResults, OK: focused, Detail: describeControls(p)}
		if !focused {
			log.WithField("control", p.ResultsControl).Warn("could not focus search results")
		}
		report.add(step)
	} else {
		report.skip(StateFocusingResults, "profile has no results control")
	}

	return o.finish(report)
}

// Delegate hands the query to an external search addon. No waits, no focus.
func (o *Orchestrator) Delegate(ctx context.Context, addonID, query string) Report {
	report := Report{Action: "search", Query: query, Method: string(model.MethodGlobal), OK: true}
	report.add(o.exec(ctx, StateDelegated, platform.RunScript(addonID, "searchstring="+query)))
	return o.finish(report)
}

func (o *Orchestrator) finish(report Report) Report {
	report.add(Step{State: StateDone, OK: true})
	for _, s := range report.Steps {
		if !s.OK {
			report.OK = false
			break
		}
	}
	o.log.WithFields(logging.Fields{"query": report.Query, "ok": report.OK, "focused": report.Focused}).Info("search finished")
	return report
}

func (o *Orchestrator) exec(ctx context.Context, state State, builtin string) Step {
	step := Step{State: state, OK: true, Command: builtin}
	if err := o.commander.Execute(ctx, builtin); err != nil {
		o.log.WithError(err).WithField("command", builtin).Warn("command failed")
		step.OK = false
		step.Detail = err.Error()
	}
	return step
}

func expandFallback(tmpl, query string) string {
	return strings.ReplaceAll(tmpl, "{query}", platform.QuoteArg(query))
}

func describeControls(p model.SkinProfile) string {
	if p.AlternateControl == "" {
		return p.ResultsControl
	}
	return p.ResultsControl + " or " + p.AlternateControl
}
