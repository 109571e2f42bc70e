package search

import (
	"context"
	"time"

	"github.com/mj1618/kodi-search/internal/model"
	"github.com/mj1618/kodi-search/internal/platform"
)

// WaitResult is the output of a standalone wait.
type WaitResult struct {
	OK        bool   `yaml:"ok"                  json:"ok"`
	Action    string `yaml:"action"              json:"action"`
	Condition string `yaml:"condition"           json:"condition"`
	Polls     int    `yaml:"polls"               json:"polls"`
	Elapsed   string `yaml:"elapsed"             json:"elapsed"`
	TimedOut  bool   `yaml:"timed_out,omitempty" json:"timed_out,omitempty"`
}

// FocusResult is the output of a standalone focus attempt.
type FocusResult struct {
	OK        bool   `yaml:"ok"                  json:"ok"`
	Action    string `yaml:"action"              json:"action"`
	Control   string `yaml:"control"             json:"control"`
	Alternate string `yaml:"alternate,omitempty" json:"alternate,omitempty"`
	Attempts  int    `yaml:"attempts"            json:"attempts"`
}

// SkinResult describes the active skin and the profile it maps to.
type SkinResult struct {
	OK      bool              `yaml:"ok"              json:"ok"`
	Action  string            `yaml:"action"          json:"action"`
	Skin    string            `yaml:"skin,omitempty"  json:"skin,omitempty"`
	Known   bool              `yaml:"known"           json:"known"`
	Profile model.SkinProfile `yaml:"profile"         json:"profile"`
	Error   string            `yaml:"error,omitempty" json:"error,omitempty"`
}

// StatusResult reports whether the media center is reachable.
type StatusResult struct {
	OK           bool   `yaml:"ok"                      json:"ok"`
	Action       string `yaml:"action"                  json:"action"`
	Reachable    bool   `yaml:"reachable"               json:"reachable"`
	Skin         string `yaml:"skin,omitempty"          json:"skin,omitempty"`
	Addon        string `yaml:"addon,omitempty"         json:"addon,omitempty"`
	AddonVersion string `yaml:"addon_version,omitempty" json:"addon_version,omitempty"`
	Error        string `yaml:"error,omitempty"         json:"error,omitempty"`
}

// Wait polls expr and describes the outcome.
func (w *Waiter) Wait(ctx context.Context, expr string, timeout, interval time.Duration) WaitResult {
	out := w.WaitForCondition(ctx, expr, timeout, interval)
	return WaitResult{
		OK:        out.OK,
		Action:    "wait",
		Condition: expr,
		Polls:     out.Polls,
		Elapsed:   out.Elapsed.String(),
		TimedOut:  !out.OK,
	}
}

// Focus runs Acquire and describes the outcome.
func (f *FocusAcquirer) Focus(ctx context.Context, primary, alternate string, maxAttempts int) FocusResult {
	return FocusResult{
		OK:        f.Acquire(ctx, primary, alternate, maxAttempts),
		Action:    "focus",
		Control:   primary,
		Alternate: alternate,
		Attempts:  maxAttempts,
	}
}

// DescribeSkin detects the active skin and resolves its profile.
func (s *Searcher) DescribeSkin(ctx context.Context) SkinResult {
	res := SkinResult{Action: "skin"}
	skin, err := s.inspector.Skin(ctx)
	if err != nil {
		res.Error = err.Error()
		res.Profile = s.registry.Default()
		return res
	}
	res.OK = true
	res.Skin = skin
	res.Known = s.registry.Has(skin)
	res.Profile = s.registry.Lookup(skin)
	return res
}

// Status pings the host and, when addonID is set, checks that the addon is
// installed.
func Status(ctx context.Context, diag platform.Diagnostics, inspector platform.Inspector, addonID string) StatusResult {
	res := StatusResult{Action: "status", Addon: addonID}
	if err := diag.Ping(ctx); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Reachable = true
	res.OK = true
	if skin, err := inspector.Skin(ctx); err == nil {
		res.Skin = skin
	}
	if addonID != "" {
		version, err := diag.AddonVersion(ctx, addonID)
		if err != nil {
			res.Error = err.Error()
		} else {
			res.AddonVersion = version
		}
	}
	return res
}
