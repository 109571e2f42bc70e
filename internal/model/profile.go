package model

import (
	"fmt"
	"strings"
	"time"
)

// DefaultSettleDelay is used when a profile leaves SettleDelay unset.
const DefaultSettleDelay = 1500 * time.Millisecond

// SkinProfile describes how to run a search inside one Kodi skin.
// A profile without a SearchWindow means "use the host's built-in search".
type SkinProfile struct {
	ID               string `yaml:"id"                          json:"id"`
	Name             string `yaml:"name,omitempty"              json:"name,omitempty"`
	SearchWindow     string `yaml:"search_window,omitempty"     json:"search_window,omitempty"`
	SearchProperty   string `yaml:"search_property,omitempty"   json:"search_property,omitempty"`
	ResultsControl   string `yaml:"results_control,omitempty"   json:"results_control,omitempty"`
	AlternateControl string `yaml:"alternate_control,omitempty" json:"alternate_control,omitempty"`
	ReadyCondition   string `yaml:"ready_condition,omitempty"   json:"ready_condition,omitempty"`
	SettleDelayMs    int    `yaml:"settle_delay_ms,omitempty"   json:"settle_delay_ms,omitempty"`

	// Fallback is a builtin issued when SearchWindow is empty. "{query}" is
	// replaced with the quoted search text. Empty means do nothing.
	Fallback string `yaml:"fallback,omitempty" json:"fallback,omitempty"`
}

// SettleDelay returns the configured settle delay or DefaultSettleDelay.
func (p SkinProfile) SettleDelay() time.Duration {
	if p.SettleDelayMs <= 0 {
		return DefaultSettleDelay
	}
	return time.Duration(p.SettleDelayMs) * time.Millisecond
}

// UsesBuiltinSearch reports whether the profile defers to Kodi's own search.
func (p SkinProfile) UsesBuiltinSearch() bool {
	return p.SearchWindow == ""
}

// SearchMethod selects which code path a search takes.
type SearchMethod string

const (
	MethodSkin    SearchMethod = "skin_specific"
	MethodDefault SearchMethod = "default"
	MethodGlobal  SearchMethod = "global_search"
)

// ParseSearchMethod converts a config or parameter value to a SearchMethod.
// Short forms ("skin", "global") are accepted.
func ParseSearchMethod(s string) (SearchMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "skin", "skin_specific", "skin-specific":
		return MethodSkin, nil
	case "default", "builtin":
		return MethodDefault, nil
	case "global", "global_search", "global-search":
		return MethodGlobal, nil
	default:
		return MethodSkin, fmt.Errorf("unknown search method: %q (expected skin_specific, default, or global_search)", s)
	}
}

// WaitOutcome is the result of a bounded poll. A timeout is OK=false, not an
// error. Polls counts sleep cycles, so an already-true condition has zero.
type WaitOutcome struct {
	OK      bool          `yaml:"ok"      json:"ok"`
	Polls   int           `yaml:"polls"   json:"polls"`
	Elapsed time.Duration `yaml:"elapsed" json:"elapsed"`
}
