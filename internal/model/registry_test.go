package model

import (
	"testing"
	"time"
)

func TestRegistry_LookupKnownSkin(t *testing.T) {
	r := NewRegistry()
	p := r.Lookup(SkinArcticFuse2)
	if p.ID != SkinArcticFuse2 {
		t.Fatalf("got %q, want %q", p.ID, SkinArcticFuse2)
	}
	if p.SearchWindow != "11185" || p.SearchProperty != "CustomSearchTerm" {
		t.Errorf("unexpected profile: %+v", p)
	}
	if p.ResultsControl != "5000" || p.AlternateControl != "5001" {
		t.Errorf("unexpected controls: %+v", p)
	}
}

func TestRegistry_UnknownSkinFallsBackToDefault(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"", SkinEstuary, "skin.nimbus", "SKIN.ARCTIC.FUSE.2"} {
		p := r.Lookup(id)
		if p.ID != DefaultProfileID {
			t.Errorf("Lookup(%q) = %q, want default", id, p.ID)
		}
		if !p.UsesBuiltinSearch() {
			t.Errorf("Lookup(%q): default profile should use built-in search", id)
		}
	}
}

func TestRegistry_OverridesReplaceBuiltins(t *testing.T) {
	r := NewRegistry(
		SkinProfile{ID: SkinArcticFuse2, SearchWindow: "11186"},
		SkinProfile{ID: "skin.custom", SearchWindow: "1200", ResultsControl: "50"},
		SkinProfile{SearchWindow: "ignored"},
	)
	if got := r.Lookup(SkinArcticFuse2).SearchWindow; got != "11186" {
		t.Errorf("override window = %q, want 11186", got)
	}
	if !r.Has("skin.custom") {
		t.Error("custom profile should be registered")
	}
	if len(r.Profiles()) != 3 {
		t.Errorf("expected 3 profiles, got %d", len(r.Profiles()))
	}
}

func TestRegistry_DefaultOverride(t *testing.T) {
	r := NewRegistry(SkinProfile{ID: DefaultProfileID, Fallback: "ActivateWindow(videos)"})
	if got := r.Lookup("skin.unknown").Fallback; got != "ActivateWindow(videos)" {
		t.Errorf("fallback = %q", got)
	}
}

func TestRegistry_ProfilesSorted(t *testing.T) {
	r := NewRegistry(SkinProfile{ID: "a.first"})
	profiles := r.Profiles()
	for i := 1; i < len(profiles); i++ {
		if profiles[i-1].ID > profiles[i].ID {
			t.Fatalf("profiles not sorted: %q before %q", profiles[i-1].ID, profiles[i].ID)
		}
	}
}

func TestSkinProfile_SettleDelay(t *testing.T) {
	if got := (SkinProfile{}).SettleDelay(); got != DefaultSettleDelay {
		t.Errorf("unset delay = %v, want %v", got, DefaultSettleDelay)
	}
	if got := (SkinProfile{SettleDelayMs: 250}).SettleDelay(); got != 250*time.Millisecond {
		t.Errorf("delay = %v, want 250ms", got)
	}
}

func TestParseSearchMethod(t *testing.T) {
	tests := []struct {
		input string
		want  SearchMethod
	}{
		{"", MethodSkin},
		{"skin", MethodSkin},
		{"skin_specific", MethodSkin},
		{"Default", MethodDefault},
		{"global", MethodGlobal},
		{"GLOBAL_SEARCH", MethodGlobal},
	}
	for _, tt := range tests {
		got, err := ParseSearchMethod(tt.input)
		if err != nil {
			t.Errorf("ParseSearchMethod(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseSearchMethod(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
	if _, err := ParseSearchMethod("voodoo"); err == nil {
		t.Error("ParseSearchMethod(\"voodoo\") should fail")
	}
}
