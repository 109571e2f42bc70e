package search

import (
	"context"
	"errors"
	"testing"
	"time"
)

func countEqual(values []string, want string) int {
	n := 0
	for _, v := range values {
		if v == want {
			n++
		}
	}
	return n
}

func TestAcquire_FallsBackToAlternate(t *testing.T) {
	for _, altFocused := range []bool{true, false} {
		tl, host, clock := fixture()
		host.truth["Control.HasFocus(5001)"] = altFocused
		f := NewFocusAcquirer(host, host, clock, 50*time.Millisecond, nil)

		got := f.Acquire(context.Background(), "5000", "5001", 3)
		if got != altFocused {
			t.Errorf("Acquire() = %v, want alternate result %v", got, altFocused)
		}

		execs := tl.of("exec")
		if n := countEqual(execs, "SetFocus(5000)"); n != 3 {
			t.Errorf("primary attempts = %d, want 3", n)
		}
		if n := countEqual(execs, "SetFocus(5001)"); n != 1 {
			t.Errorf("alternate attempts = %d, want 1", n)
		}
		queries := tl.of("query")
		if last := queries[len(queries)-1]; last != "Control.HasFocus(5001)" {
			t.Errorf("last check = %q, want alternate check", last)
		}
		if len(tl.of("sleep")) != 4 {
			t.Errorf("settle pauses = %d, want 4", len(tl.of("sleep")))
		}
	}
}

func TestAcquire_NoAlternateGivesUp(t *testing.T) {
	tl, host, clock := fixture()
	f := NewFocusAcquirer(host, host, clock, 50*time.Millisecond, nil)

	if f.Acquire(context.Background(), "5000", "", 3) {
		t.Fatal("expected false")
	}
	execs := tl.of("exec")
	if len(execs) != 3 || countEqual(execs, "SetFocus(5000)") != 3 {
		t.Errorf("execs = %v, want 3 x SetFocus(5000)", execs)
	}
	if len(tl.of("query")) != 3 {
		t.Errorf("checks = %d, want 3", len(tl.of("query")))
	}
}

func TestAcquire_StopsOnFirstSuccess(t *testing.T) {
	tl, host, clock := fixture()
	host.truth["Control.HasFocus(5000)"] = true
	f := NewFocusAcquirer(host, host, clock, 50*time.Millisecond, nil)

	if !f.Acquire(context.Background(), "5000", "5001", 3) {
		t.Fatal("expected true")
	}
	if execs := tl.of("exec"); len(execs) != 1 || execs[0] != "SetFocus(5000)" {
		t.Errorf("execs = %v", execs)
	}
}

func TestAcquire_PauseBetweenCommandAndCheck(t *testing.T) {
	tl, host, clock := fixture()
	f := NewFocusAcquirer(host, host, clock, 75*time.Millisecond, nil)
	f.Acquire(context.Background(), "5000", "", 1)

	want := []event{
		{"exec", "SetFocus(5000)"},
		{"sleep", "75ms"},
		{"query", "Control.HasFocus(5000)"},
	}
	if len(tl.events) != len(want) {
		t.Fatalf("events = %v, want %v", tl.events, want)
	}
	for i := range want {
		if tl.events[i] != want[i] {
			t.Errorf("event[%d] = %v, want %v", i, tl.events[i], want[i])
		}
	}
}

func TestAcquire_HostErrorsAreNotFatal(t *testing.T) {
	tl, host, clock := fixture()
	host.execErr = errors.New("network unreachable")
	host.condErr = errors.New("network unreachable")
	f := NewFocusAcquirer(host, host, clock, 0, nil)

	if f.Acquire(context.Background(), "5000", "5001", 2) {
		t.Fatal("expected false")
	}
	if len(tl.of("exec")) != 3 {
		t.Errorf("execs = %d, want 3 (2 primary + 1 alternate)", len(tl.of("exec")))
	}
}
