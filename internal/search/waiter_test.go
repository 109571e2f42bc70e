package search

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWaitFor_AlreadyTrueReturnsImmediately(t *testing.T) {
	tl, _, clock := fixture()
	w := NewWaiter(nil, clock, nil)

	evals := 0
	out := w.WaitFor(func() bool { evals++; return true }, 500*time.Millisecond, 100*time.Millisecond)

	if !out.OK {
		t.Fatal("expected success")
	}
	if out.Polls != 0 || out.Elapsed != 0 {
		t.Errorf("polls=%d elapsed=%v, want 0 and 0", out.Polls, out.Elapsed)
	}
	if evals != 1 {
		t.Errorf("evals=%d, want 1", evals)
	}
	if len(tl.of("sleep")) != 0 {
		t.Errorf("expected no sleeps, got %v", tl.of("sleep"))
	}
}

func TestWaitFor_AlwaysFalseTimesOut(t *testing.T) {
	_, _, clock := fixture()
	w := NewWaiter(nil, clock, nil)

	evals := 0
	out := w.WaitFor(func() bool { evals++; return false }, 500*time.Millisecond, 100*time.Millisecond)

	if out.OK {
		t.Fatal("expected timeout")
	}
	if out.Polls != 5 {
		t.Errorf("polls=%d, want 5", out.Polls)
	}
	if out.Elapsed != 500*time.Millisecond {
		t.Errorf("elapsed=%v, want 500ms", out.Elapsed)
	}
	if evals != out.Polls+1 {
		t.Errorf("evals=%d, want polls+1", evals)
	}
}

func TestWaitFor_BecomesTrue(t *testing.T) {
	_, _, clock := fixture()
	w := NewWaiter(nil, clock, nil)

	evals := 0
	out := w.WaitFor(func() bool { evals++; return evals == 3 }, time.Second, 100*time.Millisecond)

	if !out.OK {
		t.Fatal("expected success")
	}
	if out.Polls != 2 {
		t.Errorf("polls=%d, want 2", out.Polls)
	}
	if out.Elapsed != 200*time.Millisecond {
		t.Errorf("elapsed=%v, want 200ms", out.Elapsed)
	}
}

func TestWaitFor_LastSleepLandsOnDeadline(t *testing.T) {
	tl, _, clock := fixture()
	w := NewWaiter(nil, clock, nil)

	out := w.WaitFor(func() bool { return false }, 250*time.Millisecond, 100*time.Millisecond)

	if out.Elapsed != 250*time.Millisecond {
		t.Errorf("elapsed=%v, want 250ms", out.Elapsed)
	}
	want := []string{"100ms", "100ms", "50ms"}
	got := tl.of("sleep")
	if len(got) != len(want) {
		t.Fatalf("sleeps=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sleep[%d]=%s, want %s", i, got[i], want[i])
		}
	}
}

func TestWaitFor_ZeroTimeoutEvaluatesOnce(t *testing.T) {
	_, _, clock := fixture()
	w := NewWaiter(nil, clock, nil)

	evals := 0
	out := w.WaitFor(func() bool { evals++; return false }, 0, 100*time.Millisecond)
	if out.OK || evals != 1 || out.Polls != 0 {
		t.Errorf("ok=%v evals=%d polls=%d, want false/1/0", out.OK, evals, out.Polls)
	}
}

func TestWaitForCondition_QueriesHost(t *testing.T) {
	tl, host, clock := fixture()
	host.truth["Window.IsVisible(11185)"] = true
	w := NewWaiter(host, clock, nil)

	out := w.WaitForCondition(context.Background(), "Window.IsVisible(11185)", time.Second, 100*time.Millisecond)
	if !out.OK {
		t.Fatal("expected success")
	}
	if q := tl.of("query"); len(q) != 1 || q[0] != "Window.IsVisible(11185)" {
		t.Errorf("queries=%v", q)
	}
}

func TestWaitForCondition_ErrorsCountAsFalse(t *testing.T) {
	_, host, clock := fixture()
	host.truth["Window.IsVisible(11185)"] = true
	host.condErr = errors.New("connection refused")
	w := NewWaiter(host, clock, nil)

	out := w.WaitForCondition(context.Background(), "Window.IsVisible(11185)", 300*time.Millisecond, 100*time.Millisecond)
	if out.OK {
		t.Error("query errors should not count as success")
	}
	if out.Polls != 3 {
		t.Errorf("polls=%d, want 3", out.Polls)
	}
}
