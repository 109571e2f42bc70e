package search

import (
	"context"
	"time"
)

type event struct {
	kind  string // "exec", "query", "sleep"
	value string
}

type timeline struct {
	events []event
}

func (tl *timeline) add(kind, value string) {
	tl.events = append(tl.events, event{kind: kind, value: value})
}

func (tl *timeline) of(kind string) []string {
	var out []string
	for _, e := range tl.events {
		if e.kind == kind {
			out = append(out, e.value)
		}
	}
	return out
}

type fakeClock struct {
	now time.Time
	tl  *timeline
}

func newFakeClock(tl *timeline) *fakeClock {
	return &fakeClock{now: time.Unix(1700000000, 0), tl: tl}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.now = c.now.Add(d)
	c.tl.add("sleep", d.String())
}

// fakeHost records commands and answers conditions from a truth table.
type fakeHost struct {
	tl      *timeline
	truth   map[string]bool
	skin    string
	skinErr error
	execErr error
	condErr error
}

func newFakeHost(tl *timeline) *fakeHost {
	return &fakeHost{tl: tl, truth: map[string]bool{}}
}

func (h *fakeHost) Execute(_ context.Context, builtin string) error {
	h.tl.add("exec", builtin)
	return h.execErr
}

func (h *fakeHost) Condition(_ context.Context, expr string) (bool, error) {
	h.tl.add("query", expr)
	if h.condErr != nil {
		return false, h.condErr
	}
	return h.truth[expr], nil
}

func (h *fakeHost) Skin(context.Context) (string, error) {
	h.tl.add("skin", h.skin)
	return h.skin, h.skinErr
}

func fixture() (*timeline, *fakeHost, *fakeClock) {
	tl := &timeline{}
	return tl, newFakeHost(tl), newFakeClock(tl)
}
