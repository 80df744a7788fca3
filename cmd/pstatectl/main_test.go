package main

import (
	"testing"

	"pstatectl/internal/pstate"
)

func TestApplyOverrides_NoneSetKeepsProfile(t *testing.T) {
	base := pstate.Values{MinPerfPct: 10, MaxPerfPct: 90, NoTurbo: true}
	got := applyOverrides(base, overrides{min: 50, max: 50, noTurbo: false})
	if got != base {
		t.Fatalf("got=%+v want profile values %+v", got, base)
	}
}

func TestApplyOverrides_FlaggedKnobsWin(t *testing.T) {
	base := pstate.Values{MinPerfPct: 10, MaxPerfPct: 90, NoTurbo: true}
	got := applyOverrides(base, overrides{
		min: 25, minSet: true,
		noTurbo: false, noTurboSet: true,
	})
	want := pstate.Values{MinPerfPct: 25, MaxPerfPct: 90, NoTurbo: false}
	if got != want {
		t.Fatalf("got=%+v want %+v", got, want)
	}
}

func TestOverrides_Any(t *testing.T) {
	if (overrides{}).any() {
		t.Fatalf("empty overrides reported as set")
	}
	if !(overrides{maxSet: true}).any() {
		t.Fatalf("maxSet not reported")
	}
}
