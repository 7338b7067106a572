package components

import (
	"image"
	"testing"
)

func TestToggleInvolution(t *testing.T) {
	for _, start := range []bool{false, true} {
		tg := Toggle{On: start}
		tg.Toggle()
		tg.Toggle()
		if tg.On != start {
			t.Errorf("toggle twice from %v ended at %v", start, tg.On)
		}
	}
}

func TestToggleReturnsNewValue(t *testing.T) {
	tg := Toggle{}
	if got := tg.Toggle(); !got {
		t.Error("first Toggle should return true")
	}
	if got := tg.Toggle(); got {
		t.Error("second Toggle should return false")
	}
}

func TestGateDismiss(t *testing.T) {
	g := Gate{Shown: true}

	if !g.Dismiss() {
		t.Fatal("first Dismiss should report the transition")
	}
	if g.Shown {
		t.Fatal("gate still shown after Dismiss")
	}
	for i := 0; i < 3; i++ {
		if g.Dismiss() {
			t.Errorf("Dismiss #%d reported a transition on a hidden gate", i+2)
		}
		if g.Shown {
			t.Errorf("Dismiss #%d showed the gate", i+2)
		}
	}
}

func TestGateToggle(t *testing.T) {
	g := Gate{Shown: true}
	if g.Toggle() {
		t.Error("Toggle from shown should hide")
	}
	if !g.Toggle() {
		t.Error("Toggle from hidden should show")
	}
}

func TestNewInteractionData(t *testing.T) {
	d := NewInteractionData()

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"candle blown", d.CandleBlown(), false},
		{"cake cut", d.CakeCut(), false},
		{"card open", d.CardOpen(), true},
		{"muted", d.Muted(), true},
		{"playing", d.Playing(), false},
		{"gate shown", d.GateShown(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPointerBlocked(t *testing.T) {
	p := PointerData{
		X: 15, Y: 15,
		Blockers: []image.Rectangle{image.Rect(10, 10, 20, 20)},
	}
	if !p.Blocked() {
		t.Error("press inside blocker should be blocked")
	}
	p.X = 25
	if p.Blocked() {
		t.Error("press outside blocker should not be blocked")
	}
}

func TestHitTargetFromName(t *testing.T) {
	tests := map[string]HitTarget{
		"candle": HitCandle,
		"cake":   HitCake,
		"card":   HitCard,
		"plate":  HitNone,
	}
	for name, want := range tests {
		if got := HitTargetFromName(name); got != want {
			t.Errorf("HitTargetFromName(%q) = %v, want %v", name, got, want)
		}
	}
}
