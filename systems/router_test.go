package systems

import (
	"image"
	"math"
	"testing"

	"github.com/automoto/cakeday/components"
	cfg "github.com/automoto/cakeday/config"
	"github.com/automoto/cakeday/tags"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestInitialStateAndSpace(t *testing.T) {
	e := newTestTable(t)
	keys, _ := stubInput(t)
	SubscribeKeyboard(e)

	state := GetInteraction(e)
	if state.CandleBlown() || state.CakeCut() || !state.CardOpen() || !state.Muted() || !state.GateShown() || state.Playing() {
		t.Fatalf("unexpected initial state %+v", *state)
	}

	keys[ebiten.KeySpace] = true
	UpdateInput(e)
	UpdateRouter(e)

	if !state.CandleBlown() {
		t.Error("space should blow the candle")
	}
	if state.CakeCut() || !state.CardOpen() || !state.Muted() || !state.GateShown() || state.Playing() {
		t.Errorf("space changed another toggle: %+v", *state)
	}

	// held key is not a new press
	UpdateInput(e)
	UpdateRouter(e)
	if !state.CandleBlown() {
		t.Error("holding space should not flip again")
	}

	keys[ebiten.KeySpace] = false
	UpdateInput(e)
	keys[ebiten.KeySpace] = true
	UpdateInput(e)
	UpdateRouter(e)
	if state.CandleBlown() {
		t.Error("second press should relight the candle")
	}
}

func TestSpaceIgnoredWhileTyping(t *testing.T) {
	e := newTestTable(t)
	keys, _ := stubInput(t)
	SubscribeKeyboard(e)
	state := GetInteraction(e)

	SetTextFocus(e, true)
	keys[ebiten.KeySpace] = true
	UpdateInput(e)
	UpdateRouter(e)
	if state.CandleBlown() {
		t.Error("space typed into a text field should not blow the candle")
	}

	// focus leaves the field; the next press counts again
	SetTextFocus(e, false)
	keys[ebiten.KeySpace] = false
	UpdateInput(e)
	keys[ebiten.KeySpace] = true
	UpdateInput(e)
	UpdateRouter(e)
	if !state.CandleBlown() {
		t.Error("space should blow the candle once the field loses focus")
	}
}

func TestCakeClickDrivesSliceSpring(t *testing.T) {
	e := newTestTable(t)
	DismissGate(e)
	UpdateSprings(e)

	if got := SpringValue(e.World, components.SpringSliceOffset); got != 0 {
		t.Fatalf("slice offset before cut = %v, want 0", got)
	}

	x, y := regionCenter(t, e, components.HitCake)
	if !RoutePointer(e, x, y) {
		t.Fatal("click on cake region missed")
	}
	if !GetInteraction(e).CakeCut() {
		t.Fatal("cake should be cut")
	}

	for i := 0; i < 300; i++ {
		UpdateSprings(e)
	}
	if got := SpringValue(e.World, components.SpringSliceOffset); math.Abs(got-cfg.Cake.SliceOffsetCut) > 1e-3 {
		t.Errorf("slice offset = %v, want %v", got, cfg.Cake.SliceOffsetCut)
	}
}

func TestStartDismissesOnce(t *testing.T) {
	e := newTestTable(t)
	state := GetInteraction(e)

	results := []bool{DismissGate(e), DismissGate(e), DismissGate(e)}
	if !results[0] || results[1] || results[2] {
		t.Errorf("DismissGate results = %v, want [true false false]", results)
	}
	if state.GateShown() {
		t.Error("gate should be hidden")
	}
	if !state.Playing() {
		t.Error("dismiss should set play")
	}
}

func TestRoutePointer(t *testing.T) {
	tests := []struct {
		name   string
		target components.HitTarget
		check  func(*components.InteractionData) bool
	}{
		{"candle", components.HitCandle, (*components.InteractionData).CandleBlown},
		{"cake", components.HitCake, (*components.InteractionData).CakeCut},
		{"card", components.HitCard, func(s *components.InteractionData) bool { return !s.CardOpen() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestTable(t)
			state := GetInteraction(e)
			x, y := regionCenter(t, e, tt.target)

			if RoutePointer(e, x, y) {
				t.Fatal("presses should be ignored while the gate is shown")
			}
			DismissGate(e)

			if !RoutePointer(e, x, y) {
				t.Fatal("press missed")
			}
			if !tt.check(state) {
				t.Errorf("%s toggle not flipped", tt.name)
			}
			RoutePointer(e, x, y)
			if tt.check(state) {
				t.Errorf("%s toggle should flip back", tt.name)
			}
		})
	}
}

func TestHitTestPrefersCandle(t *testing.T) {
	e := newTestTable(t)

	// bottom of the candle region overlaps the top of the cake region
	region, ok := HitTest(e, 480, 310)
	if !ok {
		t.Fatal("expected a hit")
	}
	if got := components.HitRegion.Get(region).Target; got != components.HitCandle {
		t.Errorf("target = %v, want candle", got)
	}

	if _, ok := HitTest(e, 5, 5); ok {
		t.Error("expected a miss in the corner")
	}
}

func TestPointerBlockedByHUD(t *testing.T) {
	e := newTestTable(t)
	_, press := stubInput(t)
	DismissGate(e)

	x, y := regionCenter(t, e, components.HitCard)
	SetPointerBlockers(e, []image.Rectangle{image.Rect(int(x)-10, int(y)-10, int(x)+10, int(y)+10)})

	press(int(x), int(y))
	UpdateInput(e)
	UpdateRouter(e)
	if !GetInteraction(e).CardOpen() {
		t.Error("press on a HUD widget should not reach the card")
	}

	SetPointerBlockers(e, nil)
	press(int(x), int(y))
	UpdateInput(e)
	UpdateRouter(e)
	if GetInteraction(e).CardOpen() {
		t.Error("unblocked press should close the card")
	}
}

func TestClickPulsesProp(t *testing.T) {
	e := newTestTable(t)
	DismissGate(e)

	x, y := regionCenter(t, e, components.HitCard)
	RoutePointer(e, x, y)

	card, _ := tags.Card.First(e.World)
	sx, sy := squashScale(card)
	if sx <= 1 || sy >= 1 {
		t.Fatalf("pulse scale = %v,%v", sx, sy)
	}
	for i := 0; i < 120; i++ {
		UpdateEffects(e)
	}
	if card.HasComponent(components.SquashStretch) {
		t.Error("pulse should settle and be removed")
	}
}

func TestKeyboardSubscriptionRelease(t *testing.T) {
	e := newTestTable(t)
	keys, _ := stubInput(t)
	sub := SubscribeKeyboard(e)
	state := GetInteraction(e)

	sub.Release()
	sub.Release()
	if sub.Active() {
		t.Fatal("released subscription is still active")
	}

	keys[ebiten.KeySpace] = true
	UpdateInput(e)
	UpdateRouter(e)
	if state.CandleBlown() {
		t.Error("released subscription should deliver nothing")
	}
	if n := getOrCreateInput(e).Subscribers; n != 0 {
		t.Errorf("Subscribers = %d, want 0", n)
	}
}

func TestDebugToggle(t *testing.T) {
	e := newTestTable(t)
	keys, _ := stubInput(t)
	SubscribeKeyboard(e)

	keys[ebiten.KeyF3] = true
	UpdateInput(e)
	UpdateRouter(e)
	if !GetScene(e).Debug {
		t.Error("F3 should enable the debug overlay")
	}
}
