package systems

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/automoto/cakeday/components"
)

func readySource(p *fakePlayer) MusicSource {
	return func(ctx context.Context) (components.MediaPlayer, error) {
		return p, nil
	}
}

func TestAudioReadyWhileGateShownPauses(t *testing.T) {
	e := newTestTable(t)
	a := GetAudio(e)
	p := &fakePlayer{}

	LoadMusic(context.Background(), a, readySource(p))
	waitFor(t, func() { UpdateAudio(e) }, a.Ready)

	if p.pauses != 1 || p.playing {
		t.Errorf("ready behind the gate: pauses=%d playing=%v", p.pauses, p.playing)
	}
	if !p.muted {
		t.Error("player should start muted")
	}
	if len(p.seeks) != 1 || p.seeks[0] != a.StartOffset {
		t.Errorf("seeks = %v, want [%v]", p.seeks, a.StartOffset)
	}
	if GetInteraction(e).Playing() {
		t.Error("play toggle should stay off behind the gate")
	}

	DismissGate(e)
	if !p.playing {
		t.Error("dismissing the gate should start playback")
	}
}

func TestAudioReadyAfterDismissPlays(t *testing.T) {
	e := newTestTable(t)
	a := GetAudio(e)
	p := &fakePlayer{}

	DismissGate(e)
	LoadMusic(context.Background(), a, readySource(p))
	waitFor(t, func() { UpdateAudio(e) }, a.Ready)

	if !p.playing || p.pauses != 0 {
		t.Errorf("ready after dismiss: playing=%v pauses=%d", p.playing, p.pauses)
	}
}

func TestAudioAttachedOnce(t *testing.T) {
	e := newTestTable(t)
	a := GetAudio(e)
	first, second := &fakePlayer{}, &fakePlayer{}

	attachPlayer(a, GetInteraction(e), first)
	attachPlayer(a, GetInteraction(e), second)

	if a.Player != first {
		t.Error("second ready event replaced the player")
	}
	if len(second.seeks) != 0 {
		t.Error("second player should be untouched")
	}
}

func TestAudioLoadFailure(t *testing.T) {
	e := newTestTable(t)
	a := GetAudio(e)

	LoadMusic(context.Background(), a, func(ctx context.Context) (components.MediaPlayer, error) {
		return nil, errors.New("decode failed")
	})
	waitFor(t, func() { UpdateAudio(e) }, func() bool { return a.Failed })

	if a.Ready() {
		t.Error("failed load should leave no player")
	}
	// controls are silent no-ops
	DismissGate(e)
	PressPlay(e)
	PressMute(e)
}

func TestPressPlayNotReady(t *testing.T) {
	e := newTestTable(t)
	DismissGate(e)
	state := GetInteraction(e)
	before := state.Playing()

	PressPlay(e)
	if state.Playing() != before {
		t.Error("Play/Pause should do nothing before the player is ready")
	}
}

func TestPressPlayToggles(t *testing.T) {
	e := newTestTable(t)
	a := GetAudio(e)
	p := &fakePlayer{}
	DismissGate(e)
	attachPlayer(a, GetInteraction(e), p)

	PressPlay(e)
	if p.playing || GetInteraction(e).Playing() {
		t.Error("first press should pause")
	}
	PressPlay(e)
	if !p.playing || !GetInteraction(e).Playing() {
		t.Error("second press should resume")
	}
}

func TestPressMute(t *testing.T) {
	e := newTestTable(t)
	a := GetAudio(e)
	state := GetInteraction(e)

	// before ready the toggle flips and is applied on ready
	PressMute(e)
	if state.Muted() {
		t.Fatal("mute should flip before the player is ready")
	}
	p := &fakePlayer{muted: true}
	attachPlayer(a, state, p)
	if p.muted {
		t.Error("ready should apply the unmuted state")
	}

	PressMute(e)
	if !state.Muted() || !p.muted {
		t.Error("press should mute the ready player")
	}
}

func TestAudioEndedLoopsToOffset(t *testing.T) {
	tests := []struct {
		name         string
		loopToOffset bool
		want         time.Duration
	}{
		{"loop to offset", true, 2 * time.Second},
		{"loop to start", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestTable(t)
			a := GetAudio(e)
			a.StartOffset = 2 * time.Second
			a.LoopToOffset = tt.loopToOffset
			p := &fakePlayer{}

			DismissGate(e)
			attachPlayer(a, GetInteraction(e), p)
			p.seeks = nil

			// track runs out
			p.playing = false
			UpdateAudio(e)

			if len(p.seeks) != 1 || p.seeks[0] != tt.want {
				t.Errorf("seeks = %v, want [%v]", p.seeks, tt.want)
			}
			if !p.playing {
				t.Error("ended track should replay")
			}
		})
	}
}

func TestCloseAudio(t *testing.T) {
	e := newTestTable(t)
	a := GetAudio(e)
	p := &fakePlayer{}
	DismissGate(e)
	attachPlayer(a, GetInteraction(e), p)

	CloseAudio(e)
	if p.playing {
		t.Error("close should stop playback")
	}

	// a paused track after close is not an ended track
	UpdateAudio(e)
	if p.playing {
		t.Error("closed audio should stay stopped")
	}
}
