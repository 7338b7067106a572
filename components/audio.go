package components

import (
	"context"
	"time"

	"github.com/yohamta/donburi"
)

// MediaPlayer is the control surface of the background track
type MediaPlayer interface {
	Play()
	Pause()
	Mute()
	Unmute()
	SeekTo(offset time.Duration) error
	IsPlaying() bool
}

// MediaLoadResult is delivered once the background track is decoded
type MediaLoadResult struct {
	Player MediaPlayer
	Err    error
}

// AudioData stores the background music state (singleton component).
// Player stays nil until the track is ready and is set exactly once.
type AudioData struct {
	Player       MediaPlayer
	Source       string
	StartOffset  time.Duration
	LoopToOffset bool
	Autoplay     bool
	Failed       bool
	Closed       bool // scene torn down; nothing plays again

	Pending chan MediaLoadResult
	Cancel  context.CancelFunc
}

// Ready reports whether the player handle is attached
func (a *AudioData) Ready() bool {
	return a.Player != nil
}

var Audio = donburi.NewComponentType[AudioData]()
