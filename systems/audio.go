package systems

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/automoto/cakeday/assets"
	"github.com/automoto/cakeday/components"
	cfg "github.com/automoto/cakeday/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// MusicSource produces a ready player for the background track
type MusicSource func(ctx context.Context) (components.MediaPlayer, error)

// NewMusicSource decodes source with the shared audio context
func NewMusicSource(source string) MusicSource {
	return func(ctx context.Context) (components.MediaPlayer, error) {
		initGlobalAudio()
		player, err := globalAudioLoader.LoadMusic(source)
		if err != nil {
			return nil, err
		}
		if ctx.Err() != nil {
			_ = player.Close()
			return nil, ctx.Err()
		}
		return NewMusicPlayer(player, cfg.Audio.DefaultMusicVol), nil
	}
}

// musicPlayer adapts an ebiten audio player to MediaPlayer
type musicPlayer struct {
	player *audio.Player
	volume float64
}

// NewMusicPlayer wraps player; Unmute restores volume
func NewMusicPlayer(player *audio.Player, volume float64) components.MediaPlayer {
	return &musicPlayer{player: player, volume: volume}
}

func (m *musicPlayer) Play()           { m.player.Play() }
func (m *musicPlayer) Pause()          { m.player.Pause() }
func (m *musicPlayer) Mute()           { m.player.SetVolume(0) }
func (m *musicPlayer) Unmute()         { m.player.SetVolume(m.volume) }
func (m *musicPlayer) IsPlaying() bool { return m.player.IsPlaying() }

func (m *musicPlayer) SeekTo(offset time.Duration) error {
	return m.player.SetPosition(offset)
}

// LoadMusic starts decoding the background track in the background.
// The result is attached by UpdateAudio on the update thread.
func LoadMusic(ctx context.Context, a *components.AudioData, src MusicSource) {
	if a.Cancel != nil {
		a.Cancel()
	}
	lctx, cancel := context.WithCancel(ctx)
	ch := make(chan components.MediaLoadResult, 1)
	a.Pending = ch
	a.Cancel = cancel

	go func() {
		player, err := src(lctx)
		ch <- components.MediaLoadResult{Player: player, Err: err}
	}()
}

// UpdateAudio attaches a finished music load and loops the track back to its start offset
func UpdateAudio(ecs *ecs.ECS) {
	a := GetAudio(ecs)
	state := GetInteraction(ecs)
	if a == nil || state == nil || a.Closed {
		return
	}

	if a.Pending != nil {
		select {
		case res := <-a.Pending:
			a.Pending = nil
			if a.Cancel != nil {
				a.Cancel()
				a.Cancel = nil
			}
			if res.Err != nil {
				a.Failed = true
				log.Printf("Warning: Could not load music %s: %v", a.Source, res.Err)
			} else {
				attachPlayer(a, state, res.Player)
			}
		default:
		}
	}

	if !a.Ready() {
		return
	}

	// ended: we want it playing but the track ran out
	if state.Playing() && !a.Player.IsPlaying() {
		handleEnded(a)
	}
}

// attachPlayer is the ready event. The handle is set exactly once.
func attachPlayer(a *components.AudioData, state *components.InteractionData, p components.MediaPlayer) {
	if a.Ready() || p == nil {
		return
	}
	a.Player = p

	if state.Muted() {
		p.Mute()
	} else {
		p.Unmute()
	}
	if err := p.SeekTo(a.StartOffset); err != nil {
		log.Printf("Warning: Could not seek music to %v: %v", a.StartOffset, err)
	}

	if state.GateShown() {
		p.Pause()
		return
	}
	if a.Autoplay {
		state.Play.On = true
	}
	if state.Playing() {
		p.Play()
	}
}

func handleEnded(a *components.AudioData) {
	offset := time.Duration(0)
	if a.LoopToOffset {
		offset = a.StartOffset
	}
	if err := a.Player.SeekTo(offset); err != nil {
		log.Printf("Warning: Could not rewind music: %v", err)
	}
	a.Player.Play()
}

// CloseAudio cancels an outstanding load and stops playback
func CloseAudio(ecs *ecs.ECS) {
	a := GetAudio(ecs)
	if a == nil {
		return
	}
	a.Closed = true
	if a.Cancel != nil {
		a.Cancel()
		a.Cancel = nil
	}
	if a.Ready() {
		a.Player.Pause()
	}
}
