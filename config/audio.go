package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
}

// MusicConfig describes the background track and how it loops.
// Source is an embedded path ("embed:...") or a file on disk.
type MusicConfig struct {
	Source             string
	StartOffsetSeconds float64
	Autoplay           bool
	StartMuted         bool
	LoopToOffset       bool // on end, seek back to StartOffsetSeconds instead of 0
}

var Audio AudioConfig
var Music MusicConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.8,
	}

	Music = MusicConfig{
		Source:             "embed:audio/music/theme.wav",
		StartOffsetSeconds: 2,
		Autoplay:           true,
		StartMuted:         true,
		LoopToOffset:       true,
	}
}
