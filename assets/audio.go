package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

// AudioLoader decodes the background track into a seekable player
type AudioLoader struct {
	context *audio.Context
	fs      fs.FS
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		context: ctx,
		fs:      audioFS,
	}
}

// ReadSource returns the raw bytes of an "embed:" path or a file on disk
func (l *AudioLoader) ReadSource(source string) ([]byte, error) {
	if path, ok := strings.CutPrefix(source, embedPrefix); ok {
		data, err := fs.ReadFile(l.fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
		}
		return data, nil
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", source, err)
	}
	return data, nil
}

// LoadMusic returns a non-looping player for the track. Looping back to the
// start offset is handled by whoever owns the player.
func (l *AudioLoader) LoadMusic(source string) (*audio.Player, error) {
	data, err := l.ReadSource(source)
	if err != nil {
		return nil, err
	}

	stream, err := l.decode(source, data)
	if err != nil {
		return nil, err
	}

	player, err := l.context.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create player for %s: %w", source, err)
	}
	return player, nil
}

func (l *AudioLoader) decode(source string, data []byte) (io.ReadSeeker, error) {
	sr := l.context.SampleRate()
	ext := strings.ToLower(filepath.Ext(source))

	switch ext {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(sr, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", source, err)
		}
		return stream, nil
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(sr, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", source, err)
		}
		return stream, nil
	case ".mp3":
		stream, err := mp3.DecodeWithSampleRate(sr, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode mp3 %s: %w", source, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
}
