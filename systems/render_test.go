package systems

import (
	"math"
	"strings"
	"testing"

	"github.com/automoto/cakeday/components"
	cfg "github.com/automoto/cakeday/config"
	"github.com/automoto/cakeday/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func TestCardHeightFactor(t *testing.T) {
	tests := []struct {
		name  string
		hinge float64
		check func(float64) bool
	}{
		{"open stands upright", cfg.Card.HingeOpen, func(f float64) bool { return f == 1 }},
		{"closed lies towards the viewer", cfg.Card.HingeClosed, func(f float64) bool { return f < 0 }},
		{"halfway still shows the face", math.Pi / 8, func(f float64) bool { return f > 0 && f < 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if f := cardHeightFactor(tt.hinge); !tt.check(f) {
				t.Errorf("cardHeightFactor(%v) = %v", tt.hinge, f)
			}
		})
	}
}

func TestWrapText(t *testing.T) {
	if err := fonts.LoadDefaults(); err != nil {
		t.Fatal(err)
	}
	face := fonts.Body.Get()
	maxWidth := 160

	lines := wrapText(face, cfg.Card.Message, maxWidth)
	if len(lines) < 2 {
		t.Fatalf("expected several lines, got %d", len(lines))
	}
	for _, line := range lines {
		if font.MeasureString(face, line) > fixed.I(maxWidth) && strings.Contains(line, " ") {
			t.Errorf("line too wide: %q", line)
		}
	}
	if got := strings.Join(lines, " "); got != strings.Join(strings.Fields(cfg.Card.Message), " ") {
		t.Error("wrapping lost or reordered words")
	}

	if lines := wrapText(face, "", maxWidth); len(lines) != 0 {
		t.Errorf("empty text gave %v", lines)
	}
	if lines := wrapText(face, "Supercalifragilistic", 10); len(lines) != 1 {
		t.Errorf("long word should get its own line, got %v", lines)
	}
}

func TestCardLayoutKeepsEveryLine(t *testing.T) {
	if err := fonts.LoadDefaults(); err != nil {
		t.Fatal(err)
	}
	titleFace, bodyFace, signFace := fonts.Title.Get(), fonts.Body.Get(), fonts.Sign.Get()

	tests := []struct {
		name    string
		message string
	}{
		{"greeting", cfg.Card.Message},
		{"short", "Happy birthday!"},
		{"long", strings.Repeat(cfg.Card.Message+" ", 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := &components.CardData{Title: cfg.Card.Title, Message: tt.message, Sign: cfg.Card.Sign}
			l := layoutCard(card, titleFace, bodyFace, signFace)

			want := wrapText(bodyFace, tt.message, l.width-2*cardPadding)
			if len(l.lines) != len(want) || len(l.lineY) != len(want) {
				t.Fatalf("laid out %d lines (%d baselines), message wraps to %d", len(l.lines), len(l.lineY), len(want))
			}
			if l.lines[len(l.lines)-1] != want[len(want)-1] {
				t.Errorf("last line = %q, want %q", l.lines[len(l.lines)-1], want[len(want)-1])
			}
			if l.width != cfg.Card.TextureWidth || l.height < cfg.Card.TextureHeight {
				t.Errorf("texture %dx%d smaller than %dx%d", l.width, l.height, cfg.Card.TextureWidth, cfg.Card.TextureHeight)
			}

			// last body line sits above the sign, and the sign inside the card
			signTop := l.signY - signFace.Metrics().Ascent.Ceil()
			lastBottom := l.lineY[len(l.lineY)-1] + bodyFace.Metrics().Descent.Ceil()
			if lastBottom > signTop {
				t.Errorf("message bottom %d overlaps sign top %d", lastBottom, signTop)
			}
			if l.signY > l.height-cardPadding {
				t.Errorf("sign baseline %d outside card height %d", l.signY, l.height)
			}
			for i := 1; i < len(l.lineY); i++ {
				if l.lineY[i] <= l.lineY[i-1] {
					t.Fatalf("baselines not increasing: %v", l.lineY)
				}
			}
		})
	}

	// the greeting itself fits the original proportions
	l := layoutCard(&components.CardData{Title: cfg.Card.Title, Message: cfg.Card.Message, Sign: cfg.Card.Sign}, titleFace, bodyFace, signFace)
	if !strings.Contains(l.lines[len(l.lines)-1], "I miss you <3") {
		t.Errorf("greeting ends with %q", l.lines[len(l.lines)-1])
	}
}

func TestProjector(t *testing.T) {
	p := newProjector(100, 200)

	if pt := p.at(0, 0, 0); pt.X != 100 || pt.Y != 200 {
		t.Errorf("origin = %+v", pt)
	}
	up := p.at(0, 1, 0)
	if up.Y >= 200 {
		t.Errorf("higher points should move up the screen: %+v", up)
	}
	near := p.at(0, 0, 1)
	if near.Y <= 200 {
		t.Errorf("nearer points should move down the screen: %+v", near)
	}

	ring := p.ring(1, 0, 0, math.Pi, 8)
	if len(ring) != 9 {
		t.Fatalf("ring points = %d, want 9", len(ring))
	}
}
