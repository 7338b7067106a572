package systems

import (
	"math"
	"strings"

	"github.com/automoto/cakeday/components"
	cfg "github.com/automoto/cakeday/config"
	"github.com/automoto/cakeday/fonts"
	"github.com/automoto/cakeday/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var (
	cardFace *ebiten.Image
	cardBack *ebiten.Image
)

const (
	cardPadding  = 32
	cardTitleGap = 14
	cardSignGap  = 18
)

// drawCard stands the card on its bottom hinge. Past vertical-to-view the
// card lies towards the viewer and its back shows.
func drawCard(ecs *ecs.ECS, dst *ebiten.Image) {
	e, ok := tags.Card.First(ecs.World)
	if !ok {
		return
	}
	prop := components.Prop.Get(e)
	card := components.Card.Get(e)
	sx, sy := squashScale(e)

	if cardFace == nil {
		cardFace, cardBack = renderCard(card)
	}

	hinge := SpringValue(ecs.World, components.SpringCardHinge)
	f := cardHeightFactor(hinge)
	tw, th := float64(cardFace.Bounds().Dx()), float64(cardFace.Bounds().Dy())
	k := cfg.Card.Width / tw
	w := cfg.Card.Width

	// shadow on the table
	vector.FillRect(dst, float32(prop.X-w/2*sx), float32(prop.Y-2), float32(w*sx), 5, shade(cfg.Scene.Colors.TableEdge, 0.8), false)

	img := cardFace
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	if f >= 0 {
		drawOp.GeoM.Translate(-tw/2, -th)
		drawOp.GeoM.Scale(k*sx, k*f*sy)
	} else {
		img = cardBack
		drawOp.GeoM.Translate(-tw/2, 0)
		drawOp.GeoM.Scale(k*sx, -k*f*sy)
		drawOp.ColorScale.Scale(0.92, 0.92, 0.92, 1)
	}
	drawOp.GeoM.Translate(prop.X, prop.Y)
	drawOp.Filter = ebiten.FilterLinear
	dst.DrawImage(img, drawOp)
	drawOp.Filter = ebiten.FilterNearest
}

// cardHeightFactor is the on-screen height of the card as a fraction of its
// upright height. Negative once it has tipped towards the viewer.
func cardHeightFactor(hinge float64) float64 {
	return math.Cos(hinge) - cfg.Scene.DepthFactor*math.Sin(hinge)
}

// cardLayout is where the card copy goes on the card texture, baselines in pixels
type cardLayout struct {
	width, height  int
	titleX, titleY int
	lines          []string
	lineY          []int
	signX, signY   int
}

// layoutCard places title, message and sign on a texture cfg.Card.TextureWidth
// wide. The texture grows past cfg.Card.TextureHeight when the message needs it,
// so every wrapped line is kept.
func layoutCard(card *components.CardData, titleFace, bodyFace, signFace font.Face) cardLayout {
	l := cardLayout{width: cfg.Card.TextureWidth}

	y := cardPadding + lineHeight(titleFace)
	l.titleX = (l.width - font.MeasureString(titleFace, card.Title).Ceil()) / 2
	l.titleY = y

	y += cardTitleGap
	l.lines = wrapText(bodyFace, card.Message, l.width-2*cardPadding)
	for range l.lines {
		y += lineHeight(bodyFace)
		l.lineY = append(l.lineY, y)
	}

	y += cardSignGap + lineHeight(signFace)
	l.height = max(cfg.Card.TextureHeight, y+cardPadding)
	l.signX = l.width - cardPadding - font.MeasureString(signFace, card.Sign).Ceil()
	l.signY = l.height - cardPadding
	return l
}

func renderCard(card *components.CardData) (*ebiten.Image, *ebiten.Image) {
	colors := cfg.Scene.Colors
	w, h := cfg.Card.TextureWidth, cfg.Card.TextureHeight

	var l cardLayout
	loaded := fonts.Loaded(fonts.Body)
	if loaded {
		l = layoutCard(card, fonts.Title.Get(), fonts.Body.Get(), fonts.Sign.Get())
		w, h = l.width, l.height
	}

	back := ebiten.NewImage(w, h)
	back.Fill(colors.CardBoard)
	vector.StrokeRect(back, 3, 3, float32(w-6), float32(h-6), 6, shade(colors.CardBoard, 0.85), false)

	face := ebiten.NewImage(w, h)
	face.Fill(colors.CardPaper)
	vector.StrokeRect(face, 3, 3, float32(w-6), float32(h-6), 6, colors.CardBoard, false)
	if !loaded {
		return face, back
	}

	text.Draw(face, card.Title, fonts.Title.Get(), l.titleX, l.titleY, colors.CardInk)
	for i, line := range l.lines {
		text.Draw(face, line, fonts.Body.Get(), cardPadding, l.lineY[i], colors.CardInk)
	}
	text.Draw(face, card.Sign, fonts.Sign.Get(), l.signX, l.signY, colors.CardInk)
	return face, back
}

func lineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}

// wrapText breaks s into lines no wider than maxWidth pixels. A single word
// wider than maxWidth gets a line of its own.
func wrapText(face font.Face, s string, maxWidth int) []string {
	limit := fixed.I(maxWidth)
	var lines []string
	var line string
	for _, word := range strings.Fields(s) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && font.MeasureString(face, candidate) > limit {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// ForgetCard drops the rendered card so it is redrawn with new copy
func ForgetCard() {
	if cardFace != nil {
		cardFace.Deallocate()
		cardBack.Deallocate()
	}
	cardFace, cardBack = nil, nil
}
