package systems

import (
	"image/color"

	cfg "github.com/automoto/cakeday/config"
	"github.com/automoto/cakeday/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hintMargin  = 12
	hintPadding = 8
)

// DrawHint renders the control hint bar along the bottom edge
func DrawHint(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.Hint) {
		return
	}
	state := GetInteraction(ecs)
	if state != nil && state.GateShown() {
		return
	}

	face := fonts.Hint.Get()
	hint := cfg.UI.HintText
	bounds := text.BoundString(face, hint)
	w := float32(bounds.Dx() + 2*hintPadding)
	h := float32(lineHeight(face) + hintPadding)
	x := (float32(screen.Bounds().Dx()) - w) / 2
	y := float32(screen.Bounds().Dy()) - h - hintMargin

	vector.FillRect(screen, x, y, w, h, color.RGBA{0, 0, 0, 110}, false)
	text.Draw(screen, hint, face, int(x)+hintPadding, int(y)+lineHeight(face), cfg.Scene.Colors.Hint)
}
