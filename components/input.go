package components

import (
	"image"

	cfg "github.com/automoto/cakeday/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all keyboard actions.
// Keys are only polled while Subscribers > 0. TextFocused is set while a HUD
// text field owns the keyboard.
type InputData struct {
	Current     [cfg.ActionCount]bool
	Previous    [cfg.ActionCount]bool
	Subscribers int
	TextFocused bool
}

var Input = donburi.NewComponentType[InputData]()

// PointerData is this frame's mouse or touch press, in screen pixels.
// Blockers are HUD rectangles that swallow presses before they reach the scene.
type PointerData struct {
	X, Y     int
	Pressed  bool
	Blockers []image.Rectangle
}

// Blocked reports whether the press landed on a HUD widget
func (p *PointerData) Blocked() bool {
	pt := image.Pt(p.X, p.Y)
	for _, r := range p.Blockers {
		if pt.In(r) {
			return true
		}
	}
	return false
}

var Pointer = donburi.NewComponentType[PointerData]()
