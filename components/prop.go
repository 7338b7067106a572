package components

import (
	"context"

	cfg "github.com/automoto/cakeday/config"
	"github.com/yohamta/donburi"
)

// PropKind identifies a drawn table prop
type PropKind int

const (
	PropCake PropKind = iota
	PropCard
	PropKnife
)

// PropData anchors a prop on screen (pixels, layout space)
type PropData struct {
	Kind PropKind
	X, Y float64
}

var Prop = donburi.NewComponentType[PropData]()

// FrameData is a photo frame standing on the table.
// Angle is the turn about the vertical axis in radians.
type FrameData struct {
	Slot  string
	X, Y  float64
	W, H  float64
	Angle float64
}

var Frame = donburi.NewComponentType[FrameData]()

// CardData is the greeting card copy
type CardData struct {
	Title   string
	Message string
	Sign    string
}

var Card = donburi.NewComponentType[CardData]()

// BackdropData selects what is drawn behind and under the props
type BackdropData struct {
	Kind     cfg.Backdrop
	Cloth    cfg.Cloth
	Lighting cfg.Lighting
}

var Backdrop = donburi.NewComponentType[BackdropData]()

// SceneData is the per-scene clock, debug switch and load context (singleton).
// Ctx is cancelled when the scene closes.
type SceneData struct {
	Elapsed  float64 // seconds since mount
	Ticks    int
	Variant  *cfg.Variant
	Debug    bool
	Ctx      context.Context
	Textures TextureSource
}

var Scene = donburi.NewComponentType[SceneData]()
