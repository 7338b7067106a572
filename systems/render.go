package systems

import (
	"image/color"
	"math"

	"github.com/automoto/cakeday/components"
	cfg "github.com/automoto/cakeday/config"
	"github.com/automoto/cakeday/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	stage  *ebiten.Image
	drawOp = &ebiten.DrawImageOptions{}

	// per-frame composites (wood, mat and photo) keyed by entity
	frameCanvases = map[donburi.Entity]*frameCanvas{}
)

type frameCanvas struct {
	img    *ebiten.Image
	photo  *ebiten.Image
	failed bool
}

// DrawScene renders the table scene to an offscreen stage and grades it onto the screen
func DrawScene(ecs *ecs.ECS, screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if stage == nil || stage.Bounds().Dx() != w || stage.Bounds().Dy() != h {
		if stage != nil {
			stage.Deallocate()
		}
		stage = ebiten.NewImage(w, h)
	}
	stage.Clear()

	backdrop := components.BackdropData{Kind: cfg.BackdropFlat, Lighting: cfg.LightingCool}
	if e, ok := components.Backdrop.First(ecs.World); ok {
		backdrop = *components.Backdrop.Get(e)
	}

	drawBackdrop(ecs, stage, backdrop)
	drawTable(stage, backdrop)
	drawFrames(ecs, stage)
	drawCake(ecs, stage)
	drawKnife(ecs, stage)
	drawCard(ecs, stage)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	r, g, b := backdrop.Lighting.Grade()
	drawOp.ColorScale.Scale(r, g, b, 1)
	screen.DrawImage(stage, drawOp)
}

// DrawGateShade dims the scene while the start gate is up and while it fades
func DrawGateShade(ecs *ecs.ECS, screen *ebiten.Image) {
	e, ok := tags.GateOverlay.First(ecs.World)
	if !ok {
		return
	}
	v := components.Tween.Get(e).Value
	if v <= 0 {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), withAlpha(cfg.Scene.Colors.GateShade, float64(v)), false)
}

// ebitenTexture uploads a decoded texture on first use
func ebitenTexture(tex *components.TextureData) *ebiten.Image {
	if tex.Ebiten == nil && tex.Image != nil {
		tex.Ebiten = ebiten.NewImageFromImage(tex.Image)
	}
	return tex.Ebiten
}

func drawBackdrop(ecs *ecs.ECS, dst *ebiten.Image, backdrop components.BackdropData) {
	w := float32(dst.Bounds().Dx())
	horizon := float32(cfg.Scene.HorizonY)
	sky := cfg.Scene.Colors.Sky

	// flat gradient first so a missing skyline still has a sky
	const bands = 24
	bandH := horizon / bands
	for i := 0; i < bands; i++ {
		f := 1 + 0.9*float64(i)/bands
		vector.FillRect(dst, 0, float32(i)*bandH, w, bandH+1, shade(sky, f), false)
	}

	if backdrop.Kind != cfg.BackdropSkyline {
		return
	}
	e, ok := tags.Skyline.First(ecs.World)
	if !ok {
		return
	}
	img := ebitenTexture(components.Texture.Get(e))
	if img == nil {
		return
	}

	// cover the area above the horizon, anchored to the bottom
	iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	scale := math.Max(float64(w)/iw, float64(horizon)/ih)
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(scale, scale)
	drawOp.GeoM.Translate((float64(w)-iw*scale)/2, float64(horizon)-ih*scale)
	drawOp.Filter = ebiten.FilterLinear
	dst.DrawImage(img, drawOp)
	drawOp.Filter = ebiten.FilterNearest
}

func drawTable(dst *ebiten.Image, backdrop components.BackdropData) {
	w := float32(dst.Bounds().Dx())
	h := float32(dst.Bounds().Dy())
	horizon := float32(cfg.Scene.HorizonY)
	colors := cfg.Scene.Colors

	vector.FillRect(dst, 0, horizon, w, h-horizon, colors.TableTop, false)
	vector.FillRect(dst, 0, horizon, w, 4, colors.TableEdge, false)

	if backdrop.Cloth == cfg.ClothChecker {
		drawChecker(dst, horizon+6, h)
	}
}

// drawChecker lays a checkered cloth in one-point perspective between top and bottom
func drawChecker(dst *ebiten.Image, top, bottom float32) {
	const (
		rows = 7
		cols = 14
	)
	w := float64(dst.Bounds().Dx())
	vx := w / 2
	vy := float64(top) - 260
	colors := cfg.Scene.Colors

	rowY := func(i int) float64 {
		t := float64(i) / rows
		return float64(top) + float64(bottom-top)*math.Pow(t, 1.35)
	}
	colX := func(j int, y float64) float64 {
		base := -w*0.25 + float64(j)*(w*1.5/cols)
		k := (y - vy) / (float64(bottom) - vy)
		return vx + (base-vx)*k
	}

	for i := 0; i < rows; i++ {
		y0, y1 := rowY(i), rowY(i+1)
		for j := 0; j < cols; j++ {
			clr := colors.ClothA
			if (i+j)%2 == 1 {
				clr = colors.ClothB
			}
			fillPolygon(dst, []point{
				{float32(colX(j, y0)), float32(y0)},
				{float32(colX(j+1, y0)), float32(y0)},
				{float32(colX(j+1, y1)), float32(y1)},
				{float32(colX(j, y1)), float32(y1)},
			}, clr)
		}
	}
}

func drawFrames(ecs *ecs.ECS, dst *ebiten.Image) {
	tags.Frame.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Frame.Get(e)
		tex := components.Texture.Get(e)
		pop := float64(components.Tween.Get(e).Value)
		if pop <= 0 {
			return
		}

		canvas := frameCanvasFor(e.Entity(), f, tex)

		// turn about the vertical axis: narrower, with the far edge shorter
		turn := math.Cos(f.Angle)
		skew := math.Sin(f.Angle) * 0.12

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-f.W/2, -f.H)
		drawOp.GeoM.Skew(0, skew)
		drawOp.GeoM.Scale(turn*pop, pop)
		drawOp.GeoM.Translate(f.X+f.W/2, f.Y+f.H)
		drawOp.Filter = ebiten.FilterLinear
		dst.DrawImage(canvas.img, drawOp)
		drawOp.Filter = ebiten.FilterNearest
	})
}

// frameCanvasFor returns the composed frame, redrawing it when the photo changes
func frameCanvasFor(id donburi.Entity, f *components.FrameData, tex *components.TextureData) *frameCanvas {
	photo := ebitenTexture(tex)
	c, ok := frameCanvases[id]
	if ok && c.photo == photo && c.failed == tex.Failed {
		return c
	}
	if !ok {
		c = &frameCanvas{img: ebiten.NewImage(int(f.W), int(f.H))}
		frameCanvases[id] = c
	}
	c.photo = photo
	c.failed = tex.Failed

	colors := cfg.Scene.Colors
	w, h := float32(f.W), float32(f.H)
	border := float32(math.Max(4, f.W*0.05))
	mat := border * 0.8

	c.img.Clear()
	vector.FillRect(c.img, 0, 0, w, h, colors.FrameWood, false)
	vector.FillRect(c.img, border, border, w-2*border, h-2*border, colors.FrameMat, false)

	inset := border + mat
	iw, ih := float64(w-2*inset), float64(h-2*inset)
	if photo != nil && iw > 0 && ih > 0 {
		pw, ph := float64(photo.Bounds().Dx()), float64(photo.Bounds().Dy())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(iw/pw, ih/ph)
		op.GeoM.Translate(float64(inset), float64(inset))
		op.Filter = ebiten.FilterLinear
		c.img.DrawImage(photo, op)
	} else if iw > 0 && ih > 0 {
		vector.FillRect(c.img, inset, inset, float32(iw), float32(ih), color.RGBA{205, 200, 190, 255}, false)
	}
	return c
}

// ForgetFrameCanvases releases the cached frame composites
func ForgetFrameCanvases() {
	for id, c := range frameCanvases {
		c.img.Deallocate()
		delete(frameCanvases, id)
	}
}
