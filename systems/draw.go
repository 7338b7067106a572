package systems

import (
	"image"
	"image/color"
	"math"

	cfg "github.com/automoto/cakeday/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var whiteSubImage *ebiten.Image

func whiteSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

type point struct {
	X, Y float32
}

// projector maps scene units around an anchor to screen pixels.
// y is up, z is toward the viewer and pushes points down the screen.
type projector struct {
	ox, oy float64
	ppu    float64
	depth  float64
	sx, sy float64
}

func newProjector(ox, oy float64) projector {
	return projector{
		ox:    ox,
		oy:    oy,
		ppu:   cfg.Scene.PixelsPerUnit,
		depth: cfg.Scene.DepthFactor,
		sx:    1,
		sy:    1,
	}
}

func (p projector) at(x, y, z float64) point {
	return point{
		X: float32(p.ox + x*p.ppu*p.sx),
		Y: float32(p.oy + (-y+z*p.depth)*p.ppu*p.sy),
	}
}

// ring returns the outline of a horizontal circle of radius r at height y, from angle a0 to a1.
// Angle 0 points right and π/2 points at the viewer.
func (p projector) ring(r, y, a0, a1 float64, segments int) []point {
	pts := make([]point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(segments)
		pts = append(pts, p.at(r*math.Cos(a), y, r*math.Sin(a)))
	}
	return pts
}

// fillPolygon fills a convex polygon
func fillPolygon(dst *ebiten.Image, pts []point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	r, g, b, a := clr.RGBA()
	cr, cg, cb, ca := float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff

	vs := make([]ebiten.Vertex, len(pts))
	for i, pt := range pts {
		vs[i] = ebiten.Vertex{
			DstX: pt.X, DstY: pt.Y,
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	is := make([]uint16, 0, (len(pts)-2)*3)
	for i := 1; i < len(pts)-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(vs, is, whiteSource(), op)
}

// fillStrip fills the band between two polylines of equal length
func fillStrip(dst *ebiten.Image, top, bottom []point, clr color.Color) {
	for i := 0; i+1 < len(top) && i+1 < len(bottom); i++ {
		fillPolygon(dst, []point{top[i], top[i+1], bottom[i+1], bottom[i]}, clr)
	}
}

// fillEllipse fills an axis-aligned ellipse
func fillEllipse(dst *ebiten.Image, cx, cy, rx, ry float32, clr color.Color) {
	const segments = 40
	pts := make([]point, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / segments
		pts[i] = point{cx + rx*float32(math.Cos(a)), cy + ry*float32(math.Sin(a))}
	}
	fillPolygon(dst, pts, clr)
}

// drawCylinder draws a vertical cylinder of radius r standing at height y0
func drawCylinder(dst *ebiten.Image, p projector, r, y0, h float64, side, top color.Color) {
	base := p.at(0, y0, 0)
	lid := p.at(0, y0+h, 0)
	rx := float32(r * p.ppu * p.sx)
	ry := float32(r * p.ppu * p.depth * p.sy)

	fillEllipse(dst, base.X, base.Y, rx, ry, side)
	fillPolygon(dst, []point{
		{lid.X - rx, lid.Y}, {lid.X + rx, lid.Y},
		{base.X + rx, base.Y}, {base.X - rx, base.Y},
	}, side)
	fillEllipse(dst, lid.X, lid.Y, rx, ry, top)
}

func shade(c color.RGBA, f float64) color.RGBA {
	clamp := func(v float64) uint8 {
		return uint8(math.Max(0, math.Min(255, v)))
	}
	return color.RGBA{clamp(float64(c.R) * f), clamp(float64(c.G) * f), clamp(float64(c.B) * f), c.A}
}

func withAlpha(c color.RGBA, a float64) color.RGBA {
	// colors are premultiplied
	f := math.Max(0, math.Min(1, a))
	return color.RGBA{uint8(float64(c.R) * f), uint8(float64(c.G) * f), uint8(float64(c.B) * f), uint8(float64(c.A) * f)}
}
