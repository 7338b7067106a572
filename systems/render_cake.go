package systems

import (
	"math"

	"github.com/automoto/cakeday/assets"
	"github.com/automoto/cakeday/components"
	cfg "github.com/automoto/cakeday/config"
	"github.com/automoto/cakeday/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// sliceMid is the direction the slice slides out (front right)
const sliceMid = math.Pi / 4

func drawCake(ecs *ecs.ECS, dst *ebiten.Image) {
	e, ok := tags.Cake.First(ecs.World)
	if !ok {
		return
	}
	prop := components.Prop.Get(e)
	p := newProjector(prop.X, prop.Y)
	p.sx, p.sy = squashScale(e)

	c := cfg.Cake
	colors := cfg.Scene.Colors

	plate := p.at(0, 0, 0)
	prx := float32(c.PlateRadius * p.ppu * p.sx)
	pry := float32(c.PlateRadius * p.ppu * p.depth * p.sy)
	fillEllipse(dst, plate.X, plate.Y+3, prx, pry, shade(colors.Plate, 0.78))
	fillEllipse(dst, plate.X, plate.Y, prx, pry, colors.Plate)

	offset := SpringValue(ecs.World, components.SpringSliceOffset)
	lift := SpringValue(ecs.World, components.SpringTopTierY)
	a0, a1 := sliceMid-c.SliceAngle/2, sliceMid+c.SliceAngle/2
	cut := offset > 0.001

	drawCylinder(dst, p, c.Radius, 0, c.LowerHeight, colors.Sponge, colors.Icing)
	fillStrip(dst,
		p.ring(c.Radius, c.LowerHeight, 0, math.Pi, 24),
		p.ring(c.Radius, c.LowerHeight-0.05, 0, math.Pi, 24),
		colors.Drizzle)
	if cut {
		drawSliceCavity(dst, p, a0, a1)
	}

	topBase := c.LowerHeight + lift
	drawCylinder(dst, p, c.TopRadius, topBase, c.TopHeight, shade(colors.Icing, 0.95), colors.Icing)
	topLid := topBase + c.TopHeight
	drawTopping(dst, p, topLid)

	tip := topLid + c.CandleHeight
	drawCylinder(dst, p, c.CandleRadius, topLid, c.CandleHeight, colors.Candle, shade(colors.Candle, 1.05))
	wickBase, wickTop := p.at(0, tip, 0), p.at(0, tip+0.05, 0)
	vector.StrokeLine(dst, wickBase.X, wickBase.Y, wickTop.X, wickTop.Y, 2, colors.Wick, true)

	drawFlame(dst, p, components.Flame.Get(e), tip)
	drawSparks(dst, p, components.SparkEmitter.Get(e), tip)

	if cut {
		q := p
		q.ox += offset * math.Cos(sliceMid) * p.ppu * p.sx
		q.oy += offset * math.Sin(sliceMid) * p.ppu * p.depth * p.sy
		drawSlice(dst, q, a0, a1)
	}
}

// drawSliceCavity paints the gap left in the lower tier
func drawSliceCavity(dst *ebiten.Image, p projector, a0, a1 float64) {
	c := cfg.Cake
	colors := cfg.Scene.Colors
	hollow := shade(colors.Sponge, 0.55)

	top := p.ring(c.Radius, c.LowerHeight, a0, a1, 8)
	bottom := p.ring(c.Radius, 0, a0, a1, 8)
	fillPolygon(dst, append([]point{p.at(0, c.LowerHeight, 0)}, top...), hollow)
	fillStrip(dst, top, bottom, hollow)
	fillPolygon(dst, append([]point{p.at(0, 0, 0)}, bottom...), colors.Plate)

	for _, a := range []float64{a0, a1} {
		fillPolygon(dst, cutFace(p, a), shade(colors.Sponge, 0.85))
	}
}

// drawSlice paints the wedge at the projector's (displaced) origin
func drawSlice(dst *ebiten.Image, p projector, a0, a1 float64) {
	c := cfg.Cake
	colors := cfg.Scene.Colors

	for _, a := range []float64{a0, a1} {
		fillPolygon(dst, cutFace(p, a), shade(colors.Sponge, 0.92))
	}
	top := p.ring(c.Radius, c.LowerHeight, a0, a1, 8)
	fillStrip(dst, top, p.ring(c.Radius, 0, a0, a1, 8), colors.Sponge)
	fillStrip(dst, top, p.ring(c.Radius, c.LowerHeight-0.05, a0, a1, 8), colors.Drizzle)
	fillPolygon(dst, append([]point{p.at(0, c.LowerHeight, 0)}, top...), colors.Icing)
}

func cutFace(p projector, a float64) []point {
	c := cfg.Cake
	x, z := c.Radius*math.Cos(a), c.Radius*math.Sin(a)
	return []point{
		p.at(0, c.LowerHeight, 0),
		p.at(x, c.LowerHeight, z),
		p.at(x, 0, z),
		p.at(0, 0, 0),
	}
}

func drawTopping(dst *ebiten.Image, p projector, y float64) {
	c := cfg.Cake
	colors := cfg.Scene.Colors
	dot := float32(0.05 * p.ppu * p.sx)

	for i := 0; i < c.SwirlCount; i++ {
		a := 2 * math.Pi * float64(i) / float64(c.SwirlCount)
		pt := p.at(c.TopRadius*0.86*math.Cos(a), y, c.TopRadius*0.86*math.Sin(a))
		fillEllipse(dst, pt.X, pt.Y-dot*0.4, dot, dot*0.8, colors.Swirl)
	}
	for i := 0; i < 5; i++ {
		a := 2*math.Pi*float64(i)/5 + 0.3
		pt := p.at(c.TopRadius*0.5*math.Cos(a), y, c.TopRadius*0.5*math.Sin(a))
		fillEllipse(dst, pt.X, pt.Y-dot, dot*1.1, dot*1.3, colors.Strawberry)
	}

	// biscuit stick leaning away from the candle
	foot, head := p.at(0.32, y, -0.15), p.at(0.42, y+0.3, -0.2)
	vector.StrokeLine(dst, foot.X, foot.Y, head.X, head.Y, float32(0.045*p.ppu), colors.Biscuit, true)
}

func drawFlame(dst *ebiten.Image, p projector, f *components.FlameData, tip float64) {
	if !f.Visible {
		return
	}
	center := p.at(f.SwayX, tip+cfg.Flame.OffsetAboveTip, 0)
	rx := float32(f.Scale * p.ppu * p.sx)
	ry := float32(f.ScaleY * p.ppu * p.sy)
	if rx <= 0 || ry <= 0 {
		return
	}

	if assets.FlameShader == nil {
		fillEllipse(dst, center.X, center.Y, rx, ry, cfg.Scene.Colors.Spark)
		return
	}
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Center": []float32{center.X, center.Y},
		"Radius": []float32{rx, ry},
	}
	op.Blend = ebiten.BlendLighter
	op.GeoM.Translate(float64(center.X-rx*1.5), float64(center.Y-ry*1.5))
	dst.DrawRectShader(int(rx*3)+1, int(ry*3)+1, assets.FlameShader, op)
}

func drawSparks(dst *ebiten.Image, p projector, em *components.SparkEmitterData, tip float64) {
	if !em.Visible {
		return
	}
	base := tip + cfg.Spark.OffsetAbove
	for _, s := range em.Particles {
		pt := p.at(s.X, base+s.Y, s.Z)
		vector.FillCircle(dst, pt.X, pt.Y, cfg.Spark.Size, cfg.Scene.Colors.Spark, true)
	}
}

func drawKnife(ecs *ecs.ECS, dst *ebiten.Image) {
	e, ok := tags.Knife.First(ecs.World)
	if !ok {
		return
	}
	prop := components.Prop.Get(e)
	p := newProjector(prop.X, prop.Y)
	k := cfg.Knife
	colors := cfg.Scene.Colors

	x := SpringValue(ecs.World, components.SpringKnifeX)
	a := SpringValue(ecs.World, components.SpringKnifeAngle)
	cos, sin := math.Cos(a), math.Sin(a)

	tipX, tipZ := x-k.BladeLen*cos, k.Depth-k.BladeLen*sin
	half := k.BladeWidth / 2
	blade := []point{
		p.at(x, k.Height+half, k.Depth),
		p.at(x-0.8*k.BladeLen*cos, k.Height+half, k.Depth-0.8*k.BladeLen*sin),
		p.at(tipX, k.Height, tipZ),
		p.at(x, k.Height-half, k.Depth),
	}
	fillPolygon(dst, blade, colors.Blade)

	pivot := p.at(x, k.Height, k.Depth)
	butt := p.at(x+k.HandleLen*cos, k.Height, k.Depth+k.HandleLen*sin)
	vector.StrokeLine(dst, pivot.X, pivot.Y, butt.X, butt.Y, float32(0.07*p.ppu), colors.Handle, true)
	vector.FillCircle(dst, pivot.X, pivot.Y, float32(0.04*p.ppu), shade(colors.Blade, 0.7), true)
}
