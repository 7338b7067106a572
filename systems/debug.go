package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/cakeday/components"
	"github.com/automoto/cakeday/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the hit regions and prints the spring and interaction state
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	scene := GetScene(ecs)
	if scene == nil || !scene.Debug {
		return
	}

	tags.HitRegion.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		region := components.HitRegion.Get(e)

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch region.Target {
		case components.HitCandle:
			c = color.RGBA{255, 200, 0, 255}
		case components.HitCake:
			c = color.RGBA{255, 0, 255, 255}
		case components.HitCard:
			c = color.RGBA{0, 255, 0, 255}
		}

		x, y := float32(o.X), float32(o.Y)
		vector.StrokeRect(screen, x, y, float32(o.W), float32(o.H), 1, c, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s p%d", region.Target, region.Priority), int(x)+2, int(y)+2)
	})

	line := 4
	row := func(s string) {
		ebitenutil.DebugPrintAt(screen, s, 4, line)
		line += 14
	}
	row(fmt.Sprintf("TPS %.0f  FPS %.0f  t=%.1fs", ebiten.ActualTPS(), ebiten.ActualFPS(), scene.Elapsed))
	if state := GetInteraction(ecs); state != nil {
		row(fmt.Sprintf("candle=%v cut=%v card=%v muted=%v playing=%v gate=%v",
			state.CandleBlown(), state.CakeCut(), state.CardOpen(), state.Muted(), state.Playing(), state.GateShown()))
	}
	components.Spring.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Spring.Get(e)
		row(fmt.Sprintf("%-12s %7.3f -> %7.3f", s.Channel, s.Current, s.Target))
	})
	if a := GetAudio(ecs); a != nil {
		row(fmt.Sprintf("audio ready=%v failed=%v", a.Ready(), a.Failed))
	}
}
