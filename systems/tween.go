package systems

import (
	"github.com/automoto/cakeday/components"
	cfg "github.com/automoto/cakeday/config"
	"github.com/automoto/cakeday/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens advances every running tween by one tick
func UpdateTweens(ecs *ecs.ECS) {
	dt := float32(tickSeconds())

	components.Tween.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		if tw.Done || tw.Tween == nil {
			return
		}
		if tw.Delay > 0 {
			tw.Delay -= dt
			return
		}
		tw.Value, tw.Done = tw.Tween.Update(dt)
	})
}

// StartFramePop scales a frame in from nothing after delay seconds
func StartFramePop(entry *donburi.Entry, delay float32) {
	components.Tween.SetValue(entry, components.TweenData{
		Tween: gween.New(0, 1, cfg.Intro.FramePopDuration, ease.OutBack),
		Delay: delay,
	})
}

// StartGateFade fades the gate shade out
func StartGateFade(ecs *ecs.ECS) {
	entry, ok := tags.GateOverlay.First(ecs.World)
	if !ok {
		return
	}
	tw := components.Tween.Get(entry)
	from := tw.Value
	if from <= 0 {
		from = 1
	}
	components.Tween.SetValue(entry, components.TweenData{
		Tween: gween.New(from, 0, cfg.Intro.GateFadeDuration, ease.OutQuad),
		Value: from,
	})
}
