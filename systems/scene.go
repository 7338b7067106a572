package systems

import (
	"github.com/automoto/cakeday/components"
	cfg "github.com/automoto/cakeday/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickSeconds is the fixed simulation step
func tickSeconds() float64 {
	return 1 / float64(cfg.C.TPS)
}

// UpdateClock advances the scene clock by one tick. Runs first.
func UpdateClock(ecs *ecs.ECS) {
	scene := GetScene(ecs)
	if scene == nil {
		return
	}
	scene.Ticks++
	scene.Elapsed = float64(scene.Ticks) * tickSeconds()
}

// GetScene returns the scene singleton, or nil before the scene is built
func GetScene(ecs *ecs.ECS) *components.SceneData {
	entry, ok := components.Scene.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Scene.Get(entry)
}

// GetInteraction returns the toggle state, or nil before the scene is built
func GetInteraction(ecs *ecs.ECS) *components.InteractionData {
	entry, ok := components.Interaction.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Interaction.Get(entry)
}

// GetAudio returns the music singleton, or nil when the scene has no music
func GetAudio(ecs *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Audio.Get(entry)
}

// findTexture returns the texture entry bound to slot
func findTexture(ecs *ecs.ECS, slot string) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Texture.Each(ecs.World, func(e *donburi.Entry) {
		if found == nil && components.Texture.Get(e).Slot == slot {
			found = e
		}
	})
	return found, found != nil
}
