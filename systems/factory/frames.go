package factory

import (
	"github.com/automoto/cakeday/archetypes"
	"github.com/automoto/cakeday/assets"
	"github.com/automoto/cakeday/components"
	cfg "github.com/automoto/cakeday/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFrame stands a photo frame on the table. ref is the slot's configured image.
// The frame starts scaled to nothing; its pop-in tween is started by the scene.
func CreateFrame(ecs *ecs.ECS, spawn assets.FrameSpawn, ref string) *donburi.Entry {
	frame := archetypes.Frame.Spawn(ecs)
	components.Frame.SetValue(frame, components.FrameData{
		Slot:  spawn.Slot,
		X:     spawn.X,
		Y:     spawn.Y,
		W:     spawn.W,
		H:     spawn.H,
		Angle: spawn.Angle,
	})
	components.Texture.SetValue(frame, components.TextureData{
		Slot:     spawn.Slot,
		Ref:      ref,
		Default:  ref,
		Fallback: cfg.Assets.PhotoFallback,
		Aspect:   spawn.W / spawn.H,
	})
	components.Tween.SetValue(frame, components.TweenData{})
	return frame
}

// CreateFrames creates one frame per layout slot, pairing slots with refs in order.
// Slots without a ref fall back to the placeholder photo.
func CreateFrames(ecs *ecs.ECS, spawns []assets.FrameSpawn, refs []string) []*donburi.Entry {
	frames := make([]*donburi.Entry, 0, len(spawns))
	for i, spawn := range spawns {
		ref := cfg.Assets.PhotoFallback
		if idx := slotIndex(spawn.Slot); idx >= 0 && idx < len(refs) {
			ref = refs[idx]
		} else if i < len(refs) {
			ref = refs[i]
		}
		frames = append(frames, CreateFrame(ecs, spawn, ref))
	}
	return frames
}

func slotIndex(slot string) int {
	for i, s := range cfg.Assets.PhotoSlots {
		if s == slot {
			return i
		}
	}
	return -1
}

// CreateSkyline adds the backdrop texture entity
func CreateSkyline(ecs *ecs.ECS, ref string) *donburi.Entry {
	skyline := archetypes.Skyline.Spawn(ecs)
	components.Texture.SetValue(skyline, components.TextureData{
		Slot:     cfg.Assets.SkylineSlot,
		Ref:      ref,
		Default:  ref,
		Fallback: cfg.Assets.SkylineFallback,
		Aspect:   float64(cfg.C.Width) / cfg.Scene.HorizonY,
	})
	return skyline
}
