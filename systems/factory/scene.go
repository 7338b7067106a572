package factory

import (
	"context"
	"time"

	"github.com/automoto/cakeday/archetypes"
	"github.com/automoto/cakeday/components"
	cfg "github.com/automoto/cakeday/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScene spawns the scene singleton holding the toggles, input and clock.
// With skipGate the start gate begins dismissed.
func CreateScene(ctx context.Context, ecs *ecs.ECS, variant *cfg.Variant, textures components.TextureSource) *donburi.Entry {
	scene := archetypes.Scene.Spawn(ecs)

	state := components.NewInteractionData()
	state.Mute.On = variant.MusicSettings().StartMuted
	if cfg.Debug.SkipGate {
		state.Gate.Dismiss()
	}
	components.Interaction.SetValue(scene, state)

	components.Scene.SetValue(scene, components.SceneData{
		Variant:  variant,
		Debug:    cfg.Debug.Overlay,
		Ctx:      ctx,
		Textures: textures,
	})
	return scene
}

// CreateBackdrop records the variant's backdrop, cloth and lighting
func CreateBackdrop(ecs *ecs.ECS, variant *cfg.Variant) *donburi.Entry {
	backdrop := archetypes.Backdrop.Spawn(ecs)
	components.Backdrop.SetValue(backdrop, components.BackdropData{
		Kind:     variant.Backdrop,
		Cloth:    variant.Cloth,
		Lighting: variant.Lighting,
	})
	return backdrop
}

// CreateGateOverlay adds the shade drawn over the scene until the gate fades out
func CreateGateOverlay(ecs *ecs.ECS, shown bool) *donburi.Entry {
	overlay := archetypes.GateOverlay.Spawn(ecs)
	data := components.TweenData{Done: true}
	if shown {
		data.Value = 1
	}
	components.Tween.SetValue(overlay, data)
	return overlay
}

// CreateAudio adds the background music entity; the player is attached once it loads
func CreateAudio(ecs *ecs.ECS, music cfg.MusicConfig) *donburi.Entry {
	audio := archetypes.Audio.Spawn(ecs)
	components.Audio.SetValue(audio, components.AudioData{
		Source:       music.Source,
		StartOffset:  time.Duration(music.StartOffsetSeconds * float64(time.Second)),
		LoopToOffset: music.LoopToOffset,
		Autoplay:     music.Autoplay,
	})
	return audio
}

// CreateOverride adds the image override queue; disabled unless the variant shows the picker
func CreateOverride(ecs *ecs.ECS, enabled bool) *donburi.Entry {
	override := archetypes.Override.Spawn(ecs)
	components.Override.SetValue(override, components.OverrideData{Enabled: enabled})
	return override
}
