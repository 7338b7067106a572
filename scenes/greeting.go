package scenes

import (
	"context"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/cakeday/assets"
	"github.com/automoto/cakeday/components"
	cfg "github.com/automoto/cakeday/config"
	"github.com/automoto/cakeday/systems"
	"github.com/automoto/cakeday/systems/factory"
	"github.com/automoto/cakeday/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GreetingScene is the birthday table: cake, card, photo frames and music
type GreetingScene struct {
	ecs     *ecs.ECS
	hud     *ui.HUD
	variant *cfg.Variant

	ctx      context.Context
	cancel   context.CancelFunc
	keyboard *systems.KeyboardSubscription

	textures components.TextureSource
	music    systems.MusicSource

	once      sync.Once
	closeOnce sync.Once
}

// NewGreetingScene creates the scene for variant. It is built on the first Update.
func NewGreetingScene(variant *cfg.Variant) *GreetingScene {
	return &GreetingScene{variant: variant}
}

func (gs *GreetingScene) Update() {
	gs.once.Do(gs.configure)

	// HUD rects from the last layout keep presses on widgets away from the props
	systems.SetPointerBlockers(gs.ecs, gs.hud.Blockers())
	gs.ecs.Update()
	gs.hud.Update()
}

func (gs *GreetingScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
	gs.hud.Draw(screen)
}

// Close releases the keyboard, cancels loads in flight and stops the music
func (gs *GreetingScene) Close() {
	gs.closeOnce.Do(func() {
		if gs.ecs == nil {
			return
		}
		gs.keyboard.Release()
		gs.cancel()
		systems.CancelTextureLoads(gs.ecs)
		systems.CloseAudio(gs.ecs)
		systems.ForgetFrameCanvases()
		systems.ForgetCard()
		log.Printf("[Scene] Greeting closed")
	})
}

func (gs *GreetingScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not compile shaders: %v", err)
	}

	layout, err := assets.LoadSceneLayout(cfg.Scene.LayoutPath)
	if err != nil {
		panic("failed to load scene layout: " + err.Error())
	}

	if gs.textures == nil {
		gs.textures = assets.NewTextureLoader()
	}
	music := gs.variant.MusicSettings()
	if gs.music == nil {
		gs.music = systems.NewMusicSource(music.Source)
	}
	gs.ctx, gs.cancel = context.WithCancel(context.Background())

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateRouter)
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateTextures)
	ecs.AddSystem(systems.UpdateOverrides)
	ecs.AddSystem(systems.UpdateSprings)
	ecs.AddSystem(systems.UpdateFlame)
	ecs.AddSystem(systems.UpdateSparks)
	ecs.AddSystem(systems.UpdateTweens)
	ecs.AddSystem(systems.UpdateEffects)

	ecs.AddRenderer(cfg.Default, systems.DrawScene)
	ecs.AddRenderer(cfg.Default, systems.DrawGateShade)
	ecs.AddRenderer(cfg.Default, systems.DrawHint)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	gs.ecs = ecs

	buildTable(gs.ctx, ecs, layout, gs.variant, gs.textures)

	gs.keyboard = systems.SubscribeKeyboard(ecs)
	if audio := systems.GetAudio(ecs); audio != nil {
		systems.LoadMusic(gs.ctx, audio, gs.music)
	}

	gs.hud = ui.NewHUD(ecs)
	log.Printf("[Scene] Greeting configured (variant %s)", gs.variant.Name)
}

// buildTable spawns every entity of the greeting and starts the image loads.
// With the picker enabled, saved overrides win over the configured images.
func buildTable(ctx context.Context, ecs *ecs.ECS, layout *assets.SceneLayout, variant *cfg.Variant, textures components.TextureSource) {
	sceneEntry := factory.CreateScene(ctx, ecs, variant, textures)
	gateShown := components.Interaction.Get(sceneEntry).GateShown()

	factory.CreateSpace(ecs, layout.Width, layout.Height)
	for _, region := range layout.HitRegions {
		if _, err := factory.CreateHitRegion(ecs, region); err != nil {
			log.Printf("Warning: Skipping hit region: %v", err)
		}
	}

	factory.CreateSprings(ecs)
	factory.CreateBackdrop(ecs, variant)

	// validated by the layout loader
	cake, _ := layout.Prop("cake")
	card, _ := layout.Prop("card")
	knife, _ := layout.Prop("knife")
	factory.CreateCake(ecs, cake)
	factory.CreateCard(ecs, card)
	factory.CreateKnife(ecs, knife)

	frames := factory.CreateFrames(ecs, layout.Frames, variant.PhotoRefs())
	for i, frame := range frames {
		systems.StartFramePop(frame, float32(i)*cfg.Intro.FramePopStagger)
	}
	if variant.Backdrop == cfg.BackdropSkyline {
		factory.CreateSkyline(ecs, variant.SkylineRef())
	}

	factory.CreateGateOverlay(ecs, gateShown)
	factory.CreateAudio(ecs, variant.MusicSettings())
	factory.CreateOverride(ecs, variant.OverridePicker)

	saved := map[string]string{}
	if variant.OverridePicker {
		saved = systems.LoadOverrides()
	}
	components.Texture.Each(ecs.World, func(e *donburi.Entry) {
		tex := components.Texture.Get(e)
		ref := tex.Default
		if s, ok := saved[tex.Slot]; ok {
			ref = s
		}
		systems.RequestTexture(ctx, textures, tex, ref)
	})
}
