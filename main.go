package main

import (
	"log"

	"github.com/automoto/cakeday/config"
	"github.com/automoto/cakeday/fonts"
	"github.com/automoto/cakeday/scenes"
	"github.com/automoto/cakeday/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Close()
}

type Game struct {
	scene Scene
}

func NewGame(variant *config.Variant) *Game {
	return &Game{
		scene: scenes.NewGreetingScene(variant),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	env, err := config.ParseEnv()
	if err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}
	env.Apply()

	variant, err := config.ResolveVariant(env.Variant)
	if err != nil {
		log.Fatalf("Failed to load variant: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Overrides are optional; without a store they simply aren't remembered
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	game := NewGame(variant)
	defer game.scene.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
