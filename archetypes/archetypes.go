package archetypes

import (
	"github.com/automoto/cakeday/components"
	cfg "github.com/automoto/cakeday/config"
	"github.com/automoto/cakeday/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Scene = newArchetype(
		components.Scene,
		components.Interaction,
		components.Input,
		components.Pointer,
	)
	Space = newArchetype(
		components.Space,
	)
	HitRegion = newArchetype(
		tags.HitRegion,
		components.HitRegion,
		components.Object,
	)
	Spring = newArchetype(
		components.Spring,
	)
	Backdrop = newArchetype(
		components.Backdrop,
	)
	Skyline = newArchetype(
		tags.Skyline,
		components.Texture,
	)
	Cake = newArchetype(
		tags.Cake,
		components.Prop,
		components.Flame,
		components.SparkEmitter,
	)
	Card = newArchetype(
		tags.Card,
		components.Prop,
		components.Card,
	)
	Knife = newArchetype(
		tags.Knife,
		components.Prop,
	)
	Frame = newArchetype(
		tags.Frame,
		components.Frame,
		components.Texture,
		components.Tween,
	)
	GateOverlay = newArchetype(
		tags.GateOverlay,
		components.Tween,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Override = newArchetype(
		components.Override,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
