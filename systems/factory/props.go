package factory

import (
	"github.com/automoto/cakeday/archetypes"
	"github.com/automoto/cakeday/assets"
	"github.com/automoto/cakeday/components"
	cfg "github.com/automoto/cakeday/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCake places the cake, its candle flame and the spark emitter
func CreateCake(ecs *ecs.ECS, spawn assets.PropSpawn) *donburi.Entry {
	cake := archetypes.Cake.Spawn(ecs)
	components.Prop.SetValue(cake, components.PropData{Kind: components.PropCake, X: spawn.X, Y: spawn.Y})
	components.Flame.SetValue(cake, components.FlameData{})
	components.SparkEmitter.SetValue(cake, components.SparkEmitterData{})
	return cake
}

func CreateCard(ecs *ecs.ECS, spawn assets.PropSpawn) *donburi.Entry {
	card := archetypes.Card.Spawn(ecs)
	components.Prop.SetValue(card, components.PropData{Kind: components.PropCard, X: spawn.X, Y: spawn.Y})
	components.Card.SetValue(card, components.CardData{
		Title:   cfg.Card.Title,
		Message: cfg.Card.Message,
		Sign:    cfg.Card.Sign,
	})
	return card
}

func CreateKnife(ecs *ecs.ECS, spawn assets.PropSpawn) *donburi.Entry {
	knife := archetypes.Knife.Spawn(ecs)
	components.Prop.SetValue(knife, components.PropData{Kind: components.PropKnife, X: spawn.X, Y: spawn.Y})
	return knife
}
