package factory

import (
	"github.com/automoto/cakeday/archetypes"
	"github.com/automoto/cakeday/components"
	cfg "github.com/automoto/cakeday/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSprings spawns one spring per animated channel, all sharing the configured tuning
func CreateSprings(ecs *ecs.ECS) []*donburi.Entry {
	springs := make([]*donburi.Entry, 0, components.SpringChannelCount)
	for ch := components.SpringChannel(0); ch < components.SpringChannelCount; ch++ {
		e := archetypes.Spring.Spawn(ecs)
		components.Spring.SetValue(e, components.SpringData{
			Channel:   ch,
			Stiffness: cfg.Spring.Stiffness,
			Damping:   cfg.Spring.Damping,
			Mass:      cfg.Spring.Mass,
		})
		springs = append(springs, e)
	}
	return springs
}
