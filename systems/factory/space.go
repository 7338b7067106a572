package factory

import (
	"github.com/automoto/cakeday/archetypes"
	"github.com/automoto/cakeday/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// hitCellSize is the resolv cell size for the pointer hit space
const hitCellSize = 16

func CreateSpace(ecs *ecs.ECS, width, height int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, hitCellSize, hitCellSize)
	components.Space.Set(space, spaceData)
	return space
}
