package factory

import (
	"fmt"

	"github.com/automoto/cakeday/archetypes"
	"github.com/automoto/cakeday/assets"
	"github.com/automoto/cakeday/components"
	"github.com/automoto/cakeday/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHitRegion adds a clickable rectangle to the hit space.
// The region's name picks the toggle it flips.
func CreateHitRegion(ecs *ecs.ECS, spawn assets.HitRegionSpawn) (*donburi.Entry, error) {
	target := components.HitTargetFromName(spawn.Name)
	if target == components.HitNone {
		return nil, fmt.Errorf("unknown hit region %q", spawn.Name)
	}

	region := archetypes.HitRegion.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, spawn.W, spawn.H, tags.ResolvHitRegion)
	obj.SetShape(resolv.NewRectangle(0, 0, spawn.W, spawn.H))
	obj.Data = region // Link for O(1) lookup

	components.Object.SetValue(region, components.ObjectData{Object: obj})
	components.HitRegion.SetValue(region, components.HitRegionData{
		Target:   target,
		Priority: spawn.Priority,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return region, nil
}
