package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the resolv space holding every pointer hit region
var Space = donburi.NewComponentType[resolv.Space]()

// HitTarget names what a hit region toggles
type HitTarget int

const (
	HitNone HitTarget = iota
	HitCandle
	HitCake
	HitCard
)

func (h HitTarget) String() string {
	switch h {
	case HitCandle:
		return "candle"
	case HitCake:
		return "cake"
	case HitCard:
		return "card"
	}
	return "none"
}

// HitTargetFromName maps a layout object name to its target
func HitTargetFromName(name string) HitTarget {
	switch name {
	case "candle":
		return HitCandle
	case "cake":
		return HitCake
	case "card":
		return HitCard
	}
	return HitNone
}

// HitRegionData describes a clickable screen rectangle.
// When regions overlap the higher Priority wins.
type HitRegionData struct {
	Target   HitTarget
	Priority int
}

var HitRegion = donburi.NewComponentType[HitRegionData]()
