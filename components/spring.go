package components

import "github.com/yohamta/donburi"

// SpringChannel identifies one animated scalar
type SpringChannel int

const (
	SpringSliceOffset SpringChannel = iota
	SpringTopTierY
	SpringCardHinge
	SpringKnifeX
	SpringKnifeAngle
	SpringChannelCount // Must be last
)

var springChannelNames = [SpringChannelCount]string{
	"slice-offset",
	"top-tier-y",
	"card-hinge",
	"knife-x",
	"knife-angle",
}

func (c SpringChannel) String() string {
	if c < 0 || c >= SpringChannelCount {
		return "unknown"
	}
	return springChannelNames[c]
}

// SpringData is a damped spring chasing Target.
// Initialized is false until the first tick snaps Current to Target.
type SpringData struct {
	Channel     SpringChannel
	Target      float64
	Current     float64
	Velocity    float64
	Stiffness   float64
	Damping     float64
	Mass        float64
	Initialized bool
}

var Spring = donburi.NewComponentType[SpringData]()
