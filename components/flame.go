package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// FlameData is the candle flame's per-frame transform (scene units)
type FlameData struct {
	Scale   float64
	ScaleY  float64
	SwayX   float64
	Visible bool
}

var Flame = donburi.NewComponentType[FlameData]()

// Particle is one spark, positioned relative to the candle tip
type Particle struct {
	X, Y, Z float64
}

// SparkEmitterData owns the spark particles and their random source
type SparkEmitterData struct {
	Particles []Particle
	Rand      *rand.Rand
	Visible   bool
}

var SparkEmitter = donburi.NewComponentType[SparkEmitterData]()
