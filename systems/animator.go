package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/automoto/cakeday/components"
	cfg "github.com/automoto/cakeday/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpringTarget is the rest value of a channel for the current toggles
func SpringTarget(ch components.SpringChannel, state *components.InteractionData) float64 {
	switch ch {
	case components.SpringSliceOffset:
		if state.CakeCut() {
			return cfg.Cake.SliceOffsetCut
		}
		return 0
	case components.SpringTopTierY:
		if state.CakeCut() {
			return cfg.Cake.TopYCut
		}
		return cfg.Cake.TopYWhole
	case components.SpringCardHinge:
		if state.CardOpen() {
			return cfg.Card.HingeOpen
		}
		return cfg.Card.HingeClosed
	case components.SpringKnifeX:
		if state.CakeCut() {
			return cfg.Knife.XCut
		}
		return cfg.Knife.XIdle
	case components.SpringKnifeAngle:
		if state.CakeCut() {
			return cfg.Knife.AngleCut
		}
		return cfg.Knife.AngleIdle
	}
	return 0
}

// StepSpring advances a damped spring by dt with semi-implicit Euler
func StepSpring(s *components.SpringData, dt float64) {
	accel := (-s.Stiffness*(s.Current-s.Target) - s.Damping*s.Velocity) / s.Mass
	s.Velocity += accel * dt
	s.Current += s.Velocity * dt
}

// UpdateSprings retargets every spring from its toggle and advances it one tick.
// A spring snaps to its target on its first tick only.
func UpdateSprings(ecs *ecs.ECS) {
	state := GetInteraction(ecs)
	if state == nil {
		return
	}

	substeps := cfg.Spring.Substeps
	if substeps < 1 {
		substeps = 1
	}
	dt := tickSeconds() / float64(substeps)

	components.Spring.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Spring.Get(e)
		s.Target = SpringTarget(s.Channel, state)

		if !s.Initialized {
			s.Current = s.Target
			s.Velocity = 0
			s.Initialized = true
			return
		}
		for i := 0; i < substeps; i++ {
			StepSpring(s, dt)
		}
	})
}

// SpringValue returns the published value of a channel (0 if absent)
func SpringValue(w donburi.World, ch components.SpringChannel) float64 {
	var v float64
	components.Spring.Each(w, func(e *donburi.Entry) {
		if s := components.Spring.Get(e); s.Channel == ch {
			v = s.Current
		}
	})
	return v
}

// UpdateFlame recomputes the flame flicker. A blown candle has no flame.
func UpdateFlame(ecs *ecs.ECS) {
	state := GetInteraction(ecs)
	scene := GetScene(ecs)
	if state == nil || scene == nil {
		return
	}
	blown := state.CandleBlown()
	t := scene.Elapsed

	components.Flame.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Flame.Get(e)
		if blown {
			*f = components.FlameData{}
			return
		}
		s := cfg.Flame.BaseScale + math.Sin(t*cfg.Flame.Frequency)*cfg.Flame.Amplitude
		f.Scale = s
		f.ScaleY = s * cfg.Flame.AspectY
		f.SwayX = math.Sin(t*cfg.Flame.SwayFrequency) * cfg.Flame.SwayAmplitude
		f.Visible = true
	})
}

// NewSparkRand returns the spark random source; seed 0 seeds from the clock
func NewSparkRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// SpawnSparks places n particles just above the candle tip
func SpawnSparks(r *rand.Rand, n int) []components.Particle {
	ps := make([]components.Particle, n)
	for i := range ps {
		ps[i] = components.Particle{
			X: (r.Float64() - 0.5) * cfg.Spark.SpreadXZ,
			Y: r.Float64()*cfg.Spark.SpawnYRange + cfg.Spark.SpawnYMin,
			Z: (r.Float64() - 0.5) * cfg.Spark.SpreadXZ,
		}
	}
	return ps
}

// StepSparks lifts every particle and recycles the ones past the upper bound
func StepSparks(ps []components.Particle, r *rand.Rand) {
	for i := range ps {
		p := &ps[i]
		p.Y += cfg.Spark.Rise + r.Float64()*cfg.Spark.RiseJitter
		if p.Y > cfg.Spark.UpperBound {
			p.Y = cfg.Spark.ResetBase - r.Float64()*cfg.Spark.ResetJitter
		}
	}
}

// UpdateSparks advances the spark particles while the candle is lit
func UpdateSparks(ecs *ecs.ECS) {
	state := GetInteraction(ecs)
	if state == nil {
		return
	}
	blown := state.CandleBlown()

	components.SparkEmitter.Each(ecs.World, func(e *donburi.Entry) {
		em := components.SparkEmitter.Get(e)
		em.Visible = !blown
		if blown {
			return
		}
		if em.Rand == nil {
			em.Rand = NewSparkRand(cfg.Spark.Seed)
		}
		if len(em.Particles) == 0 {
			em.Particles = SpawnSparks(em.Rand, cfg.Spark.Count)
		}
		StepSparks(em.Particles, em.Rand)
	})
}
