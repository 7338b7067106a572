package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the settings that can be overridden from the environment
type Env struct {
	Variant    string `env:"CAKEDAY_VARIANT"     envDefault:"skyline"`
	Debug      bool   `env:"CAKEDAY_DEBUG"`
	SkipGate   bool   `env:"CAKEDAY_SKIP_GATE"`
	StartMuted bool   `env:"CAKEDAY_START_MUTED" envDefault:"true"`
}

// ParseEnv loads Env from environment variables
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Apply copies the environment overrides into the global config
func (e Env) Apply() {
	Debug.Overlay = e.Debug
	Debug.SkipGate = e.SkipGate
	Music.StartMuted = e.StartMuted
}
