package config

import (
	"strings"
	"testing"
)

func TestParseEnvDefaults(t *testing.T) {
	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if e.Variant != "skyline" {
		t.Errorf("Variant = %q, want skyline", e.Variant)
	}
	if e.Debug || e.SkipGate {
		t.Errorf("expected debug switches off, got %+v", e)
	}
	if !e.StartMuted {
		t.Error("expected StartMuted default true")
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("CAKEDAY_VARIANT", "classic")
	t.Setenv("CAKEDAY_DEBUG", "true")
	t.Setenv("CAKEDAY_SKIP_GATE", "1")
	t.Setenv("CAKEDAY_START_MUTED", "false")

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if e.Variant != "classic" || !e.Debug || !e.SkipGate || e.StartMuted {
		t.Errorf("unexpected env: %+v", e)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("CAKEDAY_DEBUG", "not-a-bool")

	_, err := ParseEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestEnvApply(t *testing.T) {
	prevDebug, prevMusic := Debug, Music
	t.Cleanup(func() {
		Debug, Music = prevDebug, prevMusic
	})

	Env{Debug: true, SkipGate: true, StartMuted: false}.Apply()

	if !Debug.Overlay || !Debug.SkipGate {
		t.Errorf("Debug not applied: %+v", Debug)
	}
	if Music.StartMuted {
		t.Error("Music.StartMuted should be false")
	}
}
