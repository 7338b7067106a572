package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Backdrop selects what is drawn behind the table
type Backdrop string

const (
	BackdropFlat    Backdrop = "flat"
	BackdropSkyline Backdrop = "skyline"
)

// Cloth selects the table covering
type Cloth string

const (
	ClothNone    Cloth = "none"
	ClothChecker Cloth = "checker"
)

// Lighting selects the colour grade applied to the scene
type Lighting string

const (
	LightingCool Lighting = "cool"
	LightingWarm Lighting = "warm"
)

// ErrUnknownVariant is returned when a variant name is neither a preset nor a readable file
var ErrUnknownVariant = errors.New("unknown variant")

// Variant enumerates the cosmetic differences between greeting pages.
// Everything else about the scene is shared.
type Variant struct {
	Name             string      `yaml:"name"`
	Backdrop         Backdrop    `yaml:"backdrop"`
	Cloth            Cloth       `yaml:"cloth"`
	Lighting         Lighting    `yaml:"lighting"`
	OverridePicker   bool        `yaml:"overridePicker"`
	PhotoSource      PhotoSource `yaml:"photoSource"`
	Skyline          string      `yaml:"skyline"`          // optional, replaces Assets.Skyline
	Photos           []string    `yaml:"photos"`           // optional, replaces the photo set
	MusicSource      string      `yaml:"musicSource"`      // optional, replaces Music.Source
	MusicStartOffset *float64    `yaml:"musicStartOffset"` // optional, seconds
}

// Presets are the built-in variants
var Presets = map[string]Variant{
	"classic": {
		Name:        "classic",
		Backdrop:    BackdropFlat,
		Cloth:       ClothChecker,
		Lighting:    LightingWarm,
		PhotoSource: PhotoSourceEmbedded,
	},
	"skyline": {
		Name:        "skyline",
		Backdrop:    BackdropSkyline,
		Cloth:       ClothNone,
		Lighting:    LightingCool,
		PhotoSource: PhotoSourceEmbedded,
	},
	"picker": {
		Name:           "picker",
		Backdrop:       BackdropSkyline,
		Cloth:          ClothNone,
		Lighting:       LightingCool,
		OverridePicker: true,
		PhotoSource:    PhotoSourceEmbedded,
	},
	"warm": {
		Name:        "warm",
		Backdrop:    BackdropSkyline,
		Cloth:       ClothChecker,
		Lighting:    LightingWarm,
		PhotoSource: PhotoSourceEmbedded,
	},
}

// DefaultVariant is used when nothing is configured
const DefaultVariant = "skyline"

// ResolveVariant returns a preset by name, or loads nameOrPath as a YAML file
func ResolveVariant(nameOrPath string) (*Variant, error) {
	if nameOrPath == "" {
		nameOrPath = DefaultVariant
	}
	if preset, ok := Presets[strings.ToLower(nameOrPath)]; ok {
		v := preset
		return &v, nil
	}
	if _, err := os.Stat(nameOrPath); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, nameOrPath)
	}
	return LoadVariant(nameOrPath)
}

// LoadVariant reads a variant from a YAML file
func LoadVariant(path string) (*Variant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read variant file %s: %w", path, err)
	}
	return ParseVariant(data)
}

// ParseVariant decodes, defaults and validates variant YAML
func ParseVariant(data []byte) (*Variant, error) {
	var v Variant
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse variant YAML: %w", err)
	}
	applyVariantDefaults(&v)
	if err := validateVariant(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

func applyVariantDefaults(v *Variant) {
	if v.Name == "" {
		v.Name = "custom"
	}
	if v.Backdrop == "" {
		v.Backdrop = BackdropSkyline
	}
	if v.Cloth == "" {
		v.Cloth = ClothNone
	}
	if v.Lighting == "" {
		v.Lighting = LightingCool
	}
	if v.PhotoSource == "" {
		v.PhotoSource = PhotoSourceEmbedded
	}
}

func validateVariant(v *Variant) error {
	switch v.Backdrop {
	case BackdropFlat, BackdropSkyline:
	default:
		return fmt.Errorf("invalid backdrop %q (want %q or %q)", v.Backdrop, BackdropFlat, BackdropSkyline)
	}
	switch v.Cloth {
	case ClothNone, ClothChecker:
	default:
		return fmt.Errorf("invalid cloth %q (want %q or %q)", v.Cloth, ClothNone, ClothChecker)
	}
	switch v.Lighting {
	case LightingCool, LightingWarm:
	default:
		return fmt.Errorf("invalid lighting %q (want %q or %q)", v.Lighting, LightingCool, LightingWarm)
	}
	switch v.PhotoSource {
	case PhotoSourceEmbedded, PhotoSourceRemote:
	default:
		return fmt.Errorf("invalid photoSource %q", v.PhotoSource)
	}
	if len(v.Photos) > len(Assets.PhotoSlots) {
		return fmt.Errorf("too many photos: %d (max %d)", len(v.Photos), len(Assets.PhotoSlots))
	}
	if v.MusicStartOffset != nil && *v.MusicStartOffset < 0 {
		return fmt.Errorf("musicStartOffset must not be negative, got %v", *v.MusicStartOffset)
	}
	return nil
}

// PhotoRefs returns the photo reference for every slot
func (v *Variant) PhotoRefs() []string {
	refs := append([]string{}, Assets.Photos(v.PhotoSource)...)
	for i, p := range v.Photos {
		if p != "" {
			refs[i] = p
		}
	}
	return refs
}

// SkylineRef returns the skyline reference for this variant
func (v *Variant) SkylineRef() string {
	if v.Skyline != "" {
		return v.Skyline
	}
	return Assets.Skyline
}

// MusicSettings returns Music with this variant's overrides applied
func (v *Variant) MusicSettings() MusicConfig {
	m := Music
	if v.MusicSource != "" {
		m.Source = v.MusicSource
	}
	if v.MusicStartOffset != nil {
		m.StartOffsetSeconds = *v.MusicStartOffset
	}
	return m
}

// Grade returns the RGB multipliers for the lighting preset
func (l Lighting) Grade() (r, g, b float32) {
	if l == LightingWarm {
		return 1.05, 0.97, 0.86
	}
	return 0.94, 0.98, 1.06
}
