package config

import (
	"image/color"
	"math"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the greeting uses
const Default ecs.LayerID = 0

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// SpringConfig holds the damped-spring tuning shared by every spring channel
type SpringConfig struct {
	Mass      float64
	Stiffness float64 // "tension"
	Damping   float64 // "friction"
	Substeps  int     // integration substeps per tick
}

// CakeConfig contains cake geometry and the cut displacement targets (scene units)
type CakeConfig struct {
	Radius          float64
	LowerHeight     float64
	TopRadius       float64
	TopHeight       float64
	TopYWhole       float64 // top tier lift when whole
	TopYCut         float64 // top tier lift when cut
	SliceOffsetCut  float64 // slice slide-out when cut
	SliceAngle      float64 // wedge width in radians
	CandleHeight    float64
	CandleRadius    float64
	PlateRadius     float64
	SwirlCount      int
	SquashOnPress   float64
	SquashLerpSpeed float64
}

// KnifeConfig holds the knife swoop targets
type KnifeConfig struct {
	Height     float64
	Depth      float64
	XIdle      float64
	XCut       float64
	AngleIdle  float64
	AngleCut   float64
	BladeLen   float64
	HandleLen  float64
	BladeWidth float64
}

// CardConfig holds the card hinge targets and copy
type CardConfig struct {
	Width         float64 // on-screen pixels when upright
	TextureWidth  int     // card artwork is drawn at this size and scaled down
	TextureHeight int     // minimum; grows to fit the message
	HingeOpen     float64 // radians; 0 is upright
	HingeClosed   float64
	Title         string
	Message       string
	Sign          string
}

// FlameConfig drives the candle flicker
type FlameConfig struct {
	BaseScale      float64
	Amplitude      float64
	Frequency      float64
	AspectY        float64
	SwayAmplitude  float64
	SwayFrequency  float64
	OffsetAboveTip float64
}

// SparkConfig drives the candle spark particles
type SparkConfig struct {
	Count       int
	SpreadXZ    float64
	SpawnYMin   float64
	SpawnYRange float64
	Rise        float64
	RiseJitter  float64
	UpperBound  float64
	ResetBase   float64
	ResetJitter float64
	OffsetAbove float64
	Size        float32
	Seed        int64 // 0 seeds from the clock
}

// IntroConfig holds the tween timings used on mount and on gate dismiss
type IntroConfig struct {
	FramePopDuration float32
	FramePopStagger  float32
	GateFadeDuration float32
}

// SceneConfig holds the 2D projection of the table scene
type SceneConfig struct {
	PixelsPerUnit float64
	HorizonY      float64
	DepthFactor   float64 // screen px per unit of depth, as fraction of PixelsPerUnit
	LayoutPath    string

	Colors SceneColors
}

// SceneColors is the palette for the procedural props
type SceneColors struct {
	Sky        color.RGBA
	TableTop   color.RGBA
	TableEdge  color.RGBA
	ClothA     color.RGBA
	ClothB     color.RGBA
	Plate      color.RGBA
	Sponge     color.RGBA
	Icing      color.RGBA
	Drizzle    color.RGBA
	Swirl      color.RGBA
	Strawberry color.RGBA
	Biscuit    color.RGBA
	Candle     color.RGBA
	Wick       color.RGBA
	Spark      color.RGBA
	FrameWood  color.RGBA
	FrameMat   color.RGBA
	Blade      color.RGBA
	Handle     color.RGBA
	CardPaper  color.RGBA
	CardBoard  color.RGBA
	CardInk    color.RGBA
	Hint       color.RGBA
	GateShade  color.RGBA
}

// UIConfig contains HUD colours and layout
type UIConfig struct {
	ButtonIdle     color.RGBA
	ButtonHover    color.RGBA
	ButtonPressed  color.RGBA
	StartIdle      color.RGBA
	StartHover     color.RGBA
	StartPressed   color.RGBA
	PanelColor     color.RGBA
	TextColor      color.RGBA
	HintText       string
	GateTitle      string
	GateBody       string
	ButtonMinWidth int
}

// DebugConfig contains debug switches (overridden by environment)
type DebugConfig struct {
	Overlay  bool // draw hit regions and spring values
	SkipGate bool // start with the gate dismissed
}

// Global configuration instances
var C *Config
var Spring SpringConfig
var Cake CakeConfig
var Knife KnifeConfig
var Card CardConfig
var Flame FlameConfig
var Spark SparkConfig
var Intro IntroConfig
var Scene SceneConfig
var UI UIConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
		Title:  "Happy Birthday",
	}

	Spring = SpringConfig{
		Mass:      1,
		Stiffness: 220,
		Damping:   18,
		Substeps:  4,
	}

	Cake = CakeConfig{
		Radius:          0.86,
		LowerHeight:     0.34,
		TopRadius:       0.75,
		TopHeight:       0.22,
		TopYWhole:       0.08,
		TopYCut:         0.02,
		SliceOffsetCut:  1.18,
		SliceAngle:      math.Pi / 5,
		CandleHeight:    0.55,
		CandleRadius:    0.06,
		PlateRadius:     1.25,
		SwirlCount:      12,
		SquashOnPress:   0.94,
		SquashLerpSpeed: 0.18,
	}

	Knife = KnifeConfig{
		Height:     0.82,
		Depth:      0.2,
		XIdle:      1.4,
		XCut:       0.9,
		AngleIdle:  -math.Pi / 12,
		AngleCut:   -math.Pi / 3,
		BladeLen:   0.9,
		HandleLen:  0.28,
		BladeWidth: 0.06,
	}

	Card = CardConfig{
		Width:         190,
		TextureWidth:  640,
		TextureHeight: 410,
		HingeOpen:     0,
		HingeClosed:   math.Pi / 2,
		Title:         "HAPPY BIRTHDAY HUNNY",
		Message: "This is just me being a part of your non-lowkey birthday this year hehe. " +
			"Thank you for being my exploring, bakchodi, music, deep talks and random walks partner. " +
			"Seeing you grow over this last one year has been truly gratifying. " +
			"Can't wait to see all the success, happiness and masti this next year brings. I miss you <3",
		Sign: "- love, Rabbo",
	}

	Flame = FlameConfig{
		BaseScale:      0.12,
		Amplitude:      0.015,
		Frequency:      12,
		AspectY:        1.6,
		SwayAmplitude:  0.01,
		SwayFrequency:  6,
		OffsetAboveTip: 0.08,
	}

	Spark = SparkConfig{
		Count:       120,
		SpreadXZ:    0.04,
		SpawnYMin:   -0.03,
		SpawnYRange: 0.12,
		Rise:        0.01,
		RiseJitter:  0.003,
		UpperBound:  0.18,
		ResetBase:   -0.02,
		ResetJitter: 0.03,
		OffsetAbove: 0.12,
		Size:        1.6,
	}

	Intro = IntroConfig{
		FramePopDuration: 0.45,
		FramePopStagger:  0.08,
		GateFadeDuration: 0.35,
	}

	Scene = SceneConfig{
		PixelsPerUnit: 130,
		HorizonY:      300,
		DepthFactor:   0.35,
		LayoutPath:    "layout/table.tmx",
		Colors: SceneColors{
			Sky:        color.RGBA{11, 11, 11, 255},
			TableTop:   color.RGBA{110, 74, 46, 255},
			TableEdge:  color.RGBA{90, 61, 38, 255},
			ClothA:     color.RGBA{196, 40, 52, 255},
			ClothB:     color.RGBA{245, 240, 232, 255},
			Plate:      color.RGBA{247, 247, 247, 255},
			Sponge:     color.RGBA{247, 197, 127, 255},
			Icing:      color.RGBA{255, 230, 230, 255},
			Drizzle:    color.RGBA{255, 97, 95, 255},
			Swirl:      color.RGBA{255, 255, 255, 255},
			Strawberry: color.RGBA{231, 76, 60, 255},
			Biscuit:    color.RGBA{139, 90, 43, 255},
			Candle:     color.RGBA{255, 244, 214, 255},
			Wick:       color.RGBA{34, 34, 34, 255},
			Spark:      color.RGBA{255, 204, 102, 255},
			FrameWood:  color.RGBA{180, 138, 100, 255},
			FrameMat:   color.RGBA{243, 239, 232, 255},
			Blade:      color.RGBA{204, 204, 204, 255},
			Handle:     color.RGBA{75, 46, 30, 255},
			CardPaper:  color.RGBA{255, 255, 255, 255},
			CardBoard:  color.RGBA{243, 239, 230, 255},
			CardInk:    color.RGBA{51, 51, 51, 255},
			Hint:       color.RGBA{255, 255, 255, 235},
			GateShade:  color.RGBA{0, 0, 0, 184},
		},
	}

	UI = UIConfig{
		ButtonIdle:     color.RGBA{255, 255, 255, 46},
		ButtonHover:    color.RGBA{255, 255, 255, 70},
		ButtonPressed:  color.RGBA{255, 255, 255, 30},
		StartIdle:      color.RGBA{58, 134, 255, 255},
		StartHover:     color.RGBA{88, 160, 255, 255},
		StartPressed:   color.RGBA{40, 100, 210, 255},
		PanelColor:     color.RGBA{17, 17, 17, 255},
		TextColor:      color.RGBA{238, 238, 238, 255},
		HintText:       "Press Space to blow candle - Click cake to cut - Click card to open/close",
		GateTitle:      "Ready?",
		GateBody:       "Tap Start to enable audio & begin the celebration.",
		ButtonMinWidth: 84,
	}

	Debug = DebugConfig{
		Overlay:  false,
		SkipGate: false,
	}
}
