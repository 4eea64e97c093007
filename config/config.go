package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer all entities and renderers live on.
const Default = ecs.LayerDefault

// PhysicsConfig contains the simulation constants. The physics package
// receives these through a Params value built in factory.CreateSpace, so
// the live stepper and the trajectory preview always share one source.
type PhysicsConfig struct {
	Gravity      float64 // px/s^2, positive is down (screen coordinates)
	Damping      float64 // velocity retained per tick
	TimeStep     float64 // seconds per tick
	SubSteps     int     // collision resolution passes per tick
	SleepSpeedSq float64 // squared speed under which a body drifts toward sleep
	SleepDelay   float64 // seconds below the threshold before sleeping
}

// SlingshotConfig contains launch tuning values.
type SlingshotConfig struct {
	MaxDrag     float64 // maximum drag distance in pixels
	LaunchPower float64 // drag-to-velocity multiplier
}

// BirdConfig contains projectile tuning values.
type BirdConfig struct {
	Radius          float64
	Mass            float64
	Restitution     float64
	Health          float64
	DamageThreshold float64
	LandedLifespan  int // ticks a landed bird stays before despawning
	QueueSpacing    float64
	Color           color.RGBA
}

// MaterialConfig describes one destructible block material.
type MaterialConfig struct {
	Name            string
	Density         float64 // mass per 1000 px^2 of block area
	Restitution     float64
	Health          float64
	DamageThreshold float64
	Points          int
	Color           color.RGBA
	CrackedColor    color.RGBA
}

// EnemyConfig contains enemy tuning values.
type EnemyConfig struct {
	Radius          float64
	Mass            float64
	Restitution     float64
	Health          float64
	DamageThreshold float64
	Points          int
	Color           color.RGBA
}

// ScoreConfig contains scoring values not tied to a single entity kind.
type ScoreConfig struct {
	UnusedBirdBonus int
}

// CameraConfig contains camera behavior configuration.
type CameraConfig struct {
	FollowSmoothing float64 // how fast the camera chases its target (0..1)
	IntroPanTime    float32 // seconds for the structure-to-slingshot pan
	IntroPanHold    float32 // seconds held on the structure before panning
}

// ScreenShakeConfig contains screen shake effect configuration.
type ScreenShakeConfig struct {
	BlockIntensity float64 // pixels
	BlockDuration  int     // frames
	EnemyIntensity float64
	EnemyDuration  int
}

// TrajectoryConfig contains aim preview configuration.
type TrajectoryConfig struct {
	MaxSteps   int // prediction length in ticks
	DotSpacing int // draw every nth predicted point
	DotRadius  float64
	Color      color.RGBA
}

// PopupConfig contains score popup configuration.
type PopupConfig struct {
	RiseDistance float32 // pixels risen over the popup's life
	Duration     float32 // seconds
	Color        color.RGBA
}

// HUDConfig contains in-game overlay configuration.
type HUDConfig struct {
	Margin    float64
	TextColor color.RGBA
	HintColor color.RGBA
}

// PauseConfig contains pause overlay configuration.
type PauseConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	TitleY       float64
	HintY        float64
}

// ResultConfig contains the victory/defeat overlay configuration.
type ResultConfig struct {
	OverlayColor color.RGBA
	VictoryColor color.RGBA
	DefeatColor  color.RGBA
	TextColor    color.RGBA
	TitleY       float64
	ScoreY       float64
	HintY        float64
}

// MenuConfig contains main menu configuration.
type MenuConfig struct {
	BackgroundColor color.RGBA
	Title           string
}

// DebugConfig contains debug/testing options.
type DebugConfig struct {
	Enabled  bool // start with the debug overlay on
	SkipMenu bool // skip the menu and load the first level
}

// Config holds general game configuration.
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Slingshot SlingshotConfig
var Bird BirdConfig
var Materials map[string]MaterialConfig
var Enemy EnemyConfig
var Score ScoreConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var Trajectory TrajectoryConfig
var Popup PopupConfig
var HUD HUDConfig
var Pause PauseConfig
var Result ResultConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 220, G: 50, B: 40, A: 255}
	Green        = color.RGBA{R: 80, G: 170, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	SkyBlue      = color.RGBA{R: 140, G: 190, B: 235, A: 255}
	GroundBrown  = color.RGBA{R: 110, G: 80, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Physics = PhysicsConfig{
		Gravity:      980.0,
		Damping:      0.995,
		TimeStep:     1.0 / 60.0,
		SubSteps:     8,
		SleepSpeedSq: 4.0,
		SleepDelay:   0.5,
	}

	Slingshot = SlingshotConfig{
		MaxDrag:     120.0,
		LaunchPower: 9.0,
	}

	Bird = BirdConfig{
		Radius:          14.0,
		Mass:            2.0,
		Restitution:     0.35,
		Health:          0, // indestructible, despawns by lifespan
		DamageThreshold: 0,
		LandedLifespan:  90,
		QueueSpacing:    36.0,
		Color:           Red,
	}

	Materials = map[string]MaterialConfig{
		"wood": {
			Name:            "wood",
			Density:         0.6,
			Restitution:     0.25,
			Health:          60,
			DamageThreshold: 120,
			Points:          500,
			Color:           color.RGBA{R: 170, G: 120, B: 60, A: 255},
			CrackedColor:    color.RGBA{R: 120, G: 85, B: 40, A: 255},
		},
		"stone": {
			Name:            "stone",
			Density:         1.4,
			Restitution:     0.1,
			Health:          150,
			DamageThreshold: 260,
			Points:          800,
			Color:           color.RGBA{R: 140, G: 140, B: 145, A: 255},
			CrackedColor:    color.RGBA{R: 95, G: 95, B: 100, A: 255},
		},
		"ice": {
			Name:            "ice",
			Density:         0.4,
			Restitution:     0.05,
			Health:          25,
			DamageThreshold: 70,
			Points:          300,
			Color:           color.RGBA{R: 170, G: 220, B: 245, A: 255},
			CrackedColor:    color.RGBA{R: 130, G: 180, B: 215, A: 255},
		},
	}

	Enemy = EnemyConfig{
		Radius:          13.0,
		Mass:            1.0,
		Restitution:     0.3,
		Health:          10,
		DamageThreshold: 60,
		Points:          5000,
		Color:           Green,
	}

	Score = ScoreConfig{
		UnusedBirdBonus: 10000,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		IntroPanTime:    1.6,
		IntroPanHold:    0.7,
	}

	ScreenShake = ScreenShakeConfig{
		BlockIntensity: 3.0,
		BlockDuration:  8,
		EnemyIntensity: 5.0,
		EnemyDuration:  12,
	}

	Trajectory = TrajectoryConfig{
		MaxSteps:   90,
		DotSpacing: 4,
		DotRadius:  3.0,
		Color:      color.RGBA{R: 255, G: 255, B: 255, A: 160},
	}

	Popup = PopupConfig{
		RiseDistance: 40.0,
		Duration:     1.2,
		Color:        Yellow,
	}

	HUD = HUDConfig{
		Margin:    12.0,
		TextColor: White,
		HintColor: color.RGBA{R: 255, G: 255, B: 255, A: 140},
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   BrightOrange,
		TextColor:    White,
		TitleY:       260,
		HintY:        340,
	}

	Result = ResultConfig{
		OverlayColor: BlackOverlay,
		VictoryColor: BrightGreen,
		DefeatColor:  LightRed,
		TextColor:    White,
		TitleY:       240,
		ScoreY:       320,
		HintY:        420,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 30, B: 55, A: 255},
		Title:           "SLINGSHOCK",
	}

	Debug = DebugConfig{
		Enabled:  false,
		SkipMenu: false,
	}
}
