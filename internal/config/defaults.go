package config

import (
	_ "embed"
)

//go:embed defaults/leap.yaml
var defaultLeapYAML []byte

// DefaultLeapConfig returns the default Leap of Faith configuration.
// Kept in sync with defaults/leap.yaml.
func DefaultLeapConfig() LeapConfig {
	return LeapConfig{
		Field: LeapField{
			Width:         64,
			Height:        24,
			WallWidth:     2,
			WallHeight:    4,
			CeilingMargin: 1,
		},
		Physics: LeapPhysics{
			TerrainSpeed:       0.0625,
			FallSpeed:          0.1875,
			MovingSpeed:        0.5,
			ConveyorSpeed:      0.125,
			CollisionThreshold: 0.5,
		},
		Hero: LeapHero{
			Width:              3,
			Height:             2,
			StartX:             32,
			StartY:             16,
			MaxHealth:          3,
			AnimationIncrement: 0.2,
		},
		Terrain: LeapTerrain{
			Width:   12,
			Height:  1,
			Kinds:   []string{KindCommon, KindSpike, KindHeal, KindEmpty, KindConveyorLeft, KindConveyorRight},
			Weights: []int{40, 20, 10, 10, 10, 10},
		},
		Timing: LeapTiming{
			SpawnPeriodMS: 1000,
			BreakDelayMS:  1000,
			DeathDelayMS:  3000,
		},
		Backdrop: LeapBackdrop{
			SawSpeed: 3,
		},
		Progress: LeapProgress{
			TopLevel: 100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultLeapYAML
}
