// Package config provides YAML-based game configuration loading,
// difficulty presets and validation for Leap of Faith.
package config

// LeapConfig contains all configuration for Leap of Faith.
// Distances are in terminal cells, speeds in cells per tick,
// periods in milliseconds.
type LeapConfig struct {
	Field    LeapField    `yaml:"field"`
	Physics  LeapPhysics  `yaml:"physics"`
	Hero     LeapHero     `yaml:"hero"`
	Terrain  LeapTerrain  `yaml:"terrain"`
	Timing   LeapTiming   `yaml:"timing"`
	Backdrop LeapBackdrop `yaml:"backdrop"`
	Progress LeapProgress `yaml:"progress"`
}

// LeapField defines the shaft the hero falls through.
type LeapField struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"` // Shaft height, one floor per screenful
	WallWidth     int `yaml:"wall_width"`
	WallHeight    int `yaml:"wall_height"`    // Wall tile height, backdrop wrap period
	CeilingMargin int `yaml:"ceiling_margin"` // Rows occupied by the saw blades
}

// LeapPhysics defines per-tick movement.
type LeapPhysics struct {
	TerrainSpeed       float64 `yaml:"terrain_speed"`
	FallSpeed          float64 `yaml:"fall_speed"`
	MovingSpeed        float64 `yaml:"moving_speed"`
	ConveyorSpeed      float64 `yaml:"conveyor_speed"`
	CollisionThreshold float64 `yaml:"collision_threshold"`
}

// LeapHero defines the hero body and health.
type LeapHero struct {
	Width              int     `yaml:"width"`
	Height             int     `yaml:"height"`
	StartX             float64 `yaml:"start_x"` // Centre x of the appear position
	StartY             float64 `yaml:"start_y"` // Bottom y of the appear position
	MaxHealth          int     `yaml:"max_health"`
	AnimationIncrement float64 `yaml:"animation_increment"`
}

// LeapTerrain defines terrain tiles and their spawn weights.
// Kinds and Weights are parallel lists.
type LeapTerrain struct {
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Kinds   []string `yaml:"kinds"`
	Weights []int    `yaml:"weights"`
}

// LeapTiming defines timer periods.
type LeapTiming struct {
	SpawnPeriodMS int `yaml:"spawn_period_ms"`
	BreakDelayMS  int `yaml:"break_delay_ms"`
	DeathDelayMS  int `yaml:"death_delay_ms"`
}

// LeapBackdrop defines the scrolling wall and saw decoration.
type LeapBackdrop struct {
	SawSpeed int `yaml:"saw_speed"` // Ticks per saw animation frame
}

// LeapProgress defines the floor counter.
type LeapProgress struct {
	TopLevel int `yaml:"top_level"`
}

// Terrain kind names accepted in LeapTerrain.Kinds.
const (
	KindCommon        = "common"
	KindSpike         = "spike"
	KindHeal          = "heal"
	KindEmpty         = "empty"
	KindConveyorLeft  = "conveyor_left"
	KindConveyorRight = "conveyor_right"
)

// knownKinds is the closed set of terrain kinds.
var knownKinds = map[string]bool{
	KindCommon:        true,
	KindSpike:         true,
	KindHeal:          true,
	KindEmpty:         true,
	KindConveyorLeft:  true,
	KindConveyorRight: true,
}

// SpawnBounds returns the range of terrain centre x positions that keep a
// freshly spawned tile inside the shaft.
func (c LeapConfig) SpawnBounds() (left, right float64) {
	half := float64(c.Terrain.Width) / 2
	left = float64(c.Field.WallWidth) + half
	right = float64(c.Field.Width-c.Field.WallWidth) - half
	return left, right
}

// Weight returns the configured spawn weight of a kind, 0 when absent.
func (c LeapConfig) Weight(kind string) int {
	for i, k := range c.Terrain.Kinds {
		if k == kind && i < len(c.Terrain.Weights) {
			return c.Terrain.Weights[i]
		}
	}
	return 0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Empty means "use the config".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	case "":
		return "", true
	default:
		return "", false
	}
}

// Ticks converts a period in milliseconds into a whole number of ticks at
// the given tick rate, rounding up. Never returns less than 1.
func Ticks(ms, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	n := (ms*tickRate + 999) / 1000
	if n < 1 {
		return 1
	}
	return n
}
