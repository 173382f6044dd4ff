package leap

import (
	"fmt"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/leap-of-faith/internal/config"
	"github.com/vovakirdan/leap-of-faith/internal/core"
)

// TerrainKind is the closed set of tile types.
type TerrainKind int

const (
	KindCommon TerrainKind = iota
	KindSpike
	KindHeal
	KindEmpty // Breakable: destroyed a fixed delay after the hero lands on it
	KindConveyorLeft
	KindConveyorRight
	numKinds
)

var kindNames = [numKinds]string{
	KindCommon:        config.KindCommon,
	KindSpike:         config.KindSpike,
	KindHeal:          config.KindHeal,
	KindEmpty:         config.KindEmpty,
	KindConveyorLeft:  config.KindConveyorLeft,
	KindConveyorRight: config.KindConveyorRight,
}

// String returns the config name of the kind.
func (k TerrainKind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return kindNames[k]
}

// ParseTerrainKind maps a config name to a kind.
func ParseTerrainKind(s string) (TerrainKind, error) {
	for k, name := range kindNames {
		if name == s {
			return TerrainKind(k), nil
		}
	}
	return 0, fmt.Errorf("leap: unknown terrain kind %q", s)
}

// Push returns the conveyor direction of the kind: -1, +1, or 0.
func (k TerrainKind) Push() float64 {
	switch k {
	case KindConveyorLeft:
		return -1
	case KindConveyorRight:
		return 1
	default:
		return 0
	}
}

// resolv tags
const (
	tagTerrain = "terrain"
	tagHero    = "hero"
)

// Terrain is a single tile scrolling up the shaft.
type Terrain struct {
	ID   int         // Insertion order; collisions resolve in this order
	Kind TerrainKind // Immutable after creation
	X, Y float64     // Top-left corner
	W, H float64

	// One-shot latches, each flips at most once per tile.
	DamageDealt bool
	HealDealt   bool
	BreakArmed  bool
	ArmedAt     int // Tick the tile was armed at

	obj  *resolv.Object
	mask core.Mask
}

// Rect returns the tile bounds.
func (t *Terrain) Rect() core.RectF {
	return core.NewRectF(t.X, t.Y, t.W, t.H)
}

// Top returns the y of the walkable surface.
func (t *Terrain) Top() float64 {
	return t.Y
}

// moveTo repositions the tile and its broad-phase object.
func (t *Terrain) moveTo(x, y float64) {
	t.X, t.Y = x, y
	if t.obj != nil {
		t.obj.X, t.obj.Y = x, y
		t.obj.Update()
	}
}
