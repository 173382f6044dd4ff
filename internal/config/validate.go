package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the preconditions the simulation relies on. A malformed
// table is rejected at startup instead of producing undefined spawns later.
func (c LeapConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	f := c.Field
	if f.Width <= 0 || f.Height <= 0 {
		fail("field size %dx%d must be positive", f.Width, f.Height)
	}
	if f.WallWidth < 0 || f.WallHeight <= 0 {
		fail("wall %dx%d: width must be >= 0 and height > 0", f.WallWidth, f.WallHeight)
	}
	if f.CeilingMargin < 0 || f.CeilingMargin >= f.Height {
		fail("ceiling_margin %d must be within the field", f.CeilingMargin)
	}

	p := c.Physics
	if p.TerrainSpeed <= 0 || p.FallSpeed <= 0 || p.MovingSpeed <= 0 || p.ConveyorSpeed < 0 {
		fail("speeds must be positive (terrain %v, fall %v, moving %v, conveyor %v)",
			p.TerrainSpeed, p.FallSpeed, p.MovingSpeed, p.ConveyorSpeed)
	}
	if p.CollisionThreshold <= 0 {
		fail("collision_threshold %v must be positive", p.CollisionThreshold)
	}
	// Feet can sink fall_speed+terrain_speed into a tile on the first tick
	// of contact; deeper than the threshold reads as a side hit.
	if reach := p.FallSpeed + p.TerrainSpeed; reach > p.CollisionThreshold {
		fail("fall_speed + terrain_speed = %v exceeds collision_threshold %v, falling heroes could never land",
			reach, p.CollisionThreshold)
	}

	h := c.Hero
	if h.Width <= 0 || h.Height <= 0 {
		fail("hero size %dx%d must be positive", h.Width, h.Height)
	}
	if h.MaxHealth <= 0 {
		fail("max_health %d must be positive", h.MaxHealth)
	}
	if h.AnimationIncrement <= 0 || h.AnimationIncrement > 1 {
		fail("animation_increment %v must be in (0, 1]", h.AnimationIncrement)
	}
	left := float64(f.WallWidth) + float64(h.Width)/2
	right := float64(f.Width-f.WallWidth) - float64(h.Width)/2
	if h.StartX < left || h.StartX > right {
		fail("start_x %v outside the shaft [%v, %v]", h.StartX, left, right)
	}
	if h.StartY-float64(h.Height) < float64(f.CeilingMargin) || h.StartY > float64(f.Height) {
		fail("start_y %v outside the shaft", h.StartY)
	}

	t := c.Terrain
	if t.Width <= 0 || t.Height <= 0 {
		fail("terrain size %dx%d must be positive", t.Width, t.Height)
	}
	if t.Width > f.Width-2*f.WallWidth {
		fail("terrain width %d does not fit between the walls", t.Width)
	}
	if len(t.Kinds) == 0 {
		fail("terrain kinds must not be empty")
	}
	if len(t.Kinds) != len(t.Weights) {
		fail("%d terrain kinds but %d weights", len(t.Kinds), len(t.Weights))
	}
	seen := make(map[string]bool, len(t.Kinds))
	for _, k := range t.Kinds {
		if !knownKinds[k] {
			fail("unknown terrain kind %q", k)
		}
		if seen[k] {
			fail("duplicate terrain kind %q", k)
		}
		seen[k] = true
	}
	total := 0
	for i, w := range t.Weights {
		if w < 0 {
			fail("weight %d of %q is negative", w, kindAt(t.Kinds, i))
		}
		total += w
	}
	if total <= 0 {
		fail("terrain weights sum to %d, need a positive total", total)
	}

	tm := c.Timing
	if tm.SpawnPeriodMS <= 0 || tm.BreakDelayMS <= 0 || tm.DeathDelayMS < 0 {
		fail("timing periods must be positive (spawn %d, break %d, death %d)",
			tm.SpawnPeriodMS, tm.BreakDelayMS, tm.DeathDelayMS)
	}
	if c.Backdrop.SawSpeed <= 0 {
		fail("saw_speed %d must be positive", c.Backdrop.SawSpeed)
	}
	if c.Progress.TopLevel <= 0 {
		fail("top_level %d must be positive", c.Progress.TopLevel)
	}

	return errors.Join(errs...)
}

func kindAt(kinds []string, i int) string {
	if i < len(kinds) {
		return kinds[i]
	}
	return fmt.Sprintf("#%d", i)
}
