package leap

import (
	"github.com/vovakirdan/leap-of-faith/internal/config"
	"github.com/vovakirdan/leap-of-faith/internal/core"
)

// Motion is the hero's animation state.
type Motion int

const (
	MotionAppearing Motion = iota
	MotionIdle
	MotionRunning
	MotionFalling
	MotionHit
	numMotions
)

// motionFrames is the frame count of each state's animation.
var motionFrames = [numMotions]int{
	MotionAppearing: 7,
	MotionIdle:      11,
	MotionRunning:   12,
	MotionFalling:   1,
	MotionHit:       7,
}

// String returns the name of the state.
func (m Motion) String() string {
	switch m {
	case MotionAppearing:
		return "appearing"
	case MotionIdle:
		return "idle"
	case MotionRunning:
		return "running"
	case MotionFalling:
		return "falling"
	case MotionHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Facing is the last horizontal direction the hero moved in.
type Facing int

const (
	FacingLeft Facing = iota
	FacingRight
)

// Death causes reported with HeroDied.
const (
	CauseHealth  = "health"
	CauseCeiling = "ceiling"
	CauseFloor   = "floor"
)

// HeroInput is the held horizontal input for one tick.
type HeroInput struct {
	Left  bool
	Right bool
}

// Hero is the player-controlled actor.
type Hero struct {
	Kind string  // Roster id
	X, Y float64 // Top-left corner
	W, H float64

	Health           int
	Facing           Facing
	Motion           Motion
	CutsceneComplete bool // One-way latch, set when the appear animation ends
	Falling          bool // Not supported by terrain; gravity applies

	hitPlaying bool
	moving     bool // Horizontal input moved the hero this tick
	anim       int  // Ticks spent in the current animation cycle

	cfg  *config.LeapConfig
	mask core.Mask
}

// NewHero creates a hero in the appearing state at the start position.
func NewHero(kind string, cfg *config.LeapConfig) *Hero {
	w, h := float64(cfg.Hero.Width), float64(cfg.Hero.Height)
	return &Hero{
		Kind:   kind,
		X:      cfg.Hero.StartX - w/2,
		Y:      cfg.Hero.StartY - h,
		W:      w,
		H:      h,
		Health: cfg.Hero.MaxHealth,
		Facing: FacingLeft,
		Motion: MotionAppearing,
		cfg:    cfg,
		mask:   heroSilhouette(cfg.Hero.Width, cfg.Hero.Height),
	}
}

// Rect returns the hero bounds.
func (h *Hero) Rect() core.RectF {
	return core.NewRectF(h.X, h.Y, h.W, h.H)
}

// Bottom returns the y of the hero's feet.
func (h *Hero) Bottom() float64 {
	return h.Y + h.H
}

// CenterX returns the horizontal centre.
func (h *Hero) CenterX() float64 {
	return h.X + h.W/2
}

// Mask returns the collision silhouette.
func (h *Hero) Mask() core.Mask {
	return h.mask
}

// HitPlaying reports whether the hit animation is still running.
func (h *Hero) HitPlaying() bool {
	return h.hitPlaying
}

// Update advances the hero by one tick.
func (h *Hero) Update(in HeroInput) {
	if !h.CutsceneComplete {
		if h.advance() {
			h.CutsceneComplete = true
			h.setMotion(MotionIdle)
		}
		return
	}

	h.moving = false
	dir := 0.0
	switch {
	case in.Left:
		dir = -1
		h.Facing = FacingLeft
	case in.Right:
		dir = 1
		h.Facing = FacingRight
	}
	if dir != 0 {
		h.moving = h.tryMove(dir * h.cfg.Physics.MovingSpeed)
	}

	if h.Falling {
		h.Y += h.cfg.Physics.FallSpeed
	}

	h.setMotion(h.pickMotion())
	if h.advance() && h.Motion == MotionHit {
		h.hitPlaying = false
	}
}

// pickMotion applies the state priority Hit > Falling > Running > Idle.
func (h *Hero) pickMotion() Motion {
	switch {
	case h.hitPlaying:
		return MotionHit
	case h.Falling:
		return MotionFalling
	case h.moving:
		return MotionRunning
	default:
		return MotionIdle
	}
}

func (h *Hero) setMotion(m Motion) {
	if h.Motion != m {
		h.Motion = m
		h.anim = 0
	}
}

// advance steps the animation and reports whether it wrapped to frame 0.
func (h *Hero) advance() bool {
	h.anim++
	if int(float64(h.anim)*h.cfg.Hero.AnimationIncrement) >= motionFrames[h.Motion] {
		h.anim = 0
		return true
	}
	return false
}

// Frame returns the index of the current animation frame.
func (h *Hero) Frame() int {
	f := int(float64(h.anim) * h.cfg.Hero.AnimationIncrement)
	if n := motionFrames[h.Motion]; f >= n {
		return n - 1
	}
	return f
}

// tryMove shifts the hero horizontally unless that would cross a wall.
// A rejected move leaves the position unchanged.
func (h *Hero) tryMove(dx float64) bool {
	nx := h.X + dx
	left := float64(h.cfg.Field.WallWidth)
	right := float64(h.cfg.Field.Width - h.cfg.Field.WallWidth)
	if nx < left || nx+h.W > right {
		return false
	}
	h.X = nx
	return true
}

// Push applies a conveyor displacement, rejected at the walls like input.
func (h *Hero) Push(dx float64) bool {
	return h.tryMove(dx)
}

// Land rests the hero's feet on a surface at y.
func (h *Hero) Land(y float64) {
	h.Y = y - h.H
	h.Falling = false
}

// Damage removes one health point and starts the hit animation.
// Reports true only on the hit that brings health to 0.
func (h *Hero) Damage() bool {
	if h.Health <= 0 {
		return false
	}
	h.Health--
	h.hitPlaying = true
	h.Motion = MotionHit
	h.anim = 0
	return h.Health == 0
}

// Heal adds one health point up to the maximum. Reports whether health changed.
func (h *Hero) Heal() bool {
	if h.Health >= h.cfg.Hero.MaxHealth {
		return false
	}
	h.Health++
	return true
}

// OutOfBounds returns the death cause when the hero's top edge is above
// the ceiling margin or below the bottom of the shaft, or "" otherwise.
func (h *Hero) OutOfBounds() string {
	switch {
	case h.Y < float64(h.cfg.Field.CeilingMargin):
		return CauseCeiling
	case h.Y > float64(h.cfg.Field.Height):
		return CauseFloor
	default:
		return ""
	}
}

// heroSilhouette is a w×h body whose top row has transparent corners.
func heroSilhouette(w, h int) core.Mask {
	rows := make([]string, h)
	for y := range rows {
		row := []rune{}
		for x := 0; x < w; x++ {
			if y == 0 && w >= 3 && (x == 0 || x == w-1) {
				row = append(row, ' ')
			} else {
				row = append(row, '#')
			}
		}
		rows[y] = string(row)
	}
	return core.ParseMask(rows...)
}
