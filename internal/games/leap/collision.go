package leap

import (
	"github.com/vovakirdan/leap-of-faith/internal/config"
	"github.com/vovakirdan/leap-of-faith/internal/core"
)

// OverlapFunc reports whether the hero and a tile touch.
type OverlapFunc func(h *Hero, t *Terrain) bool

// MaskOverlap compares the hero silhouette against the tile's solid cells.
func MaskOverlap(h *Hero, t *Terrain) bool {
	return core.MasksOverlap(h.Mask(), h.X, h.Y, t.mask, t.X, t.Y)
}

// Resolver reconciles the hero against the terrain once per tick.
type Resolver struct {
	overlap   OverlapFunc
	threshold float64
	conveyor  float64
	left      float64
	right     float64
}

// NewResolver creates a resolver. A nil overlap uses MaskOverlap.
func NewResolver(cfg *config.LeapConfig, overlap OverlapFunc) *Resolver {
	if overlap == nil {
		overlap = MaskOverlap
	}
	return &Resolver{
		overlap:   overlap,
		threshold: cfg.Physics.CollisionThreshold,
		conveyor:  cfg.Physics.ConveyorSpeed,
		left:      float64(cfg.Field.WallWidth),
		right:     float64(cfg.Field.Width - cfg.Field.WallWidth),
	}
}

// Resolve handles at most one contact: the first overlapping tile in
// insertion order. A landing snaps the hero onto the tile and fires its
// effect; any other contact bumps the hero sideways. With no contact the
// hero falls.
func (r *Resolver) Resolve(w *World) {
	h := w.Hero
	if h == nil {
		return
	}
	if !h.CutsceneComplete {
		r.anchor(w)
		return
	}

	for _, t := range w.Terrain.Candidates(h.Rect()) {
		if !r.overlap(h, t) {
			continue
		}
		if pen := h.Bottom() - t.Top(); pen >= 0 && pen <= r.threshold {
			h.Land(t.Top())
			r.effect(w, t)
		} else {
			r.bump(h, t)
		}
		return
	}
	h.Falling = true
}

// anchor keeps the appearing hero on its seed tile while the tile scrolls.
func (r *Resolver) anchor(w *World) {
	if seed := w.Terrain.Get(w.SeedTile); seed != nil {
		w.Hero.Land(seed.Top())
	}
}

func (r *Resolver) effect(w *World, t *Terrain) {
	h := w.Hero
	switch t.Kind {
	case KindSpike:
		if t.DamageDealt {
			return
		}
		t.DamageDealt = true
		w.play(SoundSting)
		if h.Damage() {
			w.Kill(CauseHealth)
		}
	case KindHeal:
		if t.HealDealt {
			return
		}
		t.HealDealt = true
		if h.Heal() {
			w.play(SoundHeal)
		}
	case KindEmpty:
		w.Terrain.Arm(t, w.Tick)
	case KindConveyorLeft, KindConveyorRight:
		h.Push(t.Kind.Push() * r.conveyor)
	}
}

// bump pushes the hero out of the tile's nearest side edge. When that side
// is blocked by a wall the hero goes out the other side.
func (r *Resolver) bump(h *Hero, t *Terrain) {
	leftX := t.X - h.W
	rightX := t.X + t.W
	fits := func(x float64) bool { return x >= r.left && x+h.W <= r.right }

	first, second := rightX, leftX
	if h.CenterX() < t.X+t.W/2 {
		first, second = leftX, rightX
	}
	switch {
	case fits(first):
		h.X = first
	case fits(second):
		h.X = second
	}
	h.Falling = true
}
