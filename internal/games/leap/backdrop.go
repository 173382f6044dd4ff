package leap

import "github.com/vovakirdan/leap-of-faith/internal/config"

// Backdrop is the scrolling wall and the saw row along the ceiling. It is
// decoration only and never touches the simulation.
type Backdrop struct {
	wallHeight float64
	speed      float64
	sawSpeed   int

	offset float64 // Wall scroll, in (-wallHeight, 0]
	saw    int     // Current saw frame
	frames int
}

// NewBackdrop creates a backdrop for the field.
func NewBackdrop(cfg *config.LeapConfig) *Backdrop {
	return &Backdrop{
		wallHeight: float64(cfg.Field.WallHeight),
		speed:      cfg.Physics.TerrainSpeed,
		sawSpeed:   max(cfg.Backdrop.SawSpeed, 1),
	}
}

// Update animates the saws and, when scroll is set, moves the wall up at
// the terrain speed.
func (b *Backdrop) Update(scroll bool) {
	b.frames++
	if b.frames%b.sawSpeed == 0 {
		b.saw = (b.saw + 1) % len(sawFrames)
	}
	if scroll {
		b.offset -= b.speed
		if b.offset <= -b.wallHeight {
			b.offset = 0
		}
	}
}

// Offset returns the wall scroll offset.
func (b *Backdrop) Offset() float64 {
	return b.offset
}

// SawFrame returns the current saw animation frame.
func (b *Backdrop) SawFrame() int {
	return b.saw
}

// Reset stops the scroll at its origin.
func (b *Backdrop) Reset() {
	b.offset = 0
	b.saw = 0
	b.frames = 0
}
