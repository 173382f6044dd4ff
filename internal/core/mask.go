package core

import "math"

// Mask is a per-cell silhouette: a cell is solid when the sprite draws
// something there. Two bodies overlap only where solid cells meet, which
// keeps collisions faithful to what the player sees on screen.
type Mask struct {
	W, H  int
	solid []bool
}

// ParseMask builds a mask from sprite rows. Spaces are transparent, every
// other rune is solid. Rows shorter than the widest row are padded.
func ParseMask(rows ...string) Mask {
	w := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	m := Mask{W: w, H: len(rows), solid: make([]bool, w*len(rows))}
	for y, row := range rows {
		for x, r := range []rune(row) {
			if r != ' ' {
				m.solid[y*w+x] = true
			}
		}
	}
	return m
}

// SolidMask returns a fully solid w×h mask.
func SolidMask(w, h int) Mask {
	m := Mask{W: w, H: h, solid: make([]bool, w*h)}
	for i := range m.solid {
		m.solid[i] = true
	}
	return m
}

// Solid reports whether the cell at (x, y) is solid. Out of range is empty.
func (m Mask) Solid(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.solid[y*m.W+x]
}

// Count returns the number of solid cells.
func (m Mask) Count() int {
	n := 0
	for _, s := range m.solid {
		if s {
			n++
		}
	}
	return n
}

// MasksOverlap reports whether mask a placed at (ax, ay) and mask b placed at
// (bx, by) share any solid area. Every solid cell is a unit square, so two
// cells overlap when they are less than one cell apart on both axes.
func MasksOverlap(a Mask, ax, ay float64, b Mask, bx, by float64) bool {
	ra := NewRectF(ax, ay, float64(a.W), float64(a.H))
	rb := NewRectF(bx, by, float64(b.W), float64(b.H))
	if !ra.Intersects(rb) {
		return false
	}

	for j := 0; j < a.H; j++ {
		// Offset of this row relative to b's grid.
		oy := ay + float64(j) - by
		ky := int(math.Floor(oy))
		for i := 0; i < a.W; i++ {
			if !a.Solid(i, j) {
				continue
			}
			ox := ax + float64(i) - bx
			kx := int(math.Floor(ox))
			for y := ky; y <= ky+1; y++ {
				if math.Abs(oy-float64(y)) >= 1 {
					continue
				}
				for x := kx; x <= kx+1; x++ {
					if math.Abs(ox-float64(x)) >= 1 {
						continue
					}
					if b.Solid(x, y) {
						return true
					}
				}
			}
		}
	}
	return false
}
