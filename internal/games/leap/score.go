package leap

import "math"

// Score turns the hero's cumulative fall distance into a floor counter
// that counts down from the top level to 0.
type Score struct {
	topLevel   int
	height     float64 // Shaft height, one floor
	distance   float64
	prevBottom float64
}

// NewScore creates a tracker for a shaft of the given height.
func NewScore(topLevel int, shaftHeight float64) *Score {
	return &Score{topLevel: topLevel, height: shaftHeight}
}

// Reset clears the distance and starts sampling from bottom.
func (s *Score) Reset(bottom float64) {
	s.distance = 0
	s.prevBottom = bottom
}

// Observe samples the hero's bottom edge. Only downward motion counts;
// the previous sample is replaced either way.
func (s *Score) Observe(bottom float64) {
	if d := bottom - s.prevBottom; d > 0 {
		s.distance += d
	}
	s.prevBottom = bottom
}

// Distance returns the cumulative fall distance.
func (s *Score) Distance() float64 {
	return s.distance
}

// Level returns the current floor, never below 0.
func (s *Score) Level() int {
	level := s.topLevel - int(math.Floor(s.distance/s.height))
	if level < 0 {
		return 0
	}
	return level
}

// Floors returns how many floors were descended.
func (s *Score) Floors() int {
	return s.topLevel - s.Level()
}

// Won reports whether the bottom floor was reached.
func (s *Score) Won() bool {
	return s.Level() == 0
}
