package leap

import "github.com/vovakirdan/leap-of-faith/internal/core"

// headRune marks the cell replaced by each hero's own head glyph.
const headRune = 'o'

// heroSprites holds the right-facing frames of every motion. The animation
// frame index is spread over the listed frames.
var heroSprites = [numMotions][][]string{
	MotionAppearing: {
		{"   ", " . "},
		{"   ", " * "},
		{" . ", ".*."},
		{" * ", "*+*"},
		{"\\|/", "-*-"},
		{" + ", "/|\\"},
		{" o ", "/|\\"},
	},
	MotionIdle: {
		{" o ", "/|\\"},
		{" o ", "/|\\"},
		{" o ", "(|)"},
	},
	MotionRunning: {
		{" o ", "/|>"},
		{" o>", " |\\"},
		{" o ", "<|\\"},
		{" o>", "/| "},
	},
	MotionFalling: {
		{"\\o/", " | "},
	},
	MotionHit: {
		{" x ", "/|\\"},
		{"\\x/", " | "},
	},
}

// mirrored swaps direction-bearing glyphs for the left-facing sprite.
var mirrored = map[rune]rune{
	'/': '\\', '\\': '/',
	'<': '>', '>': '<',
	'(': ')', ')': '(',
}

// heroSprite returns the rows to draw for a hero frame.
func heroSprite(m Motion, frame int, facing Facing, head rune) []string {
	frames := heroSprites[m]
	idx := frame * len(frames) / motionFrames[m]
	if idx >= len(frames) {
		idx = len(frames) - 1
	}

	src := frames[idx]
	out := make([]string, len(src))
	for i, row := range src {
		runes := []rune(row)
		if facing == FacingLeft {
			for l, r := 0, len(runes)-1; l < r; l, r = l+1, r-1 {
				runes[l], runes[r] = runes[r], runes[l]
			}
			for j, c := range runes {
				if mc, ok := mirrored[c]; ok {
					runes[j] = mc
				}
			}
		}
		for j, c := range runes {
			if c == headRune {
				runes[j] = head
			}
		}
		out[i] = string(runes)
	}
	return out
}

// tileStyle is how a terrain kind is drawn.
type tileStyle struct {
	glyph rune
	color core.Color
}

var tileStyles = [numKinds]tileStyle{
	KindCommon:        {'▀', core.ColorGray},
	KindSpike:         {'▲', core.ColorBrightRed},
	KindHeal:          {'+', core.ColorBrightGreen},
	KindEmpty:         {'░', core.ColorYellow},
	KindConveyorLeft:  {'<', core.ColorCyan},
	KindConveyorRight: {'>', core.ColorCyan},
}

// Backdrop glyphs
const (
	wallGlyph   = '▓'
	mortarGlyph = '▒'
	heartFull   = '♥'
	heartEmpty  = '♡'
)

var sawFrames = []rune{'*', 'x', '+', 'x'}
