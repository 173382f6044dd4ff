package leap

import "github.com/vovakirdan/leap-of-faith/internal/core"

// Autopilot is a scripted player for headless runs. It steers toward the
// highest tile below the hero that is not a spike.
func Autopilot(w *World) core.InputFrame {
	in := core.NewInputFrame()
	h := w.Hero
	if h == nil || !h.CutsceneComplete {
		return in
	}

	var target *Terrain
	for _, t := range w.Terrain.Tiles() {
		if t.Top() <= h.Bottom() || t.Kind == KindSpike {
			continue
		}
		if target == nil || t.Top() < target.Top() {
			target = t
		}
	}
	if target == nil {
		return in
	}

	step := w.Cfg.Physics.MovingSpeed
	switch d := target.X + target.W/2 - h.CenterX(); {
	case d < -step:
		in.Hold(core.ActionLeft)
	case d > step:
		in.Hold(core.ActionRight)
	}
	return in
}
