package leap

import (
	"testing"

	"github.com/vovakirdan/leap-of-faith/internal/config"
)

// recordSink remembers every sound played and every music switch.
type recordSink struct {
	played []SoundID
	music  []bool
}

func (r *recordSink) Music(on bool) {
	r.music = append(r.music, on)
}

// musicOn reports the last music switch, false when never switched.
func (r *recordSink) musicOn() bool {
	return len(r.music) > 0 && r.music[len(r.music)-1]
}

func (r *recordSink) Play(id SoundID) {
	r.played = append(r.played, id)
}

func (r *recordSink) count(id SoundID) int {
	n := 0
	for _, p := range r.played {
		if p == id {
			n++
		}
	}
	return n
}

// newTestWorld returns a world with a hero past its appear animation,
// standing nowhere, and no terrain.
func newTestWorld(t *testing.T) (*World, *recordSink) {
	t.Helper()

	cfg := config.DefaultLeapConfig()
	sp, err := NewSpawner(&cfg, 60, 1)
	if err != nil {
		t.Fatalf("NewSpawner() failed: %v", err)
	}
	sink := &recordSink{}
	w := NewWorld(&cfg, sp, sink)
	w.Hero = NewHero("maskdude", &cfg)
	w.Hero.CutsceneComplete = true
	w.Hero.Motion = MotionIdle
	return w, sink
}

// placeTile adds a tile with its top-left corner at (x, y).
func placeTile(w *World, kind TerrainKind, x, y float64) *Terrain {
	return w.Terrain.add(kind, x, y)
}

// tick scrolls the terrain and resolves contacts, the part of a game tick
// that involves collisions.
func tick(w *World, r *Resolver) {
	w.Tick++
	w.Terrain.Scroll()
	r.Resolve(w)
}
