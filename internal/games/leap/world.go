package leap

import "github.com/vovakirdan/leap-of-faith/internal/config"

// World is everything one run mutates. It is owned by the game loop and
// handed to each subsystem in turn.
type World struct {
	Cfg      *config.LeapConfig
	Hero     *Hero
	Terrain  *Spawner
	Score    *Score
	Backdrop *Backdrop
	Commands *Commands

	Tick     int // Ticks since the run started
	SeedTile int // Id of the tile the hero appeared on

	sound SoundSink
	died  bool
}

// NewWorld creates an empty world around a spawner.
func NewWorld(cfg *config.LeapConfig, terrain *Spawner, sound SoundSink) *World {
	if sound == nil {
		sound = nopSink{}
	}
	return &World{
		Cfg:      cfg,
		Terrain:  terrain,
		Score:    NewScore(cfg.Progress.TopLevel, float64(cfg.Field.Height)),
		Backdrop: NewBackdrop(cfg),
		Commands: &Commands{},
		sound:    sound,
	}
}

// Begin starts a fresh run: a new hero in its appear animation standing on
// a new seed tile, an empty queue and a restarted spawn timer.
func (w *World) Begin(heroKind string) {
	w.Terrain.Clear()
	w.Commands.Reset()
	w.Tick = 0
	w.died = false

	w.Hero = NewHero(heroKind, w.Cfg)
	seed := w.Terrain.Seed(w.Hero.CenterX(), w.Hero.Bottom())
	w.SeedTile = seed.ID
	w.Terrain.RestartTimer(w.Tick)
	w.Score.Reset(w.Hero.Bottom())
}

// Kill queues HeroDied once per death; later calls are ignored.
func (w *World) Kill(cause string) {
	if w.died {
		return
	}
	w.died = true
	w.Commands.Push(CmdHeroDied{Cause: cause})
}

// Dead reports whether HeroDied was raised for the current hero.
func (w *World) Dead() bool {
	return w.died
}

func (w *World) play(id SoundID) {
	w.sound.Play(id)
}
