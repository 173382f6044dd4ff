// Package leap implements Leap of Faith, a platformer where the hero falls
// down a shaft of scrolling tiles. Spikes hurt, hearts heal, crumbling
// tiles break shortly after being stepped on and conveyors push sideways.
// The run is won by descending 100 floors.
package leap

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/leap-of-faith/internal/config"
	"github.com/vovakirdan/leap-of-faith/internal/core"
	"github.com/vovakirdan/leap-of-faith/internal/registry"
)

// Phase is the top-level state of the game loop.
type Phase int

const (
	PhasePreGame Phase = iota // Hero select, showing the last result
	PhaseActive               // A run is in progress
	PhaseDying                // Frozen death delay before returning to hero select
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhasePreGame:
		return "pregame"
	case PhaseActive:
		return "active"
	case PhaseDying:
		return "dying"
	default:
		return "unknown"
	}
}

// CauseBottom ends a won run.
const CauseBottom = "bottom"

// Game implements registry.Game for Leap of Faith.
type Game struct {
	cfg      config.LeapConfig
	runtime  core.RuntimeConfig
	world    *World
	resolver *Resolver
	sound    SoundSink
	logger   *log.Logger
	overlap  OverlapFunc

	phase   Phase
	paused  bool
	preview int // Ticks of the hero select idle animation

	// Death delay
	dyingLeft int
	fade      *gween.Tween
	fadeLevel float32
	cause     string

	// Last finished run
	played     bool
	lastHero   string
	lastLevel  int
	lastFloors int
	lastWon    bool
}

var _ registry.Game = (*Game)(nil)

// Option configures a Game.
type Option func(*Game)

// WithSoundSink routes sound effects to s.
func WithSoundSink(s SoundSink) Option {
	return func(g *Game) {
		if s != nil {
			g.sound = s
		}
	}
}

// WithLogger sets the logger for run events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithOverlap replaces the hero/tile overlap test.
func WithOverlap(f OverlapFunc) Option {
	return func(g *Game) {
		g.overlap = f
	}
}

// New creates a game from a config. The config is validated here so a
// malformed table never reaches the simulation.
func New(cfg config.LeapConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("leap: %w", err)
	}

	g := &Game{
		cfg:     cfg,
		runtime: core.DefaultConfig(),
		sound:   nopSink{},
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	spawner, err := NewSpawner(&g.cfg, g.runtime.TickRate, g.runtime.Seed)
	if err != nil {
		return nil, err
	}
	g.world = NewWorld(&g.cfg, spawner, g.sound)
	g.resolver = NewResolver(&g.cfg, g.overlap)
	g.lastLevel = cfg.Progress.TopLevel
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "leap"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Leap of Faith"
}

// Reset returns to hero select and reseeds the terrain generator.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime

	g.world.Terrain.SetTickRate(runtime.TickRate)
	g.world.Terrain.Reseed(runtime.Seed)
	g.world.Terrain.Clear()
	g.world.Commands.Reset()
	g.world.Backdrop.Reset()
	g.world.Hero = nil

	g.phase = PhasePreGame
	g.paused = false
	g.setMusic(false)
	g.preview = 0
	g.played = false
	g.lastHero = ""
	g.lastLevel = g.cfg.Progress.TopLevel
	g.lastFloors = 0
	g.lastWon = false

	g.logger.Debug("game reset", "seed", runtime.Seed, "tick_rate", runtime.TickRate)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var over *core.RunSummary
	switch g.phase {
	case PhasePreGame:
		g.stepPreGame(in)
	case PhaseActive:
		over = g.stepActive(in)
	case PhaseDying:
		over = g.stepDying()
	}
	return core.StepResult{State: g.State(), RunOver: over}
}

func (g *Game) stepPreGame(in core.InputFrame) {
	g.preview++
	g.world.Backdrop.Update(false)

	if a, ok := in.Pressed(); ok {
		if info, ok := registry.ByIndex(a.SelectIndex()); ok {
			g.start(info.ID)
		}
		return
	}
	if in.Has(core.ActionConfirm) && g.lastHero != "" {
		g.start(g.lastHero)
	}
}

// start begins a run with a fresh hero on a fresh seed tile.
func (g *Game) start(heroID string) {
	g.world.Begin(heroID)
	g.phase = PhaseActive
	g.paused = false
	g.sound.Play(heroDefFor(heroID).sound)
	g.setMusic(true)
	g.logger.Info("run started", "hero", heroID)
}

// stepActive runs one tick of a run: input, hero, terrain, collisions,
// score, breakable sweep, bounds, then the command queue.
func (g *Game) stepActive(in core.InputFrame) *core.RunSummary {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.setMusic(!g.paused)
	}
	if g.paused {
		return nil
	}

	w := g.world
	w.Tick++

	w.Hero.Update(HeroInput{
		Left:  in.Held(core.ActionLeft),
		Right: in.Held(core.ActionRight),
	})

	w.Terrain.Scroll()
	w.Backdrop.Update(true)
	if w.Terrain.DueSpawn(w.Tick) {
		w.Commands.Push(CmdSpawnTerrain{})
	}

	g.resolver.Resolve(w)
	w.Score.Observe(w.Hero.Bottom())

	for _, id := range w.Terrain.DueDestructions(w.Tick) {
		w.Commands.Push(CmdDestroyArmedTile{ID: id})
	}
	if cause := w.Hero.OutOfBounds(); cause != "" {
		w.Kill(cause)
	}

	w.Commands.Drain(g.apply)

	if g.phase == PhaseActive && w.Score.Won() {
		return g.finish(true, CauseBottom)
	}
	return nil
}

// setMusic switches the background loop when the sink has one.
func (g *Game) setMusic(on bool) {
	if m, ok := g.sound.(MusicPlayer); ok {
		m.Music(on)
	}
}

// apply executes one queued command.
func (g *Game) apply(cmd Command) {
	w := g.world
	switch c := cmd.(type) {
	case CmdSpawnTerrain:
		t := w.Terrain.Spawn(w.Terrain.Draw())
		g.logger.Debug("terrain spawned", "id", t.ID, "kind", t.Kind, "x", t.X, "tick", w.Tick)
	case CmdDestroyArmedTile:
		if w.Terrain.Remove(c.ID) {
			g.sound.Play(SoundBreak)
		}
	case CmdHeroDied:
		g.beginDying(c.Cause)
	}
}

// beginDying freezes the run for the death delay.
func (g *Game) beginDying(cause string) {
	if g.phase != PhaseActive {
		return
	}
	g.phase = PhaseDying
	g.setMusic(false)
	g.cause = cause
	g.dyingLeft = config.Ticks(g.cfg.Timing.DeathDelayMS, g.runtime.TickRate)
	g.fade = gween.New(1, 0, float32(g.dyingLeft)/float32(g.runtime.TickRate), ease.Linear)
	g.fadeLevel = 1

	g.logger.Info("hero died",
		"hero", g.world.Hero.Kind,
		"cause", cause,
		"level", g.world.Score.Level(),
		"tick", g.world.Tick)
}

func (g *Game) stepDying() *core.RunSummary {
	g.dyingLeft--
	g.fadeLevel, _ = g.fade.Update(1 / float32(g.runtime.TickRate))
	if g.dyingLeft > 0 {
		return nil
	}
	return g.finish(false, g.cause)
}

// finish ends the run and returns to hero select, keeping its result.
func (g *Game) finish(won bool, cause string) *core.RunSummary {
	w := g.world
	summary := &core.RunSummary{
		Hero:   w.Hero.Kind,
		Level:  w.Score.Level(),
		Floors: w.Score.Floors(),
		Won:    won,
		Cause:  cause,
		Ticks:  w.Tick,
	}

	g.played = true
	g.lastHero = summary.Hero
	g.lastLevel = summary.Level
	g.lastFloors = summary.Floors
	g.lastWon = won

	g.phase = PhasePreGame
	g.paused = false
	g.setMusic(false)
	g.preview = 0
	w.Terrain.Clear()
	w.Commands.Reset()
	w.Hero = nil

	g.logger.Info("run over",
		"hero", summary.Hero,
		"won", won,
		"cause", cause,
		"level", summary.Level,
		"floors", summary.Floors,
		"ticks", summary.Ticks)
	return summary
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused}
	switch g.phase {
	case PhaseActive, PhaseDying:
		st.InRun = true
		st.Level = g.world.Score.Level()
		st.Score = g.world.Score.Floors()
		st.Health = g.world.Hero.Health
	default:
		st.Level = g.lastLevel
		st.Score = g.lastFloors
		st.GameOver = g.played
		st.Won = g.lastWon
	}
	return st
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// World returns the simulation state. Callers must not mutate it.
func (g *Game) World() *World {
	return g.world
}

// Config returns the config the game runs with.
func (g *Game) Config() config.LeapConfig {
	return g.cfg
}

// Fade returns the death fade level, 1 outside the death delay.
func (g *Game) Fade() float32 {
	if g.phase != PhaseDying {
		return 1
	}
	return g.fadeLevel
}
