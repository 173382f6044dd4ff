package leap

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/leap-of-faith/internal/config"
	"github.com/vovakirdan/leap-of-faith/internal/core"
)

func newTestGame(t *testing.T, seed int64, opts ...Option) (*Game, *recordSink) {
	t.Helper()
	sink := &recordSink{}
	g, err := New(config.DefaultLeapConfig(), append([]Option{WithSoundSink(sink)}, opts...)...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	rc := core.DefaultConfig()
	rc.Seed = seed
	g.Reset(rc)
	return g, sink
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultLeapConfig()
	cfg.Terrain.Weights = cfg.Terrain.Weights[:3]
	_, err := New(cfg)
	if err == nil {
		t.Fatal("New() = nil error, expected invalid config")
	}
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("New() error = %v, expected wrapped config.ErrInvalid", err)
	}
}

func TestHeroSelectStartsRun(t *testing.T) {
	g, sink := newTestGame(t, 1)
	if g.Phase() != PhasePreGame {
		t.Fatalf("Phase() = %v, expected pregame", g.Phase())
	}

	// Idle previews animate without starting a run
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Phase() != PhasePreGame {
		t.Fatal("run started without a selection")
	}

	res := g.Step(press(core.ActionSelect2))
	if g.Phase() != PhaseActive || !res.State.InRun {
		t.Fatalf("Phase() = %v after selection, expected active", g.Phase())
	}
	w := g.World()
	if w.Hero == nil || w.Hero.Kind != "ninjafrog" {
		t.Fatalf("hero = %+v, expected ninjafrog", w.Hero)
	}
	if w.Hero.Motion != MotionAppearing {
		t.Errorf("Motion = %v, expected appearing", w.Hero.Motion)
	}
	seed := w.Terrain.Get(w.SeedTile)
	if seed == nil || seed.Top() != w.Hero.Bottom() {
		t.Errorf("hero not standing on the seed tile")
	}
	if sink.count(SoundSelectNinjaFrog) != 1 {
		t.Errorf("select sound played %d times, expected 1", sink.count(SoundSelectNinjaFrog))
	}
	if res.State.Health != 3 || res.State.Level != 100 {
		t.Errorf("State = %+v, expected full health on level 100", res.State)
	}
}

// A hero that never moves rides the seed tile into the saws.
func TestIdleHeroDiesAtCeiling(t *testing.T) {
	g, _ := newTestGame(t, 3)
	g.Step(press(core.ActionSelect1))

	var summaries []*core.RunSummary
	dyingTick := -1
	sawDying := false
	for i := 0; i < 1000; i++ {
		res := g.Step(core.NewInputFrame())
		if g.Phase() == PhaseDying {
			if !sawDying {
				dyingTick = g.World().Tick
				sawDying = true
			}
			if g.World().Tick != dyingTick {
				t.Fatal("simulation advanced during the death delay")
			}
			if !res.State.InRun {
				t.Error("InRun = false during the death delay")
			}
		}
		if res.RunOver != nil {
			summaries = append(summaries, res.RunOver)
		}
	}

	if len(summaries) != 1 {
		t.Fatalf("got %d run summaries, expected 1", len(summaries))
	}
	s := summaries[0]
	if s.Cause != CauseCeiling || s.Won || s.Hero != "maskdude" {
		t.Errorf("summary = %+v, expected maskdude lost to the ceiling", s)
	}
	// Feet start at 16 with the top at 14; the ceiling margin is 1.
	if s.Ticks != 209 {
		t.Errorf("Ticks = %d, expected 209", s.Ticks)
	}
	if s.Level != 100 || s.Floors != 0 {
		t.Errorf("Level = %d, Floors = %d; expected no floors descended", s.Level, s.Floors)
	}

	st := g.State()
	if g.Phase() != PhasePreGame || !st.GameOver || st.InRun || st.Won {
		t.Errorf("State = %+v in phase %v, expected game over in pregame", st, g.Phase())
	}
	if st.Level != 100 {
		t.Errorf("State.Level = %d, expected last level 100 preserved", st.Level)
	}
}

func TestDeathDelayLength(t *testing.T) {
	g, _ := newTestGame(t, 3)
	g.Step(press(core.ActionSelect1))

	for g.Phase() != PhaseDying {
		g.Step(core.NewInputFrame())
	}
	if g.Fade() != 1 {
		t.Errorf("Fade() = %v at death, expected 1", g.Fade())
	}

	delay := config.Ticks(g.Config().Timing.DeathDelayMS, 60)
	for i := 1; i < delay; i++ {
		if res := g.Step(core.NewInputFrame()); res.RunOver != nil {
			t.Fatalf("run ended %d ticks into a %d tick delay", i, delay)
		}
	}
	if g.Fade() >= 0.5 {
		t.Errorf("Fade() = %v near the end of the delay, expected faded", g.Fade())
	}
	if res := g.Step(core.NewInputFrame()); res.RunOver == nil {
		t.Error("run did not end after the death delay")
	}
}

func TestReachingBottomWins(t *testing.T) {
	g, _ := newTestGame(t, 5)
	g.Step(press(core.ActionSelect3))
	for i := 0; i < 40; i++ {
		g.Step(core.NewInputFrame())
	}

	w := g.World()
	if !w.Hero.CutsceneComplete {
		t.Fatal("cutscene still running")
	}
	// One fall step short of the bottom, away from every tile
	w.Score.distance = float64(w.Cfg.Field.Height*w.Cfg.Progress.TopLevel) - 0.1
	w.Hero.X = 3
	w.Hero.Falling = true

	res := g.Step(core.NewInputFrame())
	if res.RunOver == nil {
		t.Fatal("RunOver = nil, expected the run to end")
	}
	if !res.RunOver.Won || res.RunOver.Level != 0 || res.RunOver.Floors != 100 || res.RunOver.Cause != CauseBottom {
		t.Errorf("summary = %+v, expected a win at level 0", res.RunOver)
	}
	if g.Phase() != PhasePreGame || !res.State.Won || !res.State.GameOver {
		t.Errorf("State = %+v, expected won game over", res.State)
	}

	// Enter replays the same hero
	g.Step(press(core.ActionConfirm))
	if g.Phase() != PhaseActive || g.World().Hero.Kind != "pinkman" {
		t.Error("Enter did not restart with the last hero")
	}
}

func TestPauseFreezesRun(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Step(press(core.ActionSelect1))
	g.Step(core.NewInputFrame())

	res := g.Step(press(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("Paused = false after pause")
	}
	tick := g.World().Tick
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.World().Tick != tick {
		t.Errorf("Tick = %d while paused, expected %d", g.World().Tick, tick)
	}

	res = g.Step(press(core.ActionPause))
	if res.State.Paused || g.World().Tick != tick+1 {
		t.Errorf("unpause: Paused = %v, Tick = %d", res.State.Paused, g.World().Tick)
	}
}

func TestMusicFollowsRun(t *testing.T) {
	g, sink := newTestGame(t, 3)
	if sink.musicOn() {
		t.Fatal("music on at hero select")
	}

	g.Step(press(core.ActionSelect1))
	if !sink.musicOn() {
		t.Fatal("music off after the run started")
	}
	g.Step(press(core.ActionPause))
	if sink.musicOn() {
		t.Error("music kept playing while paused")
	}
	g.Step(press(core.ActionPause))
	if !sink.musicOn() {
		t.Error("music did not resume with the run")
	}

	for g.Phase() == PhaseActive {
		g.Step(core.NewInputFrame())
	}
	if sink.musicOn() {
		t.Error("music kept playing after the hero died")
	}
}

func TestDestroyCommandPlaysBreak(t *testing.T) {
	g, sink := newTestGame(t, 1)
	g.Step(press(core.ActionSelect1))
	w := g.World()
	tile := w.Terrain.Spawn(KindEmpty)

	g.apply(CmdDestroyArmedTile{ID: tile.ID})
	if w.Terrain.Get(tile.ID) != nil {
		t.Error("tile still alive after destroy")
	}
	g.apply(CmdDestroyArmedTile{ID: tile.ID})
	if got := sink.count(SoundBreak); got != 1 {
		t.Errorf("break played %d times, expected 1", got)
	}
}

func TestSpawnTimerDuringRun(t *testing.T) {
	g, _ := newTestGame(t, 8)
	g.Step(press(core.ActionSelect1))

	// Seed tile only, then one spawn per second
	if n := len(g.World().Terrain.Tiles()); n != 1 {
		t.Fatalf("%d tiles at start, expected 1", n)
	}
	for i := 0; i < 180; i++ {
		g.Step(core.NewInputFrame())
	}
	if n := len(g.World().Terrain.Tiles()); n != 4 {
		t.Errorf("%d tiles after 3s, expected 4", n)
	}
}

// autopilotRun plays several runs with the scripted player and returns
// every state and summary in order.
func autopilotRun(t *testing.T, seed int64, ticks int) ([]core.GameState, []core.RunSummary) {
	t.Helper()
	g, _ := newTestGame(t, seed)

	var states []core.GameState
	var runs []core.RunSummary
	for i := 0; i < ticks; i++ {
		in := Autopilot(g.World())
		if g.Phase() == PhasePreGame {
			in = press(core.ActionSelect1)
		}
		res := g.Step(in)
		states = append(states, res.State)
		if res.RunOver != nil {
			runs = append(runs, *res.RunOver)
		}
	}
	return states, runs
}

func TestDeterministicReplay(t *testing.T) {
	a, runsA := autopilotRun(t, 77, 4000)
	b, runsB := autopilotRun(t, 77, 4000)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d: %+v != %+v", i, a[i], b[i])
		}
	}
	if len(runsA) != len(runsB) {
		t.Fatalf("%d runs vs %d runs", len(runsA), len(runsB))
	}
	for i := range runsA {
		if runsA[i] != runsB[i] {
			t.Errorf("run %d: %+v != %+v", i, runsA[i], runsB[i])
		}
	}
}

func TestRunInvariants(t *testing.T) {
	g, _ := newTestGame(t, 2024)
	cfg := g.Config()

	prevDist := 0.0
	checked := 0
	for i := 0; i < 20000; i++ {
		in := Autopilot(g.World())
		if g.Phase() == PhasePreGame {
			in = press(core.ActionSelect1)
		}
		wasActive := g.Phase() == PhaseActive
		res := g.Step(in)
		if res.RunOver != nil {
			prevDist = 0
			continue
		}
		if !wasActive || g.Phase() != PhaseActive {
			continue
		}

		checked++
		w := g.World()
		if h := w.Hero.Health; h < 0 || h > cfg.Hero.MaxHealth {
			t.Fatalf("tick %d: health %d out of range", i, h)
		}
		d := w.Score.Distance()
		if d < prevDist {
			t.Fatalf("tick %d: distance decreased %v -> %v", i, prevDist, d)
		}
		prevDist = d
		want := max(cfg.Progress.TopLevel-int(d/float64(cfg.Field.Height)), 0)
		if res.State.Level != want {
			t.Fatalf("tick %d: level %d, expected %d for distance %v", i, res.State.Level, want, d)
		}
		for _, tile := range w.Terrain.Tiles() {
			if tile.Y <= -tile.H {
				t.Fatalf("tick %d: tile %d above the removal bound", i, tile.ID)
			}
		}
	}
	if checked == 0 {
		t.Error("no active ticks observed")
	}
}

func TestRender(t *testing.T) {
	g, _ := newTestGame(t, 1)
	screen := core.NewScreen(80, 26)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"LEAP OF FAITH", "[1] Mask Dude", "[2] Ninja Frog", "[3] Pink Man"} {
		if !strings.Contains(out, want) {
			t.Errorf("hero select missing %q", want)
		}
	}

	g.Step(press(core.ActionSelect1))
	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame())
	}
	screen.Clear()
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "LEVEL 100") {
		t.Error("HUD missing level")
	}
	if strings.Count(out, string(heartFull)) != 3 {
		t.Errorf("HUD shows %d hearts, expected 3", strings.Count(out, string(heartFull)))
	}
	if !strings.Contains(out, "@") {
		t.Error("hero not drawn")
	}

	// Render never mutates the simulation
	before := g.State()
	tick := g.World().Tick
	g.Render(screen)
	if g.State() != before || g.World().Tick != tick {
		t.Error("Render changed the game state")
	}
}
