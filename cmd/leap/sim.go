package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/leap-of-faith/internal/audio"
	"github.com/vovakirdan/leap-of-faith/internal/core"
	"github.com/vovakirdan/leap-of-faith/internal/games/leap"
	"github.com/vovakirdan/leap-of-faith/internal/registry"
	"github.com/vovakirdan/leap-of-faith/internal/storage"
)

var (
	flagSimTicks    int
	flagSimRuns     int
	flagSimHero     string
	flagSimRealtime bool
	flagSimSave     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with a scripted player",
	Long: `Run the simulation without a terminal UI. A scripted player picks a
hero and steers toward the highest safe tile below it. The same --seed
always produces the same runs.

With --realtime the loop waits for each tick deadline, like the real game;
otherwise it runs as fast as possible.

Examples:
  leap sim --seed 42
  leap sim --seed 42 --runs 10 --hero pinkman
  leap sim --realtime --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 60*60*10, "Stop after this many ticks")
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Stop after this many finished runs")
	simCmd.Flags().StringVar(&flagSimHero, "hero", "maskdude", "Hero the scripted player picks")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace ticks at --fps")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record finished runs in the database")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// selectActions maps roster slots to hero select keys.
var selectActions = []core.Action{core.ActionSelect1, core.ActionSelect2, core.ActionSelect3}

func runSim(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	hero, ok := registry.Lookup(flagSimHero)
	if !ok || hero.Slot >= len(selectActions) {
		return fmt.Errorf("unknown hero %q, run 'leap heroes' for the roster", flagSimHero)
	}

	cfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	game, err := newGame(cfg, logger, audio.Nop)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tickRate := max(flagFPS, 1)
	game.Reset(core.RuntimeConfig{TickRate: tickRate, Seed: seed})

	var store *storage.Store
	if flagSimSave {
		if store, err = storage.Open(flagDBPath); err != nil {
			return err
		}
		defer store.Close()
	}

	logger.Info("simulation started", "seed", seed, "hero", hero.ID, "ticks", flagSimTicks, "runs", flagSimRuns)

	interval := time.Second / time.Duration(tickRate)
	next := time.Now()
	var runs []core.RunSummary
	tick := 0
	for ; tick < flagSimTicks && len(runs) < flagSimRuns; tick++ {
		in := leap.Autopilot(game.World())
		if game.Phase() == leap.PhasePreGame {
			in = core.NewInputFrame()
			in.Set(selectActions[hero.Slot])
		}

		res := game.Step(in)
		if res.RunOver != nil {
			runs = append(runs, *res.RunOver)
			if store != nil {
				if _, err := store.SaveRun(storage.RecordFromSummary(*res.RunOver, seed)); err != nil {
					logger.Error("cannot save run", "err", err)
				}
			}
		}

		if flagSimRealtime {
			next = next.Add(interval)
			if d := time.Until(next); d > 0 {
				time.Sleep(d)
			}
		}
	}

	printSimSummary(seed, tick, runs)
	return nil
}

func printSimSummary(seed int64, ticks int, runs []core.RunSummary) {
	fmt.Printf("Seed %d, %d ticks simulated\n", seed, ticks)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No run finished; the hero is still falling.")
		return
	}

	fmt.Printf("  %-3s  %-10s  %-6s  %-5s  %-8s  %s\n", "Run", "Hero", "Floors", "Level", "Result", "Ticks")
	fmt.Printf("  %-3s  %-10s  %-6s  %-5s  %-8s  %s\n", "---", "----", "------", "-----", "------", "-----")
	best := 0
	for i, r := range runs {
		result := r.Cause
		if r.Won {
			result = "WON"
		}
		fmt.Printf("  %-3d  %-10s  %-6d  %-5d  %-8s  %d\n", i+1, heroName(r.Hero), r.Floors, r.Level, result, r.Ticks)
		best = max(best, r.Floors)
	}
	fmt.Println()
	fmt.Printf("Best: %d floors\n", best)
}
