package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/leap-of-faith/internal/platform/tui"
	"github.com/vovakirdan/leap-of-faith/internal/registry"
	"github.com/vovakirdan/leap-of-faith/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
	flagRecent      bool
	flagScoreHero   string
	flagRunID       int64
)

// heroScanLimit bounds how many runs are scanned when filtering by hero.
const heroScanLimit = 1000

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the deepest runs",
	Long: `Display the best runs: most floors first, faster runs breaking ties.

Examples:
  leap scores
  leap scores --limit 25
  leap scores --interactive
  leap scores --recent --hero ninjafrog
  leap scores --run 42`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the deepest")
	scoresCmd.Flags().StringVar(&flagScoreHero, "hero", "", "Only show runs of this hero")
	scoresCmd.Flags().Int64Var(&flagRunID, "run", 0, "Show one run and how to replay it")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	if flagRunID != 0 {
		return showRun(store, flagRunID)
	}
	if flagScoreHero != "" && !registry.Exists(flagScoreHero) {
		return fmt.Errorf("unknown hero %q (see 'leap heroes')", flagScoreHero)
	}

	title := "Deepest Runs"
	fetch := store.TopRuns
	if flagRecent {
		title = "Recent Runs"
		fetch = store.RecentRuns
	}
	limit := flagLimit
	if flagScoreHero != "" {
		limit = heroScanLimit
	}
	runs, err := fetch(limit)
	if err != nil {
		return err
	}
	if flagScoreHero != "" {
		runs = filterHero(runs, flagScoreHero)
		if len(runs) > flagLimit && flagLimit > 0 {
			runs = runs[:flagLimit]
		}
		title += " as " + heroName(flagScoreHero)
	}

	fmt.Printf("%s - Leap of Faith\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'leap play' to take the first leap!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %-6s  %s\n", "Rank", "Hero", "Floors", "Result", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %-6s  %s\n", "----", "----", "------", "------", "----", "----")
	for i, r := range runs {
		result := r.Cause
		if r.Won {
			result = "WON"
		}
		fmt.Printf("  %-4d  %-10s  %-6d  %-8s  %-6s  %s\n",
			i+1, heroName(r.Hero), r.Floors, result, runTime(r.Ticks), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if flagScoreHero != "" {
		if best, err := store.BestFloors(flagScoreHero); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d floors\n", best)
		}
		return nil
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Wins: %d  Best: %d floors  Average: %.1f floors\n",
			stats.Runs, stats.Wins, stats.BestFloors, stats.AvgFloors)
	}
	return nil
}

// showRun prints a single run with the command that replays its terrain.
func showRun(store *storage.Store, id int64) error {
	r, err := store.RunByID(id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no run with id %d", id)
	}
	if err != nil {
		return err
	}

	result := "fell (" + r.Cause + ")"
	if r.Won {
		result = "reached the bottom"
	}
	fmt.Printf("Run #%d\n\n", r.ID)
	fmt.Printf("  Hero:    %s\n", heroName(r.Hero))
	fmt.Printf("  Result:  %s on level %d\n", result, r.Level)
	fmt.Printf("  Floors:  %d\n", r.Floors)
	fmt.Printf("  Time:    %s\n", runTime(r.Ticks))
	fmt.Printf("  Date:    %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println()
	fmt.Printf("Replay the terrain with: leap sim --seed %d --hero %s\n", r.Seed, r.Hero)
	return nil
}

func filterHero(runs []storage.RunRecord, hero string) []storage.RunRecord {
	out := runs[:0]
	for _, r := range runs {
		if r.Hero == hero {
			out = append(out, r)
		}
	}
	return out
}

func heroName(id string) string {
	if h, ok := registry.Lookup(id); ok {
		return h.Title
	}
	return id
}

// runTime renders a tick count at the configured rate.
func runTime(ticks int) string {
	d := time.Duration(ticks) * time.Second / time.Duration(max(flagFPS, 1))
	return d.Round(time.Second).String()
}
