// leap is Leap of Faith, a terminal platformer: fall 100 floors down a
// shaft of scrolling tiles without touching the saws above.
//
// Usage:
//
//	leap play      - Play in this terminal
//	leap heroes    - List the hero roster
//	leap scores    - Show the deepest runs
//	leap serve     - Start SSH server for remote play
//	leap sim       - Run a headless game with a scripted player
//	leap config    - Print the game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible shafts
//	--db <path>           - Set database path (default: ~/.leap/runs.db)
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/leap-of-faith/internal/config"
	"github.com/vovakirdan/leap-of-faith/internal/games/leap"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "leap",
	Short: "Leap of Faith - fall 100 floors in your terminal",
	Long: `Leap of Faith is a terminal platformer. Tiles scroll up the shaft,
the saws wait at the top, and the only way out is down.

Available commands:
  play     - Play in this terminal
  heroes   - List the hero roster
  scores   - View the deepest runs
  serve    - Start SSH server for remote play
  sim      - Headless run with a scripted player
  config   - Print the game config

Examples:
  leap play
  leap play --difficulty hard
  leap serve --ssh :2222
  leap sim --seed 42 --runs 5`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.leap/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(heroesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. fallback receives logs when no
// --log-file is given; the TUI passes io.Discard since it owns the terminal.
// The returned func closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "leap",
	})
	return logger, closeFn, nil
}

// loadGameConfig loads a config file, applies a difficulty preset and
// validates the result.
func loadGameConfig(path, difficulty string) (config.LeapConfig, error) {
	preset, ok := config.ParsePreset(difficulty)
	if !ok {
		return config.LeapConfig{}, fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", difficulty)
	}

	cfg, err := config.LoadLeap(path)
	if err != nil {
		return cfg, err
	}
	config.ApplyLeapPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newGame creates a game that logs through logger and plays sounds on sink.
func newGame(cfg config.LeapConfig, logger *log.Logger, sink leap.SoundSink) (*leap.Game, error) {
	return leap.New(cfg,
		leap.WithLogger(logger),
		leap.WithSoundSink(sink),
	)
}
