package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/leap-of-faith/internal/audio"
	"github.com/vovakirdan/leap-of-faith/internal/core"
	"github.com/vovakirdan/leap-of-faith/internal/platform/tui"
	"github.com/vovakirdan/leap-of-faith/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagVolume     float64
	flagMusic      float64
	flagHoldTicks  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start Leap of Faith in this terminal.

Controls:
  1/2/3        - Pick a hero
  Enter        - Go again with the last hero
  Left/A/H     - Move left
  Right/D/L    - Move right
  P            - Pause
  Tab          - Deepest runs (on hero select)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 hearts, fewer spikes, more hearts to find
  normal - The default shaft
  hard   - 2 hearts, more spikes, tiles arrive faster
  fixed  - Exactly the loaded config

Terminals report key presses but not releases, so a movement key counts
as held for --hold-ticks ticks after its first press, long enough to reach
the terminal's auto-repeat, and for a few ticks after each repeat. Lower
--hold-ticks for shorter taps if your terminal repeats quickly.

Examples:
  leap play
  leap play --difficulty hard
  leap play --config ./my-shaft.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", audio.DefaultConfig().Volume, "Sound volume from 0 to 1")
	playCmd.Flags().Float64Var(&flagMusic, "music", audio.DefaultConfig().Music, "Background music level relative to --volume, 0 turns it off")
	playCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Ticks a movement key stays held after its first press")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	audioCfg := audio.DefaultConfig()
	audioCfg.Volume = flagVolume
	audioCfg.Music = flagMusic
	sink, closeAudio := audio.Open(audioCfg, flagMute, logger)
	defer closeAudio()

	game, err := newGame(cfg, logger, sink)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	if width < cfg.Field.Width || height < cfg.Field.Height {
		logger.Warn("terminal smaller than the shaft", "width", width, "height", height)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	return tui.Run(game, store, rc, tui.Options{
		HoldTicks:  flagHoldTicks,
		Logger:     logger,
		Scoreboard: true,
	})
}
