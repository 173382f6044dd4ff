package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/leap-of-faith/internal/core"
	"github.com/vovakirdan/leap-of-faith/internal/registry"
	"github.com/vovakirdan/leap-of-faith/internal/storage"
)

// Options tunes a Model.
type Options struct {
	HoldTicks  int         // Movement latch length, see KeyMapper
	Logger     *log.Logger // Run results and storage errors
	Painter    *Painter    // nil paints for the local terminal
	Scoreboard bool        // Tab opens the leaderboard from hero select
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	input    core.InputFrame
	keys     *KeyMapper
	painter  *Painter
	logger   *log.Logger
	state    core.GameState
	scores   *ScoreboardModel // Open leaderboard, nil while playing
	opts     Options
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	painter := opts.Painter
	if painter == nil {
		painter = NewPainter(nil)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		config:  cfg,
		input:   core.NewInputFrame(),
		keys:    NewKeyMapper(opts.HoldTicks),
		painter: painter,
		logger:  logger,
		opts:    opts,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scores != nil {
			return m.handleScoreboardKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if m.scores != nil {
			sb, _ := m.scores.Update(msg)
			*m.scores = sb.(ScoreboardModel)
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input during play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "tab":
		if m.opts.Scoreboard && !m.state.InRun {
			sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
			m.scores = &sb
			m.keys.Release()
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleScoreboardKey routes keys to the open leaderboard. Closing it
// returns to the game instead of ending the program.
func (m Model) handleScoreboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sb, cmd := m.scores.Update(msg)
	next := sb.(ScoreboardModel)
	switch {
	case next.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case next.IsGoingBack():
		m.scores = nil
		return m, nil
	}
	m.scores = &next
	return m, cmd
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.keys.Latch(&m.input)
	result := m.game.Step(m.input)
	m.state = result.State

	if result.RunOver != nil {
		m.saveRun(*result.RunOver)
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records a finished run. Storage failures never stop the game.
func (m Model) saveRun(run core.RunSummary) {
	m.logger.Info("run finished",
		"hero", run.Hero,
		"floors", run.Floors,
		"won", run.Won,
		"cause", run.Cause)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(storage.RecordFromSummary(run, m.config.Seed)); err != nil {
		m.logger.Error("cannot save run", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".leap", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	m.game.Render(m.screen)
	return m.painter.Paint(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
