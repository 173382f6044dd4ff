package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  26,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Floors descended in the current or last run
	Level    int  // Current floor counter (counts down to 0)
	Health   int  // Hero health, 0 outside a run
	InRun    bool // Whether a run is in progress (including its death delay)
	GameOver bool // Whether the last run has ended and the hero select is showing
	Won      bool // Whether the last run reached the bottom floor
	Paused   bool // Whether the game is paused
}

// RunSummary describes a finished run.
type RunSummary struct {
	Hero   string // Roster id of the hero
	Level  int    // Floor counter the run ended on
	Floors int    // Floors descended
	Won    bool   // Whether the bottom was reached
	Cause  string // What ended the run
	Ticks  int    // Simulation ticks the run lasted
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState

	// RunOver is set on exactly the tick a run ends.
	RunOver *RunSummary
}
