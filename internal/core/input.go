package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - move left (held)
	ActionRight          // Right arrow, D, L - move right (held)
	ActionSelect1        // 1 - pick first hero
	ActionSelect2        // 2 - pick second hero
	ActionSelect3        // 3 - pick third hero
	ActionConfirm        // Enter - confirm selection
	ActionBack           // B, Escape - go back
	ActionPause          // P - pause/unpause game
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect1:
		return "Select1"
	case ActionSelect2:
		return "Select2"
	case ActionSelect3:
		return "Select3"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// SelectIndex returns the zero-based roster slot for a selection action,
// or -1 for any other action.
func (a Action) SelectIndex() int {
	switch a {
	case ActionSelect1:
		return 0
	case ActionSelect2:
		return 1
	case ActionSelect3:
		return 2
	default:
		return -1
	}
}

// InputFrame represents the input state for a single simulation tick.
//
// Two kinds of input are carried: discrete presses that happened since the
// previous tick (Has), and actions that are currently held down (Held).
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	f.held[a] = true
}

// Held returns true if the action is held down during this frame.
func (f InputFrame) Held(a Action) bool {
	return f.held[a]
}

// Pressed returns the first selection action triggered this frame, if any.
func (f InputFrame) Pressed() (Action, bool) {
	for _, a := range []Action{ActionSelect1, ActionSelect2, ActionSelect3} {
		if f.Has(a) {
			return a, true
		}
	}
	return ActionNone, false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	for k, v := range f.held {
		c.held[k] = v
	}
	return c
}
