package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/leap-of-faith/internal/core"
)

// Terminals report presses and auto-repeat but no releases, so holding a
// movement key is approximated by a latch that each key event renews.
const (
	// DefaultHoldTicks is the latch set by the first press of a movement
	// key. It outlasts the usual 250-500 ms delay before auto-repeat
	// starts, so a held key moves the hero without a pause.
	DefaultHoldTicks = 30

	// RepeatTicks is the latch set by each auto-repeat once a key is
	// already held. Repeats arrive every 30-50 ms, so the hero stops
	// soon after the key is let go.
	RepeatTicks = 8
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	holdTicks   int
	repeatTicks int
	held        map[core.Action]int // Ticks left on each movement latch
}

// NewKeyMapper creates a key mapper. holdTicks <= 0 uses DefaultHoldTicks.
func NewKeyMapper(holdTicks int) *KeyMapper {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyMapper{
		holdTicks:   holdTicks,
		repeatTicks: min(RepeatTicks, holdTicks),
		held:        make(map[core.Action]int),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "1":
		return core.ActionSelect1, false
	case "2":
		return core.ActionSelect2, false
	case "3":
		return core.ActionSelect3, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame records a key message. Movement keys renew their latch
// and cancel the opposite direction; everything else is a one-tick press.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionLeft:
		km.renew(core.ActionLeft)
		delete(km.held, core.ActionRight)
	case core.ActionRight:
		km.renew(core.ActionRight)
		delete(km.held, core.ActionLeft)
	default:
		frame.Set(action)
	}
	return isQuit
}

// renew latches a movement action: the full hold on a fresh press, the
// shorter repeat latch while the key is already held.
func (km *KeyMapper) renew(a core.Action) {
	left, held := km.held[a]
	if !held {
		km.held[a] = km.holdTicks
		return
	}
	km.held[a] = max(left, km.repeatTicks)
}

// Latch marks every latched movement action as held on frame and counts
// the latches down by one tick.
func (km *KeyMapper) Latch(frame *core.InputFrame) {
	for a, left := range km.held {
		frame.Hold(a)
		if left <= 1 {
			delete(km.held, a)
		} else {
			km.held[a] = left - 1
		}
	}
}

// Release drops every movement latch.
func (km *KeyMapper) Release() {
	clear(km.held)
}
