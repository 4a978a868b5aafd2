package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a semantic control action, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionPause
	ActionRestart
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to control actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return ActionQuit
	case "p", " ":
		return ActionPause
	case "r":
		return ActionRestart
	}
	return ActionNone
}
