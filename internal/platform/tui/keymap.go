package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termtris/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// Bindings come from the controls section of the config file; a few keys
// are hardwired so the game stays controllable with a broken config.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a key mapper from config bindings.
func NewKeyMapper(bindings map[string]core.Action) *KeyMapper {
	return &KeyMapper{bindings: bindings}
}

// MapKey translates a key message to an action. Unbound keys map to
// ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	key := msg.String()

	// ctrl+c always quits, regardless of config
	if key == "ctrl+c" {
		return core.ActionQuit
	}

	if action, ok := km.bindings[key]; ok {
		return action
	}

	// Menu and game-over flow keys are not configurable
	switch key {
	case "enter":
		return core.ActionStart
	case "r":
		return core.ActionRestart
	}

	return core.ActionNone
}
