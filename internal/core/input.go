package core

// Action represents a semantic game action, abstracted from physical key
// presses. Input is edge-triggered: the platform dispatches one action per
// discrete press, and the simulation ignores actions it does not know.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotateLeft
	ActionRotateRight
	ActionPause
	ActionRestart // Platform-level: restart after game over
	ActionStart   // Platform-level: start from the menu
	ActionQuit    // Platform-level: exit the session
)

// String returns the canonical token name for the action, matching the
// names used in the controls section of the config file.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMoveLeft:
		return "move_left"
	case ActionMoveRight:
		return "move_right"
	case ActionSoftDrop:
		return "soft_drop"
	case ActionHardDrop:
		return "hard_drop"
	case ActionRotateLeft:
		return "rotate_left"
	case ActionRotateRight:
		return "rotate_right"
	case ActionPause:
		return "pause"
	case ActionRestart:
		return "restart"
	case ActionStart:
		return "start"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ParseAction resolves a token name to an Action. Unknown tokens map to
// ActionNone so stale config entries degrade to no-ops.
func ParseAction(token string) Action {
	switch token {
	case "move_left":
		return ActionMoveLeft
	case "move_right":
		return ActionMoveRight
	case "soft_drop":
		return ActionSoftDrop
	case "hard_drop":
		return ActionHardDrop
	case "rotate_left":
		return ActionRotateLeft
	case "rotate_right":
		return ActionRotateRight
	case "pause":
		return ActionPause
	case "restart":
		return ActionRestart
	case "start":
		return ActionStart
	case "quit":
		return ActionQuit
	default:
		return ActionNone
	}
}
