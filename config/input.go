package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionExit
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:      "none",
	ActionMoveLeft:  "moveLeft",
	ActionMoveRight: "moveRight",
	ActionJump:      "jump",
	ActionExit:      "exit",
}

// String returns the action name used by the input registry.
func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputBinding represents the keys and mouse buttons bound to an action.
// Keys press and release the action; a mouse click taps it.
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding

	// Buffered input events between the poller and the dispatch goroutine
	EventBuffer int
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		EventBuffer: 64,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			},
			ActionJump: {
				Keys:         []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionExit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}
