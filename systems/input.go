package systems

import (
	"github.com/automoto/tilerunner/archetypes"
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard and mouse and forwards edges to the input
// dispatcher. Must run BEFORE UpdateSimulation in the system order.
func UpdateInput(e *ecs.ECS) {
	game, ok := getGame(e)
	if !ok {
		return
	}
	state := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	state.Previous = state.Current
	state.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				state.Current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if inpututil.IsMouseButtonJustPressed(btn) {
				sendInput(game, state, input.Event{Action: actionID.String(), Kind: input.EventTap})
			}
		}
	}

	for _, ev := range inputEdges(state.Previous, state.Current) {
		sendInput(game, state, ev)
	}
}

// inputEdges converts the difference between two frames into press and
// release events, in action order.
func inputEdges(prev, cur [cfg.ActionCount]bool) []input.Event {
	var events []input.Event
	for id := cfg.ActionNone + 1; id < cfg.ActionCount; id++ {
		switch {
		case cur[id] && !prev[id]:
			events = append(events, input.Event{Action: id.String(), Kind: input.EventPress})
		case !cur[id] && prev[id]:
			events = append(events, input.Event{Action: id.String(), Kind: input.EventRelease})
		}
	}
	return events
}

// sendInput queues an event without blocking the frame. A full queue drops
// presses and taps. Releases wait for the dispatcher instead, since the edge
// is never seen again and the action would stay pressed.
func sendInput(game *components.GameData, state *components.InputData, ev input.Event) {
	select {
	case game.Dispatcher.Events() <- ev:
		return
	default:
	}

	if ev.Kind == input.EventRelease && game.Context != nil {
		if err := game.Dispatcher.Send(game.Context, ev); err == nil {
			return
		}
	}
	state.Dropped++
	logger.Warn("input queue full, dropping event", "action", ev.Action, "kind", ev.Kind)
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = archetypes.Input.Spawn(e)
	}
	return components.Input.Get(entry)
}
