package systems

import (
	"github.com/automoto/tilerunner/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSimulation advances the engine by one frame and publishes map
// changes and deaths for the presentation systems.
func UpdateSimulation(e *ecs.ECS) {
	game, ok := getGame(e)
	if !ok || !game.Engine.Running() {
		return
	}

	game.Engine.Update(frameMillis())
	publishChanges(e, game)
}

func publishChanges(e *ecs.ECS, game *components.GameData) {
	stats := game.Engine.Stats()
	if stats.Lives < game.LastLives {
		components.PlayerDiedEvent.Publish(e.World, components.PlayerDied{LivesLeft: stats.Lives})
	}
	game.LastLives = stats.Lives

	if n := game.Engine.MapNumber(); n != game.LastMap {
		components.MapChangedEvent.Publish(e.World, components.MapChanged{
			Number: n,
			Name:   game.Engine.Map().Name(),
		})
		game.LastMap = n
	}
}

// ProcessEvents delivers the events published this frame. Runs after every
// system that publishes.
func ProcessEvents(e *ecs.ECS) {
	components.MusicChangedEvent.ProcessEvents(e.World)
	components.MapChangedEvent.ProcessEvents(e.World)
	components.PlayerDiedEvent.ProcessEvents(e.World)
}

// SubscribeEvents wires the presentation reactions to simulation events.
func SubscribeEvents(e *ecs.ECS) {
	components.MusicChangedEvent.Subscribe(e.World, OnMusicChanged)
	components.MapChangedEvent.Subscribe(e.World, OnMapChanged)
	components.PlayerDiedEvent.Subscribe(e.World, OnPlayerDied)
}
