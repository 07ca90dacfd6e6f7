package archetypes

import (
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Game = newArchetype(
		tags.Game,
		components.Game,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	GameOver = newArchetype(
		tags.GameOver,
		components.GameOver,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

// SpawnInWorld creates the archetype directly in a world, for code that only
// has the world (event subscribers).
func (a *archetype) SpawnInWorld(w donburi.World) *donburi.Entry {
	return w.Entry(w.Create(a.components...))
}
