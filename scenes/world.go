package scenes

import (
	"context"
	"image/color"
	"sync"

	"github.com/automoto/tilerunner/archetypes"
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/input"
	"github.com/automoto/tilerunner/sim"
	"github.com/automoto/tilerunner/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger switches scenes and ends the game loop
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// PlatformerScene runs the simulation and draws the active map. The engine
// and its input dispatcher live as long as the scene, across game overs.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	loader       sim.MapLoader
	logger       *log.Logger
	once         sync.Once
}

// NewPlatformerScene creates a platformer scene that plays the loader's maps
func NewPlatformerScene(sc SceneChanger, loader sim.MapLoader, logger *log.Logger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, loader: loader, logger: logger}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	if ps.ecs == nil {
		return
	}
	ps.ecs.Update()

	game := ps.game()
	if game.Engine.Running() {
		return
	}
	if game.Engine.Stats().Lives > 0 {
		// Exit requested
		ps.Close()
		ps.sceneChanger.Quit()
		return
	}
	ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, ps, game.Engine.Stats().Stars, game.Engine.MapNumber()))
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	registry := input.NewRegistry()
	dispatcher := input.NewDispatcher(registry, cfg.Input.EventBuffer, ps.logger)

	world := donburi.NewWorld()
	engine, err := sim.New(sim.Options{
		Loader:   ps.loader,
		Registry: registry,
		Logger:   ps.logger,
		Music: sim.MusicFunc(func() {
			components.MusicChangedEvent.Publish(world, components.MusicChanged{})
		}),
	})
	if err != nil {
		ps.logger.Error("could not start game", "error", err)
		ps.sceneChanger.Quit()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	go dispatcher.Run(ctx)

	e := ecs.NewECS(world)
	entry := archetypes.Game.Spawn(e)
	components.Game.SetValue(entry, components.GameData{
		Engine:     engine,
		Dispatcher: dispatcher,
		Context:    ctx,
		Cancel:     cancel,
		Logger:     ps.logger,
		LastMap:    engine.MapNumber(),
		LastLives:  engine.Stats().Lives,
	})

	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSimulation)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.ProcessEvents)
	systems.SubscribeEvents(e)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.LayerHUD, systems.DrawHUD)

	ps.ecs = e
	systems.PlayTrack(e, 0)
	ps.logger.Info("game started", "map", engine.Map().Name(), "lives", engine.Stats().Lives)
}

func (ps *PlatformerScene) game() *components.GameData {
	entry, _ := components.Game.First(ps.ecs.World)
	return components.Game.Get(entry)
}

// Restart begins a new session and resumes this scene.
func (ps *PlatformerScene) Restart() error {
	game := ps.game()
	if err := game.Engine.Restart(); err != nil {
		return err
	}
	game.LastMap = game.Engine.MapNumber()
	game.LastLives = game.Engine.Stats().Lives
	systems.FadeOutMusic(ps.ecs)
	ps.sceneChanger.ChangeScene(ps)
	return nil
}

// Close stops the music and the input dispatcher.
func (ps *PlatformerScene) Close() {
	if ps.ecs == nil {
		return
	}
	systems.StopMusic(ps.ecs)
	if game := ps.game(); game.Cancel != nil {
		game.Cancel()
		game.Cancel = nil
	}
}
