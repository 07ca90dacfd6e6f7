package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/systems"
	"github.com/automoto/tilerunner/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	platformer   *PlatformerScene
	gameOverUI   *ui.GameOverUI
	final        components.GameOverData
	once         sync.Once

	shouldRestart bool
	shouldQuit    bool
}

// NewGameOverScene creates a new game over scene. Restart resumes the
// platformer scene with a fresh session.
func NewGameOverScene(sc SceneChanger, platformer *PlatformerScene, stars, mapNumber int) *GameOverScene {
	return &GameOverScene{
		sceneChanger: sc,
		platformer:   platformer,
		final:        components.GameOverData{Stars: stars, MapNumber: mapNumber},
	}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
	if gs.gameOverUI != nil {
		gs.gameOverUI.Update()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		gs.shouldRestart = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		gs.shouldQuit = true
	}

	switch {
	case gs.shouldRestart:
		gs.shouldRestart = false
		if err := gs.platformer.Restart(); err != nil {
			gs.platformer.logger.Error("could not restart", "error", err)
			gs.quit()
		}
	case gs.shouldQuit:
		gs.quit()
	}
}

func (gs *GameOverScene) quit() {
	gs.platformer.Close()
	gs.sceneChanger.Quit()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
	if gs.gameOverUI != nil {
		gs.gameOverUI.UI.Draw(screen)
	}
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	*systems.GetOrCreateGameOver(gs.ecs) = gs.final

	gui, err := ui.NewGameOverUI(
		func() { gs.shouldRestart = true },
		func() { gs.shouldQuit = true },
	)
	if err != nil {
		gs.platformer.logger.Warn("could not build game over buttons, use Enter or Escape", "error", err)
	}
	gs.gameOverUI = gui

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
}
