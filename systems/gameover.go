package systems

import (
	"fmt"

	"github.com/automoto/tilerunner/archetypes"
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	gameOverTitleY = 200
	gameOverStatsY = 260
)

// DrawGameOver renders the game over background, title and final numbers.
// The buttons are drawn by the game over UI on top.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := cfg.GameOver.Title
	tw := text.BoundString(titleFont, title).Dx()
	text.Draw(screen, title, titleFont, (width-tw)/2, gameOverTitleY, cfg.GameOver.TitleColor)

	bodyFont := fonts.Body.Get()
	summary := gameOverSummary(gameOver)
	sw := text.BoundString(bodyFont, summary).Dx()
	text.Draw(screen, summary, bodyFont, (width-sw)/2, gameOverStatsY, cfg.GameOver.TextColor)
}

func gameOverSummary(g *components.GameOverData) string {
	return fmt.Sprintf("Reached home %d with %d coins", g.MapNumber, g.Stars)
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		entry = archetypes.GameOver.Spawn(e)
	}
	return components.GameOver.Get(entry)
}
