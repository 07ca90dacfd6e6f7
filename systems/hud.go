package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/fonts"
	"github.com/automoto/tilerunner/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

type hudLine struct {
	text  string
	x     int
	color color.RGBA
}

// DrawHUD renders the exit hint and the session counters along the top.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	game, ok := getGame(ecs)
	if !ok {
		return
	}
	face := fonts.HUD.Get()
	for _, l := range hudLines(game.Engine.Stats(), game.Engine.MapNumber()) {
		text.Draw(screen, l.text, face, l.x, cfg.HUD.TextY, l.color)
	}
}

func hudLines(stats sim.Stats, mapNumber int) []hudLine {
	return []hudLine{
		{"Press ESC for EXIT.", cfg.HUD.ExitX, cfg.HUD.ExitColor},
		{fmt.Sprintf("Coins: %d", stats.Stars), cfg.HUD.CoinsX, cfg.HUD.CoinsColor},
		{fmt.Sprintf("Lives: %d", stats.Lives), cfg.HUD.LivesX, cfg.HUD.LivesColor},
		{fmt.Sprintf("Home: %d", mapNumber), cfg.HUD.HomeX, cfg.HUD.HomeColor},
	}
}
