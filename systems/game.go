package systems

import (
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var logger = log.Default().WithPrefix("systems")

// SetLogger replaces the logger used by the scene systems.
func SetLogger(l *log.Logger) {
	logger = l.WithPrefix("systems")
}

func getGame(e *ecs.ECS) (*components.GameData, bool) {
	return getGameInWorld(e.World)
}

func getGameInWorld(w donburi.World) (*components.GameData, bool) {
	entry, ok := components.Game.First(w)
	if !ok {
		return nil, false
	}
	game := components.Game.Get(entry)
	if game.Engine == nil {
		return nil, false
	}
	return game, true
}

// frameMillis is the simulated time per frame.
func frameMillis() float64 {
	return 1000 / float64(cfg.C.TPS)
}
