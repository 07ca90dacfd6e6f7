package components

import (
	"context"

	"github.com/automoto/tilerunner/input"
	"github.com/automoto/tilerunner/sim"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// GameData holds the running simulation for the platformer scene (singleton component)
type GameData struct {
	Engine     *sim.Engine
	Dispatcher *input.Dispatcher
	Context    context.Context    // lifetime of the dispatch goroutine
	Cancel     context.CancelFunc // stops the dispatch goroutine
	Logger     *log.Logger

	// Values seen at the end of the previous frame, used to detect changes
	LastMap   int
	LastLives int
}

var Game = donburi.NewComponentType[GameData]()
