package components

import (
	cfg "github.com/automoto/tilerunner/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// actions. Edges between the two are forwarded to the input dispatcher.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Dropped  int // events dropped because the dispatch queue was full
}

var Input = donburi.NewComponentType[InputData]()
