package tags

import "github.com/yohamta/donburi"

var (
	Game     = donburi.NewTag().SetName("Game")
	Camera   = donburi.NewTag().SetName("Camera")
	GameOver = donburi.NewTag().SetName("GameOver")
)

// Resolv tags for tile solidity
const (
	ResolvSolid = "solid"
)
