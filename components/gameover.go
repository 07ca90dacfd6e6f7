package components

import "github.com/yohamta/donburi"

// GameOverData stores the numbers the session ended with
type GameOverData struct {
	Stars     int
	MapNumber int
}

// GameOver is the component type for game over screen state
var GameOver = donburi.NewComponentType[GameOverData]()
