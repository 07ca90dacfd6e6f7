package entity

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPowerUp = errors.New("unknown power-up type")

// PowerUpType selects what happens when the player picks a power-up up.
type PowerUpType int

const (
	PowerUpStar  PowerUpType = iota // score
	PowerUpMusic                    // toggle music
	PowerUpGoal                     // next map
)

func (t PowerUpType) String() string {
	switch t {
	case PowerUpStar:
		return "star"
	case PowerUpMusic:
		return "music"
	case PowerUpGoal:
		return "goal"
	}
	return fmt.Sprintf("PowerUpType(%d)", int(t))
}

// ParsePowerUpType maps a level-file name to a power-up type, ignoring case.
func ParsePowerUpType(name string) (PowerUpType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "star":
		return PowerUpStar, nil
	case "music":
		return PowerUpMusic, nil
	case "goal":
		return PowerUpGoal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPowerUp, name)
}
