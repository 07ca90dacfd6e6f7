package entity

import (
	"fmt"

	cfg "github.com/automoto/tilerunner/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// State is the creature lifecycle. Transitions only move forward.
type State int

const (
	StateAlive State = iota
	StateDying
	StateDead
)

func (s State) String() string {
	switch s {
	case StateAlive:
		return "alive"
	case StateDying:
		return "dying"
	case StateDead:
		return "dead"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// deathFade fades a dying creature out over the configured die time. Its
// completion is what moves DYING to DEAD.
type deathFade struct {
	tween *gween.Tween
	alpha float32
}

func newDeathFade(durationMs float64) *deathFade {
	return &deathFade{
		tween: gween.New(1, 0, float32(durationMs), ease.Linear),
		alpha: 1,
	}
}

func (d *deathFade) update(elapsed float64) bool {
	var finished bool
	d.alpha, finished = d.tween.Update(float32(elapsed))
	return finished
}

// SetState moves a creature or player forward in its lifecycle. Backward or
// repeated transitions are ignored. Entering DYING stops the entity.
func (e *Entity) SetState(s State) {
	c := e.Creature
	if c == nil || s <= c.State {
		return
	}
	c.State = s
	c.StateTime = 0

	switch s {
	case StateDying:
		e.VX = 0
		e.VY = 0
		c.death = newDeathFade(cfg.Creature.DieTime)
	case StateDead:
		c.death = nil
	}
}

// Alpha returns the render opacity, 1 while alive and fading to 0 while
// dying.
func (e *Entity) Alpha() float64 {
	c := e.Creature
	if c == nil {
		return 1
	}
	switch c.State {
	case StateAlive:
		return 1
	case StateDying:
		if c.death != nil {
			return float64(c.death.alpha)
		}
		return 1
	}
	return 0
}
