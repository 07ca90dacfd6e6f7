// Package entity holds the tagged-variant model for everything that moves or
// can be picked up on a tile map: the player, creatures and power-ups.
package entity

import (
	"errors"
	"fmt"
	"math"

	cfg "github.com/automoto/tilerunner/config"
)

var ErrUnknownCreature = errors.New("unknown creature type")

// Kind discriminates the entity variants.
type Kind int

const (
	KindPlayer Kind = iota
	KindCreature
	KindPowerUp
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindCreature:
		return "creature"
	case KindPowerUp:
		return "powerup"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// CreatureData is carried by players and creatures.
type CreatureData struct {
	Type      string
	State     State
	StateTime float64 // ms spent in the current state
	MaxSpeed  float64
	Flying    bool

	death *deathFade
}

// PlayerData is carried by the player only.
type PlayerData struct {
	OnGround  bool
	JumpSpeed float64
}

// PowerUpData is carried by power-ups only.
type PowerUpData struct {
	Type PowerUpType
}

// Entity is a sprite on the tile map. Positions are pixels, velocities are
// pixels per millisecond.
type Entity struct {
	ID     int
	Kind   Kind
	X, Y   float64
	VX, VY float64
	Width  int
	Height int
	Facing int // -1 left, 1 right

	Creature *CreatureData
	Player   *PlayerData
	PowerUp  *PowerUpData
}

// NewPlayer creates an alive player with the configured size and speeds.
func NewPlayer(x, y float64) *Entity {
	return &Entity{
		Kind:   KindPlayer,
		X:      x,
		Y:      y,
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
		Facing: 1,
		Creature: &CreatureData{
			Type:     "player",
			MaxSpeed: cfg.Player.MaxSpeed,
		},
		Player: &PlayerData{
			JumpSpeed: cfg.Player.JumpSpeed,
		},
	}
}

// NewCreature creates an idle creature of a configured type.
func NewCreature(typeName string, x, y float64) (*Entity, error) {
	t, ok := cfg.CreatureType(typeName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCreature, typeName)
	}
	return &Entity{
		Kind:   KindCreature,
		X:      x,
		Y:      y,
		Width:  t.Width,
		Height: t.Height,
		Facing: -1,
		Creature: &CreatureData{
			Type:     typeName,
			MaxSpeed: t.MaxSpeed,
			Flying:   t.Flying,
		},
	}, nil
}

func NewPowerUp(t PowerUpType, x, y float64) *Entity {
	return &Entity{
		Kind:    KindPowerUp,
		X:       x,
		Y:       y,
		Width:   cfg.PowerUp.Width,
		Height:  cfg.PowerUp.Height,
		Facing:  1,
		PowerUp: &PowerUpData{Type: t},
	}
}

// IsCreature reports whether the entity has a lifecycle (players included).
func (e *Entity) IsCreature() bool {
	return e.Creature != nil
}

func (e *Entity) IsPlayer() bool {
	return e.Kind == KindPlayer
}

func (e *Entity) IsPowerUp() bool {
	return e.Kind == KindPowerUp
}

// State returns the lifecycle state. Power-ups are always alive.
func (e *Entity) State() State {
	if e.Creature == nil {
		return StateAlive
	}
	return e.Creature.State
}

func (e *Entity) IsAlive() bool {
	return e.State() == StateAlive
}

// IsFlying reports whether gravity is skipped. A flyer only flies while
// alive, so a dying fly drops.
func (e *Entity) IsFlying() bool {
	switch e.Kind {
	case KindCreature:
		return e.Creature.Flying && e.Creature.State == StateAlive
	}
	return false
}

func (e *Entity) MaxSpeed() float64 {
	if e.Creature == nil {
		return 0
	}
	return e.Creature.MaxSpeed
}

// SetX moves the entity horizontally.
func (e *Entity) SetX(x float64) {
	e.X = x
}

// SetY moves the entity vertically. A player moving down by at least one
// whole pixel is no longer on the ground.
func (e *Entity) SetY(y float64) {
	if e.Kind == KindPlayer && roundPixel(y) > roundPixel(e.Y) {
		e.Player.OnGround = false
	}
	e.Y = y
}

// CollideHorizontal is called after the entity was stopped by a wall.
func (e *Entity) CollideHorizontal() {
	switch e.Kind {
	case KindPlayer:
		e.VX = 0
	case KindCreature:
		e.VX = -e.VX
	}
}

// CollideVertical is called after the entity was stopped by a floor or
// ceiling.
func (e *Entity) CollideVertical() {
	switch e.Kind {
	case KindPlayer:
		if e.VY > 0 {
			e.Player.OnGround = true
		}
		e.VY = 0
	case KindCreature:
		e.VY = 0
	}
}

// Jump makes the player jump if it is on the ground or force is set. The
// forced jump is the bounce after landing on a creature.
func (e *Entity) Jump(force bool) {
	if e.Kind != KindPlayer {
		return
	}
	if e.Player.OnGround || force {
		e.Player.OnGround = false
		e.VY = e.Player.JumpSpeed
	}
}

// WakeUp starts an idle creature walking left.
func (e *Entity) WakeUp() {
	if e.Kind != KindCreature {
		return
	}
	if e.Creature.State == StateAlive && e.VX == 0 {
		e.VX = -e.Creature.MaxSpeed
	}
}

// Update advances timers by elapsed milliseconds.
func (e *Entity) Update(elapsed float64) {
	if e.VX < 0 {
		e.Facing = -1
	} else if e.VX > 0 {
		e.Facing = 1
	}

	c := e.Creature
	if c == nil {
		return
	}
	c.StateTime += elapsed
	if c.State == StateDying && c.death != nil {
		if c.death.update(elapsed) {
			e.SetState(StateDead)
		}
	}
}

// Bounds returns the rounded integer bounding box used for overlap tests.
func (e *Entity) Bounds() (x, y, w, h int) {
	return roundPixel(e.X), roundPixel(e.Y), e.Width, e.Height
}

// roundPixel rounds half up, so -0.5 and 0.5 land on 0 and 1.
func roundPixel(v float64) int {
	return int(math.Floor(v + 0.5))
}
