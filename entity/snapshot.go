package entity

// Snapshot is a read-only copy of what the renderer needs to draw an entity.
type Snapshot struct {
	ID          int
	Kind        Kind
	Type        string // creature type name, empty otherwise
	PowerUpType PowerUpType
	X, Y        float64
	Width       int
	Height      int
	State       State
	Alpha       float64
	Facing      int
}

func (e *Entity) Snapshot() Snapshot {
	s := Snapshot{
		ID:     e.ID,
		Kind:   e.Kind,
		X:      e.X,
		Y:      e.Y,
		Width:  e.Width,
		Height: e.Height,
		State:  e.State(),
		Alpha:  e.Alpha(),
		Facing: e.Facing,
	}
	if e.Kind == KindCreature {
		s.Type = e.Creature.Type
	}
	if e.PowerUp != nil {
		s.PowerUpType = e.PowerUp.Type
	}
	return s
}
