package components

import "github.com/yohamta/donburi/features/events"

// MusicChanged is published when the player picks up a music power-up.
type MusicChanged struct{}

// MapChanged is published when a different map becomes active.
type MapChanged struct {
	Number int
	Name   string
}

// PlayerDied is published when the player loses a life.
type PlayerDied struct {
	LivesLeft int
}

var (
	MusicChangedEvent = events.NewEventType[MusicChanged]()
	MapChangedEvent   = events.NewEventType[MapChanged]()
	PlayerDiedEvent   = events.NewEventType[PlayerDied]()
)
