package input

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

// EventKind is the kind of raw input edge.
type EventKind int

const (
	EventPress EventKind = iota
	EventRelease
	EventTap
)

func (k EventKind) String() string {
	switch k {
	case EventPress:
		return "press"
	case EventRelease:
		return "release"
	case EventTap:
		return "tap"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a raw input edge addressed to a named action.
type Event struct {
	Action string
	Kind   EventKind
	Amount int // press amount; zero means 1
}

// Dispatcher applies input events to a registry from its own goroutine, so
// the poller never touches action state directly.
type Dispatcher struct {
	registry *Registry
	events   chan Event
	logger   *log.Logger
}

// NewDispatcher creates a dispatcher with a buffered event queue.
func NewDispatcher(registry *Registry, buffer int, logger *log.Logger) *Dispatcher {
	if buffer < 0 {
		buffer = 0
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{
		registry: registry,
		events:   make(chan Event, buffer),
		logger:   logger.WithPrefix("input"),
	}
}

// Events exposes the queue for pollers that manage their own blocking.
func (d *Dispatcher) Events() chan<- Event {
	return d.events
}

// Send queues an event, blocking until it is accepted or ctx is done.
func (d *Dispatcher) Send(ctx context.Context, ev Event) error {
	select {
	case d.events <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run applies queued events until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-d.events:
			d.Apply(ev)
		}
	}
}

// Apply applies a single event to the registry.
func (d *Dispatcher) Apply(ev Event) {
	if _, ok := d.registry.Get(ev.Action); !ok {
		d.logger.Debug("event for unknown action", "action", ev.Action, "kind", ev.Kind)
		return
	}

	switch ev.Kind {
	case EventPress:
		amount := ev.Amount
		if amount == 0 {
			amount = 1
		}
		d.registry.Press(ev.Action, amount)
	case EventRelease:
		d.registry.Release(ev.Action)
	case EventTap:
		d.registry.Tap(ev.Action)
	}
}
