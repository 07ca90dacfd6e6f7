package input

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryUnknownNamesAreNoops(t *testing.T) {
	r := NewRegistry()
	assert.NotPanics(t, func() {
		r.Press("missing", 1)
		r.Release("missing")
		r.Tap("missing")
	})
	_, ok := r.Get("missing")
	assert.False(t, ok)
}

func TestRegistryRegisterIsIdempotent(t *testing.T) {
	r := NewRegistry()
	first := r.Register("jump", DetectInitialPressOnly)
	second := r.Register("jump", Normal)
	assert.Same(t, first, second)
	assert.Equal(t, DetectInitialPressOnly, second.Behavior())
	assert.Equal(t, []string{"jump"}, r.Names())
}

func TestRegistryResetAll(t *testing.T) {
	r := NewRegistry()
	left := r.Register("moveLeft", Normal)
	jump := r.Register("jump", DetectInitialPressOnly)
	r.Press("moveLeft", 1)
	r.Press("jump", 1)

	r.ResetAll()
	assert.Equal(t, 0, left.Amount())
	assert.Equal(t, 0, jump.Amount())
}

func TestDispatcherApply(t *testing.T) {
	r := NewRegistry()
	jump := r.Register("jump", DetectInitialPressOnly)
	d := NewDispatcher(r, 0, log.New(io.Discard))

	d.Apply(Event{Action: "jump", Kind: EventPress})
	assert.Equal(t, Pressed, jump.State())
	d.Apply(Event{Action: "jump", Kind: EventRelease})
	assert.Equal(t, 1, jump.Amount())

	d.Apply(Event{Action: "jump", Kind: EventTap})
	assert.True(t, jump.IsPressed())

	d.Apply(Event{Action: "jump", Kind: EventPress, Amount: 3})
	assert.Equal(t, 3, jump.Amount())

	assert.NotPanics(t, func() {
		d.Apply(Event{Action: "missing", Kind: EventPress})
	})
}

func TestDispatcherRunAppliesQueuedEvents(t *testing.T) {
	r := NewRegistry()
	left := r.Register("moveLeft", Normal)
	d := NewDispatcher(r, 4, log.New(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()

	require.NoError(t, d.Send(ctx, Event{Action: "moveLeft", Kind: EventPress}))
	assert.Eventually(t, func() bool {
		return left.State() == Pressed
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop")
	}
}

func TestDispatcherSendHonorsContext(t *testing.T) {
	d := NewDispatcher(NewRegistry(), 0, log.New(io.Discard))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := d.Send(ctx, Event{Action: "jump", Kind: EventTap})
	assert.ErrorIs(t, err, context.Canceled)
}
