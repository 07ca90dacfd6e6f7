package systems

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/input"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestInputEdges(t *testing.T) {
	var prev, cur [cfg.ActionCount]bool
	assert.Empty(t, inputEdges(prev, cur))

	cur[cfg.ActionJump] = true
	cur[cfg.ActionMoveLeft] = true
	assert.Equal(t, []input.Event{
		{Action: "moveLeft", Kind: input.EventPress},
		{Action: "jump", Kind: input.EventPress},
	}, inputEdges(prev, cur))

	// Held keys produce nothing
	assert.Empty(t, inputEdges(cur, cur))

	next := cur
	next[cfg.ActionMoveLeft] = false
	assert.Equal(t, []input.Event{
		{Action: "moveLeft", Kind: input.EventRelease},
	}, inputEdges(cur, next))
}

func TestInputEdgesIgnoresNone(t *testing.T) {
	var prev, cur [cfg.ActionCount]bool
	cur[cfg.ActionNone] = true
	assert.Empty(t, inputEdges(prev, cur))
}

// fullQueue returns a game whose dispatcher queue holds one press and has no
// room for more.
func fullQueue(ctx context.Context) (*components.GameData, *input.Action) {
	reg := input.NewRegistry()
	left := reg.Register(cfg.ActionMoveLeft.String(), input.Normal)
	d := input.NewDispatcher(reg, 1, log.New(io.Discard))
	d.Events() <- input.Event{Action: left.Name(), Kind: input.EventPress}
	return &components.GameData{Dispatcher: d, Context: ctx}, left
}

func TestSendInputDropsPressWhenFull(t *testing.T) {
	game, left := fullQueue(context.Background())
	state := &components.InputData{}

	sendInput(game, state, input.Event{Action: left.Name(), Kind: input.EventPress})
	sendInput(game, state, input.Event{Action: left.Name(), Kind: input.EventTap})
	assert.Equal(t, 2, state.Dropped)
}

func TestSendInputWaitsToDeliverRelease(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	game, left := fullQueue(ctx)
	state := &components.InputData{}

	go game.Dispatcher.Run(ctx)
	sendInput(game, state, input.Event{Action: left.Name(), Kind: input.EventRelease})

	assert.Zero(t, state.Dropped)
	assert.Eventually(t, func() bool {
		return left.State() == input.Released
	}, time.Second, time.Millisecond)
}

func TestSendInputDropsReleaseAfterShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	game, left := fullQueue(ctx)
	state := &components.InputData{}

	sendInput(game, state, input.Event{Action: left.Name(), Kind: input.EventRelease})
	assert.Equal(t, 1, state.Dropped)
}
