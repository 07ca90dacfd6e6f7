package sim

import (
	"errors"
	"io"
	"testing"

	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/entity"
	"github.com/automoto/tilerunner/input"
	"github.com/automoto/tilerunner/tilemap"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 16.0

// flat is a 64px-tile level with the player standing on a floor at y=192.
// The player spawns at x=72, y=130.
var flat = tilemap.Layout{Name: "flat", Rows: []string{
	"        ",
	"        ",
	" P      ",
	"########",
}}

var second = tilemap.Layout{Name: "second", Rows: []string{
	"        ",
	"      P ",
	"########",
}}

func newEngine(t *testing.T, opts Options, layouts ...tilemap.Layout) *Engine {
	t.Helper()
	if len(layouts) == 0 {
		layouts = []tilemap.Layout{flat}
	}
	if opts.Loader == nil {
		l, err := tilemap.NewLayoutLoader(64, layouts, log.New(io.Discard))
		require.NoError(t, err)
		opts.Loader = l
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	g, err := New(opts)
	require.NoError(t, err)
	return g
}

func addCreature(t *testing.T, g *Engine, typeName string, x, y float64) *entity.Entity {
	t.Helper()
	e, err := entity.NewCreature(typeName, x, y)
	require.NoError(t, err)
	g.Map().Add(e)
	return e
}

func TestNewRequiresLoader(t *testing.T) {
	_, err := New(Options{})
	assert.ErrorIs(t, err, ErrNoMap)
}

func TestNewFailsWhenFirstMapFails(t *testing.T) {
	_, err := New(Options{Loader: &failingLoader{}, Logger: log.New(io.Discard)})
	assert.ErrorIs(t, err, ErrNoMap)
}

func TestNewRegistersActions(t *testing.T) {
	g := newEngine(t, Options{})
	assert.Equal(t, []string{"exit", "jump", "moveLeft", "moveRight"}, g.Registry().Names())

	jump, ok := g.Registry().Get("jump")
	require.True(t, ok)
	assert.Equal(t, input.DetectInitialPressOnly, jump.Behavior())
	left, ok := g.Registry().Get("moveLeft")
	require.True(t, ok)
	assert.Equal(t, input.Normal, left.Behavior())
}

// settle runs ticks until the player reports ground contact. A resting
// player alternates between a sub-pixel drop and landing, so ground contact
// holds on every other tick.
func settle(t *testing.T, g *Engine) {
	t.Helper()
	p := g.Map().Player()
	for i := 0; i < 200; i++ {
		g.Update(tick)
		if p.Player.OnGround {
			return
		}
	}
	t.Fatal("player never landed")
}

func TestPlayerLandsOnFloor(t *testing.T) {
	g := newEngine(t, Options{})
	p := g.Map().Player()

	settle(t, g)
	assert.Equal(t, 130.0, p.Y)
	assert.Zero(t, p.VY)

	for i := 0; i < 10; i++ {
		g.Update(tick)
	}
	assert.Equal(t, 130.0, p.Y)
	assert.True(t, p.Player.OnGround)
}

func TestMoveAndJump(t *testing.T) {
	g := newEngine(t, Options{})
	p := g.Map().Player()
	settle(t, g)

	g.Registry().Press("moveRight", 1)
	g.Update(tick)
	assert.Equal(t, cfg.Player.MaxSpeed, p.VX)
	assert.InDelta(t, 72+cfg.Player.MaxSpeed*tick, p.X, 1e-9)

	g.Registry().Release("moveRight")
	g.Update(tick) // one-shot read after release
	g.Update(tick)
	assert.Zero(t, p.VX)

	settle(t, g)
	g.Registry().Tap("jump")
	g.Update(tick)
	assert.Less(t, p.VY, 0.0)
	assert.Less(t, p.Y, 130.0)
}

func TestHeldJumpFiresOnce(t *testing.T) {
	g := newEngine(t, Options{})
	p := g.Map().Player()
	settle(t, g)

	g.Registry().Press("jump", 1)
	g.Update(tick)
	require.Less(t, p.VY, 0.0)

	// Land again while still holding jump.
	settle(t, g)
	g.Update(tick)
	assert.GreaterOrEqual(t, p.VY, 0.0, "held jump does not repeat")
	assert.Equal(t, input.WaitingForRelease, mustAction(t, g, "jump").State())
}

func mustAction(t *testing.T, g *Engine, name string) *input.Action {
	t.Helper()
	a, ok := g.Registry().Get(name)
	require.True(t, ok)
	return a
}

func TestExitStopsSession(t *testing.T) {
	g := newEngine(t, Options{})
	g.Registry().Tap("exit")
	g.Update(tick)
	assert.False(t, g.Running())

	p := g.Map().Player()
	y := p.Y
	g.Update(tick)
	assert.Equal(t, y, p.Y, "stopped engine does nothing")
}

func TestDescendingOntoCreatureKillsIt(t *testing.T) {
	g := newEngine(t, Options{})
	p := g.Map().Player()
	grub := addCreature(t, g, cfg.CreatureGrub, 72, 152)

	p.Y = 88
	p.VY = 0.3
	g.Update(tick)

	assert.Equal(t, entity.StateDying, grub.State())
	assert.True(t, p.IsAlive())
	assert.Equal(t, cfg.Player.JumpSpeed, p.VY, "bounce")
	assert.Equal(t, 90.0, p.Y, "snapped on top of the creature")
	assert.Equal(t, cfg.Session.StartingLives, g.Stats().Lives)
}

func TestSideContactKillsPlayer(t *testing.T) {
	g := newEngine(t, Options{})
	p := g.Map().Player()
	grub := addCreature(t, g, cfg.CreatureGrub, 110, 152)

	g.Update(tick)

	assert.Equal(t, entity.StateDying, p.State())
	assert.True(t, grub.IsAlive())
	assert.Equal(t, cfg.Session.StartingLives-1, g.Stats().Lives)
	assert.True(t, g.Running())
}

func TestRisingIntoCreatureKillsPlayer(t *testing.T) {
	g := newEngine(t, Options{})
	p := g.Map().Player()
	fly := addCreature(t, g, cfg.CreatureFly, 72, 40)

	p.Y = 80
	p.VY = -0.5
	g.Update(tick)

	assert.Equal(t, entity.StateDying, p.State())
	assert.True(t, fly.IsAlive())
}

func TestLastLifeStopsSession(t *testing.T) {
	g := newEngine(t, Options{Session: NewSession(1, 100)})
	addCreature(t, g, cfg.CreatureGrub, 110, 152)

	g.Update(tick)
	assert.Equal(t, 0, g.Stats().Lives)
	assert.False(t, g.Running())
}

func TestDeadPlayerReloadsMap(t *testing.T) {
	g := newEngine(t, Options{})
	old := g.Map()
	p := old.Player()
	g.Registry().Press("moveRight", 1)
	p.SetState(entity.StateDying)
	p.SetState(entity.StateDead)

	g.Update(tick)
	require.NotSame(t, old, g.Map())
	assert.Equal(t, "flat", g.Map().Name())
	assert.True(t, g.Map().Player().IsAlive())
	assert.Equal(t, 72.0, g.Map().Player().X, "reload tick does not move anything")
}

func TestDyingPlayerBecomesDeadThenReloads(t *testing.T) {
	g := newEngine(t, Options{})
	old := g.Map()
	addCreature(t, g, cfg.CreatureGrub, 110, 152)

	g.Update(tick)
	require.Equal(t, entity.StateDying, old.Player().State())

	for i := 0; i < 100 && g.Map() == old; i++ {
		g.Update(tick)
	}
	assert.NotSame(t, old, g.Map())
	assert.Equal(t, cfg.Session.StartingLives-1, g.Stats().Lives, "reload keeps the session")
}

func TestDeadCreatureIsPruned(t *testing.T) {
	g := newEngine(t, Options{})
	p := g.Map().Player()
	grub := addCreature(t, g, cfg.CreatureGrub, 110, 152)
	grub.SetState(entity.StateDead)

	g.Update(tick)
	assert.Zero(t, g.Map().Len())
	assert.True(t, p.IsAlive())
	assert.Nil(t, FindCollision(g.Map(), p))
}

func TestStarPickup(t *testing.T) {
	g := newEngine(t, Options{})
	star := entity.NewPowerUp(entity.PowerUpStar, 80, 140)
	g.Map().Add(star)

	g.Update(tick)
	assert.Equal(t, 1, g.Stats().Stars)
	assert.Zero(t, g.Map().Len())
}

func TestMusicPickup(t *testing.T) {
	changes := 0
	g := newEngine(t, Options{Music: MusicFunc(func() { changes++ })})
	g.Map().Add(entity.NewPowerUp(entity.PowerUpMusic, 80, 140))

	g.Update(tick)
	assert.Equal(t, 1, changes)
	assert.Zero(t, g.Map().Len())
}

func TestGoalLoadsNextMap(t *testing.T) {
	g := newEngine(t, Options{}, flat, second)
	g.Map().Add(entity.NewPowerUp(entity.PowerUpGoal, 80, 140))
	require.Equal(t, 1, g.MapNumber())

	g.Update(tick)
	assert.Equal(t, "second", g.Map().Name())
	assert.Equal(t, 2, g.MapNumber())
}

func TestGoalFailureKeepsMap(t *testing.T) {
	l, err := tilemap.NewLayoutLoader(64, []tilemap.Layout{flat}, log.New(io.Discard))
	require.NoError(t, err)
	fl := &failingLoader{Loader: l, failNext: true}
	g := newEngine(t, Options{Loader: fl})
	old := g.Map()
	old.Add(entity.NewPowerUp(entity.PowerUpGoal, 80, 140))

	g.Update(tick)
	assert.Same(t, old, g.Map())
	assert.True(t, g.Running())
	assert.Zero(t, old.Len(), "goal is consumed")
}

func TestCreaturesWakeInRange(t *testing.T) {
	g := newEngine(t, Options{WakeRange: 100})
	near := addCreature(t, g, cfg.CreatureGrub, 150, 152)
	far := addCreature(t, g, cfg.CreatureGrub, 400, 152)

	g.Update(tick)
	assert.Less(t, near.VX, 0.0)
	assert.Less(t, near.X, 150.0)
	assert.Zero(t, far.VX)
	assert.Equal(t, 400.0, far.X)
}

func TestCreatureTurnsAtWall(t *testing.T) {
	g := newEngine(t, Options{})
	grub := addCreature(t, g, cfg.CreatureGrub, 0.5, 152)
	grub.VX = -cfg.Creatures[cfg.CreatureGrub].MaxSpeed

	g.Update(tick)
	assert.Equal(t, 0.0, grub.X)
	assert.Greater(t, grub.VX, 0.0)
}

func TestFallingOffMap(t *testing.T) {
	g := newEngine(t, Options{}, tilemap.Layout{Name: "pit", Rows: []string{
		"P  ",
		"   ",
	}})
	p := g.Map().Player()
	grub := addCreature(t, g, cfg.CreatureGrub, 130, 0)

	for i := 0; i < 40; i++ {
		g.Update(tick)
	}
	assert.Equal(t, entity.StateDying, p.State())
	assert.Equal(t, cfg.Session.StartingLives-1, g.Stats().Lives)
	assert.Nil(t, g.Map().First(func(e *entity.Entity) bool { return e == grub }))
}

func TestRestart(t *testing.T) {
	g := newEngine(t, Options{Session: NewSession(1, 100)})
	addCreature(t, g, cfg.CreatureGrub, 110, 152)
	g.Update(tick)
	require.False(t, g.Running())

	require.NoError(t, g.Restart())
	assert.True(t, g.Running())
	assert.Equal(t, 1, g.Stats().Lives)
	assert.True(t, g.Map().Player().IsAlive())
	assert.Zero(t, g.Map().Len())
}

func TestView(t *testing.T) {
	g := newEngine(t, Options{})
	addCreature(t, g, cfg.CreatureGrub, 400, 152)

	view := g.View()
	require.Len(t, view, 2)
	assert.Equal(t, entity.KindPlayer, view[0].Kind)
	assert.Equal(t, entity.KindCreature, view[1].Kind)
}

func TestSessionStarThreshold(t *testing.T) {
	s := NewSession(6, 100)
	for i := 0; i < 99; i++ {
		assert.False(t, s.AddStar())
	}
	assert.Equal(t, 6, s.Lives())
	assert.Equal(t, 99, s.Stars())

	assert.True(t, s.AddStar())
	assert.Equal(t, Stats{Lives: 7, Stars: 0}, s.Stats())

	assert.Equal(t, 6, s.LoseLife())
	s.Reset()
	assert.Equal(t, Stats{Lives: 6, Stars: 0}, s.Stats())
}

// failingLoader wraps a loader and fails NextMap on demand. With no wrapped
// loader every call fails.
type failingLoader struct {
	*tilemap.Loader
	failNext bool
	started  bool
}

var errBroken = errors.New("broken level")

func (f *failingLoader) NextMap() (*tilemap.TileMap, error) {
	if f.Loader == nil || (f.failNext && f.started) {
		return nil, errBroken
	}
	f.started = true
	return f.Loader.NextMap()
}

func (f *failingLoader) ReloadMap() (*tilemap.TileMap, error) {
	if f.Loader == nil {
		return nil, errBroken
	}
	return f.Loader.ReloadMap()
}

func (f *failingLoader) Current() int {
	if f.Loader == nil {
		return 0
	}
	return f.Loader.Current()
}
