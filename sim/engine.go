package sim

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/entity"
	"github.com/automoto/tilerunner/input"
	"github.com/automoto/tilerunner/tilemap"
	"github.com/charmbracelet/log"
)

var ErrNoMap = errors.New("no map loaded")

// MapLoader provides maps in play order.
type MapLoader interface {
	NextMap() (*tilemap.TileMap, error)
	ReloadMap() (*tilemap.TileMap, error)
	Current() int
}

// Music is notified when the player picks up a music power-up.
type Music interface {
	ChangeMusic()
}

// MusicFunc adapts a function to Music.
type MusicFunc func()

func (f MusicFunc) ChangeMusic() {
	f()
}

// Options configures an Engine. Only Loader is required.
type Options struct {
	Loader   MapLoader
	Music    Music
	Registry *input.Registry
	Session  *Session
	Logger   *log.Logger

	// Horizontal distance from the player at which creatures wake up. Zero
	// uses the configured default for the map's tile size.
	WakeRange float64
}

// Engine owns the active map and advances it one tick at a time. Update is
// not safe for concurrent use; the input actions it samples are.
type Engine struct {
	loader  MapLoader
	music   Music
	session *Session
	logger  *log.Logger

	registry  *input.Registry
	moveLeft  *input.Action
	moveRight *input.Action
	jump      *input.Action
	exit      *input.Action

	wakeRange float64
	running   atomic.Bool
	m         *tilemap.TileMap
}

// New registers the game actions and loads the first map.
func New(opts Options) (*Engine, error) {
	if opts.Loader == nil {
		return nil, fmt.Errorf("%w: no loader", ErrNoMap)
	}
	if opts.Registry == nil {
		opts.Registry = input.NewRegistry()
	}
	if opts.Session == nil {
		opts.Session = NewSession(cfg.Session.StartingLives, cfg.Session.StarsPerLife)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	g := &Engine{
		loader:    opts.Loader,
		music:     opts.Music,
		session:   opts.Session,
		logger:    opts.Logger.WithPrefix("sim"),
		registry:  opts.Registry,
		moveLeft:  opts.Registry.Register(cfg.ActionMoveLeft.String(), input.Normal),
		moveRight: opts.Registry.Register(cfg.ActionMoveRight.String(), input.Normal),
		jump:      opts.Registry.Register(cfg.ActionJump.String(), input.DetectInitialPressOnly),
		exit:      opts.Registry.Register(cfg.ActionExit.String(), input.DetectInitialPressOnly),
		wakeRange: opts.WakeRange,
	}

	m, err := g.loader.NextMap()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoMap, err)
	}
	g.setMap(m)
	g.running.Store(true)
	return g, nil
}

// Update advances the simulation by elapsed milliseconds.
func (g *Engine) Update(elapsed float64) {
	if !g.Running() {
		return
	}

	player := g.m.Player()
	if player.State() == entity.StateDead {
		g.reload()
		return
	}

	if n := g.m.RemoveIf(isDead); n > 0 {
		g.logger.Debug("pruned dead entities", "count", n)
	}

	g.checkInput(player)
	g.wakeCreatures(player)

	if g.updatePlayer(player, elapsed) {
		return
	}
	player.Update(elapsed)
	if player.IsAlive() && player.Y > float64(g.m.PixelHeight()) {
		g.killPlayer(player, "fell")
	}

	g.m.Each(func(e *entity.Entity) {
		if e.IsCreature() {
			g.updateCreature(e, elapsed)
			// Below the map nothing is drawn, so there is no fade to play
			// and the creature goes straight to DEAD.
			if e.Y > float64(g.m.PixelHeight()) {
				e.SetState(entity.StateDead)
			}
		}
		e.Update(elapsed)
	})
}

// checkInput samples every action once. Reads are consuming, so this is the
// only place the engine touches them.
func (g *Engine) checkInput(player *entity.Entity) {
	if g.exit.IsPressed() {
		g.logger.Info("exit requested")
		g.Stop()
	}

	left := g.moveLeft.IsPressed()
	right := g.moveRight.IsPressed()
	jump := g.jump.IsPressed()

	if !player.IsAlive() {
		return
	}
	vx := 0.0
	if left {
		vx -= player.MaxSpeed()
	}
	if right {
		vx += player.MaxSpeed()
	}
	if jump {
		player.Jump(false)
	}
	player.VX = vx
}

func (g *Engine) wakeCreatures(player *entity.Entity) {
	r := g.wakeRange
	if r <= 0 {
		r = cfg.WakeRange(g.m.TileSize())
	}
	g.m.Each(func(e *entity.Entity) {
		if e.Kind == entity.KindCreature && math.Abs(e.X-player.X) <= r {
			e.WakeUp()
		}
	})
}

// updatePlayer moves the player and resolves contacts after each axis. It
// reports whether a goal replaced the map mid-tick.
func (g *Engine) updatePlayer(player *entity.Entity, elapsed float64) bool {
	ApplyGravity(player, elapsed)

	if MoveHorizontal(g.m, player, elapsed) {
		player.CollideHorizontal()
	}
	if g.checkPlayerCollision(player, false) {
		return true
	}

	oldY := player.Y
	if MoveVertical(g.m, player, elapsed) {
		player.CollideVertical()
	}
	return g.checkPlayerCollision(player, oldY < player.Y)
}

func (g *Engine) updateCreature(e *entity.Entity, elapsed float64) {
	ApplyGravity(e, elapsed)
	if MoveHorizontal(g.m, e, elapsed) {
		e.CollideHorizontal()
	}
	if MoveVertical(g.m, e, elapsed) {
		e.CollideVertical()
	}
}

func (g *Engine) reload() {
	m, err := g.loader.ReloadMap()
	if err != nil {
		g.logger.Error("could not reload map, keeping current", "map", g.m.Name(), "error", err)
		return
	}
	g.setMap(m)
}

func (g *Engine) setMap(m *tilemap.TileMap) {
	g.m = m
	g.logger.Debug("map active", "map", m.Name(), "number", g.loader.Current())
}

// Restart begins a new session on the current map.
func (g *Engine) Restart() error {
	m, err := g.loader.ReloadMap()
	if err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	g.setMap(m)
	g.session.Reset()
	g.registry.ResetAll()
	g.running.Store(true)
	g.logger.Info("session restarted", "lives", g.session.Lives())
	return nil
}

// Stop ends the session. Subsequent updates do nothing.
func (g *Engine) Stop() {
	g.running.Store(false)
}

func (g *Engine) Running() bool {
	return g.running.Load()
}

func (g *Engine) Map() *tilemap.TileMap {
	return g.m
}

func (g *Engine) Stats() Stats {
	return g.session.Stats()
}

// MapNumber is the 1-based number of the active map.
func (g *Engine) MapNumber() int {
	return g.loader.Current()
}

func (g *Engine) Registry() *input.Registry {
	return g.registry
}

// View returns snapshots of everything on the map, player first.
func (g *Engine) View() []entity.Snapshot {
	view := make([]entity.Snapshot, 0, g.m.Len()+1)
	if p := g.m.Player(); p != nil {
		view = append(view, p.Snapshot())
	}
	g.m.Each(func(e *entity.Entity) {
		view = append(view, e.Snapshot())
	})
	return view
}

func isDead(e *entity.Entity) bool {
	return e.State() == entity.StateDead
}
