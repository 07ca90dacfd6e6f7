package tilemap

import (
	"errors"
	"fmt"

	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/entity"
)

var (
	ErrNoPlayerSpawn = errors.New("map has no player spawn")
	ErrNoLevels      = errors.New("no levels found")
	ErrTileSize      = fmt.Errorf("tile size must be at least %d", cfg.MinTileSize)
)

// Parse builds a map from an ASCII layout, one string per tile row:
//
//	#, A-Z  solid tile
//	P       player
//	o       star
//	m       music
//	*       goal
//	1       grub
//	2       fly
//
// Any other rune is empty space. Rows may have different lengths; the map is
// as wide as the longest row.
func Parse(name string, tileSize int, rows []string) (*TileMap, error) {
	if tileSize < cfg.MinTileSize {
		return nil, fmt.Errorf("parse %s: %w, got %d", name, ErrTileSize, tileSize)
	}
	width := 0
	for _, row := range rows {
		width = max(width, len([]rune(row)))
	}
	m := New(name, width, len(rows), tileSize)

	for ty, row := range rows {
		for tx, r := range []rune(row) {
			if err := m.place(r, tx, ty); err != nil {
				return nil, fmt.Errorf("parse %s at %d,%d: %w", name, tx, ty, err)
			}
		}
	}
	if m.player == nil {
		return nil, fmt.Errorf("parse %s: %w", name, ErrNoPlayerSpawn)
	}
	return m, nil
}

func (m *TileMap) place(r rune, tx, ty int) error {
	switch {
	case r == '#', r >= 'A' && r <= 'Z':
		m.SetSolid(tx, ty)
	case r == 'P':
		m.spawnPlayer(tx, ty)
	case r == 'o':
		m.spawnPowerUp(entity.PowerUpStar, tx, ty)
	case r == 'm':
		m.spawnPowerUp(entity.PowerUpMusic, tx, ty)
	case r == '*':
		m.spawnPowerUp(entity.PowerUpGoal, tx, ty)
	case r == '1':
		return m.spawnCreature(cfg.CreatureGrub, tx, ty)
	case r == '2':
		return m.spawnCreature(cfg.CreatureFly, tx, ty)
	}
	return nil
}

func (m *TileMap) spawnPlayer(tx, ty int) {
	x, y := m.spawnPosition(tx, ty, cfg.Player.Width, cfg.Player.Height)
	m.SetPlayer(entity.NewPlayer(x, y))
}

func (m *TileMap) spawnPowerUp(t entity.PowerUpType, tx, ty int) {
	x, y := m.spawnPosition(tx, ty, cfg.PowerUp.Width, cfg.PowerUp.Height)
	m.Add(entity.NewPowerUp(t, x, y))
}

func (m *TileMap) spawnCreature(typeName string, tx, ty int) error {
	e, err := entity.NewCreature(typeName, 0, 0)
	if err != nil {
		return err
	}
	e.X, e.Y = m.spawnPosition(tx, ty, e.Width, e.Height)
	m.Add(e)
	return nil
}
