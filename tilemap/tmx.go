package tilemap

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/entity"
	"github.com/lafriks/go-tiled"
)

// Spawn object types in the object layer
const (
	spawnPlayer   = "player"
	spawnCreature = "creature"
	spawnPowerUp  = "powerup"
)

// LoadTMX parses a TMX file into a map. Any non-empty tile in the solid layer
// is solid. Spawns come from the object layer; each object spawns on the tile
// under its center.
func LoadTMX(fsys fs.FS, tmxPath string) (*TileMap, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}
	if levelMap.TileWidth < cfg.MinTileSize {
		return nil, fmt.Errorf("load TMX %s: %w, got %d", tmxPath, ErrTileSize, levelMap.TileWidth)
	}

	name := strings.TrimSuffix(path.Base(tmxPath), ".tmx")
	m := New(name, levelMap.Width, levelMap.Height, levelMap.TileWidth)

	for _, layer := range levelMap.Layers {
		if layer.Name != cfg.Level.SolidLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile == nil || tile.IsNil() {
					continue
				}
				m.SetSolid(x, y)
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != cfg.Level.ObjectLayer {
			continue
		}
		for _, o := range og.Objects {
			tx := m.PixelToTile(o.X + o.Width/2)
			ty := m.PixelToTile(o.Y + o.Height/2)
			if err := m.spawnObject(o, tx, ty); err != nil {
				return nil, fmt.Errorf("load TMX %s: object %d: %w", tmxPath, o.ID, err)
			}
		}
	}

	if m.player == nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoPlayerSpawn)
	}
	return m, nil
}

func (m *TileMap) spawnObject(o *tiled.Object, tx, ty int) error {
	kind := strings.ToLower(o.Type)
	if kind == "" {
		kind = strings.ToLower(o.Name)
	}

	switch kind {
	case spawnPlayer:
		m.spawnPlayer(tx, ty)
	case spawnCreature:
		return m.spawnCreature(o.Properties.GetString("creature"), tx, ty)
	case spawnPowerUp:
		t, err := entity.ParsePowerUpType(o.Properties.GetString("powerup"))
		if err != nil {
			return err
		}
		m.spawnPowerUp(t, tx, ty)
	default:
		return fmt.Errorf("unknown spawn type %q", kind)
	}
	return nil
}
