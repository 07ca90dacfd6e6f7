// Package tilemap stores a level: a uniform grid of solid tiles, the player,
// and the ordered collection of active entities.
package tilemap

import (
	"math"
	"slices"

	"github.com/automoto/tilerunner/entity"
	"github.com/automoto/tilerunner/tags"
	"github.com/solarlune/resolv"
)

// TileMap is a width x height grid of tiles. Solid tiles live in a resolv
// space whose cells are exactly one tile.
type TileMap struct {
	name     string
	width    int
	height   int
	tileSize int

	space *resolv.Space

	player   *entity.Entity
	entities []*entity.Entity
	live     map[*entity.Entity]struct{}
	nextID   int
}

func New(name string, width, height, tileSize int) *TileMap {
	return &TileMap{
		name:     name,
		width:    width,
		height:   height,
		tileSize: tileSize,
		space:    resolv.NewSpace(width*tileSize, height*tileSize, tileSize, tileSize),
		live:     make(map[*entity.Entity]struct{}),
		nextID:   1,
	}
}

func (m *TileMap) Name() string {
	return m.name
}

// Width is the map width in tiles.
func (m *TileMap) Width() int {
	return m.width
}

// Height is the map height in tiles.
func (m *TileMap) Height() int {
	return m.height
}

func (m *TileMap) TileSize() int {
	return m.tileSize
}

func (m *TileMap) PixelWidth() int {
	return m.width * m.tileSize
}

func (m *TileMap) PixelHeight() int {
	return m.height * m.tileSize
}

// Space exposes the collision space for debug drawing.
func (m *TileMap) Space() *resolv.Space {
	return m.space
}

// SetSolid marks a tile as solid. Coordinates outside the grid are ignored.
func (m *TileMap) SetSolid(tx, ty int) {
	if tx < 0 || tx >= m.width || ty < 0 || ty >= m.height || m.IsSolid(tx, ty) {
		return
	}
	// Inset by a pixel so the object registers in exactly one cell.
	x := float64(m.TileToPixel(tx)) + 1
	y := float64(m.TileToPixel(ty)) + 1
	size := float64(m.tileSize) - 2
	obj := resolv.NewObject(x, y, size, size, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	m.space.Add(obj)
}

// IsSolid reports whether a tile is solid. Tiles outside the grid are not.
func (m *TileMap) IsSolid(tx, ty int) bool {
	cell := m.space.Cell(tx, ty)
	if cell == nil {
		return false
	}
	return cell.ContainsTags(tags.ResolvSolid)
}

// TileToPixel converts a tile index to the pixel position of its top/left
// edge.
func (m *TileMap) TileToPixel(i int) int {
	return i * m.tileSize
}

// PixelToTile converts a pixel position to a tile index, rounding down so
// negative pixels land on negative tiles.
func (m *TileMap) PixelToTile(p float64) int {
	return int(math.Floor(p / float64(m.tileSize)))
}

func (m *TileMap) Player() *entity.Entity {
	return m.player
}

// SetPlayer sets the player. The player is not part of the entity
// collection.
func (m *TileMap) SetPlayer(p *entity.Entity) {
	if p != nil && p.ID == 0 {
		p.ID = m.allocID()
	}
	m.player = p
}

// Add appends an entity to the active collection.
func (m *TileMap) Add(e *entity.Entity) {
	if _, ok := m.live[e]; ok {
		return
	}
	if e.ID == 0 {
		e.ID = m.allocID()
	}
	m.entities = append(m.entities, e)
	m.live[e] = struct{}{}
}

// Remove drops an entity from the active collection. It is safe to call
// from inside Each.
func (m *TileMap) Remove(e *entity.Entity) bool {
	if _, ok := m.live[e]; !ok {
		return false
	}
	delete(m.live, e)
	m.entities = slices.DeleteFunc(m.entities, func(o *entity.Entity) bool {
		return o == e
	})
	return true
}

// RemoveIf drops every entity matching pred and returns how many went.
func (m *TileMap) RemoveIf(pred func(*entity.Entity) bool) int {
	before := len(m.entities)
	m.entities = slices.DeleteFunc(m.entities, func(e *entity.Entity) bool {
		if pred(e) {
			delete(m.live, e)
			return true
		}
		return false
	})
	return before - len(m.entities)
}

// Each calls fn for every entity in insertion order. Entities removed during
// the walk are skipped; entities added during the walk are not visited.
func (m *TileMap) Each(fn func(*entity.Entity)) {
	for _, e := range slices.Clone(m.entities) {
		if _, ok := m.live[e]; !ok {
			continue
		}
		fn(e)
	}
}

// First returns the first entity in collection order matching pred.
func (m *TileMap) First(pred func(*entity.Entity) bool) *entity.Entity {
	for _, e := range m.entities {
		if pred(e) {
			return e
		}
	}
	return nil
}

func (m *TileMap) Len() int {
	return len(m.entities)
}

func (m *TileMap) allocID() int {
	id := m.nextID
	m.nextID++
	return id
}

// spawnPosition places a sprite of size w x h centered on a tile with its
// feet on the tile's bottom edge.
func (m *TileMap) spawnPosition(tx, ty, w, h int) (float64, float64) {
	x := m.TileToPixel(tx) + (m.tileSize-w)/2
	y := m.TileToPixel(ty+1) - h
	return float64(x), float64(y)
}
