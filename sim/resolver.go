// Package sim runs the platformer simulation: tile collision, entity
// interactions, power-ups and the per-tick orchestration.
package sim

import (
	"image"

	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/entity"
)

// Grid is the read side of a tile map used by the resolver.
type Grid interface {
	IsSolid(tx, ty int) bool
	Width() int
	TileToPixel(i int) int
	PixelToTile(p float64) int
}

// Collection is an ordered set of active entities.
type Collection interface {
	First(pred func(*entity.Entity) bool) *entity.Entity
}

// TileCollision sweeps e from its position to (newX, newY) and returns the
// first blocking tile, scanning columns left to right and each column top to
// bottom. Columns outside the map are walls; rows are not checked, so
// entities may leave through the top or bottom.
func TileCollision(g Grid, e *entity.Entity, newX, newY float64) (image.Point, bool) {
	fromX := min(e.X, newX)
	fromY := min(e.Y, newY)
	toX := max(e.X, newX)
	toY := max(e.Y, newY)

	fromTileX := g.PixelToTile(fromX)
	fromTileY := g.PixelToTile(fromY)
	toTileX := g.PixelToTile(toX + float64(e.Width) - 1)
	toTileY := g.PixelToTile(toY + float64(e.Height) - 1)

	for x := fromTileX; x <= toTileX; x++ {
		for y := fromTileY; y <= toTileY; y++ {
			if x < 0 || x >= g.Width() || g.IsSolid(x, y) {
				return image.Pt(x, y), true
			}
		}
	}
	return image.Point{}, false
}

// ApplyGravity accelerates e downward unless it flies.
func ApplyGravity(e *entity.Entity, elapsed float64) {
	if !e.IsFlying() {
		e.VY += cfg.Physics.Gravity * elapsed
	}
}

// MoveHorizontal moves e by its horizontal velocity. When a tile blocks the
// move, e is snapped against the tile edge it was moving towards and true is
// returned; the velocity response is left to the caller.
func MoveHorizontal(g Grid, e *entity.Entity, elapsed float64) bool {
	dx := e.VX
	newX := e.X + dx*elapsed
	tile, hit := TileCollision(g, e, newX, e.Y)
	if !hit {
		e.SetX(newX)
		return false
	}
	if dx > 0 {
		e.SetX(float64(g.TileToPixel(tile.X) - e.Width))
	} else if dx < 0 {
		e.SetX(float64(g.TileToPixel(tile.X + 1)))
	}
	return true
}

// MoveVertical is MoveHorizontal for the y axis, using the current x.
func MoveVertical(g Grid, e *entity.Entity, elapsed float64) bool {
	dy := e.VY
	newY := e.Y + dy*elapsed
	tile, hit := TileCollision(g, e, e.X, newY)
	if !hit {
		e.SetY(newY)
		return false
	}
	if dy > 0 {
		e.SetY(float64(g.TileToPixel(tile.Y) - e.Height))
	} else if dy < 0 {
		e.SetY(float64(g.TileToPixel(tile.Y + 1)))
	}
	return true
}

// IsColliding reports whether a and b overlap. An entity never collides with
// itself, and creatures that are not alive never collide. Touching edges do
// not count.
func IsColliding(a, b *entity.Entity) bool {
	if a == b {
		return false
	}
	if a.IsCreature() && !a.IsAlive() {
		return false
	}
	if b.IsCreature() && !b.IsAlive() {
		return false
	}

	ax, ay, aw, ah := a.Bounds()
	bx, by, bw, bh := b.Bounds()
	return ax < bx+bw &&
		bx < ax+aw &&
		ay < by+bh &&
		by < ay+ah
}

// FindCollision returns the first entity in c, in collection order, that
// collides with e.
func FindCollision(c Collection, e *entity.Entity) *entity.Entity {
	return c.First(func(other *entity.Entity) bool {
		return IsColliding(e, other)
	})
}
