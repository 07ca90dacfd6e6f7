package sim

import (
	"image"
	"testing"

	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/entity"
	"github.com/automoto/tilerunner/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// box returns an idle creature with the given bounds.
func box(x, y float64, w, h int) *entity.Entity {
	return &entity.Entity{
		Kind:     entity.KindCreature,
		X:        x,
		Y:        y,
		Width:    w,
		Height:   h,
		Creature: &entity.CreatureData{Type: "box"},
	}
}

func TestMoveHorizontalClampsRight(t *testing.T) {
	m := tilemap.New("t", 10, 10, 16)
	m.SetSolid(5, 0)

	e := box(0, 0, 16, 16)
	e.VX = 1
	require.True(t, MoveHorizontal(m, e, 70))
	assert.Equal(t, 64.0, e.X)
}

func TestMoveHorizontalClampsLeft(t *testing.T) {
	m := tilemap.New("t", 10, 10, 16)
	m.SetSolid(1, 0)

	e := box(64, 0, 16, 16)
	e.VX = -1
	require.True(t, MoveHorizontal(m, e, 50))
	assert.Equal(t, 32.0, e.X)
}

func TestMoveHorizontalUnobstructed(t *testing.T) {
	m := tilemap.New("t", 10, 10, 16)
	e := box(0, 0, 16, 16)
	e.VX = 0.5
	assert.False(t, MoveHorizontal(m, e, 10))
	assert.Equal(t, 5.0, e.X)
}

func TestMapSidesAreWalls(t *testing.T) {
	m := tilemap.New("t", 10, 10, 16)

	e := box(0, 0, 16, 16)
	e.VX = -1
	require.True(t, MoveHorizontal(m, e, 10))
	assert.Equal(t, 0.0, e.X)

	e = box(144, 0, 16, 16)
	e.VX = 1
	require.True(t, MoveHorizontal(m, e, 10))
	assert.Equal(t, 144.0, e.X)
}

func TestVerticalBoundsAreOpen(t *testing.T) {
	m := tilemap.New("t", 10, 10, 16)

	e := box(0, 150, 16, 16)
	e.VY = 1
	assert.False(t, MoveVertical(m, e, 30))
	assert.Equal(t, 180.0, e.Y)

	e = box(0, 5, 16, 16)
	e.VY = -1
	assert.False(t, MoveVertical(m, e, 30))
	assert.Equal(t, -25.0, e.Y)
}

func TestMoveVerticalLandsAndBumps(t *testing.T) {
	m := tilemap.New("t", 10, 10, 16)
	m.SetSolid(0, 5)
	m.SetSolid(0, 0)

	falling := box(0, 40, 16, 16)
	falling.VY = 1
	require.True(t, MoveVertical(m, falling, 30))
	assert.Equal(t, 64.0, falling.Y, "top edge of the floor minus height")

	rising := box(0, 40, 16, 16)
	rising.VY = -1
	require.True(t, MoveVertical(m, rising, 30))
	assert.Equal(t, 16.0, rising.Y, "bottom edge of the ceiling")
}

func TestTileCollisionScanOrder(t *testing.T) {
	m := tilemap.New("t", 10, 10, 16)
	m.SetSolid(3, 1)
	m.SetSolid(2, 3)

	e := box(0, 0, 16, 64)
	tile, hit := TileCollision(m, e, 48, 0)
	require.True(t, hit)
	assert.Equal(t, image.Pt(2, 3), tile, "columns before rows")
}

func TestTileCollisionSweepsUnionBox(t *testing.T) {
	m := tilemap.New("t", 10, 10, 16)
	m.SetSolid(4, 0)

	// A fast move that jumps over the tile is still blocked.
	e := box(0, 0, 16, 16)
	tile, hit := TileCollision(m, e, 128, 0)
	require.True(t, hit)
	assert.Equal(t, image.Pt(4, 0), tile)

	_, hit = TileCollision(m, e, 32, 0)
	assert.False(t, hit)
}

func TestApplyGravity(t *testing.T) {
	grub, err := entity.NewCreature(cfg.CreatureGrub, 0, 0)
	require.NoError(t, err)
	ApplyGravity(grub, 10)
	assert.InDelta(t, cfg.Physics.Gravity*10, grub.VY, 1e-12)

	fly, err := entity.NewCreature(cfg.CreatureFly, 0, 0)
	require.NoError(t, err)
	ApplyGravity(fly, 10)
	assert.Zero(t, fly.VY)
}

func TestIsColliding(t *testing.T) {
	a := box(0, 0, 16, 16)
	assert.False(t, IsColliding(a, a), "never with itself")

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"overlap", 8, 8, true},
		{"touching right edge", 16, 0, false},
		{"touching bottom edge", 0, 16, false},
		{"rounds onto the edge", 15.6, 0, false},
		{"rounds into overlap", 15.4, 0, true},
		{"apart", 40, 40, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := box(tt.x, tt.y, 16, 16)
			assert.Equal(t, tt.want, IsColliding(a, b))
			assert.Equal(t, tt.want, IsColliding(b, a))
		})
	}
}

func TestIsCollidingIgnoresNonAliveCreatures(t *testing.T) {
	a := box(0, 0, 16, 16)
	b := box(4, 4, 16, 16)
	b.SetState(entity.StateDying)
	assert.False(t, IsColliding(a, b))
	assert.False(t, IsColliding(b, a))

	star := entity.NewPowerUp(entity.PowerUpStar, 4, 4)
	assert.True(t, IsColliding(a, star), "power-ups always collide")
}

func TestFindCollisionFirstMatch(t *testing.T) {
	m := tilemap.New("t", 10, 10, 16)
	player := box(0, 0, 16, 16)

	dead := box(2, 2, 16, 16)
	dead.SetState(entity.StateDead)
	far := box(100, 100, 16, 16)
	first := box(10, 10, 16, 16)
	second := box(1, 1, 16, 16)
	m.Add(dead)
	m.Add(far)
	m.Add(first)
	m.Add(second)

	assert.Same(t, first, FindCollision(m, player), "collection order, not distance")

	m.Remove(first)
	m.Remove(second)
	assert.Nil(t, FindCollision(m, player))
}
