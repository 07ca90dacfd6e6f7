package systems

import (
	"image/color"

	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/entity"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const eyeSize = 6

// DrawLevel renders the visible tiles and every entity on the active map.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	game, ok := getGame(ecs)
	if !ok {
		return
	}
	screen.Fill(cfg.Render.Background)

	offset := CameraOffset(ecs.World)
	m := game.Engine.Map()
	ts := m.TileSize()
	width := screen.Bounds().Dx()

	// Only the columns that can be on screen
	first := max(m.PixelToTile(-offset.X), 0)
	last := min(m.PixelToTile(-offset.X+float64(width)), m.Width()-1)
	for tx := first; tx <= last; tx++ {
		for ty := 0; ty < m.Height(); ty++ {
			if !m.IsSolid(tx, ty) {
				continue
			}
			x := float32(float64(m.TileToPixel(tx)) + offset.X)
			y := float32(float64(m.TileToPixel(ty)) + offset.Y)
			vector.FillRect(screen, x, y, float32(ts), float32(ts), cfg.Render.Tile, false)
			vector.StrokeRect(screen, x, y, float32(ts), float32(ts), 2, cfg.Render.TileEdge, false)
		}
	}

	for _, s := range game.Engine.View() {
		drawEntity(screen, s, offset.X, offset.Y)
	}
}

func drawEntity(screen *ebiten.Image, s entity.Snapshot, offX, offY float64) {
	x := float32(s.X + offX)
	y := float32(s.Y + offY)
	w, h := float32(s.Width), float32(s.Height)
	c := withAlpha(entityColor(s), s.Alpha)

	if s.Kind == entity.KindPowerUp {
		// Power-ups are round
		vector.FillCircle(screen, x+w/2, y+h/2, w/2, c, true)
		return
	}
	vector.FillRect(screen, x, y, w, h, c, false)

	// An eye on the side the entity faces
	ex := x + w - eyeSize*2
	if s.Facing < 0 {
		ex = x + eyeSize
	}
	vector.FillRect(screen, ex, y+eyeSize*2, eyeSize, eyeSize, withAlpha(color.RGBA{A: 255}, s.Alpha), false)
}

func entityColor(s entity.Snapshot) color.RGBA {
	switch s.Kind {
	case entity.KindPlayer:
		return cfg.Render.Player
	case entity.KindCreature:
		if t, ok := cfg.CreatureType(s.Type); ok {
			return t.Color
		}
	case entity.KindPowerUp:
		switch s.PowerUpType {
		case entity.PowerUpStar:
			return cfg.Render.Star
		case entity.PowerUpMusic:
			return cfg.Render.Music
		case entity.PowerUpGoal:
			return cfg.Render.Goal
		}
	}
	return cfg.White
}

// withAlpha scales a color (premultiplied) by alpha in [0, 1].
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	alpha = max(0, min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
