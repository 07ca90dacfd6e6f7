package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the collision objects and entity bounds and prints the
// frame rate.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}
	game, ok := getGame(ecs)
	if !ok {
		return
	}
	offset := CameraOffset(ecs.World)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Viewport in map coordinates
	viewX, viewY := -offset.X, -offset.Y

	m := game.Engine.Map()
	for _, obj := range m.Space().Objects() {
		if obj.X+obj.W < viewX || obj.X > viewX+float64(width) || obj.Y+obj.H < viewY || obj.Y > viewY+float64(height) {
			continue
		}
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		}
		outline(screen, obj.X+offset.X, obj.Y+offset.Y, obj.W, obj.H, c)
	}

	for _, s := range game.Engine.View() {
		outline(screen, s.X+offset.X, s.Y+offset.Y, float64(s.Width), float64(s.Height), color.RGBA{255, 0, 0, 255})
	}

	stats := game.Engine.Stats()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.1f  map %s  entities %d  lives %d  stars %d",
		ebiten.ActualTPS(), m.Name(), m.Len(), stats.Lives, stats.Stars), 10, height-20)
}

func outline(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
