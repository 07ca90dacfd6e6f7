package systems

import (
	"image/color"
	"testing"

	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/entity"
	"github.com/stretchr/testify/assert"
)

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	assert.Equal(t, c, withAlpha(c, 1))
	assert.Equal(t, color.RGBA{}, withAlpha(c, 0))
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 127}, withAlpha(c, 0.5))
	assert.Equal(t, c, withAlpha(c, 3), "clamped")
}

func TestEntityColor(t *testing.T) {
	assert.Equal(t, cfg.Render.Player, entityColor(entity.Snapshot{Kind: entity.KindPlayer}))
	assert.Equal(t, cfg.Creatures[cfg.CreatureFly].Color,
		entityColor(entity.Snapshot{Kind: entity.KindCreature, Type: cfg.CreatureFly}))
	assert.Equal(t, cfg.Render.Goal,
		entityColor(entity.Snapshot{Kind: entity.KindPowerUp, PowerUpType: entity.PowerUpGoal}))
	assert.Equal(t, cfg.White,
		entityColor(entity.Snapshot{Kind: entity.KindCreature, Type: "unknown"}))
}
