package systems

import (
	"testing"

	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHUDLines(t *testing.T) {
	lines := hudLines(sim.Stats{Lives: 3, Stars: 42}, 2)
	require.Len(t, lines, 4)

	assert.Equal(t, "Press ESC for EXIT.", lines[0].text)
	assert.Equal(t, "Coins: 42", lines[1].text)
	assert.Equal(t, "Lives: 3", lines[2].text)
	assert.Equal(t, "Home: 2", lines[3].text)

	assert.Equal(t, cfg.HUD.CoinsX, lines[1].x)
	assert.Equal(t, cfg.HUD.LivesColor, lines[2].color)
}
