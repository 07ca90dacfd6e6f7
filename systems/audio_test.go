package systems

import (
	"testing"

	"github.com/automoto/tilerunner/components"
	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

func TestStopMusicClearsFade(t *testing.T) {
	a := &components.AudioData{Fade: gween.New(1, 0, 10, ease.Linear)}
	stopMusic(a)
	assert.Nil(t, a.Fade)
	assert.Nil(t, a.MusicPlayer)

	fadeOutMusic(a)
	assert.Nil(t, a.Fade, "nothing playing to fade")
}
