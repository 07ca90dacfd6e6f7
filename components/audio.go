package components

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Context     *audio.Context
	MusicPlayer *audio.Player
	MusicVolume float64 // 0.0 - 1.0
	TrackIndex  int     // index into config.Music.Tracks, -1 before the first track
	Fade        *gween.Tween
}

var Audio = donburi.NewComponentType[AudioData]()
