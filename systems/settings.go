package systems

import (
	"math"

	"github.com/automoto/tilerunner/archetypes"
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/display"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Settings loaded at startup, copied into each new Settings component
var initialSettings *SavedSettings

var activeScreen display.Screen

// UseScreen sets the screen that fullscreen toggles go through.
func UseScreen(s display.Screen) {
	activeScreen = s
}

// UpdateSettings handles the mute, volume and fullscreen hotkeys and saves
// any change.
func UpdateSettings(e *ecs.ECS) {
	s := GetOrCreateSettings(e)

	switch {
	case inpututil.IsKeyJustPressed(cfg.Settings.MuteKey):
		toggleMute(s)
	case inpututil.IsKeyJustPressed(cfg.Settings.VolumeUpKey):
		stepVolume(s, cfg.Settings.VolumeStep)
	case inpututil.IsKeyJustPressed(cfg.Settings.VolumeDownKey):
		stepVolume(s, -cfg.Settings.VolumeStep)
	case inpututil.IsKeyJustPressed(cfg.Settings.FullscreenKey):
		if activeScreen != nil {
			s.Fullscreen = !activeScreen.IsFullscreen()
			activeScreen.SetFullscreen(s.Fullscreen)
			s.Dirty = true
		}
	}

	if s.Dirty {
		SetMusicVolume(e, s.MusicVolume)
		SaveCurrentSettings(s)
	}
}

func toggleMute(s *components.SettingsData) {
	if s.Muted {
		s.MusicVolume = s.PreMuteMusicVol
	} else {
		s.PreMuteMusicVol = s.MusicVolume
		s.MusicVolume = 0
	}
	s.Muted = !s.Muted
	s.Dirty = true
}

// stepVolume changes the volume by delta. Changing the volume unmutes.
func stepVolume(s *components.SettingsData, delta float64) {
	if s.Muted {
		s.MusicVolume = s.PreMuteMusicVol
		s.Muted = false
	}
	s.MusicVolume = clampVolume(math.Round((s.MusicVolume+delta)*100) / 100)
	s.Dirty = true
}

func clampVolume(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// GetOrCreateSettings returns the singleton Settings component, creating it
// from the saved settings if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
		components.Settings.SetValue(entry, settingsFrom(initialSettings))
	}
	return components.Settings.Get(entry)
}

func settingsFrom(saved *SavedSettings) components.SettingsData {
	if saved == nil {
		vol := GetMusicVolume()
		return components.SettingsData{
			MusicVolume:     vol,
			PreMuteMusicVol: vol,
		}
	}
	s := components.SettingsData{
		MusicVolume:     saved.MusicVolume,
		Muted:           saved.Muted,
		Fullscreen:      saved.Fullscreen,
		PreMuteMusicVol: saved.MusicVolume,
	}
	if saved.Muted {
		s.MusicVolume = 0
	}
	return s
}
