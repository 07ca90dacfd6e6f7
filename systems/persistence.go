package systems

import (
	"encoding/json"

	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/display"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	Muted       bool    `json:"muted"`
	Fullscreen  bool    `json:"fullscreen"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		logger.Warn("could not initialize persistence", "error", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing has
// been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		logger.Warn("could not load settings", "error", err)
		return nil, nil
	}
	return decodeSettings(data)
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		logger.Warn("could not serialize settings", "error", err)
		return err
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		logger.Warn("could not save settings", "error", err)
		return err
	}
	return nil
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}
	var s SavedSettings
	if err := json.Unmarshal(data, &s); err != nil {
		logger.Warn("could not parse saved settings", "error", err)
		return nil, err
	}
	s.MusicVolume = clampVolume(s.MusicVolume)
	return &s, nil
}

// SaveCurrentSettings saves the settings held by the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	saved := savedFrom(s)
	initialSettings = saved
	_ = SaveSettings(saved)
	s.Dirty = false
}

func savedFrom(s *components.SettingsData) *SavedSettings {
	vol := s.MusicVolume
	if s.Muted {
		vol = s.PreMuteMusicVol
	}
	return &SavedSettings{
		MusicVolume: vol,
		Muted:       s.Muted,
		Fullscreen:  s.Fullscreen,
	}
}

// ApplySavedSettingsGlobal applies settings before any scene exists
func ApplySavedSettingsGlobal(saved *SavedSettings, screen display.Screen) {
	if saved == nil {
		return
	}

	globalMusicVolume = saved.MusicVolume
	if saved.Muted {
		globalMusicVolume = 0
	}
	if saved.Fullscreen {
		screen.SetFullscreen(true)
	}
	initialSettings = saved
}
