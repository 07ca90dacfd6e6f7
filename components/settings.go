package components

import "github.com/yohamta/donburi"

// SettingsData stores the user settings that hotkeys change and gdata persists
type SettingsData struct {
	MusicVolume     float64
	Muted           bool
	Fullscreen      bool
	PreMuteMusicVol float64
	Dirty           bool // changed since the last save
}

var Settings = donburi.NewComponentType[SettingsData]()
