package config

import "github.com/hajimehoshi/ebiten/v2"

// SettingsConfig contains settings persistence and hotkey configuration
type SettingsConfig struct {
	AppName       string
	VolumeStep    float64
	MuteKey       ebiten.Key
	VolumeUpKey   ebiten.Key
	VolumeDownKey ebiten.Key
	FullscreenKey ebiten.Key
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:       "tilerunner",
		VolumeStep:    0.1,
		MuteKey:       ebiten.KeyM,
		VolumeUpKey:   ebiten.KeyEqual,
		VolumeDownKey: ebiten.KeyMinus,
		FullscreenKey: ebiten.KeyF11,
	}
}
