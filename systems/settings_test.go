package systems

import (
	"testing"

	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleMute(t *testing.T) {
	s := &components.SettingsData{MusicVolume: 0.7}

	toggleMute(s)
	assert.True(t, s.Muted)
	assert.Zero(t, s.MusicVolume)
	assert.True(t, s.Dirty)

	toggleMute(s)
	assert.False(t, s.Muted)
	assert.Equal(t, 0.7, s.MusicVolume)
}

func TestStepVolume(t *testing.T) {
	s := &components.SettingsData{MusicVolume: 0.5}

	stepVolume(s, 0.1)
	assert.Equal(t, 0.6, s.MusicVolume)

	for i := 0; i < 10; i++ {
		stepVolume(s, 0.1)
	}
	assert.Equal(t, 1.0, s.MusicVolume, "clamped")

	s.MusicVolume = 0.05
	stepVolume(s, -0.1)
	assert.Zero(t, s.MusicVolume)
}

func TestStepVolumeUnmutes(t *testing.T) {
	s := &components.SettingsData{MusicVolume: 0.4}
	toggleMute(s)

	stepVolume(s, 0.1)
	assert.False(t, s.Muted)
	assert.Equal(t, 0.5, s.MusicVolume)
}

func TestSavedFromMuted(t *testing.T) {
	s := &components.SettingsData{MusicVolume: 0.8}
	toggleMute(s)

	saved := savedFrom(s)
	assert.True(t, saved.Muted)
	assert.Equal(t, 0.8, saved.MusicVolume, "the volume to restore, not zero")

	restored := settingsFrom(saved)
	assert.True(t, restored.Muted)
	assert.Zero(t, restored.MusicVolume)
	assert.Equal(t, 0.8, restored.PreMuteMusicVol)
}

func TestDecodeSettings(t *testing.T) {
	s, err := decodeSettings(nil)
	require.NoError(t, err)
	assert.Nil(t, s, "nothing saved yet")

	s, err = decodeSettings([]byte(`{"musicVolume": 1.5, "muted": true, "fullscreen": true}`))
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.MusicVolume, "clamped")
	assert.True(t, s.Muted)
	assert.True(t, s.Fullscreen)

	_, err = decodeSettings([]byte("{"))
	assert.Error(t, err)
}

func TestConfiguredMusicVolume(t *testing.T) {
	audioCfg, vol, saved := cfg.Audio, globalMusicVolume, initialSettings
	t.Cleanup(func() {
		cfg.Audio, globalMusicVolume, initialSettings = audioCfg, vol, saved
	})

	require.NoError(t, cfg.Apply([]byte("audio:\n  music_volume: 0.3\n")))
	LoadAudioDefaults()
	s := settingsFrom(nil)
	assert.Equal(t, 0.3, s.MusicVolume)
	assert.Equal(t, 0.3, s.PreMuteMusicVol)

	// Saved settings win over the config file
	ApplySavedSettingsGlobal(&SavedSettings{MusicVolume: 0.9}, nil)
	assert.Equal(t, 0.9, GetMusicVolume())
}
