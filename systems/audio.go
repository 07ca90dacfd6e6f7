package systems

import (
	"sync"

	"github.com/automoto/tilerunner/archetypes"
	"github.com/automoto/tilerunner/assets"
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// LoadAudioDefaults takes the music volume from the config. Call it after the
// config file is applied and before saved settings are.
func LoadAudioDefaults() {
	globalMusicVolume = cfg.Audio.DefaultMusicVol
}

// UpdateAudio advances a running music fade. When the fade finishes the
// pending track starts from the beginning.
func UpdateAudio(e *ecs.ECS) {
	a := GetOrCreateAudio(e)
	if a.Fade == nil {
		return
	}

	vol, done := a.Fade.Update(float32(frameMillis()))
	if a.MusicPlayer != nil {
		a.MusicPlayer.SetVolume(float64(vol))
	}
	if done {
		a.Fade = nil
		playTrack(a, a.TrackIndex)
	}
}

// PlayTrack starts the track at index, looping.
func PlayTrack(e *ecs.ECS, index int) {
	playTrack(GetOrCreateAudio(e), index)
}

func playTrack(a *components.AudioData, index int) {
	tracks := cfg.Music.Tracks
	if len(tracks) == 0 {
		return
	}
	index = ((index % len(tracks)) + len(tracks)) % len(tracks)

	stopMusic(a)
	player, err := globalAudioLoader.LoadMusic(tracks[index])
	if err != nil {
		logger.Warn("could not start music", "track", tracks[index].Name, "error", err)
		return
	}
	player.SetVolume(globalMusicVolume)
	player.Play()

	a.MusicPlayer = player
	a.TrackIndex = index
	a.Fade = nil
}

// nextTrack switches straight to the following track.
func nextTrack(a *components.AudioData) {
	playTrack(a, a.TrackIndex+1)
}

// FadeOutMusic fades the current track out, then restarts it.
func FadeOutMusic(e *ecs.ECS) {
	fadeOutMusic(GetOrCreateAudio(e))
}

func fadeOutMusic(a *components.AudioData) {
	if a.MusicPlayer == nil {
		return
	}
	a.Fade = gween.New(float32(globalMusicVolume), 0, float32(cfg.Audio.MusicFadeDuration), ease.Linear)
}

// StopMusic immediately stops the current music
func StopMusic(e *ecs.ECS) {
	stopMusic(GetOrCreateAudio(e))
}

func stopMusic(a *components.AudioData) {
	if a.MusicPlayer != nil {
		_ = a.MusicPlayer.Close()
		a.MusicPlayer = nil
	}
	a.Fade = nil
}

// OnMusicChanged moves to the next track when a music power-up is taken.
func OnMusicChanged(w donburi.World, _ components.MusicChanged) {
	if len(cfg.Music.Tracks) == 0 {
		return
	}
	a := getOrCreateAudioInWorld(w)
	nextTrack(a)
	logger.Info("music changed", "track", cfg.Music.Tracks[a.TrackIndex].Name)
}

// OnMapChanged fades the music out and back in for the new map.
func OnMapChanged(w donburi.World, ev components.MapChanged) {
	logger.Info("map changed", "map", ev.Name, "number", ev.Number)
	fadeOutMusic(getOrCreateAudioInWorld(w))
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(e *ecs.ECS, volume float64) {
	globalMusicVolume = volume
	a := GetOrCreateAudio(e)
	a.MusicVolume = volume
	if a.MusicPlayer != nil && a.Fade == nil {
		a.MusicPlayer.SetVolume(volume)
	}
}

// GetMusicVolume returns the current music volume (0.0 - 1.0)
func GetMusicVolume() float64 {
	return globalMusicVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	return getOrCreateAudioInWorld(e.World)
}

func getOrCreateAudioInWorld(w donburi.World) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(w)
	if !ok {
		entry = archetypes.Audio.SpawnInWorld(w)
		components.Audio.SetValue(entry, components.AudioData{
			Context:     globalAudioContext,
			MusicVolume: globalMusicVolume,
			TrackIndex:  -1,
		})
	}
	return components.Audio.Get(entry)
}
