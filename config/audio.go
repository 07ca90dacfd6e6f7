package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int     `yaml:"sample_rate"`
	DefaultMusicVol   float64 `yaml:"music_volume"`
	MusicFadeDuration float64 `yaml:"music_fade_ms"` // ms for a music fade out
}

// TrackDef describes a synthesized music loop. Notes are MIDI note numbers,
// one per beat; 0 is a rest.
type TrackDef struct {
	Name  string
	BPM   int
	Notes []int
}

// MusicConfig lists the tracks the MUSIC power-up cycles through
type MusicConfig struct {
	Tracks []TrackDef
}

var Audio AudioConfig
var Music MusicConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.5,
		MusicFadeDuration: 1000,
	}

	Music = MusicConfig{
		Tracks: []TrackDef{
			{
				Name: "overworld",
				BPM:  240,
				Notes: []int{
					72, 0, 76, 0, 79, 0, 76, 0,
					74, 0, 77, 0, 81, 79, 77, 0,
					72, 0, 76, 0, 79, 0, 84, 0,
					83, 81, 79, 77, 76, 0, 74, 0,
				},
			},
			{
				Name: "underground",
				BPM:  180,
				Notes: []int{
					48, 60, 45, 57, 46, 58, 0, 0,
					48, 60, 45, 57, 46, 58, 0, 0,
					41, 53, 38, 50, 39, 51, 0, 0,
					41, 53, 38, 50, 39, 51, 0, 0,
				},
			},
		},
	}
}
