package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/tilerunner/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	bytesPerFrame = 4 // 16-bit stereo
	synthVolume   = 0.2
	noteGate      = 0.85 // fraction of a beat a note sounds
)

// AudioLoader synthesizes music tracks and caches the rendered PCM
type AudioLoader struct {
	cache   map[string][]byte
	context *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		cache:   make(map[string][]byte),
		context: ctx,
	}
}

// LoadMusic returns a looping player for a track.
func (l *AudioLoader) LoadMusic(track cfg.TrackDef) (*audio.Player, error) {
	pcm, ok := l.cache[track.Name]
	if !ok {
		pcm = SynthTrack(track, l.context.SampleRate())
		l.cache[track.Name] = pcm
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("track %s has nothing to play", track.Name)
	}

	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	return l.context.NewPlayer(loop)
}

// SynthTrack renders a track as 16-bit little-endian stereo PCM, one note
// per beat. Each note is a square wave with a linear decay.
func SynthTrack(track cfg.TrackDef, sampleRate int) []byte {
	if track.BPM <= 0 || sampleRate <= 0 || len(track.Notes) == 0 {
		return nil
	}

	beat := sampleRate * 60 / track.BPM
	out := make([]byte, len(track.Notes)*beat*bytesPerFrame)
	sounding := int(float64(beat) * noteGate)

	for i, note := range track.Notes {
		if note <= 0 {
			continue
		}
		freq := NoteFrequency(note)
		start := i * beat
		for n := 0; n < sounding; n++ {
			t := float64(n) / float64(sampleRate)
			v := synthVolume * (1 - float64(n)/float64(sounding))
			if math.Sin(2*math.Pi*freq*t) < 0 {
				v = -v
			}
			s := uint16(int16(v * math.MaxInt16))
			off := (start + n) * bytesPerFrame
			binary.LittleEndian.PutUint16(out[off:], s)
			binary.LittleEndian.PutUint16(out[off+2:], s)
		}
	}
	return out
}

// NoteFrequency converts a MIDI note number to Hz.
func NoteFrequency(note int) float64 {
	return 440 * math.Pow(2, float64(note-69)/12)
}
