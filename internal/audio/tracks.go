package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Track and effect names scenes refer to.
const (
	TrackDigitalLove = "digital-love"
	TrackHoldTheLine = "hold-the-line"
	EffectArme       = "arme"
)

// Rest marks a silent step in a melody.
const Rest = 0

// Note is one step of a melody: a frequency in Hz (Rest for silence) held for
// a number of beats.
type Note struct {
	Freq  float64
	Beats float64
}

// Song is a looping synthesized melody over a bass line.
type Song struct {
	BPM    float64
	Lead   WaveType
	Melody []Note
	Bass   []Note
}

// noteFreq returns the frequency of a MIDI note number.
func noteFreq(midi int) float64 {
	return 440 * math.Pow(2, float64(midi-69)/12)
}

func notes(beats float64, midi ...int) []Note {
	out := make([]Note, len(midi))
	for i, m := range midi {
		out[i] = Note{Beats: beats}
		if m != Rest {
			out[i].Freq = noteFreq(m)
		}
	}
	return out
}

// songs holds the built-in background music.
var songs = map[string]Song{
	TrackDigitalLove: {
		BPM:    112,
		Lead:   WaveTriangle,
		Melody: notes(0.5, 73, 76, 80, 76, 73, 71, 69, 71, 73, 76, 81, 80, 76, 73, 71, Rest),
		Bass:   notes(2, 45, 40, 42, 37),
	},
	TrackHoldTheLine: {
		BPM:    128,
		Lead:   WaveSquare,
		Melody: notes(0.5, 64, 64, 67, 64, 69, 67, 64, 62, 64, 64, 67, 71, 69, 67, 64, Rest),
		Bass:   notes(1, 40, 40, 43, 43, 45, 45, 43, 38),
	},
}

// Tracks returns the names of the built-in songs.
func Tracks() []string {
	return []string{TrackDigitalLove, TrackHoldTheLine}
}

// Effects returns the names of the built-in sound effects.
func Effects() []string {
	return []string{EffectArme}
}

// melody loops over a note list, restarting each note's phase so notes
// stay in tune across loops.
type melody struct {
	notes    []Note
	wave     WaveType
	rate     beep.SampleRate
	beat     int // Samples per beat
	index    int
	position int // Sample within the current note
	phase    float64
}

func newMelody(ns []Note, wave WaveType, bpm float64, rate beep.SampleRate) *melody {
	return &melody{
		notes: ns,
		wave:  wave,
		rate:  rate,
		beat:  rate.N(time.Duration(float64(time.Minute) / bpm)),
	}
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	if len(m.notes) == 0 {
		return 0, false
	}
	for i := range samples {
		note := m.notes[m.index]
		length := int(note.Beats * float64(m.beat))

		val := 0.0
		if note.Freq != Rest && length > 0 {
			// Short fade at both ends of the note avoids clicks
			edge := math.Min(float64(m.position), float64(length-m.position)) / float64(m.rate.N(5*time.Millisecond))
			val = m.wave.sample(m.phase) * math.Min(edge, 1)
			m.phase += note.Freq / float64(m.rate)
			m.phase -= math.Floor(m.phase)
		}
		samples[i][0] = val
		samples[i][1] = val

		m.position++
		if m.position >= length {
			m.position = 0
			m.phase = 0
			m.index = (m.index + 1) % len(m.notes)
		}
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

// NewSongStreamer returns an endless streamer playing the named song.
func NewSongStreamer(name string, rate beep.SampleRate) (beep.Streamer, error) {
	song, ok := songs[name]
	if !ok {
		return nil, fmt.Errorf("audio: unknown track %q", name)
	}
	return beep.Mix(
		newVolume(newMelody(song.Melody, song.Lead, song.BPM, rate), 0.35),
		newVolume(newMelody(song.Bass, WaveSine, song.BPM, rate), 0.45),
	), nil
}

// NewEffectStreamer returns a finite streamer playing the named effect.
func NewEffectStreamer(name string, rate beep.SampleRate) (beep.Streamer, error) {
	switch name {
	case EffectArme:
		const d = 120 * time.Millisecond
		zap := NewEnvelope(NewSweep(1400, 180, d, WaveSaw, rate), d, 2*time.Millisecond, 60*time.Millisecond, rate)
		hiss := NewEnvelope(NewOscillator(0, d/2, WaveNoise, rate), d/2, 0, 40*time.Millisecond, rate)
		return beep.Mix(newVolume(zap, 0.6), newVolume(hiss, 0.25)), nil
	default:
		return nil, fmt.Errorf("audio: unknown effect %q", name)
	}
}
