// Package audio synthesizes the game's music and sound effects with beep and
// plays them on the system speaker.
package audio

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// MaxVolume is the top of the volume scale scenes use.
	MaxVolume = 128
)

// ErrClosed is returned when playing on a closed player.
var ErrClosed = errors.New("audio: player closed")

// Gain maps a volume in [0, MaxVolume] to a linear gain in [0, 1] along a
// square-root loudness curve, so low volumes stay audible.
func Gain(volume int) float64 {
	if volume <= 0 {
		return 0
	}
	if volume >= MaxVolume {
		return 1
	}
	return math.Sqrt(float64(volume) / MaxVolume)
}

// Player plays one background track at a time plus any number of
// overlapping one-shot effects.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	music  *beep.Ctrl
	rate   beep.SampleRate
	closed bool
}

var speakerOnce struct {
	sync.Once
	err error
}

// Open initializes the speaker and starts an empty mixer on it.
// The speaker is process-wide; Open may only succeed once.
func Open() (*Player, error) {
	speakerOnce.Do(func() {
		speakerOnce.err = speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	})
	if speakerOnce.err != nil {
		return nil, speakerOnce.err
	}

	p := &Player{mixer: &beep.Mixer{}, rate: sampleRate}
	speaker.Play(p.mixer)
	return p, nil
}

// Play replaces the background music with the named track, looping forever.
func (p *Player) Play(track string, volume int) error {
	s, err := NewSongStreamer(track, p.rate)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}

	ctrl := &beep.Ctrl{Streamer: newVolume(s, Gain(volume))}
	speaker.Lock()
	if p.music != nil {
		p.music.Paused = true
		p.music.Streamer = nil
	}
	p.music = ctrl
	p.mixer.Add(ctrl)
	speaker.Unlock()
	return nil
}

// PlaySound mixes a one-shot effect over whatever is playing.
func (p *Player) PlaySound(effect string, volume int) error {
	s, err := NewEffectStreamer(effect, p.rate)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}

	speaker.Lock()
	p.mixer.Add(newVolume(s, Gain(volume)))
	speaker.Unlock()
	return nil
}

// Stop silences the background music. Effects already playing finish.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}

	speaker.Lock()
	if p.music != nil {
		p.music.Paused = true
		p.music.Streamer = nil
		p.music = nil
	}
	speaker.Unlock()
	return nil
}

// Close stops all sound. The player cannot be used afterwards.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true

	speaker.Lock()
	p.mixer.Clear()
	p.music = nil
	speaker.Unlock()
}

// Silent accepts every known track and effect without producing sound.
// It stands in for the speaker over SSH and when no audio device exists.
type Silent struct{}

// Play validates the track name.
func (Silent) Play(track string, volume int) error {
	_, err := NewSongStreamer(track, sampleRate)
	return err
}

// PlaySound validates the effect name.
func (Silent) PlaySound(effect string, volume int) error {
	_, err := NewEffectStreamer(effect, sampleRate)
	return err
}

// Stop does nothing.
func (Silent) Stop() error { return nil }
