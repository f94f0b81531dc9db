// Package audio synthesizes the scene's sound cues and ambient drone,
// plays optional background music, and feeds the mix to an output device.
package audio

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
)

// ErrNoOutput is returned when no output device could be opened.
var ErrNoOutput = errors.New("audio output unavailable")

// State is the engine lifecycle.
type State uint8

const (
	// Uninitialized: no output yet. Opened on the first user gesture.
	Uninitialized State = iota
	// Suspended: output open but paused, because the scene is muted.
	Suspended
	// Running: output open and playing.
	Running
)

func (s State) String() string {
	switch s {
	case Suspended:
		return "suspended"
	case Running:
		return "running"
	}
	return "uninitialized"
}

// Output is a PCM sink that pulls 16-bit little-endian stereo from a reader.
type Output interface {
	Play(r io.Reader) error
	Pause()
	Resume()
	Close() error
}

// OutputFactory opens an output at the given sample rate.
type OutputFactory func(sampleRate int) (Output, error)

// Config is the engine setup.
type Config struct {
	SampleRate  int
	Muted       bool
	MusicPath   string
	MusicVolume float64
}

// Engine owns the audio lifecycle. It starts Uninitialized, opens its
// output on the first Wake, and moves between Running and Suspended as
// mute is toggled. Every play call is fire-and-forget and silently does
// nothing unless the engine is Running.
type Engine struct {
	mu       sync.Mutex
	state    State
	muted    bool
	closed   bool
	failed   bool
	sr       beep.SampleRate
	open     OutputFactory
	out      Output
	mix      *Mixer
	drone    *Drone
	music    *Music
	musicCfg Config
	rng      *rand.Rand
	log      zerolog.Logger
}

// NewEngine creates an engine. Nothing is opened until Wake.
func NewEngine(cfg Config, open OutputFactory, log zerolog.Logger) *Engine {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44100
	}
	return &Engine{
		muted:    cfg.Muted,
		sr:       beep.SampleRate(cfg.SampleRate),
		open:     open,
		mix:      &Mixer{},
		musicCfg: cfg,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		log:      log,
	}
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Muted reports the mute flag.
func (e *Engine) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// Mixer returns the PCM source the output reads from.
func (e *Engine) Mixer() *Mixer { return e.mix }

// Wake opens the output on the first qualifying user gesture. Later calls
// do nothing. If the device refuses to start, the next gesture retries;
// if no device exists at all, the engine stays silent for good.
func (e *Engine) Wake() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != Uninitialized || e.closed || e.failed {
		return nil
	}

	out, err := e.open(int(e.sr))
	if err != nil || out == nil {
		e.failed = true
		e.log.Warn().Err(err).Msg("audio output unavailable, continuing without sound")
		return fmt.Errorf("%w: %v", ErrNoOutput, err)
	}
	if err := out.Play(e.mix); err != nil {
		_ = out.Close()
		e.log.Warn().Err(err).Msg("audio playback refused, retrying on next gesture")
		return fmt.Errorf("start output: %w", err)
	}
	e.out = out
	e.loadMusic()

	if e.muted {
		out.Pause()
		e.setState(Suspended)
		return nil
	}
	e.startAmbient()
	e.setState(Running)
	return nil
}

func (e *Engine) loadMusic() {
	if e.musicCfg.MusicPath == "" {
		return
	}
	m, err := LoadMusic(e.musicCfg.MusicPath, e.sr, e.musicCfg.MusicVolume)
	if err != nil {
		e.log.Warn().Err(err).Str("path", e.musicCfg.MusicPath).Msg("background music disabled")
		return
	}
	e.music = m
	e.mix.Add(m.Streamer())
}

// startAmbient starts a fresh drone and resumes music. Caller holds e.mu.
func (e *Engine) startAmbient() {
	e.drone = NewDrone(e.sr, e.rng)
	e.mix.Add(e.drone.Streamers()...)
	if e.music != nil {
		e.mix.Lock(func() { e.music.SetPaused(false) })
	}
}

// stopAmbient stops the drone and pauses music. Caller holds e.mu.
func (e *Engine) stopAmbient() {
	e.mix.Lock(func() {
		if e.drone != nil {
			if err := e.drone.Stop(); err != nil {
				e.log.Debug().Err(err).Msg("drone stop")
			}
			e.drone = nil
		}
		if e.music != nil {
			e.music.SetPaused(true)
		}
	})
}

func (e *Engine) setState(s State) {
	if e.state == s {
		return
	}
	e.log.Debug().Stringer("from", e.state).Stringer("to", s).Msg("audio state")
	e.state = s
}

// SetMuted mutes or unmutes. Muting suspends the output and stops the
// drone; unmuting resumes it with a freshly faded-in drone.
func (e *Engine) SetMuted(m bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = m
	switch {
	case m && e.state == Running:
		e.stopAmbient()
		e.out.Pause()
		e.setState(Suspended)
	case !m && e.state == Suspended:
		e.out.Resume()
		e.startAmbient()
		e.setState(Running)
	}
}

// ToggleMute flips the mute flag and returns the new value.
func (e *Engine) ToggleMute() bool {
	m := !e.Muted()
	e.SetMuted(m)
	return m
}

// PlayTone plays a sine cue after delay.
func (e *Engine) PlayTone(freq float64, dur time.Duration, vol float64, delay time.Duration) {
	if !e.running() {
		return
	}
	e.mix.Add(Tone(e.sr, freq, dur, vol, delay))
}

// PlayUnlockFanfare plays the four-note completion cue.
func (e *Engine) PlayUnlockFanfare() {
	if !e.running() {
		return
	}
	e.mix.Add(Fanfare(e.sr)...)
}

func (e *Engine) running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state == Running
}

// Close releases the drone, the music and the output. Failures are logged,
// never returned. The engine cannot be woken again.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.stopAmbient()
	if e.music != nil {
		e.mix.Lock(func() {
			if err := e.music.Close(); err != nil {
				e.log.Warn().Err(err).Msg("close music")
			}
		})
		e.music = nil
	}
	e.mix.Clear()
	if e.out != nil {
		if err := e.out.Close(); err != nil {
			e.log.Warn().Err(err).Msg("close audio output")
		}
		e.out = nil
	}
	e.setState(Uninitialized)
}
