// Package speaker plays the audio mix through Ebitengine's audio context.
package speaker

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	cosmicaudio "github.com/cosmic-explorer/cosmic_explorer/internal/audio"
)

// bufferSize keeps cue latency low without underruns.
const bufferSize = 100 * time.Millisecond

// Output is an Ebitengine audio player pulling from a PCM reader.
type Output struct {
	mu     sync.Mutex
	ctx    *audio.Context
	player *audio.Player
}

// Open returns an output on the process-wide audio context, creating the
// context at sampleRate if none exists yet.
func Open(sampleRate int) (cosmicaudio.Output, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	} else if ctx.SampleRate() != sampleRate {
		return nil, fmt.Errorf("audio context runs at %d Hz, want %d", ctx.SampleRate(), sampleRate)
	}
	return &Output{ctx: ctx}, nil
}

// Play starts pulling from r.
func (o *Output) Play(r io.Reader) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.player != nil {
		_ = o.player.Close()
		o.player = nil
	}
	p, err := o.ctx.NewPlayer(r)
	if err != nil {
		return fmt.Errorf("new player: %w", err)
	}
	p.SetBufferSize(bufferSize)
	p.Play()
	o.player = p
	return nil
}

// Pause stops pulling.
func (o *Output) Pause() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.player != nil {
		o.player.Pause()
	}
}

// Resume continues pulling.
func (o *Output) Resume() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.player != nil {
		o.player.Play()
	}
}

// Close releases the player. The context lives for the process.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.player == nil {
		return nil
	}
	err := o.player.Close()
	o.player = nil
	return err
}
