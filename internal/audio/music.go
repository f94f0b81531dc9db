package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
)

// resampleQuality trades CPU for fidelity when the track rate differs
// from the output rate.
const resampleQuality = 4

// Music is a looping background track.
type Music struct {
	ctrl   *beep.Ctrl
	volume *effects.Volume
	closer io.Closer
}

// LoadMusic opens an mp3 or wav file and prepares it to loop at volume
// (linear, 0..1) on an output running at sr.
func LoadMusic(path string, sr beep.SampleRate, volume float64) (*Music, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open music: %w", err)
	}
	m, err := DecodeMusic(f, filepath.Ext(path), sr, volume)
	if err != nil {
		f.Close()
		return nil, err
	}
	return m, nil
}

// DecodeMusic decodes rc by extension (".mp3" or ".wav"). The returned
// track owns rc.
func DecodeMusic(rc io.ReadCloser, ext string, sr beep.SampleRate, volume float64) (*Music, error) {
	var (
		s      beep.StreamSeekCloser
		format beep.Format
		err    error
	)
	switch strings.ToLower(ext) {
	case ".mp3":
		s, format, err = mp3.Decode(rc)
	case ".wav":
		s, format, err = wav.Decode(rc)
	default:
		return nil, fmt.Errorf("music format %q not supported", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode music: %w", err)
	}

	var stream beep.Streamer = beep.Loop(-1, s)
	if format.SampleRate != sr {
		stream = beep.Resample(resampleQuality, format.SampleRate, sr, stream)
	}
	vol := newVolume(stream, volume)
	return &Music{
		ctrl:   &beep.Ctrl{Streamer: vol, Paused: true},
		volume: vol,
		closer: s,
	}, nil
}

// Streamer returns the track stream for the mixer.
func (m *Music) Streamer() beep.Streamer { return m.ctrl }

// SetPaused pauses or resumes the track. The caller must hold the mixer lock.
func (m *Music) SetPaused(p bool) { m.ctrl.Paused = p }

// Paused reports whether the track is paused.
func (m *Music) Paused() bool { return m.ctrl.Paused }

// Close ends the track and releases the decoder. The caller must hold the
// mixer lock.
func (m *Music) Close() error {
	m.ctrl.Streamer = nil
	return m.closer.Close()
}
