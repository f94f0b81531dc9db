package audio

import (
	"encoding/binary"
	"sync"

	"github.com/gopxl/beep"
)

// bytesPerFrame is one 16-bit little-endian stereo frame.
const bytesPerFrame = 4

// Mixer sums every playing stream and serves the result as PCM to the
// output device, which reads from its own goroutine. All stream mutation
// goes through Lock.
type Mixer struct {
	mu  sync.Mutex
	mix beep.Mixer
	buf [][2]float64
}

// Add starts playing streams.
func (m *Mixer) Add(s ...beep.Streamer) {
	m.mu.Lock()
	m.mix.Add(s...)
	m.mu.Unlock()
}

// Lock runs fn with the mixer paused between reads.
func (m *Mixer) Lock(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn()
}

// Len returns the number of live streams.
func (m *Mixer) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mix.Len()
}

// Clear drops every stream.
func (m *Mixer) Clear() {
	m.mu.Lock()
	m.mix.Clear()
	m.mu.Unlock()
}

// Read fills p with 16-bit little-endian stereo frames. It never blocks and
// never ends; with nothing playing it yields silence.
func (m *Mixer) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	m.mu.Lock()
	if cap(m.buf) < frames {
		m.buf = make([][2]float64, frames)
	}
	buf := m.buf[:frames]
	n, _ := m.mix.Stream(buf)
	for i := n; i < frames; i++ {
		buf[i] = [2]float64{}
	}
	for i, s := range buf {
		binary.LittleEndian.PutUint16(p[i*bytesPerFrame:], uint16(toInt16(s[0])))
		binary.LittleEndian.PutUint16(p[i*bytesPerFrame+2:], uint16(toInt16(s[1])))
	}
	m.mu.Unlock()
	return frames * bytesPerFrame, nil
}

// toInt16 soft-limits v above 0.8 and hard-clips at full scale.
func toInt16(v float64) int16 {
	switch {
	case v > 0.8:
		v = 0.8 + 0.2*(1-1/(1+(v-0.8)*5))
	case v < -0.8:
		v = -0.8 - 0.2*(1-1/(1+(-v-0.8)*5))
	}
	v = max(-1, min(v, 1))
	return int16(v * 32767)
}
