package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// edge is the attack/release ramp on every tone, long enough to avoid clicks.
const edge = 5 * time.Millisecond

// Fanfare parameters.
var fanfareNotes = []float64{500, 600, 700, 900}

const (
	fanfareNote = 200 * time.Millisecond
	fanfareGap  = 150 * time.Millisecond
	fanfareVol  = 0.15
)

// Tone returns a sine tone of freq Hz lasting dur at linear volume vol,
// starting after delay.
func Tone(sr beep.SampleRate, freq float64, dur time.Duration, vol float64, delay time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		// frequency at or above Nyquist
		return beep.Silence(sr.N(delay + dur))
	}
	s := newEnvelope(beep.Take(sr.N(dur), sine), sr.N(dur), sr.N(edge), sr.N(edge))
	s = newVolume(s, vol)
	if delay > 0 {
		return beep.Seq(beep.Silence(sr.N(delay)), s)
	}
	return s
}

// Fanfare returns the four-note ascending unlock cue, one stream per note.
// Notes start fanfareGap apart and overlap their predecessor's tail.
func Fanfare(sr beep.SampleRate) []beep.Streamer {
	notes := make([]beep.Streamer, 0, len(fanfareNotes))
	for i, f := range fanfareNotes {
		notes = append(notes, Tone(sr, f, fanfareNote, fanfareVol, time.Duration(i)*fanfareGap))
	}
	return notes
}

// envelope applies linear attack and release ramps to a stream of fixed length.
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

func newEnvelope(s beep.Streamer, total, attack, release int) beep.Streamer {
	return &envelope{streamer: s, total: total, attack: attack, release: release}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1.0
		if e.attack > 0 && e.pos < e.attack {
			g = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			g = math.Min(g, float64(left)/float64(e.release))
		}
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear gain. beep volumes are logarithmic, so a
// non-positive gain becomes silence.
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
