package audio

import (
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
)

// ErrDroneStopped is returned when stopping a drone twice.
var ErrDroneStopped = errors.New("ambient drone already stopped")

var droneFreqs = []float64{55, 82.5, 110, 165}

const (
	droneGain      = 0.02 // first voice; each next voice adds droneGainStep
	droneGainStep  = 0.005
	droneFadeIn    = 3 * time.Second
	droneDrift     = 0.5 // peak-to-peak Hz
	droneDriftBase = 5 * time.Second
)

// voice is one sine of the ambient drone. Its gain ramps linearly from zero
// and its pitch wanders around the base frequency on a fixed period.
type voice struct {
	sr       beep.SampleRate
	base     float64
	freq     float64
	phase    float64
	gain     float64
	pos      int
	fade     int
	every    int
	untilHop int
	rng      *rand.Rand
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		g := v.gain
		if v.pos < v.fade {
			g *= float64(v.pos) / float64(v.fade)
		}
		s := math.Sin(2*math.Pi*v.phase) * g
		samples[i][0] = s
		samples[i][1] = s

		v.phase += v.freq / float64(v.sr)
		v.phase -= math.Floor(v.phase)
		v.pos++
		v.untilHop--
		if v.untilHop <= 0 {
			v.freq = v.base + (v.rng.Float64()-0.5)*droneDrift
			v.untilHop = v.every
		}
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// Drone is a running ambient pad. Each voice sits behind a beep.Ctrl so
// Stop can end it from outside the audio goroutine.
type Drone struct {
	voices  []*voice
	ctrls   []*beep.Ctrl
	stopped bool
}

// NewDrone builds the drone voices. Add Streamers() to a mixer to hear it.
func NewDrone(sr beep.SampleRate, rng *rand.Rand) *Drone {
	d := &Drone{}
	for i, f := range droneFreqs {
		v := &voice{
			sr:    sr,
			base:  f,
			freq:  f,
			gain:  droneGain + float64(i)*droneGainStep,
			fade:  sr.N(droneFadeIn),
			every: sr.N(droneDriftBase + time.Duration(i)*time.Second),
			rng:   rng,
		}
		v.untilHop = v.every
		d.voices = append(d.voices, v)
		d.ctrls = append(d.ctrls, &beep.Ctrl{Streamer: v})
	}
	return d
}

// Streamers returns the voice streams.
func (d *Drone) Streamers() []beep.Streamer {
	out := make([]beep.Streamer, len(d.ctrls))
	for i, c := range d.ctrls {
		out[i] = c
	}
	return out
}

// Stop ends every voice. The caller must hold the mixer lock.
func (d *Drone) Stop() error {
	if d.stopped {
		return ErrDroneStopped
	}
	d.stopped = true
	for _, c := range d.ctrls {
		c.Streamer = nil
	}
	return nil
}
