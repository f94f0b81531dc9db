package game

import "time"

// Preroll timings.
const (
	PrerollDuration = 3 * time.Second
	CurtainDuration = 800 * time.Millisecond
)

// Preroll is the loading screen shown before the flight scene mounts.
// A progress bar fills over Duration, then a curtain slides up over
// Curtain, then the completion callback fires exactly once.
type Preroll struct {
	Duration time.Duration
	Curtain  time.Duration
	elapsed  time.Duration
	fired    bool
	onDone   func()
}

// NewPreroll creates a preroll with the default timings.
func NewPreroll(onDone func()) *Preroll {
	return &Preroll{Duration: PrerollDuration, Curtain: CurtainDuration, onDone: onDone}
}

// Advance moves the preroll clock forward.
func (p *Preroll) Advance(dt time.Duration) {
	if p.fired {
		return
	}
	p.elapsed += dt
	if p.elapsed >= p.Duration+p.Curtain {
		p.fired = true
		if p.onDone != nil {
			p.onDone()
		}
	}
}

// Skip jumps straight to completion.
func (p *Preroll) Skip() {
	p.Advance(p.Duration + p.Curtain)
}

// Progress returns the loading bar fill in [0, 100].
func (p *Preroll) Progress() float64 {
	if p.Duration <= 0 || p.elapsed >= p.Duration {
		return 100
	}
	return float64(p.elapsed) / float64(p.Duration) * 100
}

// CurtainOffset returns how far the curtain has slid up, in [0, 1].
func (p *Preroll) CurtainOffset() float64 {
	if p.elapsed <= p.Duration {
		return 0
	}
	if p.Curtain <= 0 {
		return 1
	}
	t := float64(p.elapsed-p.Duration) / float64(p.Curtain)
	return QuadInOut(min(t, 1))
}

// Done reports whether the completion callback has fired.
func (p *Preroll) Done() bool { return p.fired }
