package game

import "math"

// freeFlight is the depth-lock token of the per-tick ease step.
const freeFlight uint64 = 0

// depthLock grants one writer at a time access to camera depth. The ease
// step holds token 0 whenever no tween has acquired the axis.
type depthLock struct {
	owner uint64
	last  uint64
}

func (l *depthLock) acquire() uint64 {
	l.last++
	l.owner = l.last
	return l.owner
}

func (l *depthLock) release(tok uint64) {
	if l.owner == tok {
		l.owner = freeFlight
	}
}

func (l *depthLock) holds(tok uint64) bool { return l.owner == tok }

// Dock tween parameters.
const (
	dockStandoff  = 350.0 // camera parks this far in front of the entity
	tweenDuration = 2.0   // seconds
	warpBurst     = 50.0
	warpDecayDist = 100.0
	warpDecay     = 0.9
)

// Tween interpolates camera depth with quadratic in-out easing.
type Tween struct {
	From, To float64
	Duration float64 // seconds
	Elapsed  float64
	token    uint64
}

// Step advances the tween by dt seconds and returns the eased value.
func (t *Tween) Step(dt float64) (z float64, done bool) {
	t.Elapsed += dt
	if t.Duration <= 0 || t.Elapsed >= t.Duration {
		t.Elapsed = t.Duration
		return t.To, true
	}
	p := QuadInOut(t.Elapsed / t.Duration)
	return t.From + (t.To-t.From)*p, false
}

// QuadInOut eases p in [0,1]: accelerate through the first half,
// decelerate through the second.
func QuadInOut(p float64) float64 {
	if p < 0.5 {
		return 2 * p * p
	}
	return 1 - math.Pow(-2*p+2, 2)/2
}

func (s *Sim) startTween(to float64) {
	s.cancelTween()
	tok := s.lock.acquire()
	s.tween = &Tween{From: s.cam.Z, To: to, Duration: tweenDuration, token: tok}
}

func (s *Sim) stepTween(dt float64) {
	tw := s.tween
	if tw == nil {
		return
	}
	z, done := tw.Step(dt)
	s.writeDepth(tw.token, z)
	if math.Abs(z-tw.To) < warpDecayDist {
		s.warp *= warpDecay
	}
	if done {
		s.warp = 0
		s.lock.release(tw.token)
		s.tween = nil
	}
}

func (s *Sim) cancelTween() {
	if s.tween == nil {
		return
	}
	s.lock.release(s.tween.token)
	s.tween = nil
}

// Tweening reports whether a dock tween currently owns camera depth.
func (s *Sim) Tweening() bool { return s.tween != nil }
