package game

const (
	padGain      = 15.0 // pan units per pump per unit of pad deflection
	throttleGain = 2.0  // depth units per pump per throttle percent
	throttleMax  = 100.0
)

// Joystick is the touch pad plus throttle. Held values keep feeding the
// simulation from their own per-frame pump, even with no new pointer events.
type Joystick struct {
	sim        *Sim
	panning    bool
	panX, panY float64
	throttling bool
	throttle   float64
}

// NewJoystick creates an idle joystick driving sim.
func NewJoystick(sim *Sim) *Joystick {
	return &Joystick{sim: sim}
}

// Pan sets the held pan vector. Components are in [-1, 1] and already
// inverted, so pushing the pad right pans the view left.
func (j *Joystick) Pan(dx, dy float64) {
	j.panning = true
	j.panX, j.panY = dx, dy
}

// ReleasePan stops panning.
func (j *Joystick) ReleasePan() {
	j.panning = false
	j.panX, j.panY = 0, 0
}

// SetWarpThrottle holds the throttle at v, clamped to [0, 100].
func (j *Joystick) SetWarpThrottle(v float64) {
	j.throttling = true
	j.throttle = max(0, min(v, throttleMax))
}

// ReleaseThrottle lets go of the throttle.
func (j *Joystick) ReleaseThrottle() {
	j.throttling = false
	j.throttle = 0
}

// Release drops both controls.
func (j *Joystick) Release() {
	j.ReleasePan()
	j.ReleaseThrottle()
}

// State returns the held values for drawing. ok flags are false when idle.
func (j *Joystick) State() (panX, panY float64, panOK bool, throttle float64, throttleOK bool) {
	return j.panX, j.panY, j.panning, j.throttle, j.throttling
}

// Pump applies one frame of held input. The controls do nothing while docked.
func (j *Joystick) Pump() {
	if j.sim.Docked() {
		return
	}
	if j.panning {
		j.sim.NudgePan(j.panX*padGain, j.panY*padGain)
	}
	if j.throttling {
		j.sim.AdjustDepthTarget(j.throttle * throttleGain)
	}
}

// PadVector converts a pointer at (x, y) over pad region r into an
// inverted pan vector, (-1..1) on each axis at the pad edge.
func PadVector(r Region, x, y float64) (dx, dy float64) {
	nx := (x-r.X)/r.W - 0.5
	ny := (y-r.Y)/r.H - 0.5
	return -nx * 2, -ny * 2
}

// ThrottleValue converts a pointer height over throttle region r into a
// throttle percentage, 100 at the top.
func ThrottleValue(r Region, y float64) float64 {
	raw := 1 - (y-r.Y)/r.H
	return max(0, min(raw, 1)) * throttleMax
}
