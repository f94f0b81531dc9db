package game

import (
	"math"
	"time"
)

// Gesture thresholds.
const (
	pinchGain  = 5.0                    // depth units per pixel of finger spread
	tapMaxDur  = 200 * time.Millisecond // longer touches are drags
	tapSlop    = 10.0                   // pixels a tap may wander
	clickSlop  = 6.0                    // pixels a click may wander
	maxTouches = 2
)

type touchPoint struct {
	x, y float64
}

// capture is a pointer held by an on-screen control.
type capture struct {
	region Region
	x, y   float64
}

// Controller turns platform pointer, wheel and touch events into simulation
// calls. Events that land on a control region are consumed by that control
// and never reach the world gestures underneath.
type Controller struct {
	sim       *Sim
	joy       *Joystick
	now       func() time.Time
	onGesture func()
	regions   []Region
	detached  bool

	mouseDown    bool
	mouseCapture *capture
	pressX       float64
	pressY       float64
	dragOffX     float64
	dragOffY     float64
	mouseTravel  float64

	touchCaptures map[int]*capture
	touches       map[int]touchPoint
	touchOrder    []int
	touchStart    time.Time
	touchX        float64
	touchY        float64
	touchOffX     float64
	touchOffY     float64
	touchTravel   float64
	pinching      bool
	pinchDist0    float64
	pinchZ0       float64
}

// NewController creates a controller feeding sim and joy.
func NewController(sim *Sim, joy *Joystick) *Controller {
	return &Controller{
		sim:           sim,
		joy:           joy,
		now:           time.Now,
		touchCaptures: make(map[int]*capture),
		touches:       make(map[int]touchPoint),
	}
}

// SetClock replaces the wall clock used for tap timing.
func (c *Controller) SetClock(now func() time.Time) { c.now = now }

// OnGesture sets the hook run on every qualifying user gesture
// (wheel, click, world touch). Audio uses it to start lazily.
func (c *Controller) OnGesture(fn func()) { c.onGesture = fn }

// SetRegions replaces the control regions, highest priority first.
func (c *Controller) SetRegions(rs []Region) { c.regions = rs }

// Detach stops the controller. Every later event is ignored.
func (c *Controller) Detach() {
	c.detached = true
	c.joy.Release()
	c.sim.SetDragging(false)
	c.mouseDown = false
	c.mouseCapture = nil
	clear(c.touchCaptures)
	clear(c.touches)
	c.touchOrder = nil
}

func (c *Controller) gesture() {
	if c.onGesture != nil {
		c.onGesture()
	}
}

// Wheel handles a scroll of deltaY, positive moving forward.
func (c *Controller) Wheel(deltaY float64) {
	if c.detached {
		return
	}
	c.gesture()
	c.sim.Wheel(deltaY)
}

// PointerLeft handles the pointer leaving the surface.
func (c *Controller) PointerLeft() {
	if c.detached {
		return
	}
	c.sim.ClearPointer()
}

// MouseDown handles a primary button press at (x, y).
func (c *Controller) MouseDown(x, y float64) {
	if c.detached {
		return
	}
	if r, ok := Find(c.regions, x, y); ok {
		c.mouseCapture = &capture{region: r, x: x, y: y}
		c.steerControl(r, x, y)
		return
	}
	c.mouseDown = true
	c.pressX, c.pressY = x, y
	c.mouseTravel = 0
	_, c.dragOffX, c.dragOffY = c.sim.Targets()
	c.sim.SetDragging(true)
}

// MouseMove handles pointer motion to (x, y).
func (c *Controller) MouseMove(x, y float64) {
	if c.detached {
		return
	}
	c.sim.SetPointer(x, y)
	if cp := c.mouseCapture; cp != nil {
		cp.x, cp.y = x, y
		c.steerControl(cp.region, x, y)
		return
	}
	if !c.mouseDown {
		return
	}
	dx, dy := x-c.pressX, y-c.pressY
	c.mouseTravel = math.Max(c.mouseTravel, math.Hypot(dx, dy))
	if !c.sim.Docked() {
		c.sim.SetPanTarget(c.dragOffX-dx, c.dragOffY-dy)
	}
}

// MouseUp handles the primary button release at (x, y).
func (c *Controller) MouseUp(x, y float64) {
	if c.detached {
		return
	}
	if cp := c.mouseCapture; cp != nil {
		c.mouseCapture = nil
		c.releaseControl(cp.region, x, y)
		return
	}
	if !c.mouseDown {
		return
	}
	c.mouseDown = false
	c.sim.SetDragging(false)
	c.mouseTravel = math.Max(c.mouseTravel, math.Hypot(x-c.pressX, y-c.pressY))
	if c.mouseTravel < clickSlop {
		c.gesture()
		c.sim.Click()
	}
}

// TouchStart handles a new contact id at (x, y).
func (c *Controller) TouchStart(id int, x, y float64) {
	if c.detached {
		return
	}
	if r, ok := Find(c.regions, x, y); ok {
		c.touchCaptures[id] = &capture{region: r, x: x, y: y}
		c.steerControl(r, x, y)
		return
	}
	if len(c.touches) >= maxTouches {
		return
	}
	c.gesture()
	c.touches[id] = touchPoint{x, y}
	c.touchOrder = append(c.touchOrder, id)
	c.touchStart = c.now()

	switch len(c.touches) {
	case 2:
		c.pinching = true
		c.pinchDist0 = c.pinchDistance()
		c.pinchZ0, _, _ = c.sim.Targets()
	case 1:
		c.pinching = false
		c.touchX, c.touchY = x, y
		c.touchTravel = 0
		_, c.touchOffX, c.touchOffY = c.sim.Targets()
		c.sim.SetPointer(x, y)
	}
}

// TouchMove handles contact id moving to (x, y).
func (c *Controller) TouchMove(id int, x, y float64) {
	if c.detached {
		return
	}
	if cp, ok := c.touchCaptures[id]; ok {
		cp.x, cp.y = x, y
		c.steerControl(cp.region, x, y)
		return
	}
	if _, ok := c.touches[id]; !ok {
		return
	}
	c.touches[id] = touchPoint{x, y}
	if c.sim.Docked() {
		return
	}
	switch {
	case len(c.touches) == 2 && c.pinching:
		d := c.pinchDistance()
		c.sim.SetDepthTarget(c.pinchZ0 + (d-c.pinchDist0)*pinchGain)
	case len(c.touches) == 1 && !c.pinching:
		dx, dy := x-c.touchX, y-c.touchY
		c.touchTravel = math.Max(c.touchTravel, math.Hypot(dx, dy))
		c.sim.SetPanTarget(c.touchOffX-dx, c.touchOffY-dy)
		c.sim.SetPointer(x, y)
	}
}

// TouchEnd handles contact id lifting.
func (c *Controller) TouchEnd(id int) {
	if c.detached {
		return
	}
	if cp, ok := c.touchCaptures[id]; ok {
		delete(c.touchCaptures, id)
		c.releaseControl(cp.region, cp.x, cp.y)
		return
	}
	if _, ok := c.touches[id]; !ok {
		return
	}
	delete(c.touches, id)
	for i, t := range c.touchOrder {
		if t == id {
			c.touchOrder = append(c.touchOrder[:i], c.touchOrder[i+1:]...)
			break
		}
	}
	if len(c.touches) > 0 {
		return
	}
	if c.now().Sub(c.touchStart) < tapMaxDur && !c.pinching && c.touchTravel < tapSlop {
		c.sim.Click()
	}
	c.pinching = false
}

func (c *Controller) pinchDistance() float64 {
	if len(c.touchOrder) < 2 {
		return 0
	}
	a, b := c.touches[c.touchOrder[0]], c.touches[c.touchOrder[1]]
	return math.Hypot(a.x-b.x, a.y-b.y)
}

// steerControl feeds a held pointer position to the pad or throttle.
func (c *Controller) steerControl(r Region, x, y float64) {
	switch r.Kind {
	case RegionJoystick:
		c.joy.Pan(PadVector(r, x, y))
	case RegionThrottle:
		c.joy.SetWarpThrottle(ThrottleValue(r, y))
	}
}

// releaseControl ends a captured press. Buttons fire only when released
// over themselves.
func (c *Controller) releaseControl(r Region, x, y float64) {
	switch r.Kind {
	case RegionJoystick:
		c.joy.ReleasePan()
		return
	case RegionThrottle:
		c.joy.ReleaseThrottle()
		return
	}
	if !r.Contains(x, y) {
		return
	}
	switch r.Kind {
	case RegionMute:
		c.sim.ToggleMute()
	case RegionBannerClose:
		c.sim.DismissBanner()
	case RegionCardClose:
		if c.sim.Docked() {
			c.sim.Click()
		}
	}
}
