package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) (*Controller, *Sim, *Joystick, *fakeClock) {
	t.Helper()
	s, _ := newTestSim(t)
	joy := NewJoystick(s)
	c := NewController(s, joy)
	clk := &fakeClock{t: time.Unix(1700000000, 0)}
	c.SetClock(clk.Now)
	return c, s, joy, clk
}

func TestMouseDragPansOpposite(t *testing.T) {
	c, s, _, _ := newTestController(t)
	s.SetPanTarget(10, 20)

	c.MouseDown(100, 100)
	assert.Equal(t, CursorGrabbing, s.Cursor())
	c.MouseMove(150, 120)
	_, x, y := s.Targets()
	assert.Equal(t, -40.0, x)
	assert.Equal(t, 0.0, y)

	c.MouseUp(150, 120)
	assert.False(t, s.Docked(), "a drag is not a click")
	assert.Equal(t, CursorGrab, s.Cursor())

	c.MouseMove(300, 300)
	_, x, _ = s.Targets()
	assert.Equal(t, -40.0, x, "moving without a press does not pan")
}

func TestMouseClickDocksAndUndocks(t *testing.T) {
	c, s, _, _ := newTestController(t)
	gestures := 0
	c.OnGesture(func() { gestures++ })

	x, y := pointAt(t, s, "HB-01")
	c.MouseMove(x, y)
	c.MouseDown(x, y)
	c.MouseUp(x+2, y+2)
	require.True(t, s.Docked())
	assert.Equal(t, 1, gestures)

	// dragging while docked does not pan
	c.MouseDown(10, 10)
	c.MouseMove(400, 400)
	_, px, py := s.Targets()
	assert.Zero(t, px)
	assert.Zero(t, py)
	c.MouseUp(400, 400)
	assert.True(t, s.Docked())

	c.MouseDown(10, 10)
	c.MouseUp(10, 10)
	assert.False(t, s.Docked())
}

func TestControlsShadowWorld(t *testing.T) {
	c, s, _, _ := newTestController(t)
	gestures := 0
	c.OnGesture(func() { gestures++ })
	c.SetRegions(LayoutControls(viewW, viewH, s.Snapshot(), false))

	mute, ok := regionOf(c.regions, RegionMute)
	require.True(t, ok)
	mx, my := mute.Center()

	c.MouseDown(mx, my)
	c.MouseMove(mx+100, my)
	_, px, _ := s.Targets()
	assert.Zero(t, px, "press on a control never drags the world")
	c.MouseUp(mx+100, my)
	assert.False(t, s.Muted(), "released off the button")

	c.MouseDown(mx, my)
	c.MouseUp(mx, my)
	assert.True(t, s.Muted())
	assert.False(t, s.Docked())
	assert.Zero(t, gestures)

	c.TouchStart(1, mx, my)
	c.TouchEnd(1)
	assert.False(t, s.Muted())
}

func regionOf(rs []Region, k RegionKind) (Region, bool) {
	for _, r := range rs {
		if r.Kind == k {
			return r, true
		}
	}
	return Region{}, false
}

func TestTapDocks(t *testing.T) {
	c, s, _, clk := newTestController(t)
	x, y := pointAt(t, s, "HB-01")

	c.TouchStart(1, x, y)
	clk.Advance(300 * time.Millisecond)
	c.TouchEnd(1)
	assert.False(t, s.Docked(), "long press is not a tap")

	c.TouchStart(1, x, y)
	clk.Advance(120 * time.Millisecond)
	c.TouchEnd(1)
	require.True(t, s.Docked())
	assert.Equal(t, "HB-01", s.Active().ID)

	c.TouchStart(1, 5, 5)
	clk.Advance(50 * time.Millisecond)
	c.TouchEnd(1)
	assert.False(t, s.Docked())
}

func TestTouchDrag(t *testing.T) {
	c, s, _, clk := newTestController(t)
	c.TouchStart(7, 200, 200)
	c.TouchMove(7, 260, 180)
	_, x, y := s.Targets()
	assert.Equal(t, -60.0, x)
	assert.Equal(t, 20.0, y)

	clk.Advance(50 * time.Millisecond)
	c.TouchEnd(7)
	assert.False(t, s.Docked(), "a quick swipe is not a tap")
}

func TestPinch(t *testing.T) {
	c, s, _, clk := newTestController(t)
	s.SetDepthTarget(200)

	c.TouchStart(1, 100, 300)
	c.TouchStart(2, 200, 300)
	c.TouchMove(2, 400, 300)
	z, _, _ := s.Targets()
	assert.Equal(t, 200+200*pinchGain, z)

	// one finger moving during a pinch never pans
	c.TouchMove(1, 0, 0)
	_, x, _ := s.Targets()
	assert.Zero(t, x)

	c.TouchMove(2, 5000, 300)
	z, _, _ = s.Targets()
	assert.Equal(t, 8000.0, z)

	c.TouchMove(2, 1, 0)
	z, _, _ = s.Targets()
	assert.Equal(t, 0.0, z)

	clk.Advance(50 * time.Millisecond)
	c.TouchEnd(2)
	c.TouchEnd(1)
	assert.False(t, s.Docked(), "a pinch never taps")
}

func TestTouchJoystickAndThrottle(t *testing.T) {
	c, s, joy, _ := newTestController(t)
	c.SetRegions(LayoutControls(viewW, viewH, s.Snapshot(), true))
	pad, ok := regionOf(c.regions, RegionJoystick)
	require.True(t, ok)
	thr, ok := regionOf(c.regions, RegionThrottle)
	require.True(t, ok)

	// right edge of the pad pans left
	cx, cy := pad.Center()
	c.TouchStart(1, pad.X+pad.W*0.99, cy)
	joy.Pump()
	_, x, y := s.Targets()
	assert.InDelta(t, -0.98*padGain, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)

	// held: keeps pumping without events
	joy.Pump()
	_, x, _ = s.Targets()
	assert.InDelta(t, -1.96*padGain, x, 1e-9)

	// captured touch keeps steering outside the pad
	c.TouchMove(1, cx, pad.Y-pad.H)
	_, panY, ok, _, _ := joy.State()
	assert.True(t, ok)
	assert.InDelta(t, 3.0, panY, 1e-9)

	c.TouchEnd(1)
	_, _, ok, _, _ = joy.State()
	assert.False(t, ok)

	tx, _ := thr.Center()
	c.TouchStart(2, tx, thr.Y)
	joy.Pump()
	z, _, _ := s.Targets()
	assert.Equal(t, throttleMax*throttleGain, z)
	c.TouchEnd(2)
	joy.Pump()
	z2, _, _ := s.Targets()
	assert.Equal(t, z, z2)
	assert.False(t, s.Docked(), "control touches never tap the world")
}

func TestBannerCatchesClicks(t *testing.T) {
	c, s, _, _ := newTestController(t)
	for i, e := range s.Catalog.Crew {
		dockAt(t, s, e.ID)
		if i < len(s.Catalog.Crew)-1 {
			s.Click()
		}
	}
	require.True(t, s.Snapshot().BannerVisible())
	c.SetRegions(LayoutControls(viewW, viewH, s.Snapshot(), false))

	b := BannerRect(viewW, viewH)
	c.MouseDown(b.X+20, b.Y+b.H-20)
	c.MouseUp(b.X+20, b.Y+b.H-20)
	assert.True(t, s.Docked(), "clicks on the banner body are swallowed")

	closeBtn, ok := regionOf(c.regions, RegionBannerClose)
	require.True(t, ok)
	x, y := closeBtn.Center()
	c.MouseDown(x, y)
	c.MouseUp(x, y)
	assert.True(t, s.Snapshot().BannerDismissed)
	assert.True(t, s.Docked())

	c.SetRegions(LayoutControls(viewW, viewH, s.Snapshot(), false))
	cardClose, ok := regionOf(c.regions, RegionCardClose)
	require.True(t, ok)
	x, y = cardClose.Center()
	c.MouseDown(x, y)
	c.MouseUp(x, y)
	assert.False(t, s.Docked())
}

func TestDetach(t *testing.T) {
	c, s, joy, _ := newTestController(t)
	c.SetRegions(LayoutControls(viewW, viewH, s.Snapshot(), true))
	pad, _ := regionOf(c.regions, RegionJoystick)
	c.TouchStart(1, pad.X+1, pad.Y+pad.H/2)
	c.MouseDown(600, 600)

	c.Detach()
	_, _, ok, _, _ := joy.State()
	assert.False(t, ok)
	assert.Equal(t, CursorGrab, s.Cursor())

	c.Wheel(1000)
	c.MouseMove(0, 0)
	c.MouseUp(0, 0)
	c.TouchStart(2, 300, 300)
	z, x, _ := s.Targets()
	assert.Zero(t, z)
	assert.Zero(t, x)
}

func TestJoystickInactiveWhileDocked(t *testing.T) {
	s, _ := newTestSim(t)
	joy := NewJoystick(s)
	dockAt(t, s, "HB-01")
	joy.Pan(1, 1)
	joy.SetWarpThrottle(100)
	joy.Pump()
	z, x, y := s.Targets()
	assert.Equal(t, 650.0, z)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestThrottleValue(t *testing.T) {
	r := Region{X: 0, Y: 100, W: 48, H: 200}
	assert.Equal(t, 100.0, ThrottleValue(r, 100))
	assert.Equal(t, 50.0, ThrottleValue(r, 200))
	assert.Equal(t, 0.0, ThrottleValue(r, 300))
	assert.Equal(t, 0.0, ThrottleValue(r, 900))
	assert.Equal(t, 100.0, ThrottleValue(r, -50))

	dx, dy := PadVector(Region{X: 0, Y: 0, W: 100, H: 100}, 50, 0)
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, 1.0, dy)
}

func TestPointerLeftClearsHover(t *testing.T) {
	c, s, _, _ := newTestController(t)
	x, y := pointAt(t, s, "HB-01")
	c.MouseMove(x, y)
	require.Equal(t, "HB-01", s.Hover())

	c.PointerLeft()
	assert.Empty(t, s.Hover())
	s.Tick(frame)
	assert.Empty(t, s.Hover(), "hover stays clear until the pointer returns")

	c.Detach()
	c.MouseMove(x, y)
	assert.Empty(t, s.Hover())
}
