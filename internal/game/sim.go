package game

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/cosmic-explorer/cosmic_explorer/internal/world"
)

// Per-tick constants. The scene ticks at a fixed 60 TPS.
const (
	depthEase       = 0.05 // share of the remaining depth gap closed per tick
	panEase         = 0.1  // share of the remaining lateral gap closed per tick
	timeStep        = 0.01 // simulation clock advance per tick
	metricsInterval = 10   // publish speed/distance every N ticks
)

// Metrics are the sampled flight figures shown by the HUD.
type Metrics struct {
	Speed    float64 // depth units per tick at the last sample
	Distance float64 // sum of sampled speeds
	CameraZ  float64
}

// Sim is the flight simulation. It owns camera, targets, docking and
// progress state; input handlers only call its mutation methods.
type Sim struct {
	Catalog *world.Catalog
	Field   *world.Field
	Log     *MessageLog
	Ticks   uint64
	Time    float64

	cam                       world.Point3
	targetZ, targetX, targetY float64
	lock                      depthLock
	tween                     *Tween
	warp                      float64
	lastZ                     float64
	speed                     float64
	metrics                   Metrics

	docked bool
	active *world.CrewEntity
	hover  string

	pointerX, pointerY float64
	hasPointer         bool
	dragging           bool

	visited         *DiscoveryLog
	unlocked        bool
	bannerDismissed bool
	muted           bool

	viewW, viewH float64
	sound        Sound
	pub          Publisher
	logger       zerolog.Logger
}

// NewSim creates a simulation at depth 0 over the given catalog and field.
// A nil sound plays nothing.
func NewSim(cat *world.Catalog, field *world.Field, sound Sound, logger zerolog.Logger) *Sim {
	if sound == nil {
		sound = silent{}
	}
	log := NewMessageLog(50)
	log.Add("Flight systems online.", MsgInfo)
	log.Add("Scroll to fly. Click a planet to dock.", MsgInfo)

	s := &Sim{
		Catalog: cat,
		Field:   field,
		Log:     log,
		visited: NewDiscoveryLog(len(cat.Crew)),
		sound:   sound,
		logger:  logger,
	}
	if field != nil {
		s.viewW, s.viewH = field.W, field.H
	}
	s.publish()
	return s
}

// SetViewport records the drawing surface size used for projection.
func (s *Sim) SetViewport(w, h float64) {
	s.viewW, s.viewH = w, h
}

// Viewport returns the current drawing surface size.
func (s *Sim) Viewport() (w, h float64) { return s.viewW, s.viewH }

// Tick advances the simulation by one frame. dt (seconds) drives only the
// dock tween; the easing steps are per tick.
func (s *Sim) Tick(dt float64) {
	s.Ticks++
	s.Time += timeStep

	s.stepTween(dt)
	if !s.docked {
		s.writeDepth(freeFlight, s.cam.Z+(s.targetZ-s.cam.Z)*depthEase)
	}
	s.cam.X += (s.targetX - s.cam.X) * panEase
	s.cam.Y += (s.targetY - s.cam.Y) * panEase

	s.speed = math.Abs(s.cam.Z - s.lastZ)
	s.lastZ = s.cam.Z

	if s.Ticks%metricsInterval == 0 {
		s.metrics.Speed = s.speed
		s.metrics.Distance += s.speed
		s.metrics.CameraZ = s.cam.Z
		s.publish()
	}
	s.refreshHover()
}

// Camera returns the current camera position.
func (s *Sim) Camera() world.Point3 { return s.cam }

// Targets returns the desired depth and lateral offsets.
func (s *Sim) Targets() (z, x, y float64) { return s.targetZ, s.targetX, s.targetY }

// Warp returns the transient streak scalar.
func (s *Sim) Warp() float64 { return s.warp }

// Speed returns the unsampled per-tick depth change.
func (s *Sim) Speed() float64 { return s.speed }

// Docked reports whether the camera is parked at an entity.
func (s *Sim) Docked() bool { return s.docked }

// Active returns the docked entity, or nil in free flight.
func (s *Sim) Active() *world.CrewEntity { return s.active }

// Hover returns the id of the entity under the pointer, or "".
func (s *Sim) Hover() string { return s.hover }

// Unlocked reports whether every crew entity has been visited.
func (s *Sim) Unlocked() bool { return s.unlocked }

// Visited reports whether id has been docked at this session.
func (s *Sim) Visited(id string) bool { return s.visited.Has(id) }

// Discoveries returns the visit log.
func (s *Sim) Discoveries() *DiscoveryLog { return s.visited }

// Wheel applies a scroll of deltaY (positive = forward).
func (s *Sim) Wheel(deltaY float64) {
	if s.docked {
		return
	}
	s.targetZ = world.ClampDepth(s.targetZ + deltaY*2)
	if mag := math.Abs(deltaY); mag > wheelCueThreshold {
		s.sound.PlayTone(wheelCueBase+mag, wheelCueDur, wheelCueVol, 0)
	}
}

// SetPanTarget sets the lateral target offsets. Ignored while docked.
func (s *Sim) SetPanTarget(x, y float64) {
	if s.docked {
		return
	}
	s.targetX, s.targetY = x, y
}

// NudgePan moves the lateral target offsets. Ignored while docked.
func (s *Sim) NudgePan(dx, dy float64) {
	if s.docked {
		return
	}
	s.targetX += dx
	s.targetY += dy
}

// SetDepthTarget sets the depth target, clamped. Ignored while docked.
func (s *Sim) SetDepthTarget(z float64) {
	if s.docked {
		return
	}
	s.targetZ = world.ClampDepth(z)
}

// AdjustDepthTarget moves the depth target by dz, clamped. Ignored while docked.
func (s *Sim) AdjustDepthTarget(dz float64) {
	s.SetDepthTarget(s.targetZ + dz)
}

// SetPointer records the pointer position and re-runs the hit test.
func (s *Sim) SetPointer(x, y float64) {
	s.pointerX, s.pointerY = x, y
	s.hasPointer = true
	s.refreshHover()
}

// ClearPointer forgets the pointer, e.g. when it leaves the window.
func (s *Sim) ClearPointer() {
	s.hasPointer = false
	s.refreshHover()
}

// SetDragging records whether a world drag is in progress.
func (s *Sim) SetDragging(v bool) { s.dragging = v }

func (s *Sim) refreshHover() {
	if s.docked || !s.hasPointer {
		s.hover = ""
		return
	}
	s.hover = s.HitTest(s.pointerX, s.pointerY)
}

// Cursor returns the pointer affordance for the current state.
func (s *Sim) Cursor() Cursor {
	switch {
	case s.hover != "":
		return CursorPointer
	case s.dragging:
		return CursorGrabbing
	case !s.docked:
		return CursorGrab
	default:
		return CursorDefault
	}
}

func (s *Sim) writeDepth(tok uint64, z float64) bool {
	if !s.lock.holds(tok) {
		return false
	}
	s.cam.Z = z
	return true
}
