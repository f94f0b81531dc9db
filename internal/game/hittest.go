package game

import (
	"math"
	"slices"

	"github.com/cosmic-explorer/cosmic_explorer/internal/world"
)

// Entity sizing, in surface pixels.
const (
	activeSize   = 100.0
	sizeDepthRef = 3000.0
	sizeFactor   = 25.0
)

// Cursor is the pointer affordance the host should show.
type Cursor uint8

const (
	CursorDefault Cursor = iota
	CursorGrab
	CursorGrabbing
	CursorPointer
)

// Placed is a catalog entity positioned for the current frame.
type Placed struct {
	Index  int
	Entity *world.CrewEntity
	RelZ   float64
	Proj   world.Projected
	Size   float64
	Active bool
}

// Visible appends the catalog entities inside the visible depth band to dst,
// in catalog order, projected for the current camera. Drawing and hit-testing
// both go through here so they always agree.
func (s *Sim) Visible(dst []Placed) []Placed {
	for i := range s.Catalog.Crew {
		e := &s.Catalog.Crew[i]
		relZ := e.Z - s.cam.Z
		if !world.InBand(relZ) {
			continue
		}
		x, y := world.Slot(i)
		active := s.active != nil && s.active.ID == e.ID
		size := sizeDepthRef / relZ * sizeFactor
		if active {
			size = activeSize
		}
		dst = append(dst, Placed{
			Index:  i,
			Entity: e,
			RelZ:   relZ,
			Proj:   world.Project(world.Point3{X: x, Y: y, Z: relZ}, s.cam.X, s.cam.Y, s.viewW, s.viewH),
			Size:   size,
			Active: active,
		})
	}
	return dst
}

// SortFarToNear orders placed entities for painter's drawing.
func SortFarToNear(p []Placed) {
	slices.SortStableFunc(p, func(a, b Placed) int {
		switch {
		case a.RelZ > b.RelZ:
			return -1
		case a.RelZ < b.RelZ:
			return 1
		}
		return 0
	})
}

// HitTest returns the id of the first non-active entity, in catalog order,
// whose rendered disc contains (px, py). Nothing is hit while docked.
func (s *Sim) HitTest(px, py float64) string {
	if s.docked {
		return ""
	}
	var buf [8]Placed
	for _, p := range s.Visible(buf[:0]) {
		if p.Active {
			continue
		}
		if math.Hypot(px-p.Proj.X, py-p.Proj.Y) < p.Size {
			return p.Entity.ID
		}
	}
	return ""
}
