package game

import (
	"math"

	"github.com/cosmic-explorer/cosmic_explorer/internal/world"
)

const (
	craftLead    = 300.0 // depth ahead of the camera
	craftSize    = 30.0
	craftMaxBank = 0.3 // radians
	craftBankK   = 0.01
)

// CraftPose is where and how the roaming craft is drawn this frame.
type CraftPose struct {
	Visible bool
	Index   int // catalog slot the craft is heading for
	X, Y    float64
	Size    float64
	Bank    float64 // radians, positive tilts clockwise
	Glow    float64 // engine glow alpha in [0.4, 1]
}

// Craft returns the craft pose. The craft flies just ahead of the camera
// in the slot of the next entity not yet passed, and is hidden while docked.
func (s *Sim) Craft() CraftPose {
	if s.docked {
		return CraftPose{}
	}
	idx := s.Catalog.NextAhead(s.cam.Z)
	x, y := world.Slot(idx)
	p := world.Project(world.Point3{X: x, Y: y, Z: craftLead}, s.cam.X, s.cam.Y, s.viewW, s.viewH)
	bank := math.Max(-craftMaxBank, math.Min(craftMaxBank, (s.targetZ-s.cam.Z)*craftBankK))
	return CraftPose{
		Visible: true,
		Index:   idx,
		X:       p.X,
		Y:       p.Y,
		Size:    craftSize,
		Bank:    bank,
		Glow:    0.7 + 0.3*math.Sin(s.Time*5),
	}
}
