package world

import "math"

// Catalog entities sit on an ellipse around the travel axis, one slot per
// index, so consecutive waypoints swing around the viewer.
const (
	slotStep    = 2.0 // radians between consecutive slots
	slotRadiusX = 500.0
	slotRadiusY = 250.0
)

// Visible depth band for catalog entities.
const (
	NearCull = 10.0
	FarCull  = 8000.0
)

// Slot returns the lateral position of the catalog entity at index.
func Slot(index int) (x, y float64) {
	angle := float64(index) * slotStep
	return math.Cos(angle) * slotRadiusX, math.Sin(angle) * slotRadiusY
}

// InBand reports whether a relative depth lies inside the visible band.
func InBand(relZ float64) bool {
	return relZ > NearCull && relZ < FarCull
}
