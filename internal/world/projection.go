package world

import "math"

// Scene geometry constants.
const (
	FOV       = 600.0   // perspective-divide field of view, in world units
	DepthWrap = 10000.0 // period of the repeating background field
	MaxDepth  = 8000.0  // upper bound of the camera depth target
)

// Point3 is a point in scene space. Z runs along the travel axis.
type Point3 struct {
	X, Y, Z float64
}

// Projected is a point on the drawing surface plus its perspective scale.
type Projected struct {
	X, Y  float64
	Scale float64 // (0,1] for positive depth, shrinks as depth grows
}

// Project maps p onto a viewW x viewH surface. p.Z is the depth relative to
// the camera and must be greater than -FOV; callers wrap or filter first.
func Project(p Point3, camX, camY, viewW, viewH float64) Projected {
	scale := FOV / (FOV + p.Z)
	return Projected{
		X:     (p.X-camX)*scale + viewW/2,
		Y:     (p.Y-camY)*scale + viewH/2,
		Scale: scale,
	}
}

// minWrapDepth is the smallest depth WrapDepth returns. The band (0,1] sits
// on the camera plane, so it is pushed just past 1.
var minWrapDepth = math.Nextafter(1, 2)

// WrapDepth normalizes a background object's relative depth into (1, DepthWrap]
// so the field repeats seamlessly as the camera travels.
func WrapDepth(d float64) float64 {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return DepthWrap
	}
	m := math.Mod(d, DepthWrap)
	if m <= 0 {
		m += DepthWrap
	}
	if m <= 1 {
		m = minWrapDepth
	}
	return m
}

// ClampDepth keeps a depth target inside [0, MaxDepth].
func ClampDepth(z float64) float64 {
	return math.Max(0, math.Min(z, MaxDepth))
}

// DepthFade is 1 at the camera and 0 at the far edge of the wrap range.
func DepthFade(relZ float64) float64 {
	return 1 - relZ/DepthWrap
}
