package world

import "math"

// Segment is a 2D line segment on the drawing surface.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// DashPolyline splits the polyline through pts into dash segments following
// an on/off pattern. The pattern phase carries across vertices.
func DashPolyline(pts [][2]float64, on, off float64) []Segment {
	if len(pts) < 2 || on <= 0 {
		return nil
	}
	if off < 0 {
		off = 0
	}
	var out []Segment
	drawing := true
	left := on
	for i := 1; i < len(pts); i++ {
		ax, ay := pts[i-1][0], pts[i-1][1]
		bx, by := pts[i][0], pts[i][1]
		length := math.Hypot(bx-ax, by-ay)
		if length == 0 {
			continue
		}
		ux, uy := (bx-ax)/length, (by-ay)/length
		pos := 0.0
		for pos < length {
			step := math.Min(left, length-pos)
			if drawing {
				out = append(out, Segment{
					X0: ax + ux*pos, Y0: ay + uy*pos,
					X1: ax + ux*(pos+step), Y1: ay + uy*(pos+step),
				})
			}
			pos += step
			left -= step
			if left <= 0 {
				drawing = !drawing
				if drawing {
					left = on
				} else {
					left = off
				}
				if left == 0 {
					drawing = true
					left = on
				}
			}
		}
	}
	return out
}

// Streak returns the end point of a motion streak starting at (x, y) and
// pointing away from the surface center (cx, cy).
func Streak(x, y, cx, cy, length float64) (ex, ey float64) {
	angle := math.Atan2(y-cy, x-cx)
	return x + math.Cos(angle)*length, y + math.Sin(angle)*length
}
