package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// glowSize is the edge length of the radial falloff texture.
const glowSize = 128

// Gfx holds the shared textures used to build shapes.
type Gfx struct {
	pixel *ebiten.Image // white sub-image for triangle fills
	glow  *ebiten.Image // white radial falloff, opaque center to clear rim
	verts []ebiten.Vertex
	idx   []uint16
}

// NewGfx creates the white pixel and generates the glow texture.
func NewGfx() *Gfx {
	base := ebiten.NewImage(3, 3)
	base.Fill(color.White)
	return &Gfx{
		pixel: base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		glow:  ebiten.NewImageFromImage(glowImage(glowSize)),
	}
}

// glowImage renders a radial gradient into an NRGBA image. Alpha falls off
// quadratically from the center to zero at the inscribed circle.
func glowImage(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c) / c
			if d >= 1 {
				continue
			}
			a := (1 - d) * (1 - d)
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, uint8(a * 255)})
		}
	}
	return img
}

// Glow draws a radial gradient of radius r centered on (x, y). Additive
// glows brighten what is beneath instead of covering it.
func (g *Gfx) Glow(dst *ebiten.Image, x, y, r float64, clr color.NRGBA, additive bool) {
	if r <= 0 || clr.A == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	s := r * 2 / glowSize
	op.GeoM.Translate(-glowSize/2, -glowSize/2)
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.Filter = ebiten.FilterLinear
	if additive {
		op.Blend = ebiten.BlendLighter
	}
	dst.DrawImage(g.glow, &op)
}

// VerticalGradient fills dst from top to bottom.
func (g *Gfx) VerticalGradient(dst *ebiten.Image, top, bottom color.NRGBA) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	g.verts = g.verts[:0]
	g.verts = append(g.verts,
		g.vertex(0, 0, top), g.vertex(float64(w), 0, top),
		g.vertex(0, float64(h), bottom), g.vertex(float64(w), float64(h), bottom),
	)
	g.idx = append(g.idx[:0], 0, 1, 2, 1, 3, 2)
	dst.DrawTriangles(g.verts, g.idx, g.pixel, nil)
}

// Polygon fills the convex polygon pts.
func (g *Gfx) Polygon(dst *ebiten.Image, pts [][2]float64, clr color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	g.verts = g.verts[:0]
	g.idx = g.idx[:0]
	for _, p := range pts {
		g.verts = append(g.verts, g.vertex(p[0], p[1], clr))
	}
	for i := 1; i+1 < len(pts); i++ {
		g.idx = append(g.idx, 0, uint16(i), uint16(i+1))
	}
	dst.DrawTriangles(g.verts, g.idx, g.pixel, nil)
}

// Ellipse strokes an ellipse with radii rx, ry rotated by angle radians.
func (g *Gfx) Ellipse(dst *ebiten.Image, cx, cy, rx, ry, angle, width float64, clr color.NRGBA) {
	const segs = 40
	sin, cos := math.Sincos(angle)
	px, py := 0.0, 0.0
	for i := 0; i <= segs; i++ {
		t := float64(i) / segs * 2 * math.Pi
		ex, ey := math.Cos(t)*rx, math.Sin(t)*ry
		x := cx + ex*cos - ey*sin
		y := cy + ex*sin + ey*cos
		if i > 0 {
			Line(dst, px, py, x, y, width, clr)
		}
		px, py = x, y
	}
}

func (g *Gfx) vertex(x, y float64, c color.NRGBA) ebiten.Vertex {
	a := float32(c.A) / 255
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1.5,
		SrcY:   1.5,
		ColorR: float32(c.R) / 255 * a,
		ColorG: float32(c.G) / 255 * a,
		ColorB: float32(c.B) / 255 * a,
		ColorA: a,
	}
}

// Line strokes a line segment.
func Line(dst *ebiten.Image, x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// Disc fills a circle.
func Disc(dst *ebiten.Image, x, y, r float64, clr color.Color) {
	vector.FillCircle(dst, float32(x), float32(y), float32(r), clr, true)
}

// Ring strokes a circle.
func Ring(dst *ebiten.Image, x, y, r, width float64, clr color.Color) {
	vector.StrokeCircle(dst, float32(x), float32(y), float32(r), float32(width), clr, true)
}

// Rect fills a rectangle.
func Rect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.FillRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// Frame strokes a rectangle.
func Frame(dst *ebiten.Image, x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}
