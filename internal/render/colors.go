package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Scene palette indices.
const (
	ColorSpaceTop = iota
	ColorSpaceBottom
	ColorGuide
	ColorHUD
	ColorHUDDim
	ColorHUDPanel
	ColorAccent
	ColorSecret
	ColorWarn
	ColorStar
	ColorCraft
	ColorEngine
	ColorCurtain
	numColors
)

// Palette holds the scene colours. Alpha is straight, not premultiplied.
var Palette = [numColors]color.NRGBA{
	{1, 1, 3, 255},       // space gradient, top
	{8, 8, 21, 255},      // space gradient, bottom
	{0, 255, 127, 77},    // constellation guide
	{0, 255, 127, 255},   // HUD text
	{0, 140, 70, 255},    // HUD secondary
	{0, 20, 10, 190},     // HUD panel fill
	{0, 255, 255, 255},   // dock highlights
	{157, 0, 255, 255},   // secret entity
	{255, 170, 0, 255},   // muted / warnings
	{255, 255, 255, 255}, // stars
	{200, 210, 230, 255}, // craft hull
	{0, 200, 255, 255},   // craft engine glow
	{0, 0, 0, 255},       // preroll curtain
}

// WithAlpha returns c with its alpha replaced by a in [0,1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(clamp01(a) * 255)
	return c
}

// Blend mixes a and b in linear RGB, t=0 giving a and t=1 giving b.
// Alpha is interpolated linearly.
func Blend(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendLinearRgb(cb, t).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(float64(a.A) + (float64(b.A)-float64(a.A))*t)}
}

// Hex parses #rrggbb into an opaque colour. Bad input yields white.
func Hex(s string) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		return Palette[ColorStar]
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Brighten lifts c toward white by t in CIE L*C*h space, keeping its hue.
func Brighten(c color.NRGBA, t float64) color.NRGBA {
	cc := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, ch, l := cc.Hcl()
	l += (1 - l) * clamp01(t)
	r, g, b := colorful.Hcl(h, ch, l).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: c.A}
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}
