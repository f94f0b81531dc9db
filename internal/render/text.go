package render

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/sfnt"
)

// fontSize keeps Go Mono close to a 7x13 cell at scale 1.
const fontSize = 12

// Align selects the horizontal anchor of a text run.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Text draws HUD labels in Go Mono, scaled up for headings.
type Text struct {
	face text.Face
}

// NewText parses the embedded Go Mono face. It covers Latin-1, so crew
// names with accents render without replacement boxes.
func NewText() (*Text, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load mono face: %w", err)
	}
	return &Text{face: &text.GoTextFace{Source: src, Size: fontSize}}, nil
}

var monoOutlines = sync.OnceValues(func() (*sfnt.Font, error) {
	return sfnt.Parse(gomono.TTF)
})

// MissingGlyph returns the first rune of s that the label face has no
// glyph for.
func MissingGlyph(s string) (rune, bool) {
	f, err := monoOutlines()
	if err != nil {
		for _, r := range s {
			return r, true
		}
		return 0, false
	}
	var buf sfnt.Buffer
	for _, r := range s {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil || idx == 0 {
			return r, true
		}
	}
	return 0, false
}

// Draw renders s with its top edge at y, scaled by scale.
func (t *Text) Draw(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color, align Align) {
	op := &text.DrawOptions{}
	switch align {
	case AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case AlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, t.face, op)
}

// Width returns the advance of s at the given scale.
func (t *Text) Width(s string, scale float64) float64 {
	w, _ := text.Measure(s, t.face, 0)
	return w * scale
}

// Ascent is the distance from the top of a line to its baseline at scale.
func (t *Text) Ascent(scale float64) float64 {
	return t.face.Metrics().HAscent * scale
}

// LineHeight is the height of one line at scale.
func (t *Text) LineHeight(scale float64) float64 {
	return t.face.Metrics().HAscent*scale + t.face.Metrics().HDescent*scale
}
