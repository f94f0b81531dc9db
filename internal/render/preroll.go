package render

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cosmic-explorer/cosmic_explorer/internal/game"
)

const (
	prerollBarW = 360.0
	prerollBarH = 4.0
)

// Preroll draws the loading screen. Once loading completes the whole
// screen slides up like a curtain, revealing the space background.
func (r *Renderer) Preroll(dst *ebiten.Image, p *game.Preroll) {
	w := float64(dst.Bounds().Dx())
	h := float64(dst.Bounds().Dy())
	r.gfx.VerticalGradient(dst, Palette[ColorSpaceTop], Palette[ColorSpaceBottom])

	off := -p.CurtainOffset() * h
	Rect(dst, 0, off, w, h, Palette[ColorCurtain])

	cx, cy := w/2, h/2+off
	progress := p.Progress()
	r.text.Draw(dst, "COSMIC EXPLORER", cx, cy-70, 3, Palette[ColorHUD], AlignCenter)
	r.text.Draw(dst, "INITIALIZING FLIGHT SYSTEMS", cx, cy-16, 1, Palette[ColorHUDDim], AlignCenter)

	bx := cx - prerollBarW/2
	Rect(dst, bx, cy+10, prerollBarW, prerollBarH, Palette[ColorHUDPanel])
	Rect(dst, bx, cy+10, prerollBarW*progress/100, prerollBarH, Palette[ColorHUD])
	r.text.Draw(dst, fmt.Sprintf("%d%%", int(math.Floor(progress))), cx, cy+24, 1, Palette[ColorHUD], AlignCenter)
}
