// Package render draws the flight scene, the HUD and the preroll onto
// Ebitengine images. It reads simulation state and never mutates it.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cosmic-explorer/cosmic_explorer/internal/game"
	"github.com/cosmic-explorer/cosmic_explorer/internal/world"
)

// Scene drawing constants.
const (
	nebulaAlpha     = 0.3
	streakThreshold = 0.5 // warp below this draws dots
	streakMinLen    = 2.0
	guideDash       = 10.0
	guideGap        = 5.0
	guideWidth      = 2.0
	glowRadius      = 2.5 // times entity size
	coreRadius      = 0.3
	ringRadius      = 2.0
	ringTilt        = 0.25 // minor/major ratio of the orbit ring
	labelNear       = 100.0
	labelFar        = 2000.0
	labelRim        = 2.2 // times entity size, above the label gap
	labelGap        = 20.0
	offscreenPad    = 50.0
)

// Renderer owns the textures and scratch buffers for drawing a scene.
type Renderer struct {
	gfx    *Gfx
	text   *Text
	placed []game.Placed
	sorted []game.Placed
	guide  [][2]float64
	tints  map[string]color.NRGBA
}

// NewRenderer creates a renderer drawing labels with t. Call it from
// Draw, once the graphics driver is up.
func NewRenderer(t *Text) *Renderer {
	return &Renderer{
		gfx:   NewGfx(),
		text:  t,
		tints: make(map[string]color.NRGBA),
	}
}

// Scene draws the flight scene in painter's order: background, nebulas,
// stars, guide lines, craft, entities.
func (r *Renderer) Scene(dst *ebiten.Image, s *game.Sim) {
	r.gfx.VerticalGradient(dst, Palette[ColorSpaceTop], Palette[ColorSpaceBottom])
	if s.Field == nil {
		return
	}
	r.nebulas(dst, s)
	r.stars(dst, s)

	r.placed = s.Visible(r.placed[:0])
	if !s.Docked() {
		r.guideLines(dst)
	}
	r.craft(dst, s.Craft())
	r.entities(dst, s)
}

func (r *Renderer) nebulas(dst *ebiten.Image, s *game.Sim) {
	cam := s.Camera()
	w, h := s.Viewport()
	s.Field.EachNebula(func(n *world.Nebula) {
		relZ := world.WrapDepth(n.Z - cam.Z)
		p := world.Project(world.Point3{X: n.X, Y: n.Y, Z: relZ}, cam.X, cam.Y, w, h)
		clr := WithAlpha(r.tint(n.Color), nebulaAlpha*world.DepthFade(relZ))
		r.gfx.Glow(dst, p.X, p.Y, n.Size*p.Scale, clr, true)
	})
}

// tint parses and caches a hex colour.
func (r *Renderer) tint(hex string) color.NRGBA {
	c, ok := r.tints[hex]
	if !ok {
		c = Hex(hex)
		r.tints[hex] = c
	}
	return c
}

func (r *Renderer) stars(dst *ebiten.Image, s *game.Sim) {
	cam := s.Camera()
	w, h := s.Viewport()
	warp := s.Warp()
	s.Field.EachStar(func(st *world.Star) {
		relZ := world.WrapDepth(st.Z - cam.Z)
		p := world.Project(world.Point3{X: st.X, Y: st.Y, Z: relZ}, cam.X, cam.Y, w, h)
		if p.X < -offscreenPad || p.X > w+offscreenPad || p.Y < -offscreenPad || p.Y > h+offscreenPad {
			return
		}
		fade := world.DepthFade(relZ)
		size := math.Max(0.5, 2*fade)
		clr := WithAlpha(Palette[ColorStar], math.Min(1, fade))
		if warp > streakThreshold {
			if l := math.Max(0, warp*p.Scale*2); l > streakMinLen {
				ex, ey := world.Streak(p.X, p.Y, w/2, h/2, l)
				Line(dst, p.X, p.Y, ex, ey, size, clr)
				return
			}
		}
		Disc(dst, p.X, p.Y, size, clr)
	})
}

// guideLines joins the visible entities in catalog order with a dashed line.
func (r *Renderer) guideLines(dst *ebiten.Image) {
	r.guide = r.guide[:0]
	for _, p := range r.placed {
		r.guide = append(r.guide, [2]float64{p.Proj.X, p.Proj.Y})
	}
	for _, seg := range world.DashPolyline(r.guide, guideDash, guideGap) {
		Line(dst, seg.X0, seg.Y0, seg.X1, seg.Y1, guideWidth, Palette[ColorGuide])
	}
}

func (r *Renderer) craft(dst *ebiten.Image, c game.CraftPose) {
	if !c.Visible {
		return
	}
	sin, cos := math.Sincos(c.Bank)
	at := func(x, y float64) [2]float64 {
		return [2]float64{c.X + x*cos - y*sin, c.Y + x*sin + y*cos}
	}
	s := c.Size
	engine := at(0, s*0.6)
	r.gfx.Glow(dst, engine[0], engine[1], s*0.6, WithAlpha(Palette[ColorEngine], c.Glow), true)
	r.gfx.Polygon(dst, [][2]float64{
		at(0, -s),
		at(s*0.6, s*0.5),
		at(0, s*0.25),
		at(-s*0.6, s*0.5),
	}, Palette[ColorCraft])
	cockpit := at(0, -s*0.3)
	Disc(dst, cockpit[0], cockpit[1], s*0.12, Palette[ColorEngine])
}

func (r *Renderer) entities(dst *ebiten.Image, s *game.Sim) {
	r.sorted = append(r.sorted[:0], r.placed...)
	game.SortFarToNear(r.sorted)
	hover := s.Hover()
	for _, p := range r.sorted {
		e := p.Entity
		x, y, size := p.Proj.X, p.Proj.Y, p.Size
		r.gfx.Glow(dst, x, y, size*glowRadius, e.NRGBA(0.6), true)
		Disc(dst, x, y, size*coreRadius, Palette[ColorStar])
		r.gfx.Ellipse(dst, x, y, size*ringRadius, size*ringRadius*ringTilt, s.Time+e.Z*0.001, 1, WithAlpha(Palette[ColorStar], 0.2))
		if e.ID == hover {
			Ring(dst, x, y, size*coreRadius+6, 2, Palette[ColorAccent])
		}
		if showLabel(p) {
			ly := labelBaseline(y, size) - r.text.Ascent(1)
			r.text.Draw(dst, e.Name, x, ly, 1, Palette[ColorStar], AlignCenter)
			r.text.Draw(dst, e.Role, x, ly+16, 1, Palette[ColorHUDDim], AlignCenter)
		}
	}
}

func showLabel(p game.Placed) bool {
	return !p.Active && p.RelZ > labelNear && p.RelZ < labelFar
}

// labelBaseline is the y of the name's baseline under an entity drawn at y.
func labelBaseline(y, size float64) float64 {
	return y + size*labelRim + labelGap
}
