package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cosmic-explorer/cosmic_explorer/internal/game"
)

// HUD layout, in surface pixels.
const (
	hudMargin     = 16.0
	hudPanelW     = 240.0
	pipW          = 28.0
	pipH          = 8.0
	pipGap        = 6.0
	velBarW       = 180.0
	velBarH       = 6.0
	velBarMax     = 50.0 // speed that fills the bar
	radarRadius   = 64.0
	commsLines    = 6
	commsLineH    = 15.0
	hintText      = "SCROLL/PINCH: FLY   DRAG: PAN   CLICK: DOCK   M: MUTE   ESC: QUIT"
	archiveHeader = "ACCESSING CREW ARCHIVES..."
)

// HUD draws the overlay for the latest published snapshot. Flight panels
// hide while docked; the completion banner shows in either state.
func (r *Renderer) HUD(dst *ebiten.Image, s *game.Sim, regions []game.Region, joy *game.Joystick) {
	snap := s.Snapshot()
	w := float64(dst.Bounds().Dx())
	h := float64(dst.Bounds().Dy())

	if !snap.Docked() {
		r.missionPanel(dst, s, snap)
		r.velocityPanel(dst, w, snap)
		r.radar(dst, s, snap, w-hudMargin-radarRadius-8, hudMargin+96+radarRadius)
		r.comms(dst, s, h, regions)
		r.text.Draw(dst, hintText, hudMargin, h-hudMargin-4, 1, Palette[ColorHUDDim], AlignLeft)
	}
	for _, rg := range regions {
		switch rg.Kind {
		case game.RegionMute:
			r.muteButton(dst, rg, snap.Muted)
		case game.RegionJoystick:
			r.pad(dst, rg, joy)
		case game.RegionThrottle:
			r.throttle(dst, rg, joy)
		}
	}
	if snap.Docked() {
		r.dockCard(dst, w, h, snap, regions)
	}
	if snap.BannerVisible() {
		r.banner(dst, w, h, snap, regions)
	}
}

func (r *Renderer) panel(dst *ebiten.Image, x, y, w, h float64) {
	Rect(dst, x, y, w, h, Palette[ColorHUDPanel])
	Frame(dst, x, y, w, h, 1, Palette[ColorHUDDim])
}

func (r *Renderer) missionPanel(dst *ebiten.Image, s *game.Sim, snap game.Snapshot) {
	x, y := hudMargin, hudMargin
	r.panel(dst, x, y, hudPanelW, 80)
	r.text.Draw(dst, "CREW LOCATOR", x+10, y+8, 2, Palette[ColorHUD], AlignLeft)
	r.text.Draw(dst, fmt.Sprintf("PROGRESS %d/%d", len(snap.VisitedIDs), snap.CrewCount), x+10, y+38, 1, Palette[ColorHUD], AlignLeft)
	for i := range s.Catalog.Crew {
		e := &s.Catalog.Crew[i]
		px := x + 10 + float64(i)*(pipW+pipGap)
		py := y + 60.0
		if snap.HasVisited(e.ID) {
			Rect(dst, px, py, pipW, pipH, e.NRGBA(1))
			continue
		}
		Frame(dst, px, py, pipW, pipH, 1, e.NRGBA(0.5))
	}
}

func (r *Renderer) velocityPanel(dst *ebiten.Image, w float64, snap game.Snapshot) {
	x, y := w-hudMargin-hudPanelW, hudMargin
	r.panel(dst, x, y, hudPanelW, 80)
	r.text.Draw(dst, "VELOCITY", x+10, y+8, 1, Palette[ColorHUDDim], AlignLeft)
	r.text.Draw(dst, fmt.Sprintf("%d U/S", int(math.Round(snap.CurrentSpeed*10))), x+10, y+22, 2, Palette[ColorHUD], AlignLeft)
	fill := math.Min(100, snap.CurrentSpeed/velBarMax*100) / 100
	Rect(dst, x+10, y+52, velBarW, velBarH, Palette[ColorHUDPanel])
	Rect(dst, x+10, y+52, velBarW*fill, velBarH, Palette[ColorHUD])
	r.text.Draw(dst, fmt.Sprintf("DIST %d", int(math.Round(snap.DistanceTraveled))), x+10, y+62, 1, Palette[ColorHUDDim], AlignLeft)
}

func (r *Renderer) radar(dst *ebiten.Image, s *game.Sim, snap game.Snapshot, cx, cy float64) {
	Disc(dst, cx, cy, radarRadius, Palette[ColorHUDPanel])
	Ring(dst, cx, cy, radarRadius, 1, Palette[ColorHUDDim])
	Ring(dst, cx, cy, radarRadius/2, 1, WithAlpha(Palette[ColorHUDDim], 0.5))
	Line(dst, cx-radarRadius, cy, cx+radarRadius, cy, 1, WithAlpha(Palette[ColorHUDDim], 0.5))
	Line(dst, cx, cy-radarRadius, cx, cy+radarRadius, 1, WithAlpha(Palette[ColorHUDDim], 0.5))

	sweep := game.RadarSweep(snap.CameraZ) * math.Pi / 180
	Line(dst, cx, cy, cx+math.Cos(sweep)*radarRadius, cy+math.Sin(sweep)*radarRadius, 2, WithAlpha(Palette[ColorHUD], 0.7))

	for _, b := range game.RadarBlips(s.Catalog, snap) {
		bx, by := cx+b.DX, cy+b.DY
		switch {
		case b.Secret:
			Disc(dst, bx, by, 4, Palette[ColorSecret])
			Ring(dst, bx, by, 7, 1, Palette[ColorSecret])
		case b.Visited:
			Disc(dst, bx, by, 4, b.Entity.NRGBA(1))
		default:
			Disc(dst, bx, by, 3, Palette[ColorHUDDim])
		}
	}
	Disc(dst, cx, cy, 2, Palette[ColorHUD])
}

func (r *Renderer) comms(dst *ebiten.Image, s *game.Sim, h float64, regions []game.Region) {
	bottom := h - 64
	for _, rg := range regions {
		if rg.Kind == game.RegionJoystick {
			bottom = rg.Y - 12
		}
	}
	msgs := s.Log.Recent(commsLines)
	y := bottom - float64(len(msgs))*commsLineH
	for i, m := range msgs {
		r.text.Draw(dst, m.Text, hudMargin, y+float64(i)*commsLineH, 1, msgColor(m.Priority), AlignLeft)
	}
}

func msgColor(p game.MsgPriority) color.NRGBA {
	switch p {
	case game.MsgDock:
		return Palette[ColorAccent]
	case game.MsgUnlock:
		return Brighten(Palette[ColorSecret], 0.3)
	default:
		return Palette[ColorHUD]
	}
}

func (r *Renderer) muteButton(dst *ebiten.Image, rg game.Region, muted bool) {
	clr := Palette[ColorHUD]
	label := "SND"
	if muted {
		clr = Palette[ColorWarn]
		label = "OFF"
	}
	Rect(dst, rg.X, rg.Y, rg.W, rg.H, Palette[ColorHUDPanel])
	Frame(dst, rg.X, rg.Y, rg.W, rg.H, 1, clr)
	cx, cy := rg.Center()
	r.text.Draw(dst, label, cx, cy-7, 1, clr, AlignCenter)
}

func (r *Renderer) pad(dst *ebiten.Image, rg game.Region, joy *game.Joystick) {
	cx, cy := rg.Center()
	rad := rg.W / 2
	Disc(dst, cx, cy, rad, Palette[ColorHUDPanel])
	Ring(dst, cx, cy, rad, 2, Palette[ColorHUDDim])
	kx, ky := cx, cy
	if joy != nil {
		if px, py, ok, _, _ := joy.State(); ok {
			// the pan vector is inverted, so the knob follows the finger
			kx = cx - px*rad/2
			ky = cy - py*rad/2
		}
	}
	Disc(dst, kx, ky, rad/3, WithAlpha(Palette[ColorHUD], 0.6))
}

func (r *Renderer) throttle(dst *ebiten.Image, rg game.Region, joy *game.Joystick) {
	Rect(dst, rg.X, rg.Y, rg.W, rg.H, Palette[ColorHUDPanel])
	Frame(dst, rg.X, rg.Y, rg.W, rg.H, 2, Palette[ColorHUDDim])
	v := 0.0
	if joy != nil {
		if _, _, _, t, ok := joy.State(); ok {
			v = t / 100
		}
	}
	fillH := rg.H * v
	Rect(dst, rg.X+4, rg.Y+rg.H-fillH, rg.W-8, fillH, WithAlpha(Palette[ColorAccent], 0.6))
	cx, _ := rg.Center()
	r.text.Draw(dst, "WARP", cx, rg.Y-18, 1, Palette[ColorHUDDim], AlignCenter)
}

func (r *Renderer) dockCard(dst *ebiten.Image, w, h float64, snap game.Snapshot, regions []game.Region) {
	e := snap.Active
	c := game.CardRect(w, h)
	Rect(dst, c.X, c.Y, c.W, c.H, Palette[ColorHUDPanel])
	Frame(dst, c.X, c.Y, c.W, c.H, 2, e.NRGBA(1))

	x := c.X + 24
	r.text.Draw(dst, "DOCKED AT "+e.ID, x, c.Y+20, 1, Palette[ColorHUDDim], AlignLeft)
	r.text.Draw(dst, e.Name, x, c.Y+44, 3, e.NRGBA(1), AlignLeft)
	r.text.Draw(dst, e.Role, x, c.Y+94, 2, Palette[ColorHUD], AlignLeft)
	rec := game.Archive(e)
	r.text.Draw(dst, archiveHeader, x, c.Y+140, 1, Palette[ColorHUDDim], AlignLeft)
	r.text.Draw(dst, rec.Status, x, c.Y+158, 1, Palette[ColorHUD], AlignLeft)
	r.text.Draw(dst, rec.Clearance, x, c.Y+176, 1, Palette[ColorHUDDim], AlignLeft)
	if rec.Note != "" {
		r.text.Draw(dst, rec.Note, x, c.Y+200, 1, Palette[ColorAccent], AlignLeft)
	}
	r.text.Draw(dst, "CLICK ANYWHERE TO UNDOCK", x, c.Y+c.H-40, 1, Palette[ColorHUDDim], AlignLeft)

	for _, rg := range regions {
		if rg.Kind != game.RegionCardClose {
			continue
		}
		Frame(dst, rg.X, rg.Y, rg.W, rg.H, 1, Palette[ColorAccent])
		cx, cy := rg.Center()
		r.text.Draw(dst, "CLOSE", cx, cy-7, 1, Palette[ColorAccent], AlignCenter)
	}
}

func (r *Renderer) banner(dst *ebiten.Image, w, h float64, snap game.Snapshot, regions []game.Region) {
	b := game.BannerRect(w, h)
	Rect(dst, b.X, b.Y, b.W, b.H, WithAlpha(Palette[ColorHUDPanel], 0.95))
	Frame(dst, b.X, b.Y, b.W, b.H, 2, Palette[ColorHUD])

	cx := b.X + b.W/2
	r.text.Draw(dst, "MISSION COMPLETE", cx, b.Y+40, 3, Palette[ColorHUD], AlignCenter)
	r.text.Draw(dst, "ALL CREW MEMBERS LOCATED", cx, b.Y+100, 1, Palette[ColorHUDDim], AlignCenter)
	r.text.Draw(dst, fmt.Sprintf("DISTANCE TRAVELED: %d", int(math.Round(snap.DistanceTraveled))), cx, b.Y+140, 1, Palette[ColorHUD], AlignCenter)
	r.text.Draw(dst, "STATUS: SUCCESS", cx, b.Y+160, 1, Palette[ColorHUD], AlignCenter)
	r.text.Draw(dst, "+ SECRET UNLOCKED", cx, b.Y+200, 2, Brighten(Palette[ColorSecret], 0.3), AlignCenter)

	for _, rg := range regions {
		if rg.Kind != game.RegionBannerClose {
			continue
		}
		x, y := rg.Center()
		Ring(dst, x, y, rg.W/2, 1, Palette[ColorHUD])
		Line(dst, x-6, y-6, x+6, y+6, 2, Palette[ColorHUD])
		Line(dst, x+6, y-6, x-6, y+6, 2, Palette[ColorHUD])
	}
}
