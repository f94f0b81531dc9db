package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/cosmic-explorer/cosmic_explorer/internal/config"
	"github.com/cosmic-explorer/cosmic_explorer/internal/game"
)

// wheelScale converts Ebitengine wheel notches into pixel-style deltas.
// Ebitengine reports scrolling up as positive; forward flight is scrolling down.
const wheelScale = -100.0

// pollInput turns per-tick Ebitengine input state into controller events.
type pollInput struct {
	touchMode string
	sawTouch  bool

	mouseX, mouseY int
	mouseIn        bool

	ids     []ebiten.TouchID
	touches map[ebiten.TouchID][2]int
}

func newPollInput(touchMode string) *pollInput {
	return &pollInput{
		touchMode: touchMode,
		mouseX:    -1,
		mouseY:    -1,
		touches:   make(map[ebiten.TouchID][2]int),
	}
}

// touchUI reports whether the on-screen joystick and throttle should show.
// In auto mode they appear after the first touch.
func (p *pollInput) touchUI() bool {
	switch p.touchMode {
	case config.TouchAlways:
		return true
	case config.TouchNever:
		return false
	}
	return p.sawTouch
}

func (p *pollInput) poll(c *game.Controller, w, h int) {
	if _, wy := ebiten.Wheel(); wy != 0 {
		c.Wheel(wy * wheelScale)
	}
	p.pollMouse(c, w, h)
	p.pollTouches(c)
}

func (p *pollInput) pollMouse(c *game.Controller, w, h int) {
	x, y := ebiten.CursorPosition()
	in := x >= 0 && y >= 0 && x < w && y < h
	if x != p.mouseX || y != p.mouseY {
		p.mouseX, p.mouseY = x, y
		if in {
			c.MouseMove(float64(x), float64(y))
		}
	}
	if p.mouseIn && !in {
		c.PointerLeft()
	}
	p.mouseIn = in

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		c.MouseDown(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		c.MouseUp(float64(x), float64(y))
	}
}

func (p *pollInput) pollTouches(c *game.Controller) {
	p.ids = inpututil.AppendJustPressedTouchIDs(p.ids[:0])
	for _, id := range p.ids {
		p.sawTouch = true
		x, y := ebiten.TouchPosition(id)
		p.touches[id] = [2]int{x, y}
		c.TouchStart(int(id), float64(x), float64(y))
	}

	p.ids = ebiten.AppendTouchIDs(p.ids[:0])
	for _, id := range p.ids {
		x, y := ebiten.TouchPosition(id)
		last, ok := p.touches[id]
		if !ok || last == [2]int{x, y} {
			continue
		}
		p.touches[id] = [2]int{x, y}
		c.TouchMove(int(id), float64(x), float64(y))
	}

	p.ids = inpututil.AppendJustReleasedTouchIDs(p.ids[:0])
	for _, id := range p.ids {
		if _, ok := p.touches[id]; !ok {
			continue
		}
		delete(p.touches, id)
		c.TouchEnd(int(id))
	}
}
