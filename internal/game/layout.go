package game

import "math"

// RegionKind identifies an on-screen control.
type RegionKind uint8

const (
	RegionNone RegionKind = iota
	RegionBannerClose
	RegionBanner
	RegionCardClose
	RegionMute
	RegionJoystick
	RegionThrottle
)

func (k RegionKind) String() string {
	switch k {
	case RegionBannerClose:
		return "banner-close"
	case RegionBanner:
		return "banner"
	case RegionCardClose:
		return "card-close"
	case RegionMute:
		return "mute"
	case RegionJoystick:
		return "joystick"
	case RegionThrottle:
		return "throttle"
	}
	return "none"
}

// Region is a control's screen rectangle. Round regions hit-test as the
// ellipse inscribed in the rectangle.
type Region struct {
	Kind       RegionKind
	X, Y, W, H float64
	Round      bool
}

// Contains reports whether (x, y) is inside the region.
func (r Region) Contains(x, y float64) bool {
	if r.Round {
		rx, ry := r.W/2, r.H/2
		if rx <= 0 || ry <= 0 {
			return false
		}
		dx := (x - (r.X + rx)) / rx
		dy := (y - (r.Y + ry)) / ry
		return dx*dx+dy*dy <= 1
	}
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the region's center point.
func (r Region) Center() (x, y float64) { return r.X + r.W/2, r.Y + r.H/2 }

// Control layout metrics, in surface pixels.
const (
	padMargin      = 32.0
	padSize        = 128.0
	throttleW      = 48.0
	throttleH      = 192.0
	muteSize       = 32.0
	muteLeft       = 192.0
	muteBottom     = 24.0
	panelMaxW      = 576.0
	bannerH        = 300.0
	cardH          = 320.0
	closeSize      = 32.0
	closeInset     = 16.0
	cardCloseW     = 96.0
	cardCloseH     = 28.0
	panelWidthFrac = 0.9
)

// LayoutControls returns the interactive regions for a w x h surface,
// highest priority first. The renderer draws from the same list the
// controller hit-tests against.
func LayoutControls(w, h float64, snap Snapshot, touchUI bool) []Region {
	var rs []Region
	if snap.BannerVisible() {
		b := BannerRect(w, h)
		rs = append(rs,
			Region{Kind: RegionBannerClose, X: b.X + b.W - closeInset - closeSize, Y: b.Y + closeInset, W: closeSize, H: closeSize, Round: true},
			b,
		)
	}
	if snap.Docked() {
		c := CardRect(w, h)
		rs = append(rs, Region{
			Kind: RegionCardClose,
			X:    c.X + c.W - closeInset*2 - cardCloseW,
			Y:    c.Y + c.H - closeInset*2 - cardCloseH,
			W:    cardCloseW,
			H:    cardCloseH,
		})
		return rs
	}
	rs = append(rs, Region{Kind: RegionMute, X: muteLeft, Y: h - muteBottom - muteSize, W: muteSize, H: muteSize})
	if touchUI {
		rs = append(rs,
			Region{Kind: RegionJoystick, X: padMargin, Y: h - padMargin - padSize, W: padSize, H: padSize, Round: true},
			Region{Kind: RegionThrottle, X: w - padMargin - throttleW, Y: h - padMargin - throttleH, W: throttleW, H: throttleH},
		)
	}
	return rs
}

// BannerRect is the completion banner panel.
func BannerRect(w, h float64) Region {
	pw := panelWidth(w)
	return Region{Kind: RegionBanner, X: (w - pw) / 2, Y: (h - bannerH) / 2, W: pw, H: bannerH}
}

// CardRect is the docking card panel. It does not catch clicks.
func CardRect(w, h float64) Region {
	pw := panelWidth(w)
	return Region{Kind: RegionNone, X: (w - pw) / 2, Y: (h - cardH) / 2, W: pw, H: cardH}
}

func panelWidth(w float64) float64 {
	return math.Min(panelMaxW, w*panelWidthFrac)
}

// Find returns the first region containing (x, y).
func Find(rs []Region, x, y float64) (Region, bool) {
	for _, r := range rs {
		if r.Contains(x, y) {
			return r, true
		}
	}
	return Region{}, false
}
