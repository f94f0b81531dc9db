package game

import (
	"math"

	"github.com/cosmic-explorer/cosmic_explorer/internal/world"
)

const (
	radarSpan    = 8500.0 // depth mapped onto the radar face
	radarScale   = 50.0
	radarMaxDist = 60.0
)

// Blip is one entity on the radar, offset from the radar center in pixels.
type Blip struct {
	Entity  *world.CrewEntity
	DX, DY  float64
	Visited bool
	Secret  bool
}

// RadarSweep returns the sweep angle in degrees for a camera depth.
func RadarSweep(cameraZ float64) float64 {
	return math.Mod(cameraZ/100, 360)
}

// RadarBlips lays out the crew on the radar around the ship at cameraZ.
// Entities sit on evenly spaced bearings by catalog index; the secret
// entity joins as the last bearing once unlocked.
func RadarBlips(cat *world.Catalog, snap Snapshot) []Blip {
	n := len(cat.Crew)
	slots := n
	if snap.SecretUnlocked {
		slots++
	}
	out := make([]Blip, 0, slots)
	place := func(i int, e *world.CrewEntity, secret bool) {
		angle := float64(i) * (2 * math.Pi / float64(slots))
		d := math.Min(math.Abs(e.Z/radarSpan-snap.CameraZ/radarSpan)*radarScale, radarMaxDist)
		out = append(out, Blip{
			Entity:  e,
			DX:      math.Cos(angle) * d,
			DY:      math.Sin(angle) * d,
			Visited: snap.HasVisited(e.ID),
			Secret:  secret,
		})
	}
	for i := range cat.Crew {
		place(i, &cat.Crew[i], false)
	}
	if snap.SecretUnlocked {
		place(n, &cat.Secret, true)
	}
	return out
}
