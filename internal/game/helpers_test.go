package game

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/cosmic-explorer/cosmic_explorer/internal/world"
)

const (
	viewW = 1280.0
	viewH = 720.0
	frame = 1.0 / 60
)

type tone struct {
	freq  float64
	dur   time.Duration
	vol   float64
	delay time.Duration
}

type fakeSound struct {
	tones     []tone
	fanfares  int
	mutedSets []bool
}

func (f *fakeSound) PlayTone(freq float64, dur time.Duration, vol float64, delay time.Duration) {
	f.tones = append(f.tones, tone{freq, dur, vol, delay})
}

func (f *fakeSound) PlayUnlockFanfare() { f.fanfares++ }

func (f *fakeSound) SetMuted(m bool) { f.mutedSets = append(f.mutedSets, m) }

func newTestSim(t *testing.T) (*Sim, *fakeSound) {
	t.Helper()
	cat, err := world.LoadEmbeddedCatalog()
	require.NoError(t, err)
	field := world.NewField(viewW, viewH, 50, 4, rand.New(rand.NewPCG(1, 1)))
	snd := &fakeSound{}
	s := NewSim(cat, field, snd, zerolog.Nop())
	return s, snd
}

// pointAt returns the projected center of the visible entity id.
func pointAt(t *testing.T, s *Sim, id string) (float64, float64) {
	t.Helper()
	for _, p := range s.Visible(nil) {
		if p.Entity.ID == id {
			return p.Proj.X, p.Proj.Y
		}
	}
	t.Fatalf("%s not visible at camera z %.1f", id, s.Camera().Z)
	return 0, 0
}

// dockAt flies the camera in front of id and clicks on it.
func dockAt(t *testing.T, s *Sim, id string) {
	t.Helper()
	e := s.Catalog.Find(id)
	require.NotNil(t, e)
	s.cam.Z = e.Z - 1000
	s.targetZ = s.cam.Z
	s.SetPointer(pointAt(t, s, id))
	require.Equal(t, id, s.Hover())
	s.Click()
	require.True(t, s.Docked())
}

func checkDockInvariant(t *testing.T, s *Sim) {
	t.Helper()
	require.Equal(t, s.Docked(), s.Active() != nil)
	snap := s.Snapshot()
	require.Equal(t, snap.Docked(), snap.Active != nil)
	require.Equal(t, s.Docked(), snap.Docked())
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
