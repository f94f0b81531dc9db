package world

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapDepthRange(t *testing.T) {
	inputs := []float64{
		-1e9, -20000, -10000, -9999.5, -1, -0.5, 0, 0.25, 1, 1.5,
		9999, 10000, 10000.5, 20001, 1e12,
		math.Inf(1), math.Inf(-1), math.NaN(),
	}
	for _, d := range inputs {
		got := WrapDepth(d)
		assert.Greater(t, got, 1.0, "WrapDepth(%v)", d)
		assert.LessOrEqual(t, got, DepthWrap, "WrapDepth(%v)", d)
	}
}

func TestWrapDepthRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 10000 {
		d := (rng.Float64() - 0.5) * 1e7
		got := WrapDepth(d)
		require.Greater(t, got, 1.0)
		require.LessOrEqual(t, got, DepthWrap)
	}
}

func TestWrapDepthKeepsInRangeValues(t *testing.T) {
	assert.InDelta(t, 4321.0, WrapDepth(4321), 1e-9)
	assert.InDelta(t, 4321.0, WrapDepth(4321-DepthWrap), 1e-9)
	assert.Equal(t, DepthWrap, WrapDepth(0))
	assert.Equal(t, DepthWrap, WrapDepth(-DepthWrap))
}

func TestProjectScaleDecreasesWithDepth(t *testing.T) {
	prev := math.Inf(1)
	for z := -FOV + 1; z < 20000; z += 37 {
		p := Project(Point3{X: 100, Y: -50, Z: z}, 0, 0, 800, 600)
		assert.Less(t, p.Scale, prev, "depth %v", z)
		prev = p.Scale
	}
}

func TestProjectCentersCameraTarget(t *testing.T) {
	p := Project(Point3{X: 30, Y: 40, Z: 0}, 30, 40, 800, 600)
	assert.Equal(t, 400.0, p.X)
	assert.Equal(t, 300.0, p.Y)
	assert.Equal(t, 1.0, p.Scale)

	p = Project(Point3{X: 600, Y: 0, Z: FOV}, 0, 0, 800, 600)
	assert.InDelta(t, 0.5, p.Scale, 1e-12)
	assert.InDelta(t, 700.0, p.X, 1e-9)
}

func TestClampDepth(t *testing.T) {
	assert.Equal(t, 0.0, ClampDepth(-5))
	assert.Equal(t, 1234.0, ClampDepth(1234))
	assert.Equal(t, MaxDepth, ClampDepth(9000))
}

func TestSlotLayout(t *testing.T) {
	x, y := Slot(0)
	assert.InDelta(t, 500.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)

	x, y = Slot(1)
	assert.InDelta(t, math.Cos(2)*500, x, 1e-9)
	assert.InDelta(t, math.Sin(2)*250, y, 1e-9)

	assert.False(t, InBand(10))
	assert.True(t, InBand(10.5))
	assert.True(t, InBand(7999))
	assert.False(t, InBand(8000))
}

func TestDashPolyline(t *testing.T) {
	segs := DashPolyline([][2]float64{{0, 0}, {30, 0}}, 10, 5)
	require.Len(t, segs, 2)
	assert.Equal(t, Segment{0, 0, 10, 0}, segs[0])
	assert.Equal(t, Segment{15, 0, 25, 0}, segs[1])

	// dash phase carries around the corner
	segs = DashPolyline([][2]float64{{0, 0}, {6, 0}, {6, 10}}, 10, 5)
	require.Len(t, segs, 3)
	assert.Equal(t, Segment{0, 0, 6, 0}, segs[0])
	assert.Equal(t, Segment{6, 0, 6, 4}, segs[1])
	assert.Equal(t, Segment{6, 9, 6, 10}, segs[2])

	assert.Nil(t, DashPolyline([][2]float64{{0, 0}}, 10, 5))
}

func TestStreakPointsOutward(t *testing.T) {
	ex, ey := Streak(110, 100, 100, 100, 20)
	assert.InDelta(t, 130.0, ex, 1e-9)
	assert.InDelta(t, 100.0, ey, 1e-9)

	ex, ey = Streak(100, 90, 100, 100, 5)
	assert.InDelta(t, 100.0, ex, 1e-9)
	assert.InDelta(t, 85.0, ey, 1e-9)
}

const testCatalog = `
crew:
  - {id: A, name: Alpha, role: Pilot, color: "#FFD700", z: 1000}
  - {id: B, name: Beta, role: Nav, color: "#00FF7F", z: 2500}
secret: {id: S, name: Secret, role: Boss, color: "#9D00FF", z: 8500}
`

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog([]byte(testCatalog))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "Beta", c.Crew[1].Name)
	assert.Equal(t, 8500.0, c.Secret.Z)

	rgba := c.Crew[0].NRGBA(1)
	assert.Equal(t, uint8(0xFF), rgba.R)
	assert.Equal(t, uint8(0xD7), rgba.G)
	assert.Equal(t, uint8(0x00), rgba.B)
	assert.Equal(t, uint8(0xFF), rgba.A)

	assert.Equal(t, 1, c.IndexOf("B"))
	assert.Equal(t, -1, c.IndexOf("S"))
	assert.NotNil(t, c.Find("A"))
	assert.Nil(t, c.Find("nope"))

	assert.Equal(t, 0, c.NextAhead(0))
	assert.Equal(t, 1, c.NextAhead(1000))
	assert.Equal(t, 0, c.NextAhead(3000))
}

func TestLoadCatalogRejects(t *testing.T) {
	cases := map[string]string{
		"empty": `crew: []`,
		"dup": `
crew:
  - {id: A, color: "#FFFFFF", z: 1}
  - {id: A, color: "#FFFFFF", z: 2}
secret: {id: S, color: "#FFFFFF", z: 3}`,
		"order": `
crew:
  - {id: A, color: "#FFFFFF", z: 2}
  - {id: B, color: "#FFFFFF", z: 2}
secret: {id: S, color: "#FFFFFF", z: 3}`,
		"color": `
crew:
  - {id: A, color: "yellow", z: 1}
secret: {id: S, color: "#FFFFFF", z: 3}`,
		"secret depth": `
crew:
  - {id: A, color: "#FFFFFF", z: 10}
secret: {id: S, color: "#FFFFFF", z: 5}`,
		"yaml": `crew: [`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCatalog([]byte(doc))
			assert.Error(t, err)
		})
	}

	_, err := LoadCatalog([]byte(`crew: []`))
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestNewFieldRanges(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 9))
	f := NewField(800, 600, StarCount, NebulaCount, rng)
	assert.Equal(t, StarCount, f.Stars())
	assert.Equal(t, NebulaCount, f.Nebulas())

	n := 0
	f.EachStar(func(s *Star) {
		n++
		assert.LessOrEqual(t, math.Abs(s.X), 2400.0)
		assert.LessOrEqual(t, math.Abs(s.Y), 1800.0)
		assert.GreaterOrEqual(t, s.Z, 0.0)
		assert.Less(t, s.Z, DepthWrap)
	})
	assert.Equal(t, StarCount, n)

	n = 0
	maxY := 0.0
	f.EachNebula(func(nb *Nebula) {
		n++
		maxY = math.Max(maxY, math.Abs(nb.Y))
		assert.LessOrEqual(t, math.Abs(nb.X), 1600.0)
		assert.LessOrEqual(t, math.Abs(nb.Y), 600.0)
		assert.GreaterOrEqual(t, nb.Size, 500.0)
		assert.Less(t, nb.Size, 1500.0)
		assert.Contains(t, []string{NebulaPurple, NebulaTeal}, nb.Color)
	})
	assert.Equal(t, NebulaCount, n)
	assert.Greater(t, maxY, 300.0, "nebulas spread over the full viewport height")
}

func TestEmbeddedCatalog(t *testing.T) {
	c, err := LoadEmbeddedCatalog()
	require.NoError(t, err)
	require.Equal(t, 5, c.Len())

	ids := make([]string, 0, c.Len())
	zs := make([]float64, 0, c.Len())
	for _, e := range c.Crew {
		ids = append(ids, e.ID)
		zs = append(zs, e.Z)
	}
	assert.Equal(t, []string{"HB-01", "JA-02", "AD-03", "RC-04", "LG-05"}, ids)
	assert.Equal(t, []float64{1000, 2500, 4000, 5500, 7000}, zs)
	assert.Equal(t, "RC-SECRET", c.Secret.ID)
	assert.Equal(t, 8500.0, c.Secret.Z)
}
