package world

import (
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"
)

// Default particle counts for a scene.
const (
	StarCount   = 1000
	NebulaCount = 20
)

// Nebula tints, picked with equal odds.
const (
	NebulaPurple = "#2a0a2a"
	NebulaTeal   = "#0a1a1a"
)

// Star is a background point light.
type Star struct {
	X, Y, Z float64
}

// Nebula is a large additive colour blob.
type Nebula struct {
	X, Y, Z float64
	Color   string
	Size    float64
}

// Field holds the background particles of one scene mount.
// Particles never change after creation; only their wrapped depth
// relative to the camera is computed at draw time.
type Field struct {
	ECS     *ecs.World
	W, H    float64
	stars   *ecs.Filter1[Star]
	nebulas *ecs.Filter1[Nebula]
	nStars  int
	nNebula int
}

// NewField populates a fresh ECS world with stars and nebulas spread
// over a box scaled to a w*h viewport.
func NewField(w, h float64, stars, nebulas int, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	world := ecs.NewWorld(stars + nebulas)

	starMap := ecs.NewMap1[Star](world)
	for range stars {
		s := NewStar(w, h, rng)
		starMap.NewEntity(&s)
	}
	nebMap := ecs.NewMap1[Nebula](world)
	for range nebulas {
		n := NewNebula(w, h, rng)
		nebMap.NewEntity(&n)
	}

	return &Field{
		ECS:     world,
		W:       w,
		H:       h,
		stars:   ecs.NewFilter1[Star](world),
		nebulas: ecs.NewFilter1[Nebula](world),
		nStars:  stars,
		nNebula: nebulas,
	}
}

// NewStar returns a star anywhere in +-3 viewports around the origin.
func NewStar(w, h float64, rng *rand.Rand) Star {
	return Star{
		X: (rng.Float64() - 0.5) * w * 6,
		Y: (rng.Float64() - 0.5) * h * 6,
		Z: rng.Float64() * DepthWrap,
	}
}

// NewNebula returns a nebula within +-2 widths and +-1 height.
func NewNebula(w, h float64, rng *rand.Rand) Nebula {
	c := NebulaPurple
	if rng.Float64() >= 0.5 {
		c = NebulaTeal
	}
	return Nebula{
		X:     (rng.Float64() - 0.5) * w * 4,
		Y:     (rng.Float64() - 0.5) * h * 2,
		Z:     rng.Float64() * DepthWrap,
		Color: c,
		Size:  500 + rng.Float64()*1000,
	}
}

// Stars returns the number of stars in the field.
func (f *Field) Stars() int { return f.nStars }

// Nebulas returns the number of nebulas in the field.
func (f *Field) Nebulas() int { return f.nNebula }

// EachStar calls fn for every star.
func (f *Field) EachStar(fn func(*Star)) {
	q := f.stars.Query()
	for q.Next() {
		fn(q.Get())
	}
}

// EachNebula calls fn for every nebula.
func (f *Field) EachNebula(fn func(*Nebula)) {
	q := f.nebulas.Query()
	for q.Next() {
		fn(q.Get())
	}
}
