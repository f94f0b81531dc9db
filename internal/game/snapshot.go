package game

import (
	"slices"

	"github.com/cosmic-explorer/cosmic_explorer/internal/world"
)

// Snapshot is the read-only view of the scene handed to the HUD. Flight
// metrics in it are sampled every metricsInterval ticks; discrete state is
// pushed as soon as it changes.
type Snapshot struct {
	VisitedIDs       []string // in visit order
	CurrentSpeed     float64
	DistanceTraveled float64
	CameraZ          float64
	Muted            bool
	SecretUnlocked   bool
	Active           *world.CrewEntity
	BannerDismissed  bool
	CrewCount        int
	Seq              uint64 // increments on every publish
}

// Docked reports whether the snapshot was taken while docked.
func (s Snapshot) Docked() bool { return s.Active != nil }

// HasVisited reports whether id is among the visited entities.
func (s Snapshot) HasVisited(id string) bool { return slices.Contains(s.VisitedIDs, id) }

// BannerVisible reports whether the completion banner should show.
func (s Snapshot) BannerVisible() bool { return s.SecretUnlocked && !s.BannerDismissed }

// Publisher holds the latest snapshot and notifies an optional subscriber.
// It is the only channel from the simulation to the HUD.
type Publisher struct {
	latest Snapshot
	seq    uint64
	notify func(Snapshot)
}

// Subscribe sets the function called after every publish.
func (p *Publisher) Subscribe(fn func(Snapshot)) { p.notify = fn }

// Latest returns the most recently published snapshot.
func (p *Publisher) Latest() Snapshot { return p.latest }

func (p *Publisher) push(s Snapshot) {
	p.seq++
	s.Seq = p.seq
	p.latest = s
	if p.notify != nil {
		p.notify(s)
	}
}

// Snapshot returns the most recently published HUD snapshot.
func (s *Sim) Snapshot() Snapshot { return s.pub.Latest() }

// OnPublish registers a subscriber for snapshot pushes.
func (s *Sim) OnPublish(fn func(Snapshot)) { s.pub.Subscribe(fn) }

func (s *Sim) publish() {
	s.pub.push(Snapshot{
		VisitedIDs:       s.visited.Order(),
		CurrentSpeed:     s.metrics.Speed,
		DistanceTraveled: s.metrics.Distance,
		CameraZ:          s.metrics.CameraZ,
		Muted:            s.muted,
		SecretUnlocked:   s.unlocked,
		Active:           s.active,
		BannerDismissed:  s.bannerDismissed,
		CrewCount:        len(s.Catalog.Crew),
	})
}
