package game

import (
	"hash/fnv"
	"math/rand/v2"
	"slices"

	"github.com/cosmic-explorer/cosmic_explorer/internal/world"
)

// DiscoveryLog tracks which crew entities have been docked at this session.
// It only grows.
type DiscoveryLog struct {
	seen  map[string]bool
	order []string // first-visit order
	Docks int      // every dock, repeats included
}

// NewDiscoveryLog creates an empty discovery log.
func NewDiscoveryLog(capacity int) *DiscoveryLog {
	return &DiscoveryLog{
		seen:  make(map[string]bool, capacity),
		order: make([]string, 0, capacity),
	}
}

// Mark records a dock at id and reports whether it was the first.
func (d *DiscoveryLog) Mark(id string) bool {
	d.Docks++
	if d.seen[id] {
		return false
	}
	d.seen[id] = true
	d.order = append(d.order, id)
	return true
}

// Has reports whether id has been docked at.
func (d *DiscoveryLog) Has(id string) bool { return d.seen[id] }

// Count returns the number of distinct entities visited.
func (d *DiscoveryLog) Count() int { return len(d.order) }

// Order returns a copy of the visited ids in first-visit order.
func (d *DiscoveryLog) Order() []string { return slices.Clone(d.order) }

// Complete reports whether every crew entity in cat has been visited.
func (d *DiscoveryLog) Complete(cat *world.Catalog) bool {
	for i := range cat.Crew {
		if !d.seen[cat.Crew[i].ID] {
			return false
		}
	}
	return true
}

// ArchiveRecord is the flavour text shown on the dock card.
type ArchiveRecord struct {
	Status    string
	Clearance string
	Note      string // empty if the archive holds no extra note
}

// Flavor text pools.

var archiveStatus = []string{
	"PERSONNEL RECORD VERIFIED",
	"ARCHIVE INTEGRITY 100%",
	"BIOMETRIC SIGNATURE MATCHED",
	"CREW MANIFEST CROSS-CHECKED",
}

var archiveClearance = []string{
	"CLEARANCE: CREATIVE COMMAND",
	"CLEARANCE: DESIGN CORE",
	"CLEARANCE: PRODUCTION DECK",
}

var archiveNotes = []string{
	"Transmission log secured.",
	"Concept files recovered from deep storage.",
	"Signal strength nominal. Archive synced.",
	"Encrypted sketches decoded.",
}

// Archive returns the archive record for an entity. The same id always
// yields the same record.
func Archive(e *world.CrewEntity) ArchiveRecord {
	h := fnv.New64a()
	h.Write([]byte(e.ID))
	seed := h.Sum64()
	rng := rand.New(rand.NewPCG(seed, seed>>16|7))

	rec := ArchiveRecord{
		Status:    archiveStatus[rng.IntN(len(archiveStatus))],
		Clearance: archiveClearance[rng.IntN(len(archiveClearance))],
	}
	// half of the archives carry a note
	if rng.IntN(2) == 0 {
		rec.Note = archiveNotes[rng.IntN(len(archiveNotes))]
	}
	return rec
}
