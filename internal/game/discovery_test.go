package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoveryLog(t *testing.T) {
	s, _ := newTestSim(t)
	d := NewDiscoveryLog(len(s.Catalog.Crew))

	assert.True(t, d.Mark("JA-02"))
	assert.True(t, d.Mark("HB-01"))
	assert.False(t, d.Mark("JA-02"))
	assert.Equal(t, 2, d.Count())
	assert.Equal(t, 3, d.Docks)
	assert.Equal(t, []string{"JA-02", "HB-01"}, d.Order())
	assert.True(t, d.Has("HB-01"))
	assert.False(t, d.Has("AD-03"))
	assert.False(t, d.Complete(s.Catalog))

	order := d.Order()
	order[0] = "XX"
	assert.Equal(t, "JA-02", d.Order()[0], "Order returns a copy")

	for _, e := range s.Catalog.Crew {
		d.Mark(e.ID)
	}
	assert.True(t, d.Complete(s.Catalog))
	assert.Equal(t, len(s.Catalog.Crew), d.Count())
}

func TestSimTracksDocks(t *testing.T) {
	s, _ := newTestSim(t)
	dockAt(t, s, "HB-01")
	s.Click()
	dockAt(t, s, "HB-01")
	assert.Equal(t, 1, s.Discoveries().Count())
	assert.Equal(t, 2, s.Discoveries().Docks)
}

func TestArchiveIsStable(t *testing.T) {
	s, _ := newTestSim(t)
	for i := range s.Catalog.Crew {
		e := &s.Catalog.Crew[i]
		a, b := Archive(e), Archive(e)
		assert.Equal(t, a, b)
		require.NotEmpty(t, a.Status)
		assert.Contains(t, archiveStatus, a.Status)
		assert.Contains(t, archiveClearance, a.Clearance)
		if a.Note != "" {
			assert.Contains(t, archiveNotes, a.Note)
		}
	}
}
