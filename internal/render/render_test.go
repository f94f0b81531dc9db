package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmic-explorer/cosmic_explorer/internal/game"
	"github.com/cosmic-explorer/cosmic_explorer/internal/world"
)

func TestLabelFaceCoversCatalog(t *testing.T) {
	cat, err := world.LoadEmbeddedCatalog()
	require.NoError(t, err)

	for _, e := range append(cat.Crew, cat.Secret) {
		for _, s := range []string{e.Name, e.Role} {
			r, missing := MissingGlyph(s)
			assert.False(t, missing, "%s: no glyph for %q in %q", e.ID, r, s)
		}
	}

	r, missing := MissingGlyph("ok 漢")
	assert.True(t, missing)
	assert.Equal(t, '漢', r)
}

func TestNewText(t *testing.T) {
	tx, err := NewText()
	require.NoError(t, err)
	assert.Greater(t, tx.Ascent(1), 0.0)
	assert.Greater(t, tx.LineHeight(2), tx.LineHeight(1))
}

func TestEntityLabel(t *testing.T) {
	assert.InDelta(t, 100+2.2*10+20, labelBaseline(100, 10), 1e-9)
	assert.InDelta(t, 20.0, labelBaseline(0, 0), 1e-9)

	assert.True(t, showLabel(game.Placed{RelZ: 500}))
	assert.False(t, showLabel(game.Placed{RelZ: 500, Active: true}))
	assert.False(t, showLabel(game.Placed{RelZ: 100}))
	assert.False(t, showLabel(game.Placed{RelZ: 2000}))
}

func TestPaletteCoreIsWhite(t *testing.T) {
	c := Palette[ColorStar]
	assert.Equal(t, [4]uint8{255, 255, 255, 255}, [4]uint8{c.R, c.G, c.B, c.A})
	assert.Equal(t, uint8(51), WithAlpha(c, 0.2).A)
}
