package world

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/cosmic-explorer/cosmic_explorer/assets"
)

// crewFile is the embedded catalog path.
const crewFile = "catalog/crew.yaml"

// ErrEmptyCatalog is returned when a catalog file lists no crew.
var ErrEmptyCatalog = errors.New("catalog has no crew entries")

// CrewEntity is a fixed waypoint along the travel axis.
type CrewEntity struct {
	ID    string  `yaml:"id"`
	Name  string  `yaml:"name"`
	Role  string  `yaml:"role"`
	Color string  `yaml:"color"` // #RRGGBB
	Z     float64 `yaml:"z"`

	rgb colorful.Color
}

// NRGBA returns the entity color with the given alpha (0..1).
func (c *CrewEntity) NRGBA(alpha float64) color.NRGBA {
	r, g, b := c.rgb.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha) * 255)}
}

// Catalog is the ordered crew list plus the bonus entity.
type Catalog struct {
	Crew   []CrewEntity `yaml:"crew"`
	Secret CrewEntity   `yaml:"secret"`
}

// LoadCatalog parses and validates a catalog from YAML bytes.
func LoadCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Crew) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(c.Crew)+1)
	for i := range c.Crew {
		e := &c.Crew[i]
		if err := e.parseColor(); err != nil {
			return nil, err
		}
		if e.ID == "" {
			return nil, fmt.Errorf("crew entry %d has no id", i)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("duplicate crew id %q", e.ID)
		}
		seen[e.ID] = true
		if i > 0 && e.Z <= c.Crew[i-1].Z {
			return nil, fmt.Errorf("crew %s: z %.0f not after %.0f", e.ID, e.Z, c.Crew[i-1].Z)
		}
	}

	if err := c.Secret.parseColor(); err != nil {
		return nil, err
	}
	if seen[c.Secret.ID] {
		return nil, fmt.Errorf("secret id %q collides with crew", c.Secret.ID)
	}
	if last := c.Crew[len(c.Crew)-1].Z; c.Secret.Z <= last {
		return nil, fmt.Errorf("secret z %.0f not beyond last crew z %.0f", c.Secret.Z, last)
	}
	return &c, nil
}

// LoadEmbeddedCatalog loads the crew catalog shipped with the game.
func LoadEmbeddedCatalog() (*Catalog, error) {
	data, err := assets.Catalog.ReadFile(crewFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", crewFile, err)
	}
	return LoadCatalog(data)
}

func (c *CrewEntity) parseColor() error {
	rgb, err := colorful.Hex(c.Color)
	if err != nil {
		return fmt.Errorf("crew %s: color %q: %w", c.ID, c.Color, err)
	}
	c.rgb = rgb
	return nil
}

// Len returns the number of regular crew entries.
func (c *Catalog) Len() int { return len(c.Crew) }

// Find returns the crew entity with the given id, or nil.
func (c *Catalog) Find(id string) *CrewEntity {
	for i := range c.Crew {
		if c.Crew[i].ID == id {
			return &c.Crew[i]
		}
	}
	return nil
}

// IndexOf returns the catalog index of id, or -1.
func (c *Catalog) IndexOf(id string) int {
	for i := range c.Crew {
		if c.Crew[i].ID == id {
			return i
		}
	}
	return -1
}

// NextAhead returns the index of the first crew entity deeper than z,
// or 0 when the camera has passed them all.
func (c *Catalog) NextAhead(z float64) int {
	for i := range c.Crew {
		if z < c.Crew[i].Z {
			return i
		}
	}
	return 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
