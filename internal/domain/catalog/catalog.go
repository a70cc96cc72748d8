// Package catalog loads and indexes target ring specifications.
//
// A catalog document is JSON of the form produced by range management
// tooling: {"targets": [{"type": ..., "rings": [{"ring", "diameter",
// "points", "color"}]}]}. Diameters are millimeters. The catalog is
// immutable once loaded and safe for concurrent readers.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Ring is one scoring annulus of a target.
type Ring struct {
	// ID is the printed ring label, e.g. "10" or "X".
	ID string `json:"ring"`
	// DiameterMM is the outer diameter of the ring in millimeters.
	DiameterMM float64 `json:"diameter"`
	// Points awarded for a hit inside this ring.
	Points int `json:"points"`
	// Color is a hex or rgba() fill used when drawing the ring.
	Color string `json:"color"`
}

// Radius returns the ring radius in millimeters.
func (r Ring) Radius() float64 {
	return r.DiameterMM / 2
}

// Target is a named, immutable set of rings in document order.
type Target struct {
	Name  string `json:"type"`
	Rings []Ring `json:"rings"`
}

// MaxDiameterMM returns the largest ring diameter of the target.
func (t Target) MaxDiameterMM() float64 {
	var maxD float64
	for _, r := range t.Rings {
		if r.DiameterMM > maxD {
			maxD = r.DiameterMM
		}
	}
	return maxD
}

// Catalog indexes targets by name while preserving document order.
type Catalog struct {
	targets map[string]Target
	names   []string
}

// document mirrors the on-disk catalog shape.
type document struct {
	Targets []Target `json:"targets"`
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	if len(doc.Targets) == 0 {
		return nil, fmt.Errorf("%w: no targets defined", ErrInvalidSpec)
	}

	c := &Catalog{targets: make(map[string]Target, len(doc.Targets))}
	for _, t := range doc.Targets {
		if err := validate(t); err != nil {
			return nil, err
		}
		if _, dup := c.targets[t.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate target %q", ErrInvalidSpec, t.Name)
		}
		c.targets[t.Name] = t
		c.names = append(c.names, t.Name)
	}
	return c, nil
}

// Load reads a catalog from path, or from the embedded default document
// when path is empty. The result is immutable and may be cached for the
// process lifetime.
func Load(_ context.Context, path string) (*Catalog, error) {
	data := defaultSpecs
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
		}
		data = b
	}
	return Parse(data)
}

// validate rejects ring sets the scoring engine cannot work with.
func validate(t Target) error {
	if t.Name == "" {
		return fmt.Errorf("%w: target with empty name", ErrInvalidSpec)
	}
	if len(t.Rings) == 0 {
		return fmt.Errorf("%w: target %q has no rings", ErrInvalidSpec, t.Name)
	}
	seen := make(map[float64]string, len(t.Rings))
	for _, r := range t.Rings {
		if r.DiameterMM <= 0 {
			return fmt.Errorf("%w: target %q ring %q has non-positive diameter", ErrInvalidSpec, t.Name, r.ID)
		}
		// Duplicate diameters make the inside-out scan ambiguous.
		if other, dup := seen[r.DiameterMM]; dup {
			return fmt.Errorf("%w: target %q rings %q and %q share diameter %v", ErrInvalidSpec, t.Name, other, r.ID, r.DiameterMM)
		}
		seen[r.DiameterMM] = r.ID
	}
	return nil
}

// Lookup returns the named target.
func (c *Catalog) Lookup(name string) (Target, error) {
	t, ok := c.targets[name]
	if !ok {
		return Target{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return t, nil
}

// Names returns target names in document order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of targets in the catalog.
func (c *Catalog) Len() int {
	return len(c.names)
}
