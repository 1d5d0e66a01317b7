// Package catalog manages named star catalogs: a builtin table of nearby
// and well-known main-sequence stars, plus user catalogs loaded from TOML or
// YAML files and merged over it. Each entry carries the seed measurements a
// resolution starts from, never pre-resolved values.
package catalog

import (
	"strings"

	"github.com/papapumpkin/mainseq/internal/star"
)

// Entry is one named star in a catalog. Only the seed fields present in the
// source are set; Seed converts them for resolution.
type Entry struct {
	Name         string   `toml:"name" yaml:"name"`
	Aliases      []string `toml:"aliases,omitempty" yaml:"aliases,omitempty"`
	Mass         *float64 `toml:"mass,omitempty" yaml:"mass,omitempty"`
	Temperature  *float64 `toml:"temperature,omitempty" yaml:"temperature,omitempty"`
	SpectralType string   `toml:"spectral_type,omitempty" yaml:"spectral_type,omitempty"`
	Metallicity  *float64 `toml:"metallicity,omitempty" yaml:"metallicity,omitempty"`
	Notes        string   `toml:"notes,omitempty" yaml:"notes,omitempty"`
}

// Seed converts the entry's measurements into a resolution seed. Spectral
// types are uppercased here so catalog files may use either case.
func (e Entry) Seed() star.Seed {
	return star.Seed{
		Mass:         e.Mass,
		Temperature:  e.Temperature,
		SpectralType: strings.ToUpper(strings.TrimSpace(e.SpectralType)),
		Metallicity:  e.Metallicity,
	}
}

// Catalog is an ordered set of stars. Merging resolves name collisions in
// favor of the catalog merged in later.
type Catalog struct {
	Version int     `toml:"version" yaml:"version"`
	Stars   []Entry `toml:"star" yaml:"stars"`
}

// Lookup finds an entry by name or alias, case-insensitively.
func (c Catalog) Lookup(name string) (Entry, bool) {
	for _, e := range c.Stars {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
		for _, alias := range e.Aliases {
			if strings.EqualFold(alias, name) {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// Merge overlays other onto the catalog: entries with a matching name
// replace in place, new names append in order. The receiver is not modified.
func (c Catalog) Merge(other Catalog) Catalog {
	merged := Catalog{Version: c.Version, Stars: make([]Entry, len(c.Stars))}
	copy(merged.Stars, c.Stars)

	index := make(map[string]int, len(merged.Stars))
	for i, e := range merged.Stars {
		index[strings.ToLower(e.Name)] = i
	}
	for _, e := range other.Stars {
		if i, ok := index[strings.ToLower(e.Name)]; ok {
			merged.Stars[i] = e
			continue
		}
		index[strings.ToLower(e.Name)] = len(merged.Stars)
		merged.Stars = append(merged.Stars, e)
	}
	return merged
}

// Builtin returns the compiled-in catalog of real main-sequence stars. The
// seed kinds are deliberately mixed: some stars seed by mass, some by
// measured temperature, some by spectral type.
func Builtin() Catalog {
	f := func(v float64) *float64 { return &v }
	return Catalog{
		Version: 1,
		Stars: []Entry{
			{Name: "Sun", Aliases: []string{"Sol"}, Mass: f(1.0), Metallicity: f(1.0)},
			{Name: "Alpha Centauri A", Aliases: []string{"Rigil Kentaurus"}, Mass: f(1.079)},
			{Name: "Alpha Centauri B", Aliases: []string{"Toliman"}, Mass: f(0.909)},
			{Name: "Proxima Centauri", Aliases: []string{"Alpha Centauri C"}, Temperature: f(3042)},
			{Name: "Barnard's Star", SpectralType: "M4"},
			{Name: "Wolf 359", SpectralType: "M6"},
			{Name: "Sirius A", Aliases: []string{"Dog Star"}, Mass: f(2.063)},
			{Name: "Vega", Temperature: f(9602)},
			{Name: "Altair", Temperature: f(7550)},
			{Name: "Epsilon Eridani", Aliases: []string{"Ran"}, Mass: f(0.82), Metallicity: f(0.74)},
			{Name: "Tau Ceti", Mass: f(0.783), Metallicity: f(0.3)},
			{Name: "TRAPPIST-1", Temperature: f(2566), Notes: "ultra-cool dwarf at the bottom of the main sequence"},
		},
	}
}
