// Package star derives the observable properties of a main-sequence star
// from a single seed measurement. Given exactly one of mass, surface
// temperature, or spectral type, Resolve computes the remaining properties
// using empirical scaling relations anchored at the Sun. Metallicity is
// carried alongside the derived values but never feeds back into them.
package star

import "strconv"

// SolarMetallicity is the metallicity stored when neither the seed nor the
// prompt supplies one, expressed in solar units (Z/Z☉).
const SolarMetallicity = 1.0

// StarProperties is the fully resolved record for one star. Every field is
// populated after a successful resolution.
type StarProperties struct {
	Mass         float64 // solar masses
	Temperature  float64 // kelvin
	Lifespan     float64 // billions of years
	SpectralType string  // Harvard letter plus subclass digit
	Metallicity  float64 // solar units
}

// Seed carries the optional inputs for one resolution. Pointer fields
// distinguish absent from zero: a nil Mass means no mass was supplied, and a
// pointer to zero is a present (and invalid) mass. An empty SpectralType
// means absent.
type Seed struct {
	Mass         *float64
	Temperature  *float64
	SpectralType string
	Metallicity  *float64
}

// SeedKind identifies which derivation path a resolution takes.
type SeedKind string

// Derivation paths in precedence order. When a seed carries several
// properties, the highest-precedence one wins and the rest are ignored.
const (
	SeedMass         SeedKind = "mass"
	SeedTemperature  SeedKind = "temperature"
	SeedSpectralType SeedKind = "spectral_type"
)

// Kind returns the derivation path for the seed, following the precedence
// mass > temperature > spectral type. It returns ErrMissingSeed when none of
// the three seed properties is present. Metallicity alone does not count as
// a seed.
func (s Seed) Kind() (SeedKind, error) {
	switch {
	case s.Mass != nil:
		return SeedMass, nil
	case s.Temperature != nil:
		return SeedTemperature, nil
	case s.SpectralType != "":
		return SeedSpectralType, nil
	}
	return "", ErrMissingSeed
}

// Value returns the winning seed measurement as a plain string, chosen by
// the same precedence as Kind. Returns "" for an empty seed.
func (s Seed) Value() string {
	kind, err := s.Kind()
	if err != nil {
		return ""
	}
	switch kind {
	case SeedMass:
		return strconv.FormatFloat(*s.Mass, 'g', -1, 64)
	case SeedTemperature:
		return strconv.FormatFloat(*s.Temperature, 'g', -1, 64)
	default:
		return s.SpectralType
	}
}

// Options configures a resolution.
type Options struct {
	// MetallicityPrompt supplies a metallicity when the seed carries none
	// and the derivation passes through the mass relation. Return ok=false
	// to decline; a nil prompt always declines. The low-mass spectral
	// branch never consults the prompt.
	MetallicityPrompt func() (value float64, ok bool)

	// DefaultMetallicity is stored when no metallicity is supplied and the
	// prompt declines. Non-positive values fall back to SolarMetallicity.
	DefaultMetallicity float64
}

// DefaultOptions returns production defaults: no prompt, solar metallicity.
func DefaultOptions() Options {
	return Options{DefaultMetallicity: SolarMetallicity}
}
