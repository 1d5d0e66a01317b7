package star

import "errors"

// ErrMissingSeed is returned when a resolution is attempted with no seed
// property present on the Seed.
var ErrMissingSeed = errors.New("at least one of mass, temperature, or spectral type must be provided")

// ErrInvalidMass is returned when a derivation reaches a non-positive mass,
// either supplied directly or produced by a subclass adjustment.
var ErrInvalidMass = errors.New("mass must be positive")

// ErrInvalidTemperature is returned when a supplied temperature is not positive.
var ErrInvalidTemperature = errors.New("temperature must be positive")

// ErrUnknownSpectralType is returned when a spectral type's letter class has
// no entry in the seed table.
var ErrUnknownSpectralType = errors.New("unknown spectral type")
