package star

import (
	"fmt"
	"math"
)

// Mass-temperature relation constants. The power law is anchored at one
// solar mass: a 1 M☉ star has a surface temperature of exactly 5800 K.
const (
	// SolarTemperature is the surface temperature of a 1 M☉ star in kelvin.
	SolarTemperature = 5800.0

	massTempExponent = 0.505
)

// TemperatureForMass returns the surface temperature in kelvin predicted by
// the relation T = 5800 * m^0.505. It returns ErrInvalidMass when mass is
// not positive.
func TemperatureForMass(mass float64) (float64, error) {
	if mass <= 0 {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidMass, mass)
	}
	return SolarTemperature * math.Pow(mass, massTempExponent), nil
}

// MassForTemperature inverts the relation: m = (T/5800)^(1/0.505). It
// returns ErrInvalidTemperature when temperature is not positive. Callers
// re-derive the stored temperature from the recovered mass, so a resolved
// record is always self-consistent under the relation.
func MassForTemperature(temperature float64) (float64, error) {
	if temperature <= 0 {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidTemperature, temperature)
	}
	return math.Pow(temperature/SolarTemperature, 1/massTempExponent), nil
}
