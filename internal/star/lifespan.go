package star

import (
	"fmt"
	"math"
)

// LowMassCutoff divides the two lifespan regimes in solar masses. Red dwarfs
// below it burn on a shallower power law and outlive the universe.
const LowMassCutoff = 0.43

// Lifespan relation coefficients. Both regimes are anchored so that a 1 M☉
// star lives 10 billion years.
const (
	mainSeqCoefficient = 10.0
	mainSeqExponent    = -2.5
	lowMassCoefficient = 15.0
	lowMassExponent    = -1.8
)

// Lifespan returns the main-sequence lifetime in billions of years:
// 10 * m^-2.5 at or above LowMassCutoff, 15 * m^-1.8 below it. It returns
// ErrInvalidMass when mass is not positive; there is no mass with an
// infinite lifespan.
func Lifespan(mass float64) (float64, error) {
	if mass <= 0 {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidMass, mass)
	}
	if mass >= LowMassCutoff {
		return mainSeqCoefficient * math.Pow(mass, mainSeqExponent), nil
	}
	return lowMassCoefficient * math.Pow(mass, lowMassExponent), nil
}
