package star

import (
	"fmt"
	"strconv"
)

// Reference anchors a spectral letter class to representative physical
// values used to seed a spectral-type resolution.
type Reference struct {
	Mass        float64 // solar masses
	Temperature float64 // kelvin
}

// seedTable maps each letter class, including the L and T dwarf extensions,
// to its reference anchors. Lookup is case-sensitive; input surfaces
// uppercase spectral types before seeding.
var seedTable = map[byte]Reference{
	'O': {Mass: 20, Temperature: 50000},
	'B': {Mass: 2.5, Temperature: 25000},
	'A': {Mass: 2.0, Temperature: 10000},
	'F': {Mass: 1.4, Temperature: 7500},
	'G': {Mass: 1.1, Temperature: 5800},
	'K': {Mass: 0.8, Temperature: 4500},
	'M': {Mass: 0.5, Temperature: 3500},
	'L': {Mass: 0.08, Temperature: 2200},
	'T': {Mass: 0.05, Temperature: 1200},
}

// subclassShift is the fractional change to both anchors per subclass step
// away from the midpoint digit.
const (
	subclassShift    = 0.01
	subclassMidpoint = 5
)

// parseSubclass reads the digits following the letter class. A suffix that
// is not entirely ASCII digits, including an empty one, counts as 0. Digits
// are honored beyond one character, so "M55" reads as subclass 55.
func parseSubclass(suffix string) int {
	if suffix == "" {
		return 0
	}
	for i := 0; i < len(suffix); i++ {
		if suffix[i] < '0' || suffix[i] > '9' {
			return 0
		}
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0
	}
	return n
}

// adjustedSeed resolves a spectral-type string into the mass and temperature
// anchors for its letter class, scaled by the subclass adjustment factor
// 1 + 0.01*(5 - subclass). "G2" scales the G anchors by 1.03, "G8" by 0.97,
// and "M5" leaves the M anchors untouched. It returns
// ErrUnknownSpectralType when the letter class has no table entry.
func adjustedSeed(spectralType string) (mass, temperature float64, err error) {
	if spectralType == "" {
		return 0, 0, fmt.Errorf("%w: empty", ErrUnknownSpectralType)
	}
	ref, ok := seedTable[spectralType[0]]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownSpectralType, spectralType)
	}
	subclass := parseSubclass(spectralType[1:])
	factor := 1 + subclassShift*float64(subclassMidpoint-subclass)
	return ref.Mass * factor, ref.Temperature * factor, nil
}
