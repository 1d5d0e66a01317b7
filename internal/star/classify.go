package star

import "strconv"

// Labels for temperatures outside the lettered Harvard bands.
const (
	// WolfRayetLabel classifies temperatures at or above 60000 K. The
	// subclass is always 0.
	WolfRayetLabel = "Wolf Rayet Star"

	// SubstellarLabel classifies temperatures below 600 K. It carries no
	// subclass digit.
	SubstellarLabel = "Below T type (Y dwarf or planet)"
)

const (
	wolfRayetFloor = 60000.0
	maxSubclass    = 9
)

// Band is one classifier band of the Harvard sequence. A temperature in the
// half-open range [Min, Max) belongs to the band; the subclass counts how
// many Divisor-wide steps the temperature sits below Max, capped at 9.
type Band struct {
	Class   string  // single-letter class
	Min     float64 // inclusive lower bound, kelvin
	Max     float64 // exclusive upper bound, kelvin
	Divisor float64 // kelvin per subclass step
}

// bands lists the classifier bands in descending temperature order. The
// first band whose range contains the temperature wins.
var bands = []Band{
	{Class: "O", Min: 30000, Max: 60000, Divisor: 3000},
	{Class: "B", Min: 10000, Max: 30000, Divisor: 2000},
	{Class: "A", Min: 7500, Max: 10000, Divisor: 250},
	{Class: "F", Min: 6000, Max: 7500, Divisor: 150},
	{Class: "G", Min: 5200, Max: 6000, Divisor: 80},
	{Class: "K", Min: 3700, Max: 5200, Divisor: 150},
	{Class: "M", Min: 2400, Max: 3700, Divisor: 130},
	{Class: "L", Min: 1300, Max: 2400, Divisor: 100},
	{Class: "T", Min: 600, Max: 1300, Divisor: 70},
}

// Bands returns a copy of the lettered classifier bands in descending
// temperature order. The Wolf-Rayet and substellar regions sit outside the
// table: everything at or above 60000 K is Wolf-Rayet, everything below
// 600 K is substellar.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}

// Classification is the classifier's verdict for one temperature.
type Classification struct {
	Class       string // letter class or out-of-band label
	Subclass    int    // 0-9 step within the band
	HasSubclass bool   // false only for the substellar label
}

// String renders the classification the way it appears on a resolved record:
// the class immediately followed by the subclass digit, or the bare label
// when there is no subclass.
func (c Classification) String() string {
	if !c.HasSubclass {
		return c.Class
	}
	return c.Class + strconv.Itoa(c.Subclass)
}

// Classify maps a surface temperature in kelvin to its spectral
// classification. Subclasses are truncated toward zero and capped at 9, so
// a temperature at the very bottom of a band whose span exceeds ten steps
// still classifies as subclass 9 (30000 K is "O9"). Temperatures below
// 600 K, including non-physical non-positive ones, classify substellar.
func Classify(temperature float64) Classification {
	if temperature >= wolfRayetFloor {
		return Classification{Class: WolfRayetLabel, HasSubclass: true}
	}
	for _, b := range bands {
		if temperature >= b.Min && temperature < b.Max {
			sub := int((b.Max - temperature) / b.Divisor)
			if sub > maxSubclass {
				sub = maxSubclass
			}
			return Classification{Class: b.Class, Subclass: sub, HasSubclass: true}
		}
	}
	return Classification{Class: SubstellarLabel}
}
