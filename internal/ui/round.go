package ui

import (
	"math"

	"github.com/papapumpkin/mainseq/internal/star"
)

// Rounded is the display form of a resolved record, quantized to the
// documented precision. It is what JSON output serializes.
type Rounded struct {
	Mass         float64 `json:"mass_solar"`
	Temperature  float64 `json:"temperature_k"`
	Lifespan     float64 `json:"lifespan_gyr"`
	SpectralType string  `json:"spectral_type"`
	Metallicity  float64 `json:"metallicity_solar"`
}

// Round quantizes a record for display: mass to three decimals, temperature
// to two, lifespan to three, metallicity to two. The spectral type passes
// through verbatim.
func Round(props star.StarProperties) Rounded {
	return Rounded{
		Mass:         roundTo(props.Mass, 3),
		Temperature:  roundTo(props.Temperature, 2),
		Lifespan:     roundTo(props.Lifespan, 3),
		SpectralType: props.SpectralType,
		Metallicity:  roundTo(props.Metallicity, 2),
	}
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
