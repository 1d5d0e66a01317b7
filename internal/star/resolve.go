package star

// Resolve derives the full property record for the seed. Exactly one
// derivation path runs, chosen by Seed.Kind; lower-precedence properties on
// the seed are ignored rather than cross-checked. A supplied metallicity
// passes through to the record unchanged.
func Resolve(seed Seed, opts Options) (StarProperties, error) {
	kind, err := seed.Kind()
	if err != nil {
		return StarProperties{}, err
	}
	switch kind {
	case SeedMass:
		return resolveFromMass(*seed.Mass, seed.Metallicity, opts)
	case SeedTemperature:
		return resolveFromTemperature(*seed.Temperature, seed.Metallicity, opts)
	default:
		return resolveFromSpectralType(seed.SpectralType, seed.Metallicity, opts)
	}
}

// resolveFromMass runs the primary path: temperature and lifespan follow
// from the relations, and the spectral type is classified from the derived
// temperature.
func resolveFromMass(mass float64, metallicity *float64, opts Options) (StarProperties, error) {
	temperature, err := TemperatureForMass(mass)
	if err != nil {
		return StarProperties{}, err
	}
	lifespan, err := Lifespan(mass)
	if err != nil {
		return StarProperties{}, err
	}
	return StarProperties{
		Mass:         mass,
		Temperature:  temperature,
		Lifespan:     lifespan,
		SpectralType: Classify(temperature).String(),
		Metallicity:  metallicityFor(metallicity, opts, true),
	}, nil
}

// resolveFromTemperature recovers the mass from the inverted relation and
// continues down the mass path. The stored temperature is re-derived from
// the recovered mass, so it can differ from the input by float epsilon.
func resolveFromTemperature(temperature float64, metallicity *float64, opts Options) (StarProperties, error) {
	mass, err := MassForTemperature(temperature)
	if err != nil {
		return StarProperties{}, err
	}
	return resolveFromMass(mass, metallicity, opts)
}

// resolveFromSpectralType seeds from the letter-class anchors adjusted by
// subclass. Below LowMassCutoff the path stops early: the record keeps the
// input spectral string and the adjusted reference temperature, and the
// metallicity prompt is never consulted. At or above the cutoff it falls
// through to the mass path, which re-derives the temperature and
// re-classifies the spectral type (possibly differing from the input).
func resolveFromSpectralType(spectralType string, metallicity *float64, opts Options) (StarProperties, error) {
	mass, temperature, err := adjustedSeed(spectralType)
	if err != nil {
		return StarProperties{}, err
	}
	if mass < LowMassCutoff {
		lifespan, err := Lifespan(mass)
		if err != nil {
			return StarProperties{}, err
		}
		return StarProperties{
			Mass:         mass,
			Temperature:  temperature,
			Lifespan:     lifespan,
			SpectralType: spectralType,
			Metallicity:  metallicityFor(metallicity, opts, false),
		}, nil
	}
	return resolveFromMass(mass, metallicity, opts)
}

// metallicityFor picks the stored metallicity: the supplied value wins, then
// the prompt when allowed, then the default. Values from the prompt are
// trusted as-is; input surfaces validate before supplying.
func metallicityFor(supplied *float64, opts Options, allowPrompt bool) float64 {
	if supplied != nil {
		return *supplied
	}
	if allowPrompt && opts.MetallicityPrompt != nil {
		if v, ok := opts.MetallicityPrompt(); ok {
			return v
		}
	}
	if opts.DefaultMetallicity > 0 {
		return opts.DefaultMetallicity
	}
	return SolarMetallicity
}
