package star

import (
	"errors"
	"math"
	"testing"
)

func TestResolve_SolarMass(t *testing.T) {
	t.Parallel()
	props, err := Resolve(Seed{Mass: ptr(1.0)}, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(props.Mass, 1.0) {
		t.Errorf("mass = %f, want 1.0", props.Mass)
	}
	if !approxEqual(props.Temperature, 5800) {
		t.Errorf("temperature = %f, want 5800", props.Temperature)
	}
	if !approxEqual(props.Lifespan, 10) {
		t.Errorf("lifespan = %f, want 10", props.Lifespan)
	}
	if props.SpectralType != "G2" {
		t.Errorf("spectral type = %q, want G2", props.SpectralType)
	}
	if !approxEqual(props.Metallicity, 1.0) {
		t.Errorf("metallicity = %f, want 1.0", props.Metallicity)
	}
}

func TestResolve_PrecedenceIgnoresLowerSeeds(t *testing.T) {
	t.Parallel()
	// The temperature and spectral type on the seed play no part when a
	// mass is present.
	props, err := Resolve(Seed{
		Mass:         ptr(1.0),
		Temperature:  ptr(30000),
		SpectralType: "M5",
	}, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(props.Temperature, 5800) {
		t.Errorf("temperature = %f, want 5800 (derived from mass)", props.Temperature)
	}
	if props.SpectralType != "G2" {
		t.Errorf("spectral type = %q, want G2 (classified, not seeded)", props.SpectralType)
	}
}

func TestResolve_FromTemperature(t *testing.T) {
	t.Parallel()
	props, err := Resolve(Seed{Temperature: ptr(9602.0)}, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	// The stored temperature is re-derived from the recovered mass; the
	// round trip lands within float epsilon of the input.
	if !approxEqual(props.Temperature, 9602) {
		t.Errorf("temperature = %f, want ~9602", props.Temperature)
	}
	if props.SpectralType != "A1" {
		t.Errorf("spectral type = %q, want A1", props.SpectralType)
	}
	wantLife, err := Lifespan(props.Mass)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(props.Lifespan, wantLife) {
		t.Errorf("lifespan = %f, want %f", props.Lifespan, wantLife)
	}
}

func TestResolve_FromSpectralLowMassKeepsSeed(t *testing.T) {
	t.Parallel()
	promptCalled := false
	opts := DefaultOptions()
	opts.MetallicityPrompt = func() (float64, bool) {
		promptCalled = true
		return 2.0, true
	}

	props, err := Resolve(Seed{SpectralType: "L5"}, opts)
	if err != nil {
		t.Fatal(err)
	}
	// Below the cutoff the record keeps the input string and the adjusted
	// reference temperature instead of re-deriving them.
	if props.SpectralType != "L5" {
		t.Errorf("spectral type = %q, want the seeded L5", props.SpectralType)
	}
	if !approxEqual(props.Mass, 0.08) {
		t.Errorf("mass = %f, want 0.08", props.Mass)
	}
	if !approxEqual(props.Temperature, 2200) {
		t.Errorf("temperature = %f, want 2200", props.Temperature)
	}
	if want := 15 * math.Pow(0.08, -1.8); !approxEqual(props.Lifespan, want) {
		t.Errorf("lifespan = %f, want %f", props.Lifespan, want)
	}
	if promptCalled {
		t.Error("low-mass spectral branch must not consult the prompt")
	}
	if !approxEqual(props.Metallicity, 1.0) {
		t.Errorf("metallicity = %f, want the default 1.0", props.Metallicity)
	}
}

func TestResolve_FromSpectralFallsThroughToMassPath(t *testing.T) {
	t.Parallel()
	// M5 seeds a 0.5 M☉ star, above the cutoff, so the temperature is
	// re-derived and the spectral type re-classified away from the input.
	props, err := Resolve(Seed{SpectralType: "M5"}, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(props.Mass, 0.5) {
		t.Errorf("mass = %f, want 0.5", props.Mass)
	}
	if props.SpectralType != "K7" {
		t.Errorf("spectral type = %q, want K7", props.SpectralType)
	}
	if got := Classify(props.Temperature).String(); props.SpectralType != got {
		t.Errorf("record is not self-consistent: %q vs classifier %q", props.SpectralType, got)
	}
}

func TestResolve_FromSpectralSubclassShift(t *testing.T) {
	t.Parallel()
	promptCalled := false
	opts := DefaultOptions()
	opts.MetallicityPrompt = func() (float64, bool) {
		promptCalled = true
		return 0, false
	}

	props, err := Resolve(Seed{SpectralType: "G2"}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(props.Mass, 1.133) {
		t.Errorf("mass = %f, want 1.133", props.Mass)
	}
	if props.SpectralType != "F8" {
		t.Errorf("spectral type = %q, want F8", props.SpectralType)
	}
	// Above the cutoff the spectral path runs the mass path, prompt included.
	if !promptCalled {
		t.Error("high-mass spectral branch should consult the prompt")
	}
}

func TestResolve_SelfConsistentSpectralTypes(t *testing.T) {
	t.Parallel()
	for _, m := range []float64{0.43, 0.7, 1, 1.5, 3, 10, 60} {
		props, err := Resolve(Seed{Mass: ptr(m)}, DefaultOptions())
		if err != nil {
			t.Fatal(err)
		}
		if want := Classify(props.Temperature).String(); props.SpectralType != want {
			t.Errorf("mass %g: spectral type %q, classifier says %q", m, props.SpectralType, want)
		}
	}
}

func TestResolve_MetallicityPassThrough(t *testing.T) {
	t.Parallel()
	promptCalled := false
	opts := DefaultOptions()
	opts.MetallicityPrompt = func() (float64, bool) {
		promptCalled = true
		return 9.9, true
	}

	props, err := Resolve(Seed{Mass: ptr(1.0), Metallicity: ptr(0.3)}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(props.Metallicity, 0.3) {
		t.Errorf("metallicity = %f, want the supplied 0.3", props.Metallicity)
	}
	if promptCalled {
		t.Error("prompt must not run when the seed supplies a metallicity")
	}

	// The low-mass spectral branch stores a supplied value too.
	props, err = Resolve(Seed{SpectralType: "T5", Metallicity: ptr(2.5)}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(props.Metallicity, 2.5) {
		t.Errorf("metallicity = %f, want the supplied 2.5", props.Metallicity)
	}
}

func TestResolve_MetallicityPrompt(t *testing.T) {
	t.Parallel()
	opts := DefaultOptions()
	opts.MetallicityPrompt = func() (float64, bool) { return 1.6, true }
	props, err := Resolve(Seed{Mass: ptr(1.0)}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(props.Metallicity, 1.6) {
		t.Errorf("metallicity = %f, want the prompted 1.6", props.Metallicity)
	}

	// A declining prompt falls back to the default.
	opts.MetallicityPrompt = func() (float64, bool) { return 0, false }
	opts.DefaultMetallicity = 0.8
	props, err = Resolve(Seed{Mass: ptr(1.0)}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(props.Metallicity, 0.8) {
		t.Errorf("metallicity = %f, want the default 0.8", props.Metallicity)
	}
}

func TestResolve_ZeroDefaultMetallicityFallsBackToSolar(t *testing.T) {
	t.Parallel()
	props, err := Resolve(Seed{Mass: ptr(1.0)}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(props.Metallicity, SolarMetallicity) {
		t.Errorf("metallicity = %f, want %f", props.Metallicity, SolarMetallicity)
	}
}

func TestResolve_Errors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		seed Seed
		want error
	}{
		{"empty seed", Seed{}, ErrMissingSeed},
		{"zero mass", Seed{Mass: ptr(0)}, ErrInvalidMass},
		{"negative mass", Seed{Mass: ptr(-1)}, ErrInvalidMass},
		{"zero temperature", Seed{Temperature: ptr(0)}, ErrInvalidTemperature},
		{"negative temperature", Seed{Temperature: ptr(-300)}, ErrInvalidTemperature},
		{"unknown spectral type", Seed{SpectralType: "X5"}, ErrUnknownSpectralType},
		{"lowercase spectral type", Seed{SpectralType: "g2"}, ErrUnknownSpectralType},
		// A subclass large enough to drive the adjusted mass negative.
		{"spectral subclass overflow", Seed{SpectralType: "M205"}, ErrInvalidMass},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Resolve(tc.seed, DefaultOptions())
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}
