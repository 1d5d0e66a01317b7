package star

import (
	"errors"
	"math"
	"testing"
)

func TestLifespan_SolarAnchor(t *testing.T) {
	t.Parallel()
	life, err := Lifespan(1.0)
	if err != nil {
		t.Fatal(err)
	}
	if life != 10.0 {
		t.Errorf("lifespan at 1 M☉ = %f, want exactly 10", life)
	}
}

func TestLifespan_HighMass(t *testing.T) {
	t.Parallel()
	life, err := Lifespan(2.0)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(life, 1.7678) {
		t.Errorf("lifespan at 2 M☉ = %f, want ~1.7678", life)
	}
}

func TestLifespan_CutoffUsesSteepLaw(t *testing.T) {
	t.Parallel()
	// The boundary mass itself belongs to the main-sequence regime.
	life, err := Lifespan(LowMassCutoff)
	if err != nil {
		t.Fatal(err)
	}
	want := 10 * math.Pow(LowMassCutoff, -2.5)
	if !approxEqual(life, want) {
		t.Errorf("lifespan at cutoff = %f, want %f", life, want)
	}
}

func TestLifespan_BelowCutoffUsesShallowLaw(t *testing.T) {
	t.Parallel()
	life, err := Lifespan(0.42)
	if err != nil {
		t.Fatal(err)
	}
	want := 15 * math.Pow(0.42, -1.8)
	if !approxEqual(life, want) {
		t.Errorf("lifespan at 0.42 M☉ = %f, want %f", life, want)
	}
}

func TestLifespan_DecreasesWithMass(t *testing.T) {
	t.Parallel()
	masses := []float64{0.1, 0.3, 0.5, 1, 2, 20}
	prev := math.Inf(1)
	for _, m := range masses {
		life, err := Lifespan(m)
		if err != nil {
			t.Fatal(err)
		}
		if life >= prev {
			t.Errorf("lifespan at %g M☉ = %f, want < %f", m, life, prev)
		}
		prev = life
	}
}

func TestLifespan_Invalid(t *testing.T) {
	t.Parallel()
	// Zero mass is an error, never an infinite lifespan.
	for _, m := range []float64{0, -0.5} {
		if _, err := Lifespan(m); !errors.Is(err, ErrInvalidMass) {
			t.Errorf("mass %g: err = %v, want ErrInvalidMass", m, err)
		}
	}
}
