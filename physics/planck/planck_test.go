package planck

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-blackbody/internal/numeric"
	"github.com/cwbudde/algo-blackbody/internal/testutil"
)

func TestRadianceNonPositiveInputs(t *testing.T) {
	tests := []struct {
		name        string
		wavelength  float64
		temperature float64
	}{
		{name: "zero wavelength", wavelength: 0, temperature: 1000},
		{name: "negative wavelength", wavelength: -1e-6, temperature: 1000},
		{name: "zero temperature", wavelength: 1e-6, temperature: 0},
		{name: "negative temperature", wavelength: 1e-6, temperature: -300},
		{name: "both negative", wavelength: -1, temperature: -1},
		{name: "nan wavelength", wavelength: math.NaN(), temperature: 1000},
		{name: "nan temperature", wavelength: 1e-6, temperature: math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Radiance(tt.wavelength, tt.temperature); got != 0 {
				t.Fatalf("Radiance(%v, %v) = %v, want 0", tt.wavelength, tt.temperature, got)
			}
		})
	}
}

func TestRadianceOverflowCeiling(t *testing.T) {
	// hc/(λkT) ≈ 1.4e7 for 1 nm at 1 K.
	if got := Radiance(1e-9, 1); got != 0 {
		t.Fatalf("Radiance(1nm, 1K) = %v, want 0", got)
	}

	// 1 µm at 1000 K has an exponent of about 14.4.
	law := NewLaw(CODATA2018, 10)
	if got := law.Radiance(1e-6, 1000); got != 0 {
		t.Fatalf("Radiance with ceiling 10 = %v, want 0", got)
	}
	if got := DefaultLaw().Radiance(1e-6, 1000); got <= 0 {
		t.Fatalf("Radiance with default ceiling = %v, want > 0", got)
	}
}

func TestNewLawDefaultsCeiling(t *testing.T) {
	for _, v := range []float64{0, -5, math.NaN()} {
		if got := NewLaw(CODATA2018, v).MaxExponent(); got != DefaultMaxExponent {
			t.Fatalf("NewLaw(%v).MaxExponent() = %v, want %v", v, got, DefaultMaxExponent)
		}
	}
}

func TestLawIsZero(t *testing.T) {
	if !(Law{}).IsZero() {
		t.Fatal("Law{}.IsZero() = false, want true")
	}
	if DefaultLaw().IsZero() {
		t.Fatal("DefaultLaw().IsZero() = true, want false")
	}
	if NewLaw(CODATA2018, 50).IsZero() {
		t.Fatal("NewLaw().IsZero() = true, want false")
	}
}

func TestRadianceFinite(t *testing.T) {
	grid := testutil.LogSpace(1e-30, 1e12, 211)
	for _, temp := range grid {
		row := make([]float64, len(grid))
		for i, w := range grid {
			row[i] = Radiance(w, temp)
		}
		testutil.RequireFinite(t, row)
		testutil.RequireNonNegative(t, row)
	}

	got := Radiance(1e-9, 1e6)
	if math.IsNaN(got) || math.IsInf(got, 0) || got < 0 {
		t.Fatalf("Radiance(1nm, 1e6K) = %v, want finite and non-negative", got)
	}
	if got := Radiance(1e12, 1e12); math.IsNaN(got) || math.IsInf(got, 0) || got < 0 {
		t.Fatalf("Radiance(1e12, 1e12) = %v, want finite and non-negative", got)
	}
}

func TestRadianceRayleighJeansLimit(t *testing.T) {
	// For λT >> c2, B ≈ 2ckT/λ⁴.
	c := CODATA2018
	wavelength, temperature := 1.0, 1e4
	want := 2 * c.Light * c.Boltzmann * temperature / math.Pow(wavelength, 4)
	got := Radiance(wavelength, temperature)

	if rel := numeric.RelativeError(got, want); rel > 1e-5 {
		t.Fatalf("Radiance() = %v, Rayleigh-Jeans %v, relative error %v", got, want, rel)
	}
}

func TestRadianceWienLimit(t *testing.T) {
	// For λT << c2, B ≈ 2hc²/λ⁵ · e^(-c2/λT).
	c := CODATA2018
	wavelength, temperature := 0.5e-6, 1000.0
	x := c.SecondRadiation() / (wavelength * temperature)
	want := c.FirstRadiation() / math.Pow(wavelength, 5) * math.Exp(-x)
	got := Radiance(wavelength, temperature)

	if rel := numeric.RelativeError(got, want); rel > 1e-10 {
		t.Fatalf("Radiance() = %v, Wien approximation %v, relative error %v", got, want, rel)
	}
}

func TestPeakRadianceScalesWithFifthPower(t *testing.T) {
	// B(λ_peak, T) ≈ 4.0956e-6 · T⁵ W·m⁻³·sr⁻¹.
	for _, temp := range []float64{300, 1000, 5778} {
		want := 4.0956e-6 * math.Pow(temp, 5)
		got := PeakRadiance(temp)
		if rel := numeric.RelativeError(got, want); rel > 2e-3 {
			t.Fatalf("PeakRadiance(%v) = %v, want ~%v (rel %v)", temp, got, want, rel)
		}
	}
}

func TestRadianceUnimodalNearWienPeak(t *testing.T) {
	for _, temp := range []float64{300, 1000, 3000, 5778} {
		peak := PeakWavelength(temp)
		lo, hi := 0.1*peak, 10*peak
		const n = 10000
		step := (hi - lo) / n

		values := make([]float64, n+1)
		argmax := 0
		for i := range values {
			values[i] = Radiance(lo+float64(i)*step, temp)
			if values[i] > values[argmax] {
				argmax = i
			}
		}

		for i := 1; i <= argmax; i++ {
			if values[i] < values[i-1] {
				t.Fatalf("T=%v: radiance decreases before the peak at index %d", temp, i)
			}
		}
		for i := argmax + 1; i < len(values); i++ {
			if values[i] > values[i-1] {
				t.Fatalf("T=%v: radiance increases after the peak at index %d", temp, i)
			}
		}

		found := lo + float64(argmax)*step
		if math.Abs(found-peak) > 2*step {
			t.Fatalf("T=%v: sampled peak at %v, Wien peak %v (step %v)", temp, found, peak, step)
		}
	}
}

func TestPeakWavelength(t *testing.T) {
	if got := PeakWavelength(5778); math.Abs(got-501.5e-9) > 0.1e-9 {
		t.Fatalf("PeakWavelength(5778) = %v, want ~501.5nm", got)
	}
	if got := PeakWavelength(0); got != 0 {
		t.Fatalf("PeakWavelength(0) = %v, want 0", got)
	}
	if got := PeakWavelength(-10); got != 0 {
		t.Fatalf("PeakWavelength(-10) = %v, want 0", got)
	}
}

func TestEvaluate(t *testing.T) {
	s := Evaluate(2e-6, 1500)
	if s.Wavelength != 2e-6 || s.Temperature != 1500 {
		t.Fatalf("Evaluate() = %+v, inputs not preserved", s)
	}
	if s.Radiance != Radiance(2e-6, 1500) {
		t.Fatalf("Evaluate().Radiance = %v, want %v", s.Radiance, Radiance(2e-6, 1500))
	}
}

func TestConstants(t *testing.T) {
	c := CODATA2018
	if got := c.SecondRadiation(); math.Abs(got-1.438776877e-2) > 1e-11 {
		t.Fatalf("SecondRadiation() = %v, want 1.438776877e-2", got)
	}
	if got := c.StefanBoltzmann(); numeric.RelativeError(got, 5.670374419e-8) > 1e-9 {
		t.Fatalf("StefanBoltzmann() = %v, want 5.670374419e-8", got)
	}
	// b = c2 / x with x the root of (x-5)e^x + 5 = 0.
	if got := c.SecondRadiation() / c.Wien; math.Abs(got-4.965114231744276) > 1e-8 {
		t.Fatalf("c2/b = %v, want 4.965114231744276", got)
	}
}

func TestRadianceDeterministic(t *testing.T) {
	a := Radiance(3.3e-6, 842)
	b := Radiance(3.3e-6, 842)
	if math.Float64bits(a) != math.Float64bits(b) {
		t.Fatalf("Radiance() not bit-identical: %v vs %v", a, b)
	}
}
