package band

import (
	"math"
	"sync"
	"testing"

	"github.com/cwbudde/algo-blackbody/internal/numeric"
	"github.com/cwbudde/algo-blackbody/internal/testutil"
	"github.com/cwbudde/algo-blackbody/physics/planck"
)

const (
	um = 1e-6

	// Trapezoid reference for T=1000 K over 1..10 µm with 1000 steps.
	referenceBand1000K = 16494.155695086134
)

func TestIntegrateReferenceBand(t *testing.T) {
	got := Integrate(1000, 1*um, 10*um, 1000)
	if got < 1e4 || got > 1e5 {
		t.Fatalf("Integrate() = %v, want order 1e4..1e5", got)
	}
	if rel := numeric.RelativeError(got, referenceBand1000K); rel > 1e-9 {
		t.Fatalf("Integrate() = %v, want %v (rel %v)", got, referenceBand1000K, rel)
	}
	if rel := numeric.RelativeError(got, Exact(1000, 1*um, 10*um)); rel > 1e-4 {
		t.Fatalf("Integrate() = %v deviates from closed form by %v", got, rel)
	}
}

func TestIntegrateMatchesExact(t *testing.T) {
	temps := []float64{500, 1000, 3000, 6000}
	got := make([]float64, len(temps))
	want := make([]float64, len(temps))
	for i, temp := range temps {
		got[i] = Integrate(temp, 1*um, 10*um, 1000)
		want[i] = Exact(temp, 1*um, 10*um)
	}

	diff, err := testutil.MaxRelDiff(got, want)
	if err != nil {
		t.Fatal(err)
	}
	if diff > 1e-4 {
		t.Fatalf("max relative deviation from closed form = %v", diff)
	}
}

func TestIntegrateDegenerate(t *testing.T) {
	tests := []struct {
		name        string
		temperature float64
		lo, hi      float64
	}{
		{name: "zero temperature", temperature: 0, lo: 1 * um, hi: 10 * um},
		{name: "negative temperature", temperature: -5, lo: 1 * um, hi: 10 * um},
		{name: "equal bounds", temperature: 1000, lo: 5 * um, hi: 5 * um},
		{name: "inverted bounds", temperature: 1000, lo: 10 * um, hi: 1 * um},
		{name: "nan bound", temperature: 1000, lo: math.NaN(), hi: 1 * um},
		{name: "nan temperature", temperature: math.NaN(), lo: 1 * um, hi: 10 * um},
		{name: "negative infinite lower bound", temperature: 1000, lo: math.Inf(-1), hi: 1 * um},
		{name: "infinite upper bound", temperature: 1000, lo: 1 * um, hi: math.Inf(1)},
		{name: "overflowing width", temperature: 1000, lo: -1e308, hi: 1e308},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Integrate(tt.temperature, tt.lo, tt.hi, 100); got != 0 {
				t.Fatalf("Integrate() = %v, want 0", got)
			}
			if got := Exact(tt.temperature, tt.lo, tt.hi); got != 0 {
				t.Fatalf("Exact() = %v, want 0", got)
			}
		})
	}
}

func TestIntegrateDefaultSteps(t *testing.T) {
	want := Integrate(1000, 1*um, 10*um, DefaultSteps)
	for _, steps := range []int{0, -3} {
		if got := Integrate(1000, 1*um, 10*um, steps); got != want {
			t.Fatalf("Integrate(steps=%d) = %v, want %v", steps, got, want)
		}
	}
}

func TestIntegrateSingleStep(t *testing.T) {
	lo, hi := 2*um, 3*um
	want := (planck.Radiance(lo, 1500) + planck.Radiance(hi, 1500)) / 2 * (hi - lo)
	if got := Integrate(1500, lo, hi, 1); got != want {
		t.Fatalf("Integrate(steps=1) = %v, want %v", got, want)
	}
}

func TestIntegrateMonotonicInTemperature(t *testing.T) {
	prev := 0.0
	for _, temp := range []float64{300, 1000, 3000} {
		got := Integrate(temp, 1*um, 10*um, 1000)
		if !(got > prev) {
			t.Fatalf("Integrate(T=%v) = %v, want > %v", temp, got, prev)
		}
		prev = got
	}
}

func TestIntegrateWideningBand(t *testing.T) {
	for _, temp := range []float64{300, 1000, 3000} {
		prev := 0.0
		for _, hi := range []float64{2, 5, 10, 20, 50} {
			got := Integrate(temp, 1*um, hi*um, 1000)
			if got < prev {
				t.Fatalf("T=%v: widening to %vµm decreased radiance %v -> %v", temp, hi, prev, got)
			}
			prev = got
		}
	}
}

func TestIntegrateDeterministic(t *testing.T) {
	a := Integrate(1234.5, 0.3*um, 7.7*um, 1000)
	b := Integrate(1234.5, 0.3*um, 7.7*um, 1000)
	if math.Float64bits(a) != math.Float64bits(b) {
		t.Fatalf("Integrate() not bit-identical: %v vs %v", a, b)
	}
}

func TestIntegrateConcurrent(t *testing.T) {
	in := NewIntegrator()
	want := in.Integrate(2000, 1*um, 4*um)

	var wg sync.WaitGroup
	errs := make(chan float64, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := in.Integrate(2000, 1*um, 4*um); got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Fatalf("concurrent Integrate() = %v, want %v", got, want)
	}
}

func TestEmittanceIdentity(t *testing.T) {
	res := Evaluate(Request{Temperature: 1000, WavelengthMin: 1 * um, WavelengthMax: 10 * um, Steps: 1000})
	if res.Emittance != res.Radiance*math.Pi {
		t.Fatalf("Emittance = %v, want exactly %v", res.Emittance, res.Radiance*math.Pi)
	}
	if res.Radiance != Integrate(1000, 1*um, 10*um, 1000) {
		t.Fatalf("Evaluate().Radiance = %v, want Integrate() result", res.Radiance)
	}
	if got := Emittance(2); got != 2*math.Pi {
		t.Fatalf("Emittance(2) = %v, want 2π", got)
	}
}

func TestIntegratorOptions(t *testing.T) {
	in := NewIntegrator(WithSteps(50), WithSteps(0), nil)
	if in.Steps() != 50 {
		t.Fatalf("Steps() = %d, want 50", in.Steps())
	}
	if got, want := in.Integrate(800, 1*um, 6*um), Integrate(800, 1*um, 6*um, 50); got != want {
		t.Fatalf("Integrate() = %v, want %v", got, want)
	}

	// A request without steps falls back to the integrator's setting.
	res := in.Evaluate(Request{Temperature: 800, WavelengthMin: 1 * um, WavelengthMax: 6 * um})
	if res.Radiance != in.Integrate(800, 1*um, 6*um) {
		t.Fatalf("Evaluate() = %v, want configured-step result", res.Radiance)
	}

	// A ceiling below the band's exponents zeroes the integral.
	zero := NewIntegrator(WithLaw(planck.NewLaw(planck.CODATA2018, 1)))
	if got := zero.Integrate(300, 1*um, 2*um); got != 0 {
		t.Fatalf("Integrate() with ceiling 1 = %v, want 0", got)
	}

	// The zero Law is ignored in favour of the default.
	def := NewIntegrator(WithSteps(50), WithLaw(planck.Law{}))
	if got, want := def.Integrate(800, 1*um, 6*um), in.Integrate(800, 1*um, 6*um); got != want {
		t.Fatalf("Integrate() with zero Law = %v, want %v", got, want)
	}
}

func TestFraction(t *testing.T) {
	tests := []struct {
		lt   float64
		want float64
		tol  float64
	}{
		{lt: 1000e-6, want: 0.000321, tol: 1e-6},
		{lt: planck.CODATA2018.Wien, want: 0.25005, tol: 1e-4},
		{lt: 10000e-6, want: 0.91416, tol: 1e-5},
		{lt: 0.1, want: 0.99986, tol: 1e-5},
	}

	for _, tt := range tests {
		if got := Fraction(tt.lt); math.Abs(got-tt.want) > tt.tol {
			t.Errorf("Fraction(%v) = %v, want %v ± %v", tt.lt, got, tt.want, tt.tol)
		}
	}

	if got := Fraction(0); got != 0 {
		t.Fatalf("Fraction(0) = %v, want 0", got)
	}
	if got := Fraction(math.Inf(1)); got != 1 {
		t.Fatalf("Fraction(+Inf) = %v, want 1", got)
	}
}

func TestFractionMonotonic(t *testing.T) {
	prev := 0.0
	for lt := 1e-5; lt < 10; lt *= 1.05 {
		got := Fraction(lt)
		if got < prev || got > 1 {
			t.Fatalf("Fraction(%v) = %v, previous %v", lt, got, prev)
		}
		prev = got
	}
}

func TestFractionContinuousAtSeriesSwitch(t *testing.T) {
	c2 := planck.CODATA2018.SecondRadiation()
	below := Fraction(c2 / (smallXLimit + 1e-9))
	above := Fraction(c2 / (smallXLimit - 1e-9))
	if math.Abs(above-below) > 1e-8 {
		t.Fatalf("Fraction jumps at series switch: %v vs %v", below, above)
	}
}

func TestTotals(t *testing.T) {
	if got := TotalEmittance(1000); numeric.RelativeError(got, 56703.74419) > 1e-8 {
		t.Fatalf("TotalEmittance(1000) = %v, want 56703.74419", got)
	}
	if got := TotalRadiance(1000) * math.Pi; numeric.RelativeError(got, TotalEmittance(1000)) > 1e-15 {
		t.Fatalf("TotalRadiance·π = %v, want %v", got, TotalEmittance(1000))
	}
	if TotalEmittance(0) != 0 || TotalRadiance(-1) != 0 {
		t.Fatal("expected zero totals for non-positive temperature")
	}

	// Nearly the whole spectrum converges to the Stefan–Boltzmann total.
	got := Integrate(1000, 0.1*um, 1000*um, 200000)
	if rel := numeric.RelativeError(got, TotalRadiance(1000)); rel > 1e-3 {
		t.Fatalf("wide Integrate() = %v, TotalRadiance %v, rel %v", got, TotalRadiance(1000), rel)
	}
}
