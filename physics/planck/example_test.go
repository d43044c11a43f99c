package planck_test

import (
	"fmt"

	"github.com/cwbudde/algo-blackbody/physics/planck"
)

func ExampleRadiance() {
	// Sun-like photosphere at its Wien peak.
	peak := planck.PeakWavelength(5778)
	fmt.Printf("peak=%.1f nm\n", peak*1e9)
	fmt.Printf("radiance=%.3g W/m^3/sr\n", planck.Radiance(peak, 5778))
	fmt.Println(planck.Radiance(-1, 5778))

	// Output:
	// peak=501.5 nm
	// radiance=2.64e+13 W/m^3/sr
	// 0
}
