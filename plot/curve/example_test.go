package curve_test

import (
	"fmt"

	"github.com/cwbudde/algo-blackbody/plot/curve"
)

func ExampleSample() {
	set := curve.Sample([]float64{3000, 6000}, curve.Window{Min: 0.1e-6, Max: 3e-6, Count: 290})
	for _, c := range set.Curves {
		fmt.Printf("T=%.0fK peak=%.3fµm points=%d\n", c.Temperature, c.PeakWavelength*1e6, c.Len())
	}
	fmt.Println(set.GlobalMax == set.Curves[1].MaxRadiance)

	// Output:
	// T=3000K peak=0.966µm points=291
	// T=6000K peak=0.483µm points=291
	// true
}
