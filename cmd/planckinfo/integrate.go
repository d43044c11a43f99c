package main

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-blackbody/physics/band"
)

type integrateOutput struct {
	TemperatureK    float64  `json:"temperature_k"`
	MinUM           float64  `json:"min_um"`
	MaxUM           float64  `json:"max_um"`
	Steps           int      `json:"steps"`
	Radiance        float64  `json:"radiance_w_m2_sr"`
	Emittance       float64  `json:"emittance_w_m2"`
	FractionOfTotal float64  `json:"fraction_of_total"`
	Exact           *float64 `json:"exact_radiance_w_m2_sr,omitempty"`
	RelativeError   *float64 `json:"relative_error,omitempty"`
}

func newIntegrateCmd(a *app) *cobra.Command {
	var (
		temperature float64
		minUM       float64
		maxUM       float64
		steps       int
		exact       bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Integrate radiance over a wavelength band",
		Long: `Integrates Planck's law over [min, max] with the composite trapezoidal
rule and derives the hemispherical emittance (radiance × π).

With --exact the closed-form series result is printed alongside.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateTemperature(temperature); err != nil {
				return err
			}
			if err := validateBand(minUM, maxUM); err != nil {
				return err
			}
			if !cmd.Flags().Changed("steps") {
				steps = a.cfg.Integration.Steps
			}
			if steps < 1 {
				return errInvalidSteps
			}

			res := a.cfg.Integrator().Evaluate(band.Request{
				Temperature:   temperature,
				WavelengthMin: minUM * micrometre,
				WavelengthMax: maxUM * micrometre,
				Steps:         steps,
			})

			out := integrateOutput{
				TemperatureK: temperature,
				MinUM:        minUM,
				MaxUM:        maxUM,
				Steps:        steps,
				Radiance:     res.Radiance,
				Emittance:    res.Emittance,
			}
			if total := band.TotalRadiance(temperature); total > 0 {
				out.FractionOfTotal = res.Radiance / total
			}
			if exact {
				ref := band.Exact(temperature, minUM*micrometre, maxUM*micrometre)
				out.Exact = &ref
				if ref != 0 {
					rel := math.Abs(res.Radiance-ref) / ref
					out.RelativeError = &rel
				}
			}

			a.log.Debug("integrated band",
				"temperature_k", temperature,
				"min_um", minUM,
				"max_um", maxUM,
				"steps", steps,
				"radiance", res.Radiance)

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			t := newTable(cmd.OutOrStdout(), "Quantity", "Value", "Unit")
			t.row("temperature", sci(out.TemperatureK), "K")
			t.row("band", sci(out.MinUM)+" .. "+sci(out.MaxUM), "µm")
			t.row("steps", out.Steps, "")
			t.row("band radiance", sci(out.Radiance), "W/m²/sr")
			t.row("band emittance", sci(out.Emittance), "W/m²")
			t.row("fraction of total", sci(out.FractionOfTotal), "")
			if out.Exact != nil {
				t.row("closed-form radiance", sci(*out.Exact), "W/m²/sr")
			}
			if out.RelativeError != nil {
				t.row("relative error", sci(*out.RelativeError), "")
			}
			return t.flush()
		},
	}

	cmd.Flags().Float64VarP(&temperature, "temperature", "t", 1000, "temperature in K")
	cmd.Flags().Float64Var(&minUM, "min", 1, "band start in µm")
	cmd.Flags().Float64Var(&maxUM, "max", 10, "band end in µm")
	cmd.Flags().IntVarP(&steps, "steps", "n", band.DefaultSteps, "trapezoid count (default from config)")
	cmd.Flags().BoolVar(&exact, "exact", false, "also print the closed-form series result")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}
