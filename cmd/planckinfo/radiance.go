package main

import (
	"github.com/spf13/cobra"
)

type radianceOutput struct {
	WavelengthUM      float64 `json:"wavelength_um"`
	TemperatureK      float64 `json:"temperature_k"`
	Radiance          float64 `json:"radiance_w_m3_sr"`
	RadiancePerUM     float64 `json:"radiance_w_m2_um_sr"`
	PeakWavelengthUM  float64 `json:"peak_wavelength_um"`
	PeakRadiancePerUM float64 `json:"peak_radiance_w_m2_um_sr"`
	FractionOfPeak    float64 `json:"fraction_of_peak"`
}

func newRadianceCmd(a *app) *cobra.Command {
	var (
		temperature float64
		wavelength  float64
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "radiance",
		Short: "Evaluate spectral radiance at one wavelength",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateTemperature(temperature); err != nil {
				return err
			}
			if err := validateWavelength(wavelength); err != nil {
				return err
			}

			law := a.cfg.Law()
			sample := law.Evaluate(wavelength*micrometre, temperature)
			peak := law.PeakWavelength(temperature)
			peakRadiance := law.PeakRadiance(temperature)

			out := radianceOutput{
				WavelengthUM:      wavelength,
				TemperatureK:      temperature,
				Radiance:          sample.Radiance,
				RadiancePerUM:     sample.Radiance * micrometre,
				PeakWavelengthUM:  peak / micrometre,
				PeakRadiancePerUM: peakRadiance * micrometre,
			}
			if peakRadiance > 0 {
				out.FractionOfPeak = sample.Radiance / peakRadiance
			}

			a.log.Debug("evaluated radiance",
				"wavelength_m", sample.Wavelength,
				"temperature_k", sample.Temperature,
				"radiance", sample.Radiance)

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			t := newTable(cmd.OutOrStdout(), "Quantity", "Value", "Unit")
			t.row("wavelength", sci(out.WavelengthUM), "µm")
			t.row("temperature", sci(out.TemperatureK), "K")
			t.row("spectral radiance", sci(out.Radiance), "W/m³/sr")
			t.row("spectral radiance", sci(out.RadiancePerUM), "W/m²/µm/sr")
			t.row("peak wavelength", sci(out.PeakWavelengthUM), "µm")
			t.row("peak radiance", sci(out.PeakRadiancePerUM), "W/m²/µm/sr")
			t.row("fraction of peak", sci(out.FractionOfPeak), "")
			return t.flush()
		},
	}

	cmd.Flags().Float64VarP(&temperature, "temperature", "t", 5778, "temperature in K")
	cmd.Flags().Float64VarP(&wavelength, "wavelength", "w", 0.5, "wavelength in µm")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}
