package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-blackbody/plot/curve"
	"github.com/cwbudde/algo-blackbody/plot/logscale"
)

type curveOutput struct {
	TemperatureK     float64   `json:"temperature_k"`
	PeakWavelengthUM float64   `json:"peak_wavelength_um"`
	MaxRadiance      float64   `json:"max_radiance"`
	WavelengthsUM    []float64 `json:"wavelengths_um"`
	Values           []float64 `json:"values"`
}

type curvesOutput struct {
	Unit      string        `json:"unit"`
	MinUM     float64       `json:"min_um"`
	MaxUM     float64       `json:"max_um"`
	Points    int           `json:"points"`
	GlobalMax float64       `json:"global_max"`
	AxisLow   float64       `json:"axis_low"`
	Ticks     []float64     `json:"ticks"`
	Curves    []curveOutput `json:"curves"`
}

func newCurvesCmd(a *app) *cobra.Command {
	var (
		temperatures []float64
		minUM        float64
		maxUM        float64
		points       int
		format       string
		positions    bool
	)

	cmd := &cobra.Command{
		Use:   "curves",
		Short: "Sample spectra of several temperatures for plotting",
		Long: `Samples Planck curves for each temperature over a shared wavelength window.
Radiance is reported per micrometre unless the config sets another unit
scale. With --positions, values are normalised log-axis positions in [0, 1]
spanning the configured number of decades below the global maximum.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if !flags.Changed("temperatures") {
				temperatures = a.cfg.Plot.Temperatures
			}
			if !flags.Changed("min") {
				minUM = a.cfg.Plot.WindowMinUM
			}
			if !flags.Changed("max") {
				maxUM = a.cfg.Plot.WindowMaxUM
			}
			if !flags.Changed("points") {
				points = a.cfg.Plot.Points
			}

			for _, t := range temperatures {
				if err := validateTemperature(t); err != nil {
					return err
				}
			}
			if err := validateBand(minUM, maxUM); err != nil {
				return err
			}
			if points < 1 {
				return fmt.Errorf("%w: %d", errInvalidPoints, points)
			}
			f, err := validateFormat(format, "table", "json", "csv")
			if err != nil {
				return err
			}

			window := curve.Window{Min: minUM * micrometre, Max: maxUM * micrometre, Count: points}
			set := a.cfg.Sampler().Sample(temperatures, window)
			scale := a.cfg.Scale()

			a.log.Debug("sampled curves",
				"curves", len(set.Curves),
				"points", points+1,
				"global_max", set.GlobalMax)

			switch f {
			case "json":
				return writeJSON(cmd.OutOrStdout(), buildCurvesOutput(set, scale, positions, minUM, maxUM))
			case "csv":
				return writeCurvesCSV(cmd.OutOrStdout(), set, scale, positions)
			default:
				return writeCurvesTable(cmd.OutOrStdout(), set, scale)
			}
		},
	}

	cmd.Flags().Float64SliceVar(&temperatures, "temperatures", nil, "comma-separated temperatures in K (default from config)")
	cmd.Flags().Float64Var(&minUM, "min", 0, "window start in µm (default from config)")
	cmd.Flags().Float64Var(&maxUM, "max", 0, "window end in µm (default from config)")
	cmd.Flags().IntVarP(&points, "points", "n", 0, "number of steps; points+1 samples (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, json or csv")
	cmd.Flags().BoolVar(&positions, "positions", false, "emit log-axis positions instead of radiance (json, csv)")

	return cmd
}

func curveValues(set curve.Set, scale logscale.Scale, positions bool) [][]float64 {
	if positions {
		return set.Positions(scale)
	}
	out := make([][]float64, len(set.Curves))
	for i, c := range set.Curves {
		out[i] = c.Radiance
	}
	return out
}

func toMicrometres(wavelengths []float64) []float64 {
	out := make([]float64, len(wavelengths))
	for i, w := range wavelengths {
		out[i] = w / micrometre
	}
	return out
}

func buildCurvesOutput(set curve.Set, scale logscale.Scale, positions bool, minUM, maxUM float64) curvesOutput {
	low, _ := scale.Bounds(set.GlobalMax)
	out := curvesOutput{
		Unit:      "W/m²/µm/sr",
		MinUM:     minUM,
		MaxUM:     maxUM,
		Points:    set.Window.Count,
		GlobalMax: set.GlobalMax,
		AxisLow:   low,
		Ticks:     scale.DecadeTicks(set.GlobalMax),
		Curves:    make([]curveOutput, len(set.Curves)),
	}
	if positions {
		out.Unit = "log-axis position"
	}

	values := curveValues(set, scale, positions)
	for i, c := range set.Curves {
		out.Curves[i] = curveOutput{
			TemperatureK:     c.Temperature,
			PeakWavelengthUM: c.PeakWavelength / micrometre,
			MaxRadiance:      c.MaxRadiance,
			WavelengthsUM:    toMicrometres(c.Wavelengths),
			Values:           values[i],
		}
	}
	return out
}

func writeCurvesCSV(w io.Writer, set curve.Set, scale logscale.Scale, positions bool) error {
	cw := csv.NewWriter(w)

	header := []string{"wavelength_um"}
	for _, c := range set.Curves {
		header = append(header, "T"+strconv.FormatFloat(c.Temperature, 'f', -1, 64)+"K")
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	values := curveValues(set, scale, positions)
	wavelengths := set.Window.Wavelengths()
	record := make([]string, len(header))
	for i, wl := range wavelengths {
		record[0] = strconv.FormatFloat(wl/micrometre, 'g', 10, 64)
		for j := range set.Curves {
			record[j+1] = strconv.FormatFloat(values[j][i], 'g', 10, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func writeCurvesTable(w io.Writer, set curve.Set, scale logscale.Scale) error {
	t := newTable(w, "Temperature [K]", "Peak [µm]", "Max in window [W/m²/µm/sr]", "Max position", "Samples")
	for _, c := range set.Curves {
		t.row(
			sci(c.Temperature),
			fmt.Sprintf("%.4f", c.PeakWavelength/micrometre),
			sci(c.MaxRadiance),
			fmt.Sprintf("%.4f", scale.Position(c.MaxRadiance, set.GlobalMax)),
			c.Len(),
		)
	}
	if err := t.flush(); err != nil {
		return err
	}

	low, high := scale.Bounds(set.GlobalMax)
	ticks := scale.DecadeTicks(set.GlobalMax)
	labels := make([]string, len(ticks))
	for i, v := range ticks {
		labels[i] = sci(v)
	}

	_, err := fmt.Fprintf(w, "\nglobal max: %s\naxis: %s .. %s (%g decades)\nticks: %s\n",
		sci(set.GlobalMax), sci(low), sci(high), scale.Decades(), strings.Join(labels, " "))
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
