package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-blackbody/internal/config"
	"github.com/cwbudde/algo-blackbody/internal/logging"
)

// micrometre converts command-line wavelengths to metres.
const micrometre = 1e-6

// app carries state shared by all commands of one invocation.
type app struct {
	configPath string
	verbose    bool
	logFormat  string

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "planckinfo",
		Short: "Blackbody spectral radiance calculator",
		Long: `planckinfo evaluates Planck's law, integrates radiance over wavelength
bands and samples spectra for logarithmic plotting.

Wavelengths are given in micrometres, temperatures in kelvin.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (TOML or YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		newRadianceCmd(a),
		newIntegrateCmd(a),
		newCurvesCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logCfg := logging.FromEnv(logging.Config{Format: a.logFormat, Output: cmd.ErrOrStderr()})
	if a.verbose {
		logCfg.Level = "debug"
	}
	a.log = logging.New(logCfg)

	var (
		cfg  *config.Config
		path string
		err  error
	)
	if a.configPath != "" {
		cfg, path, err = config.LoadFromPath(a.configPath)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}

	a.cfg = cfg
	if path != "" {
		a.log.Debug("loaded config", "path", path)
	}

	return nil
}
