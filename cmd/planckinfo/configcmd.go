package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	var (
		format string
		write  string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print or write the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if write != "" {
				if err := a.cfg.Save(write); err != nil {
					return fmt.Errorf("write config: %w", err)
				}
				cmd.Printf("wrote %s\n", write)
				return nil
			}

			f, err := validateFormat(format, "toml", "yaml")
			if err != nil {
				return err
			}
			data, err := a.cfg.Marshal(f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "output format: toml or yaml")
	cmd.Flags().StringVar(&write, "write", "", "write the effective config to this path instead of printing")

	return cmd
}
