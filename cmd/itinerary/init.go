package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	var sample bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and the trip store",
		Long:  "Create the configuration directory with a default config.yaml, then initialize\nthe storage backend in the data directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.openRepo()
			if err != nil {
				return err
			}
			if sample {
				if _, err := r.SeedSample(); err != nil {
					return classify(err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Itinerary initialized (%s backend, %s)\n", a.cfg.GetString(cfgKeyBackend), a.dataDir)
			return nil
		},
	}
	cmd.Flags().BoolVar(&sample, "sample", false, "add the sample trip when the store is empty")
	return cmd
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Add the sample trip to an empty store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.openRepo()
			if err != nil {
				return err
			}
			seeded, err := r.SeedSample()
			if err != nil {
				return classify(err)
			}
			if seeded {
				fmt.Fprintln(cmd.OutOrStdout(), "Sample trip added")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Trips already exist; nothing seeded")
			}
			return nil
		},
	}
}
