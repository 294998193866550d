package main

import (
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Manage the built-in demo data",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Discard every collection and restore the demo data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := svc.ResetAll(); err != nil {
				return err
			}
			cmd.Println("all collections reset to seed data")
			return nil
		},
	})
	return cmd
}
