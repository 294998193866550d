package main

import (
	"github.com/spf13/cobra"

	"github.com/opsdeck/opsdeck/services"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage general settings",
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Show the general settings",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			settings, err := svc.Settings.Get()
			if err != nil {
				return err
			}
			return printRecord(settings)
		},
	}

	var data string
	update := &cobra.Command{
		Use:   "update",
		Short: "Update the general settings; only fields present in the payload change",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			in, err := decodeInput[services.UpdateSettingsInput](data)
			if err != nil {
				return err
			}
			settings, err := svc.Settings.Update(in)
			if err != nil {
				return err
			}
			return printRecord(settings)
		},
	}
	update.Flags().StringVarP(&data, "data", "d", "", "JSON payload, or @file")

	cmd.AddCommand(get, update)
	return cmd
}
