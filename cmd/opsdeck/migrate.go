package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsdeck/opsdeck/config"
)

func newMigrateCmd() *cobra.Command {
	var toBackend, dest string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy every slot from the configured backend to another backend",
		Long: `Migrate copies the raw slot payloads from the currently configured
backend into a destination backend, e.g. from a directory of JSON files
into a single SQLite database:

  opsdeck migrate --to sqlite --dest ./opsdeck-data

Existing slots in the destination are overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if toBackend != "file" && toBackend != "sqlite" {
				return fmt.Errorf("unsupported destination backend %q (want file or sqlite)", toBackend)
			}
			if dest == "" {
				return fmt.Errorf("--dest directory is required")
			}

			dst, dstClose, err := openBackend(&config.Config{Backend: toBackend, DataDir: dest})
			if err != nil {
				return err
			}
			if dstClose != nil {
				defer func() { _ = dstClose() }()
			}

			keys, err := dataBackend.Keys()
			if err != nil {
				return err
			}
			migrated := 0
			for _, key := range keys {
				data, ok, err := dataBackend.Get(key)
				if err != nil {
					return err
				}
				if !ok {
					continue
				}
				if err := dst.Set(key, data); err != nil {
					return err
				}
				migrated++
			}
			cmd.Printf("migrated %d slot(s) to %s backend at %s\n", migrated, toBackend, dest)
			return nil
		},
	}
	cmd.Flags().StringVar(&toBackend, "to", "sqlite", "destination backend: file|sqlite")
	cmd.Flags().StringVar(&dest, "dest", "", "destination data directory")
	return cmd
}
