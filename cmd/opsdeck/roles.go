package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/opsdeck/opsdeck/services"
	"github.com/opsdeck/opsdeck/types"
)

func newRolesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Manage roles",
	}
	cmd.AddCommand(
		newRolesListCmd(),
		newRolesGetCmd(),
		newRolesCreateCmd(),
		newRolesUpdateCmd(),
		newRolesDeleteCmd(),
	)
	return cmd
}

func roleRow(r types.Role) []string {
	return []string{r.Name, r.Description, strings.Join(r.Permissions, ","), r.ID}
}

var roleHeaders = []string{"NAME", "DESCRIPTION", "PERMISSIONS", "ID"}

func newRolesListCmd() *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List roles",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			opts, err := lf.options()
			if err != nil {
				return err
			}
			return printPage(svc.Roles.List(opts), roleHeaders, roleRow)
		},
	}
	addListFlags(cmd, &lf)
	return cmd
}

func newRolesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one role",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			role, err := svc.Roles.Get(args[0])
			if err != nil {
				return err
			}
			return printRecord(role)
		},
	}
}

func newRolesCreateCmd() *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a role from a JSON payload",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			in, err := decodeInput[services.CreateRoleInput](data)
			if err != nil {
				return err
			}
			role, err := svc.Roles.Create(in)
			if err != nil {
				return err
			}
			return printRecord(role)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON payload, or @file")
	return cmd
}

func newRolesUpdateCmd() *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a role; only fields present in the payload change",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			in, err := decodeInput[services.UpdateRoleInput](data)
			if err != nil {
				return err
			}
			role, err := svc.Roles.Update(args[0], in)
			if err != nil {
				return err
			}
			return printRecord(role)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON payload, or @file")
	return cmd
}

func newRolesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Roles.Delete(args[0]); err != nil {
				return err
			}
			cmd.Printf("deleted role %s\n", args[0])
			return nil
		},
	}
}
