package main

import (
	"github.com/spf13/cobra"

	"github.com/opsdeck/opsdeck/services"
	"github.com/opsdeck/opsdeck/types"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}
	cmd.AddCommand(
		newUsersListCmd(),
		newUsersGetCmd(),
		newUsersCreateCmd(),
		newUsersUpdateCmd(),
		newUsersDeleteCmd(),
		newUsersStatusCmd(),
	)
	return cmd
}

func userRow(u types.User) []string {
	return []string{u.Code, u.Name, u.Email, u.Role, u.Department, string(u.Status), u.ID}
}

var userHeaders = []string{"CODE", "NAME", "EMAIL", "ROLE", "DEPARTMENT", "STATUS", "ID"}

func newUsersListCmd() *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			opts, err := lf.options()
			if err != nil {
				return err
			}
			return printPage(svc.Users.List(opts), userHeaders, userRow)
		},
	}
	addListFlags(cmd, &lf)
	return cmd
}

func newUsersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			user, err := svc.Users.Get(args[0])
			if err != nil {
				return err
			}
			return printRecord(user)
		},
	}
}

func newUsersCreateCmd() *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user from a JSON payload (name and email required)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			in, err := decodeInput[services.CreateUserInput](data)
			if err != nil {
				return err
			}
			user, err := svc.Users.Create(in)
			if err != nil {
				return err
			}
			return printRecord(user)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON payload, or @file")
	return cmd
}

func newUsersUpdateCmd() *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a user; only fields present in the payload change",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			in, err := decodeInput[services.UpdateUserInput](data)
			if err != nil {
				return err
			}
			user, err := svc.Users.Update(args[0], in)
			if err != nil {
				return err
			}
			return printRecord(user)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON payload, or @file")
	return cmd
}

func newUsersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a user (reference snapshots elsewhere are kept as-is)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Users.Delete(args[0]); err != nil {
				return err
			}
			cmd.Printf("deleted user %s\n", args[0])
			return nil
		},
	}
}

func newUsersStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Set the user status (Active or Inactive)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			user, err := svc.Users.SetStatus(args[0], types.UserStatus(args[1]))
			if err != nil {
				return err
			}
			return printRecord(user)
		},
	}
}
