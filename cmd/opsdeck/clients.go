package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opsdeck/opsdeck/services"
	"github.com/opsdeck/opsdeck/types"
)

func newClientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Manage clients",
	}
	cmd.AddCommand(
		newClientsListCmd(),
		newClientsGetCmd(),
		newClientsCreateCmd(),
		newClientsUpdateCmd(),
		newClientsDeleteCmd(),
		newClientsStatusCmd(),
		newClientsContactsCmd(),
	)
	return cmd
}

func clientRow(c types.Client) []string {
	return []string{c.Code, c.Name, c.Industry, string(c.Status), strconv.Itoa(c.Projects), c.ID}
}

var clientHeaders = []string{"CODE", "NAME", "INDUSTRY", "STATUS", "PROJECTS", "ID"}

func newClientsListCmd() *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clients",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			opts, err := lf.options()
			if err != nil {
				return err
			}
			return printPage(svc.Clients.List(opts), clientHeaders, clientRow)
		},
	}
	addListFlags(cmd, &lf)
	return cmd
}

func newClientsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one client",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := svc.Clients.Get(args[0])
			if err != nil {
				return err
			}
			return printRecord(client)
		},
	}
}

func newClientsCreateCmd() *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a client from a JSON payload",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			in, err := decodeInput[services.CreateClientInput](data)
			if err != nil {
				return err
			}
			client, err := svc.Clients.Create(in)
			if err != nil {
				return err
			}
			return printRecord(client)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON payload, or @file")
	return cmd
}

func newClientsUpdateCmd() *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a client; only fields present in the payload change",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			in, err := decodeInput[services.UpdateClientInput](data)
			if err != nil {
				return err
			}
			client, err := svc.Clients.Update(args[0], in)
			if err != nil {
				return err
			}
			return printRecord(client)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON payload, or @file")
	return cmd
}

func newClientsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Clients.Delete(args[0]); err != nil {
				return err
			}
			cmd.Printf("deleted client %s\n", args[0])
			return nil
		},
	}
}

func newClientsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Set the client status (Active or Inactive)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := svc.Clients.SetStatus(args[0], types.ClientStatus(args[1]))
			if err != nil {
				return err
			}
			return printRecord(client)
		},
	}
}

func newClientsContactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Manage a client's contacts",
	}

	var addData string
	add := &cobra.Command{
		Use:   "add CLIENT_ID",
		Short: "Add a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			in, err := decodeInput[services.ContactInput](addData)
			if err != nil {
				return err
			}
			client, err := svc.Clients.AddContact(args[0], in)
			if err != nil {
				return err
			}
			return printRecord(client)
		},
	}
	add.Flags().StringVarP(&addData, "data", "d", "", "JSON payload, or @file")

	var updateData string
	update := &cobra.Command{
		Use:   "update CLIENT_ID CONTACT_ID",
		Short: "Replace a contact's fields",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			in, err := decodeInput[services.ContactInput](updateData)
			if err != nil {
				return err
			}
			client, err := svc.Clients.UpdateContact(args[0], args[1], in)
			if err != nil {
				return err
			}
			return printRecord(client)
		},
	}
	update.Flags().StringVarP(&updateData, "data", "d", "", "JSON payload, or @file")

	remove := &cobra.Command{
		Use:   "remove CLIENT_ID CONTACT_ID",
		Short: "Remove a contact",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := svc.Clients.RemoveContact(args[0], args[1])
			if err != nil {
				return err
			}
			return printRecord(client)
		},
	}

	cmd.AddCommand(add, update, remove)
	return cmd
}
