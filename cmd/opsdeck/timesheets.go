package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opsdeck/opsdeck/services"
	"github.com/opsdeck/opsdeck/types"
)

func newTimesheetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timesheets",
		Short: "Manage weekly timesheets",
	}
	cmd.AddCommand(
		newTimesheetsListCmd(),
		newTimesheetsGetCmd(),
		newTimesheetsCreateCmd(),
		newTimesheetsUpdateCmd(),
		newTimesheetsDeleteCmd(),
		newTimesheetsStatusCmd(),
		newTimesheetsApproveCmd(),
		newTimesheetsRejectCmd(),
		newTimesheetsEntriesCmd(),
	)
	return cmd
}

func timesheetRow(t types.Timesheet) []string {
	return []string{
		t.Code,
		t.User.Name,
		formatDate(t.WeekStart),
		string(t.Status),
		strconv.FormatFloat(t.TotalHours, 'f', -1, 64),
		t.ID,
	}
}

var timesheetHeaders = []string{"CODE", "USER", "WEEK", "STATUS", "HOURS", "ID"}

func newTimesheetsListCmd() *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List timesheets",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			opts, err := lf.options()
			if err != nil {
				return err
			}
			return printPage(svc.Timesheets.List(opts), timesheetHeaders, timesheetRow)
		},
	}
	addListFlags(cmd, &lf)
	return cmd
}

func newTimesheetsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one timesheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sheet, err := svc.Timesheets.Get(args[0])
			if err != nil {
				return err
			}
			return printRecord(sheet)
		},
	}
}

func newTimesheetsCreateCmd() *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a timesheet from a JSON payload (userId required)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			in, err := decodeInput[services.CreateTimesheetInput](data)
			if err != nil {
				return err
			}
			sheet, err := svc.Timesheets.Create(in)
			if err != nil {
				return err
			}
			return printRecord(sheet)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON payload, or @file")
	return cmd
}

func newTimesheetsUpdateCmd() *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a timesheet; only fields present in the payload change",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			in, err := decodeInput[services.UpdateTimesheetInput](data)
			if err != nil {
				return err
			}
			sheet, err := svc.Timesheets.Update(args[0], in)
			if err != nil {
				return err
			}
			return printRecord(sheet)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON payload, or @file")
	return cmd
}

func newTimesheetsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a timesheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Timesheets.Delete(args[0]); err != nil {
				return err
			}
			cmd.Printf("deleted timesheet %s\n", args[0])
			return nil
		},
	}
}

func newTimesheetsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Set the approval status (Pending, Approved or Rejected)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			sheet, err := svc.Timesheets.SetStatus(args[0], types.TimesheetStatus(args[1]))
			if err != nil {
				return err
			}
			return printRecord(sheet)
		},
	}
}

func newTimesheetsApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve ID",
		Short: "Approve a timesheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sheet, err := svc.Timesheets.Approve(args[0])
			if err != nil {
				return err
			}
			return printRecord(sheet)
		},
	}
}

func newTimesheetsRejectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reject ID",
		Short: "Reject a timesheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sheet, err := svc.Timesheets.Reject(args[0])
			if err != nil {
				return err
			}
			return printRecord(sheet)
		},
	}
}

func newTimesheetsEntriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Manage a timesheet's day entries",
	}

	var addData string
	add := &cobra.Command{
		Use:   "add TIMESHEET_ID",
		Short: "Add a day entry (projectId required)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			in, err := decodeInput[services.DayEntryInput](addData)
			if err != nil {
				return err
			}
			sheet, err := svc.Timesheets.AddEntry(args[0], in)
			if err != nil {
				return err
			}
			return printRecord(sheet)
		},
	}
	add.Flags().StringVarP(&addData, "data", "d", "", "JSON payload, or @file")

	var updateData string
	update := &cobra.Command{
		Use:   "update TIMESHEET_ID ENTRY_ID",
		Short: "Replace a day entry's fields",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			in, err := decodeInput[services.DayEntryInput](updateData)
			if err != nil {
				return err
			}
			sheet, err := svc.Timesheets.UpdateEntry(args[0], args[1], in)
			if err != nil {
				return err
			}
			return printRecord(sheet)
		},
	}
	update.Flags().StringVarP(&updateData, "data", "d", "", "JSON payload, or @file")

	remove := &cobra.Command{
		Use:   "remove TIMESHEET_ID ENTRY_ID",
		Short: "Remove a day entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			sheet, err := svc.Timesheets.RemoveEntry(args[0], args[1])
			if err != nil {
				return err
			}
			return printRecord(sheet)
		},
	}

	cmd.AddCommand(add, update, remove)
	return cmd
}
