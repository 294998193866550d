package main

import (
	"github.com/spf13/cobra"

	"github.com/opsdeck/opsdeck/services"
	"github.com/opsdeck/opsdeck/types"
)

func newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage tasks",
	}
	cmd.AddCommand(
		newTasksListCmd(),
		newTasksGetCmd(),
		newTasksCreateCmd(),
		newTasksUpdateCmd(),
		newTasksDeleteCmd(),
		newTasksStatusCmd(),
		newTasksPriorityCmd(),
	)
	return cmd
}

func taskRow(t types.Task) []string {
	return []string{t.Code, t.Title, t.Project.Name, t.Assignee.Name, string(t.Status), string(t.Priority), formatDate(t.DueDate), t.ID}
}

var taskHeaders = []string{"CODE", "TITLE", "PROJECT", "ASSIGNEE", "STATUS", "PRIORITY", "DUE", "ID"}

func newTasksListCmd() *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			opts, err := lf.options()
			if err != nil {
				return err
			}
			return printPage(svc.Tasks.List(opts), taskHeaders, taskRow)
		},
	}
	addListFlags(cmd, &lf)
	return cmd
}

func newTasksGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			task, err := svc.Tasks.Get(args[0])
			if err != nil {
				return err
			}
			return printRecord(task)
		},
	}
}

func newTasksCreateCmd() *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task from a JSON payload (projectId required)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			in, err := decodeInput[services.CreateTaskInput](data)
			if err != nil {
				return err
			}
			task, err := svc.Tasks.Create(in)
			if err != nil {
				return err
			}
			return printRecord(task)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON payload, or @file")
	return cmd
}

func newTasksUpdateCmd() *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a task; only fields present in the payload change",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			in, err := decodeInput[services.UpdateTaskInput](data)
			if err != nil {
				return err
			}
			task, err := svc.Tasks.Update(args[0], in)
			if err != nil {
				return err
			}
			return printRecord(task)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON payload, or @file")
	return cmd
}

func newTasksDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Tasks.Delete(args[0]); err != nil {
				return err
			}
			cmd.Printf("deleted task %s\n", args[0])
			return nil
		},
	}
}

func newTasksStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Set the task status (ToDo, InProgress, Completed or OnHold)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			task, err := svc.Tasks.SetStatus(args[0], types.TaskStatus(args[1]))
			if err != nil {
				return err
			}
			return printRecord(task)
		},
	}
}

func newTasksPriorityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "priority ID PRIORITY",
		Short: "Set the task priority (Low, Medium or High)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			task, err := svc.Tasks.SetPriority(args[0], types.TaskPriority(args[1]))
			if err != nil {
				return err
			}
			return printRecord(task)
		},
	}
}
