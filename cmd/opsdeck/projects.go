package main

import (
	"github.com/spf13/cobra"

	"github.com/opsdeck/opsdeck/services"
	"github.com/opsdeck/opsdeck/types"
)

func newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage projects",
	}
	cmd.AddCommand(
		newProjectsListCmd(),
		newProjectsGetCmd(),
		newProjectsCreateCmd(),
		newProjectsUpdateCmd(),
		newProjectsDeleteCmd(),
		newProjectsStatusCmd(),
		newProjectsTeamCmd(),
		newProjectsActivityCmd(),
	)
	return cmd
}

func projectRow(p types.Project) []string {
	return []string{p.Code, p.Name, p.Client.Name, string(p.Status), formatDate(p.DueDate), p.ID}
}

var projectHeaders = []string{"CODE", "NAME", "CLIENT", "STATUS", "DUE", "ID"}

func newProjectsListCmd() *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			opts, err := lf.options()
			if err != nil {
				return err
			}
			return printPage(svc.Projects.List(opts), projectHeaders, projectRow)
		},
	}
	addListFlags(cmd, &lf)
	return cmd
}

func newProjectsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			project, err := svc.Projects.Get(args[0])
			if err != nil {
				return err
			}
			return printRecord(project)
		},
	}
}

func newProjectsCreateCmd() *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project from a JSON payload (clientId required)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			in, err := decodeInput[services.CreateProjectInput](data)
			if err != nil {
				return err
			}
			project, err := svc.Projects.Create(in)
			if err != nil {
				return err
			}
			return printRecord(project)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON payload, or @file")
	return cmd
}

func newProjectsUpdateCmd() *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a project; only fields present in the payload change",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			in, err := decodeInput[services.UpdateProjectInput](data)
			if err != nil {
				return err
			}
			project, err := svc.Projects.Update(args[0], in)
			if err != nil {
				return err
			}
			return printRecord(project)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON payload, or @file")
	return cmd
}

func newProjectsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Projects.Delete(args[0]); err != nil {
				return err
			}
			cmd.Printf("deleted project %s\n", args[0])
			return nil
		},
	}
}

func newProjectsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Set the project status (Active, Inactive, Completed or OnHold)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			project, err := svc.Projects.SetStatus(args[0], types.ProjectStatus(args[1]))
			if err != nil {
				return err
			}
			return printRecord(project)
		},
	}
}

func newProjectsTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage a project's team",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add PROJECT_ID USER_ID",
			Short: "Add a user to the team",
			Args:  cobra.ExactArgs(2),
			RunE: func(_ *cobra.Command, args []string) error {
				project, err := svc.Projects.AddTeamMember(args[0], args[1])
				if err != nil {
					return err
				}
				return printRecord(project)
			},
		},
		&cobra.Command{
			Use:   "remove PROJECT_ID USER_ID",
			Short: "Remove a user from the team",
			Args:  cobra.ExactArgs(2),
			RunE: func(_ *cobra.Command, args []string) error {
				project, err := svc.Projects.RemoveTeamMember(args[0], args[1])
				if err != nil {
					return err
				}
				return printRecord(project)
			},
		},
	)
	return cmd
}

func newProjectsActivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage a project's activity log",
	}

	var author, text string
	add := &cobra.Command{
		Use:   "add PROJECT_ID",
		Short: "Append an activity entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			project, err := svc.Projects.AddActivity(args[0], author, text)
			if err != nil {
				return err
			}
			return printRecord(project)
		},
	}
	add.Flags().StringVar(&author, "author", "", "user id of the author")
	add.Flags().StringVar(&text, "text", "", "activity text")

	remove := &cobra.Command{
		Use:   "remove PROJECT_ID ACTIVITY_ID",
		Short: "Remove an activity entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			project, err := svc.Projects.RemoveActivity(args[0], args[1])
			if err != nil {
				return err
			}
			return printRecord(project)
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}
