package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/Hamidziya/crm-edfront/internal/api"
	"github.com/Hamidziya/crm-edfront/internal/listview"
	"github.com/Hamidziya/crm-edfront/internal/models"
	"github.com/spf13/cobra"
)

func (a *App) newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List and manage tasks/leads",
	}
	cmd.AddCommand(
		a.newTasksListCmd(),
		a.newTasksMineCmd(),
		a.newTasksCreateCmd(),
		a.newTasksEditCmd(),
		a.newTasksDeleteCmd(),
	)
	return cmd
}

func parseSort(s string) (listview.SortDirection, error) {
	switch s {
	case "asc":
		return listview.SortAsc, nil
	case "desc":
		return listview.SortDesc, nil
	default:
		return "", fmt.Errorf("invalid sort direction %q, expected asc or desc", s)
	}
}

func (a *App) newTasksListCmd() *cobra.Command {
	var search, sortDir string
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks (admin view)",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := parseSort(sortDir)
			if err != nil {
				return err
			}
			if _, err := a.requireSession(); err != nil {
				return err
			}
			ctx := cmd.Context()

			tasks, err := a.client.ListTasks(ctx)
			if err != nil {
				a.log.Error().Err(err).Msg("Failed to fetch tasks")
				return err
			}
			contacts := a.client.ResolveContacts(ctx, tasks)

			view := listview.New(a.cfg.List.AdminPageSize)
			view.SetTasks(tasks)
			view.SetContacts(contacts)
			view.SetSearch(search)
			view.SetSort(dir)
			view.SetPage(page)

			visible := view.Visible()
			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tTITLE\tDESCRIPTION\tSTATUS\tASSIGNED TO\tMOBILE")
			for i, t := range visible {
				assignee := api.ContactUnavailable
				if t.HasAssignee() {
					if contact, ok := contacts[t.AssignedTo]; ok {
						assignee = contact
					}
				}
				mobile := t.Mobile
				if mobile == "" {
					mobile = api.ContactUnavailable
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					i+1, t.Title, truncate(t.Description, 40), t.Status, assignee, mobile)
			}
			w.Flush()

			fmt.Fprintf(a.out, "Page %d of %d\n", view.Page(), view.TotalPages())
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter by title, description or assignee contact")
	cmd.Flags().StringVar(&sortDir, "sort", "desc", "sort by creation date: asc or desc")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func (a *App) newTasksMineCmd() *cobra.Command {
	var search, status, sortDir string
	var page int

	cmd := &cobra.Command{
		Use:   "mine",
		Short: "List the tasks assigned to you",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := parseSort(sortDir)
			if err != nil {
				return err
			}
			if status != "" && !models.ValidStatuses[models.TaskStatus(status)] {
				return fmt.Errorf("invalid status %q", status)
			}
			if _, err := a.requireSession(); err != nil {
				return err
			}

			tasks, err := a.client.ListUserTasks(cmd.Context())
			if err != nil {
				a.log.Error().Err(err).Msg("Failed to fetch tasks")
				return err
			}

			view := listview.New(a.cfg.List.UserPageSize)
			view.SetTasks(tasks)
			view.SetSearch(search)
			view.SetStatusFilter(models.TaskStatus(status))
			view.SetSort(dir)
			view.SetPage(page)

			visible := view.Visible()
			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tTITLE\tDESCRIPTION\tCREATED\tSTATUS")
			for i, t := range visible {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					i+1, t.Title, truncate(t.Description, 40), t.CreatedAt.Format("2006-01-02"), t.Status)
			}
			w.Flush()

			fmt.Fprintf(a.out, "Page %d of %d\n", view.Page(), view.TotalPages())
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter by title or description")
	cmd.Flags().StringVar(&status, "status", "", "filter by exact status")
	cmd.Flags().StringVar(&sortDir, "sort", "desc", "sort by creation date: asc or desc")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func (a *App) newTasksCreateCmd() *cobra.Command {
	var title, description, assignedTo string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task/lead",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" || description == "" {
				return errors.New("title and description are required")
			}
			if _, err := a.requireSession(); err != nil {
				return err
			}

			message, err := a.client.CreateTask(cmd.Context(), title, description, assignedTo)
			if err != nil {
				a.log.Error().Err(err).Msg("Failed to create task")
				return err
			}
			if message == "" {
				message = "Task created successfully"
			}
			fmt.Fprintln(a.out, message)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "task title")
	cmd.Flags().StringVar(&description, "description", "", "task description")
	cmd.Flags().StringVar(&assignedTo, "assigned-to", "", "assignee user id")
	return cmd
}

func (a *App) newTasksEditCmd() *cobra.Command {
	var title, description, assignedTo string

	cmd := &cobra.Command{
		Use:   "edit <task-id>",
		Short: "Update a task/lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" && description == "" && assignedTo == "" {
				return errors.New("nothing to update, set --title, --description or --assigned-to")
			}
			if _, err := a.requireSession(); err != nil {
				return err
			}

			patch := api.TaskPatch{Title: title, Description: description, AssignedTo: assignedTo}
			message, err := a.client.EditTask(cmd.Context(), args[0], patch)
			if err != nil {
				a.log.Error().Err(err).Str("task_id", args[0]).Msg("Failed to update task")
				return err
			}
			if message == "" {
				message = "Task updated successfully"
			}
			fmt.Fprintln(a.out, message)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&assignedTo, "assigned-to", "", "new assignee user id")
	return cmd
}

func (a *App) newTasksDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task/lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireSession(); err != nil {
				return err
			}

			message, err := a.client.DeleteTask(cmd.Context(), args[0])
			if err != nil {
				a.log.Error().Err(err).Str("task_id", args[0]).Msg("Failed to delete task")
				return err
			}
			if message == "" {
				message = "Task deleted successfully"
			}
			fmt.Fprintln(a.out, message)
			return nil
		},
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
