package cli

import (
	"errors"
	"fmt"

	"github.com/Hamidziya/crm-edfront/internal/api"
	"github.com/Hamidziya/crm-edfront/internal/models"
	"github.com/spf13/cobra"
)

func (a *App) newFollowupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "followup",
		Short: "View and record follow-up history",
	}
	cmd.AddCommand(a.newFollowupListCmd(), a.newFollowupAddCmd())
	return cmd
}

func (a *App) newFollowupListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <task-id>",
		Short: "Show the follow-up history of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireSession(); err != nil {
				return err
			}

			updates, err := a.client.GetTaskUpdates(cmd.Context(), args[0])
			if err != nil {
				a.log.Error().Err(err).Str("task_id", args[0]).Msg("Failed to fetch task updates")
				return err
			}
			if len(updates) == 0 {
				fmt.Fprintln(a.out, "No followup updates found for this task.")
				return nil
			}

			for _, u := range updates {
				f := u.UpdateType.Format()
				fmt.Fprintf(a.out, "%s %s  %s\n", f.Icon, f.Label, u.CreatedAt.Format("2006-01-02 15:04"))
				if u.UpdateType == models.UpdateStatusChange {
					fmt.Fprintf(a.out, "   %s -> %s\n", u.OldStatus, u.NewStatus)
				}
				if u.Notes != "" {
					fmt.Fprintf(a.out, "   %s\n", u.Notes)
				}
				if u.NextFollowUp != nil {
					fmt.Fprintf(a.out, "   Next follow-up: %s\n", u.NextFollowUp.Format("2006-01-02 15:04"))
				}
				if u.Priority != "" && u.Priority != models.PriorityMedium {
					fmt.Fprintf(a.out, "   %s priority\n", u.Priority)
				}
			}
			return nil
		},
	}
}

func (a *App) newFollowupAddCmd() *cobra.Command {
	var updateType, notes, oldStatus, newStatus, next, priority string

	cmd := &cobra.Command{
		Use:   "add <task-id>",
		Short: "Record a follow-up on a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if notes == "" {
				return errors.New("notes are required")
			}
			if !models.ValidUpdateTypes[models.UpdateType(updateType)] {
				return fmt.Errorf("invalid update type %q", updateType)
			}
			if !models.ValidPriorities[models.Priority(priority)] {
				return fmt.Errorf("invalid priority %q, expected low, medium or high", priority)
			}
			if newStatus != "" && !models.ValidStatuses[models.TaskStatus(newStatus)] {
				return fmt.Errorf("invalid status %q", newStatus)
			}
			if _, err := a.requireSession(); err != nil {
				return err
			}

			req := api.FollowUpRequest{
				TaskID:       args[0],
				UpdateType:   models.UpdateType(updateType),
				Notes:        notes,
				OldStatus:    models.TaskStatus(oldStatus),
				NewStatus:    models.TaskStatus(newStatus),
				NextFollowUp: next,
				Priority:     models.Priority(priority),
			}
			message, err := a.client.AddLeadUpdate(cmd.Context(), req)
			if err != nil {
				a.log.Error().Err(err).Str("task_id", args[0]).Msg("Failed to add follow-up")
				return err
			}
			if message == "" {
				message = "Follow-up added successfully"
			}
			fmt.Fprintln(a.out, message)
			return nil
		},
	}

	cmd.Flags().StringVar(&updateType, "type", string(models.UpdateNote), "update type: call, meeting, email, status_change, note or other")
	cmd.Flags().StringVar(&notes, "notes", "", "follow-up notes")
	cmd.Flags().StringVar(&oldStatus, "old-status", "", "status before the change")
	cmd.Flags().StringVar(&newStatus, "new-status", "", "status after the change")
	cmd.Flags().StringVar(&next, "next", "", "next follow-up date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&priority, "priority", string(models.PriorityMedium), "priority: low, medium or high")
	return cmd
}
