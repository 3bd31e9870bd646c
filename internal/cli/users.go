package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/Hamidziya/crm-edfront/internal/api"
	"github.com/Hamidziya/crm-edfront/internal/models"
	"github.com/spf13/cobra"
)

func (a *App) newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Browse the account directory",
	}
	cmd.AddCommand(a.newUsersListCmd())
	return cmd
}

// newUsersListCmd lists the accounts tasks can be assigned to. Admin
// and inactive accounts are not assignment targets, so only active
// "user" accounts are shown.
func (a *App) newUsersListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts available for task assignment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireSession(); err != nil {
				return err
			}

			users, err := a.client.ListUsers(cmd.Context())
			if err != nil {
				a.log.Error().Err(err).Msg("Failed to fetch users")
				return err
			}

			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tMOBILE")
			shown := 0
			for _, u := range users {
				if !all && (u.Role != models.RoleUser || u.Status == models.UserStatusInactive) {
					continue
				}
				mobile := u.Mobile
				if mobile == "" {
					mobile = api.ContactUnavailable
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, mobile)
				shown++
			}
			w.Flush()

			fmt.Fprintf(a.out, "%d accounts\n", shown)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include admin and inactive accounts")
	return cmd
}
