package cli

import (
	"errors"
	"fmt"

	"github.com/Hamidziya/crm-edfront/internal/models"
	"github.com/Hamidziya/crm-edfront/internal/session"
	"github.com/spf13/cobra"
)

func (a *App) newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return errors.New("email and password are required")
			}

			result, err := a.client.Login(cmd.Context(), email, password)
			if err != nil {
				a.log.Error().Err(err).Msg("Login failed")
				return err
			}

			// Inactive accounts authenticate but may not sign in
			if result.User.Status == models.UserStatusInactive {
				return errors.New("you are not allowed to login")
			}

			sess := &session.Session{Token: result.Token, User: result.User}
			if err := a.store.Save(sess); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			a.log.Info().Str("email", result.User.Email).Str("role", result.User.Role).Msg("Signed in")
			if result.Message != "" {
				fmt.Fprintln(a.out, result.Message)
			}
			if sess.IsAdmin() {
				fmt.Fprintln(a.out, "Signed in as admin. Try 'leadctl tasks list'.")
			} else {
				fmt.Fprintln(a.out, "Signed in. Try 'leadctl tasks mine'.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func (a *App) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.Clear(); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}
			fmt.Fprintln(a.out, "Logged out.")
			return nil
		},
	}
}
