// Package cli wires the leadctl command tree over the CRM API client.
package cli

import (
	"io"
	"os"

	"github.com/Hamidziya/crm-edfront/internal/api"
	"github.com/Hamidziya/crm-edfront/internal/config"
	"github.com/Hamidziya/crm-edfront/internal/session"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App carries the shared collaborators of every command.
type App struct {
	cfg    *config.Config
	log    zerolog.Logger
	client *api.Client
	store  *session.Store
	out    io.Writer
	in     io.Reader
}

// NewRootCmd builds the leadctl command tree.
func NewRootCmd(cfg *config.Config, log zerolog.Logger, client *api.Client) *cobra.Command {
	app := &App{
		cfg:    cfg,
		log:    log,
		client: client,
		store:  session.NewStore(cfg.Session.File),
		out:    os.Stdout,
		in:     os.Stdin,
	}

	root := &cobra.Command{
		Use:           "leadctl",
		Short:         "Admin client for the EdGlobal lead/task tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		app.newLoginCmd(),
		app.newLogoutCmd(),
		app.newTasksCmd(),
		app.newImportCmd(),
		app.newFollowupCmd(),
		app.newUsersCmd(),
	)
	return root
}

// requireSession loads the persisted session and installs its token
// on the API client.
func (a *App) requireSession() (*session.Session, error) {
	sess, err := a.store.Load()
	if err != nil {
		return nil, err
	}
	a.client.SetToken(sess.Token)
	return sess, nil
}
