package cli

import (
	"github.com/spf13/cobra"

	"reframe-cli/internal/api"
)

type sessionStatus struct {
	LoggedIn   bool   `json:"loggedIn"`
	APIBaseURL string `json:"apiBaseUrl"`
	// FilterDate is the pending one-shot browse date, if any.
	FilterDate string `json:"filterDate,omitempty"`
}

func newRegisterCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "register <user-id> <password>",
		Short: "Create an account and start a session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			auth := api.NewAuthClient(app.client)
			token, err := auth.Register(cmd.Context(), args[0], args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := app.session.SetToken(token); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"registered": args[0], "loggedIn": true})
		},
	}
}

func newLoginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login <user-id> <password>",
		Short: "Log in and store the session token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			auth := api.NewAuthClient(app.client)
			token, err := auth.Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := app.session.SetToken(token); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"loggedIn": true})
		},
	}
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.session.Clear(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"loggedIn": false})
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session and configuration status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, sessionStatus{
				LoggedIn:   app.session.Active(),
				APIBaseURL: app.cfg.APIBaseURL,
				FilterDate: app.session.FilterDate(),
			})
		},
	}
}
