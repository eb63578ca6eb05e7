package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"reframe-cli/internal/api"
	"reframe-cli/internal/config"
	"reframe-cli/internal/format"
	"reframe-cli/internal/session"
	"reframe-cli/internal/tui"
)

// App carries the resolved invocation context shared by all subcommands.
type App struct {
	APIURL     string
	PrettyJSON bool

	cfg     config.Config
	session *session.Store
	client  *api.Client
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "reframe",
		Short:        "Reframing journal client (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  reframe

  # Scriptable commands
  reframe login alice secret123
  reframe records list --date 2026-08-29
  reframe records delete 64f1c0ffee
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.init()
	}

	cmd.PersistentFlags().StringVar(&app.APIURL, "api", envOr("REFRAME_API_URL", ""), "API base url (overrides config and env)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newRegisterCmd(app))
	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newStatusCmd(app))
	cmd.AddCommand(newRecordsCmd(app))

	return cmd
}

func (app *App) init() error {
	cfg, err := config.Resolve(app.APIURL)
	if err != nil {
		return err
	}
	sess, err := session.Open()
	if err != nil {
		return err
	}
	app.cfg = cfg
	app.session = sess
	app.client = api.NewClient(cfg.APIBaseURL)
	return nil
}

func runTUI(app *App) error {
	return tui.Run(app.cfg, app.session)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
