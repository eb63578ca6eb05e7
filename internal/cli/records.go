package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"reframe-cli/internal/api"
	"reframe-cli/internal/apperr"
	"reframe-cli/internal/model"
)

func newRecordsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Browse and manage journal records",
	}
	cmd.AddCommand(newRecordsListCmd(app))
	cmd.AddCommand(newRecordsDeleteCmd(app))
	cmd.AddCommand(newRecordsClearCmd(app))
	cmd.AddCommand(newRecordsFilterCmd(app))
	return cmd
}

func newRecordsListCmd(app *App) *cobra.Command {
	var date string
	var kind string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := api.NewRecordClient(app.client, app.session)
			records, err := rc.List(cmd.Context())
			if errors.Is(err, apperr.ErrSessionExpired) {
				return writeErr(cmd, errors.New("session expired; run `reframe login` again"))
			}
			if err != nil {
				return writeErr(cmd, err)
			}

			if date != "" {
				records = model.FilterByLocalDate(records, date)
			}
			if kind != "" {
				records = filterByKind(records, model.Kind(kind))
			}
			model.SortByDateDesc(records)
			return writeOut(cmd, app, records)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Keep only records from this local calendar date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&kind, "type", "", "Keep only one record type (mindRecord|positive|meditation)")
	return cmd
}

func filterByKind(records []model.Record, kind model.Kind) []model.Record {
	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		if r.Kind() == kind {
			out = append(out, r)
		}
	}
	return out
}

func newRecordsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <record-id>",
		Short: "Delete one record by server id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := api.NewRecordClient(app.client, app.session)
			if err := rc.Remove(cmd.Context(), args[0]); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"deleted": args[0]})
		},
	}
}

func newRecordsClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete ALL records for the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return writeErr(cmd, errors.New("refusing to delete all records without --yes"))
			}
			rc := api.NewRecordClient(app.client, app.session)
			count, err := rc.ClearAll(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"deletedCount": count})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm bulk deletion")
	return cmd
}

func newRecordsFilterCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "filter <YYYY-MM-DD>",
		Short: "Set the one-shot date filter for the next browse",
		Long: strings.TrimSpace(`
Set the date the record browser filters by on its next load. The filter is
consumed once: after the filtered view renders, the browser returns to showing
all records.`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.session.SetFilterDate(args[0]); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"filterDate": args[0]})
		},
	}
}
