package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/studysync/internal/cli/formatter"
	"github.com/alexanderramin/studysync/internal/contract"
	"github.com/spf13/cobra"
)

func newProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Summarise assignment progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewProgressRequest()
			req.DueSoonWindow = app.dueSoon()
			now := app.now()
			req.Now = &now

			resp, err := app.Progress.Summary(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProgress(resp))
			return nil
		},
	}
}

func newRemindersCmd(app *App) *cobra.Command {
	var horizon time.Duration

	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "List upcoming deadline reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewRemindersRequest()
			if app.ReminderHorizon > 0 {
				req.Horizon = app.ReminderHorizon
			}
			if cmd.Flags().Changed("horizon") {
				if horizon <= 0 {
					return fmt.Errorf("--horizon must be positive")
				}
				req.Horizon = horizon
			}
			now := app.now()
			req.Now = &now

			reminders, err := app.Reminders.Upcoming(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReminders(reminders, now))
			return nil
		},
	}

	cmd.Flags().DurationVar(&horizon, "horizon", 7*24*time.Hour, "How far ahead to look (e.g. 48h)")

	return cmd
}
