package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/studysync/internal/cli/formatter"
	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/spf13/cobra"
)

func newTimetableCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "timetable",
		Aliases: []string{"tt"},
		Short:   "Manage recurring weekly study sessions",
	}

	cmd.AddCommand(
		newTimetableAddCmd(app),
		newTimetableListCmd(app),
		newTimetableRemoveCmd(app),
	)

	return cmd
}

func newTimetableAddCmd(app *App) *cobra.Command {
	var (
		day        domain.Weekday
		start, end domain.Clock
		focus      string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a weekly session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &domain.TimetableSession{
				Day:   day,
				Start: start,
				End:   end,
				Focus: focus,
			}
			if err := app.Timetable.Add(context.Background(), s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s-%s %s [%s]\n",
				s.Day, s.Start, s.End, s.Focus, formatter.TruncID(s.ID))
			return nil
		},
	}

	weekdayFlag(cmd.Flags(), &day, "day", "Day of the week (mon..sun)")
	clockFlag(cmd.Flags(), &start, "start", "Start time (HH:MM)")
	clockFlag(cmd.Flags(), &end, "end", "End time (HH:MM)")
	cmd.Flags().StringVar(&focus, "focus", "", "What the session is for")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newTimetableListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the weekly timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := app.Timetable.Week(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTimetable(week))
			return nil
		},
	}
}

func newTimetableRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a session",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSessionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Timetable.Remove(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed session %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
