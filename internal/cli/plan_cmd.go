package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/studysync/internal/cli/formatter"
	"github.com/alexanderramin/studysync/internal/contract"
	"github.com/alexanderramin/studysync/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build and view the weekly study plan",
	}

	cmd.AddCommand(
		newPlanWeekCmd(app),
		newPlanShowCmd(app),
		newPlanClearCmd(app),
	)

	return cmd
}

func newPlanWeekCmd(app *App) *cobra.Command {
	var (
		dryRun bool
		now    time.Time
	)

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Book open assignments into the week, earliest deadline first",
		Long: `Fills the week's half-hour slots (09:00-21:00 on weekdays, 11:00-19:00 at
the weekend) with open assignments, earliest due first. The stored plan is
replaced. Work that does not fit is listed, not rolled over.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewPlanWeekRequest()
			req.DefaultEffortHours = app.effortFallback()
			req.DryRun = dryRun
			if !now.IsZero() {
				req.Now = &now
			}

			resp, err := app.Planner.PlanWeek(context.Background(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatWeekColumns(resp.Blocks))
			fmt.Fprintln(out, formatter.FormatPlanSummary(resp))
			if dryRun {
				fmt.Fprintln(out, formatter.Dim("Dry run: stored plan unchanged."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the plan without saving it")
	nowFlag(cmd.Flags(), &now)

	return cmd
}

// mondayFirst converts a time.Weekday to the planner's Monday-first day.
func mondayFirst(d time.Weekday) domain.Weekday {
	return domain.Weekday((int(d) + 6) % 7)
}

func newPlanShowCmd(app *App) *cobra.Command {
	var tui bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stored plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks, err := app.Planner.ListBlocks(context.Background())
			if err != nil {
				return err
			}

			if tui && app.interactive() {
				model := newWeekView(blocks, mondayFirst(app.now().Weekday()))
				_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
				return err
			}

			if len(blocks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No plan yet. Build one with: studysync plan week")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWeekColumns(blocks))
			return nil
		},
	}

	cmd.Flags().BoolVar(&tui, "tui", false, "Browse the plan day by day")

	return cmd
}

func newPlanClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the stored plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Planner.ClearPlan(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d planned block(s)\n", n)
			return nil
		},
	}
}
