package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studysync/internal/cli/formatter"
	"github.com/alexanderramin/studysync/internal/contract"
	"github.com/spf13/cobra"
)

func newTopicCmd(app *App) *cobra.Command {
	var (
		assignment  string
		effort      float64
		due, now    time.Time
		attach      bool
		noSchedule  bool
		toChecklist bool
	)

	cmd := &cobra.Command{
		Use:   "topic [TOPIC...]",
		Short: "Generate a study plan for a topic and schedule its steps",
		Long: `Generates an outline, key questions, weighted steps and search queries
for a topic. Steps are appended to the stored plan round robin from Monday
09:00 unless --no-schedule is given. With --assignment the assignment's title,
effort and deadline fill in anything not given on the command line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := contract.NewTopicPlanRequest(strings.Join(args, " "))
			req.DefaultEffortHours = app.effortFallback()
			req.Attach = attach
			req.Schedule = !noSchedule
			if cmd.Flags().Changed("effort") {
				req.EffortHours = &effort
			}
			if !due.IsZero() {
				req.Due = &due
			}
			if !now.IsZero() {
				req.Now = &now
			}
			if assignment != "" {
				id, err := resolveAssignmentID(ctx, app, assignment)
				if err != nil {
					return err
				}
				req.AssignmentID = id
			}

			resp, err := app.Planner.ScheduleTopicPlan(ctx, req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatTopicPlan(resp.Plan))
			if len(resp.Blocks) > 0 {
				fmt.Fprintf(out, "Scheduled %s into the plan.\n", formatter.FormatUnits(len(resp.Blocks)))
			}
			if attach {
				fmt.Fprintf(out, "Attached to assignment %s.\n", formatter.TruncID(resp.AssignmentID))
			}
			if toChecklist {
				tasks, err := app.Checklist.AddSteps(ctx, resp.Plan.Steps)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Added %d step(s) to the checklist.\n", len(tasks))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&assignment, "assignment", "a", "", "Assignment ID to plan for")
	cmd.Flags().Float64Var(&effort, "effort", 0, "Effort in hours (defaults to the assignment's or 2)")
	dueFlag(cmd.Flags(), &due, "Deadline (defaults to the assignment's or three days out)")
	cmd.Flags().BoolVar(&attach, "attach", false, "Save the plan on the assignment")
	cmd.Flags().BoolVar(&noSchedule, "no-schedule", false, "Generate the plan without booking blocks")
	cmd.Flags().BoolVar(&toChecklist, "to-checklist", false, "Copy the steps into the checklist")
	nowFlag(cmd.Flags(), &now)

	return cmd
}
