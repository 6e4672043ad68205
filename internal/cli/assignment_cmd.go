package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/studysync/internal/cli/formatter"
	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/alexanderramin/studysync/internal/service"
	"github.com/spf13/cobra"
)

func newAssignmentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assignment",
		Aliases: []string{"a"},
		Short:   "Manage assignments and deadlines",
	}

	cmd.AddCommand(
		newAssignmentAddCmd(app),
		newAssignmentListCmd(app),
		newAssignmentShowCmd(app),
		newAssignmentStartCmd(app),
		newAssignmentSubmitCmd(app),
		newAssignmentRemoveCmd(app),
	)

	return cmd
}

// parseReminders turns "24h,6h,1h" style values into flags. "none" disables
// every reminder.
func parseReminders(values []string) (domain.Reminders, error) {
	var r domain.Reminders
	for _, v := range values {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case remind24h:
			r.H24 = true
		case remind6h:
			r.H6 = true
		case remind1h:
			r.H1 = true
		case "none", "":
		default:
			return r, fmt.Errorf("unknown reminder %q (use 24h, 6h, 1h or none)", v)
		}
	}
	return r, nil
}

func newAssignmentAddCmd(app *App) *cobra.Command {
	var (
		title, course string
		due           time.Time
		effort        float64
		remind        []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an assignment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (title == "" || due.IsZero()) && app.interactive() {
				in := assignmentInput{Title: title, Course: course}
				if !due.IsZero() {
					in.Due = due.Format("2006-01-02 15:04")
				}
				if effort > 0 {
					in.Effort = strconv.FormatFloat(effort, 'f', -1, 64)
				}
				if err := assignmentForm(&in).Run(); err != nil {
					return err
				}
				title, course, remind = in.Title, in.Course, in.Remind
				parsed, err := parseDue(in.Due)
				if err != nil {
					return err
				}
				due = parsed
				if s := strings.TrimSpace(in.Effort); s != "" {
					if effort, err = strconv.ParseFloat(s, 64); err != nil {
						return fmt.Errorf("invalid effort %q: %w", s, err)
					}
				}
			}
			if title == "" {
				return fmt.Errorf("--title is required")
			}
			if due.IsZero() {
				return fmt.Errorf("--due is required")
			}

			reminders, err := parseReminders(remind)
			if err != nil {
				return err
			}

			a := &domain.Assignment{
				Title:       title,
				Course:      course,
				Due:         due,
				EffortHours: effort,
				Reminders:   reminders,
			}
			if err := app.Assignments.Create(context.Background(), a); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (due %s) [%s]\n",
				a.Label(), formatter.RelativeDue(a.Due, app.now()), formatter.TruncID(a.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Assignment title")
	cmd.Flags().StringVar(&course, "course", "", "Course name or code")
	dueFlag(cmd.Flags(), &due, "Deadline (YYYY-MM-DD or \"YYYY-MM-DD HH:MM\")")
	cmd.Flags().Float64Var(&effort, "effort", 0, "Estimated effort in hours (0 uses the default)")
	cmd.Flags().StringSliceVar(&remind, "remind", []string{remind24h, remind6h, remind1h}, "Reminder lead times: 24h, 6h, 1h or none")

	return cmd
}

func newAssignmentListCmd(app *App) *cobra.Command {
	var (
		query string
		open  bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List assignments by due date",
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, err := app.Assignments.List(context.Background(), service.AssignmentFilter{
				Query:    query,
				OpenOnly: open,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAssignmentList(assignments, app.now(), app.dueSoon()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by title or course")
	cmd.Flags().BoolVar(&open, "open", false, "Hide submitted assignments")

	return cmd
}

func newAssignmentShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show assignment details and its attached plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveAssignmentID(ctx, app, args[0])
			if err != nil {
				return err
			}
			a, err := app.Assignments.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAssignment(a, app.now()))
			return nil
		},
	}
}

// assignmentAction builds a command that applies fn to one resolved assignment.
func assignmentAction(app *App, use, short, verb string, fn func(ctx context.Context, id string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveAssignmentID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := fn(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, formatter.TruncID(id))
			return nil
		},
	}
}

func newAssignmentStartCmd(app *App) *cobra.Command {
	return assignmentAction(app, "start", "Mark an assignment in progress", "Started", func(ctx context.Context, id string) error {
		return app.Assignments.Start(ctx, id)
	})
}

func newAssignmentSubmitCmd(app *App) *cobra.Command {
	return assignmentAction(app, "submit", "Mark an assignment submitted", "Submitted", func(ctx context.Context, id string) error {
		return app.Assignments.Submit(ctx, id)
	})
}

func newAssignmentRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete an assignment",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveAssignmentID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if !force && app.interactive() {
				a, err := app.Assignments.GetByID(ctx, id)
				if err != nil {
					return err
				}
				var ok bool
				if err := confirmForm(fmt.Sprintf("Delete %q?", a.Label()), &ok).Run(); err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}
			if err := app.Assignments.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", formatter.TruncID(id))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")

	return cmd
}
