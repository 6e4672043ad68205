package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/studysync/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newChecklistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checklist",
		Aliases: []string{"todo"},
		Short:   "Manage the study checklist",
	}

	cmd.AddCommand(
		newChecklistAddCmd(app),
		newChecklistListCmd(app),
		newChecklistToggleCmd(app),
		newChecklistRemoveCmd(app),
		newChecklistClearCmd(app),
	)

	return cmd
}

func newChecklistAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add TEXT...",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Checklist.Add(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %q [%s]\n", task.Text, formatter.TruncID(task.ID))
			return nil
		},
	}
}

func newChecklistListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Checklist.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatChecklist(tasks))
			return nil
		},
	}
}

func newChecklistToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ID",
		Short: "Flip a task between done and not done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Checklist.Toggle(ctx, id)
			if err != nil {
				return err
			}
			state := "open"
			if task.Done {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q is %s\n", task.Text, state)
			return nil
		},
	}
}

func newChecklistRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Checklist.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newChecklistClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every completed task",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Checklist.ClearDone(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d completed task(s)\n", n)
			return nil
		},
	}
}
