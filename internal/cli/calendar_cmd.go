package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/studysync/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Export and share assignment deadlines",
	}

	cmd.AddCommand(
		newCalendarExportCmd(app),
		newCalendarShareCmd(app),
		newCalendarImportCmd(app),
	)

	return cmd
}

func newCalendarExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write deadlines as an iCalendar (.ics) file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ics, err := app.Calendar.ExportICS(context.Background(), app.now())
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				fmt.Fprint(cmd.OutOrStdout(), ics)
				return nil
			}
			if err := os.WriteFile(out, []byte(ics), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "studysync-deadlines.ics", "Output file, - for stdout")

	return cmd
}

func newCalendarShareCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "share",
		Short: "Print a share code for your deadlines",
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := app.Calendar.ShareCode(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		},
	}
}

func newCalendarImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import CODE",
		Short: "Merge deadlines from a classmate's share code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Calendar.ImportShareCode(context.Background(), strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d assignment(s), skipped %d duplicate(s)\n", len(res.Added), res.Skipped)
			for _, a := range res.Added {
				fmt.Fprintf(out, "  + %s %s\n", a.Label(), formatter.Dim(formatter.DueDate(a.Due)))
			}
			return nil
		},
	}
}
