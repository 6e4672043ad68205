package cli

import (
	"fmt"

	"github.com/alexanderramin/studysync/internal/cli/formatter"
	"github.com/alexanderramin/studysync/internal/pomodoro"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPomodoroCmd(app *App) *cobra.Command {
	cfg := pomodoro.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "pomodoro",
		Short: "Run a focus/break countdown timer",
		Long: `Alternates focus sessions with short breaks, taking a long break after
every --every focus cycles. Space starts and pauses, r resets the cycle count.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			timer, err := pomodoro.New(cfg)
			if err != nil {
				return err
			}

			if !app.interactive() {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s %s, %s %s, %s %s every %d focus cycles\n",
					formatter.Dim("Focus"), cfg.Focus,
					formatter.Dim("short break"), cfg.Short,
					formatter.Dim("long break"), cfg.Long, cfg.Every)
				fmt.Fprintln(out, formatter.Dim("The timer needs a terminal."))
				return nil
			}

			_, err = tea.NewProgram(newPomodoroView(timer), tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().DurationVar(&cfg.Focus, "focus", cfg.Focus, "Focus session length")
	cmd.Flags().DurationVar(&cfg.Short, "short", cfg.Short, "Short break length")
	cmd.Flags().DurationVar(&cfg.Long, "long", cfg.Long, "Long break length")
	cmd.Flags().IntVar(&cfg.Every, "every", cfg.Every, "Focus cycles between long breaks")

	return cmd
}
