package cli

import (
	"time"

	"github.com/alexanderramin/studysync/internal/contract"
	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/alexanderramin/studysync/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Assignments service.AssignmentService
	Checklist   service.ChecklistService
	Timetable   service.TimetableService
	Planner     service.PlannerService
	Progress    service.ProgressService
	Calendar    service.CalendarService
	Reminders   service.ReminderService

	// Settings resolved from config at startup.
	DefaultEffortHours float64
	DueSoon            time.Duration
	ReminderHorizon    time.Duration

	// IsInteractive reports whether stdin is a terminal. Forms are only
	// offered when it returns true.
	IsInteractive func() bool

	// Now is the clock used for display and planning. Nil means time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) effortFallback() float64 {
	if a.DefaultEffortHours > 0 {
		return a.DefaultEffortHours
	}
	return domain.DefaultEffortHours
}

func (a *App) dueSoon() time.Duration {
	if a.DueSoon > 0 {
		return a.DueSoon
	}
	return contract.DefaultDueSoonWindow
}

// NewRootCmd creates the top-level "studysync" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "studysync",
		Short:         "Assignment tracker and weekly study planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAssignmentCmd(app),
		newChecklistCmd(app),
		newTimetableCmd(app),
		newPlanCmd(app),
		newTopicCmd(app),
		newCalendarCmd(app),
		newProgressCmd(app),
		newRemindersCmd(app),
		newPomodoroCmd(app),
	)

	return root
}
