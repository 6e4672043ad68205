package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/studysync/internal/cli"
	"github.com/alexanderramin/studysync/internal/config"
	"github.com/alexanderramin/studysync/internal/db"
	"github.com/alexanderramin/studysync/internal/logging"
	"github.com/alexanderramin/studysync/internal/repository"
	"github.com/alexanderramin/studysync/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dataDir, err := config.DefaultDataDir()
	if err != nil {
		return err
	}
	cfg, err := config.Load(dataDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.Setup(cfg.Environment, cfg.LogLevel, os.Stderr)
	logger.Debug().Str("db", cfg.DBPath).Msg("starting")

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	assignmentRepo := repository.NewSQLiteAssignmentRepo(database)
	checklistRepo := repository.NewSQLiteChecklistRepo(database)
	timetableRepo := repository.NewSQLiteTimetableRepo(database)
	blockRepo := repository.NewSQLitePlanBlockRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(logger)
	}

	app := &cli.App{
		Assignments: service.NewAssignmentService(assignmentRepo, observer),
		Checklist:   service.NewChecklistService(checklistRepo, uow, observer),
		Timetable:   service.NewTimetableService(timetableRepo, observer),
		Planner:     service.NewPlannerService(assignmentRepo, blockRepo, uow, observer),
		Progress:    service.NewProgressService(assignmentRepo, observer),
		Calendar:    service.NewCalendarService(assignmentRepo, uow, observer),
		Reminders:   service.NewReminderService(assignmentRepo, observer),

		DefaultEffortHours: cfg.DefaultEffortHours,
		DueSoon:            time.Duration(cfg.DueSoonHours) * time.Hour,
		ReminderHorizon:    time.Duration(cfg.ReminderHorizonDays) * 24 * time.Hour,
	}

	// Forms and the week viewer need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
