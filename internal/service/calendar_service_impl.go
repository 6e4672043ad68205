package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/studysync/internal/calendar"
	"github.com/alexanderramin/studysync/internal/db"
	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/alexanderramin/studysync/internal/repository"
	"github.com/google/uuid"
)

type calendarService struct {
	assignments repository.AssignmentRepo
	uow         db.UnitOfWork
	observer    UseCaseObserver
}

func NewCalendarService(assignments repository.AssignmentRepo, uow db.UnitOfWork, observers ...UseCaseObserver) CalendarService {
	return &calendarService{
		assignments: assignments,
		uow:         uow,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *calendarService) ExportICS(ctx context.Context, stamp time.Time) (string, error) {
	all, err := s.assignments.List(ctx)
	if err != nil {
		return "", err
	}
	return calendar.BuildICS(all, stamp), nil
}

func (s *calendarService) ShareCode(ctx context.Context) (string, error) {
	all, err := s.assignments.List(ctx)
	if err != nil {
		return "", err
	}
	return calendar.EncodeShareCode(all)
}

// ImportShareCode merges a classmate's deadlines into the local list. Local
// assignments win over imported duplicates.
func (s *calendarService) ImportShareCode(ctx context.Context, code string) (result *ImportResult, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "import-share-code", time.Now(), fields, &err)

	theirs, err := calendar.DecodeShareCode(code)
	if err != nil {
		return nil, err
	}
	mine, err := s.assignments.List(ctx)
	if err != nil {
		return nil, err
	}

	local := make(map[*domain.Assignment]bool, len(mine))
	ids := make(map[string]bool, len(mine))
	for _, a := range mine {
		local[a] = true
		ids[a.ID] = true
	}

	now := time.Now().UTC()
	result = &ImportResult{}
	for _, a := range calendar.Merge(mine, theirs) {
		if local[a] {
			continue
		}
		if a.ID == "" || ids[a.ID] {
			a.ID = uuid.New().String()
		}
		ids[a.ID] = true
		a.CreatedAt = now
		a.UpdatedAt = now
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", calendar.ErrInvalidShareCode, err)
		}
		result.Added = append(result.Added, a)
	}
	result.Skipped = len(theirs) - len(result.Added)
	fields["added"] = len(result.Added)
	fields["skipped"] = result.Skipped

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txAssignments := repository.NewSQLiteAssignmentRepo(tx)
		for _, a := range result.Added {
			if err := txAssignments.Create(ctx, a); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
