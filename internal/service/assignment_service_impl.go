package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/alexanderramin/studysync/internal/repository"
	"github.com/google/uuid"
)

type assignmentService struct {
	assignments repository.AssignmentRepo
	observer    UseCaseObserver
}

func NewAssignmentService(assignments repository.AssignmentRepo, observers ...UseCaseObserver) AssignmentService {
	return &assignmentService{
		assignments: assignments,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *assignmentService) Create(ctx context.Context, a *domain.Assignment) (err error) {
	defer observe(ctx, s.observer, "create-assignment", time.Now(), map[string]any{"title": a.Title}, &err)

	a.Title = strings.TrimSpace(a.Title)
	a.Course = strings.TrimSpace(a.Course)
	if err = a.Validate(); err != nil {
		return err
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	return s.assignments.Create(ctx, a)
}

func (s *assignmentService) GetByID(ctx context.Context, id string) (*domain.Assignment, error) {
	return s.assignments.GetByID(ctx, id)
}

func (s *assignmentService) List(ctx context.Context, filter AssignmentFilter) ([]*domain.Assignment, error) {
	var (
		all []*domain.Assignment
		err error
	)
	if filter.OpenOnly {
		all, err = s.assignments.ListOpen(ctx)
	} else {
		all, err = s.assignments.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(filter.Query))
	if q == "" {
		return all, nil
	}
	out := all[:0]
	for _, a := range all {
		if strings.Contains(strings.ToLower(a.Title), q) || strings.Contains(strings.ToLower(a.Course), q) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *assignmentService) Update(ctx context.Context, a *domain.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}
	a.UpdatedAt = time.Now().UTC()
	return s.assignments.Update(ctx, a)
}

func (s *assignmentService) Start(ctx context.Context, id string) error {
	a, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := a.Start(time.Now().UTC()); err != nil {
		return err
	}
	return s.assignments.Update(ctx, a)
}

func (s *assignmentService) Submit(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "submit-assignment", time.Now(), map[string]any{"id": id}, &err)

	var a *domain.Assignment
	a, err = s.assignments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	a.Submit(time.Now().UTC())
	return s.assignments.Update(ctx, a)
}

func (s *assignmentService) AttachPlan(ctx context.Context, id string, plan *domain.AttachedPlan) error {
	a, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	a.Plan = plan
	a.UpdatedAt = time.Now().UTC()
	return s.assignments.Update(ctx, a)
}

func (s *assignmentService) Delete(ctx context.Context, id string) error {
	return s.assignments.Delete(ctx, id)
}
