package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/studysync/internal/domain"
)

// ErrNotFound is returned when a lookup or mutation targets a missing row.
var ErrNotFound = errors.New("not found")

type AssignmentRepo interface {
	Create(ctx context.Context, a *domain.Assignment) error
	GetByID(ctx context.Context, id string) (*domain.Assignment, error)
	// List returns every assignment ordered by due date.
	List(ctx context.Context) ([]*domain.Assignment, error)
	// ListOpen returns assignments that are not submitted, ordered by due date.
	ListOpen(ctx context.Context) ([]*domain.Assignment, error)
	Update(ctx context.Context, a *domain.Assignment) error
	Delete(ctx context.Context, id string) error
}

type ChecklistRepo interface {
	Create(ctx context.Context, t *domain.ChecklistTask) error
	GetByID(ctx context.Context, id string) (*domain.ChecklistTask, error)
	List(ctx context.Context) ([]*domain.ChecklistTask, error)
	Update(ctx context.Context, t *domain.ChecklistTask) error
	Delete(ctx context.Context, id string) error
	DeleteDone(ctx context.Context) (int, error)
}

type TimetableRepo interface {
	Create(ctx context.Context, s *domain.TimetableSession) error
	// List returns sessions ordered by day then start time.
	List(ctx context.Context) ([]*domain.TimetableSession, error)
	Delete(ctx context.Context, id string) error
}

type PlanBlockRepo interface {
	// Append stores blocks after any existing ones, assigning Seq.
	Append(ctx context.Context, blocks []*domain.PlanBlock) error
	// List returns blocks in the order they were planned.
	List(ctx context.Context) ([]*domain.PlanBlock, error)
	DeleteAll(ctx context.Context) (int, error)
}
