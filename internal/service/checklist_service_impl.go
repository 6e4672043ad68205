package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studysync/internal/db"
	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/alexanderramin/studysync/internal/repository"
	"github.com/alexanderramin/studysync/internal/topicplan"
	"github.com/google/uuid"
)

type checklistService struct {
	tasks    repository.ChecklistRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewChecklistService(tasks repository.ChecklistRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ChecklistService {
	return &checklistService{tasks: tasks, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func newTask(text string, now time.Time) (*domain.ChecklistTask, error) {
	t := &domain.ChecklistTask{
		ID:        uuid.New().String(),
		Text:      strings.TrimSpace(text),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *checklistService) Add(ctx context.Context, text string) (*domain.ChecklistTask, error) {
	t, err := newTask(text, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// AddSteps copies plan steps into the checklist as "text (Nh)" tasks.
func (s *checklistService) AddSteps(ctx context.Context, steps []topicplan.Step) (_ []*domain.ChecklistTask, err error) {
	defer observe(ctx, s.observer, "add-checklist-steps", time.Now(), map[string]any{"steps": len(steps)}, &err)

	now := time.Now().UTC()
	tasks := make([]*domain.ChecklistTask, 0, len(steps))
	for _, st := range steps {
		t, err := newTask(fmt.Sprintf("%s (%gh)", st.Text, st.Duration), now)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteChecklistRepo(tx)
		for _, t := range tasks {
			if err := txTasks.Create(ctx, t); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *checklistService) Toggle(ctx context.Context, id string) (*domain.ChecklistTask, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t.SetDone(!t.Done, time.Now().UTC())
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *checklistService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

func (s *checklistService) ClearDone(ctx context.Context) (n int, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "clear-checklist", time.Now(), fields, &err)

	n, err = s.tasks.DeleteDone(ctx)
	fields["removed"] = n
	return n, err
}

func (s *checklistService) List(ctx context.Context) ([]*domain.ChecklistTask, error) {
	return s.tasks.List(ctx)
}

func (s *checklistService) Stats(ctx context.Context) (domain.ChecklistStats, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return domain.ChecklistStats{}, err
	}
	return domain.Summarize(tasks), nil
}
