package service

import (
	"context"
	"time"

	"github.com/alexanderramin/studysync/internal/contract"
	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/alexanderramin/studysync/internal/topicplan"
)

// AssignmentFilter narrows List. Query matches title or course,
// case-insensitively.
type AssignmentFilter struct {
	Query    string
	OpenOnly bool
}

type AssignmentService interface {
	Create(ctx context.Context, a *domain.Assignment) error
	GetByID(ctx context.Context, id string) (*domain.Assignment, error)
	List(ctx context.Context, filter AssignmentFilter) ([]*domain.Assignment, error)
	Update(ctx context.Context, a *domain.Assignment) error
	Start(ctx context.Context, id string) error
	Submit(ctx context.Context, id string) error
	AttachPlan(ctx context.Context, id string, plan *domain.AttachedPlan) error
	Delete(ctx context.Context, id string) error
}

type ChecklistService interface {
	Add(ctx context.Context, text string) (*domain.ChecklistTask, error)
	AddSteps(ctx context.Context, steps []topicplan.Step) ([]*domain.ChecklistTask, error)
	Toggle(ctx context.Context, id string) (*domain.ChecklistTask, error)
	Delete(ctx context.Context, id string) error
	ClearDone(ctx context.Context) (int, error)
	List(ctx context.Context) ([]*domain.ChecklistTask, error)
	Stats(ctx context.Context) (domain.ChecklistStats, error)
}

type TimetableService interface {
	Add(ctx context.Context, s *domain.TimetableSession) error
	Remove(ctx context.Context, id string) error
	// Week returns all seven days, Monday first, sessions sorted by start.
	Week(ctx context.Context) ([]contract.DaySessions, error)
}

type PlannerService interface {
	PlanWeek(ctx context.Context, req contract.PlanWeekRequest) (*contract.PlanWeekResponse, error)
	ScheduleTopicPlan(ctx context.Context, req contract.TopicPlanRequest) (*contract.TopicPlanResponse, error)
	ListBlocks(ctx context.Context) ([]*domain.PlanBlock, error)
	ClearPlan(ctx context.Context) (int, error)
}

type ProgressService interface {
	Summary(ctx context.Context, req contract.ProgressRequest) (*contract.ProgressResponse, error)
}

// ImportResult holds the outcome of merging a share code.
type ImportResult struct {
	Added   []*domain.Assignment
	Skipped int
}

type CalendarService interface {
	ExportICS(ctx context.Context, stamp time.Time) (string, error)
	ShareCode(ctx context.Context) (string, error)
	ImportShareCode(ctx context.Context, code string) (*ImportResult, error)
}

type ReminderService interface {
	Upcoming(ctx context.Context, req contract.RemindersRequest) ([]contract.Reminder, error)
}
