package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/studysync/internal/contract"
	"github.com/alexanderramin/studysync/internal/db"
	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/alexanderramin/studysync/internal/repository"
	"github.com/alexanderramin/studysync/internal/scheduler"
	"github.com/alexanderramin/studysync/internal/topicplan"
)

type plannerService struct {
	assignments repository.AssignmentRepo
	blocks      repository.PlanBlockRepo
	uow         db.UnitOfWork
	observer    UseCaseObserver
}

func NewPlannerService(
	assignments repository.AssignmentRepo,
	blocks repository.PlanBlockRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) PlannerService {
	return &plannerService{
		assignments: assignments,
		blocks:      blocks,
		uow:         uow,
		observer:    useCaseObserverOrNoop(observers),
	}
}

// PlanWeek books open assignments into the week with first fit, earliest due
// first, and replaces the stored plan with the result.
func (s *plannerService) PlanWeek(ctx context.Context, req contract.PlanWeekRequest) (resp *contract.PlanWeekResponse, err error) {
	now := resolveNow(req.Now)
	fields := map[string]any{"dry_run": req.DryRun}
	defer observe(ctx, s.observer, "plan-week", time.Now(), fields, &err)

	open, err := s.assignments.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	items := assignmentWorkItems(open, req.DefaultEffortHours)

	grid := scheduler.NewWeekGrid()
	capacity := grid.Capacity()
	placement := scheduler.FirstFit{}.Place(items, grid)
	blocks := toPlanBlocks(placement.Blocks, domain.SourceWeekPlan, now)

	fields["items"] = len(items)
	fields["placed_units"] = placement.PlacedUnits()
	fields["missing_units"] = placement.MissingUnits()

	if !req.DryRun {
		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txBlocks := repository.NewSQLitePlanBlockRepo(tx)
			if _, err := txBlocks.DeleteAll(ctx); err != nil {
				return err
			}
			return txBlocks.Append(ctx, blocks)
		})
		if err != nil {
			return nil, err
		}
	}

	return &contract.PlanWeekResponse{
		GeneratedAt:    now,
		Blocks:         blocks,
		Shortfalls:     placement.Shortfalls,
		RequestedUnits: requestedUnits(items),
		PlacedUnits:    placement.PlacedUnits(),
		Capacity:       capacity,
	}, nil
}

// ScheduleTopicPlan generates a topic plan, optionally attaches it to an
// assignment, and appends its steps to the stored plan round robin.
func (s *plannerService) ScheduleTopicPlan(ctx context.Context, req contract.TopicPlanRequest) (resp *contract.TopicPlanResponse, err error) {
	now := resolveNow(req.Now)
	fields := map[string]any{"assignment": req.AssignmentID, "attach": req.Attach}
	defer observe(ctx, s.observer, "schedule-topic-plan", time.Now(), fields, &err)

	if req.Attach && req.AssignmentID == "" {
		return nil, &contract.PlanError{Code: contract.PlanErrAttachWithoutTarget, Message: "attaching a plan requires an assignment"}
	}

	topic := strings.TrimSpace(req.Topic)
	effort := domain.Float64FromPtrWithDefault(req.DefaultEffortHours, req.EffortHours)
	due := now.Add(contract.DefaultTopicDueIn)
	if req.AssignmentID != "" {
		var a *domain.Assignment
		a, err = s.assignments.GetByID(ctx, req.AssignmentID)
		if err != nil {
			return nil, err
		}
		topic = domain.CoalesceStr(topic, a.Title)
		effort = domain.Float64FromPtrWithDefault(a.Effort(req.DefaultEffortHours), req.EffortHours)
		due = a.Due
	}
	if req.Due != nil {
		due = *req.Due
	}
	if topic == "" {
		return nil, &contract.PlanError{Code: contract.PlanErrEmptyTopic, Message: "a topic or assignment is required"}
	}

	plan := topicplan.Generate(topic, effort, due)
	fields["type"] = plan.Type.String()
	fields["total_hours"] = plan.TotalHours

	var blocks []*domain.PlanBlock
	if req.Schedule {
		prefix := domain.CoalesceStr(req.AssignmentID, "topic")
		placement := scheduler.Plan(scheduler.RoundRobin{}, plan.WorkItems(prefix))
		blocks = toPlanBlocks(placement.Blocks, domain.SourceTopicPlan, now)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if req.Attach {
			txAssignments := repository.NewSQLiteAssignmentRepo(tx)
			a, err := txAssignments.GetByID(ctx, req.AssignmentID)
			if err != nil {
				return err
			}
			a.Plan = plan.Snapshot()
			a.UpdatedAt = now
			if err := txAssignments.Update(ctx, a); err != nil {
				return err
			}
		}
		return repository.NewSQLitePlanBlockRepo(tx).Append(ctx, blocks)
	})
	if err != nil {
		return nil, err
	}

	return &contract.TopicPlanResponse{
		Plan:         plan,
		AssignmentID: req.AssignmentID,
		Blocks:       blocks,
	}, nil
}

func (s *plannerService) ListBlocks(ctx context.Context) ([]*domain.PlanBlock, error) {
	return s.blocks.List(ctx)
}

func (s *plannerService) ClearPlan(ctx context.Context) (int, error) {
	return s.blocks.DeleteAll(ctx)
}
