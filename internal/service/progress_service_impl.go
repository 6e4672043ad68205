package service

import (
	"context"
	"math"
	"time"

	"github.com/alexanderramin/studysync/internal/contract"
	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/alexanderramin/studysync/internal/repository"
)

type progressService struct {
	assignments repository.AssignmentRepo
	observer    UseCaseObserver
}

func NewProgressService(assignments repository.AssignmentRepo, observers ...UseCaseObserver) ProgressService {
	return &progressService{assignments: assignments, observer: useCaseObserverOrNoop(observers)}
}

func (s *progressService) Summary(ctx context.Context, req contract.ProgressRequest) (_ *contract.ProgressResponse, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "progress-summary", time.Now(), fields, &err)

	now := resolveNow(req.Now)
	window := req.DueSoonWindow
	if window <= 0 {
		window = contract.DefaultDueSoonWindow
	}

	all, err := s.assignments.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &contract.ProgressResponse{
		GeneratedAt: now,
		Total:       len(all),
		Items:       make([]contract.AssignmentProgress, 0, len(all)),
	}
	for _, a := range all {
		soon := a.DueWithin(now, window)
		switch a.Status {
		case domain.StatusSubmitted:
			resp.Submitted++
		case domain.StatusInProgress:
			resp.InProgress++
		}
		if soon {
			resp.DueSoon++
		}
		resp.Items = append(resp.Items, contract.AssignmentProgress{
			ID:       a.ID,
			Label:    a.Label(),
			Due:      a.Due,
			Status:   a.Status,
			Progress: a.Progress(),
			DueSoon:  soon,
		})
	}
	if resp.Total > 0 {
		resp.Percent = int(math.Round(float64(resp.Submitted) / float64(resp.Total) * 100))
	}
	fields["total"] = resp.Total
	return resp, nil
}
