package service

import (
	"context"
	"sort"
	"time"

	"github.com/alexanderramin/studysync/internal/contract"
	"github.com/alexanderramin/studysync/internal/repository"
)

type reminderService struct {
	assignments repository.AssignmentRepo
	observer    UseCaseObserver
}

func NewReminderService(assignments repository.AssignmentRepo, observers ...UseCaseObserver) ReminderService {
	return &reminderService{assignments: assignments, observer: useCaseObserverOrNoop(observers)}
}

// Upcoming lists reminders that fire after now and within the horizon,
// soonest first.
func (s *reminderService) Upcoming(ctx context.Context, req contract.RemindersRequest) (_ []contract.Reminder, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "upcoming-reminders", time.Now(), fields, &err)

	now := resolveNow(req.Now)
	horizon := req.Horizon
	if horizon <= 0 {
		horizon = contract.NewRemindersRequest().Horizon
	}
	until := now.Add(horizon)

	open, err := s.assignments.ListOpen(ctx)
	if err != nil {
		return nil, err
	}

	var out []contract.Reminder
	for _, a := range open {
		for _, at := range a.ReminderTimes() {
			if !at.After(now) || at.After(until) {
				continue
			}
			out = append(out, contract.Reminder{
				AssignmentID: a.ID,
				Label:        a.Label(),
				Due:          a.Due,
				At:           at,
				Lead:         a.Due.Sub(at),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	fields["reminders"] = len(out)
	return out, nil
}
