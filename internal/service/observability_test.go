package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/studysync/internal/contract"
	"github.com/alexanderramin/studysync/internal/db"
	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/alexanderramin/studysync/internal/logging"
	"github.com/alexanderramin/studysync/internal/testutil"
	"github.com/alexanderramin/studysync/internal/topicplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestObserver_RecordsSuccessAndFailure(t *testing.T) {
	r := setupRepos(t)
	obs := &recordingObserver{}
	svc := NewAssignmentService(r.assignments, obs)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &domain.Assignment{Title: "Essay", Due: monday0800}))
	require.Error(t, svc.Create(ctx, &domain.Assignment{Title: ""}))

	require.Len(t, obs.events, 2)
	assert.Equal(t, "create-assignment", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.False(t, obs.events[1].Success)
	assert.ErrorIs(t, obs.events[1].Err, domain.ErrInvalidInput)
}

func TestObserver_ReachesSupportingServices(t *testing.T) {
	r := setupRepos(t)
	obs := &recordingObserver{}
	ctx := context.Background()

	due := monday0800.Add(48 * time.Hour)
	require.NoError(t, r.assignments.Create(ctx, testutil.NewTestAssignment("Essay", testutil.WithDue(due))))
	require.NoError(t, r.tasks.Create(ctx, testutil.NewTestTask("Read", true)))

	checklist := NewChecklistService(r.tasks, db.NewSQLiteUnitOfWork(r.db), obs)
	_, err := checklist.AddSteps(ctx, []topicplan.Step{{Text: "Outline", Duration: 1}})
	require.NoError(t, err)
	removed, err := checklist.ClearDone(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	timetable := NewTimetableService(r.sessions, obs)
	require.NoError(t, timetable.Add(ctx, testutil.NewTestSession(domain.Monday, "09:00", "10:00", "Maths")))
	require.Error(t, timetable.Add(ctx, testutil.NewTestSession(domain.Monday, "11:00", "10:00", "Backwards")))

	_, err = NewProgressService(r.assignments, obs).Summary(ctx, contract.ProgressRequest{Now: ptr(monday0800)})
	require.NoError(t, err)

	reminders, err := NewReminderService(r.assignments, obs).Upcoming(ctx, contract.RemindersRequest{Now: ptr(monday0800)})
	require.NoError(t, err)

	names := make([]string, len(obs.events))
	for i, e := range obs.events {
		names[i] = e.Name
	}
	assert.Equal(t, []string{
		"add-checklist-steps", "clear-checklist",
		"add-session", "add-session",
		"progress-summary", "upcoming-reminders",
	}, names)

	assert.Equal(t, 1, obs.events[0].Fields["steps"])
	assert.Equal(t, 1, obs.events[1].Fields["removed"])
	assert.False(t, obs.events[3].Success)
	assert.ErrorIs(t, obs.events[3].Err, domain.ErrInvalidInput)
	assert.Equal(t, 1, obs.events[4].Fields["total"])
	assert.Equal(t, len(reminders), obs.events[5].Fields["reminders"])
}

func TestLogUseCaseObserver_WritesThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(logging.Setup("production", "info", &buf))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:    "plan-week",
		Success: true,
		Fields:  map[string]any{"items": 3},
	})

	out := buf.String()
	assert.Contains(t, out, "service_use_case")
	assert.Contains(t, out, "plan-week")
	assert.Contains(t, out, "items")
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop([]UseCaseObserver{nil}))

	obs := &recordingObserver{}
	assert.Same(t, obs, useCaseObserverOrNoop([]UseCaseObserver{nil, obs}))
}
