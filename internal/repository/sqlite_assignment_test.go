package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/alexanderramin/studysync/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentRepo_CreateAndGet(t *testing.T) {
	repo := NewSQLiteAssignmentRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	due := time.Date(2025, 6, 20, 17, 0, 0, 0, time.UTC)
	a := testutil.NewTestAssignment("Lab report",
		testutil.WithCourse("CHEM101"),
		testutil.WithDue(due),
		testutil.WithEffort(3.5),
		testutil.WithReminders(domain.Reminders{H24: true, H1: true}),
	)
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lab report", got.Title)
	assert.Equal(t, "CHEM101", got.Course)
	assert.True(t, due.Equal(got.Due))
	assert.Equal(t, 3.5, got.EffortHours)
	assert.Equal(t, domain.StatusNotStarted, got.Status)
	assert.Equal(t, domain.Reminders{H24: true, H1: true}, got.Reminders)
	assert.Nil(t, got.Plan)
}

func TestAssignmentRepo_GetMissing(t *testing.T) {
	repo := NewSQLiteAssignmentRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAssignmentRepo_PlanRoundTrip(t *testing.T) {
	repo := NewSQLiteAssignmentRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	plan := &domain.AttachedPlan{
		Topic:      "Bridge design",
		Type:       "design",
		TotalHours: 4,
		Outline:    []string{"Brief", "Concepts"},
		Steps:      []domain.PlanStep{{Text: "Sketch", Duration: 1.5}},
	}
	a := testutil.NewTestAssignment("Bridge", testutil.WithPlan(plan))
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Plan)
	assert.Equal(t, plan.Topic, got.Plan.Topic)
	assert.Equal(t, plan.Steps, got.Plan.Steps)
	assert.Equal(t, plan.Outline, got.Plan.Outline)
}

func TestAssignmentRepo_ListOrdersByDue(t *testing.T) {
	repo := NewSQLiteAssignmentRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)

	late := testutil.NewTestAssignment("late", testutil.WithDue(base.Add(48*time.Hour)))
	early := testutil.NewTestAssignment("early", testutil.WithDue(base))
	done := testutil.NewTestAssignment("done",
		testutil.WithDue(base.Add(time.Hour)), testutil.WithStatus(domain.StatusSubmitted))
	for _, a := range []*domain.Assignment{late, early, done} {
		require.NoError(t, repo.Create(ctx, a))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"early", "done", "late"}, titles(all))

	open, err := repo.ListOpen(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"early", "late"}, titles(open))
}

func TestAssignmentRepo_UpdateAndDelete(t *testing.T) {
	repo := NewSQLiteAssignmentRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	a := testutil.NewTestAssignment("Essay")
	require.NoError(t, repo.Create(ctx, a))

	a.Submit(a.UpdatedAt.Add(time.Minute))
	require.NoError(t, repo.Update(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSubmitted, got.Status)

	require.NoError(t, repo.Delete(ctx, a.ID))
	assert.ErrorIs(t, repo.Delete(ctx, a.ID), ErrNotFound)

	ghost := testutil.NewTestAssignment("ghost")
	assert.ErrorIs(t, repo.Update(ctx, ghost), ErrNotFound)
}

func titles(as []*domain.Assignment) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.Title
	}
	return out
}
