package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/alexanderramin/studysync/internal/testutil"
	"github.com/alexanderramin/studysync/internal/topicplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklistService_AddToggleStats(t *testing.T) {
	r := setupRepos(t)
	svc := NewChecklistService(r.tasks, testutil.NewTestUoW(r.db))
	ctx := context.Background()

	first, err := svc.Add(ctx, "  Print slides ")
	require.NoError(t, err)
	assert.Equal(t, "Print slides", first.Text)
	_, err = svc.Add(ctx, "Book room")
	require.NoError(t, err)

	toggled, err := svc.Toggle(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Done)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ChecklistStats{Done: 1, Total: 2}, stats)

	toggled, err = svc.Toggle(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Done)
}

func TestChecklistService_RejectsEmptyText(t *testing.T) {
	r := setupRepos(t)
	svc := NewChecklistService(r.tasks, testutil.NewTestUoW(r.db))

	_, err := svc.Add(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChecklistService_AddSteps(t *testing.T) {
	r := setupRepos(t)
	svc := NewChecklistService(r.tasks, testutil.NewTestUoW(r.db))
	ctx := context.Background()

	plan := topicplan.Generate("Wind turbines", 9, monday0800)
	tasks, err := svc.AddSteps(ctx, plan.Steps)
	require.NoError(t, err)
	require.Len(t, tasks, len(plan.Steps))
	assert.Equal(t, plan.Steps[0].Text+" (0.6h)", tasks[0].Text)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, len(plan.Steps))
}

func TestChecklistService_ClearDoneAndDelete(t *testing.T) {
	r := setupRepos(t)
	svc := NewChecklistService(r.tasks, testutil.NewTestUoW(r.db))
	ctx := context.Background()

	require.NoError(t, r.tasks.Create(ctx, testutil.NewTestTask("done one", true)))
	keep := testutil.NewTestTask("keep", false)
	require.NoError(t, r.tasks.Create(ctx, keep))

	n, err := svc.ClearDone(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, svc.Delete(ctx, keep.ID))
	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
