package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/alexanderramin/studysync/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimetableService_WeekGroupsByDay(t *testing.T) {
	r := setupRepos(t)
	svc := NewTimetableService(r.sessions)
	ctx := context.Background()

	add := func(day domain.Weekday, start, end domain.Clock, focus string) *domain.TimetableSession {
		s := &domain.TimetableSession{Day: day, Start: start, End: end, Focus: focus}
		require.NoError(t, svc.Add(ctx, s))
		return s
	}
	add(domain.Thursday, domain.NewClock(14, 0), domain.NewClock(15, 0), "Stats")
	add(domain.Monday, domain.NewClock(13, 0), domain.NewClock(14, 0), "Algebra")
	early := add(domain.Monday, domain.NewClock(8, 30), domain.NewClock(9, 15), " Reading ")
	assert.NotEmpty(t, early.ID)
	assert.Equal(t, "Reading", early.Focus)

	week, err := svc.Week(ctx)
	require.NoError(t, err)
	require.Len(t, week, 7)
	assert.Equal(t, domain.Monday, week[0].Day)
	assert.Equal(t, domain.Sunday, week[6].Day)

	require.Len(t, week[0].Sessions, 2)
	assert.Equal(t, "Reading", week[0].Sessions[0].Focus)
	assert.Equal(t, "Algebra", week[0].Sessions[1].Focus)
	require.Len(t, week[3].Sessions, 1)
	assert.Empty(t, week[1].Sessions)
}

func TestTimetableService_Validation(t *testing.T) {
	r := setupRepos(t)
	svc := NewTimetableService(r.sessions)
	ctx := context.Background()

	err := svc.Add(ctx, &domain.TimetableSession{Day: domain.Monday, Start: domain.NewClock(10, 0), End: domain.NewClock(10, 0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = svc.Add(ctx, &domain.TimetableSession{Day: domain.Weekday(9), Start: domain.NewClock(9, 0), End: domain.NewClock(10, 0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTimetableService_Remove(t *testing.T) {
	r := setupRepos(t)
	svc := NewTimetableService(r.sessions)
	ctx := context.Background()

	s := &domain.TimetableSession{Day: domain.Friday, Start: domain.NewClock(9, 0), End: domain.NewClock(10, 0)}
	require.NoError(t, svc.Add(ctx, s))
	require.NoError(t, svc.Remove(ctx, s.ID))
	assert.ErrorIs(t, svc.Remove(ctx, s.ID), repository.ErrNotFound)
}
