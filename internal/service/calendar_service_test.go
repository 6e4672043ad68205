package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/studysync/internal/calendar"
	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/alexanderramin/studysync/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarService_ExportICS(t *testing.T) {
	r := setupRepos(t)
	svc := NewCalendarService(r.assignments, testutil.NewTestUoW(r.db))
	ctx := context.Background()

	require.NoError(t, r.assignments.Create(ctx, testutil.NewTestAssignment("Lab; part 1",
		testutil.WithCourse("CHEM"), testutil.WithDue(monday0800.Add(24*time.Hour)))))

	ics, err := svc.ExportICS(ctx, monday0800)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n"))
	assert.Contains(t, ics, "DTSTART:20250617T080000Z")
	assert.Contains(t, ics, `SUMMARY:CHEM: Lab\; part 1`)
	assert.Equal(t, 1, strings.Count(ics, "BEGIN:VEVENT"))
}

func TestCalendarService_ShareAndImport(t *testing.T) {
	ctx := context.Background()
	due := monday0800.Add(48 * time.Hour)

	classmate := setupRepos(t)
	shared := testutil.NewTestAssignment("Problem set", testutil.WithCourse("MATH"), testutil.WithDue(due))
	extra := testutil.NewTestAssignment("Reading log", testutil.WithDue(due))
	require.NoError(t, classmate.assignments.Create(ctx, shared))
	require.NoError(t, classmate.assignments.Create(ctx, extra))

	code, err := NewCalendarService(classmate.assignments, testutil.NewTestUoW(classmate.db)).ShareCode(ctx)
	require.NoError(t, err)

	me := setupRepos(t)
	mine := testutil.NewTestAssignment("problem SET", testutil.WithCourse("math"), testutil.WithDue(due))
	require.NoError(t, me.assignments.Create(ctx, mine))

	result, err := NewCalendarService(me.assignments, testutil.NewTestUoW(me.db)).ImportShareCode(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Added, 1)
	assert.Equal(t, "Reading log", result.Added[0].Title)

	all, err := me.assignments.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "problem SET", all[0].Title)
}

func TestCalendarService_ImportReassignsCollidingIDs(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	mine := testutil.NewTestAssignment("Mine")
	require.NoError(t, r.assignments.Create(ctx, mine))

	other := *mine
	other.Title = "Theirs"
	code, err := calendar.EncodeShareCode([]*domain.Assignment{&other})
	require.NoError(t, err)

	result, err := NewCalendarService(r.assignments, testutil.NewTestUoW(r.db)).ImportShareCode(ctx, code)
	require.NoError(t, err)
	require.Len(t, result.Added, 1)
	assert.NotEqual(t, mine.ID, result.Added[0].ID)
}

func TestCalendarService_ImportInvalidCode(t *testing.T) {
	r := setupRepos(t)
	svc := NewCalendarService(r.assignments, testutil.NewTestUoW(r.db))

	_, err := svc.ImportShareCode(context.Background(), "definitely not base64!")
	assert.ErrorIs(t, err, calendar.ErrInvalidShareCode)
}
