package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/studysync/internal/repository"
	"github.com/alexanderramin/studysync/internal/testutil"
)

// monday0800 is a Monday morning used as a fixed "now".
var monday0800 = time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC)

type testRepos struct {
	db          *sql.DB
	assignments *repository.SQLiteAssignmentRepo
	tasks       *repository.SQLiteChecklistRepo
	sessions    *repository.SQLiteTimetableRepo
	blocks      *repository.SQLitePlanBlockRepo
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		db:          database,
		assignments: repository.NewSQLiteAssignmentRepo(database),
		tasks:       repository.NewSQLiteChecklistRepo(database),
		sessions:    repository.NewSQLiteTimetableRepo(database),
		blocks:      repository.NewSQLitePlanBlockRepo(database),
	}
}

func ptr[T any](v T) *T { return &v }
