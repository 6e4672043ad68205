package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/studysync/internal/db"
	"github.com/alexanderramin/studysync/internal/domain"
)

const timetableColumns = `id, day, start_min, end_min, focus, created_at`

type SQLiteTimetableRepo struct {
	db db.DBTX
}

func NewSQLiteTimetableRepo(conn db.DBTX) *SQLiteTimetableRepo {
	return &SQLiteTimetableRepo{db: conn}
}

func (r *SQLiteTimetableRepo) Create(ctx context.Context, s *domain.TimetableSession) error {
	query := `INSERT INTO timetable_sessions (` + timetableColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, int(s.Day), int(s.Start), int(s.End), s.Focus, formatTime(s.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting timetable session: %w", err)
	}
	return nil
}

func (r *SQLiteTimetableRepo) List(ctx context.Context) ([]*domain.TimetableSession, error) {
	query := `SELECT ` + timetableColumns + ` FROM timetable_sessions ORDER BY day, start_min, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing timetable sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.TimetableSession
	for rows.Next() {
		var (
			s               domain.TimetableSession
			day, start, end int
			created         string
		)
		if err := rows.Scan(&s.ID, &day, &start, &end, &s.Focus, &created); err != nil {
			return nil, fmt.Errorf("scanning timetable session: %w", err)
		}
		s.Day = domain.Weekday(day)
		s.Start = domain.Clock(start)
		s.End = domain.Clock(end)
		createdAt, err := parseTime(created, "created_at")
		if err != nil {
			return nil, err
		}
		s.CreatedAt = createdAt
		sessions = append(sessions, &s)
	}
	return sessions, rows.Err()
}

func (r *SQLiteTimetableRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM timetable_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting timetable session: %w", err)
	}
	return requireAffected(res, "timetable session "+id)
}
