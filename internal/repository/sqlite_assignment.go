package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/studysync/internal/db"
	"github.com/alexanderramin/studysync/internal/domain"
)

const assignmentColumns = `id, title, course, due, effort_hours, status,
		remind_24h, remind_6h, remind_1h, plan_json, created_at, updated_at`

// SQLiteAssignmentRepo implements AssignmentRepo.
type SQLiteAssignmentRepo struct {
	db db.DBTX
}

func NewSQLiteAssignmentRepo(conn db.DBTX) *SQLiteAssignmentRepo {
	return &SQLiteAssignmentRepo{db: conn}
}

func (r *SQLiteAssignmentRepo) Create(ctx context.Context, a *domain.Assignment) error {
	planJSON, err := encodePlan(a.Plan)
	if err != nil {
		return err
	}
	query := `INSERT INTO assignments (` + assignmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		a.ID,
		a.Title,
		a.Course,
		formatTime(a.Due),
		a.EffortHours,
		string(a.Status),
		boolToInt(a.Reminders.H24),
		boolToInt(a.Reminders.H6),
		boolToInt(a.Reminders.H1),
		planJSON,
		formatTime(a.CreatedAt),
		formatTime(a.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting assignment: %w", err)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) GetByID(ctx context.Context, id string) (*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = ?`
	a, err := scanAssignment(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("assignment %s: %w", id, ErrNotFound)
	}
	return a, err
}

func (r *SQLiteAssignmentRepo) List(ctx context.Context) ([]*domain.Assignment, error) {
	return r.list(ctx, `SELECT `+assignmentColumns+` FROM assignments ORDER BY due, created_at, rowid`)
}

func (r *SQLiteAssignmentRepo) ListOpen(ctx context.Context) ([]*domain.Assignment, error) {
	return r.list(ctx, `SELECT `+assignmentColumns+` FROM assignments
		WHERE status != 'submitted' ORDER BY due, created_at, rowid`)
}

func (r *SQLiteAssignmentRepo) list(ctx context.Context, query string) ([]*domain.Assignment, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	defer rows.Close()

	var out []*domain.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignments: %w", err)
	}
	return out, nil
}

func (r *SQLiteAssignmentRepo) Update(ctx context.Context, a *domain.Assignment) error {
	planJSON, err := encodePlan(a.Plan)
	if err != nil {
		return err
	}
	query := `UPDATE assignments SET title = ?, course = ?, due = ?, effort_hours = ?, status = ?,
		remind_24h = ?, remind_6h = ?, remind_1h = ?, plan_json = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		a.Title,
		a.Course,
		formatTime(a.Due),
		a.EffortHours,
		string(a.Status),
		boolToInt(a.Reminders.H24),
		boolToInt(a.Reminders.H6),
		boolToInt(a.Reminders.H1),
		planJSON,
		formatTime(a.UpdatedAt),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating assignment: %w", err)
	}
	return requireAffected(res, "assignment "+a.ID)
}

func (r *SQLiteAssignmentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assignments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting assignment: %w", err)
	}
	return requireAffected(res, "assignment "+id)
}

func scanAssignment(row rowScanner) (*domain.Assignment, error) {
	var (
		a                     domain.Assignment
		due, created, updated string
		status                string
		r24, r6, r1           int
		planJSON              sql.NullString
	)
	err := row.Scan(&a.ID, &a.Title, &a.Course, &due, &a.EffortHours, &status,
		&r24, &r6, &r1, &planJSON, &created, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning assignment: %w", err)
	}

	a.Status = domain.AssignmentStatus(status)
	a.Reminders = domain.Reminders{H24: intToBool(r24), H6: intToBool(r6), H1: intToBool(r1)}
	if a.Due, err = parseTime(due, "due"); err != nil {
		return nil, err
	}
	if a.CreatedAt, err = parseTime(created, "created_at"); err != nil {
		return nil, err
	}
	if a.UpdatedAt, err = parseTime(updated, "updated_at"); err != nil {
		return nil, err
	}
	if planJSON.Valid && planJSON.String != "" {
		var plan domain.AttachedPlan
		if err := json.Unmarshal([]byte(planJSON.String), &plan); err != nil {
			return nil, fmt.Errorf("decoding plan for assignment %s: %w", a.ID, err)
		}
		a.Plan = &plan
	}
	return &a, nil
}

func encodePlan(p *domain.AttachedPlan) (any, error) {
	if p == nil {
		return nil, nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding attached plan: %w", err)
	}
	return nullableString(string(b)), nil
}
