package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/studysync/internal/db"
	"github.com/alexanderramin/studysync/internal/domain"
)

const checklistColumns = `id, text, done, created_at, updated_at`

type SQLiteChecklistRepo struct {
	db db.DBTX
}

func NewSQLiteChecklistRepo(conn db.DBTX) *SQLiteChecklistRepo {
	return &SQLiteChecklistRepo{db: conn}
}

func (r *SQLiteChecklistRepo) Create(ctx context.Context, t *domain.ChecklistTask) error {
	query := `INSERT INTO checklist_tasks (` + checklistColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Text, boolToInt(t.Done), formatTime(t.CreatedAt), formatTime(t.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting checklist task: %w", err)
	}
	return nil
}

func (r *SQLiteChecklistRepo) GetByID(ctx context.Context, id string) (*domain.ChecklistTask, error) {
	query := `SELECT ` + checklistColumns + ` FROM checklist_tasks WHERE id = ?`
	t, err := scanChecklistTask(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("checklist task %s: %w", id, ErrNotFound)
	}
	return t, err
}

func (r *SQLiteChecklistRepo) List(ctx context.Context) ([]*domain.ChecklistTask, error) {
	query := `SELECT ` + checklistColumns + ` FROM checklist_tasks ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing checklist tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.ChecklistTask
	for rows.Next() {
		t, err := scanChecklistTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *SQLiteChecklistRepo) Update(ctx context.Context, t *domain.ChecklistTask) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE checklist_tasks SET text = ?, done = ?, updated_at = ? WHERE id = ?`,
		t.Text, boolToInt(t.Done), formatTime(t.UpdatedAt), t.ID)
	if err != nil {
		return fmt.Errorf("updating checklist task: %w", err)
	}
	return requireAffected(res, "checklist task "+t.ID)
}

func (r *SQLiteChecklistRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM checklist_tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting checklist task: %w", err)
	}
	return requireAffected(res, "checklist task "+id)
}

func (r *SQLiteChecklistRepo) DeleteDone(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM checklist_tasks WHERE done = 1`)
	if err != nil {
		return 0, fmt.Errorf("clearing done tasks: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clearing done tasks: %w", err)
	}
	return int(n), nil
}

func scanChecklistTask(row rowScanner) (*domain.ChecklistTask, error) {
	var (
		t                domain.ChecklistTask
		done             int
		created, updated string
	)
	if err := row.Scan(&t.ID, &t.Text, &done, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning checklist task: %w", err)
	}
	t.Done = intToBool(done)
	var err error
	if t.CreatedAt, err = parseTime(created, "created_at"); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = parseTime(updated, "updated_at"); err != nil {
		return nil, err
	}
	return &t, nil
}
