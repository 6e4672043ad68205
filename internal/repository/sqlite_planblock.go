package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/studysync/internal/db"
	"github.com/alexanderramin/studysync/internal/domain"
)

const planBlockColumns = `id, seq, day, start_min, end_min, title, source, item_id, created_at`

type SQLitePlanBlockRepo struct {
	db db.DBTX
}

func NewSQLitePlanBlockRepo(conn db.DBTX) *SQLitePlanBlockRepo {
	return &SQLitePlanBlockRepo{db: conn}
}

func (r *SQLitePlanBlockRepo) Append(ctx context.Context, blocks []*domain.PlanBlock) error {
	if len(blocks) == 0 {
		return nil
	}
	var next int
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM plan_blocks`).Scan(&next)
	if err != nil {
		return fmt.Errorf("reading plan sequence: %w", err)
	}

	query := `INSERT INTO plan_blocks (` + planBlockColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, b := range blocks {
		next++
		b.Seq = next
		_, err := r.db.ExecContext(ctx, query,
			b.ID,
			b.Seq,
			int(b.Day),
			int(b.Start),
			int(b.End),
			b.Title,
			string(b.Source),
			b.ItemID,
			formatTime(b.CreatedAt),
		)
		if err != nil {
			return fmt.Errorf("inserting plan block %d: %w", b.Seq, err)
		}
	}
	return nil
}

func (r *SQLitePlanBlockRepo) List(ctx context.Context) ([]*domain.PlanBlock, error) {
	query := `SELECT ` + planBlockColumns + ` FROM plan_blocks ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing plan blocks: %w", err)
	}
	defer rows.Close()

	var blocks []*domain.PlanBlock
	for rows.Next() {
		var (
			b               domain.PlanBlock
			day, start, end int
			source, created string
		)
		err := rows.Scan(&b.ID, &b.Seq, &day, &start, &end, &b.Title, &source, &b.ItemID, &created)
		if err != nil {
			return nil, fmt.Errorf("scanning plan block: %w", err)
		}
		b.Day = domain.Weekday(day)
		b.Start = domain.Clock(start)
		b.End = domain.Clock(end)
		b.Source = domain.BlockSource(source)
		if b.CreatedAt, err = parseTime(created, "created_at"); err != nil {
			return nil, err
		}
		blocks = append(blocks, &b)
	}
	return blocks, rows.Err()
}

func (r *SQLitePlanBlockRepo) DeleteAll(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plan_blocks`)
	if err != nil {
		return 0, fmt.Errorf("clearing plan blocks: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clearing plan blocks: %w", err)
	}
	return int(n), nil
}
