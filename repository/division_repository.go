package repository

import (
	"context"
	"fmt"

	"github.com/MrMafora/Snap-Lotto-sub006/domain/entities"
)

// DivisionRepository implements per-draw division table data access
type DivisionRepository struct {
	q Queryable
}

// NewDivisionRepository creates a new division repository
func NewDivisionRepository(q Queryable) *DivisionRepository {
	return &DivisionRepository{q: q}
}

// ReplaceForDraw replaces the published division rows of a draw. The operator
// republishes whole tables, so partial updates are never needed.
func (r *DivisionRepository) ReplaceForDraw(ctx context.Context, drawID int64, rows []entities.DivisionRow) error {
	deleteQuery := `DELETE FROM draw_divisions WHERE draw_id = $1`
	if _, err := r.q.Exec(ctx, deleteQuery, drawID); err != nil {
		return fmt.Errorf("failed to clear division rows for draw %d: %w", drawID, err)
	}

	insertQuery := `
		INSERT INTO draw_divisions (draw_id, division, requirement, winners, payout_cents)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, row := range rows {
		_, err := r.q.Exec(ctx, insertQuery,
			drawID,
			row.Division,
			row.Requirement,
			row.Winners,
			row.PayoutCents,
		)
		if err != nil {
			return fmt.Errorf("failed to insert division %d for draw %d: %w", row.Division, drawID, err)
		}
	}

	return nil
}

// GetForDraw returns the division table for a draw, empty when none has been
// published
func (r *DivisionRepository) GetForDraw(ctx context.Context, drawID int64) (*entities.DivisionTable, error) {
	query := `
		SELECT draw_id, division, requirement, winners, payout_cents
		FROM draw_divisions
		WHERE draw_id = $1
		ORDER BY division ASC
	`

	rows, err := r.q.Query(ctx, query, drawID)
	if err != nil {
		return nil, fmt.Errorf("failed to get division rows for draw %d: %w", drawID, err)
	}
	defer rows.Close()

	table := &entities.DivisionTable{DrawID: drawID}
	for rows.Next() {
		var row entities.DivisionRow
		err := rows.Scan(
			&row.DrawID,
			&row.Division,
			&row.Requirement,
			&row.Winners,
			&row.PayoutCents,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan division row: %w", err)
		}
		table.Rows = append(table.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate division rows: %w", err)
	}

	return table, nil
}
