package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/MrMafora/Snap-Lotto-sub006/domain/entities"

	"github.com/jackc/pgx/v5"
)

// LotteryDrawRepository implements official draw data access
type LotteryDrawRepository struct {
	q Queryable
}

// NewLotteryDrawRepository creates a new lottery draw repository
func NewLotteryDrawRepository(q Queryable) *LotteryDrawRepository {
	return &LotteryDrawRepository{q: q}
}

const drawColumns = `id, game_type, draw_number, draw_date, winning_numbers, bonus_number, created_at`

// Upsert inserts a draw or updates an existing (game_type, draw_number) row.
// Corrections republished by the operator overwrite the stored numbers.
func (r *LotteryDrawRepository) Upsert(ctx context.Context, draw *entities.LotteryDraw) (*entities.LotteryDraw, error) {
	query := `
		INSERT INTO lottery_draws (game_type, draw_number, draw_date, winning_numbers, bonus_number)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (game_type, draw_number) DO UPDATE
		SET draw_date = EXCLUDED.draw_date,
		    winning_numbers = EXCLUDED.winning_numbers,
		    bonus_number = EXCLUDED.bonus_number
		RETURNING ` + drawColumns

	var stored entities.LotteryDraw
	err := r.q.QueryRow(ctx, query,
		draw.GameType,
		draw.DrawNumber,
		draw.DrawDate,
		draw.WinningNumbers,
		draw.BonusNumber,
	).Scan(
		&stored.ID,
		&stored.GameType,
		&stored.DrawNumber,
		&stored.DrawDate,
		&stored.WinningNumbers,
		&stored.BonusNumber,
		&stored.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert draw %d for %s: %w", draw.DrawNumber, draw.GameType, err)
	}

	return &stored, nil
}

// GetByDrawNumber retrieves a draw by game variant and draw number
func (r *LotteryDrawRepository) GetByDrawNumber(ctx context.Context, game entities.GameType, drawNumber int64) (*entities.LotteryDraw, error) {
	query := `
		SELECT ` + drawColumns + `
		FROM lottery_draws
		WHERE game_type = $1
		  AND draw_number = $2
	`

	var draw entities.LotteryDraw
	err := r.q.QueryRow(ctx, query, game, drawNumber).Scan(
		&draw.ID,
		&draw.GameType,
		&draw.DrawNumber,
		&draw.DrawDate,
		&draw.WinningNumbers,
		&draw.BonusNumber,
		&draw.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draw %d for %s: %w", drawNumber, game, err)
	}

	return &draw, nil
}

// GetLatest returns the most recent draw for a variant, draw number breaking
// ties between draws published on the same date
func (r *LotteryDrawRepository) GetLatest(ctx context.Context, game entities.GameType) (*entities.LotteryDraw, error) {
	query := `
		SELECT ` + drawColumns + `
		FROM lottery_draws
		WHERE game_type = $1
		ORDER BY draw_date DESC, draw_number DESC
		LIMIT 1
	`

	var draw entities.LotteryDraw
	err := r.q.QueryRow(ctx, query, game).Scan(
		&draw.ID,
		&draw.GameType,
		&draw.DrawNumber,
		&draw.DrawDate,
		&draw.WinningNumbers,
		&draw.BonusNumber,
		&draw.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest draw for %s: %w", game, err)
	}

	return &draw, nil
}

// GetByDateRange returns draws within [from, to] ordered by draw date then
// draw number. GameTypeUnknown selects all variants.
func (r *LotteryDrawRepository) GetByDateRange(ctx context.Context, game entities.GameType, from, to time.Time) ([]*entities.LotteryDraw, error) {
	query := `
		SELECT ` + drawColumns + `
		FROM lottery_draws
		WHERE ($1 = '` + string(entities.GameTypeUnknown) + `' OR game_type = $1)
		  AND draw_date >= $2
		  AND draw_date <= $3
		ORDER BY draw_date ASC, draw_number ASC
	`

	rows, err := r.q.Query(ctx, query, game, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get draws in date range for %s: %w", game, err)
	}
	defer rows.Close()

	var draws []*entities.LotteryDraw
	for rows.Next() {
		var draw entities.LotteryDraw
		err := rows.Scan(
			&draw.ID,
			&draw.GameType,
			&draw.DrawNumber,
			&draw.DrawDate,
			&draw.WinningNumbers,
			&draw.BonusNumber,
			&draw.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan draw: %w", err)
		}
		draws = append(draws, &draw)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate draws: %w", err)
	}

	return draws, nil
}
