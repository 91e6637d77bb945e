package interfaces

import (
	"context"
	"time"

	"github.com/MrMafora/Snap-Lotto-sub006/domain/entities"
)

// LotteryDrawRepository defines the interface for official draw data access
type LotteryDrawRepository interface {
	// Upsert inserts a draw or updates a correction of an existing
	// (game_type, draw_number) row, returning the stored entity
	Upsert(ctx context.Context, draw *entities.LotteryDraw) (*entities.LotteryDraw, error)

	// GetByDrawNumber retrieves a draw by game variant and draw number;
	// returns nil when no such draw exists
	GetByDrawNumber(ctx context.Context, game entities.GameType, drawNumber int64) (*entities.LotteryDraw, error)

	// GetLatest returns the most recent draw for a variant by draw date,
	// draw number as tie-break; nil when the variant has no draws
	GetLatest(ctx context.Context, game entities.GameType) (*entities.LotteryDraw, error)

	// GetByDateRange returns draws for a variant within [from, to] ordered by
	// draw date then draw number ascending. GameTypeUnknown selects all
	// variants.
	GetByDateRange(ctx context.Context, game entities.GameType, from, to time.Time) ([]*entities.LotteryDraw, error)
}

// DivisionRepository defines the interface for per-draw division table access
type DivisionRepository interface {
	// ReplaceForDraw atomically replaces the published division rows of a draw
	ReplaceForDraw(ctx context.Context, drawID int64, rows []entities.DivisionRow) error

	// GetForDraw returns the division table for a draw, empty when none
	// has been published
	GetForDraw(ctx context.Context, drawID int64) (*entities.DivisionTable, error)
}
