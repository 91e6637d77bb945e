package interfaces

import (
	"context"
	"time"

	"github.com/MrMafora/Snap-Lotto-sub006/domain/entities"
)

// PrizeService evaluates scanned tickets against stored draws
type PrizeService interface {
	// EvaluateMatch compares scanned numbers against winning numbers.
	// Pure computation; scanned input may be noisy, winning input comes
	// from a stored draw.
	EvaluateMatch(scanned []int, scannedBonus *int, draw *entities.LotteryDraw) entities.MatchResult

	// CheckTicket resolves the scan's game variant, finds the referenced
	// draw (claimed draw number, falling back to the latest draw), and
	// resolves the prize division. Data-quality conditions come back as
	// tagged outcomes, not errors.
	CheckTicket(ctx context.Context, scan *entities.TicketScan) (*entities.PrizeResult, error)

	// ResolveDivision maps a match result onto the variant's division table
	// and the draw's published payouts. Exposed separately so callers with
	// draw data already in hand can skip the lookup.
	ResolveDivision(game entities.GameType, match entities.MatchResult, table *entities.DivisionTable) *entities.PrizeResult
}

// AnalysisService produces descriptive statistics over historical draws
type AnalysisService interface {
	// BuildSnapshot computes the four analyses over draws of the given
	// variant (GameTypeUnknown = all variants) within the trailing
	// day-range. Each sub-analysis carries its own status; the returned
	// error is reserved for storage failures.
	BuildSnapshot(ctx context.Context, game entities.GameType, days int) (*entities.AnalysisSnapshot, error)
}

// DivisionRecord is one division row as supplied by the ingestion collaborator
type DivisionRecord struct {
	Division    int
	Requirement string
	Winners     int
	PayoutCents int64
}

// DrawRecord is a parsed draw as handed over by the scraping/ingestion
// collaborator: free-text game name, numbers, and the published division
// breakdown
type DrawRecord struct {
	GameText       string
	DrawNumber     int64
	DrawDate       time.Time
	WinningNumbers []int
	BonusNumber    *int
	Divisions      []DivisionRecord
}

// IngestionService validates and persists externally captured draw results
type IngestionService interface {
	// ImportDraw resolves the variant, validates the record, upserts the
	// draw and its division table, and publishes a DrawImportedEvent.
	// Hard corruption (unknown variant, no numbers) is an error; soft
	// data-quality findings are published as events and do not fail the
	// import.
	ImportDraw(ctx context.Context, record DrawRecord) (*entities.LotteryDraw, error)
}
