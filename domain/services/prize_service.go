package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrMafora/Snap-Lotto-sub006/domain/entities"
	"github.com/MrMafora/Snap-Lotto-sub006/domain/interfaces"
	"github.com/MrMafora/Snap-Lotto-sub006/events"

	log "github.com/sirupsen/logrus"
)

// ErrDrawNotFound is returned when a ticket references a draw that is not in
// the store and no fallback draw exists for the variant.
var ErrDrawNotFound = errors.New("draw not found")

// prizeService implements ticket evaluation and prize division resolution
type prizeService struct {
	drawRepo     interfaces.LotteryDrawRepository
	divisionRepo interfaces.DivisionRepository
	publisher    events.Publisher
}

// NewPrizeService creates a new prize service
func NewPrizeService(
	drawRepo interfaces.LotteryDrawRepository,
	divisionRepo interfaces.DivisionRepository,
	publisher events.Publisher,
) interfaces.PrizeService {
	return &prizeService{
		drawRepo:     drawRepo,
		divisionRepo: divisionRepo,
		publisher:    publisher,
	}
}

// EvaluateMatch counts how many scanned numbers appear in the draw's winning
// set. Scanned input is OCR output and fully untrusted: duplicates are
// collapsed before counting and out-of-range values are left in (they cannot
// match a valid winning number, so they are harmless noise). A draw whose
// stored numbers do not match the variant's expected shape still evaluates,
// but the result is flagged low-confidence.
func (s *prizeService) EvaluateMatch(scanned []int, scannedBonus *int, draw *entities.LotteryDraw) entities.MatchResult {
	winning := make(map[int]bool, len(draw.WinningNumbers))
	for _, n := range draw.WinningNumbers {
		winning[n] = true
	}

	matchCount := 0
	seen := make(map[int]bool, len(scanned))
	for _, n := range scanned {
		if seen[n] {
			continue
		}
		seen[n] = true
		if winning[n] {
			matchCount++
		}
	}

	bonusMatch := scannedBonus != nil &&
		draw.BonusNumber != nil &&
		*scannedBonus == *draw.BonusNumber

	return entities.MatchResult{
		MatchCount:    matchCount,
		BonusMatch:    bonusMatch,
		LowConfidence: !draw.HasExpectedNumbers() || !draw.HasRequiredBonus(),
	}
}

// ResolveDivision walks the variant's divisions from the jackpot down and
// stops at the first requirement the match satisfies. A division that
// requires the bonus is skipped when the bonus did not match, which is how a
// "5 correct" board lands in division 3 rather than division 2. At most one
// division is ever awarded per board.
func (s *prizeService) ResolveDivision(game entities.GameType, match entities.MatchResult, table *entities.DivisionTable) *entities.PrizeResult {
	rules := entities.RulesFor(game)
	if rules == nil {
		return &entities.PrizeResult{
			Outcome:    entities.PrizeOutcomeUnknownGame,
			GameType:   entities.GameTypeUnknown,
			MatchCount: match.MatchCount,
			BonusMatch: match.BonusMatch,
		}
	}

	result := &entities.PrizeResult{
		Outcome:       entities.PrizeOutcomeNoPrize,
		GameType:      game,
		MatchCount:    match.MatchCount,
		BonusMatch:    match.BonusMatch,
		LowConfidence: match.LowConfidence,
	}
	if match.LowConfidence {
		result.Notes = append(result.Notes, "draw record is malformed; prize derived on a best-effort basis")
	}

	for _, req := range rules.Divisions {
		if match.MatchCount != req.MatchCount {
			continue
		}
		if req.RequiresBonus && !match.BonusMatch {
			continue
		}

		result.Outcome = entities.PrizeOutcomeWin
		result.Division = req.Division
		result.Description = req.Description

		if row := table.RowFor(req.Division); row != nil {
			result.PayoutCents = row.PayoutCents
			result.PayoutKnown = true
		} else {
			result.Notes = append(result.Notes,
				fmt.Sprintf("division %d payout not published for this draw", req.Division))
		}
		break
	}

	return result
}

// CheckTicket evaluates one scanned ticket end-to-end: variant resolution,
// draw lookup, match evaluation and division resolution. Unresolvable game
// text is a tagged outcome: guessing a rule set would produce silently wrong
// prize amounts, so it never happens here.
func (s *prizeService) CheckTicket(ctx context.Context, scan *entities.TicketScan) (*entities.PrizeResult, error) {
	game, err := entities.ResolveGameType(scan.GameText)
	if err != nil {
		log.WithFields(log.Fields{
			"scanId":   scan.ScanID,
			"gameText": scan.GameText,
		}).Warn("Could not resolve game variant from scan text")

		result := &entities.PrizeResult{
			Outcome:  entities.PrizeOutcomeUnknownGame,
			GameType: entities.GameTypeUnknown,
			Notes:    []string{fmt.Sprintf("game name %q did not match any known variant", scan.GameText)},
		}
		s.publishChecked(scan, result)
		return result, nil
	}

	if !scan.HasNumbers() {
		result := &entities.PrizeResult{
			Outcome:  entities.PrizeOutcomeNoNumbers,
			GameType: game,
			Notes:    []string{"no ticket numbers were recognized"},
		}
		s.publishChecked(scan, result)
		return result, nil
	}

	draw, err := s.findDraw(ctx, game, scan)
	if err != nil {
		return nil, err
	}

	table, err := s.divisionRepo.GetForDraw(ctx, draw.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get division table for draw %d: %w", draw.ID, err)
	}

	match := s.EvaluateMatch(scan.Numbers, scan.BonusNumber, draw)
	result := s.ResolveDivision(game, match, table)

	log.WithFields(log.Fields{
		"scanId":     scan.ScanID,
		"gameType":   game,
		"drawNumber": draw.DrawNumber,
		"matchCount": match.MatchCount,
		"bonusMatch": match.BonusMatch,
		"outcome":    result.Outcome,
		"division":   result.Division,
	}).Info("Ticket checked")

	s.publishChecked(scan, result)
	return result, nil
}

// findDraw locates the draw the scan refers to: the claimed draw number when
// legible, otherwise the latest stored draw for the variant.
func (s *prizeService) findDraw(ctx context.Context, game entities.GameType, scan *entities.TicketScan) (*entities.LotteryDraw, error) {
	if scan.DrawNumber != nil {
		draw, err := s.drawRepo.GetByDrawNumber(ctx, game, *scan.DrawNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to get draw %d for %s: %w", *scan.DrawNumber, game, err)
		}
		if draw != nil {
			return draw, nil
		}
		log.WithFields(log.Fields{
			"gameType":   game,
			"drawNumber": *scan.DrawNumber,
		}).Warn("Claimed draw not found, falling back to latest")
	}

	draw, err := s.drawRepo.GetLatest(ctx, game)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest draw for %s: %w", game, err)
	}
	if draw == nil {
		return nil, fmt.Errorf("no draws stored for %s: %w", game, ErrDrawNotFound)
	}
	return draw, nil
}

func (s *prizeService) publishChecked(scan *entities.TicketScan, result *entities.PrizeResult) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(events.TicketCheckedEvent{
		ScanID:     scan.ScanID,
		GameType:   result.GameType,
		Outcome:    result.Outcome,
		Division:   result.Division,
		MatchCount: result.MatchCount,
	}); err != nil {
		log.WithError(err).Warn("Failed to publish ticket checked event")
	}
}
