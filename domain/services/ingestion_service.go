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

// ErrInvalidDrawRecord is returned for records too corrupt to store at all.
// Soft data-quality findings do not use this; they are published as events
// and the import proceeds.
var ErrInvalidDrawRecord = errors.New("invalid draw record")

// ingestionService validates and persists draw results captured by the
// scraping collaborator
type ingestionService struct {
	drawRepo     interfaces.LotteryDrawRepository
	divisionRepo interfaces.DivisionRepository
	publisher    events.Publisher
}

// NewIngestionService creates a new ingestion service
func NewIngestionService(
	drawRepo interfaces.LotteryDrawRepository,
	divisionRepo interfaces.DivisionRepository,
	publisher events.Publisher,
) interfaces.IngestionService {
	return &ingestionService{
		drawRepo:     drawRepo,
		divisionRepo: divisionRepo,
		publisher:    publisher,
	}
}

// ImportDraw stores one captured draw. Unresolvable game text, a missing
// draw number or an empty winning set reject the record; structural oddities
// that still leave a usable draw (wrong number count, missing bonus) are
// flagged as data-quality events and stored as-is so the evaluator can apply
// its low-confidence handling.
func (s *ingestionService) ImportDraw(ctx context.Context, record interfaces.DrawRecord) (*entities.LotteryDraw, error) {
	game, err := entities.ResolveGameType(record.GameText)
	if err != nil {
		return nil, fmt.Errorf("cannot import draw with game name %q: %w", record.GameText, ErrInvalidDrawRecord)
	}
	if record.DrawNumber <= 0 {
		return nil, fmt.Errorf("draw number must be positive: %w", ErrInvalidDrawRecord)
	}
	if len(record.WinningNumbers) == 0 {
		return nil, fmt.Errorf("draw %d has no winning numbers: %w", record.DrawNumber, ErrInvalidDrawRecord)
	}
	if record.DrawDate.IsZero() {
		return nil, fmt.Errorf("draw %d has no draw date: %w", record.DrawNumber, ErrInvalidDrawRecord)
	}

	draw := &entities.LotteryDraw{
		GameType:       game,
		DrawNumber:     record.DrawNumber,
		DrawDate:       record.DrawDate.UTC(),
		WinningNumbers: record.WinningNumbers,
		BonusNumber:    record.BonusNumber,
	}

	for _, finding := range s.inspect(draw) {
		s.publishFinding(game, record.DrawNumber, finding)
	}

	stored, err := s.drawRepo.Upsert(ctx, draw)
	if err != nil {
		return nil, fmt.Errorf("failed to store draw %d for %s: %w", record.DrawNumber, game, err)
	}

	if len(record.Divisions) > 0 {
		rows := make([]entities.DivisionRow, 0, len(record.Divisions))
		for _, div := range record.Divisions {
			rows = append(rows, entities.DivisionRow{
				DrawID:      stored.ID,
				Division:    div.Division,
				Requirement: div.Requirement,
				Winners:     div.Winners,
				PayoutCents: div.PayoutCents,
			})
		}
		if err := s.divisionRepo.ReplaceForDraw(ctx, stored.ID, rows); err != nil {
			return nil, fmt.Errorf("failed to store division table for draw %d: %w", stored.ID, err)
		}
	} else {
		s.publishFinding(game, record.DrawNumber, "no division table supplied with draw")
	}

	log.WithFields(log.Fields{
		"gameType":   game,
		"drawNumber": stored.DrawNumber,
		"drawDate":   stored.DrawDate.Format("2006-01-02"),
		"numbers":    len(stored.WinningNumbers),
		"divisions":  len(record.Divisions),
	}).Info("Draw imported")

	if s.publisher != nil {
		if err := s.publisher.Publish(events.DrawImportedEvent{
			DrawID:      stored.ID,
			GameType:    game,
			DrawNumber:  stored.DrawNumber,
			DrawDate:    stored.DrawDate,
			NumberCount: len(stored.WinningNumbers),
			HasBonus:    stored.BonusNumber != nil,
		}); err != nil {
			log.WithError(err).Warn("Failed to publish draw imported event")
		}
	}

	return stored, nil
}

// inspect reports soft data-quality findings on a draw about to be stored.
func (s *ingestionService) inspect(draw *entities.LotteryDraw) []string {
	rules := entities.RulesFor(draw.GameType)
	if rules == nil {
		return nil
	}

	var findings []string
	if len(draw.WinningNumbers) != rules.MainCount {
		findings = append(findings, fmt.Sprintf("expected %d winning numbers, got %d",
			rules.MainCount, len(draw.WinningNumbers)))
	}
	if rules.HasBonus && draw.BonusNumber == nil {
		findings = append(findings, "bonus number missing for a variant that requires one")
	}
	if !rules.HasBonus && draw.BonusNumber != nil {
		findings = append(findings, "bonus number supplied for a variant without one")
	}

	seen := make(map[int]bool, len(draw.WinningNumbers))
	for _, n := range draw.WinningNumbers {
		if seen[n] {
			findings = append(findings, fmt.Sprintf("duplicate winning number %d", n))
		}
		seen[n] = true
		if !rules.InRange(n) {
			findings = append(findings, fmt.Sprintf("winning number %d outside range %d-%d",
				n, rules.MinNumber, rules.MaxNumber))
		}
	}
	return findings
}

func (s *ingestionService) publishFinding(game entities.GameType, drawNumber int64, finding string) {
	log.WithFields(log.Fields{
		"gameType":   game,
		"drawNumber": drawNumber,
		"finding":    finding,
	}).Warn("Draw data-quality finding")

	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(events.DataQualityEvent{
		GameType:   game,
		DrawNumber: drawNumber,
		Finding:    finding,
	}); err != nil {
		log.WithError(err).Warn("Failed to publish data-quality event")
	}
}
