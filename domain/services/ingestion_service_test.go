package services

import (
	"context"
	"testing"
	"time"

	"github.com/MrMafora/Snap-Lotto-sub006/domain/entities"
	"github.com/MrMafora/Snap-Lotto-sub006/domain/interfaces"
	"github.com/MrMafora/Snap-Lotto-sub006/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validLottoRecord() interfaces.DrawRecord {
	return interfaces.DrawRecord{
		GameText:       "Lotto",
		DrawNumber:     2470,
		DrawDate:       time.Date(2025, 6, 7, 20, 0, 0, 0, time.UTC),
		WinningNumbers: []int{3, 12, 19, 27, 34, 41},
		BonusNumber:    intPtr(7),
		Divisions: []interfaces.DivisionRecord{
			{Division: 1, Requirement: "SIX CORRECT NUMBERS", Winners: 0, PayoutCents: 0},
			{Division: 2, Requirement: "FIVE CORRECT NUMBERS + BONUS BALL", Winners: 1, PayoutCents: 18546320},
		},
	}
}

func TestIngestionService_ImportDraw_Success(t *testing.T) {
	t.Parallel()

	drawRepo, divisionRepo, publisher := setupPrizeServiceMocks()
	service := NewIngestionService(drawRepo, divisionRepo, publisher)

	record := validLottoRecord()
	stored := &entities.LotteryDraw{
		ID:             42,
		GameType:       entities.GameTypeLotto,
		DrawNumber:     record.DrawNumber,
		DrawDate:       record.DrawDate,
		WinningNumbers: record.WinningNumbers,
		BonusNumber:    record.BonusNumber,
	}

	drawRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(d *entities.LotteryDraw) bool {
		return d.GameType == entities.GameTypeLotto && d.DrawNumber == 2470
	})).Return(stored, nil)
	divisionRepo.On("ReplaceForDraw", mock.Anything, int64(42), mock.MatchedBy(func(rows []entities.DivisionRow) bool {
		return len(rows) == 2 && rows[0].DrawID == 42
	})).Return(nil)
	publisher.On("Publish", mock.AnythingOfType("events.DrawImportedEvent")).Return(nil)

	draw, err := service.ImportDraw(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, int64(42), draw.ID)

	drawRepo.AssertExpectations(t)
	divisionRepo.AssertExpectations(t)
	publisher.AssertCalled(t, "Publish", mock.AnythingOfType("events.DrawImportedEvent"))
}

func TestIngestionService_ImportDraw_RejectsCorruptRecords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*interfaces.DrawRecord)
	}{
		{
			name:   "unknown game name",
			mutate: func(r *interfaces.DrawRecord) { r.GameText = "Unknown Game XYZ" },
		},
		{
			name:   "zero draw number",
			mutate: func(r *interfaces.DrawRecord) { r.DrawNumber = 0 },
		},
		{
			name:   "no winning numbers",
			mutate: func(r *interfaces.DrawRecord) { r.WinningNumbers = nil },
		},
		{
			name:   "missing draw date",
			mutate: func(r *interfaces.DrawRecord) { r.DrawDate = time.Time{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			drawRepo, divisionRepo, publisher := setupPrizeServiceMocks()
			service := NewIngestionService(drawRepo, divisionRepo, publisher)

			record := validLottoRecord()
			tt.mutate(&record)

			draw, err := service.ImportDraw(context.Background(), record)
			assert.Nil(t, draw)
			assert.ErrorIs(t, err, ErrInvalidDrawRecord)
			drawRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		})
	}
}

func TestIngestionService_ImportDraw_SoftFindingsDoNotFail(t *testing.T) {
	t.Parallel()

	drawRepo, divisionRepo, publisher := setupPrizeServiceMocks()
	service := NewIngestionService(drawRepo, divisionRepo, publisher)

	// Five numbers where lotto expects six, and no bonus: stored anyway,
	// with data-quality events published for each finding.
	record := validLottoRecord()
	record.WinningNumbers = []int{3, 12, 19, 27, 34}
	record.BonusNumber = nil

	stored := &entities.LotteryDraw{ID: 43, GameType: entities.GameTypeLotto, DrawNumber: 2470}
	drawRepo.On("Upsert", mock.Anything, mock.Anything).Return(stored, nil)
	divisionRepo.On("ReplaceForDraw", mock.Anything, int64(43), mock.Anything).Return(nil)
	publisher.On("Publish", mock.Anything).Return(nil)

	draw, err := service.ImportDraw(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, int64(43), draw.ID)

	qualityEvents := 0
	for _, call := range publisher.Calls {
		if _, ok := call.Arguments.Get(0).(events.DataQualityEvent); ok {
			qualityEvents++
		}
	}
	assert.Equal(t, 2, qualityEvents, "short number set and missing bonus are separate findings")
}

func TestIngestionService_ImportDraw_MissingDivisionTableIsAFinding(t *testing.T) {
	t.Parallel()

	drawRepo, divisionRepo, publisher := setupPrizeServiceMocks()
	service := NewIngestionService(drawRepo, divisionRepo, publisher)

	record := validLottoRecord()
	record.Divisions = nil

	stored := &entities.LotteryDraw{ID: 44, GameType: entities.GameTypeLotto, DrawNumber: 2470}
	drawRepo.On("Upsert", mock.Anything, mock.Anything).Return(stored, nil)
	publisher.On("Publish", mock.Anything).Return(nil)

	_, err := service.ImportDraw(context.Background(), record)
	require.NoError(t, err)

	divisionRepo.AssertNotCalled(t, "ReplaceForDraw", mock.Anything, mock.Anything, mock.Anything)

	found := false
	for _, call := range publisher.Calls {
		if ev, ok := call.Arguments.Get(0).(events.DataQualityEvent); ok {
			if ev.Finding == "no division table supplied with draw" {
				found = true
			}
		}
	}
	assert.True(t, found)
}

func TestIngestionService_ImportDraw_StorageFailure(t *testing.T) {
	t.Parallel()

	drawRepo, divisionRepo, publisher := setupPrizeServiceMocks()
	service := NewIngestionService(drawRepo, divisionRepo, publisher)
	publisher.On("Publish", mock.Anything).Return(nil)

	drawRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	draw, err := service.ImportDraw(context.Background(), validLottoRecord())
	assert.Nil(t, draw)
	assert.Error(t, err)
}
