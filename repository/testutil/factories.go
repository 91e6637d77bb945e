package testutil

import (
	"time"

	"github.com/MrMafora/Snap-Lotto-sub006/domain/entities"
)

// CreateTestDraw creates a lotto draw with default values
func CreateTestDraw(drawNumber int64) *entities.LotteryDraw {
	bonus := 7
	return &entities.LotteryDraw{
		GameType:       entities.GameTypeLotto,
		DrawNumber:     drawNumber,
		DrawDate:       time.Date(2025, 6, 7, 20, 0, 0, 0, time.UTC),
		WinningNumbers: []int{3, 12, 19, 27, 34, 41},
		BonusNumber:    &bonus,
	}
}

// CreateTestDrawForGame creates a draw for a specific game variant
func CreateTestDrawForGame(game entities.GameType, drawNumber int64, date time.Time) *entities.LotteryDraw {
	draw := CreateTestDraw(drawNumber)
	draw.GameType = game
	draw.DrawDate = date

	switch game {
	case entities.GameTypePowerball, entities.GameTypePowerballPlus:
		bonus := 11
		draw.WinningNumbers = []int{5, 14, 23, 32, 47}
		draw.BonusNumber = &bonus
	case entities.GameTypeDailyLotto:
		draw.WinningNumbers = []int{2, 9, 16, 23, 30}
		draw.BonusNumber = nil
	}

	return draw
}

// CreateTestDivisionRows creates a lotto division table for a stored draw
func CreateTestDivisionRows(drawID int64) []entities.DivisionRow {
	return []entities.DivisionRow{
		{DrawID: drawID, Division: 1, Requirement: "SIX CORRECT NUMBERS", Winners: 0, PayoutCents: 0},
		{DrawID: drawID, Division: 2, Requirement: "FIVE CORRECT NUMBERS + BONUS BALL", Winners: 1, PayoutCents: 18546320},
		{DrawID: drawID, Division: 3, Requirement: "FIVE CORRECT NUMBERS", Winners: 28, PayoutCents: 654210},
		{DrawID: drawID, Division: 4, Requirement: "FOUR CORRECT NUMBERS + BONUS BALL", Winners: 71, PayoutCents: 225480},
	}
}
