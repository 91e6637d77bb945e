package entities

import (
	"time"
)

// LotteryDraw represents one official draw result for a game variant.
// Rows are written once by ingestion and read-only afterwards, except for
// corrections of known-bad historical entries.
type LotteryDraw struct {
	ID             int64     `db:"id"`
	GameType       GameType  `db:"game_type"`
	DrawNumber     int64     `db:"draw_number"` // unique per game variant
	DrawDate       time.Time `db:"draw_date"`
	WinningNumbers []int     `db:"winning_numbers"`
	BonusNumber    *int      `db:"bonus_number"` // nil for variants without a bonus ball
	CreatedAt      time.Time `db:"created_at"`
}

// HasExpectedNumbers reports whether the stored winning set matches the
// variant's expected main-ball count. A false result marks the draw as
// low-confidence for prize resolution.
func (d *LotteryDraw) HasExpectedNumbers() bool {
	rules := RulesFor(d.GameType)
	if rules == nil {
		return false
	}
	return len(d.WinningNumbers) == rules.MainCount
}

// HasRequiredBonus reports whether the bonus ball is present when the
// variant requires one.
func (d *LotteryDraw) HasRequiredBonus() bool {
	rules := RulesFor(d.GameType)
	if rules == nil {
		return false
	}
	if !rules.HasBonus {
		return true
	}
	return d.BonusNumber != nil
}

// IsWellFormed combines the structural checks ingestion and the prize
// resolver both care about: expected main count, unique in-range numbers,
// bonus present where required.
func (d *LotteryDraw) IsWellFormed() bool {
	rules := RulesFor(d.GameType)
	if rules == nil {
		return false
	}
	if !d.HasExpectedNumbers() || !d.HasRequiredBonus() {
		return false
	}
	seen := make(map[int]bool, len(d.WinningNumbers))
	for _, n := range d.WinningNumbers {
		if seen[n] || !rules.InRange(n) {
			return false
		}
		seen[n] = true
	}
	if rules.HasBonus && d.BonusNumber != nil && !rules.BonusInRange(*d.BonusNumber) {
		return false
	}
	return true
}

// NumberSum returns the sum of the winning numbers. Used by the
// time-series analysis as the per-draw scalar feature.
func (d *LotteryDraw) NumberSum() int {
	sum := 0
	for _, n := range d.WinningNumbers {
		sum += n
	}
	return sum
}

// EvenCount returns how many winning numbers are even.
func (d *LotteryDraw) EvenCount() int {
	count := 0
	for _, n := range d.WinningNumbers {
		if n%2 == 0 {
			count++
		}
	}
	return count
}
