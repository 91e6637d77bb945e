package entities

// MatchResult is the outcome of comparing a scanned ticket against a draw's
// winning numbers. Derived fresh on every evaluation, never stored.
type MatchResult struct {
	MatchCount    int  // |scanned ∩ winning| after deduplication
	BonusMatch    bool // both bonus numbers present and equal
	LowConfidence bool // the draw record itself looked malformed
}

// PrizeOutcome tags how a prize resolution ended. Expected data-quality
// conditions are outcomes, not errors.
type PrizeOutcome string

const (
	PrizeOutcomeWin         PrizeOutcome = "win"
	PrizeOutcomeNoPrize     PrizeOutcome = "no_prize"
	PrizeOutcomeUnknownGame PrizeOutcome = "unknown_game"
	PrizeOutcomeNoNumbers   PrizeOutcome = "no_numbers"
)

// PrizeResult is the structured answer handed to the presentation layer for
// one evaluated board: the resolved division (if any), its payout, and the
// match detail it was derived from.
type PrizeResult struct {
	Outcome       PrizeOutcome
	GameType      GameType
	Division      int    // 0 when no division won
	Description   string // division requirement wording
	PayoutCents   int64  // 0 when unpublished or no prize
	PayoutKnown   bool   // false when the division table lacked the row
	MatchCount    int
	BonusMatch    bool
	LowConfidence bool     // derived from a malformed draw record
	Notes         []string // data-quality notes for diagnostics
}

// Won reports whether the board resolved to a paying division.
func (p *PrizeResult) Won() bool {
	return p.Outcome == PrizeOutcomeWin
}
