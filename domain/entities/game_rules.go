package entities

// DivisionRequirement describes how a single prize division is won:
// the exact number of main-ball matches and whether the bonus ball
// (or powerball) must also match. Divisions are ordered top-down by
// prize value, so resolution stops at the first satisfied entry.
type DivisionRequirement struct {
	Division      int    // 1 = jackpot
	MatchCount    int    // required main-number matches (exact)
	RequiresBonus bool   // bonus/powerball must also match
	Description   string // official wording, e.g. "FIVE CORRECT NUMBERS + PB"
}

// GameRules holds the fixed configuration of one game variant: pool sizes,
// bonus-ball presence and the ordered division table. Pure data; the only
// behavior is lookup.
type GameRules struct {
	GameType      GameType
	MainCount     int  // how many main numbers are drawn
	MinNumber     int  // inclusive lower bound of the main pool
	MaxNumber     int  // inclusive upper bound of the main pool
	HasBonus      bool // a bonus ball / powerball is drawn
	BonusMin      int  // bounds of the bonus pool (separate pool for powerball,
	BonusMax      int  // same pool as main for lotto family)
	BonusSeparate bool // bonus drawn from its own pool (powerball family)
	Divisions     []DivisionRequirement
}

// InRange reports whether n is a valid main number for this variant.
func (r *GameRules) InRange(n int) bool {
	return n >= r.MinNumber && n <= r.MaxNumber
}

// BonusInRange reports whether n is a valid bonus number for this variant.
func (r *GameRules) BonusInRange(n int) bool {
	if !r.HasBonus {
		return false
	}
	return n >= r.BonusMin && n <= r.BonusMax
}

// TopDivision returns the jackpot requirement for the variant.
func (r *GameRules) TopDivision() DivisionRequirement {
	return r.Divisions[0]
}

// lottoDivisions is shared by Lotto, Lotto Plus 1 and Lotto Plus 2:
// eight divisions, bonus ball participating from division 2 down.
func lottoDivisions() []DivisionRequirement {
	return []DivisionRequirement{
		{Division: 1, MatchCount: 6, RequiresBonus: false, Description: "SIX CORRECT NUMBERS"},
		{Division: 2, MatchCount: 5, RequiresBonus: true, Description: "FIVE CORRECT NUMBERS + BONUS BALL"},
		{Division: 3, MatchCount: 5, RequiresBonus: false, Description: "FIVE CORRECT NUMBERS"},
		{Division: 4, MatchCount: 4, RequiresBonus: true, Description: "FOUR CORRECT NUMBERS + BONUS BALL"},
		{Division: 5, MatchCount: 4, RequiresBonus: false, Description: "FOUR CORRECT NUMBERS"},
		{Division: 6, MatchCount: 3, RequiresBonus: true, Description: "THREE CORRECT NUMBERS + BONUS BALL"},
		{Division: 7, MatchCount: 3, RequiresBonus: false, Description: "THREE CORRECT NUMBERS"},
		{Division: 8, MatchCount: 2, RequiresBonus: true, Description: "TWO CORRECT NUMBERS + BONUS BALL"},
	}
}

// powerballDivisions is shared by Powerball and Powerball Plus:
// nine divisions, powerball drawn from its own pool.
func powerballDivisions() []DivisionRequirement {
	return []DivisionRequirement{
		{Division: 1, MatchCount: 5, RequiresBonus: true, Description: "FIVE CORRECT NUMBERS + POWERBALL"},
		{Division: 2, MatchCount: 5, RequiresBonus: false, Description: "FIVE CORRECT NUMBERS"},
		{Division: 3, MatchCount: 4, RequiresBonus: true, Description: "FOUR CORRECT NUMBERS + POWERBALL"},
		{Division: 4, MatchCount: 4, RequiresBonus: false, Description: "FOUR CORRECT NUMBERS"},
		{Division: 5, MatchCount: 3, RequiresBonus: true, Description: "THREE CORRECT NUMBERS + POWERBALL"},
		{Division: 6, MatchCount: 3, RequiresBonus: false, Description: "THREE CORRECT NUMBERS"},
		{Division: 7, MatchCount: 2, RequiresBonus: true, Description: "TWO CORRECT NUMBERS + POWERBALL"},
		{Division: 8, MatchCount: 1, RequiresBonus: true, Description: "ONE CORRECT NUMBER + POWERBALL"},
		{Division: 9, MatchCount: 0, RequiresBonus: true, Description: "MATCH POWERBALL ONLY"},
	}
}

// dailyLottoDivisions covers the simpler daily draw: no bonus ball.
func dailyLottoDivisions() []DivisionRequirement {
	return []DivisionRequirement{
		{Division: 1, MatchCount: 5, RequiresBonus: false, Description: "FIVE CORRECT NUMBERS"},
		{Division: 2, MatchCount: 4, RequiresBonus: false, Description: "FOUR CORRECT NUMBERS"},
		{Division: 3, MatchCount: 3, RequiresBonus: false, Description: "THREE CORRECT NUMBERS"},
		{Division: 4, MatchCount: 2, RequiresBonus: false, Description: "TWO CORRECT NUMBERS"},
	}
}

// ruleCatalog is the static per-variant rule table. Division structure and
// pool sizes follow the published national lottery game rules; payout amounts
// are per-draw data and never appear here.
var ruleCatalog = map[GameType]*GameRules{
	GameTypeLotto: {
		GameType:  GameTypeLotto,
		MainCount: 6, MinNumber: 1, MaxNumber: 52,
		HasBonus: true, BonusMin: 1, BonusMax: 52, BonusSeparate: false,
		Divisions: lottoDivisions(),
	},
	GameTypeLottoPlus1: {
		GameType:  GameTypeLottoPlus1,
		MainCount: 6, MinNumber: 1, MaxNumber: 52,
		HasBonus: true, BonusMin: 1, BonusMax: 52, BonusSeparate: false,
		Divisions: lottoDivisions(),
	},
	GameTypeLottoPlus2: {
		GameType:  GameTypeLottoPlus2,
		MainCount: 6, MinNumber: 1, MaxNumber: 52,
		HasBonus: true, BonusMin: 1, BonusMax: 52, BonusSeparate: false,
		Divisions: lottoDivisions(),
	},
	GameTypePowerball: {
		GameType:  GameTypePowerball,
		MainCount: 5, MinNumber: 1, MaxNumber: 50,
		HasBonus: true, BonusMin: 1, BonusMax: 20, BonusSeparate: true,
		Divisions: powerballDivisions(),
	},
	GameTypePowerballPlus: {
		GameType:  GameTypePowerballPlus,
		MainCount: 5, MinNumber: 1, MaxNumber: 50,
		HasBonus: true, BonusMin: 1, BonusMax: 20, BonusSeparate: true,
		Divisions: powerballDivisions(),
	},
	GameTypeDailyLotto: {
		GameType:  GameTypeDailyLotto,
		MainCount: 5, MinNumber: 1, MaxNumber: 36,
		HasBonus: false,
		Divisions: dailyLottoDivisions(),
	},
}

// RulesFor returns the rule set for a known variant, or nil for
// GameTypeUnknown. Callers resolve free text through ResolveGameType first.
func RulesFor(game GameType) *GameRules {
	return ruleCatalog[game]
}
