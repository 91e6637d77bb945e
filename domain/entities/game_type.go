package entities

import (
	"errors"
	"fmt"
	"strings"
)

// GameType identifies a lottery game variant as a closed enumeration.
// Free-text inputs (scraped page titles, OCR output) are mapped onto this
// enumeration by ResolveGameType; nothing else in the system dispatches on
// raw strings.
type GameType string

const (
	GameTypeLotto         GameType = "lotto"
	GameTypeLottoPlus1    GameType = "lotto_plus_1"
	GameTypeLottoPlus2    GameType = "lotto_plus_2"
	GameTypePowerball     GameType = "powerball"
	GameTypePowerballPlus GameType = "powerball_plus"
	GameTypeDailyLotto    GameType = "daily_lotto"
	GameTypeUnknown       GameType = "unknown"
)

// ErrUnknownGameType is returned when a free-text game name cannot be mapped
// to any known variant. Callers must surface this rather than falling back to
// a default rule set.
var ErrUnknownGameType = errors.New("unknown game type")

// AllGameTypes lists every playable variant in catalog order.
func AllGameTypes() []GameType {
	return []GameType{
		GameTypeLotto,
		GameTypeLottoPlus1,
		GameTypeLottoPlus2,
		GameTypePowerball,
		GameTypePowerballPlus,
		GameTypeDailyLotto,
	}
}

// DisplayName returns the human-readable name for the variant
func (g GameType) DisplayName() string {
	switch g {
	case GameTypeLotto:
		return "Lotto"
	case GameTypeLottoPlus1:
		return "Lotto Plus 1"
	case GameTypeLottoPlus2:
		return "Lotto Plus 2"
	case GameTypePowerball:
		return "Powerball"
	case GameTypePowerballPlus:
		return "Powerball Plus"
	case GameTypeDailyLotto:
		return "Daily Lotto"
	default:
		return "Unknown"
	}
}

// IsKnown returns true if the game type maps to a catalog entry
func (g GameType) IsKnown() bool {
	return g != GameTypeUnknown && g != ""
}

// ResolveGameType maps free-text game names onto the GameType enumeration.
// Inputs come from scraped page titles and OCR text, so matching is
// case-insensitive and substring-tolerant ("POWERBALL PLUS Results" resolves
// to PowerballPlus). The daily variant is checked before the generic "lotto"
// substring, and "plus" before the base family, so that longer names are
// never swallowed by their prefixes.
//
// Unrecognized input returns GameTypeUnknown with ErrUnknownGameType; there
// is deliberately no default variant.
func ResolveGameType(text string) (GameType, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return GameTypeUnknown, fmt.Errorf("empty game name: %w", ErrUnknownGameType)
	}

	hasPlus := strings.Contains(s, "plus") || strings.Contains(s, "+")

	switch {
	case strings.Contains(s, "daily"):
		return GameTypeDailyLotto, nil
	case strings.Contains(s, "powerball") || strings.Contains(s, "power ball"):
		if hasPlus {
			return GameTypePowerballPlus, nil
		}
		return GameTypePowerball, nil
	case strings.Contains(s, "lotto") || strings.Contains(s, "lottery"):
		switch {
		case strings.Contains(s, "plus 2") || strings.Contains(s, "plus2") || strings.Contains(s, "+2"):
			return GameTypeLottoPlus2, nil
		case hasPlus:
			return GameTypeLottoPlus1, nil
		default:
			return GameTypeLotto, nil
		}
	}

	return GameTypeUnknown, fmt.Errorf("unrecognized game name %q: %w", text, ErrUnknownGameType)
}
