package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestLotteryDraw_IsWellFormed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		game    GameType
		numbers []int
		bonus   *int
		want    bool
	}{
		{
			name:    "valid lotto draw",
			game:    GameTypeLotto,
			numbers: []int{3, 12, 19, 27, 34, 41},
			bonus:   intPtr(7),
			want:    true,
		},
		{
			name:    "lotto missing bonus",
			game:    GameTypeLotto,
			numbers: []int{3, 12, 19, 27, 34, 41},
			bonus:   nil,
			want:    false,
		},
		{
			name:    "short winning set",
			game:    GameTypeLotto,
			numbers: []int{3, 12, 19},
			bonus:   intPtr(7),
			want:    false,
		},
		{
			name:    "duplicate winning number",
			game:    GameTypeLotto,
			numbers: []int{3, 3, 19, 27, 34, 41},
			bonus:   intPtr(7),
			want:    false,
		},
		{
			name:    "out of range winning number",
			game:    GameTypeLotto,
			numbers: []int{3, 12, 19, 27, 34, 99},
			bonus:   intPtr(7),
			want:    false,
		},
		{
			name:    "powerball bonus outside its pool",
			game:    GameTypePowerball,
			numbers: []int{5, 10, 15, 20, 25},
			bonus:   intPtr(45),
			want:    false,
		},
		{
			name:    "valid daily lotto without bonus",
			game:    GameTypeDailyLotto,
			numbers: []int{1, 9, 17, 25, 33},
			bonus:   nil,
			want:    true,
		},
		{
			name:    "unknown game type",
			game:    GameTypeUnknown,
			numbers: []int{1, 2, 3, 4, 5, 6},
			bonus:   intPtr(7),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			draw := &LotteryDraw{
				GameType:       tt.game,
				DrawNumber:     100,
				DrawDate:       time.Now(),
				WinningNumbers: tt.numbers,
				BonusNumber:    tt.bonus,
			}

			assert.Equal(t, tt.want, draw.IsWellFormed())
		})
	}
}

func TestLotteryDraw_NumberStats(t *testing.T) {
	t.Parallel()

	draw := &LotteryDraw{
		GameType:       GameTypeLotto,
		WinningNumbers: []int{2, 4, 7, 11, 20, 52},
	}

	assert.Equal(t, 96, draw.NumberSum())
	assert.Equal(t, 4, draw.EvenCount())

	empty := &LotteryDraw{GameType: GameTypeLotto}
	assert.Equal(t, 0, empty.NumberSum())
	assert.Equal(t, 0, empty.EvenCount())
}

func TestTicketScan_UniqueNumbers(t *testing.T) {
	t.Parallel()

	scan := &TicketScan{
		Numbers: []int{12, 3, 12, 41, 3, 19},
	}

	assert.Equal(t, []int{12, 3, 41, 19}, scan.UniqueNumbers())
	assert.True(t, scan.HasNumbers())

	empty := &TicketScan{}
	assert.Empty(t, empty.UniqueNumbers())
	assert.False(t, empty.HasNumbers())
}
