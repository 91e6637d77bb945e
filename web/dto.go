package web

import (
	"time"

	"github.com/MrMafora/Snap-Lotto-sub006/domain/entities"
	"github.com/MrMafora/Snap-Lotto-sub006/domain/interfaces"
)

// ImportDivisionDTO is one division row of an import request
type ImportDivisionDTO struct {
	Division    int    `json:"division"`
	Requirement string `json:"requirement"`
	Winners     int    `json:"winners"`
	PayoutCents int64  `json:"payout_cents"`
}

// ImportDrawRequest is the payload for POST /api/v1/draws
type ImportDrawRequest struct {
	GameType       string              `json:"game_type"`
	DrawNumber     int64               `json:"draw_number"`
	DrawDate       time.Time           `json:"draw_date"`
	WinningNumbers []int               `json:"winning_numbers"`
	BonusNumber    *int                `json:"bonus_number,omitempty"`
	Divisions      []ImportDivisionDTO `json:"divisions,omitempty"`
}

func (r *ImportDrawRequest) toRecord() interfaces.DrawRecord {
	record := interfaces.DrawRecord{
		GameText:       r.GameType,
		DrawNumber:     r.DrawNumber,
		DrawDate:       r.DrawDate,
		WinningNumbers: r.WinningNumbers,
		BonusNumber:    r.BonusNumber,
	}
	for _, d := range r.Divisions {
		record.Divisions = append(record.Divisions, interfaces.DivisionRecord{
			Division:    d.Division,
			Requirement: d.Requirement,
			Winners:     d.Winners,
			PayoutCents: d.PayoutCents,
		})
	}
	return record
}

// DrawDTO is the wire shape of a stored draw
type DrawDTO struct {
	ID             int64     `json:"id"`
	GameType       string    `json:"game_type"`
	DrawNumber     int64     `json:"draw_number"`
	DrawDate       time.Time `json:"draw_date"`
	WinningNumbers []int     `json:"winning_numbers"`
	BonusNumber    *int      `json:"bonus_number,omitempty"`
}

func toDrawDTO(draw *entities.LotteryDraw) DrawDTO {
	return DrawDTO{
		ID:             draw.ID,
		GameType:       string(draw.GameType),
		DrawNumber:     draw.DrawNumber,
		DrawDate:       draw.DrawDate,
		WinningNumbers: draw.WinningNumbers,
		BonusNumber:    draw.BonusNumber,
	}
}

// CheckTicketRequest is the payload for POST /api/v1/tickets/check
type CheckTicketRequest struct {
	GameText     string `json:"game_text"`
	Numbers      []int  `json:"numbers"`
	BonusNumber  *int   `json:"bonus_number,omitempty"`
	DrawNumber   *int64 `json:"draw_number,omitempty"`
	RawDrawLabel string `json:"raw_draw_label,omitempty"`
}

// CheckTicketResponse is the structured evaluation answer
type CheckTicketResponse struct {
	ScanID        string   `json:"scan_id"`
	Outcome       string   `json:"outcome"`
	GameType      string   `json:"game_type"`
	Division      int      `json:"division,omitempty"`
	Description   string   `json:"description,omitempty"`
	PayoutCents   int64    `json:"payout_cents"`
	PayoutKnown   bool     `json:"payout_known"`
	MatchCount    int      `json:"match_count"`
	BonusMatch    bool     `json:"bonus_match"`
	LowConfidence bool     `json:"low_confidence"`
	Notes         []string `json:"notes,omitempty"`
}

func toCheckTicketResponse(scanID string, result *entities.PrizeResult) CheckTicketResponse {
	return CheckTicketResponse{
		ScanID:        scanID,
		Outcome:       string(result.Outcome),
		GameType:      string(result.GameType),
		Division:      result.Division,
		Description:   result.Description,
		PayoutCents:   result.PayoutCents,
		PayoutKnown:   result.PayoutKnown,
		MatchCount:    result.MatchCount,
		BonusMatch:    result.BonusMatch,
		LowConfidence: result.LowConfidence,
		Notes:         result.Notes,
	}
}

// errorResponse is the uniform error shape
type errorResponse struct {
	Error string `json:"error"`
}
