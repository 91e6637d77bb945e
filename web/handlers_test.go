package web

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MrMafora/Snap-Lotto-sub006/domain/entities"
	"github.com/MrMafora/Snap-Lotto-sub006/domain/services"
	"github.com/MrMafora/Snap-Lotto-sub006/domain/testhelpers"
	"github.com/MrMafora/Snap-Lotto-sub006/infrastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixture struct {
	server       *Server
	drawRepo     *testhelpers.MockLotteryDrawRepository
	divisionRepo *testhelpers.MockDivisionRepository
}

func setupServer() *serverFixture {
	drawRepo := new(testhelpers.MockLotteryDrawRepository)
	divisionRepo := new(testhelpers.MockDivisionRepository)
	publisher := infrastructure.NewNoopEventPublisher()

	server := NewServer("0", ServerOptions{
		DrawRepo:  drawRepo,
		Ingestion: services.NewIngestionService(drawRepo, divisionRepo, publisher),
		Prize:     services.NewPrizeService(drawRepo, divisionRepo, publisher),
		Analysis:  services.NewAnalysisService(drawRepo, 10),
	})

	return &serverFixture{
		server:       server,
		drawRepo:     drawRepo,
		divisionRepo: divisionRepo,
	}
}

func intPtr(n int) *int { return &n }

func storedLottoDraw() *entities.LotteryDraw {
	bonus := 7
	return &entities.LotteryDraw{
		ID:             1,
		GameType:       entities.GameTypeLotto,
		DrawNumber:     2470,
		DrawDate:       time.Date(2025, 6, 7, 20, 0, 0, 0, time.UTC),
		WinningNumbers: []int{3, 12, 19, 27, 34, 41},
		BonusNumber:    &bonus,
	}
}

func doJSON(t *testing.T, server *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandleImportDraw(t *testing.T) {
	t.Parallel()

	t.Run("imports a valid draw", func(t *testing.T) {
		t.Parallel()
		f := setupServer()

		f.drawRepo.On("Upsert", mock.Anything, mock.Anything).Return(storedLottoDraw(), nil)
		f.divisionRepo.On("ReplaceForDraw", mock.Anything, int64(1), mock.Anything).Return(nil)

		req := ImportDrawRequest{
			GameType:       "Lotto",
			DrawNumber:     2470,
			DrawDate:       time.Date(2025, 6, 7, 20, 0, 0, 0, time.UTC),
			WinningNumbers: []int{3, 12, 19, 27, 34, 41},
			BonusNumber:    intPtr(7),
			Divisions: []ImportDivisionDTO{
				{Division: 1, Requirement: "SIX CORRECT NUMBERS", Winners: 0, PayoutCents: 0},
			},
		}

		rec := doJSON(t, f.server, http.MethodPost, "/api/v1/draws", req)
		require.Equal(t, http.StatusCreated, rec.Code)

		var dto DrawDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		assert.Equal(t, int64(1), dto.ID)
		assert.Equal(t, "lotto", dto.GameType)
	})

	t.Run("rejects an unknown game", func(t *testing.T) {
		t.Parallel()
		f := setupServer()

		req := ImportDrawRequest{
			GameType:       "Unknown Game XYZ",
			DrawNumber:     1,
			DrawDate:       time.Now(),
			WinningNumbers: []int{1, 2, 3, 4, 5, 6},
		}

		rec := doJSON(t, f.server, http.MethodPost, "/api/v1/draws", req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.drawRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()
		f := setupServer()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/draws", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		f.server.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleListDraws(t *testing.T) {
	t.Parallel()

	t.Run("lists draws for a variant", func(t *testing.T) {
		t.Parallel()
		f := setupServer()

		f.drawRepo.On("GetByDateRange", mock.Anything, entities.GameTypeLotto, mock.Anything, mock.Anything).
			Return([]*entities.LotteryDraw{storedLottoDraw()}, nil)

		rec := doJSON(t, f.server, http.MethodGet, "/api/v1/draws?game=lotto&days=30", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Draws []DrawDTO `json:"draws"`
			Count int       `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, int64(2470), resp.Draws[0].DrawNumber)
	})

	t.Run("empty game selects all variants", func(t *testing.T) {
		t.Parallel()
		f := setupServer()

		f.drawRepo.On("GetByDateRange", mock.Anything, entities.GameTypeUnknown, mock.Anything, mock.Anything).
			Return([]*entities.LotteryDraw{}, nil)

		rec := doJSON(t, f.server, http.MethodGet, "/api/v1/draws", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		f.drawRepo.AssertCalled(t, "GetByDateRange", mock.Anything, entities.GameTypeUnknown, mock.Anything, mock.Anything)
	})

	t.Run("rejects an unknown variant", func(t *testing.T) {
		t.Parallel()
		f := setupServer()

		rec := doJSON(t, f.server, http.MethodGet, "/api/v1/draws?game=bingo", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects a bad day range", func(t *testing.T) {
		t.Parallel()
		f := setupServer()

		rec := doJSON(t, f.server, http.MethodGet, "/api/v1/draws?days=-5", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleCheckTicket(t *testing.T) {
	t.Parallel()

	t.Run("winning ticket resolves its division", func(t *testing.T) {
		t.Parallel()
		f := setupServer()

		draw := storedLottoDraw()
		f.drawRepo.On("GetByDrawNumber", mock.Anything, entities.GameTypeLotto, int64(2470)).Return(draw, nil)
		f.divisionRepo.On("GetForDraw", mock.Anything, draw.ID).Return(&entities.DivisionTable{
			DrawID: draw.ID,
			Rows: []entities.DivisionRow{
				{DrawID: draw.ID, Division: 1, Requirement: "SIX CORRECT NUMBERS", PayoutCents: 1000000000},
			},
		}, nil)

		req := CheckTicketRequest{
			GameText:   "Lotto",
			Numbers:    []int{3, 12, 19, 27, 34, 41},
			DrawNumber: int64Ptr(2470),
		}

		rec := doJSON(t, f.server, http.MethodPost, "/api/v1/tickets/check", req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp CheckTicketResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "win", resp.Outcome)
		assert.Equal(t, 1, resp.Division)
		assert.Equal(t, 6, resp.MatchCount)
		assert.True(t, resp.PayoutKnown)
		assert.NotEmpty(t, resp.ScanID)
	})

	t.Run("unknown game is an outcome not an error", func(t *testing.T) {
		t.Parallel()
		f := setupServer()

		req := CheckTicketRequest{
			GameText: "Mystery Game",
			Numbers:  []int{1, 2, 3, 4, 5, 6},
		}

		rec := doJSON(t, f.server, http.MethodPost, "/api/v1/tickets/check", req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp CheckTicketResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "unknown_game", resp.Outcome)
	})

	t.Run("no stored draws returns 404", func(t *testing.T) {
		t.Parallel()
		f := setupServer()

		f.drawRepo.On("GetLatest", mock.Anything, entities.GameTypeLotto).Return(nil, nil)

		req := CheckTicketRequest{
			GameText: "Lotto",
			Numbers:  []int{1, 2, 3, 4, 5, 6},
		}

		rec := doJSON(t, f.server, http.MethodPost, "/api/v1/tickets/check", req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleAnalysis(t *testing.T) {
	t.Parallel()

	t.Run("returns a snapshot with per-analysis statuses", func(t *testing.T) {
		t.Parallel()
		f := setupServer()

		f.drawRepo.On("GetByDateRange", mock.Anything, entities.GameTypeDailyLotto, mock.Anything, mock.Anything).
			Return(dailyDraws(12), nil)
		f.drawRepo.On("GetByDateRange", mock.Anything, entities.GameTypeUnknown, mock.Anything, mock.Anything).
			Return(dailyDraws(12), nil)

		rec := doJSON(t, f.server, http.MethodGet, "/api/v1/analysis?game=daily_lotto&days=60", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var snapshot entities.AnalysisSnapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
		assert.Equal(t, entities.GameTypeDailyLotto, snapshot.GameType)
		assert.Equal(t, 60, snapshot.Days)
		assert.Equal(t, entities.AnalysisStatusOK, snapshot.Frequency.Status)
		assert.Equal(t, 12, snapshot.TotalDraws)
	})

	t.Run("rejects an unknown variant", func(t *testing.T) {
		t.Parallel()
		f := setupServer()

		rec := doJSON(t, f.server, http.MethodGet, "/api/v1/analysis?game=keno", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleFrequencyChart(t *testing.T) {
	t.Parallel()

	t.Run("returns a PNG when data exists", func(t *testing.T) {
		t.Parallel()
		f := setupServer()

		f.drawRepo.On("GetByDateRange", mock.Anything, entities.GameTypeDailyLotto, mock.Anything, mock.Anything).
			Return(dailyDraws(12), nil)
		f.drawRepo.On("GetByDateRange", mock.Anything, entities.GameTypeUnknown, mock.Anything, mock.Anything).
			Return(dailyDraws(12), nil)

		rec := doJSON(t, f.server, http.MethodGet, "/api/v1/analysis/frequency/chart.png?game=daily_lotto", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

		_, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
		assert.NoError(t, err)
	})

	t.Run("no draws yields 404", func(t *testing.T) {
		t.Parallel()
		f := setupServer()

		f.drawRepo.On("GetByDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]*entities.LotteryDraw{}, nil)

		rec := doJSON(t, f.server, http.MethodGet, "/api/v1/analysis/frequency/chart.png", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func int64Ptr(n int64) *int64 { return &n }

// dailyDraws builds a run of daily lotto draws with rotating numbers
func dailyDraws(n int) []*entities.LotteryDraw {
	draws := make([]*entities.LotteryDraw, 0, n)
	for i := 0; i < n; i++ {
		draws = append(draws, &entities.LotteryDraw{
			ID:         int64(i + 1),
			GameType:   entities.GameTypeDailyLotto,
			DrawNumber: int64(100 + i),
			DrawDate:   time.Date(2025, 6, 1+i, 21, 0, 0, 0, time.UTC),
			WinningNumbers: []int{
				1 + i%5,
				7 + i%5,
				13 + i%5,
				19 + i%5,
				25 + i%5,
			},
		})
	}
	return draws
}
