package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/MrMafora/Snap-Lotto-sub006/domain/entities"
	"github.com/MrMafora/Snap-Lotto-sub006/domain/services"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	defaultAnalysisDays = 30
	maxAnalysisDays     = 3650
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// parseGameParam resolves the game query parameter. Empty means all
// variants; anything unrecognized is a client error.
func parseGameParam(r *http.Request) (entities.GameType, bool) {
	raw := r.URL.Query().Get("game")
	if raw == "" {
		return entities.GameTypeUnknown, true
	}
	for _, game := range entities.AllGameTypes() {
		if string(game) == raw {
			return game, true
		}
	}
	return entities.GameTypeUnknown, false
}

func parseDaysParam(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return defaultAnalysisDays, true
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 || days > maxAnalysisDays {
		return 0, false
	}
	return days, true
}

// handleImportDraw accepts one captured draw from the ingestion collaborator
func (s *Server) handleImportDraw(w http.ResponseWriter, r *http.Request) {
	var req ImportDrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	draw, err := s.ingestion.ImportDraw(r.Context(), req.toRecord())
	if err != nil {
		if errors.Is(err, services.ErrInvalidDrawRecord) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.WithError(err).Error("Failed to import draw")
		writeError(w, http.StatusInternalServerError, "failed to import draw")
		return
	}

	if s.metrics != nil {
		s.metrics.DrawsImported.WithLabelValues(string(draw.GameType)).Inc()
	}

	// Cached snapshots for this variant (and the all-variants view) are stale
	s.cache.Invalidate(r.Context(), draw.GameType)
	s.cache.Invalidate(r.Context(), entities.GameTypeUnknown)

	writeJSON(w, http.StatusCreated, toDrawDTO(draw))
}

// handleListDraws returns stored draws for a variant within a trailing window
func (s *Server) handleListDraws(w http.ResponseWriter, r *http.Request) {
	game, ok := parseGameParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown game variant")
		return
	}
	days, ok := parseDaysParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "days must be a positive integer")
		return
	}

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -days)

	draws, err := s.drawRepo.GetByDateRange(r.Context(), game, from, to)
	if err != nil {
		log.WithError(err).Error("Failed to list draws")
		writeError(w, http.StatusInternalServerError, "failed to list draws")
		return
	}

	dtos := make([]DrawDTO, 0, len(draws))
	for _, draw := range draws {
		dtos = append(dtos, toDrawDTO(draw))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"draws": dtos,
		"count": len(dtos),
		"days":  days,
	})
}

// handleCheckTicket evaluates a scanned ticket against the referenced draw
func (s *Server) handleCheckTicket(w http.ResponseWriter, r *http.Request) {
	var req CheckTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	scan := &entities.TicketScan{
		ScanID:       uuid.New().String(),
		GameText:     req.GameText,
		Numbers:      req.Numbers,
		BonusNumber:  req.BonusNumber,
		DrawNumber:   req.DrawNumber,
		RawDrawLabel: req.RawDrawLabel,
	}

	result, err := s.prize.CheckTicket(r.Context(), scan)
	if err != nil {
		if errors.Is(err, services.ErrDrawNotFound) {
			writeError(w, http.StatusNotFound, "no stored draw found for this ticket")
			return
		}
		log.WithError(err).Error("Failed to check ticket")
		writeError(w, http.StatusInternalServerError, "failed to check ticket")
		return
	}

	if s.metrics != nil {
		s.metrics.TicketsChecked.WithLabelValues(string(result.Outcome)).Inc()
	}

	writeJSON(w, http.StatusOK, toCheckTicketResponse(scan.ScanID, result))
}

// handleAnalysis returns the four-part analysis snapshot for a variant
func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	snapshot, status, message := s.snapshotFor(r)
	if snapshot == nil {
		writeError(w, status, message)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// handleFrequencyChart renders the frequency ranking as a PNG bar chart
func (s *Server) handleFrequencyChart(w http.ResponseWriter, r *http.Request) {
	snapshot, status, message := s.snapshotFor(r)
	if snapshot == nil {
		writeError(w, status, message)
		return
	}

	data, err := s.chartGen.Generate(snapshot.GameType, &snapshot.Frequency)
	if err != nil {
		writeError(w, http.StatusNotFound, "not enough data to chart")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.WithError(err).Error("Failed to write chart response")
	}
}

// snapshotFor resolves query parameters, consults the cache and builds the
// snapshot on a miss. A nil snapshot comes back with an HTTP status and
// message for the caller to write.
func (s *Server) snapshotFor(r *http.Request) (*entities.AnalysisSnapshot, int, string) {
	game, ok := parseGameParam(r)
	if !ok {
		return nil, http.StatusBadRequest, "unknown game variant"
	}
	days, ok := parseDaysParam(r)
	if !ok {
		return nil, http.StatusBadRequest, "days must be a positive integer"
	}

	if s.metrics != nil {
		s.metrics.AnalysisRequests.WithLabelValues(string(game)).Inc()
	}

	if cached, found := s.cache.Get(r.Context(), game, days); found {
		if s.metrics != nil {
			s.metrics.AnalysisCacheHits.Inc()
		}
		return cached, http.StatusOK, ""
	}

	start := time.Now()
	snapshot, err := s.analysis.BuildSnapshot(r.Context(), game, days)
	if err != nil {
		log.WithError(err).Error("Failed to build analysis snapshot")
		return nil, http.StatusInternalServerError, "failed to build analysis"
	}
	if s.metrics != nil {
		s.metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	}

	s.cache.Set(r.Context(), game, days, snapshot)
	return snapshot, http.StatusOK, ""
}
