package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/MrMafora/Snap-Lotto-sub006/domain/entities"
	"github.com/MrMafora/Snap-Lotto-sub006/domain/interfaces"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

const (
	// DefaultMinDrawsForClustering is the floor below which clustering
	// returns insufficient-data instead of a degenerate grouping.
	DefaultMinDrawsForClustering = 10

	// DefaultMinSharedDates is the minimum number of shared calendar dates
	// two variants need before their correlation is reported as computable.
	DefaultMinSharedDates = 3
)

// analysisService computes descriptive statistics over historical draws.
// Every call works on a snapshot of rows fetched at call time; there is no
// shared mutable state.
type analysisService struct {
	drawRepo        interfaces.LotteryDrawRepository
	minClusterDraws int
	minSharedDates  int
}

// NewAnalysisService creates a new analysis service. minClusterDraws <= 0
// selects the default threshold.
func NewAnalysisService(drawRepo interfaces.LotteryDrawRepository, minClusterDraws int) interfaces.AnalysisService {
	if minClusterDraws <= 0 {
		minClusterDraws = DefaultMinDrawsForClustering
	}
	return &analysisService{
		drawRepo:        drawRepo,
		minClusterDraws: minClusterDraws,
		minSharedDates:  DefaultMinSharedDates,
	}
}

// BuildSnapshot runs the four analyses over the trailing day-range. Each
// analysis fails independently: a panic or data shortfall in one is captured
// in its own payload and never blanks the other three. The returned error is
// reserved for the storage read itself.
func (s *analysisService) BuildSnapshot(ctx context.Context, game entities.GameType, days int) (*entities.AnalysisSnapshot, error) {
	if days <= 0 {
		days = 30
	}
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -days)

	draws, err := s.drawRepo.GetByDateRange(ctx, game, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load draws for analysis: %w", err)
	}

	snapshot := &entities.AnalysisSnapshot{
		GameType:    game,
		Days:        days,
		GeneratedAt: to,
		TotalDraws:  len(draws),
	}

	snapshot.Frequency = s.buildFrequency(draws)
	snapshot.Clusters = s.buildClusters(draws)
	snapshot.TimeSeries = s.buildTimeSeries(draws)

	// Correlation always compares variants against each other, so it reads
	// the full window regardless of the requested variant filter.
	corrDraws := draws
	if game.IsKnown() {
		corrDraws, err = s.drawRepo.GetByDateRange(ctx, entities.GameTypeUnknown, from, to)
		if err != nil {
			log.WithError(err).Warn("Failed to load cross-variant draws for correlation")
			snapshot.Correlation = entities.CorrelationResult{
				Status: entities.AnalysisStatusFailed,
				Error:  err.Error(),
			}
			return snapshot, nil
		}
	}
	snapshot.Correlation = s.buildCorrelation(corrDraws)

	return snapshot, nil
}

// buildFrequency ranks number occurrences across the window. Ordering is
// fully deterministic: count descending, then numeric value ascending.
func (s *analysisService) buildFrequency(draws []*entities.LotteryDraw) (result entities.FrequencyResult) {
	defer recoverAnalysis("frequency", &result.Status, &result.Error)

	if len(draws) == 0 {
		return entities.FrequencyResult{
			Status: entities.AnalysisStatusInsufficientData,
			Error:  "no draws in the selected range",
		}
	}

	counts := make(map[int]int)
	for _, draw := range draws {
		for _, n := range draw.WinningNumbers {
			counts[n]++
		}
	}

	rankings := make([]entities.NumberFrequency, 0, len(counts))
	for number, count := range counts {
		rankings = append(rankings, entities.NumberFrequency{Number: number, Count: count})
	}
	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].Count != rankings[j].Count {
			return rankings[i].Count > rankings[j].Count
		}
		return rankings[i].Number < rankings[j].Number
	})

	return entities.FrequencyResult{
		Status:       entities.AnalysisStatusOK,
		DrawsCounted: len(draws),
		Rankings:     rankings,
	}
}

// buildTimeSeries produces per-draw descriptive statistics in chronological
// order and flags draws whose number sum sits more than two standard
// deviations from the window mean.
func (s *analysisService) buildTimeSeries(draws []*entities.LotteryDraw) (result entities.TimeSeriesResult) {
	defer recoverAnalysis("time_series", &result.Status, &result.Error)

	if len(draws) == 0 {
		return entities.TimeSeriesResult{
			Status: entities.AnalysisStatusInsufficientData,
			Error:  "no draws in the selected range",
		}
	}

	ordered := make([]*entities.LotteryDraw, len(draws))
	copy(ordered, draws)
	sort.Slice(ordered, func(i, j int) bool {
		if !ordered[i].DrawDate.Equal(ordered[j].DrawDate) {
			return ordered[i].DrawDate.Before(ordered[j].DrawDate)
		}
		return ordered[i].DrawNumber < ordered[j].DrawNumber
	})

	sums := make([]float64, len(ordered))
	rows := make([]entities.DrawStatistics, len(ordered))
	for i, draw := range ordered {
		numbers := make([]float64, len(draw.WinningNumbers))
		for j, n := range draw.WinningNumbers {
			numbers[j] = float64(n)
		}

		stdDev := 0.0
		if len(numbers) > 1 {
			stdDev = stat.StdDev(numbers, nil)
		}

		sums[i] = float64(draw.NumberSum())
		rows[i] = entities.DrawStatistics{
			DrawNumber: draw.DrawNumber,
			DrawDate:   draw.DrawDate,
			Sum:        draw.NumberSum(),
			StdDev:     scrubFloat(stdDev),
			EvenCount:  draw.EvenCount(),
		}
	}

	meanSum := stat.Mean(sums, nil)
	sumStdDev := 0.0
	if len(sums) > 1 {
		sumStdDev = stat.StdDev(sums, nil)
	}
	if sumStdDev > 0 {
		for i := range rows {
			rows[i].Anomaly = math.Abs(sums[i]-meanSum) > 2*sumStdDev
		}
	}

	return entities.TimeSeriesResult{
		Status:  entities.AnalysisStatusOK,
		MeanSum: scrubFloat(meanSum),
		Draws:   rows,
	}
}

// buildCorrelation computes pairwise Pearson correlations between the
// per-date number sums of different variants. Multiple draws of one variant
// on the same date collapse deterministically to the latest by draw number;
// each collapse is recorded as a data-quality note, not an error.
func (s *analysisService) buildCorrelation(draws []*entities.LotteryDraw) (result entities.CorrelationResult) {
	defer recoverAnalysis("correlation", &result.Status, &result.Error)

	byVariant := make(map[entities.GameType]map[string]*entities.LotteryDraw)
	var notes []string

	for _, draw := range draws {
		key := draw.DrawDate.Format("2006-01-02")
		if byVariant[draw.GameType] == nil {
			byVariant[draw.GameType] = make(map[string]*entities.LotteryDraw)
		}
		existing := byVariant[draw.GameType][key]
		if existing == nil {
			byVariant[draw.GameType][key] = draw
			continue
		}
		// Duplicate date for the same variant: keep the later draw.
		kept, dropped := draw, existing
		if existing.DrawNumber > draw.DrawNumber {
			kept, dropped = existing, draw
		}
		byVariant[draw.GameType][key] = kept
		note := fmt.Sprintf("%s has multiple draws on %s; using draw %d over draw %d",
			draw.GameType, key, kept.DrawNumber, dropped.DrawNumber)
		notes = append(notes, note)
		log.WithFields(log.Fields{
			"gameType": draw.GameType,
			"date":     key,
			"kept":     kept.DrawNumber,
			"dropped":  dropped.DrawNumber,
		}).Warn("Duplicate draw date collapsed for correlation")
	}

	variants := make([]entities.GameType, 0, len(byVariant))
	for _, game := range entities.AllGameTypes() {
		if len(byVariant[game]) > 0 {
			variants = append(variants, game)
		}
	}

	if len(variants) < 2 {
		return entities.CorrelationResult{
			Status: entities.AnalysisStatusInsufficientData,
			Error:  fmt.Sprintf("correlation needs draws from at least 2 variants, found %d", len(variants)),
			Notes:  notes,
		}
	}

	var pairs []entities.VariantCorrelation
	anyComputable := false
	for i := 0; i < len(variants); i++ {
		for j := i + 1; j < len(variants); j++ {
			pair := s.correlatePair(variants[i], variants[j], byVariant[variants[i]], byVariant[variants[j]])
			if pair.Computable {
				anyComputable = true
			}
			pairs = append(pairs, pair)
		}
	}

	status := entities.AnalysisStatusOK
	errMsg := ""
	if !anyComputable {
		status = entities.AnalysisStatusInsufficientData
		errMsg = fmt.Sprintf("no variant pair shares at least %d draw dates", s.minSharedDates)
	}

	return entities.CorrelationResult{
		Status: status,
		Error:  errMsg,
		Pairs:  pairs,
		Notes:  notes,
	}
}

func (s *analysisService) correlatePair(gameA, gameB entities.GameType, drawsA, drawsB map[string]*entities.LotteryDraw) entities.VariantCorrelation {
	shared := make([]string, 0, len(drawsA))
	for date := range drawsA {
		if _, ok := drawsB[date]; ok {
			shared = append(shared, date)
		}
	}
	sort.Strings(shared)

	pair := entities.VariantCorrelation{
		GameA:       gameA,
		GameB:       gameB,
		SharedDates: len(shared),
	}
	if len(shared) < s.minSharedDates {
		return pair
	}

	x := make([]float64, len(shared))
	y := make([]float64, len(shared))
	for i, date := range shared {
		x[i] = float64(drawsA[date].NumberSum())
		y[i] = float64(drawsB[date].NumberSum())
	}

	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		// Zero variance on one side; correlation is undefined, not an error.
		return pair
	}

	pair.Coefficient = r
	pair.Computable = true
	return pair
}

// recoverAnalysis converts a panic inside one sub-analysis into a tagged
// failed payload so the remaining analyses still render.
func recoverAnalysis(name string, status *entities.AnalysisStatus, errMsg *string) {
	if r := recover(); r != nil {
		log.WithFields(log.Fields{
			"analysis": name,
			"panic":    r,
		}).Error("Analysis panicked")
		*status = entities.AnalysisStatusFailed
		*errMsg = fmt.Sprintf("internal error: %v", r)
	}
}

// scrubFloat normalizes NaN/Inf to zero so snapshot payloads always encode
// to plain JSON numbers.
func scrubFloat(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
