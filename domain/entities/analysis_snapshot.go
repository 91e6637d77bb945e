package entities

import "time"

// AnalysisStatus tags each sub-analysis with its own outcome so the
// dashboard tabs render independently: one failing analysis never blanks
// the other three.
type AnalysisStatus string

const (
	AnalysisStatusOK               AnalysisStatus = "ok"
	AnalysisStatusInsufficientData AnalysisStatus = "insufficient_data"
	AnalysisStatusFailed           AnalysisStatus = "failed"
)

// NumberFrequency is one row of the frequency ranking.
type NumberFrequency struct {
	Number int `json:"number"`
	Count  int `json:"count"`
}

// FrequencyResult ranks number occurrences across the analyzed draws,
// count-descending with numeric-ascending tie-break. Deterministic for
// identical input.
type FrequencyResult struct {
	Status       AnalysisStatus    `json:"status"`
	Error        string            `json:"error,omitempty"`
	DrawsCounted int               `json:"draws_counted"`
	Rankings     []NumberFrequency `json:"rankings,omitempty"`
}

// PatternCluster summarizes one cluster of similar draws.
type PatternCluster struct {
	ClusterID     int   `json:"cluster_id"`
	Size          int   `json:"size"`
	CommonNumbers []int `json:"common_numbers"` // most frequent numbers within the cluster
}

// ClusterResult groups draws by number-set similarity via PCA projection
// and k-means. Incomplete draws are excluded from the input but reported.
type ClusterResult struct {
	Status          AnalysisStatus   `json:"status"`
	Error           string           `json:"error,omitempty"`
	CompleteDraws   int              `json:"complete_draws"`
	IncompleteDraws int              `json:"incomplete_draws"`
	MinRequired     int              `json:"min_required"`
	Clusters        []PatternCluster `json:"clusters,omitempty"`
}

// DrawStatistics is the per-draw row of the time-series summary.
type DrawStatistics struct {
	DrawNumber int64     `json:"draw_number"`
	DrawDate   time.Time `json:"draw_date"`
	Sum        int       `json:"sum"`
	StdDev     float64   `json:"std_dev"`
	EvenCount  int       `json:"even_count"`
	Anomaly    bool      `json:"anomaly"` // sum deviates > 2 stddev from the mean of sums
}

// TimeSeriesResult carries descriptive statistics per draw in
// chronological order.
type TimeSeriesResult struct {
	Status  AnalysisStatus   `json:"status"`
	Error   string           `json:"error,omitempty"`
	MeanSum float64          `json:"mean_sum"`
	Draws   []DrawStatistics `json:"draws,omitempty"`
}

// VariantCorrelation is the Pearson correlation between the per-date
// number-sum features of two game variants over their shared dates.
type VariantCorrelation struct {
	GameA       GameType `json:"game_a"`
	GameB       GameType `json:"game_b"`
	SharedDates int      `json:"shared_dates"`
	Coefficient float64  `json:"coefficient"`
	Computable  bool     `json:"computable"` // false when shared dates were too few or variance was zero
}

// CorrelationResult reports pairwise correlations between variants drawn on
// the same calendar dates. Duplicate draws of a variant on one date resolve
// deterministically to the latest by draw number.
type CorrelationResult struct {
	Status AnalysisStatus       `json:"status"`
	Error  string               `json:"error,omitempty"`
	Pairs  []VariantCorrelation `json:"pairs,omitempty"`
	Notes  []string             `json:"notes,omitempty"` // data-quality notes (e.g. duplicate-date collisions)
}

// AnalysisSnapshot bundles the four independent analyses computed over one
// window of historical draws. Derived on demand, cacheable, never persisted
// as source data.
type AnalysisSnapshot struct {
	GameType    GameType          `json:"game_type"` // GameTypeUnknown means "all variants"
	Days        int               `json:"days"`
	GeneratedAt time.Time         `json:"generated_at"`
	TotalDraws  int               `json:"total_draws"`
	Frequency   FrequencyResult   `json:"frequency"`
	Clusters    ClusterResult     `json:"clusters"`
	TimeSeries  TimeSeriesResult  `json:"time_series"`
	Correlation CorrelationResult `json:"correlation"`
}
