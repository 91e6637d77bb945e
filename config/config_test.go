package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Load(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432")
	t.Setenv("DATABASE_NAME", "snaplotto")
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("ANALYSIS_MIN_DRAWS", "25")
	t.Setenv("ANALYSIS_CACHE_TTL_SECONDS", "120")

	cfg := Get()
	require.NotNil(t, cfg)

	assert.Equal(t, "9999", cfg.HTTPPort)
	assert.Equal(t, 25, cfg.AnalysisMinDraws)
	assert.Equal(t, 2*time.Minute, cfg.AnalysisCacheTTL)
	assert.Equal(t, "postgres://localhost:5432/snaplotto?sslmode=disable", cfg.GetDatabaseURL())
}

func TestConfig_Defaults(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("METRICS_PORT", "")
	t.Setenv("ANALYSIS_MIN_DRAWS", "")
	t.Setenv("ANALYSIS_CACHE_TTL_SECONDS", "")

	cfg := Get()
	require.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "9091", cfg.MetricsPort)
	assert.Equal(t, 10, cfg.AnalysisMinDraws)
	assert.Equal(t, 5*time.Minute, cfg.AnalysisCacheTTL)
}

func TestConfig_SetTestConfig(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	custom := NewTestConfig()
	custom.AnalysisMinDraws = 3
	SetTestConfig(custom)

	assert.Equal(t, 3, Get().AnalysisMinDraws)
}
