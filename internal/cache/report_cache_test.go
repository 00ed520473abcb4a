package cache

import (
	"context"
	"testing"

	"github.com/stocklens/wms-backend/internal/config"
	"github.com/stocklens/wms-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopReportCache(t *testing.T) {
	c := NewNoopReportCache()
	ctx := context.Background()
	params := domain.ReportParams{HistoryDays: 90, ForecastDays: 30, Algorithm: "exponential"}

	report, ok, err := c.GetReport(ctx, params)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, report)

	assert.NoError(t, c.SetReport(ctx, params, &domain.ForecastReport{}))
}

func TestNewReportCacheDisabled(t *testing.T) {
	// Caching off must not try to reach redis
	c, err := NewReportCache(config.CacheConfig{Enabled: false})
	require.NoError(t, err)

	_, ok, err := c.GetReport(context.Background(), domain.ReportParams{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReportKeyDistinguishesParams(t *testing.T) {
	base := domain.ReportParams{HistoryDays: 90, ForecastDays: 30, Algorithm: "exponential"}

	assert.Equal(t, "forecast:report:90:30:exponential", reportKey(base))

	// Every parameter participates in the key so different requests
	// never share an entry
	variants := []domain.ReportParams{
		{HistoryDays: 30, ForecastDays: 30, Algorithm: "exponential"},
		{HistoryDays: 90, ForecastDays: 14, Algorithm: "exponential"},
		{HistoryDays: 90, ForecastDays: 30, Algorithm: "sma"},
	}
	for _, v := range variants {
		assert.NotEqual(t, reportKey(base), reportKey(v))
	}
}
