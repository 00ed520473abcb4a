// internal/cache/report_cache.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stocklens/wms-backend/internal/config"
	"github.com/stocklens/wms-backend/internal/domain"
)

const reportKeyPrefix = "forecast:report"

// ReportCache sits at the HTTP boundary in front of report generation.
// The forecasting core itself always recomputes; this only avoids
// re-running a full fan-out for identical back-to-back requests.
// Entries expire by TTL; nothing in the system mutates forecast inputs
// through this service, so there is no explicit invalidation path.
type ReportCache interface {
	GetReport(ctx context.Context, params domain.ReportParams) (*domain.ForecastReport, bool, error)
	SetReport(ctx context.Context, params domain.ReportParams, report *domain.ForecastReport) error
}

type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopReportCache struct{}

func NewReportCache(cfg config.CacheConfig) (ReportCache, error) {
	if !cfg.Enabled {
		return &noopReportCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisReportCache{client: client, ttl: ttl}, nil
}

func NewNoopReportCache() ReportCache {
	return &noopReportCache{}
}

func (c *redisReportCache) GetReport(ctx context.Context, params domain.ReportParams) (*domain.ForecastReport, bool, error) {
	payload, err := c.client.Get(ctx, reportKey(params)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var report domain.ForecastReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, false, fmt.Errorf("decode report cache: %w", err)
	}

	return &report, true, nil
}

func (c *redisReportCache) SetReport(ctx context.Context, params domain.ReportParams, report *domain.ForecastReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report cache: %w", err)
	}

	if err := c.client.Set(ctx, reportKey(params), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (n *noopReportCache) GetReport(ctx context.Context, params domain.ReportParams) (*domain.ForecastReport, bool, error) {
	return nil, false, nil
}

func (n *noopReportCache) SetReport(ctx context.Context, params domain.ReportParams, report *domain.ForecastReport) error {
	return nil
}

func reportKey(params domain.ReportParams) string {
	return fmt.Sprintf("%s:%d:%d:%s", reportKeyPrefix, params.HistoryDays, params.ForecastDays, params.Algorithm)
}
