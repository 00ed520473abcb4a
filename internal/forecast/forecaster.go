// internal/forecast/forecaster.go
package forecast

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stocklens/wms-backend/internal/domain"
	"github.com/stocklens/wms-backend/internal/repository"
)

// Request parameter defaults and report thresholds.
const (
	DefaultHistoryDays  = 90
	DefaultForecastDays = 30

	// StockoutSentinel marks "no foreseeable stockout" when the daily
	// forecast is zero. Consumers must treat it as infinity, not a day
	// count; it sorts last by construction.
	StockoutSentinel = 999

	criticalStockoutDays = 7
	warningStockoutDays  = 14
)

// Forecaster computes demand forecasts and restock recommendations
// over the inventory repository. It holds no state of its own: every
// call re-reads history and recomputes from scratch.
type Forecaster struct {
	repo repository.InventoryRepository
	now  func() time.Time
}

func NewForecaster(repo repository.InventoryRepository) *Forecaster {
	return &Forecaster{repo: repo, now: time.Now}
}

// WithClock replaces the reference clock, pinning the history window
// for deterministic tests.
func (f *Forecaster) WithClock(now func() time.Time) *Forecaster {
	f.now = now
	return f
}

// NormalizeParams applies the documented defaults and folds unknown
// algorithm names onto exponential smoothing.
func NormalizeParams(params domain.ReportParams) domain.ReportParams {
	if params.HistoryDays <= 0 {
		params.HistoryDays = DefaultHistoryDays
	}
	if params.ForecastDays <= 0 {
		params.ForecastDays = DefaultForecastDays
	}
	params.Algorithm = string(ParseAlgorithm(params.Algorithm))
	return params
}

// HistoricalDemand reads the outbound transaction history for one
// product (or all products when productID is 0) and aggregates it into
// a dense daily series over the last days days.
func (f *Forecaster) HistoricalDemand(ctx context.Context, productID int64, days int) (domain.DailySeries, error) {
	now := f.now()
	transactions, err := f.repo.ListTransactions(ctx, repository.TransactionFilter{
		ProductID: productID,
		Type:      domain.TransactionOut,
		Since:     now.UTC().AddDate(0, 0, -days),
		Until:     now.UTC(),
	})
	if err != nil {
		return nil, err
	}

	return AggregateDaily(transactions, days, now), nil
}

// ForecastProduct assembles the full forecast for one product: all
// five algorithm outputs, the primary forecast selected by params, the
// safety stock buffer and the restock recommendation. Returns
// repository.ErrProductNotFound when the id does not exist.
func (f *Forecaster) ForecastProduct(ctx context.Context, productID int64, params domain.ReportParams) (*domain.ForecastResult, error) {
	params = NormalizeParams(params)

	product, err := f.repo.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	series, err := f.HistoricalDemand(ctx, productID, params.HistoryDays)
	if err != nil {
		return nil, err
	}
	values := series.Values()

	sma := SimpleMovingAverage(values, DefaultWindow)
	wma := WeightedMovingAverage(values, DefaultWindow)
	ses := ExponentialSmoothing(values, DefaultAlpha)
	linear := LinearRegression(values, params.ForecastDays)
	holt := HoltLinearTrend(values, DefaultAlpha, DefaultBeta, params.ForecastDays)

	var dailyForecast float64
	switch ParseAlgorithm(params.Algorithm) {
	case AlgorithmSMA:
		dailyForecast = sma
	case AlgorithmWMA:
		dailyForecast = wma
	case AlgorithmLinear:
		dailyForecast = mean(linear)
	case AlgorithmHolt:
		dailyForecast = mean(holt)
	default:
		dailyForecast = ses
	}

	totalForecast := dailyForecast * float64(params.ForecastDays)
	safetyStock := SafetyStock(values, DefaultServiceLevel)

	projectedStock := float64(product.Quantity) - totalForecast
	restockNeeded := math.Max(0, float64(product.MinStock+safetyStock)-projectedStock)
	optimalRestock := math.Max(0, float64(product.MaxStock)-projectedStock)

	daysUntilStockout := StockoutSentinel
	if dailyForecast > 0 {
		daysUntilStockout = int(math.Round(float64(product.Quantity) / dailyForecast))
	}

	return &domain.ForecastResult{
		ProductID:   product.ID,
		ProductName: product.Name,
		ProductSKU:  product.SKU,
		Category:    categoryName(product),

		CurrentStock: product.Quantity,
		MinStock:     product.MinStock,
		MaxStock:     product.MaxStock,
		StockStatus:  product.StockStatus(),

		HistoryDays:           params.HistoryDays,
		TotalHistoricalDemand: series.Total(),
		AvgDailyDemand:        round2(mean(values)),
		MaxDailyDemand:        series.Max(),

		ForecastDays:  params.ForecastDays,
		Algorithm:     params.Algorithm,
		DailyForecast: round2(dailyForecast),
		TotalForecast: round2(totalForecast),
		LinearTrend:   round2Slice(linear),
		HoltTrend:     round2Slice(holt),

		Algorithms: domain.AlgorithmResults{
			SMA:         round2(sma),
			WMA:         round2(wma),
			Exponential: round2(ses),
			LinearAvg:   round2(mean(linear)),
			HoltAvg:     round2(mean(holt)),
		},

		SafetyStock:       safetyStock,
		ProjectedStock:    round2(projectedStock),
		RestockNeeded:     int(math.Round(restockNeeded)),
		OptimalRestock:    int(math.Round(optimalRestock)),
		DaysUntilStockout: daysUntilStockout,

		HistoricalSeries: series,
	}, nil
}

// ForecastAllProducts runs the per-product forecast for every product,
// sorted by days until stockout so the most urgent items come first.
// Products that disappear mid-run are skipped rather than failing the
// whole batch.
func (f *Forecaster) ForecastAllProducts(ctx context.Context, params domain.ReportParams) ([]domain.ForecastResult, error) {
	params = NormalizeParams(params)

	products, err := f.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	forecasts := make([]domain.ForecastResult, 0, len(products))
	for _, product := range products {
		result, err := f.ForecastProduct(ctx, product.ID, params)
		if err != nil {
			if err == repository.ErrProductNotFound {
				log.Warn().Int64("product_id", product.ID).Msg("product vanished during forecast, skipping")
				continue
			}
			return nil, err
		}
		forecasts = append(forecasts, *result)
	}

	sort.SliceStable(forecasts, func(i, j int) bool {
		return forecasts[i].DaysUntilStockout < forecasts[j].DaysUntilStockout
	})

	return forecasts, nil
}

// ForecastByCategory rolls per-product forecasts up into category
// totals. Categories without products are omitted. Each category total
// is the exact sum of its members' individual forecasts, using the
// default exponential algorithm.
func (f *Forecaster) ForecastByCategory(ctx context.Context, historyDays, forecastDays int) ([]domain.CategoryForecast, error) {
	params := NormalizeParams(domain.ReportParams{
		HistoryDays:  historyDays,
		ForecastDays: forecastDays,
	})

	categories, err := f.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]domain.CategoryForecast, 0, len(categories))
	for _, category := range categories {
		if len(category.Products) == 0 {
			continue
		}

		summary := domain.CategoryForecast{
			CategoryID:   category.ID,
			CategoryName: category.Name,
			Color:        category.Color,
			ProductCount: len(category.Products),
		}

		for _, product := range category.Products {
			result, err := f.ForecastProduct(ctx, product.ID, params)
			if err != nil {
				if err == repository.ErrProductNotFound {
					continue
				}
				return nil, err
			}
			summary.TotalHistoricalDemand += result.TotalHistoricalDemand
			summary.TotalForecast += result.TotalForecast
			summary.TotalCurrentStock += result.CurrentStock
			summary.TotalRestockNeeded += result.RestockNeeded
		}

		summary.TotalForecast = round2(summary.TotalForecast)
		results = append(results, summary)
	}

	return results, nil
}

// GenerateReport builds the complete export payload: the urgency-sorted
// product list, the critical (stockout within 7 days) and warning
// (8-14 days) subsets, category rollups and summary counts.
func (f *Forecaster) GenerateReport(ctx context.Context, params domain.ReportParams) (*domain.ForecastReport, error) {
	params = NormalizeParams(params)

	allForecasts, err := f.ForecastAllProducts(ctx, params)
	if err != nil {
		return nil, err
	}

	byCategory, err := f.ForecastByCategory(ctx, params.HistoryDays, params.ForecastDays)
	if err != nil {
		return nil, err
	}

	needingRestock := 0
	critical := make([]domain.ForecastResult, 0)
	warning := make([]domain.ForecastResult, 0)
	for _, result := range allForecasts {
		if result.RestockNeeded > 0 {
			needingRestock++
		}
		switch {
		case result.DaysUntilStockout <= criticalStockoutDays:
			critical = append(critical, result)
		case result.DaysUntilStockout <= warningStockoutDays:
			warning = append(warning, result)
		}
	}

	return &domain.ForecastReport{
		GeneratedAt: f.now().UTC(),
		Parameters:  params,
		Summary: domain.ReportSummary{
			TotalProducts:          len(allForecasts),
			ProductsNeedingRestock: needingRestock,
			CriticalStockoutItems:  len(critical),
			WarningItems:           len(warning),
		},
		CriticalItems: critical,
		WarningItems:  warning,
		AllProducts:   allForecasts,
		ByCategory:    byCategory,
	}, nil
}

func categoryName(product *domain.Product) string {
	if product.CategoryName == "" {
		return "Uncategorized"
	}
	return product.CategoryName
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round2Slice(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = round2(v)
	}
	return out
}
