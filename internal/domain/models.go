// internal/domain/models.go
package domain

import "time"

// Transaction types recorded against a product's stock level.
const (
	TransactionIn     = "IN"
	TransactionOut    = "OUT"
	TransactionAdjust = "ADJUST"
)

// Product is a snapshot of one SKU's inventory state.
type Product struct {
	ID           int64     `json:"id" db:"id"`
	SKU          string    `json:"sku" db:"sku"`
	Name         string    `json:"name" db:"name"`
	CategoryID   int64     `json:"category_id" db:"category_id"`
	CategoryName string    `json:"category_name" db:"category_name"`
	Quantity     int       `json:"quantity" db:"quantity"`
	MinStock     int       `json:"min_stock" db:"min_stock"`
	MaxStock     int       `json:"max_stock" db:"max_stock"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Category groups products and carries a display color for charts.
type Category struct {
	ID       int64     `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Color    string    `json:"color" db:"color"`
	Products []Product `json:"products" db:"-"`
}

// Transaction is a single stock movement. Quantity is signed: OUT
// transactions are stored negative, IN positive.
type Transaction struct {
	ID        int64     `json:"id" db:"id"`
	ProductID int64     `json:"product_id" db:"product_id"`
	Type      string    `json:"transaction_type" db:"transaction_type"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Reference string    `json:"reference_type" db:"reference_type"`
	Reason    string    `json:"reason" db:"reason"`
	CreatedBy string    `json:"created_by" db:"created_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// DailyPoint is one day of aggregated demand.
type DailyPoint struct {
	Date     time.Time `json:"date"`
	Quantity int       `json:"quantity"`
}

// DailySeries is a dense, gap-free daily demand series ordered oldest
// to newest. Index 0 is the oldest day; days with no recorded demand
// carry an explicit zero.
type DailySeries []DailyPoint

// Values returns the quantities as a float slice in series order.
func (s DailySeries) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = float64(p.Quantity)
	}
	return values
}

// Total sums the demand over the whole series.
func (s DailySeries) Total() int {
	total := 0
	for _, p := range s {
		total += p.Quantity
	}
	return total
}

// Max returns the largest single-day demand in the series.
func (s DailySeries) Max() int {
	max := 0
	for _, p := range s {
		if p.Quantity > max {
			max = p.Quantity
		}
	}
	return max
}

// AlgorithmResults holds the output of every forecasting method for
// one product, regardless of which one was selected as primary.
type AlgorithmResults struct {
	SMA         float64 `json:"sma"`
	WMA         float64 `json:"wma"`
	Exponential float64 `json:"exponential"`
	LinearAvg   float64 `json:"linear_avg"`
	HoltAvg     float64 `json:"holt_avg"`
}

// ForecastResult is the assembled forecast for a single product. It is
// computed fresh per request and never persisted.
type ForecastResult struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	ProductSKU  string `json:"product_sku"`
	Category    string `json:"category"`

	CurrentStock int    `json:"current_stock"`
	MinStock     int    `json:"min_stock"`
	MaxStock     int    `json:"max_stock"`
	StockStatus  string `json:"stock_status"`

	HistoryDays           int     `json:"history_days"`
	TotalHistoricalDemand int     `json:"total_historical_demand"`
	AvgDailyDemand        float64 `json:"avg_daily_demand"`
	MaxDailyDemand        int     `json:"max_daily_demand"`

	ForecastDays  int       `json:"forecast_days"`
	Algorithm     string    `json:"algorithm"`
	DailyForecast float64   `json:"daily_forecast"`
	TotalForecast float64   `json:"total_forecast"`
	LinearTrend   []float64 `json:"linear_trend"`
	HoltTrend     []float64 `json:"holt_trend"`

	Algorithms AlgorithmResults `json:"algorithms"`

	SafetyStock       int     `json:"safety_stock"`
	ProjectedStock    float64 `json:"projected_stock"`
	RestockNeeded     int     `json:"restock_needed"`
	OptimalRestock    int     `json:"optimal_restock"`
	DaysUntilStockout int     `json:"days_until_stockout"`

	HistoricalSeries DailySeries `json:"historical_series"`
}

// CategoryForecast aggregates per-product forecasts over one category.
type CategoryForecast struct {
	CategoryID            int64   `json:"category_id"`
	CategoryName          string  `json:"category_name"`
	Color                 string  `json:"color"`
	ProductCount          int     `json:"product_count"`
	TotalHistoricalDemand int     `json:"total_historical_demand"`
	TotalForecast         float64 `json:"total_forecast"`
	TotalCurrentStock     int     `json:"total_current_stock"`
	TotalRestockNeeded    int     `json:"total_restock_needed"`
}

// ReportParams are the request parameters a report was generated with.
type ReportParams struct {
	HistoryDays  int    `json:"history_days"`
	ForecastDays int    `json:"forecast_days"`
	Algorithm    string `json:"algorithm"`
}

// ReportSummary holds the headline counts of a forecast report.
type ReportSummary struct {
	TotalProducts          int `json:"total_products"`
	ProductsNeedingRestock int `json:"products_needing_restock"`
	CriticalStockoutItems  int `json:"critical_stockout_items"`
	WarningItems           int `json:"warning_items"`
}

// ForecastReport is the full export payload: every product forecast
// sorted by urgency, the critical and warning subsets, and the
// per-category rollups. Immutable once produced.
type ForecastReport struct {
	GeneratedAt   time.Time          `json:"generated_at"`
	Parameters    ReportParams       `json:"parameters"`
	Summary       ReportSummary      `json:"summary"`
	CriticalItems []ForecastResult   `json:"critical_items"`
	WarningItems  []ForecastResult   `json:"warning_items"`
	AllProducts   []ForecastResult   `json:"all_products"`
	ByCategory    []CategoryForecast `json:"by_category"`
}
