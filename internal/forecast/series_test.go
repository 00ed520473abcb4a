package forecast

import (
	"testing"
	"time"

	"github.com/stocklens/wms-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seriesNow = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

func outTx(productID int64, qty int, createdAt time.Time) domain.Transaction {
	return domain.Transaction{
		ProductID: productID,
		Type:      domain.TransactionOut,
		Quantity:  -qty,
		CreatedAt: createdAt,
	}
}

func TestAggregateDailyDenseRegardlessOfSparsity(t *testing.T) {
	// A single transaction in a 14-day window still yields 15 dense days
	transactions := []domain.Transaction{
		outTx(1, 6, seriesNow.AddDate(0, 0, -3)),
	}

	series := AggregateDaily(transactions, 14, seriesNow)
	require.Len(t, series, 15)

	for i := 1; i < len(series); i++ {
		assert.Equal(t, series[i-1].Date.AddDate(0, 0, 1), series[i].Date,
			"dates must be consecutive with no gaps")
	}

	assert.Equal(t, 6, series.Total())
	assert.Equal(t, 6, series[11].Quantity) // 3 days before the last entry
}

func TestAggregateDailyEmptyHistory(t *testing.T) {
	series := AggregateDaily(nil, 7, seriesNow)
	require.Len(t, series, 8)
	for _, p := range series {
		assert.Zero(t, p.Quantity)
	}
}

func TestAggregateDailyFiltersTypeAndWindow(t *testing.T) {
	transactions := []domain.Transaction{
		outTx(1, 5, seriesNow.AddDate(0, 0, -1)),
		{ProductID: 1, Type: domain.TransactionIn, Quantity: 50, CreatedAt: seriesNow.AddDate(0, 0, -1)},
		{ProductID: 1, Type: domain.TransactionAdjust, Quantity: -3, CreatedAt: seriesNow.AddDate(0, 0, -1)},
		outTx(1, 9, seriesNow.AddDate(0, 0, -20)), // outside the window
		outTx(1, 4, seriesNow.Add(time.Hour)),     // in the future
	}

	series := AggregateDaily(transactions, 7, seriesNow)
	assert.Equal(t, 5, series.Total())
}

func TestAggregateDailySumsAbsoluteQuantities(t *testing.T) {
	day := seriesNow.AddDate(0, 0, -2)
	transactions := []domain.Transaction{
		outTx(1, 3, day.Add(-2*time.Hour)),
		outTx(1, 4, day),
		outTx(1, 2, day.Add(3*time.Hour)),
	}

	series := AggregateDaily(transactions, 7, seriesNow)
	assert.Equal(t, 9, series.Total())
	assert.Equal(t, 9, series[5].Quantity)
}

func TestAggregateDailyNormalizesTimezones(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)

	// 02:00 WIB on July 1 is 19:00 UTC on June 30
	local := time.Date(2025, 7, 1, 2, 0, 0, 0, jakarta)
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	series := AggregateDaily([]domain.Transaction{outTx(1, 5, local)}, 3, now)

	last := series[len(series)-1]
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), last.Date)
	assert.Zero(t, last.Quantity)
	assert.Equal(t, 5, series[len(series)-2].Quantity)
}
