// internal/forecast/series.go
package forecast

import (
	"time"

	"github.com/stocklens/wms-backend/internal/domain"
)

// AggregateDaily buckets outbound transactions into a dense daily
// demand series covering [now - days, now]. Every calendar day in the
// window gets an entry, zero when nothing shipped, so the result always
// has days+1 points in ascending date order. Quantities are taken as
// absolute values since OUT movements are stored negative.
//
// Day boundaries are UTC. Every caller must use the same reference
// clock or window edges drift against the buckets.
func AggregateDaily(transactions []domain.Transaction, days int, now time.Time) domain.DailySeries {
	windowEnd := now.UTC()
	windowStart := windowEnd.AddDate(0, 0, -days)

	demand := make(map[time.Time]int)
	for _, t := range transactions {
		if t.Type != domain.TransactionOut {
			continue
		}
		created := t.CreatedAt.UTC()
		if created.Before(windowStart) || created.After(windowEnd) {
			continue
		}
		qty := t.Quantity
		if qty < 0 {
			qty = -qty
		}
		demand[dayOf(created)] += qty
	}

	series := make(domain.DailySeries, 0, days+1)
	for d := 0; d <= days; d++ {
		day := dayOf(windowStart).AddDate(0, 0, d)
		series = append(series, domain.DailyPoint{
			Date:     day,
			Quantity: demand[day],
		})
	}

	return series
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
