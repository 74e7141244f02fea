package analytics

import (
	"sort"
	"time"

	"github.com/arifwicaksono/ecomdash/internal/models"
	"github.com/shopspring/decimal"
)

// YearlyOrders buckets orders by calendar year and reports, per year, the
// distinct order count and summed payment value. Buckets are labeled with
// the year-end timestamp and returned chronologically ascending. Years with
// no orders are omitted, not zero-filled.
func YearlyOrders(orders []models.Order) []models.YearBucket {
	type yearAgg struct {
		orderIDs map[string]struct{}
		revenue  decimal.Decimal
	}
	byYear := make(map[int]*yearAgg)

	for _, o := range orders {
		year := o.PurchaseTimestamp.UTC().Year()
		agg, ok := byYear[year]
		if !ok {
			agg = &yearAgg{orderIDs: make(map[string]struct{})}
			byYear[year] = agg
		}
		agg.orderIDs[o.OrderID] = struct{}{}
		agg.revenue = agg.revenue.Add(o.PaymentValue)
	}

	out := make([]models.YearBucket, 0, len(byYear))
	for year, agg := range byYear {
		out = append(out, models.YearBucket{
			YearEnd:    time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
			OrderCount: len(agg.orderIDs),
			Revenue:    agg.revenue,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].YearEnd.Before(out[j].YearEnd)
	})
	return out
}

// TotalOrders sums the per-year distinct order counts. Because every row of
// an order carries the same purchase timestamp, an order never spans year
// buckets and the sum equals the distinct order count of the whole slice.
func TotalOrders(years []models.YearBucket) int {
	total := 0
	for _, y := range years {
		total += y.OrderCount
	}
	return total
}

// TotalRevenue sums the per-year revenue.
func TotalRevenue(years []models.YearBucket) decimal.Decimal {
	total := decimal.Zero
	for _, y := range years {
		total = total.Add(y.Revenue)
	}
	return total
}
