// Package analytics holds the pure aggregation functions behind each
// dashboard block. Every function treats its input as read-only and returns
// freshly allocated output, so concurrent viewers of the same dataset never
// observe each other.
package analytics

import (
	"time"

	"github.com/arifwicaksono/ecomdash/internal/models"
)

// FilterByDateRange returns the orders whose purchase timestamp falls inside
// [start, end], compared at day granularity: a timestamp anywhere on the end
// date is included. An inverted range (start after end) is a valid
// empty-result query.
func FilterByDateRange(orders []models.Order, start, end time.Time) []models.Order {
	startDay := dayOf(start)
	endDay := dayOf(end)

	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		day := dayOf(o.PurchaseTimestamp)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// dayOf truncates a timestamp to midnight UTC.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
