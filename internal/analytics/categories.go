package analytics

import (
	"sort"

	"github.com/arifwicaksono/ecomdash/internal/models"
	"github.com/shopspring/decimal"
)

// CategorySummary groups the catalog by category and reports, per category,
// the distinct product count and summed listing price, sorted descending by
// total price with category name as the tie break.
//
// The catalog extract has no timestamps, so this summary always covers the
// full catalog regardless of the dashboard's selected date range.
func CategorySummary(listings []models.ProductListing) []models.CategoryStat {
	type catAgg struct {
		productIDs map[string]struct{}
		totalPrice decimal.Decimal
	}
	byCategory := make(map[string]*catAgg)

	for _, l := range listings {
		agg, ok := byCategory[l.CategoryName]
		if !ok {
			agg = &catAgg{productIDs: make(map[string]struct{})}
			byCategory[l.CategoryName] = agg
		}
		agg.productIDs[l.ProductID] = struct{}{}
		agg.totalPrice = agg.totalPrice.Add(l.Price)
	}

	out := make([]models.CategoryStat, 0, len(byCategory))
	for category, agg := range byCategory {
		out = append(out, models.CategoryStat{
			Category:           category,
			UniqueProductCount: len(agg.productIDs),
			TotalPrice:         agg.totalPrice,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TotalPrice.Equal(out[j].TotalPrice) {
			return out[i].TotalPrice.GreaterThan(out[j].TotalPrice)
		}
		return out[i].Category < out[j].Category
	})
	return out
}
