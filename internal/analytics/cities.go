package analytics

import (
	"sort"

	"github.com/arifwicaksono/ecomdash/internal/models"
)

// cityLimit is the ranking cutoff for the city bar chart.
const cityLimit = 5

// TopCities groups orders by customer city, counts distinct customers per
// city and returns the top 5 by count. Ties break on city name ascending so
// the ranking is reproducible.
func TopCities(orders []models.Order) []models.CityCount {
	customersByCity := make(map[string]map[string]struct{})
	for _, o := range orders {
		set, ok := customersByCity[o.CustomerCity]
		if !ok {
			set = make(map[string]struct{})
			customersByCity[o.CustomerCity] = set
		}
		set[o.CustomerID] = struct{}{}
	}

	out := make([]models.CityCount, 0, len(customersByCity))
	for city, customers := range customersByCity {
		out = append(out, models.CityCount{City: city, CustomerCount: len(customers)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CustomerCount != out[j].CustomerCount {
			return out[i].CustomerCount > out[j].CustomerCount
		}
		return out[i].City < out[j].City
	})

	if len(out) > cityLimit {
		out = out[:cityLimit]
	}
	return out
}
