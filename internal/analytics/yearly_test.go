package analytics

import (
	"testing"
	"time"

	"github.com/arifwicaksono/ecomdash/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearlyOrders_SpecExample(t *testing.T) {
	got := YearlyOrders(specOrders())

	require.Len(t, got, 1)
	assert.Equal(t, time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), got[0].YearEnd)
	// O1 appears in two payment rows but counts once
	assert.Equal(t, 2, got[0].OrderCount)
	assert.Equal(t, "350", got[0].Revenue.String())
}

func TestYearlyOrders_OmitsEmptyYears(t *testing.T) {
	orders := []models.Order{
		ord("O1", "C1", "city a", "2021-07-01", 10),
		ord("O2", "C2", "city b", "2023-02-01", 20),
	}

	got := YearlyOrders(orders)

	// 2022 had no orders and gets no synthetic zero bucket
	require.Len(t, got, 2)
	assert.Equal(t, 2021, got[0].YearEnd.Year())
	assert.Equal(t, 2023, got[1].YearEnd.Year())
}

func TestYearlyOrders_ChronologicalOrder(t *testing.T) {
	orders := []models.Order{
		ord("O3", "C3", "city c", "2024-01-01", 5),
		ord("O1", "C1", "city a", "2021-01-01", 5),
		ord("O2", "C2", "city b", "2022-01-01", 5),
	}

	got := YearlyOrders(orders)

	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].YearEnd.Before(got[i].YearEnd))
	}
}

func TestYearlyOrders_Empty(t *testing.T) {
	assert.Empty(t, YearlyOrders(nil))
}

func TestTotalOrders_EqualsDistinctOrderCount(t *testing.T) {
	orders := []models.Order{
		ord("O1", "C1", "city a", "2021-03-01", 10),
		ord("O1", "C1", "city a", "2021-03-01", 15),
		ord("O2", "C1", "city a", "2022-05-01", 20),
		ord("O3", "C2", "city b", "2022-06-01", 30),
		ord("O3", "C2", "city b", "2022-06-01", 5),
		ord("O4", "C3", "city c", "2023-01-01", 40),
	}

	years := YearlyOrders(orders)

	distinct := make(map[string]struct{})
	for _, o := range orders {
		distinct[o.OrderID] = struct{}{}
	}
	assert.Equal(t, len(distinct), TotalOrders(years))
	assert.Equal(t, "120", TotalRevenue(years).String())
}

func TestYearlyOrders_DoesNotMutateInput(t *testing.T) {
	orders := specOrders()
	original := specOrders()

	_ = YearlyOrders(orders)
	assert.Equal(t, original, orders)
}
