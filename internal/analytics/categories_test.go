package analytics

import (
	"testing"

	"github.com/arifwicaksono/ecomdash/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorySummary_SpecExample(t *testing.T) {
	listings := []models.ProductListing{
		listing("P1", "Toys", 10),
		listing("P2", "Toys", 20),
		listing("P3", "Books", 5),
	}

	got := CategorySummary(listings)

	require.Len(t, got, 2)
	assert.Equal(t, "Toys", got[0].Category)
	assert.Equal(t, 2, got[0].UniqueProductCount)
	assert.Equal(t, "30", got[0].TotalPrice.String())
	assert.Equal(t, "Books", got[1].Category)
	assert.Equal(t, 1, got[1].UniqueProductCount)
	assert.Equal(t, "5", got[1].TotalPrice.String())
}

func TestCategorySummary_DistinctProducts(t *testing.T) {
	listings := []models.ProductListing{
		// Same product listed by two sellers: price sums, product counts once
		listing("P1", "Toys", 10),
		listing("P1", "Toys", 12),
	}

	got := CategorySummary(listings)

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].UniqueProductCount)
	assert.Equal(t, "22", got[0].TotalPrice.String())
}

func TestCategorySummary_TieBreaksOnCategoryName(t *testing.T) {
	listings := []models.ProductListing{
		listing("P1", "zeta", 10),
		listing("P2", "alpha", 10),
	}

	got := CategorySummary(listings)

	require.Len(t, got, 2)
	assert.Equal(t, "alpha", got[0].Category)
	assert.Equal(t, "zeta", got[1].Category)
}

func TestCategorySummary_Empty(t *testing.T) {
	assert.Empty(t, CategorySummary(nil))
}

func TestCategorySummary_DoesNotMutateInput(t *testing.T) {
	listings := []models.ProductListing{
		listing("P1", "Toys", 10),
		listing("P2", "Books", 5),
	}
	original := []models.ProductListing{
		listing("P1", "Toys", 10),
		listing("P2", "Books", 5),
	}

	_ = CategorySummary(listings)
	assert.Equal(t, original, listings)
}
