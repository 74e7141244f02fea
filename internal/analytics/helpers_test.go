package analytics

import (
	"time"

	"github.com/arifwicaksono/ecomdash/internal/models"
	"github.com/shopspring/decimal"
)

// ts parses a test timestamp, accepting date-only strings.
func ts(s string) time.Time {
	if t, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.UTC); err == nil {
		return t
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func ord(orderID, customerID, city, when string, payment int64) models.Order {
	return models.Order{
		OrderID:           orderID,
		CustomerID:        customerID,
		CustomerCity:      city,
		PurchaseTimestamp: ts(when),
		PaymentValue:      decimal.NewFromInt(payment),
	}
}

func listing(productID, category string, price int64) models.ProductListing {
	return models.ProductListing{
		ProductID:    productID,
		CategoryName: category,
		Price:        decimal.NewFromInt(price),
	}
}

// specOrders is the worked example from the product requirements:
// O1 has two payment rows for C1 in city a, O2 is a single row for C2.
func specOrders() []models.Order {
	return []models.Order{
		ord("O1", "C1", "city a", "2023-01-05", 100),
		ord("O1", "C1", "city a", "2023-01-05", 50),
		ord("O2", "C2", "city b", "2023-06-01", 200),
	}
}
