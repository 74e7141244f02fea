package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is one row of the customer/order extract. An order that was paid in
// multiple installments appears as multiple rows sharing the same OrderID,
// so order counts are always distinct counts.
type Order struct {
	OrderID           string          `json:"order_id"`
	CustomerID        string          `json:"customer_id"`
	CustomerCity      string          `json:"customer_city"`
	PurchaseTimestamp time.Time       `json:"order_purchase_timestamp"`
	EstimatedDelivery time.Time       `json:"order_estimated_delivery_date"`
	PaymentValue      decimal.Decimal `json:"payment_value"`
}

// ProductListing is one row of the seller/product extract. The catalog
// carries no timestamps; category metrics are therefore independent of any
// order date range.
type ProductListing struct {
	ProductID    string          `json:"product_id"`
	CategoryName string          `json:"product_category_name"`
	Price        decimal.Decimal `json:"price"`
}

// YearBucket is one calendar year of order activity, labeled with the
// year-end timestamp (Dec 31, UTC).
type YearBucket struct {
	YearEnd    time.Time       `json:"year_end"`
	OrderCount int             `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// CityCount ranks a city by its distinct customer count.
type CityCount struct {
	City          string `json:"city"`
	CustomerCount int    `json:"customer_count"`
}

// CategoryStat summarizes a product category across the full catalog.
type CategoryStat struct {
	Category           string          `json:"category"`
	UniqueProductCount int             `json:"unique_product_count"`
	TotalPrice         decimal.Decimal `json:"total_price"`
}

// RFMRecord is the per-customer Recency-Frequency-Monetary score.
// RecencyDays is the whole-day gap between the newest purchase date in the
// analyzed slice and this customer's newest purchase date; it is never
// negative.
type RFMRecord struct {
	CustomerID        string          `json:"customer_id"`
	MaxOrderTimestamp time.Time       `json:"max_order_timestamp"`
	Frequency         int             `json:"frequency"`
	Monetary          decimal.Decimal `json:"monetary"`
	RecencyDays       int             `json:"recency"`
}
