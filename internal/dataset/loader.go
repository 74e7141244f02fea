// Package dataset loads the two flat e-commerce extracts into memory.
// The loaded Dataset is immutable: every aggregation downstream reads the
// slices and allocates its own output.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/arifwicaksono/ecomdash/internal/models"
	"github.com/shopspring/decimal"
)

// UnknownCategory is the bucket for catalog rows with an empty category
// name, so their prices are never dropped from category sums.
const UnknownCategory = "unknown"

// Timestamp layouts accepted in the extracts, tried in order.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type Dataset struct {
	// Orders is sorted ascending by purchase timestamp.
	Orders   []models.Order
	Listings []models.ProductListing
}

// Load reads both extracts. Any malformed row fails the whole load; there is
// no partial dashboard.
func Load(ordersPath, productsPath string) (*Dataset, error) {
	orders, err := loadOrders(ordersPath)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	listings, err := loadListings(productsPath)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].PurchaseTimestamp.Before(orders[j].PurchaseTimestamp)
	})
	return &Dataset{Orders: orders, Listings: listings}, nil
}

// Range returns the min and max purchase timestamps, or zero times when the
// dataset holds no orders.
func (d *Dataset) Range() (min, max time.Time) {
	if len(d.Orders) == 0 {
		return time.Time{}, time.Time{}
	}
	// Orders are kept sorted by Load.
	return d.Orders[0].PurchaseTimestamp, d.Orders[len(d.Orders)-1].PurchaseTimestamp
}

func loadOrders(path string) ([]models.Order, error) {
	rows, cols, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	required := []string{"order_id", "customer_id", "customer_city", "order_purchase_timestamp", "payment_value"}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	_, hasDelivery := cols["order_estimated_delivery_date"]

	orders := make([]models.Order, 0, len(rows))
	for i, row := range rows {
		ts, err := parseTimestamp(row[cols["order_purchase_timestamp"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: order_purchase_timestamp: %w", i+2, err)
		}
		payment, err := parseAmount(row[cols["payment_value"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: payment_value: %w", i+2, err)
		}
		o := models.Order{
			OrderID:           row[cols["order_id"]],
			CustomerID:        row[cols["customer_id"]],
			CustomerCity:      row[cols["customer_city"]],
			PurchaseTimestamp: ts,
			PaymentValue:      payment,
		}
		if hasDelivery {
			if raw := strings.TrimSpace(row[cols["order_estimated_delivery_date"]]); raw != "" {
				d, err := parseTimestamp(raw)
				if err != nil {
					return nil, fmt.Errorf("row %d: order_estimated_delivery_date: %w", i+2, err)
				}
				o.EstimatedDelivery = d
			}
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func loadListings(path string) ([]models.ProductListing, error) {
	rows, cols, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	for _, name := range []string{"product_id", "product_category_name", "price"} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	listings := make([]models.ProductListing, 0, len(rows))
	for i, row := range rows {
		price, err := parseAmount(row[cols["price"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: price: %w", i+2, err)
		}
		category := strings.TrimSpace(row[cols["product_category_name"]])
		if category == "" {
			category = UnknownCategory
		}
		listings = append(listings, models.ProductListing{
			ProductID:    row[cols["product_id"]],
			CategoryName: category,
			Price:        price,
		})
	}
	return listings, nil
}

// readCSV returns the data rows and a lower-cased header name -> index map.
func readCSV(path string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s: empty file, header row required", path)
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return records[1:], cols, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if ts, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", raw)
}

// parseAmount coerces an empty field to zero; nulls are included in sums as
// zero rather than silently dropped. Malformed non-empty values are errors.
func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", raw)
	}
	return d, nil
}
