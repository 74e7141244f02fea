package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

const timestampLayout = "2006-01-02 15:04:05"

// ExportCSV writes the normalized, timestamp-sorted tables to dir. This is a
// one-way export with no read-back contract; the in-memory Dataset stays the
// source of truth for the lifetime of the process.
func ExportCSV(d *Dataset, dir string) (orderPath, productPath string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create export dir: %w", err)
	}

	orderPath = filepath.Join(dir, "customer_order.csv")
	if err := writeOrders(d, orderPath); err != nil {
		return "", "", fmt.Errorf("export orders: %w", err)
	}

	productPath = filepath.Join(dir, "seller_product.csv")
	if err := writeListings(d, productPath); err != nil {
		return "", "", fmt.Errorf("export products: %w", err)
	}
	return orderPath, productPath, nil
}

func writeOrders(d *Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"order_id", "customer_id", "customer_city", "order_purchase_timestamp", "order_estimated_delivery_date", "payment_value"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, o := range d.Orders {
		delivery := ""
		if !o.EstimatedDelivery.IsZero() {
			delivery = o.EstimatedDelivery.Format(timestampLayout)
		}
		rec := []string{
			o.OrderID,
			o.CustomerID,
			o.CustomerCity,
			o.PurchaseTimestamp.Format(timestampLayout),
			delivery,
			o.PaymentValue.String(),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeListings(d *Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"product_id", "product_category_name", "price"}); err != nil {
		return err
	}
	for _, l := range d.Listings {
		if err := w.Write([]string{l.ProductID, l.CategoryName, l.Price.String()}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
