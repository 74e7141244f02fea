package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/arifwicaksono/ecomdash/internal/models"
	"github.com/shopspring/decimal"
)

// rfmLimit is the ranking cutoff for each of the three RFM charts.
const rfmLimit = 5

// RFM computes one Recency-Frequency-Monetary record per distinct customer:
// newest purchase timestamp, distinct order count and summed payment value.
// Recency is the whole-day gap between the newest purchase date across the
// entire slice and the customer's own newest purchase date, so it is never
// negative. Records are returned sorted by customer id ascending.
func RFM(orders []models.Order) []models.RFMRecord {
	type custAgg struct {
		newest   time.Time
		orderIDs map[string]struct{}
		monetary decimal.Decimal
	}
	byCustomer := make(map[string]*custAgg)
	var recent time.Time

	for _, o := range orders {
		agg, ok := byCustomer[o.CustomerID]
		if !ok {
			agg = &custAgg{newest: o.PurchaseTimestamp, orderIDs: make(map[string]struct{})}
			byCustomer[o.CustomerID] = agg
		} else if o.PurchaseTimestamp.After(agg.newest) {
			agg.newest = o.PurchaseTimestamp
		}
		agg.orderIDs[o.OrderID] = struct{}{}
		agg.monetary = agg.monetary.Add(o.PaymentValue)

		if o.PurchaseTimestamp.After(recent) {
			recent = o.PurchaseTimestamp
		}
	}

	recentDay := dayOf(recent)
	out := make([]models.RFMRecord, 0, len(byCustomer))
	for customerID, agg := range byCustomer {
		custDay := dayOf(agg.newest)
		out = append(out, models.RFMRecord{
			CustomerID:        customerID,
			MaxOrderTimestamp: agg.newest,
			Frequency:         len(agg.orderIDs),
			Monetary:          agg.monetary,
			RecencyDays:       int(recentDay.Sub(custDay).Hours() / 24),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CustomerID < out[j].CustomerID
	})
	return out
}

// TopByRecency returns the 5 most recently active customers (lowest recency
// first). Ties break on customer id ascending.
func TopByRecency(records []models.RFMRecord) []models.RFMRecord {
	return topRFM(records, func(a, b models.RFMRecord) bool {
		if a.RecencyDays != b.RecencyDays {
			return a.RecencyDays < b.RecencyDays
		}
		return a.CustomerID < b.CustomerID
	})
}

// TopByFrequency returns the 5 customers with the most distinct orders.
func TopByFrequency(records []models.RFMRecord) []models.RFMRecord {
	return topRFM(records, func(a, b models.RFMRecord) bool {
		if a.Frequency != b.Frequency {
			return a.Frequency > b.Frequency
		}
		return a.CustomerID < b.CustomerID
	})
}

// TopByMonetary returns the 5 customers with the highest total spend.
func TopByMonetary(records []models.RFMRecord) []models.RFMRecord {
	return topRFM(records, func(a, b models.RFMRecord) bool {
		if !a.Monetary.Equal(b.Monetary) {
			return a.Monetary.GreaterThan(b.Monetary)
		}
		return a.CustomerID < b.CustomerID
	})
}

func topRFM(records []models.RFMRecord, less func(a, b models.RFMRecord) bool) []models.RFMRecord {
	out := make([]models.RFMRecord, len(records))
	copy(out, records)
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	if len(out) > rfmLimit {
		out = out[:rfmLimit]
	}
	return out
}

// RFMAverages are the three scalar metrics above the RFM charts. Recency is
// rounded to 1 decimal and frequency to 2, matching the displayed precision.
type RFMAverages struct {
	RecencyDays float64
	Frequency   float64
	Monetary    decimal.Decimal
}

// Averages computes the mean recency, frequency and monetary value over all
// RFM records. An empty record set yields zero averages.
func Averages(records []models.RFMRecord) RFMAverages {
	if len(records) == 0 {
		return RFMAverages{Monetary: decimal.Zero}
	}

	var recencySum, frequencySum int
	monetarySum := decimal.Zero
	for _, r := range records {
		recencySum += r.RecencyDays
		frequencySum += r.Frequency
		monetarySum = monetarySum.Add(r.Monetary)
	}
	n := float64(len(records))
	return RFMAverages{
		RecencyDays: math.Round(float64(recencySum)/n*10) / 10,
		Frequency:   math.Round(float64(frequencySum)/n*100) / 100,
		Monetary:    monetarySum.Div(decimal.NewFromInt(int64(len(records)))),
	}
}
