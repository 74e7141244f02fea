package server

import "github.com/arifwicaksono/ecomdash/internal/models"

// ErrorResponse represents a standardized error response format
type ErrorResponse struct {
	Error   string `json:"error"`             // Human-readable error message
	Code    int    `json:"code"`              // HTTP status code
	Details any    `json:"details,omitempty"` // Additional error details (dev mode only)
}

// HealthResponse represents the health check response
type HealthResponse struct {
	OK bool `json:"ok"`
}

// RangeResponse carries the dataset's purchase date bounds; the UI uses them
// to constrain its date picker.
type RangeResponse struct {
	MinDate string `json:"min_date"` // YYYY-MM-DD, empty if dataset has no orders
	MaxDate string `json:"max_date"`
}

// YearlyResponse is the line-chart dataset of orders and revenue per year.
type YearlyResponse struct {
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
	Items     []models.YearBucket `json:"items"`
}

// CitiesResponse is the bar-chart dataset of top cities by customer count.
type CitiesResponse struct {
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
	Items     []models.CityCount `json:"items"`
}

// CategoriesResponse is the dual-axis chart dataset of category totals. It
// always covers the full catalog; the catalog carries no dates to filter on.
type CategoriesResponse struct {
	Items []models.CategoryStat `json:"items"`
}

// RFMBlock carries the three scalar averages and the three top-5 rankings of
// the same per-customer record set.
type RFMBlock struct {
	AvgRecencyDays float64            `json:"avg_recency_days"`
	AvgFrequency   float64            `json:"avg_frequency"`
	AvgMonetary    string             `json:"avg_monetary"` // formatted currency
	TopByRecency   []models.RFMRecord `json:"top_by_recency"`
	TopByFrequency []models.RFMRecord `json:"top_by_frequency"`
	TopByMonetary  []models.RFMRecord `json:"top_by_monetary"`
}

// RFMResponse wraps the RFM block for its standalone endpoint.
type RFMResponse struct {
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	RFM       RFMBlock `json:"rfm"`
}

// DashboardResponse is the full view: one payload per display refresh.
type DashboardResponse struct {
	StartDate    string                `json:"start_date"`
	EndDate      string                `json:"end_date"`
	TotalOrders  int                   `json:"total_orders"`
	TotalRevenue string                `json:"total_revenue"` // formatted currency
	Yearly       []models.YearBucket   `json:"yearly"`
	Cities       []models.CityCount    `json:"cities"`
	Categories   []models.CategoryStat `json:"categories"`
	RFM          RFMBlock              `json:"rfm"`
}

// ExportResponse lists the files written by the opt-in export.
type ExportResponse struct {
	OrdersFile   string `json:"orders_file"`
	ProductsFile string `json:"products_file"`
}
