package server

import (
	"net/http"
	"time"

	"github.com/arifwicaksono/ecomdash/internal/analytics"
	"github.com/arifwicaksono/ecomdash/internal/dataset"
	"github.com/arifwicaksono/ecomdash/internal/models"
	"github.com/arifwicaksono/ecomdash/internal/money"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

// Handlers contains all dependencies for API endpoint handlers
type Handlers struct {
	Data      *dataset.Dataset // Loaded source extracts, immutable after startup
	Money     *money.Formatter // Shared currency formatter for all money metrics
	ExportDir string           // Target directory for the opt-in export
	DevMode   bool             // Enable detailed error responses in development
	Logger    *logrus.Logger   // Structured logger
}

// err returns a standardized JSON error response
// In dev mode, includes additional error details for debugging
func (h *Handlers) err(c echo.Context, code int, msg string, details any) error {
	resp := ErrorResponse{Error: msg, Code: code}
	if h.DevMode && details != nil {
		resp.Details = details
	}
	return c.JSON(code, resp)
}

// parseRange reads the start/end query parameters, defaulting each missing
// bound to the dataset's own purchase date bounds. An inverted range is not
// an error; it filters to an empty slice downstream.
func (h *Handlers) parseRange(c echo.Context) (start, end time.Time, ok bool, err error) {
	start, end = h.Data.Range()

	if raw := c.QueryParam("start"); raw != "" {
		t, perr := time.ParseInLocation(dateLayout, raw, time.UTC)
		if perr != nil {
			return time.Time{}, time.Time{}, false, h.err(c, http.StatusBadRequest, "invalid start date", map[string]any{"start": "must be YYYY-MM-DD"})
		}
		start = t
	}
	if raw := c.QueryParam("end"); raw != "" {
		t, perr := time.ParseInLocation(dateLayout, raw, time.UTC)
		if perr != nil {
			return time.Time{}, time.Time{}, false, h.err(c, http.StatusBadRequest, "invalid end date", map[string]any{"end": "must be YYYY-MM-DD"})
		}
		end = t
	}
	return start, end, true, nil
}

// Health returns a simple health check endpoint
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{OK: true})
}

// Range returns the dataset's min/max purchase dates for the UI date picker
func (h *Handlers) Range(c echo.Context) error {
	min, max := h.Data.Range()
	resp := RangeResponse{}
	if !min.IsZero() {
		resp.MinDate = min.Format(dateLayout)
		resp.MaxDate = max.Format(dateLayout)
	}
	return c.JSON(http.StatusOK, resp)
}

// Dashboard computes the full view over the selected date range: scalar
// metrics plus all four chart datasets. Everything is recomputed from the
// source tables on each call; a failure aborts the whole view.
func (h *Handlers) Dashboard(c echo.Context) error {
	start, end, ok, err := h.parseRange(c)
	if !ok {
		return err
	}

	filtered := analytics.FilterByDateRange(h.Data.Orders, start, end)
	yearly := analytics.YearlyOrders(filtered)

	return c.JSON(http.StatusOK, DashboardResponse{
		StartDate:    start.Format(dateLayout),
		EndDate:      end.Format(dateLayout),
		TotalOrders:  analytics.TotalOrders(yearly),
		TotalRevenue: h.Money.Format(analytics.TotalRevenue(yearly)),
		Yearly:       yearly,
		Cities:       analytics.TopCities(filtered),
		Categories:   analytics.CategorySummary(h.Data.Listings),
		RFM:          h.rfmBlock(filtered),
	})
}

// Yearly returns the yearly orders/revenue series for the selected range
func (h *Handlers) Yearly(c echo.Context) error {
	start, end, ok, err := h.parseRange(c)
	if !ok {
		return err
	}
	filtered := analytics.FilterByDateRange(h.Data.Orders, start, end)
	return c.JSON(http.StatusOK, YearlyResponse{
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
		Items:     analytics.YearlyOrders(filtered),
	})
}

// Cities returns the top-5 cities by distinct customer count
func (h *Handlers) Cities(c echo.Context) error {
	start, end, ok, err := h.parseRange(c)
	if !ok {
		return err
	}
	filtered := analytics.FilterByDateRange(h.Data.Orders, start, end)
	return c.JSON(http.StatusOK, CitiesResponse{
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
		Items:     analytics.TopCities(filtered),
	})
}

// Categories returns the catalog-wide category summary. Range parameters
// are accepted for interface uniformity but have nothing to filter: the
// catalog extract carries no timestamps.
func (h *Handlers) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, CategoriesResponse{
		Items: analytics.CategorySummary(h.Data.Listings),
	})
}

// RFM returns the per-customer RFM rankings and averages for the selected range
func (h *Handlers) RFM(c echo.Context) error {
	start, end, ok, err := h.parseRange(c)
	if !ok {
		return err
	}
	filtered := analytics.FilterByDateRange(h.Data.Orders, start, end)
	return c.JSON(http.StatusOK, RFMResponse{
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
		RFM:       h.rfmBlock(filtered),
	})
}

func (h *Handlers) rfmBlock(filtered []models.Order) RFMBlock {
	records := analytics.RFM(filtered)
	avgs := analytics.Averages(records)
	return RFMBlock{
		AvgRecencyDays: avgs.RecencyDays,
		AvgFrequency:   avgs.Frequency,
		AvgMonetary:    h.Money.Format(avgs.Monetary),
		TopByRecency:   analytics.TopByRecency(records),
		TopByFrequency: analytics.TopByFrequency(records),
		TopByMonetary:  analytics.TopByMonetary(records),
	}
}

// Export writes the normalized source tables back to CSV under the
// configured export directory. Opt-in and decoupled from view rendering.
func (h *Handlers) Export(c echo.Context) error {
	ordersFile, productsFile, err := dataset.ExportCSV(h.Data, h.ExportDir)
	if err != nil {
		h.Logger.WithError(err).Error("export failed")
		return h.err(c, http.StatusInternalServerError, "export failed", map[string]any{"err": err.Error()})
	}
	h.Logger.WithFields(logrus.Fields{"orders": ordersFile, "products": productsFile}).Info("exported source tables")
	return c.JSON(http.StatusOK, ExportResponse{OrdersFile: ordersFile, ProductsFile: productsFile})
}
