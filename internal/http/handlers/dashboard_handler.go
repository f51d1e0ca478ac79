package handlers

import (
	"time"

	"artesania/internal/domain"
	"artesania/internal/format"
	applog "artesania/internal/log"
	"artesania/internal/services"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	Sales *services.SalesService
}

type saleView struct {
	Title    string
	Category domain.Category
	Price    string
	SoldAt   string
}

// Page renders the sales dashboard: month totals over the selected
// range plus the individual sales.
func (h *DashboardHandler) Page(c *fiber.Ctx) error {
	records, err := h.Sales.ListSales()
	if err != nil {
		applog.Error(c, "dashboard.load.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "No se pudieron cargar las ventas"})
	}

	start, end := parseRange(c)
	filtered := services.FilterByDateRange(records, start, end)

	buckets := services.GroupByMonth(filtered)
	// display is chronological even though buckets form in insertion order
	services.SortChronological(buckets)

	type bucketView struct {
		Key     string
		Total   string
		Flagged int
	}
	bviews := make([]bucketView, 0, len(buckets))
	for _, b := range buckets {
		bviews = append(bviews, bucketView{Key: b.Key, Total: format.Price(b.Total.String()), Flagged: b.Flagged})
	}

	views := make([]saleView, 0, len(filtered))
	for _, rec := range filtered {
		views = append(views, saleView{
			Title:    rec.Title,
			Category: rec.Category,
			Price:    format.Price(rec.Price),
			SoldAt:   format.Date(rec.SoldAt),
		})
	}

	return render(c, "dashboard", fiber.Map{
		"Months": bviews,
		"Sales":  views,
		"Start":  c.Query("start"),
		"End":    c.Query("end"),
		"Count":  len(views),
	})
}

// SalesJSON powers the date-range picker without a page reload.
func (h *DashboardHandler) SalesJSON(c *fiber.Ctx) error {
	records, err := h.Sales.ListSales()
	if err != nil {
		applog.Error(c, "dashboard.api.fail", err, nil)
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	start, end := parseRange(c)
	filtered := services.FilterByDateRange(records, start, end)
	buckets := services.GroupByMonth(filtered)
	services.SortChronological(buckets)

	type monthJSON struct {
		Month   string `json:"month"`
		Total   string `json:"total"`
		Flagged int    `json:"flagged,omitempty"`
	}
	months := make([]monthJSON, 0, len(buckets))
	for _, b := range buckets {
		months = append(months, monthJSON{Month: b.Key, Total: b.Total.String(), Flagged: b.Flagged})
	}
	return c.JSON(fiber.Map{"months": months, "count": len(filtered)})
}

// parseRange reads the optional inclusive [start, end] bounds. The end
// bound is pushed to the last instant of its day so "2024-01-20" keeps
// sales made during that day.
func parseRange(c *fiber.Ctx) (*time.Time, *time.Time) {
	var start, end *time.Time
	if s := c.Query("start"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			start = &t
		}
	}
	if s := c.Query("end"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			t = t.Add(24*time.Hour - time.Nanosecond)
			end = &t
		}
	}
	return start, end
}
