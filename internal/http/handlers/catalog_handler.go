package handlers

import (
	"artesania/internal/domain"
	"artesania/internal/format"
	"artesania/internal/gallery"
	"artesania/internal/log"
	"artesania/internal/services"
	"artesania/internal/validate"
	"artesania/internal/whatsapp"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Catalog  *services.CatalogService
	WhatsApp string
}

// listingView is a product prepared for the templates: price formatted,
// primary image resolved, inquiry link built.
type listingView struct {
	ID          string
	Title       string
	Description string
	Price       string
	Category    domain.Category
	Status      bool
	Thumbnail   string
	HasImage    bool
	WhatsApp    string
}

func newListingView(p domain.Product, waNumber string) listingView {
	g := gallery.New(p.Images(), false)
	v := listingView{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       format.Price(p.Price),
		Category:    p.Category,
		Status:      p.Status,
		WhatsApp:    whatsapp.InquiryLink(waNumber, p.Title, ""),
	}
	if img := g.Current(); img != gallery.Placeholder {
		v.Thumbnail = "/media/" + img
		v.HasImage = true
	}
	return v
}

// Home renders the public catalog: the visible subset, narrowed by the
// optional search term and category filter.
func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	products, err := h.Catalog.VisibleListings()
	if err != nil {
		log.Error(c, "catalog.load.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "No se pudo cargar el catálogo. Intenta de nuevo."})
	}

	q := c.Query("q")
	if q != "" {
		if valid, ok := validate.Q(q); ok {
			q = valid
		} else {
			log.Security(c, "validation.fail", map[string]any{"field": "q", "value": q})
			q = ""
		}
	}
	category := domain.CategoryTodos
	if raw := c.Query("category"); raw != "" {
		if cat, ok := validate.Category(raw); ok {
			category = cat
		} else {
			log.Security(c, "validation.fail", map[string]any{"field": "category", "value": raw})
		}
	}

	// options come from the loaded collection, the filter from its subset
	options := services.CategoryOptions(products)
	filtered := services.Filter(products, q, category)

	views := make([]listingView, 0, len(filtered))
	for _, p := range filtered {
		views = append(views, newListingView(p, h.WhatsApp))
	}

	return render(c, "home", fiber.Map{
		"Q":          q,
		"Category":   category,
		"Categories": options,
		"Products":   views,
		"Count":      len(views),
	})
}
