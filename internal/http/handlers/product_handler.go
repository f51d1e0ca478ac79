package handlers

import (
	"errors"
	"strconv"

	"artesania/internal/domain"
	"artesania/internal/format"
	"artesania/internal/gallery"
	"artesania/internal/log"
	"artesania/internal/services"
	"artesania/internal/validate"
	"artesania/internal/whatsapp"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog  *services.CatalogService
	Listings *services.ListingService
	WhatsApp string
}

// Detail renders one listing with its gallery. The ?img= offset drives
// the circular navigation; any integer is safe.
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Este producto ya no está disponible"})
	}
	p, err := h.Catalog.GetListing(id)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Este producto ya no está disponible"})
	}

	g := gallery.New(p.Images(), true)
	idx, _ := strconv.Atoi(c.Query("img", "0"))
	current := g.Seek(idx)

	data := fiber.Map{
		"P":        p,
		"Price":    format.Price(p.Price),
		"WhatsApp": whatsapp.InquiryLink(h.WhatsApp, p.Title, c.BaseURL()+"/product/"+p.ID),
		"HasImage": current != gallery.Placeholder,
		"Image":    "/media/" + current,
		"ShowNav":  g.Navigable(),
		"PrevIdx":  g.Index() - 1,
		"NextIdx":  g.Index() + 1,
	}
	return render(c, "product", data)
}

// MarkSold handles the sold transition from the detail page. Seller-only.
func (h *ProductHandler) MarkSold(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("producto inválido")
	}
	seller, _ := c.Locals("seller").(*domain.Seller)

	rec, err := h.Listings.MarkAsSold(seller, id)
	switch {
	case err == nil:
		log.Audit(c, "listing.sold", map[string]any{"product": id, "sale": rec.ID})
		return c.Redirect("/product/" + id)
	case errors.Is(err, domain.ErrSalePartial):
		// partial application is its own failure mode, never plain success
		log.Error(c, "listing.sold.partial", err, map[string]any{"product": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		log.Security(c, "listing.sold.forbidden", map[string]any{"product": id})
		return c.Status(403).Render("notfound", fiber.Map{"Message": err.Error()})
	case errors.Is(err, domain.ErrNotAvailable), errors.Is(err, domain.ErrNotFound):
		return c.Status(409).Render("notfound", fiber.Map{"Message": err.Error()})
	default:
		log.Error(c, "listing.sold.fail", err, map[string]any{"product": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "No se pudo registrar la venta. Intenta de nuevo."})
	}
}
