package handlers

import (
	"errors"

	"artesania/internal/domain"
	applog "artesania/internal/log"
	"artesania/internal/services"
	"artesania/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SellerHandler struct {
	Listings *services.ListingService
}

func sessionSeller(c *fiber.Ctx) *domain.Seller {
	u, _ := c.Locals("seller").(*domain.Seller)
	return u
}

// Manage renders the seller's products split into available and
// unavailable sections (original management page layout).
func (h *SellerHandler) Manage(c *fiber.Ctx) error {
	seller := sessionSeller(c)
	products, err := h.Listings.MyListings(seller)
	if err != nil {
		applog.Error(c, "seller.listings.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "No se pudieron cargar tus productos"})
	}

	var available, unavailable []domain.Product
	for _, p := range products {
		if p.Status {
			available = append(available, p)
		} else {
			unavailable = append(unavailable, p)
		}
	}
	return render(c, "profile", fiber.Map{
		"Available":   available,
		"Unavailable": unavailable,
	})
}

// Toggle flips one listing's availability. Never records a sale.
func (h *SellerHandler) Toggle(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("producto inválido")
	}
	if err := h.Listings.ToggleStatus(sessionSeller(c), id); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			applog.Security(c, "listing.toggle.forbidden", map[string]any{"product": id})
			return c.Status(403).Render("notfound", fiber.Map{"Message": err.Error()})
		}
		applog.Error(c, "listing.toggle.fail", err, map[string]any{"product": id})
		return c.Status(500).SendString("no se pudo cambiar el estado")
	}
	applog.Audit(c, "listing.toggle", map[string]any{"product": id})
	return c.Redirect("/profile")
}

// Delete removes a listing permanently. Sale records stay.
func (h *SellerHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("producto inválido")
	}
	if err := h.Listings.Delete(sessionSeller(c), id); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			applog.Security(c, "listing.delete.forbidden", map[string]any{"product": id})
			return c.Status(403).Render("notfound", fiber.Map{"Message": err.Error()})
		}
		applog.Error(c, "listing.delete.fail", err, map[string]any{"product": id})
		return c.Status(500).SendString("no se pudo eliminar el producto")
	}
	applog.Audit(c, "listing.delete", map[string]any{"product": id})
	return c.Redirect("/profile")
}

// EditForm loads a listing into the edit form.
func (h *SellerHandler) EditForm(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Producto no encontrado"})
	}
	p, err := h.Listings.Prods.Get(id)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Producto no encontrado"})
	}
	seller := sessionSeller(c)
	if seller == nil || p.OwnerID != seller.ID {
		applog.Security(c, "listing.edit.forbidden", map[string]any{"product": id})
		return c.Status(403).Render("notfound", fiber.Map{"Message": domain.ErrForbidden.Error()})
	}
	return render(c, "edit", fiber.Map{"P": p, "Categories": domain.Categories})
}

// Edit applies the form to title/description/price/category/status.
func (h *SellerHandler) Edit(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("producto inválido")
	}
	price, ok := validate.Price(c.FormValue("price"))
	if !ok {
		return c.Status(400).Render("notfound", fiber.Map{"Message": "Precio inválido"})
	}
	cat, ok := validate.Category(c.FormValue("category"))
	if !ok || cat == domain.CategoryTodos {
		return c.Status(400).Render("notfound", fiber.Map{"Message": "Categoría inválida"})
	}
	in := services.ListingInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Price:       price,
		Category:    cat,
	}
	status := c.FormValue("available") == "on"

	err := h.Listings.Update(sessionSeller(c), id, in, status)
	switch {
	case err == nil:
		applog.Audit(c, "listing.update", map[string]any{"product": id})
		return c.Redirect("/profile")
	case errors.Is(err, domain.ErrValidation):
		return c.Status(400).Render("notfound", fiber.Map{"Message": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		applog.Security(c, "listing.update.forbidden", map[string]any{"product": id})
		return c.Status(403).Render("notfound", fiber.Map{"Message": err.Error()})
	default:
		applog.Error(c, "listing.update.fail", err, map[string]any{"product": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "No se pudo guardar el producto"})
	}
}
