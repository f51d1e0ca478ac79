package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	"artesania/internal/domain"
	"artesania/internal/imaging"
	applog "artesania/internal/log"
	"artesania/internal/services"
	"artesania/internal/storage"
	"artesania/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UploadHandler struct {
	Listings *services.ListingService
	Media    *storage.MediaStore
	RemoveBG *imaging.Client
}

func (h *UploadHandler) Form(c *fiber.Ctx) error {
	return render(c, "upload", fiber.Map{"Categories": domain.Categories})
}

// Submit creates a listing from the multipart form: images are run
// through background removal (failures skip that image), stored in the
// media store, and recorded in gallery order.
func (h *UploadHandler) Submit(c *fiber.Ctx) error {
	price, ok := validate.Price(c.FormValue("price"))
	if !ok {
		return h.formError(c, "Ingresa un precio numérico")
	}
	cat, ok := validate.Category(c.FormValue("category"))
	if !ok || cat == domain.CategoryTodos {
		return h.formError(c, "Selecciona una categoría válida")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return h.formError(c, "Formulario inválido")
	}
	files := form.File["images"]
	if len(files) == 0 {
		return h.formError(c, "Agrega al menos una imagen")
	}

	raw := make([][]byte, 0, len(files))
	for _, fh := range files {
		b, err := readUpload(fh)
		if err != nil {
			applog.Error(c, "upload.read.fail", err, map[string]any{"file": fh.Filename})
			return h.formError(c, "No se pudo leer una de las imágenes")
		}
		raw = append(raw, b)
	}

	processed, err := h.RemoveBG.ProcessAll(raw)
	if err != nil {
		// every image failed; anything less is skip-and-continue
		applog.Error(c, "upload.removebg.fail", err, nil)
		return h.formError(c, "No se pudieron procesar las imágenes. Intenta de nuevo.")
	}

	batch := uuid.NewString()
	paths := make([]string, 0, len(processed))
	for i, img := range processed {
		rel := fmt.Sprintf("products/%s/%d%s", batch, i, extOf(files[i].Filename))
		if err := h.Media.Save(rel, img); err != nil {
			applog.Error(c, "upload.store.fail", err, map[string]any{"path": rel})
			return h.formError(c, "No se pudo guardar una imagen: "+err.Error())
		}
		paths = append(paths, rel)
	}

	in := services.ListingInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Price:       price,
		Category:    cat,
		Images:      paths,
	}
	p, err := h.Listings.Create(sessionSeller(c), in)
	switch {
	case err == nil:
		applog.Audit(c, "listing.create", map[string]any{"product": p.ID})
		return c.Redirect("/product/" + p.ID)
	case errors.Is(err, domain.ErrValidation):
		return h.formError(c, err.Error())
	case errors.Is(err, domain.ErrAuthRequired):
		return c.Redirect("/login")
	default:
		applog.Error(c, "listing.create.fail", err, nil)
		return h.formError(c, "No se pudo guardar el producto: "+err.Error())
	}
}

func (h *UploadHandler) formError(c *fiber.Ctx, msg string) error {
	return c.Status(400).Render("upload", fiber.Map{
		"Err":        msg,
		"Categories": domain.Categories,
		"CSRFToken":  c.Cookies("csrf_"),
	})
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func extOf(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ".png"
	}
	return ext
}
