package handlers

import (
	"artesania/internal/config"
	"artesania/internal/imaging"
	"artesania/internal/repos"
	"artesania/internal/services"
	"artesania/internal/storage"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CatalogHandler   *CatalogHandler
	ProductHandler   *ProductHandler
	SellerHandler    *SellerHandler
	UploadHandler    *UploadHandler
	DashboardHandler *DashboardHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)
	saleRepo := repos.NewSaleRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	listingSvc := services.NewListingService(prodRepo)
	salesSvc := services.NewSalesService(saleRepo)

	media := storage.NewMediaStore(cfg.MediaDir)
	removebg := imaging.NewClient(cfg.RemoveBGURL, cfg.RemoveBGKey)

	return &Deps{
		CatalogHandler:   &CatalogHandler{Catalog: catalogSvc, WhatsApp: cfg.WhatsAppNumber},
		ProductHandler:   &ProductHandler{Catalog: catalogSvc, Listings: listingSvc, WhatsApp: cfg.WhatsAppNumber},
		SellerHandler:    &SellerHandler{Listings: listingSvc},
		UploadHandler:    &UploadHandler{Listings: listingSvc, Media: media, RemoveBG: removebg},
		DashboardHandler: &DashboardHandler{Sales: salesSvc},
	}
}
