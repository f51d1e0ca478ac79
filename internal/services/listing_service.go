package services

import (
	"fmt"
	"strings"
	"time"

	"artesania/internal/domain"
	"artesania/internal/repos"

	"github.com/google/uuid"
)

// ListingService owns the listing lifecycle: a product is either
// Available (status=true) or Sold/Hidden (status=false), nothing else.
// Every operation takes the seller session explicitly; there is no
// ambient current-user state.
type ListingService struct {
	Prods *repos.ProductRepo
}

func NewListingService(prods *repos.ProductRepo) *ListingService {
	return &ListingService{Prods: prods}
}

type ListingInput struct {
	Title       string
	Description string
	Price       string
	Category    domain.Category
	Images      []string
}

func (in ListingInput) validate() error {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return fmt.Errorf("%w: título", domain.ErrValidation)
	case strings.TrimSpace(in.Description) == "":
		return fmt.Errorf("%w: descripción", domain.ErrValidation)
	case strings.TrimSpace(in.Price) == "":
		return fmt.Errorf("%w: precio", domain.ErrValidation)
	case !in.Category.Valid():
		return fmt.Errorf("%w: categoría", domain.ErrValidation)
	}
	return nil
}

// Create inserts a new listing. It enters Available immediately; there
// is no draft state. At least one image is required.
func (s *ListingService) Create(session *domain.Seller, in ListingInput) (domain.Product, error) {
	if session == nil {
		return domain.Product{}, domain.ErrAuthRequired
	}
	if err := in.validate(); err != nil {
		return domain.Product{}, err
	}
	if len(in.Images) == 0 {
		return domain.Product{}, fmt.Errorf("%w: imagen", domain.ErrValidation)
	}

	p := domain.Product{
		ID:          uuid.NewString(),
		OwnerID:     session.ID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Price:       strings.TrimSpace(in.Price),
		Category:    in.Category,
		Status:      true,
	}
	p.SetImages(in.Images)

	if err := s.Prods.Create(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// Update mutates title/description/price/category/status in place.
// id and created_at never change. Owner-only.
func (s *ListingService) Update(session *domain.Seller, id string, in ListingInput, status bool) error {
	if session == nil {
		return domain.ErrAuthRequired
	}
	if err := in.validate(); err != nil {
		return err
	}
	p := domain.Product{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Price:       strings.TrimSpace(in.Price),
		Category:    in.Category,
		Status:      status,
	}
	return s.Prods.Update(session.ID, id, p)
}

// ToggleStatus flips availability unconditionally. Toggling back to
// Available never records a sale.
func (s *ListingService) ToggleStatus(session *domain.Seller, id string) error {
	if session == nil {
		return domain.ErrAuthRequired
	}
	return s.Prods.Toggle(session.ID, id)
}

// MarkAsSold transitions an Available listing to sold: one sale record
// snapshotting the current title/price, and status=false, atomically.
func (s *ListingService) MarkAsSold(session *domain.Seller, id string) (domain.SaleRecord, error) {
	if session == nil {
		return domain.SaleRecord{}, domain.ErrAuthRequired
	}
	return s.Prods.MarkSold(session.ID, id, uuid.NewString(), time.Now())
}

// Delete removes the listing permanently. Sale records already written
// are untouched.
func (s *ListingService) Delete(session *domain.Seller, id string) error {
	if session == nil {
		return domain.ErrAuthRequired
	}
	return s.Prods.Delete(session.ID, id)
}

// MyListings returns everything the seller owns, any status.
func (s *ListingService) MyListings(session *domain.Seller) ([]domain.Product, error) {
	if session == nil {
		return nil, domain.ErrAuthRequired
	}
	return s.Prods.ListByOwner(session.ID)
}
