package services

import (
	"sort"
	"strings"

	"artesania/internal/domain"
	"artesania/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

// VisibleListings fetches the public catalog: exactly the status=true
// products, newest first.
func (s *CatalogService) VisibleListings() ([]domain.Product, error) {
	return s.Prods.ListVisible()
}

func (s *CatalogService) GetListing(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

// Filter narrows a loaded collection in memory. A product passes iff the
// category matches (Todos passes everything) and its title contains the
// term case-insensitively (empty term matches everything). The filter is
// stable: input order is preserved and nothing is re-sorted.
func Filter(products []domain.Product, term string, category domain.Category) []domain.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != domain.CategoryTodos && p.Category != category {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Title), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// CategoryOptions derives the filter choices from the loaded (not
// filtered) collection: the distinct categories present, alphabetical,
// with Todos always first.
func CategoryOptions(products []domain.Product) []domain.Category {
	seen := map[domain.Category]bool{}
	var cats []domain.Category
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return append([]domain.Category{domain.CategoryTodos}, cats...)
}
