package services

import (
	"sort"
	"strings"

	"luffi/internal/domain"
	"luffi/internal/repos"
)

// CatalogService holds the catalog in memory in featured order. The slice is
// loaded once at startup and treated as read-only afterwards.
type CatalogService struct {
	products []domain.Product
	byID     map[string]domain.Product
}

func NewCatalogService(prods *repos.ProductRepo) (*CatalogService, error) {
	list, err := prods.List()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Product, len(list))
	for _, p := range list {
		byID[p.ID] = p
	}
	return &CatalogService{products: list, byID: byID}, nil
}

// Products returns the full catalog in featured order.
func (s *CatalogService) Products() []domain.Product { return s.products }

func (s *CatalogService) Get(id string) (domain.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Showcase returns up to n catalog products for the home page.
func (s *CatalogService) Showcase(n int) []domain.Product {
	if n > len(s.products) {
		n = len(s.products)
	}
	return s.products[:n]
}

// FilterSort applies the shop-page criteria to the catalog and returns a fresh
// ordered slice. Pure: the same inputs always produce the same output and the
// input slice is never mutated.
func FilterSort(catalog []domain.Product, fc domain.FilterCriteria) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(fc.Query))

	out := make([]domain.Product, 0, len(catalog))
	for _, p := range catalog {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		if fc.Category != "" && fc.Category != "All" && p.Category != fc.Category {
			continue
		}
		if fc.Material != "" && fc.Material != "All" && p.Material != fc.Material {
			continue
		}
		if p.Price < fc.MinPrice || p.Price > fc.MaxPrice {
			continue
		}
		if fc.OnSale && !p.IsSale {
			continue
		}
		if fc.NewOnly && !p.IsNew {
			continue
		}
		out = append(out, p)
	}

	switch fc.Sort {
	case domain.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case domain.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case domain.SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].IsNew && !out[j].IsNew })
	case domain.SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	default:
		// featured keeps catalog order
	}
	return out
}
