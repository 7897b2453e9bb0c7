package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luffi/internal/domain"
	"luffi/internal/services"
)

func fixtureCatalog() []domain.Product {
	return []domain.Product{
		{ID: "kente-silk-dress", Name: "Kente Silk Dress", Price: 299, Category: "Dresses", Material: "Kente Silk",
			Rating: 4.8, IsNew: true, IsSale: true, Description: "Beautiful handwoven Kente silk dress"},
		{ID: "ankara-print-blazer", Name: "Ankara Print Blazer", Price: 199, Category: "Outerwear", Material: "Ankara Cotton",
			Rating: 4.9, Description: "Contemporary blazer featuring vibrant Ankara prints"},
		{ID: "mudcloth-wide-pants", Name: "Mudcloth Wide Pants", Price: 159, Category: "Pants", Material: "Mudcloth",
			Rating: 4.7, IsNew: true, Description: "Comfortable wide-leg pants made from authentic mudcloth"},
		{ID: "adinkra-symbol-necklace", Name: "Adinkra Symbol Necklace", Price: 79, Category: "Accessories", Material: "Brass",
			Rating: 5.0, Description: "Handcrafted necklace featuring traditional Adinkra symbols"},
	}
}

func ids(ps []domain.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestFilterSort_DefaultCriteriaKeepsCatalogOrder(t *testing.T) {
	cat := fixtureCatalog()
	got := services.FilterSort(cat, domain.DefaultCriteria())
	assert.Equal(t, ids(cat), ids(got))
}

func TestFilterSort_SearchMatchesNameOrDescription(t *testing.T) {
	cat := fixtureCatalog()
	fc := domain.DefaultCriteria()

	fc.Query = "KENTE" // case-insensitive, hits name
	assert.Equal(t, []string{"kente-silk-dress"}, ids(services.FilterSort(cat, fc)))

	fc.Query = "handcrafted" // hits description only
	assert.Equal(t, []string{"adinkra-symbol-necklace"}, ids(services.FilterSort(cat, fc)))

	fc.Query = "zebra print"
	assert.Empty(t, services.FilterSort(cat, fc))
}

func TestFilterSort_CategoryMaterialAndFlags(t *testing.T) {
	cat := fixtureCatalog()

	fc := domain.DefaultCriteria()
	fc.Category = "Dresses"
	assert.Equal(t, []string{"kente-silk-dress"}, ids(services.FilterSort(cat, fc)))

	fc = domain.DefaultCriteria()
	fc.Material = "Mudcloth"
	assert.Equal(t, []string{"mudcloth-wide-pants"}, ids(services.FilterSort(cat, fc)))

	fc = domain.DefaultCriteria()
	fc.OnSale = true
	assert.Equal(t, []string{"kente-silk-dress"}, ids(services.FilterSort(cat, fc)))

	fc = domain.DefaultCriteria()
	fc.NewOnly = true
	assert.Equal(t, []string{"kente-silk-dress", "mudcloth-wide-pants"}, ids(services.FilterSort(cat, fc)))
}

func TestFilterSort_PriceBoundsInclusive(t *testing.T) {
	cat := fixtureCatalog()
	fc := domain.DefaultCriteria()
	fc.MinPrice = 159
	fc.MaxPrice = 199
	assert.Equal(t, []string{"ankara-print-blazer", "mudcloth-wide-pants"}, ids(services.FilterSort(cat, fc)))
}

func TestFilterSort_PriceOrdering(t *testing.T) {
	cat := fixtureCatalog() // prices 299, 199, 159, 79
	fc := domain.DefaultCriteria()

	fc.Sort = domain.SortPriceAsc
	asc := services.FilterSort(cat, fc)
	require.Len(t, asc, 4)
	assert.Equal(t, []float64{79, 159, 199, 299}, prices(asc))

	fc.Sort = domain.SortPriceDesc
	desc := services.FilterSort(cat, fc)
	assert.Equal(t, []float64{299, 199, 159, 79}, prices(desc))
}

func prices(ps []domain.Product) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = p.Price
	}
	return out
}

func TestFilterSort_SortingIsStable(t *testing.T) {
	// Two pairs share a price; equal-key elements must keep input order.
	cat := []domain.Product{
		{ID: "a", Price: 100, Rating: 4.0, IsNew: true},
		{ID: "b", Price: 50, Rating: 4.0},
		{ID: "c", Price: 100, Rating: 5.0, IsNew: true},
		{ID: "d", Price: 50, Rating: 5.0},
	}

	fc := domain.DefaultCriteria()
	fc.Sort = domain.SortPriceAsc
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(services.FilterSort(cat, fc)))

	fc.Sort = domain.SortRating
	assert.Equal(t, []string{"c", "d", "a", "b"}, ids(services.FilterSort(cat, fc)))

	fc.Sort = domain.SortNewest
	assert.Equal(t, []string{"a", "c", "b", "d"}, ids(services.FilterSort(cat, fc)))
}

func TestFilterSort_PureAndDeterministic(t *testing.T) {
	cat := fixtureCatalog()
	before := ids(cat)

	fc := domain.DefaultCriteria()
	fc.Sort = domain.SortPriceAsc

	first := services.FilterSort(cat, fc)
	second := services.FilterSort(cat, fc)
	assert.Equal(t, ids(first), ids(second))

	// Input slice untouched
	assert.Equal(t, before, ids(cat))
}

func TestFilterSort_ResultIsSubsequence(t *testing.T) {
	cat := fixtureCatalog()
	fc := domain.DefaultCriteria()
	fc.NewOnly = true
	fc.Sort = domain.SortFeatured

	got := services.FilterSort(cat, fc)

	seen := map[string]bool{}
	pos := -1
	for _, p := range got {
		assert.False(t, seen[p.ID], "duplicate %s", p.ID)
		seen[p.ID] = true
		found := false
		for i, cp := range cat {
			if cp.ID == p.ID {
				assert.Greater(t, i, pos, "order not preserved for %s", p.ID)
				pos = i
				found = true
				break
			}
		}
		assert.True(t, found, "%s not in catalog", p.ID)
	}
}
