package handlers

import (
	"strings"

	"luffi/internal/domain"
	applog "luffi/internal/log"
	"luffi/internal/services"
	"luffi/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ShopHandler struct {
	Catalog *services.CatalogService
}

func criteriaFromQuery(c *fiber.Ctx) (domain.FilterCriteria, bool) {
	fc := domain.DefaultCriteria()
	ok := true

	if rawQ := strings.TrimSpace(c.Query("q")); rawQ != "" {
		q, valid := validate.Q(rawQ)
		if !valid {
			applog.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
			ok = false
		} else {
			fc.Query = q
		}
	}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		fc.Category = cat
	}
	if mat := strings.TrimSpace(c.Query("material")); mat != "" {
		fc.Material = mat
	}
	fc.MinPrice = validate.Price(c.Query("min"), 0)
	fc.MaxPrice = validate.Price(c.Query("max"), domain.DefaultMaxPrice)
	fc.OnSale = c.Query("sale") == "1"
	fc.NewOnly = c.Query("new") == "1"

	switch s := c.Query("sort"); s {
	case domain.SortPriceAsc, domain.SortPriceDesc, domain.SortNewest, domain.SortRating:
		fc.Sort = s
	case "", domain.SortFeatured:
		// default
	default:
		applog.Security(c, "validation.fail", map[string]any{"field": "sort", "value": s})
	}
	return fc, ok
}

func (h *ShopHandler) Shop(c *fiber.Ctx) error {
	fc, ok := criteriaFromQuery(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).Render("shop", fiber.Map{
			"Products": []domain.Product{}, "Count": 0,
			"TotalCount": len(h.Catalog.Products()),
			"Criteria":   domain.DefaultCriteria(),
			"Categories": domain.Categories, "Materials": domain.Materials,
			"Err": "Enter a valid keyword (letters/numbers only)",
		})
	}

	products := services.FilterSort(h.Catalog.Products(), fc)
	return render(c, "shop", fiber.Map{
		"Products":   products,
		"Count":      len(products),
		"TotalCount": len(h.Catalog.Products()),
		"Criteria":   fc,
		"Categories": domain.Categories,
		"Materials":  domain.Materials,
	})
}
