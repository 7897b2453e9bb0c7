package handlers

import (
	applog "luffi/internal/log"
	"luffi/internal/repos"
	"luffi/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Catalog *services.CatalogService
	Subs    *repos.NewsletterRepo
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	subs, err := h.Subs.List()
	if err != nil {
		applog.Error(c, "admin.dashboard.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load dashboard"})
	}
	return render(c, "admin_dashboard", fiber.Map{
		"ProductCount": len(h.Catalog.Products()),
		"Subscribers":  subs,
	})
}
