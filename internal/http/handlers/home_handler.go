package handlers

import (
	"luffi/internal/services"

	"github.com/gofiber/fiber/v2"
)

type HomeHandler struct {
	Catalog *services.CatalogService
}

// Collection is a curated grouping shown on the home page.
type Collection struct {
	Title       string
	Description string
	Image       string
	ItemCount   int
}

var collections = []Collection{
	{Title: "Kente Elegance", Description: "Handwoven silk pieces with royal heritage", Image: "collections/kente.jpg", ItemCount: 24},
	{Title: "Ankara Fusion", Description: "Bold prints meet contemporary cuts", Image: "collections/ankara.jpg", ItemCount: 36},
	{Title: "Mudcloth Modern", Description: "Earth tones and ancient symbols", Image: "collections/mudcloth.jpg", ItemCount: 18},
	{Title: "Adinkra Stories", Description: "Wisdom woven into wearable art", Image: "collections/adinkra.jpg", ItemCount: 29},
}

func (h *HomeHandler) Home(c *fiber.Ctx) error {
	return render(c, "home", fiber.Map{
		"Collections": collections,
		"Showcase":    h.Catalog.Showcase(6),
	})
}
