package handlers

import (
	"strconv"
	"strings"

	"luffi/internal/domain"
	applog "luffi/internal/log"
	"luffi/internal/services"
	"luffi/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart    *services.CartService
	Catalog *services.CatalogService
}

// Add snapshots the unit price from the catalog at add time; later catalog
// changes would not touch existing lines.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	p, found := h.Catalog.Get(productID)
	if !found {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}

	h.Cart.Add(sid, domain.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  validate.Qty(c.FormValue("qty")),
		Size:      strings.TrimSpace(c.FormValue("size")),
		Color:     strings.TrimSpace(c.FormValue("color")),
	})
	applog.Audit(c, "cart.add", map[string]any{"product": p.ID})
	return c.Redirect("/cart")
}

func (h *CartHandler) Update(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	qty, err := strconv.Atoi(strings.TrimSpace(c.FormValue("qty")))
	if err != nil {
		return c.Status(400).SendString("invalid qty")
	}
	size := strings.TrimSpace(c.FormValue("size"))
	color := strings.TrimSpace(c.FormValue("color"))

	// Quantities below 1 are rejected by the store; the line stays as it was.
	// The decrement control is disabled at quantity 1 client-side too.
	if !h.Cart.UpdateQuantity(sid, productID, qty, size, color) {
		applog.Info(c, "cart.update.rejected", map[string]any{"product": productID, "qty": qty})
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	h.Cart.Remove(sid, productID, strings.TrimSpace(c.FormValue("size")), strings.TrimSpace(c.FormValue("color")))
	applog.Audit(c, "cart.remove", map[string]any{"product": productID})
	return c.Redirect("/cart")
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	return render(c, "cart", fiber.Map{"Cart": h.Cart.View(sid)})
}
