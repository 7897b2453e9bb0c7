package handlers

import (
	applog "luffi/internal/log"
	"luffi/internal/services"
	"luffi/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type NewsletterHandler struct {
	News *services.NewsletterService
}

func (h *NewsletterHandler) Subscribe(c *fiber.Ctx) error {
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return c.Status(400).SendString("enter a valid email address")
	}
	if err := h.News.Subscribe(email); err != nil {
		applog.Error(c, "newsletter.subscribe.fail", err, nil)
		return c.Status(500).SendString("Could not subscribe right now")
	}
	applog.Audit(c, "newsletter.subscribe", map[string]any{"email": email})

	back := c.Get("Referer")
	if back == "" {
		back = "/"
	}
	return c.Redirect(back + "?subscribed=1")
}
