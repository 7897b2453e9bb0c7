package handlers

import (
	"time"

	applog "luffi/internal/log"
	"luffi/internal/services"
	"luffi/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Enter a valid email and password", "CSRFToken": c.Cookies("csrf_")})
	}
	if !validate.Password(pass) {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "empty_password"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Enter a valid email and password", "CSRFToken": c.Cookies("csrf_")})
	}

	u, err := h.Auth.Login(sid, email, pass)
	if err != nil {
		applog.Error(c, "auth.login.fail", err, map[string]any{"email": email})
		return c.Status(401).Render("login", fiber.Map{"Err": "Sign in failed. Please try again.", "CSRFToken": c.Cookies("csrf_")})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": email, "role": u.Role})
	return c.Redirect("/")
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	confirm := c.FormValue("confirmPassword")
	name, nameOK := validate.Name(c.FormValue("name"))

	if _, ok := validate.Email(email); !ok || !nameOK || !validate.Password(pass) {
		applog.Security(c, "auth.register.fail", map[string]any{"email": email, "reason": "bad_input"})
		return c.Status(400).Render("register", fiber.Map{"Err": "Please fill in every field", "CSRFToken": c.Cookies("csrf_")})
	}
	if pass != confirm {
		return c.Status(400).Render("register", fiber.Map{"Err": "Passwords do not match", "CSRFToken": c.Cookies("csrf_")})
	}

	u, err := h.Auth.Register(sid, email, pass, name)
	if err != nil {
		applog.Error(c, "auth.register.fail", err, map[string]any{"email": email})
		return c.Status(500).Render("register", fiber.Map{"Err": "Registration failed. Please try again.", "CSRFToken": c.Cookies("csrf_")})
	}

	applog.Audit(c, "auth.register.success", map[string]any{"email": email, "user_id": u.ID})
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}
