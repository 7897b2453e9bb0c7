package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	html "github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luffi/internal/domain"
	"luffi/internal/http/handlers"
	"luffi/internal/repos"
	"luffi/internal/services"
)

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func newAuthApp(t *testing.T) (*fiber.App, *services.AuthService) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	authSvc := services.NewAuthService(repos.NewSessionRepo(db), "admin@luffi.com", 0)
	authH := &handlers.AuthHandler{Auth: authSvc}

	engine := html.New("../../web/templates", ".html")
	engine.AddFunc("inc", func(n int) int { return n + 1 })
	engine.AddFunc("dec", func(n int) int { return n - 1 })
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))

	app.Get("/login", authH.LoginForm)
	app.Post("/login", authH.Login)
	app.Get("/register", authH.RegisterForm)
	app.Post("/register", authH.Register)
	app.Post("/logout", authH.Logout)
	return app, authSvc
}

func postForm(t *testing.T, app *fiber.App, path, body, csrfTok, sid string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader("csrf="+csrfTok+"&"+body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLoginRedirectsAndBindsSession(t *testing.T) {
	app, authSvc := newAuthApp(t)

	respForm, err := app.Test(httptest.NewRequest("GET", "/login", nil))
	require.NoError(t, err)
	csrfTok := extractCookie(respForm, "csrf_")
	require.NotEmpty(t, csrfTok)

	resp := postForm(t, app, "/login", "email=ama@luffi.com&password=pw", csrfTok, "")
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	sid := extractCookie(resp, "sid")
	require.NotEmpty(t, sid)

	u, err := authSvc.CurrentUser(sid)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, domain.RoleCustomer, u.Role)
}

func TestLoginAdminCredential(t *testing.T) {
	app, authSvc := newAuthApp(t)

	respForm, _ := app.Test(httptest.NewRequest("GET", "/login", nil))
	csrfTok := extractCookie(respForm, "csrf_")

	resp := postForm(t, app, "/login", "email=admin@luffi.com&password=admin123", csrfTok, "")
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	u, err := authSvc.CurrentUser(extractCookie(resp, "sid"))
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, domain.RoleAdmin, u.Role)
}

func TestLoginRejectsEmptyPassword(t *testing.T) {
	app, _ := newAuthApp(t)

	respForm, _ := app.Test(httptest.NewRequest("GET", "/login", nil))
	csrfTok := extractCookie(respForm, "csrf_")

	resp := postForm(t, app, "/login", "email=ama@luffi.com&password=", csrfTok, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	app, _ := newAuthApp(t)

	respForm, _ := app.Test(httptest.NewRequest("GET", "/register", nil))
	csrfTok := extractCookie(respForm, "csrf_")

	resp := postForm(t, app, "/register",
		"name=Ama&email=ama@luffi.com&password=one&confirmPassword=two", csrfTok, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogoutClearsSession(t *testing.T) {
	app, authSvc := newAuthApp(t)

	respForm, _ := app.Test(httptest.NewRequest("GET", "/login", nil))
	csrfTok := extractCookie(respForm, "csrf_")

	resp := postForm(t, app, "/login", "email=ama@luffi.com&password=pw", csrfTok, "")
	sid := extractCookie(resp, "sid")
	require.NotEmpty(t, sid)

	respOut := postForm(t, app, "/logout", "x=1", csrfTok, sid)
	assert.Equal(t, http.StatusFound, respOut.StatusCode)

	u, err := authSvc.CurrentUser(sid)
	require.NoError(t, err)
	assert.Nil(t, u)
}
