package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"career-engine/internal/pkg/jwt"
)

func newAuthedApp(svc jwt.Service) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil, false).Middleware())
	app.Use(NewAuthMiddleware(svc).Middleware())
	app.Get("/ping", func(c fiber.Ctx) error {
		return c.SendString(c.Locals(CtxServiceKey).(string))
	})
	return app
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	svc := jwt.NewHMACService("test-secret", time.Hour)
	app := newAuthedApp(svc)

	token, err := svc.GenerateServiceToken("gateway")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := newAuthedApp(jwt.NewHMACService("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	app := newAuthedApp(jwt.NewHMACService("test-secret", time.Hour))

	for _, header := range []string{"Bearer", "Basic abc", "Bearer   "} {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, resp.StatusCode)
		}
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	app := newAuthedApp(jwt.NewHMACService("secret-a", time.Hour))

	token, err := jwt.NewHMACService("secret-b", time.Hour).GenerateServiceToken("gateway")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestBearerTokenFromHeader(t *testing.T) {
	if tok, ok := bearerTokenFromHeader("Bearer abc123"); !ok || tok != "abc123" {
		t.Fatalf("expected abc123, got %q ok=%v", tok, ok)
	}
	if tok, ok := bearerTokenFromHeader("bearer abc123"); !ok || tok != "abc123" {
		t.Fatalf("scheme must be case-insensitive, got %q ok=%v", tok, ok)
	}
	if _, ok := bearerTokenFromHeader(""); ok {
		t.Fatalf("empty header must not parse")
	}
}
