package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestErrorMiddleware_PanicRecovered(t *testing.T) {
	app := fiber.New()
	app.Use(NewErrorMiddleware(discardLogger(), false).Middleware())
	app.Get("/boom", func(fiber.Ctx) error {
		panic("unexpected state")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500 after panic, got %d", resp.StatusCode)
	}
}

func TestErrorMiddleware_AppErrorMapping(t *testing.T) {
	app := fiber.New()
	app.Use(NewErrorMiddleware(discardLogger(), false).Middleware())
	app.Get("/bad", func(fiber.Ctx) error {
		return NewAppError(fiber.StatusBadRequest, "Bad request", nil, errors.New("cause"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/bad", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != 400 || body.Message != "Bad request" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestErrorMiddleware_MaskInternal(t *testing.T) {
	app := fiber.New()
	app.Use(NewErrorMiddleware(discardLogger(), true).Middleware())
	app.Get("/fail", func(fiber.Ctx) error {
		return errors.New("pgx: connection refused to 10.0.0.5")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "internal server error" {
		t.Fatalf("internal details must be masked, got %q", body.Message)
	}
}

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	appErr := NewAppError(500, "wrapped", nil, cause)
	if !errors.Is(appErr, cause) {
		t.Fatalf("expected errors.Is to see the cause")
	}
	if appErr.Error() != "wrapped: root cause" {
		t.Fatalf("unexpected error string %q", appErr.Error())
	}
}
