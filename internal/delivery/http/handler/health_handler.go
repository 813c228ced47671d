package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"career-engine/internal/delivery/http/dto"
	"career-engine/internal/embedding"
	"career-engine/internal/pkg/response"
)

// Pinger reports connectivity of an optional backing service.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	embedder embedding.Embedder
	service  string
	version  string
	db       Pinger
	cache    Pinger
}

func NewHealthHandler(embedder embedding.Embedder, service, version string, db, cache Pinger) *HealthHandler {
	return &HealthHandler{
		embedder: embedder,
		service:  service,
		version:  version,
		db:       db,
		cache:    cache,
	}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	modelLoaded := h.embedder != nil && h.embedder.Ready(c.Context())

	checks := map[string]bool{
		"embedder": modelLoaded,
	}
	if h.db != nil {
		checks["database"] = h.db.Ping(c.Context()) == nil
	}
	if h.cache != nil {
		checks["cache"] = h.cache.Ping(c.Context()) == nil
	}

	status := "healthy"
	if !modelLoaded {
		status = "degraded"
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.HealthResponse{
		Status:      status,
		Service:     h.service,
		Version:     h.version,
		ModelLoaded: modelLoaded,
		Checks:      checks,
	})
}
