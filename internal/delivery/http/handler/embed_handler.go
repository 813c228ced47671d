package handler

import (
	"github.com/gofiber/fiber/v3"

	"career-engine/internal/delivery/http/dto"
	"career-engine/internal/delivery/http/middleware"
	"career-engine/internal/embedding"
	"career-engine/internal/pkg/response"
)

const embedSampleSize = 5

// EmbedHandler exposes raw embeddings for development and testing. In
// production the endpoint answers 403.
type EmbedHandler struct {
	embedder   embedding.Embedder
	production bool
}

func NewEmbedHandler(embedder embedding.Embedder, production bool) *EmbedHandler {
	return &EmbedHandler{embedder: embedder, production: production}
}

func (h *EmbedHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/embed", h.Embed)
}

func (h *EmbedHandler) Embed(c fiber.Ctx) error {
	if h.production {
		return middleware.NewAppError(fiber.StatusForbidden, "Embedding endpoint is disabled in production", nil, nil)
	}

	var req dto.EmbedRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	vec := h.embedder.Embed(c.Context(), req.Text)

	sample := vec
	if len(sample) > embedSampleSize {
		sample = sample[:embedSampleSize]
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.EmbedResponse{
		Text:               req.Text,
		EmbeddingDimension: len(vec),
		EmbeddingSample:    sample,
	})
}
