package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"career-engine/internal/delivery/http/dto"
	"career-engine/internal/delivery/http/middleware"
	"career-engine/internal/pkg/response"
	"career-engine/internal/usecase"
)

type MatchHandler struct {
	matcher usecase.MatchUsecase
	catalog usecase.CatalogMatchUsecase
}

func NewMatchHandler(matcher usecase.MatchUsecase, catalog usecase.CatalogMatchUsecase) *MatchHandler {
	return &MatchHandler{matcher: matcher, catalog: catalog}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/match")
	grp.Post("/", h.Match)
	grp.Post("/catalog", h.MatchCatalog)
}

func (h *MatchHandler) Match(c fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	results, err := h.matcher.Match(c.Context(), req.Profile.ToDomain(), dto.JobsToDomain(req.Jobs), req.Limit)
	if err != nil {
		return mapMatchError(err)
	}

	out := make([]dto.MatchResultResponse, 0, len(results))
	for _, res := range results {
		out = append(out, dto.FromMatchResult(res))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *MatchHandler) MatchCatalog(c fiber.Ctx) error {
	var req dto.CatalogMatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.catalog.MatchCatalog(c.Context(), req.Profile.ToDomain(), req.Limit)
	if err != nil {
		return mapMatchError(err)
	}

	out := make([]dto.CatalogMatchResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.CatalogMatchResponse{
			MatchResultResponse: dto.FromMatchResult(it.Result),
			Title:               it.Title,
			Company:             it.Company,
			Location:            it.Location,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapMatchError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Limit must be between 1 and 100", nil, err)
	case errors.Is(err, usecase.ErrCatalogUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Job catalog is not configured", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
