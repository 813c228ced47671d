package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"career-engine/internal/delivery/http/dto"
	"career-engine/internal/delivery/http/middleware"
	"career-engine/internal/pkg/response"
	"career-engine/internal/usecase"
)

type AnalysisHandler struct {
	uc usecase.AnalysisUsecase
}

func NewAnalysisHandler(uc usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

func (h *AnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/analyze-skills", h.AnalyzeSkills)
	r.Post("/learning-paths", h.LearningPaths)
}

func (h *AnalysisHandler) AnalyzeSkills(c fiber.Ctx) error {
	var req dto.AnalyzeSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.AnalyzeSkills(c.Context(), req.Profile.ToDomain(), dto.JobsToDomain(req.TargetJobs))
	if err != nil {
		if errors.Is(err, usecase.ErrNoTargetJobs) {
			return middleware.NewAppError(fiber.StatusBadRequest, "At least one target job is required for analysis", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromAnalysisResult(res))
}

func (h *AnalysisHandler) LearningPaths(c fiber.Ctx) error {
	var req dto.LearningPathsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	paths, err := h.uc.LearningPaths(c.Context(), req.Profile.ToDomain(), dto.JobsToDomain(req.TargetJobs), req.MaxPaths)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromLearningPaths(paths))
}
