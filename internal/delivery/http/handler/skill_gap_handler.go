package handler

import (
	"github.com/gofiber/fiber/v3"

	"career-engine/internal/delivery/http/dto"
	"career-engine/internal/delivery/http/middleware"
	"career-engine/internal/pkg/response"
	"career-engine/internal/usecase"
)

type SkillGapHandler struct {
	uc usecase.SkillGapUsecase
}

func NewSkillGapHandler(uc usecase.SkillGapUsecase) *SkillGapHandler {
	return &SkillGapHandler{uc: uc}
}

func (h *SkillGapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/skill-gap", h.CalculateGap)
}

func (h *SkillGapHandler) CalculateGap(c fiber.Ctx) error {
	var req dto.SkillGapRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res := h.uc.CalculateGap(c.Context(), req.UserSkills, req.RequiredSkills)

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillGapResponse{
		UserSkills:     res.UserSkills,
		RequiredSkills: res.RequiredSkills,
		MissingSkills:  res.MissingSkills,
	})
}
