package v1

import (
	"github.com/gofiber/fiber/v3"

	"career-engine/internal/delivery/http/handler"
)

// Handlers bundles everything mounted under /api/v1. A nil handler
// skips its routes.
type Handlers struct {
	Match    *handler.MatchHandler
	SkillGap *handler.SkillGapHandler
	Analysis *handler.AnalysisHandler
	Embed    *handler.EmbedHandler
}

func Register(r fiber.Router, h Handlers, auth fiber.Handler) {
	if r == nil {
		return
	}

	group := r
	if auth != nil {
		group = r.Group("", auth)
	}

	if h.Match != nil {
		h.Match.RegisterRoutes(group)
	}
	if h.SkillGap != nil {
		h.SkillGap.RegisterRoutes(group)
	}
	if h.Analysis != nil {
		h.Analysis.RegisterRoutes(group)
	}
	if h.Embed != nil {
		h.Embed.RegisterRoutes(group)
	}
}
