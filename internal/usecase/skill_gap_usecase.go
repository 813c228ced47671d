package usecase

import (
	"context"

	"career-engine/internal/domain/analysis"
)

// SkillGapResult echoes the inputs and lists what the user lacks.
type SkillGapResult struct {
	UserSkills     []string
	RequiredSkills []string
	MissingSkills  []string
}

type SkillGapUsecase interface {
	CalculateGap(ctx context.Context, userSkills, requiredSkills []string) SkillGapResult
}

type SkillGap struct{}

func NewSkillGapUsecase() *SkillGap {
	return &SkillGap{}
}

// CalculateGap is the quick set-difference check. It never fails and is
// idempotent: resubmitting the output changes nothing.
func (u *SkillGap) CalculateGap(_ context.Context, userSkills, requiredSkills []string) SkillGapResult {
	if userSkills == nil {
		userSkills = []string{}
	}
	if requiredSkills == nil {
		requiredSkills = []string{}
	}
	return SkillGapResult{
		UserSkills:     userSkills,
		RequiredSkills: requiredSkills,
		MissingSkills:  analysis.MissingSkills(userSkills, requiredSkills),
	}
}
