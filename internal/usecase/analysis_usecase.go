package usecase

import (
	"context"
	"log"

	"career-engine/internal/domain/analysis"
	"career-engine/internal/domain/profile"
)

const defaultMaxPaths = 5

type AnalysisUsecase interface {
	AnalyzeSkills(ctx context.Context, p profile.UserProfile, targetJobs []profile.Job) (analysis.Result, error)
	LearningPaths(ctx context.Context, p profile.UserProfile, targetJobs []profile.Job, maxPaths int) ([]analysis.LearningPath, error)
}

type Analysis struct {
	logger *log.Logger
}

func NewAnalysisUsecase(logger *log.Logger) *Analysis {
	if logger == nil {
		logger = log.Default()
	}
	return &Analysis{logger: logger}
}

func (u *Analysis) AnalyzeSkills(_ context.Context, p profile.UserProfile, targetJobs []profile.Job) (analysis.Result, error) {
	if len(targetJobs) == 0 {
		return analysis.Result{}, ErrNoTargetJobs
	}

	res := analysis.AnalyzeGaps(p, targetJobs)
	u.logger.Printf("[Analysis] user %s: %d gaps identified, %.1f%% ready", p.UserID, len(res.SkillGaps), res.OverallReadiness)
	return res, nil
}

func (u *Analysis) LearningPaths(_ context.Context, p profile.UserProfile, targetJobs []profile.Job, maxPaths int) ([]analysis.LearningPath, error) {
	if maxPaths <= 0 {
		maxPaths = defaultMaxPaths
	}

	res := analysis.AnalyzeGaps(p, targetJobs)
	paths := analysis.LearningPaths(res.SkillGaps, maxPaths)
	u.logger.Printf("[Analysis] user %s: generated %d learning paths", p.UserID, len(paths))
	return paths, nil
}
