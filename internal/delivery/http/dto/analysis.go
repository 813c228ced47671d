package dto

import "career-engine/internal/domain/analysis"

type AnalyzeSkillsRequest struct {
	Profile    ProfileRequest `json:"profile"`
	TargetJobs []JobRequest   `json:"target_jobs"`
}

type SkillGapItem struct {
	Skill                 string   `json:"skill"`
	Importance            string   `json:"importance"`
	CurrentLevel          int      `json:"current_level"`
	TargetLevel           int      `json:"target_level"`
	LearningResources     []string `json:"learning_resources"`
	EstimatedLearningTime string   `json:"estimated_learning_time"`
}

type SkillAnalysisResponse struct {
	UserID           string         `json:"user_id"`
	TargetRole       string         `json:"target_role,omitempty"`
	CurrentSkills    []string       `json:"current_skills"`
	SkillGaps        []SkillGapItem `json:"skill_gaps"`
	Strengths        []string       `json:"strengths"`
	Recommendations  []string       `json:"recommendations"`
	OverallReadiness float64        `json:"overall_readiness"`
}

func FromAnalysisResult(res analysis.Result) SkillAnalysisResponse {
	gaps := make([]SkillGapItem, 0, len(res.SkillGaps))
	for _, g := range res.SkillGaps {
		gaps = append(gaps, SkillGapItem{
			Skill:                 g.Skill,
			Importance:            string(g.Importance),
			CurrentLevel:          g.CurrentLevel,
			TargetLevel:           g.TargetLevel,
			LearningResources:     g.LearningResources,
			EstimatedLearningTime: g.EstimatedLearningTime,
		})
	}
	return SkillAnalysisResponse{
		UserID:           res.UserID,
		TargetRole:       res.TargetRole,
		CurrentSkills:    res.CurrentSkills,
		SkillGaps:        gaps,
		Strengths:        res.Strengths,
		Recommendations:  res.Recommendations,
		OverallReadiness: res.OverallReadiness,
	}
}
