package dto

import "career-engine/internal/domain/matching"

type MatchRequest struct {
	Profile ProfileRequest `json:"profile"`
	Jobs    []JobRequest   `json:"jobs"`
	Limit   int            `json:"limit,omitempty"`
}

type MatchResultResponse struct {
	JobID           string   `json:"job_id"`
	MatchScore      float64  `json:"match_score"`
	SemanticScore   float64  `json:"semantic_score"`
	SkillMatchScore float64  `json:"skill_match_score"`
	ExperienceScore float64  `json:"experience_score"`
	LocationScore   float64  `json:"location_score"`
	Reasoning       string   `json:"reasoning"`
	KeyMatches      []string `json:"key_matches"`
	MissingSkills   []string `json:"missing_skills"`
}

func FromMatchResult(res matching.Result) MatchResultResponse {
	return MatchResultResponse{
		JobID:           res.JobID,
		MatchScore:      res.MatchScore,
		SemanticScore:   res.SemanticScore,
		SkillMatchScore: res.SkillMatchScore,
		ExperienceScore: res.ExperienceScore,
		LocationScore:   res.LocationScore,
		Reasoning:       res.Reasoning,
		KeyMatches:      res.KeyMatches,
		MissingSkills:   res.MissingSkills,
	}
}

type CatalogMatchRequest struct {
	Profile ProfileRequest `json:"profile"`
	Limit   int            `json:"limit,omitempty"`
}

type CatalogMatchResponse struct {
	MatchResultResponse
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
}
