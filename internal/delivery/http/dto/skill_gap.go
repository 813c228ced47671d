package dto

type SkillGapRequest struct {
	UserSkills     []string `json:"user_skills"`
	RequiredSkills []string `json:"required_skills"`
}

type SkillGapResponse struct {
	UserSkills     []string `json:"user_skills"`
	RequiredSkills []string `json:"required_skills"`
	MissingSkills  []string `json:"missing_skills"`
}
