package dto

import "career-engine/internal/domain/analysis"

type LearningPathsRequest struct {
	Profile    ProfileRequest `json:"profile"`
	TargetJobs []JobRequest   `json:"target_jobs"`
	MaxPaths   int            `json:"max_paths,omitempty"`
}

type ResourceEntry struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type LearningPathResponse struct {
	Skill             string          `json:"skill"`
	Priority          int             `json:"priority"`
	Resources         []ResourceEntry `json:"resources"`
	Milestones        []string        `json:"milestones"`
	EstimatedDuration string          `json:"estimated_duration"`
}

func FromLearningPaths(paths []analysis.LearningPath) []LearningPathResponse {
	out := make([]LearningPathResponse, 0, len(paths))
	for _, p := range paths {
		resources := make([]ResourceEntry, 0, len(p.Resources))
		for _, r := range p.Resources {
			resources = append(resources, ResourceEntry{Title: r.Title, URL: r.URL})
		}
		out = append(out, LearningPathResponse{
			Skill:             p.Skill,
			Priority:          p.Priority,
			Resources:         resources,
			Milestones:        p.Milestones,
			EstimatedDuration: p.EstimatedDuration,
		})
	}
	return out
}
