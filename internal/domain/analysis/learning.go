package analysis

import (
	"fmt"
	"sort"
	"strings"
)

// Platform is one learning provider with a search URL template. Queries
// only encode spaces as `+`; other characters pass through untouched.
type Platform struct {
	Key     string
	BaseURL string
}

// Title renders the platform key for display: underscores become spaces,
// each word is title-cased.
func (p Platform) Title() string {
	words := strings.Split(strings.ReplaceAll(p.Key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// SearchURL builds the provider search link for a skill.
func (p Platform) SearchURL(skill string) string {
	return p.BaseURL + strings.ReplaceAll(skill, " ", "+")
}

var learningPlatforms = []Platform{
	{Key: "coursera", BaseURL: "https://www.coursera.org/search?query="},
	{Key: "udemy", BaseURL: "https://www.udemy.com/courses/search/?q="},
	{Key: "pluralsight", BaseURL: "https://www.pluralsight.com/search?q="},
	{Key: "linkedin_learning", BaseURL: "https://www.linkedin.com/learning/search?keywords="},
}

// Resource is one structured learning-path entry.
type Resource struct {
	Title string
	URL   string
}

// LearningPath is a prioritized plan for closing one skill gap.
type LearningPath struct {
	Skill             string
	Priority          int
	Resources         []Resource
	Milestones        []string
	EstimatedDuration string
}

// LearningPaths turns gaps into ordered paths, highest priority first,
// truncated to maxPaths.
func LearningPaths(gaps []SkillGap, maxPaths int) []LearningPath {
	sorted := make([]SkillGap, len(gaps))
	copy(sorted, gaps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return importancePriority[sorted[i].Importance] < importancePriority[sorted[j].Importance]
	})

	if maxPaths > 0 && len(sorted) > maxPaths {
		sorted = sorted[:maxPaths]
	}

	paths := make([]LearningPath, 0, len(sorted))
	for i, gap := range sorted {
		duration := gap.EstimatedLearningTime
		if duration == "" {
			duration = learningTimeByImportance[gap.Importance]
		}
		paths = append(paths, LearningPath{
			Skill:             gap.Skill,
			Priority:          i + 1,
			Resources:         resourcesFor(gap.Skill),
			Milestones:        milestonesFor(gap),
			EstimatedDuration: duration,
		})
	}
	return paths
}

func resourcesFor(skill string) []Resource {
	out := make([]Resource, 0, 3)
	for _, platform := range learningPlatforms[:3] {
		out = append(out, Resource{
			Title: fmt.Sprintf("Learn %s on %s", skill, platform.Title()),
			URL:   platform.SearchURL(skill),
		})
	}
	return out
}

func milestonesFor(gap SkillGap) []string {
	milestones := []string{
		"Complete introductory course on " + gap.Skill,
		"Build a small project using " + gap.Skill,
		"Contribute to an open-source project involving " + gap.Skill,
	}
	if gap.Importance == ImportanceCritical {
		milestones = append(milestones, "Earn a certification in "+gap.Skill)
	}
	return milestones
}
