package profile

import (
	"fmt"
	"strings"
)

// Truncation bounds for embedding text. They are part of the scoring
// contract: changing them shifts every semantic score.
const (
	maxCVChars          = 1000
	maxDescriptionChars = 500
)

// EmbeddingText serializes a profile into the deterministic string fed
// to the embedding oracle. Fields appear in a fixed order and absent or
// empty fields are skipped.
func (p UserProfile) EmbeddingText() string {
	parts := make([]string, 0, 8)

	if len(p.Skills) > 0 {
		parts = append(parts, "Skills: "+strings.Join(p.Skills, ", "))
	}
	if len(p.Roles) > 0 {
		parts = append(parts, "Target roles: "+strings.Join(p.Roles, ", "))
	}
	if p.Goal != "" {
		parts = append(parts, "Career goal: "+p.Goal)
	}
	if p.ExperienceLevel != "" {
		parts = append(parts, "Experience level: "+string(p.ExperienceLevel))
	}
	if p.YearsOfExperience > 0 {
		parts = append(parts, fmt.Sprintf("%d years of experience", p.YearsOfExperience))
	}
	if len(p.Industries) > 0 {
		parts = append(parts, "Industries: "+strings.Join(p.Industries, ", "))
	}
	if p.WorkStyle != "" {
		parts = append(parts, fmt.Sprintf("Prefers %s work", p.WorkStyle))
	}
	if p.CVText != "" {
		parts = append(parts, "Background: "+truncateRunes(p.CVText, maxCVChars))
	}

	return strings.Join(parts, ". ")
}

// EmbeddingText serializes a posting for the embedding oracle, mirroring
// the profile serialization rules.
func (j Job) EmbeddingText() string {
	parts := make([]string, 0, 6)

	if j.Title != "" {
		parts = append(parts, "Job title: "+j.Title)
	}
	if j.Company != "" {
		parts = append(parts, "Company: "+j.Company)
	}
	if j.Description != "" {
		parts = append(parts, "Description: "+truncateRunes(j.Description, maxDescriptionChars))
	}
	if len(j.Requirements) > 0 {
		parts = append(parts, "Requirements: "+strings.Join(j.Requirements, ", "))
	}
	if len(j.Tags) > 0 {
		parts = append(parts, "Tags: "+strings.Join(j.Tags, ", "))
	}
	if j.WorkType != "" {
		parts = append(parts, "Work type: "+string(j.WorkType))
	}

	return strings.Join(parts, ". ")
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
