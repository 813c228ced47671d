package analysis

import (
	"strings"
	"testing"
)

func TestLearningPaths_PriorityOrderAndTruncation(t *testing.T) {
	gaps := []SkillGap{
		{Skill: "GraphQL", Importance: ImportanceNiceToHave},
		{Skill: "Kubernetes", Importance: ImportanceCritical},
		{Skill: "Terraform", Importance: ImportanceImportant},
	}

	paths := LearningPaths(gaps, 2)
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}
	if paths[0].Skill != "Kubernetes" || paths[0].Priority != 1 {
		t.Fatalf("expected Kubernetes at priority 1, got %+v", paths[0])
	}
	if paths[1].Skill != "Terraform" || paths[1].Priority != 2 {
		t.Fatalf("expected Terraform at priority 2, got %+v", paths[1])
	}
}

func TestLearningPaths_InputNotMutated(t *testing.T) {
	gaps := []SkillGap{
		{Skill: "B", Importance: ImportanceNiceToHave},
		{Skill: "A", Importance: ImportanceCritical},
	}
	LearningPaths(gaps, 5)
	if gaps[0].Skill != "B" {
		t.Fatalf("input slice was reordered: %+v", gaps)
	}
}

func TestLearningPaths_ResourcesFromFirstThreePlatforms(t *testing.T) {
	paths := LearningPaths([]SkillGap{{Skill: "Machine Learning", Importance: ImportanceImportant}}, 5)
	if len(paths) != 1 {
		t.Fatalf("expected one path, got %d", len(paths))
	}
	res := paths[0].Resources
	if len(res) != 3 {
		t.Fatalf("expected 3 resources, got %d", len(res))
	}
	if res[0].Title != "Learn Machine Learning on Coursera" {
		t.Fatalf("unexpected resource title %q", res[0].Title)
	}
	if res[0].URL != "https://www.coursera.org/search?query=Machine+Learning" {
		t.Fatalf("spaces must encode as plus signs only, got %q", res[0].URL)
	}
	if res[1].URL != "https://www.udemy.com/courses/search/?q=Machine+Learning" {
		t.Fatalf("unexpected udemy url %q", res[1].URL)
	}
	if res[2].URL != "https://www.pluralsight.com/search?q=Machine+Learning" {
		t.Fatalf("unexpected pluralsight url %q", res[2].URL)
	}
}

func TestLearningPaths_MilestonesExtraForCritical(t *testing.T) {
	critical := LearningPaths([]SkillGap{{Skill: "Go", Importance: ImportanceCritical}}, 1)
	if len(critical[0].Milestones) != 4 {
		t.Fatalf("critical gap must carry 4 milestones, got %v", critical[0].Milestones)
	}
	if critical[0].Milestones[3] != "Earn a certification in Go" {
		t.Fatalf("unexpected certification milestone %q", critical[0].Milestones[3])
	}

	important := LearningPaths([]SkillGap{{Skill: "Go", Importance: ImportanceImportant}}, 1)
	if len(important[0].Milestones) != 3 {
		t.Fatalf("non-critical gap must carry 3 milestones, got %v", important[0].Milestones)
	}
}

func TestLearningPaths_DurationFallsBackToImportance(t *testing.T) {
	paths := LearningPaths([]SkillGap{{Skill: "Go", Importance: ImportanceNiceToHave}}, 1)
	if paths[0].EstimatedDuration != "1-2 months" {
		t.Fatalf("expected duration derived from importance, got %q", paths[0].EstimatedDuration)
	}

	preset := LearningPaths([]SkillGap{{Skill: "Go", Importance: ImportanceCritical, EstimatedLearningTime: "6 months"}}, 1)
	if preset[0].EstimatedDuration != "6 months" {
		t.Fatalf("preset learning time must win, got %q", preset[0].EstimatedDuration)
	}
}

func TestPlatformTitle(t *testing.T) {
	cases := map[string]string{
		"coursera":          "Coursera",
		"linkedin_learning": "Linkedin Learning",
	}
	for key, want := range cases {
		p := Platform{Key: key}
		if got := p.Title(); got != want {
			t.Fatalf("Title(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestPlatformSearchURL_OnlySpacesEncoded(t *testing.T) {
	p := Platform{Key: "coursera", BaseURL: "https://www.coursera.org/search?query="}
	got := p.SearchURL("C++ & Go")
	if got != "https://www.coursera.org/search?query=C+++&+Go" {
		t.Fatalf("only spaces become plus signs, got %q", got)
	}
	if strings.Contains(got, "%") {
		t.Fatalf("no percent-encoding expected, got %q", got)
	}
}
