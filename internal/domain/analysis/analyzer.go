package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"career-engine/internal/domain/matching"
	"career-engine/internal/domain/profile"
)

// Importance classifies how hard a posting asks for a skill.
type Importance string

const (
	ImportanceCritical   Importance = "critical"
	ImportanceImportant  Importance = "important"
	ImportanceNiceToHave Importance = "nice-to-have"
)

// Context markers looked up around a skill mention. Kept as data so the
// tables can change without touching the scan.
var (
	criticalMarkers   = []string{"required", "must have", "essential", "mandatory"}
	niceToHaveMarkers = []string{"nice to have", "bonus", "plus", "advantage"}
)

// importanceWindow is how many characters around the first skill mention
// are inspected for markers.
const importanceWindow = 50

var targetLevelByImportance = map[Importance]int{
	ImportanceCritical:   8,
	ImportanceImportant:  6,
	ImportanceNiceToHave: 4,
}

var learningTimeByImportance = map[Importance]string{
	ImportanceCritical:   "3-4 months",
	ImportanceImportant:  "2-3 months",
	ImportanceNiceToHave: "1-2 months",
}

var importancePriority = map[Importance]int{
	ImportanceCritical:   1,
	ImportanceImportant:  2,
	ImportanceNiceToHave: 3,
}

// SkillGap is one requirement the user does not cover.
type SkillGap struct {
	Skill                 string
	Importance            Importance
	CurrentLevel          int
	TargetLevel           int
	LearningResources     []string
	EstimatedLearningTime string
}

// Result is the aggregated gap analysis across all target postings.
type Result struct {
	UserID           string
	TargetRole       string
	CurrentSkills    []string
	SkillGaps        []SkillGap
	Strengths        []string
	Recommendations  []string
	OverallReadiness float64
}

type requirementInfo struct {
	skill      string
	importance Importance
	frequency  int
}

// AnalyzeGaps compares a profile against the requirement lists of the
// target postings and produces gaps, strengths, readiness and strategic
// recommendations.
func AnalyzeGaps(p profile.UserProfile, targetJobs []profile.Job) Result {
	required := aggregateRequirements(targetJobs)

	userNorm := make([]string, 0, len(p.Skills))
	seen := make(map[string]bool, len(p.Skills))
	for _, s := range p.Skills {
		n := matching.Normalize(s)
		if seen[n] {
			continue
		}
		seen[n] = true
		userNorm = append(userNorm, n)
	}

	gaps := make([]SkillGap, 0)
	for _, info := range required {
		if covered(info.skill, userNorm, seen) {
			continue
		}
		gaps = append(gaps, newSkillGap(info))
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		return importancePriority[gaps[i].Importance] < importancePriority[gaps[j].Importance]
	})

	strengths := findStrengths(p.Skills, required)

	total := len(required)
	readiness := 100.0
	if total > 0 {
		readiness = float64(total-len(gaps)) / float64(total) * 100
	}
	readiness = math.Round(readiness*10) / 10

	targetRole := ""
	if len(p.Roles) > 0 {
		targetRole = p.Roles[0]
	}

	return Result{
		UserID:           p.UserID,
		TargetRole:       targetRole,
		CurrentSkills:    p.Skills,
		SkillGaps:        gaps,
		Strengths:        strengths,
		Recommendations:  recommendations(p, gaps, strengths, readiness),
		OverallReadiness: readiness,
	}
}

// aggregateRequirements collects distinct requirements across postings in
// first-seen order. Importance comes from the posting that first declared
// the skill; later postings only bump the frequency.
func aggregateRequirements(jobs []profile.Job) []*requirementInfo {
	order := make([]*requirementInfo, 0)
	byKey := make(map[string]*requirementInfo)

	for _, job := range jobs {
		context := strings.ToLower(job.Description + " " + strings.Join(job.Requirements, " "))
		for _, req := range job.Requirements {
			skill := strings.TrimSpace(req)
			info, ok := byKey[skill]
			if !ok {
				info = &requirementInfo{
					skill:      skill,
					importance: determineImportance(skill, context),
				}
				byKey[skill] = info
				order = append(order, info)
			}
			info.frequency++
		}
	}
	return order
}

// determineImportance inspects a window around the first mention of the
// skill in the posting text. Skills never mentioned in prose default to
// important.
func determineImportance(skill, context string) Importance {
	skillLower := strings.ToLower(skill)
	idx := strings.Index(context, skillLower)
	if skillLower == "" || idx < 0 {
		return ImportanceImportant
	}

	start := idx - importanceWindow
	if start < 0 {
		start = 0
	}
	end := idx + importanceWindow
	if end > len(context) {
		end = len(context)
	}
	surrounding := context[start:end]

	for _, kw := range criticalMarkers {
		if strings.Contains(surrounding, kw) {
			return ImportanceCritical
		}
	}
	for _, kw := range niceToHaveMarkers {
		if strings.Contains(surrounding, kw) {
			return ImportanceNiceToHave
		}
	}
	return ImportanceImportant
}

func covered(skill string, userNorm []string, userSet map[string]bool) bool {
	n := matching.Normalize(skill)
	if userSet[n] {
		return true
	}
	for _, us := range userNorm {
		if matching.FuzzyMatch(n, us) {
			return true
		}
	}
	return false
}

func newSkillGap(info *requirementInfo) SkillGap {
	resources := make([]string, 0, 2)
	for _, platform := range learningPlatforms[:2] {
		resources = append(resources, platform.Title()+": "+platform.SearchURL(info.skill))
	}

	return SkillGap{
		Skill:                 info.skill,
		Importance:            info.importance,
		CurrentLevel:          0,
		TargetLevel:           targetLevelByImportance[info.importance],
		LearningResources:     resources,
		EstimatedLearningTime: learningTimeByImportance[info.importance],
	}
}

// findStrengths keeps user skills, in declared order, that overlap any
// aggregated requirement. Capped at five.
func findStrengths(userSkills []string, required []*requirementInfo) []string {
	strengths := make([]string, 0, 5)
	for _, s := range userSkills {
		sNorm := matching.Normalize(s)
		for _, info := range required {
			if matching.FuzzyMatch(sNorm, matching.Normalize(info.skill)) {
				strengths = append(strengths, s)
				break
			}
		}
		if len(strengths) == 5 {
			break
		}
	}
	return strengths
}

func recommendations(p profile.UserProfile, gaps []SkillGap, strengths []string, readiness float64) []string {
	recs := make([]string, 0, 5)

	switch {
	case readiness >= 80:
		recs = append(recs, "You're well-prepared! Focus on showcasing your skills and applying confidently.")
	case readiness >= 60:
		recs = append(recs, "You have a solid foundation. Bridging a few skill gaps will significantly strengthen your candidacy.")
	default:
		recs = append(recs, "Consider a targeted learning plan to build essential skills for your target roles.")
	}

	for _, g := range gaps {
		if g.Importance == ImportanceCritical {
			recs = append(recs, fmt.Sprintf("Priority: Develop expertise in %s - it's highly sought after in your target roles.", g.Skill))
			break
		}
	}

	if len(strengths) > 0 {
		top := strengths
		if len(top) > 2 {
			top = top[:2]
		}
		recs = append(recs, fmt.Sprintf("Highlight your strong skills (%s) in your resume and interviews.", strings.Join(top, ", ")))
	}

	if p.ExperienceLevel == profile.LevelEntry {
		recs = append(recs, "Consider internships or entry-level projects to build practical experience alongside learning.")
	}

	if len(gaps) > 3 {
		recs = append(recs, "Build a portfolio project that demonstrates multiple skills simultaneously.")
	}

	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}
