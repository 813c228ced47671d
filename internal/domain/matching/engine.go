package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"career-engine/internal/domain/profile"
)

// Scoring weights. They sum to 1.00 and are part of the contract: the
// overall score is exactly the weighted sum of the five sub-scores.
const (
	SemanticWeight   = 0.40
	SkillWeight      = 0.30
	ExperienceWeight = 0.15
	LocationWeight   = 0.10
	SalaryWeight     = 0.05
)

// Result is one scored (profile, job) pair. All scores are in [0,100],
// rounded to one decimal at this reporting boundary.
type Result struct {
	JobID           string
	MatchScore      float64
	SemanticScore   float64
	SkillMatchScore float64
	ExperienceScore float64
	LocationScore   float64
	Reasoning       string
	KeyMatches      []string
	MissingSkills   []string
}

// Seniority terms scanned against title+description. Order matters:
// junior terms are tested before senior terms, so a posting mentioning
// both resolves to entry.
var jobLevelTerms = []struct {
	level profile.ExperienceLevel
	terms []string
}{
	{profile.LevelEntry, []string{"junior", "entry", "graduate", "early career"}},
	{profile.LevelSenior, []string{"senior", "lead", "staff", "principal"}},
	{profile.LevelExecutive, []string{"executive", "director", "vp", "chief", "head of"}},
}

// ScoreJob fuses the precomputed semantic similarity (cosine in [0,1])
// with the structured sub-scores into a single weighted match result.
func ScoreJob(p profile.UserProfile, j profile.Job, similarity float64) Result {
	semantic := similarity * 100

	overlap := ScoreSkills(p.Skills, j.Requirements)
	experience := scoreExperience(p, j)
	location := scoreWorkStyle(p.WorkStyle, j.WorkType)
	salary := scoreSalary(p, j)

	overall := semantic*SemanticWeight +
		overlap.Score*SkillWeight +
		experience*ExperienceWeight +
		location*LocationWeight +
		salary*SalaryWeight

	return Result{
		JobID:           j.JobID,
		MatchScore:      round1(overall),
		SemanticScore:   round1(semantic),
		SkillMatchScore: round1(overlap.Score),
		ExperienceScore: round1(experience),
		LocationScore:   round1(location),
		Reasoning:       buildReasoning(semantic, overlap),
		KeyMatches:      keyMatches(overlap.Matching, semantic, experience, location),
		MissingSkills:   overlap.Missing,
	}
}

// SortResults orders results by overall score descending. The sort is
// stable so equal scores keep input order.
func SortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
}

func scoreExperience(p profile.UserProfile, j profile.Job) float64 {
	if p.ExperienceLevel == "" {
		return 70
	}

	jobText := strings.ToLower(j.Title + " " + j.Description)
	jobLevel := profile.LevelMid
	for _, band := range jobLevelTerms {
		if containsAny(jobText, band.terms) {
			jobLevel = band.level
			break
		}
	}

	diff := p.ExperienceLevel.Rank() - jobLevel.Rank()
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return 100
	case 1:
		return 80
	default:
		return 50
	}
}

func scoreWorkStyle(pref, jobType profile.WorkStyle) float64 {
	if pref == "" || jobType == "" {
		return 85
	}
	switch {
	case pref == jobType:
		return 100
	case pref == profile.WorkFlexible || jobType == profile.WorkFlexible:
		return 90
	case pref == profile.WorkRemote || jobType == profile.WorkRemote:
		return 80
	default:
		return 60
	}
}

// fallbackSalaryRange stands in for the profile range when the profile
// declares a minimum but no maximum.
const fallbackSalaryRange = 100000

func scoreSalary(p profile.UserProfile, j profile.Job) float64 {
	if p.SalaryMin == nil && p.SalaryMax == nil {
		return 100
	}
	if j.SalaryMin == nil && j.SalaryMax == nil {
		return 75
	}

	pMin := float64(intOrZero(p.SalaryMin))
	pMax := math.Inf(1)
	if p.SalaryMax != nil {
		pMax = float64(*p.SalaryMax)
	}
	jMin := float64(intOrZero(j.SalaryMin))
	jMax := math.Inf(1)
	if j.SalaryMax != nil {
		jMax = float64(*j.SalaryMax)
	}

	overlapStart := math.Max(pMin, jMin)
	overlapEnd := math.Min(pMax, jMax)

	if overlapEnd >= overlapStart {
		overlapSize := overlapEnd - overlapStart
		profileRange := pMax - pMin
		if math.IsInf(pMax, 1) {
			profileRange = fallbackSalaryRange
		}
		ratio := 1.0
		if profileRange > 0 {
			ratio = overlapSize / profileRange
		}
		return math.Min(100, 70+ratio*30)
	}

	if jMax < pMin {
		// Posting pays below the profile floor; fade out with the gap.
		return math.Max(0, 50-(pMin-jMax)/1000)
	}
	return 80
}

func buildReasoning(semantic float64, overlap Overlap) string {
	clauses := make([]string, 0, 3)

	switch {
	case semantic >= 80:
		clauses = append(clauses, "strong alignment with your career profile and goals")
	case semantic >= 60:
		clauses = append(clauses, "good fit based on your background and aspirations")
	default:
		clauses = append(clauses, "some alignment with your profile")
	}

	switch {
	case overlap.Score >= 80:
		clauses = append(clauses, fmt.Sprintf("you possess most required skills (%d matched)", len(overlap.Matching)))
	case overlap.Score >= 50:
		clauses = append(clauses, fmt.Sprintf("you have %d of the key skills", len(overlap.Matching)))
	default:
		clauses = append(clauses, "opportunity to develop new skills")
	}

	switch n := len(overlap.Missing); {
	case n > 0 && n <= 2:
		clauses = append(clauses, "upskilling in "+strings.Join(overlap.Missing, ", ")+" would strengthen your candidacy")
	case n > 2:
		clauses = append(clauses, fmt.Sprintf("developing skills in %d areas could help", n))
	}

	for i, c := range clauses {
		clauses[i] = capitalizeFirst(c)
	}
	return strings.Join(clauses, ". ") + "."
}

func keyMatches(matching []string, semantic, experience, location float64) []string {
	out := make([]string, 0, 5)
	if len(matching) > 3 {
		out = append(out, matching[:3]...)
	} else {
		out = append(out, matching...)
	}

	if experience >= 90 {
		out = append(out, "Experience level match")
	}
	if location >= 90 {
		out = append(out, "Work style preference")
	}
	if semantic >= 85 {
		out = append(out, "Strong profile alignment")
	}

	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

func capitalizeFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
