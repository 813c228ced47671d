package matching

import (
	"sort"
	"strings"
)

// Overlap is the skill comparison between a user and one posting.
// Matching and Missing keep the original casing of the posting's
// requirement strings.
type Overlap struct {
	Score    float64
	Matching []string
	Missing  []string
}

// Normalize is the canonical form used for all skill comparisons:
// lowercased with outer whitespace trimmed. Display output always keeps
// the original string.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FuzzyMatch reports substring containment in either direction between
// two normalized skill strings.
func FuzzyMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// ScoreSkills computes the overlap between user skills and job
// requirements. Requirements not matched exactly are retried with
// bidirectional substring matching; the first user skill that hits wins.
// User skills are iterated in sorted normalized order so the outcome
// does not depend on input ordering.
func ScoreSkills(userSkills, requirements []string) Overlap {
	if len(requirements) == 0 {
		return Overlap{Score: 100, Matching: []string{}, Missing: []string{}}
	}
	if len(userSkills) == 0 {
		missing := make([]string, len(requirements))
		copy(missing, requirements)
		return Overlap{Score: 0, Matching: []string{}, Missing: missing}
	}

	userNorm := normalizeSet(userSkills)
	reqNorm := normalizeSet(requirements)

	userSorted := make([]string, 0, len(userNorm))
	for s := range userNorm {
		userSorted = append(userSorted, s)
	}
	sort.Strings(userSorted)

	exact := make(map[string]bool, len(reqNorm))
	fuzzy := make(map[string]bool)
	for req := range reqNorm {
		if userNorm[req] {
			exact[req] = true
			continue
		}
		for _, skill := range userSorted {
			if FuzzyMatch(req, skill) {
				fuzzy[req] = true
				break
			}
		}
	}

	matched := len(exact) + len(fuzzy)
	score := float64(matched) / float64(len(reqNorm)) * 100

	matching := make([]string, 0, matched)
	missing := make([]string, 0, len(requirements)-matched)
	for _, req := range requirements {
		n := Normalize(req)
		if exact[n] || fuzzy[n] {
			matching = append(matching, req)
		} else {
			missing = append(missing, req)
		}
	}

	return Overlap{Score: score, Matching: matching, Missing: missing}
}

func normalizeSet(skills []string) map[string]bool {
	out := make(map[string]bool, len(skills))
	for _, s := range skills {
		out[Normalize(s)] = true
	}
	return out
}
