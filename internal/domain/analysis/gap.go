package analysis

import (
	"sort"

	"career-engine/internal/domain/matching"
)

// MissingSkills is the pure set difference between required and user
// skills. Comparison is on normalized forms; the output keeps the
// original casing of the first occurrence in the required list and is
// sorted alphabetically. No fuzzy matching here.
func MissingSkills(userSkills, requiredSkills []string) []string {
	userNorm := make(map[string]bool, len(userSkills))
	for _, s := range userSkills {
		userNorm[matching.Normalize(s)] = true
	}

	missing := make([]string, 0, len(requiredSkills))
	seen := make(map[string]bool, len(requiredSkills))
	for _, r := range requiredSkills {
		n := matching.Normalize(r)
		if seen[n] {
			continue
		}
		seen[n] = true
		if !userNorm[n] {
			missing = append(missing, r)
		}
	}

	sort.Strings(missing)
	return missing
}
