package skills

import (
	"math"

	"github.com/jonathan/skill-matcher/internal/types"
)

// Match compares a student's skills against an opportunity's required skills.
//
// Matched and Missing preserve the order of required. Score is
// round-half-up(100 * matched / required); an empty required list scores 0
// rather than counting as a universal match.
func Match(student, required []string) types.MatchResult {
	have := NormalizeSet(student)

	result := types.MatchResult{
		Matched: make([]string, 0, len(required)),
		Missing: make([]string, 0, len(required)),
	}
	for _, req := range required {
		if _, ok := have[Normalize(req)]; ok {
			result.Matched = append(result.Matched, req)
		} else {
			result.Missing = append(result.Missing, req)
		}
	}

	result.Score = Score(len(result.Matched), len(required))
	return result
}

// Score converts a matched/required count into an integer percentage.
func Score(matched, required int) int {
	if required <= 0 {
		return 0
	}
	pct := 100 * float64(matched) / float64(required)
	return int(math.Floor(pct + 0.5))
}
