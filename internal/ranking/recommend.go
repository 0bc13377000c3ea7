// Package ranking turns per-opportunity skill gaps into ranked learning recommendations.
package ranking

import (
	"fmt"
	"sort"

	"github.com/jonathan/skill-matcher/internal/catalog"
	"github.com/jonathan/skill-matcher/internal/skills"
	"github.com/jonathan/skill-matcher/internal/types"
)

// Output limits and the near-match score band [NearMatchMin, NearMatchMax).
const (
	MaxRecommendations = 8
	MaxNearMatches     = 3
	NearMatchMin       = 40
	NearMatchMax       = 80
)

// GroupBy selects how missing skills are tallied.
type GroupBy string

const (
	// GroupLiteral counts each distinct missing string as written in the catalog.
	GroupLiteral GroupBy = "literal"
	// GroupNormalized merges spellings that normalize to the same skill and
	// reports them under the first spelling encountered.
	GroupNormalized GroupBy = "normalized"
)

// ParseGroupBy converts a config value into a GroupBy. Empty means GroupLiteral.
func ParseGroupBy(s string) (GroupBy, error) {
	switch GroupBy(s) {
	case "", GroupLiteral:
		return GroupLiteral, nil
	case GroupNormalized:
		return GroupNormalized, nil
	default:
		return "", fmt.Errorf("unknown group-by %q (want %q or %q)", s, GroupLiteral, GroupNormalized)
	}
}

// Options tunes Recommend.
type Options struct {
	GroupBy GroupBy
}

// Recommend ranks the student's missing skills by how many opportunities list
// them, using literal grouping.
func Recommend(cat *catalog.Catalog, studentSkills []string, resources ResourceTable) (types.Recommendations, error) {
	return RecommendWithOptions(cat, studentSkills, resources, Options{})
}

// RecommendWithOptions is Recommend with an explicit tally mode.
func RecommendWithOptions(cat *catalog.Catalog, studentSkills []string, resources ResourceTable, opts Options) (types.Recommendations, error) {
	scored, err := cat.MatchAll(studentSkills)
	if err != nil {
		return types.Recommendations{}, err
	}

	tally := tallyGaps(cat.Gaps(studentSkills), opts.GroupBy)
	if len(tally) > MaxRecommendations {
		tally = tally[:MaxRecommendations]
	}

	recommended := make([]types.SkillRecommendation, 0, len(tally))
	for _, g := range tally {
		recommended = append(recommended, types.SkillRecommendation{
			Skill:                 g.skill,
			OpportunitiesUnlocked: g.count,
			Resource:              resources.Lookup(g.skill),
		})
	}

	return types.Recommendations{
		Recommended: recommended,
		NearMatches: NearMatches(scored),
	}, nil
}

// NearMatches keeps opportunities scoring in [NearMatchMin, NearMatchMax),
// sorted by score descending, at most MaxNearMatches.
func NearMatches(scored []types.ScoredOpportunity) []types.ScoredOpportunity {
	near := make([]types.ScoredOpportunity, 0, MaxNearMatches)
	for _, s := range scored {
		if s.Score >= NearMatchMin && s.Score < NearMatchMax {
			near = append(near, s)
		}
	}
	catalog.SortByScore(near)
	if len(near) > MaxNearMatches {
		near = near[:MaxNearMatches]
	}
	return near
}

type gapCount struct {
	skill string
	count int
}

// tallyGaps counts every missing skill once per opportunity and sorts by
// count descending. Ties keep first-encountered order.
func tallyGaps(gaps []catalog.Gap, groupBy GroupBy) []gapCount {
	key := func(s string) string { return s }
	if groupBy == GroupNormalized {
		key = skills.Normalize
	}

	var counts []gapCount
	pos := make(map[string]int)
	for _, gap := range gaps {
		seen := make(map[string]struct{}, len(gap.Missing))
		for _, skill := range gap.Missing {
			k := key(skill)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}

			if i, ok := pos[k]; ok {
				counts[i].count++
				continue
			}
			pos[k] = len(counts)
			counts = append(counts, gapCount{skill: skill, count: 1})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})
	return counts
}
