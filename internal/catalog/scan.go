package catalog

import (
	"sort"

	"github.com/jonathan/skill-matcher/internal/skills"
	"github.com/jonathan/skill-matcher/internal/types"
)

// Scan matches studentSkills against every opportunity and returns the
// results in catalog order. It never fails; callers validate input first.
func (c *Catalog) Scan(studentSkills []string) []types.ScoredOpportunity {
	scored := make([]types.ScoredOpportunity, 0, len(c.entries))
	for i := range c.entries {
		scored = append(scored, score(c.entries[i], studentSkills))
	}
	return scored
}

// MatchAll scores every opportunity and sorts by score, descending.
// Opportunities with equal scores keep their catalog order.
func (c *Catalog) MatchAll(studentSkills []string) ([]types.ScoredOpportunity, error) {
	if studentSkills == nil {
		return nil, errSkillsRequired()
	}

	results := c.Scan(studentSkills)
	SortByScore(results)
	return results, nil
}

// MatchOne scores a single opportunity. A nil or empty skill list is a
// request with zero matched skills, not an error.
func (c *Catalog) MatchOne(id string, studentSkills []string) (types.ScoredOpportunity, error) {
	i, ok := c.index[id]
	if !ok {
		return types.ScoredOpportunity{}, &NotFoundError{ID: id}
	}
	return score(c.entries[i], studentSkills), nil
}

// SortByScore stable-sorts scored opportunities by descending score.
func SortByScore(results []types.ScoredOpportunity) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}

func score(opp types.Opportunity, studentSkills []string) types.ScoredOpportunity {
	return types.ScoredOpportunity{
		Opportunity: opp.Clone(),
		MatchResult: skills.Match(studentSkills, opp.Required),
	}
}

// Gap lists the required skills one opportunity is still missing.
type Gap struct {
	OpportunityID string
	Missing       []string
}

// Gaps returns the missing-skill list of every opportunity in catalog order.
func (c *Catalog) Gaps(studentSkills []string) []Gap {
	gaps := make([]Gap, 0, len(c.entries))
	for i := range c.entries {
		m := skills.Match(studentSkills, c.entries[i].Required)
		gaps = append(gaps, Gap{OpportunityID: c.entries[i].ID, Missing: m.Missing})
	}
	return gaps
}
