//nolint:revive // types is a standard Go package name pattern
package types

// MatchResult is the outcome of matching a student skill set against one
// opportunity's required skills. Matched and Missing keep the order of the
// required list and together partition it.
type MatchResult struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Score   int      `json:"score"`
}

// ScoredOpportunity is a catalog entry with its MatchResult merged in.
// Both embedded structs flatten into one JSON object.
type ScoredOpportunity struct {
	Opportunity
	MatchResult
}

// LearningResource points a student at a place to learn a skill
type LearningResource struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
	Time     string `json:"time" yaml:"time"`
}

// SkillRecommendation is a missing skill ranked by how many opportunities list it.
// Resource is nil when no learning resource is known for the skill.
type SkillRecommendation struct {
	Skill                 string            `json:"skill"`
	OpportunitiesUnlocked int               `json:"opportunitiesUnlocked"`
	Resource              *LearningResource `json:"resource"`
}

// Recommendations is the response of the recommendation ranker
type Recommendations struct {
	Recommended []SkillRecommendation `json:"recommended"`
	NearMatches []ScoredOpportunity   `json:"nearMatches"`
}
