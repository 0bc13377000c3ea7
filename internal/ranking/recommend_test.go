package ranking

import (
	"fmt"
	"testing"

	"github.com/jonathan/skill-matcher/internal/catalog"
	"github.com/jonathan/skill-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T, entries ...types.Opportunity) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(entries)
	require.NoError(t, err)
	return cat
}

func entry(id string, required ...string) types.Opportunity {
	return types.Opportunity{ID: id, Title: "Role " + id, Required: required}
}

func recommendedSkills(recs []types.SkillRecommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Skill
	}
	return out
}

func TestRecommend_CountsAndOrder(t *testing.T) {
	cat := newCatalog(t,
		entry("1", "React", "CSS"),
		entry("2", "Docker", "React"),
		entry("3", "Docker", "React", "SQL"),
		entry("4", "Go"),
	)

	recs, err := Recommend(cat, []string{"Go"}, DefaultResources())
	require.NoError(t, err)

	assert.Equal(t, []string{"React", "Docker", "CSS", "SQL"}, recommendedSkills(recs.Recommended))
	assert.Equal(t, 3, recs.Recommended[0].OpportunitiesUnlocked)
	assert.Equal(t, 2, recs.Recommended[1].OpportunitiesUnlocked)
	assert.Equal(t, 1, recs.Recommended[2].OpportunitiesUnlocked)
	assert.Equal(t, 1, recs.Recommended[3].OpportunitiesUnlocked)
}

func TestRecommend_TiesKeepFirstEncounteredOrder(t *testing.T) {
	cat := newCatalog(t,
		entry("1", "Zig", "Ada"),
		entry("2", "Nim", "Ada"),
		entry("3", "Zig", "Nim"),
	)

	recs, err := Recommend(cat, []string{}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Zig", "Ada", "Nim"}, recommendedSkills(recs.Recommended))
}

func TestRecommend_CapsAtEight(t *testing.T) {
	required := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		required = append(required, fmt.Sprintf("Skill%02d", i))
	}
	cat := newCatalog(t, entry("big", required...))

	recs, err := Recommend(cat, []string{"Go"}, nil)
	require.NoError(t, err)

	require.Len(t, recs.Recommended, MaxRecommendations)
	assert.Equal(t, "Skill00", recs.Recommended[0].Skill)
	assert.Equal(t, "Skill07", recs.Recommended[7].Skill)
}

func TestRecommend_AttachesResources(t *testing.T) {
	cat := newCatalog(t, entry("1", "React", "Elm"))

	recs, err := Recommend(cat, []string{}, DefaultResources())
	require.NoError(t, err)
	require.Len(t, recs.Recommended, 2)

	require.NotNil(t, recs.Recommended[0].Resource)
	assert.Equal(t, "Scrimba", recs.Recommended[0].Resource.Platform)
	assert.Nil(t, recs.Recommended[1].Resource, "skills absent from the table get no resource")
}

func TestRecommend_CountsOncePerOpportunity(t *testing.T) {
	cat := newCatalog(t, entry("1", "Go", "Go"), entry("2", "Go"))

	recs, err := Recommend(cat, []string{}, nil)
	require.NoError(t, err)
	require.Len(t, recs.Recommended, 1)
	assert.Equal(t, 2, recs.Recommended[0].OpportunitiesUnlocked)
}

func TestRecommend_NilSkills(t *testing.T) {
	cat := newCatalog(t, entry("1", "Go"))

	_, err := Recommend(cat, nil, nil)
	var invalid *catalog.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestRecommend_EmptyWhenEverythingMatched(t *testing.T) {
	cat := newCatalog(t, entry("1", "Go"), entry("2", "go"))

	recs, err := Recommend(cat, []string{"GO"}, nil)
	require.NoError(t, err)
	assert.NotNil(t, recs.Recommended)
	assert.Empty(t, recs.Recommended)
	assert.NotNil(t, recs.NearMatches)
	assert.Empty(t, recs.NearMatches)
}

func TestRecommend_GroupBy(t *testing.T) {
	cat := newCatalog(t,
		entry("1", "Node.js", "SQL"),
		entry("2", "NodeJS"),
		entry("3", "node-js", "Docker"),
		entry("4", "SQL"),
	)

	t.Run("literal keeps spellings apart", func(t *testing.T) {
		recs, err := RecommendWithOptions(cat, []string{}, nil, Options{GroupBy: GroupLiteral})
		require.NoError(t, err)

		assert.Equal(t, []string{"SQL", "Node.js", "NodeJS", "node-js", "Docker"}, recommendedSkills(recs.Recommended))
		assert.Equal(t, 2, recs.Recommended[0].OpportunitiesUnlocked)
		assert.Equal(t, 1, recs.Recommended[1].OpportunitiesUnlocked)
	})

	t.Run("default is literal", func(t *testing.T) {
		literal, err := RecommendWithOptions(cat, []string{}, nil, Options{GroupBy: GroupLiteral})
		require.NoError(t, err)
		def, err := Recommend(cat, []string{}, nil)
		require.NoError(t, err)
		assert.Equal(t, literal, def)
	})

	t.Run("normalized merges spellings", func(t *testing.T) {
		recs, err := RecommendWithOptions(cat, []string{}, DefaultResources(), Options{GroupBy: GroupNormalized})
		require.NoError(t, err)

		assert.Equal(t, []string{"Node.js", "SQL", "Docker"}, recommendedSkills(recs.Recommended))
		assert.Equal(t, 3, recs.Recommended[0].OpportunitiesUnlocked)
		assert.Equal(t, 2, recs.Recommended[1].OpportunitiesUnlocked)
		require.NotNil(t, recs.Recommended[0].Resource)
		assert.Equal(t, "The Odin Project", recs.Recommended[0].Resource.Platform)
	})
}

func TestRecommend_NearMatches(t *testing.T) {
	cat := newCatalog(t,
		entry("strong", "A", "B", "C", "D", "E"), // 100
		entry("n60", "A", "B", "C", "X", "Y"),    // 60
		entry("n40", "A", "B", "X", "Y", "Z"),    // 40
		entry("far", "A", "X", "Y", "Z", "W"),    // 20
		entry("n75", "A", "B", "C", "X"),         // 75
		entry("n50", "A", "X"),                   // 50
		entry("n67", "A", "B", "X"),              // 67
	)

	recs, err := Recommend(cat, []string{"A", "B", "C", "D", "E"}, nil)
	require.NoError(t, err)

	require.Len(t, recs.NearMatches, MaxNearMatches)
	got := []string{recs.NearMatches[0].ID, recs.NearMatches[1].ID, recs.NearMatches[2].ID}
	assert.Equal(t, []string{"n75", "n67", "n60"}, got)
	for _, n := range recs.NearMatches {
		assert.GreaterOrEqual(t, n.Score, NearMatchMin)
		assert.Less(t, n.Score, NearMatchMax)
	}
}

func TestNearMatches_BandEdges(t *testing.T) {
	scored := []types.ScoredOpportunity{
		{Opportunity: types.Opportunity{ID: "80"}, MatchResult: types.MatchResult{Score: 80}},
		{Opportunity: types.Opportunity{ID: "79"}, MatchResult: types.MatchResult{Score: 79}},
		{Opportunity: types.Opportunity{ID: "40"}, MatchResult: types.MatchResult{Score: 40}},
		{Opportunity: types.Opportunity{ID: "39"}, MatchResult: types.MatchResult{Score: 39}},
		{Opportunity: types.Opportunity{ID: "40b"}, MatchResult: types.MatchResult{Score: 40}},
	}

	near := NearMatches(scored)
	ids := make([]string, len(near))
	for i, n := range near {
		ids[i] = n.ID
	}
	assert.Equal(t, []string{"79", "40", "40b"}, ids)
}

func TestRecommend_BoundsHoldOnDefaultCatalog(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	for _, skillSet := range [][]string{
		{},
		{"React", "JavaScript"},
		{"Python", "SQL", "Pandas", "Machine Learning"},
		{"Go", "Docker", "Kubernetes", "Linux"},
	} {
		recs, err := Recommend(cat, skillSet, DefaultResources())
		require.NoError(t, err)
		assert.LessOrEqual(t, len(recs.Recommended), MaxRecommendations)
		assert.LessOrEqual(t, len(recs.NearMatches), MaxNearMatches)
		for i := 1; i < len(recs.Recommended); i++ {
			assert.GreaterOrEqual(t, recs.Recommended[i-1].OpportunitiesUnlocked, recs.Recommended[i].OpportunitiesUnlocked)
		}
	}
}

func TestParseGroupBy(t *testing.T) {
	tests := []struct {
		in      string
		want    GroupBy
		wantErr bool
	}{
		{"", GroupLiteral, false},
		{"literal", GroupLiteral, false},
		{"normalized", GroupNormalized, false},
		{"fuzzy", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGroupBy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
