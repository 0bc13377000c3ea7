package catalog

import (
	"sync"
	"testing"

	"github.com/jonathan/skill-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCatalog(t *testing.T, entries ...types.Opportunity) *Catalog {
	t.Helper()
	cat, err := New(entries)
	require.NoError(t, err)
	return cat
}

func ids(results []types.ScoredOpportunity) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.ID
	}
	return out
}

func TestMatchAll_SortedByScoreDescending(t *testing.T) {
	cat := mustCatalog(t,
		opp("low", "Go", "Rust", "C++", "Zig"),
		opp("full", "Go"),
		opp("half", "Go", "SQL"),
		opp("none", "COBOL"),
	)

	results, err := cat.MatchAll([]string{"go"})
	require.NoError(t, err)

	assert.Equal(t, []string{"full", "half", "low", "none"}, ids(results))
	assert.Equal(t, 100, results[0].Score)
	assert.Equal(t, 50, results[1].Score)
	assert.Equal(t, 25, results[2].Score)
	assert.Equal(t, 0, results[3].Score)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestMatchAll_TiesKeepCatalogOrder(t *testing.T) {
	// Positions 3 and 5 both score 75.
	cat := mustCatalog(t,
		opp("p1", "X"),
		opp("p2", "A", "B"),
		opp("p3", "A", "B", "C", "Z"),
		opp("p4", "Y"),
		opp("p5", "C", "B", "A", "Q"),
		opp("p6", "A"),
	)

	results, err := cat.MatchAll([]string{"A", "B", "C"})
	require.NoError(t, err)

	assert.Equal(t, []string{"p2", "p6", "p3", "p5", "p1", "p4"}, ids(results))
	assert.Equal(t, 75, results[2].Score)
	assert.Equal(t, 75, results[3].Score)
}

func TestMatchAll_MergesMatchIntoEntry(t *testing.T) {
	cat := mustCatalog(t, types.Opportunity{
		ID:         "fe",
		Title:      "Frontend Intern",
		Company:    "Acme",
		Type:       types.TypeInternship,
		Required:   []string{"React", "CSS", "Git"},
		NiceToHave: []string{"Figma"},
	})

	results, err := cat.MatchAll([]string{"react", "Figma"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, "Frontend Intern", r.Title)
	assert.Equal(t, "Acme", r.Company)
	assert.Equal(t, []string{"React"}, r.Matched)
	assert.Equal(t, []string{"CSS", "Git"}, r.Missing)
	assert.Equal(t, 33, r.Score, "nice-to-have skills never count toward the score")
}

func TestMatchAll_NilSkillsIsInvalidInput(t *testing.T) {
	cat := mustCatalog(t, opp("a", "Go"))

	results, err := cat.MatchAll(nil)
	assert.Nil(t, results)

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "skills", invalid.Field)
}

func TestMatchAll_EmptySkillsScoresZero(t *testing.T) {
	cat := mustCatalog(t, opp("a", "Go"), opp("b", "SQL"))

	results, err := cat.MatchAll([]string{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(results))
	for _, r := range results {
		assert.Equal(t, 0, r.Score)
	}
}

func TestMatchAll_EmptyCatalog(t *testing.T) {
	cat := mustCatalog(t)

	results, err := cat.MatchAll([]string{"Go"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMatchAll_ZeroRequirementEntryScoresZero(t *testing.T) {
	cat := mustCatalog(t, opp("empty"), opp("go", "Go"))

	results, err := cat.MatchAll([]string{"Go"})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "empty"}, ids(results))
	assert.Equal(t, 0, results[1].Score)
	assert.Empty(t, results[1].Matched)
	assert.Empty(t, results[1].Missing)
}

func TestMatchAll_ResultsDoNotAliasCatalog(t *testing.T) {
	cat := mustCatalog(t, opp("a", "Go"))

	results, err := cat.MatchAll([]string{})
	require.NoError(t, err)
	results[0].Required[0] = "Rust"
	results[0].Missing[0] = "Rust"

	again, err := cat.MatchOne("a", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, again.Required)
	assert.Equal(t, []string{"Go"}, again.Missing)
}

func TestMatchOne(t *testing.T) {
	cat := mustCatalog(t, opp("a", "Go", "SQL"), opp("b", "Python"))

	result, err := cat.MatchOne("a", []string{"SQL"})
	require.NoError(t, err)
	assert.Equal(t, "a", result.ID)
	assert.Equal(t, []string{"SQL"}, result.Matched)
	assert.Equal(t, []string{"Go"}, result.Missing)
	assert.Equal(t, 50, result.Score)
}

func TestMatchOne_NotFound(t *testing.T) {
	cat := mustCatalog(t, opp("a", "Go"))

	_, err := cat.MatchOne("missing", []string{"Go"})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.ID)
	assert.Contains(t, err.Error(), "opportunity not found")
}

func TestMatchOne_NilSkillsMatchesNothing(t *testing.T) {
	cat := mustCatalog(t, opp("a", "Go", "SQL"))

	result, err := cat.MatchOne("a", nil)
	require.NoError(t, err)
	assert.Empty(t, result.Matched)
	assert.Equal(t, []string{"Go", "SQL"}, result.Missing)
	assert.Equal(t, 0, result.Score)
}

func TestScan_CatalogOrder(t *testing.T) {
	cat := mustCatalog(t, opp("z", "A"), opp("y", "A", "B"), opp("x"))

	results := cat.Scan([]string{"B"})
	assert.Equal(t, []string{"z", "y", "x"}, ids(results))
	assert.Equal(t, []int{0, 50, 0}, []int{results[0].Score, results[1].Score, results[2].Score})
}

func TestMatchAll_ConcurrentUse(t *testing.T) {
	cat := mustCatalog(t, opp("a", "Go", "SQL"), opp("b", "Python"), opp("c", "Go"))

	expected, err := cat.MatchAll([]string{"Go"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := cat.MatchAll([]string{"Go"})
			assert.NoError(t, err)
			assert.Equal(t, expected, got)
		}()
	}
	wg.Wait()
}

func TestGaps(t *testing.T) {
	cat := mustCatalog(t, opp("a", "Go", "SQL"), opp("b", "SQL", "Docker"), opp("c"))

	gaps := cat.Gaps([]string{"sql"})
	require.Len(t, gaps, 3)
	assert.Equal(t, Gap{OpportunityID: "a", Missing: []string{"Go"}}, gaps[0])
	assert.Equal(t, Gap{OpportunityID: "b", Missing: []string{"Docker"}}, gaps[1])
	assert.Equal(t, "c", gaps[2].OpportunityID)
	assert.Empty(t, gaps[2].Missing)
}
