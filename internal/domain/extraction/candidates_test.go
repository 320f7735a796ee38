package extraction

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamlog/roamlog-api/internal/types"
)

func TestExtractCandidatesQuoted(t *testing.T) {
	got := ExtractCandidates(types.RawContent{Title: `we found "La Bodega del Mar" by accident`})
	require.NotEmpty(t, got)
	assert.Equal(t, "La Bodega del Mar", got[0])
}

func TestExtractCandidatesAtInPhrases(t *testing.T) {
	got := ExtractCandidates(types.RawContent{Title: "Amazing sunset at Uluwatu Temple"})
	require.NotEmpty(t, got)
	assert.Equal(t, "Uluwatu Temple", got[0])
}

func TestExtractCandidatesCapitalizedRun(t *testing.T) {
	got := ExtractCandidates(types.RawContent{Title: "you have to try Gelateria Dondoli sometime"})
	assert.Contains(t, got, "Gelateria Dondoli")
}

func TestExtractCandidatesHashtagsAndMentions(t *testing.T) {
	got := ExtractCandidates(types.RawContent{
		Caption: "no caption needed #Positano #sunset dinner was @luigis_restaurant_amalfi",
	})
	assert.Contains(t, got, "Positano")
	assert.Contains(t, got, "luigis restaurant amalfi")
	// lowercase hashtag is not a candidate
	for _, c := range got {
		assert.NotEqual(t, "sunset", strings.ToLower(c))
	}
}

func TestExtractCandidatesMentionNeedsBusinessKeyword(t *testing.T) {
	got := ExtractCandidates(types.RawContent{Caption: "filmed by @some_random_person"})
	assert.NotContains(t, got, "some random person")
}

func TestExtractCandidatesBusinessAuthor(t *testing.T) {
	got := ExtractCandidates(types.RawContent{AuthorName: "sunset_beach_bar_bali"})
	assert.Contains(t, got, "sunset beach bar bali")
}

func TestExtractCandidatesFallbackTitle(t *testing.T) {
	got := ExtractCandidates(types.RawContent{Title: "hidden gem cafe lisbon"})
	require.NotEmpty(t, got)
	assert.Equal(t, "gem cafe lisbon", got[len(got)-1])
}

func TestExtractCandidatesCapAndDedup(t *testing.T) {
	var tags []string
	for i := 0; i < 30; i++ {
		tags = append(tags, fmt.Sprintf("#Place%02d", i))
	}
	// duplicate with different casing must not count twice
	content := types.RawContent{
		Title:   `at Blue Lagoon, "blue lagoon" again`,
		Caption: strings.Join(tags, " "),
	}

	got := ExtractCandidates(content)
	assert.LessOrEqual(t, len(got), MaxCandidates)

	seen := make(map[string]bool)
	for _, c := range got {
		key := strings.ToLower(c)
		assert.False(t, seen[key], "duplicate candidate %q", c)
		seen[key] = true
		assert.NotEmpty(t, strings.TrimSpace(c))
		assert.Greater(t, len([]rune(c)), 2)
	}
}

func TestExtractCandidatesEmptyInput(t *testing.T) {
	assert.Empty(t, ExtractCandidates(types.RawContent{}))
}
