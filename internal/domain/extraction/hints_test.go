package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamlog/roamlog-api/internal/types"
)

func TestExtractLocationHintsCitySuppressesCountry(t *testing.T) {
	hints := ExtractLocationHints("street food tour in tokyo japan")

	japanese := 0
	for _, h := range hints {
		if h.CountryCode == "JP" {
			japanese++
		}
	}
	assert.Equal(t, 1, japanese, "city hint must suppress the duplicate country hint")
	require.NotEmpty(t, hints)
	assert.Equal(t, "tokyo", hints[0].Name)
	assert.True(t, hints[0].IsCity)
	require.NotNil(t, hints[0].Latitude)
	require.NotNil(t, hints[0].Longitude)
}

func TestExtractLocationHintsWholeWordOnly(t *testing.T) {
	// "parisian" must not match "paris"
	hints := ExtractLocationHints("a very parisian vibe")
	assert.Empty(t, hints)
}

func TestExtractLocationHintsAlias(t *testing.T) {
	hints := ExtractLocationHints("rainy weekend in the uk")
	require.NotEmpty(t, hints)
	assert.Equal(t, "GB", hints[0].CountryCode)
}

func TestExtractLocationHintsEmpty(t *testing.T) {
	assert.Empty(t, ExtractLocationHints(""))
	assert.Empty(t, ExtractLocationHints("nothing geographic here"))
}

func TestFilterConflictingHintsDominantCountryWins(t *testing.T) {
	hints := ExtractLocationHints("#tokyo vibes but this is a ksamil sarande vlore trip")

	require.NotEmpty(t, hints)
	for _, h := range hints {
		assert.Equal(t, "AL", h.CountryCode, "stray tokyo hint must be dropped")
	}
	assert.Len(t, hints, 3)
}

func TestFilterConflictingHintsTieKeepsBoth(t *testing.T) {
	hints := ExtractLocationHints("torn between tokyo and tirana")
	require.Len(t, hints, 2)

	codes := map[string]bool{}
	for _, h := range hints {
		codes[h.CountryCode] = true
	}
	assert.True(t, codes["JP"])
	assert.True(t, codes["AL"])
}

func TestFilterConflictingHintsSingleHintUntouched(t *testing.T) {
	in := []types.LocationHint{{Name: "paris", CountryCode: "FR"}}
	assert.Equal(t, in, filterConflictingHints(in))
}
