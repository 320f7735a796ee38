package extraction

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
	assert.Equal(t, "", Truncate("abc", 0))
	// rune-safe, never splits a multi-byte character
	assert.Equal(t, "héllo"[:len("hé")], Truncate("héllo", 2))
}

func TestCleanPlatformNoise(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "tiktok handle prefix",
			input: "@wanderlust.amy on TikTok: hidden beach in Portugal",
			want:  "hidden beach in Portugal",
		},
		{
			name:  "instagram likes prefix",
			input: "12.3K Likes, 456 Comments - best rooftop bar",
			want:  "best rooftop bar",
		},
		{
			name:  "trailing attribution",
			input: "Sunset at Oia | TikTok",
			want:  "Sunset at Oia",
		},
		{
			name:  "see more tail",
			input: "the full itinerary for 3 days... see more",
			want:  "the full itinerary for 3 days",
		},
		{
			name:  "clean text untouched",
			input: "Uluwatu Temple at golden hour",
			want:  "Uluwatu Temple at golden hour",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanPlatformNoise(tt.input))
		})
	}
}

func TestCleanForSearch(t *testing.T) {
	got := CleanForSearch("The BEST viral cafe ☕ in Lisbon!! https://t.co/x #lisbon @someone")
	assert.Equal(t, "cafe in Lisbon", got)
}

func TestCleanForSearchKeepsTrailingContent(t *testing.T) {
	// Leading filler goes, trailing place name stays.
	got := CleanForSearch("best most viral Uluwatu Temple")
	assert.Equal(t, "Uluwatu Temple", got)
}

func TestCleanForSearchAllNoise(t *testing.T) {
	// When every word is filler, stripping from the front would leave
	// nothing; the cleaned text is returned as-is instead.
	got := CleanForSearch("the best viral")
	assert.Equal(t, "the best viral", got)
}

func TestTruncationSafetyOnHugeInput(t *testing.T) {
	huge := strings.Repeat("#tag @user lots of noisy text 🌍 ", 4000) // ~130k chars

	start := time.Now()
	out := CleanForSearchGuarded(huge)
	elapsed := time.Since(start)

	require.Less(t, elapsed, 3*time.Second)
	assert.LessOrEqual(t, len([]rune(out)), MaxTextLen)
}

func TestRunGuardedTimeoutFallsBack(t *testing.T) {
	slow := func() string {
		time.Sleep(500 * time.Millisecond)
		return "slow result"
	}
	got := runGuarded(slow, 20*time.Millisecond, func() string { return "fallback" })
	assert.Equal(t, "fallback", got)
}

func TestRunGuardedFastPath(t *testing.T) {
	got := runGuarded(func() string { return "fast" }, time.Second, func() string { return "fallback" })
	assert.Equal(t, "fast", got)
}
