package extraction

import (
	"regexp"
	"strings"

	"github.com/roamlog/roamlog-api/internal/types"
)

const (
	// MaxCandidates caps how many guesses ever leave the extractor.
	MaxCandidates = 10
	// minCandidateLen drops fragments too short to geocode meaningfully.
	minCandidateLen = 3
)

var (
	quotedRe = regexp.MustCompile(`["“«]([^"”»]{3,50})["”»]`)

	// "at Uluwatu Temple", "in Paris", "visiting Blue Lagoon Ice Cave" — a
	// preposition followed by a capitalized phrase is the strongest
	// place-name signal captions carry.
	atInRe = regexp.MustCompile(`\b(?:[Aa]t|[Ii]n|[Vv]isit(?:ing)?)\s+(\p{Lu}[\p{L}\p{N}'&.-]*(?:\s+(?:\p{Lu}[\p{L}\p{N}'&.-]*|de|del|da|la|of|the)){0,4})`)

	// Runs of two or more capitalized words (proper-noun heuristic).
	capRunRe = regexp.MustCompile(`\b\p{Lu}[\p{L}'&.-]+(?:\s+\p{Lu}[\p{L}'&.-]+)+\b`)

	capitalHashtagRe = regexp.MustCompile(`#(\p{Lu}[\p{L}\p{N}_]{2,})`)
	mentionRe        = regexp.MustCompile(`@([\p{L}\p{N}_.]+)`)
)

// businessKeywords flag @mentions that look like venue accounts rather than
// people ("@sunset_beach_bar_bali").
var businessKeywords = []string{
	"restaurant", "cafe", "hotel", "bar", "beach", "resort", "club",
}

// ExtractCandidates proposes an ordered, deduplicated list of place-name
// guesses from post metadata. Higher-precision heuristics contribute earlier
// positions; the fully-cleaned title is the last-resort guess. Output is
// capped at MaxCandidates.
func ExtractCandidates(content types.RawContent) []string {
	title := CleanPlatformNoiseGuarded(Truncate(content.Title, MaxTextLen))
	caption := Truncate(content.Caption, MaxTextLen)
	author := Truncate(content.AuthorName, MaxAuthorLen)

	var out []string
	seen := make(map[string]bool)

	add := func(c string) {
		c = strings.TrimSpace(c)
		if len([]rune(c)) < minCandidateLen {
			return
		}
		key := strings.ToLower(c)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, c)
	}

	for _, m := range quotedRe.FindAllStringSubmatch(title, -1) {
		add(m[1])
	}
	for _, m := range atInRe.FindAllStringSubmatch(title, -1) {
		add(m[1])
	}
	for _, m := range capRunRe.FindAllString(title, -1) {
		add(m)
	}

	for _, m := range capitalHashtagRe.FindAllStringSubmatch(caption, -1) {
		add(m[1])
	}
	for _, m := range mentionRe.FindAllStringSubmatch(caption, -1) {
		handle := strings.ToLower(m[1])
		for _, kw := range businessKeywords {
			if strings.Contains(handle, kw) {
				add(strings.ReplaceAll(m[1], "_", " "))
				break
			}
		}
	}

	// Venue accounts often post under the venue's own name.
	if lower := strings.ToLower(author); author != "" {
		for _, kw := range businessKeywords {
			if strings.Contains(lower, kw) {
				add(strings.ReplaceAll(author, "_", " "))
				break
			}
		}
	}

	// The cleaned title itself, as a low-priority fallback.
	if cleaned := CleanForSearchGuarded(title); len([]rune(cleaned)) > 3 {
		add(cleaned)
	}

	if len(out) > MaxCandidates {
		out = out[:MaxCandidates]
	}
	return out
}
