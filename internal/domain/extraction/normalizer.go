package extraction

import (
	"regexp"
	"strings"
	"time"
)

const (
	// MaxTextLen caps title/caption text before any pattern work touches it.
	MaxTextLen = 5000
	// MaxAuthorLen caps author names, which are far shorter in practice.
	MaxAuthorLen = 500

	// cleanTimeout bounds wall-clock time for a full cleaning pass.
	cleanTimeout = 2 * time.Second
	// fallbackLen is how much raw text survives when cleaning times out.
	fallbackLen = 200
)

// platformNoisePatterns strip boilerplate the source platforms wrap around
// titles. The list is data: supporting a new platform means adding patterns
// here, not touching the cleaning logic.
var platformNoisePatterns = []*regexp.Regexp{
	// "@handle on TikTok: ..." / "@handle on Instagram: ..."
	regexp.MustCompile(`^@[\w.]+ on (?:TikTok|Instagram)\s*:?\s*`),
	// "12.3K Likes, 456 Comments - ..."
	regexp.MustCompile(`^[\d.,]+[KMB]? Likes?, [\d.,]+[KMB]? Comments? - `),
	// trailing "... | TikTok" / "on Instagram" attributions
	regexp.MustCompile(`\s*[|\-–]?\s*on (?:TikTok|Instagram)\s*$`),
	regexp.MustCompile(`\s*\|\s*(?:TikTok|Instagram)\s*$`),
	// "... see more" tails on collapsed captions
	regexp.MustCompile(`(?i)\s*\.{3}\s*see more\s*$`),
}

var (
	hashtagMentionRe = regexp.MustCompile(`[#@][\w.]+`)
	urlRe            = regexp.MustCompile(`https?://\S+`)
	emojiRe          = regexp.MustCompile(`[\x{1F000}-\x{1FAFF}\x{2600}-\x{27BF}\x{2190}-\x{21FF}\x{FE00}-\x{FE0F}\x{2B00}-\x{2BFF}]`)
	nonWordRe        = regexp.MustCompile(`[^\p{L}\p{N}\s',.&-]`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
)

// leadingNoiseWords are stripped from the front of cleaned text only. Leading
// filler ("the best viral cafe...") hides the place name; trailing words tend
// to be the place name.
var leadingNoiseWords = map[string]bool{
	"the": true, "a": true, "an": true, "this": true, "that": true,
	"best": true, "top": true, "most": true, "viral": true, "hidden": true,
	"amazing": true, "beautiful": true, "stunning": true, "incredible": true,
	"must": true, "see": true, "more": true, "new": true, "my": true,
	"our": true, "your": true, "watch": true, "follow": true, "like": true,
	"video": true, "reel": true, "reels": true, "tiktok": true,
	"instagram": true, "fyp": true, "pov": true,
}

// Truncate hard-caps text length (in runes) before any regex work, bounding
// the cost of every downstream pattern pass.
func Truncate(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen])
}

// CleanPlatformNoise removes known platform boilerplate around a title.
func CleanPlatformNoise(text string) string {
	text = Truncate(text, MaxTextLen)
	for _, re := range platformNoisePatterns {
		text = re.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}

// CleanForSearch reduces arbitrary post text to something a geocoder can
// digest: no tags, no URLs, no emoji, collapsed whitespace, and leading
// filler words dropped.
func CleanForSearch(text string) string {
	text = Truncate(text, MaxTextLen)
	text = urlRe.ReplaceAllString(text, " ")
	text = hashtagMentionRe.ReplaceAllString(text, " ")
	text = emojiRe.ReplaceAllString(text, " ")
	text = nonWordRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	words := strings.Fields(text)
	start := 0
	for start < len(words) && leadingNoiseWords[strings.ToLower(words[start])] {
		start++
	}
	// If everything was noise, keep the original rather than returning "".
	if start == len(words) {
		return text
	}
	return strings.Join(words[start:], " ")
}

// CleanForSearchGuarded runs CleanForSearch under a hard wall-clock cutoff.
// Pattern passes cannot be cooperatively cancelled, so the work runs on its
// own goroutine and loses the race on timeout; the degraded result is a raw
// truncation of the input. Availability over precision.
func CleanForSearchGuarded(text string) string {
	return runGuarded(func() string { return CleanForSearch(text) }, cleanTimeout, func() string {
		return strings.TrimSpace(Truncate(text, fallbackLen))
	})
}

// CleanPlatformNoiseGuarded is the guarded variant of CleanPlatformNoise.
func CleanPlatformNoiseGuarded(text string) string {
	return runGuarded(func() string { return CleanPlatformNoise(text) }, cleanTimeout, func() string {
		return strings.TrimSpace(Truncate(text, fallbackLen))
	})
}

// runGuarded races fn against a timer; on timeout the fallback wins and the
// straggler goroutine is left to finish into a buffered channel.
func runGuarded(fn func() string, timeout time.Duration, fallback func() string) string {
	done := make(chan string, 1)
	go func() {
		done <- fn()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case out := <-done:
		return out
	case <-timer.C:
		return fallback()
	}
}
