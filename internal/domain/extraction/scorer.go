package extraction

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/roamlog/roamlog-api/internal/types"
)

// ScoringWeights are empirically tuned; the defaults are preserved verbatim
// and exposed as configuration rather than hard-coded, pending product
// review. Do not retune silently.
type ScoringWeights struct {
	ExactScore             float64
	ContainsScore          float64
	OverlapScale           float64
	OverlapBase            float64
	FirstResultBonus       float64
	CountryMatchBonus      float64
	CountryMismatchPenalty float64
	LowValueTypePenalty    float64
	HighValueTypeBonus     float64
	PositionDecay          float64
}

func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		ExactScore:             0.95,
		ContainsScore:          0.75,
		OverlapScale:           0.6,
		OverlapBase:            0.2,
		FirstResultBonus:       0.1,
		CountryMatchBonus:      0.2,
		CountryMismatchPenalty: 0.3,
		LowValueTypePenalty:    0.25,
		HighValueTypeBonus:     0.1,
		PositionDecay:          0.02,
	}
}

// overlapStopwords are generic geography words that inflate token overlap
// without carrying identity.
var overlapStopwords = map[string]bool{
	"lake": true, "mount": true, "beach": true, "island": true,
	"the": true, "of": true,
}

// lowValueTypes are frequent false positives: businesses whose names happen
// to match destinations (a "Santorini Travel Agency" is not Santorini).
var lowValueTypes = map[string]bool{
	"travel_agency": true, "tour_operator": true, "insurance_agency": true,
	"real_estate_agency": true, "car_rental": true,
}

// highValueTypes are the kinds of places people actually tag in posts.
var highValueTypes = map[string]bool{
	"restaurant": true, "cafe": true, "bar": true, "hotel": true,
	"lodging": true, "tourist_attraction": true, "museum": true,
	"park": true, "landmark": true, "natural_feature": true,
	"point_of_interest": true, "beach": true, "lake": true, "mountain": true,
}

var diacriticStripper = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldDiacritics reduces text to a lowercase, accent-free form so
// transliterated names compare equal ("São Paulo" == "Sao Paulo").
func foldDiacritics(s string) string {
	out, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// Confidence scores text similarity between the search query and the
// resolved place name on [0,1]. A flat bonus (capped at 1.0) rewards the
// geocoder's own first-ranked result.
func (w ScoringWeights) Confidence(query, placeName string, isFirstResult bool) float64 {
	q := foldDiacritics(query)
	p := foldDiacritics(placeName)

	var score float64
	switch {
	case q != "" && q == p:
		score = w.ExactScore
	case q != "" && p != "" && (strings.Contains(q, p) || strings.Contains(p, q)):
		score = w.ContainsScore
	default:
		score = w.OverlapScale*tokenOverlap(q, p) + w.OverlapBase
	}

	if isFirstResult {
		score += w.FirstResultBonus
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// tokenOverlap is |intersection| / |union| over stopword-stripped tokens.
func tokenOverlap(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	union := make(map[string]bool, len(setA)+len(setB))
	overlap := 0
	for t := range setA {
		union[t] = true
		if setB[t] {
			overlap++
		}
	}
	for t := range setB {
		union[t] = true
	}
	return float64(overlap) / float64(len(union))
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range strings.Fields(s) {
		t = strings.Trim(t, ",.'-&")
		if t == "" || overlapStopwords[t] {
			continue
		}
		set[t] = true
	}
	return set
}

// RankScore orders resolved candidates against each other. Unlike
// Confidence it is unbounded and may go negative: country mismatch against
// the location bias is punished harder than no signal at all, business types
// known to be false positives are penalized, and a small per-position decay
// nudges earlier candidates ahead on near-ties. Never persisted or shown to
// users.
func (w ScoringWeights) RankScore(place *types.DetectedPlace, bias *types.LocationHint, candidateIndex int) float64 {
	score := place.Confidence

	if bias != nil && bias.CountryCode != "" && place.CountryCode != "" {
		if strings.EqualFold(place.CountryCode, bias.CountryCode) {
			score += w.CountryMatchBonus
		} else {
			score -= w.CountryMismatchPenalty
		}
	}

	if lowValueTypes[place.PrimaryType] {
		score -= w.LowValueTypePenalty
	} else if highValueTypes[place.PrimaryType] {
		score += w.HighValueTypeBonus
	}

	score -= w.PositionDecay * float64(candidateIndex)
	return score
}
