package extraction

import (
	"github.com/roamlog/roamlog-api/internal/gazetteer"
	"github.com/roamlog/roamlog-api/internal/types"
)

// ExtractLocationHints scans text for whole-word gazetteer matches and
// returns coordinate-bearing hints. City hints suppress a country hint with
// the same country code (cities are the more specific signal), and hints are
// then filtered down to the dominant country. Element 0 is the bias
// candidate.
func ExtractLocationHints(text string) []types.LocationHint {
	found := gazetteer.Scan(text)
	if len(found) == 0 {
		return nil
	}

	cityCountries := make(map[string]bool)
	for _, p := range found {
		if p.Kind == gazetteer.KindCity {
			cityCountries[p.CountryCode] = true
		}
	}

	hints := make([]types.LocationHint, 0, len(found))
	for _, p := range found {
		if p.Kind == gazetteer.KindCountry && cityCountries[p.CountryCode] {
			continue
		}
		lat, lng := p.Latitude, p.Longitude
		hints = append(hints, types.LocationHint{
			Name:        p.Name,
			Latitude:    &lat,
			Longitude:   &lng,
			CountryCode: p.CountryCode,
			IsCity:      p.Kind == gazetteer.KindCity,
		})
	}

	return filterConflictingHints(hints)
}

// filterConflictingHints keeps only hints from the country with the most
// mentions when hints span several countries, so one stray "#tokyo" in an
// Albania post cannot hijack the geocoding bias. Ties keep every tied
// country; with fewer than two hints there is nothing to resolve.
func filterConflictingHints(hints []types.LocationHint) []types.LocationHint {
	if len(hints) < 2 {
		return hints
	}

	counts := make(map[string]int)
	for _, h := range hints {
		counts[h.CountryCode]++
	}
	if len(counts) < 2 {
		return hints
	}

	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}

	kept := hints[:0]
	for _, h := range hints {
		if counts[h.CountryCode] == max {
			kept = append(kept, h)
		}
	}
	return kept
}
