// Package gazetteer holds the static city/country lookup tables used to pull
// geographic anchors out of social-post text. The tables are merged into a
// single immutable index and a single Aho-Corasick automaton on first use and
// never mutated afterwards, so concurrent reads need no locking.
package gazetteer

import (
	"strings"
	"sync"

	a "github.com/petar-dambovaliev/aho-corasick"
)

type Kind int

const (
	KindCity Kind = iota
	KindCountry
)

// Place is one gazetteer entry. City entries carry the city's coordinates;
// country entries carry the country centroid.
type Place struct {
	Name        string
	Kind        Kind
	Latitude    float64
	Longitude   float64
	CountryCode string
}

var (
	buildOnce sync.Once

	// entries is parallel to the automaton's pattern list: pattern index i
	// resolves to entries[i].
	entries []Place
	matcher a.AhoCorasick
)

func build() {
	patterns := make([]string, 0, 512)
	taken := make(map[string]bool, 512)

	// First writer wins on key collisions; cities load before countries so a
	// name used for both (e.g. "singapore") resolves as the city.
	add := func(key string, p Place) {
		if taken[key] {
			return
		}
		taken[key] = true
		patterns = append(patterns, key)
		entries = append(entries, p)
	}

	for _, region := range cityRegions {
		for key, c := range region {
			add(key, Place{
				Name:        key,
				Kind:        KindCity,
				Latitude:    c.lat,
				Longitude:   c.lng,
				CountryCode: c.country,
			})
		}
	}
	for key, c := range countryTable {
		add(key, Place{
			Name:        key,
			Kind:        KindCountry,
			Latitude:    c.lat,
			Longitude:   c.lng,
			CountryCode: c.code,
		})
	}
	for alias, name := range countryAliases {
		c, ok := countryTable[name]
		if !ok {
			continue
		}
		add(alias, Place{
			Name:        alias,
			Kind:        KindCountry,
			Latitude:    c.lat,
			Longitude:   c.lng,
			CountryCode: c.code,
		})
	}

	builder := a.NewAhoCorasickBuilder(a.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  true,
		MatchKind:            a.LeftMostLongestMatch,
	})
	matcher = builder.Build(patterns)
}

// Scan returns gazetteer entries found in text as whole words, in order of
// first appearance, with each entry reported at most once.
func Scan(text string) []Place {
	buildOnce.Do(build)

	if strings.TrimSpace(text) == "" {
		return nil
	}

	matches := matcher.FindAll(strings.ToLower(text))
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[int]bool, len(matches))
	found := make([]Place, 0, len(matches))
	for _, m := range matches {
		idx := m.Pattern()
		if idx < 0 || idx >= len(entries) || seen[idx] {
			continue
		}
		seen[idx] = true
		found = append(found, entries[idx])
	}
	return found
}

// Lookup resolves a single gazetteer key (case-insensitive exact match).
func Lookup(name string) (Place, bool) {
	buildOnce.Do(build)

	key := strings.ToLower(strings.TrimSpace(name))
	for i := range entries {
		if entries[i].Name == key {
			return entries[i], true
		}
	}
	return Place{}, false
}

// Size reports how many entries the merged index holds.
func Size() int {
	buildOnce.Do(build)
	return len(entries)
}
