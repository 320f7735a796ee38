package types

// RawContent is the normalized social-post metadata handed to the extraction
// pipeline. It is ephemeral: the pipeline never stores it and only ever reads
// truncated excerpts out of it.
type RawContent struct {
	Title      string `json:"title,omitempty"`
	Caption    string `json:"caption,omitempty"`
	AuthorName string `json:"author_name,omitempty"`
}

// LocationHint is a gazetteer match (city or country) pulled out of post text.
// Invariant: when Latitude/Longitude are set, CountryCode is set too — hints
// only ever originate from gazetteer entries carrying all three.
type LocationHint struct {
	Name        string   `json:"name"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	CountryCode string   `json:"country_code,omitempty"`
	IsCity      bool     `json:"is_city"`
}

// GeocodeResult is a single hit from the gateway's free-text search.
type GeocodeResult struct {
	PlaceID string `json:"place_id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// PlaceDetails is the full record behind a place id.
type PlaceDetails struct {
	PlaceID     string   `json:"place_id"`
	Name        string   `json:"name"`
	Address     string   `json:"address,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	City        string   `json:"city,omitempty"`
	Country     string   `json:"country,omitempty"`
	CountryCode string   `json:"country_code,omitempty"`
	PrimaryType string   `json:"primary_type,omitempty"`
	Types       []string `json:"types,omitempty"`
}

// DetectedPlace is the pipeline's sole output. It is constructed once per
// resolved candidate, ranked against its siblings and either returned to the
// caller or discarded. Never mutated after construction.
type DetectedPlace struct {
	GooglePlaceID string   `json:"google_place_id,omitempty"`
	Name          string   `json:"name"`
	Address       string   `json:"address,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	City          string   `json:"city,omitempty"`
	Country       string   `json:"country,omitempty"`
	CountryCode   string   `json:"country_code,omitempty"`
	Confidence    float64  `json:"confidence"`
	PrimaryType   string   `json:"primary_type,omitempty"`
	Types         []string `json:"types,omitempty"`
}
