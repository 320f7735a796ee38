// Package places is the outbound geocoding gateway: free-text place search
// plus detail lookup, backed by the Google Places API. Everything here fails
// soft — an unconfigured or misbehaving gateway degrades to "no results",
// never to an error the extraction pipeline has to care about.
package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"

	"github.com/roamlog/roamlog-api/internal/types"
	"github.com/roamlog/roamlog-api/pkg/observability"
)

const (
	defaultBaseURL = "https://places.googleapis.com"

	// Bias radii: a city hint is a fairly precise anchor, a country
	// centroid much less so.
	cityBiasRadiusMeters    = 25000.0
	countryBiasRadiusMeters = 50000.0

	searchPageSize = 5
	callTimeout    = 4 * time.Second
)

// Client is the gateway contract the extraction orchestrator consumes.
// Search results prefer places near the supplied bias (the content's
// location, not the caller's).
type Client interface {
	IsConfigured() bool
	Search(ctx context.Context, query string, bias *types.LocationHint) ([]types.GeocodeResult, error)
	GetDetails(ctx context.Context, placeID string) (*types.PlaceDetails, error)
}

var _ Client = (*GoogleClient)(nil)

type GoogleClient struct {
	logger     *slog.Logger
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewGoogleClient builds the gateway. An empty API key is a valid state: the
// client stays unconfigured and every call short-circuits to empty.
func NewGoogleClient(apiKey string, logger *slog.Logger) *GoogleClient {
	return &GoogleClient{
		logger:     logger,
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: callTimeout},
		limiter:    rate.NewLimiter(rate.Limit(10), 20),
	}
}

// WithBaseURL points the client at a different endpoint (tests).
func (c *GoogleClient) WithBaseURL(u string) *GoogleClient {
	c.baseURL = u
	return c
}

func (c *GoogleClient) IsConfigured() bool {
	return c.apiKey != ""
}

type searchTextRequest struct {
	TextQuery    string        `json:"textQuery"`
	PageSize     int           `json:"pageSize,omitempty"`
	LocationBias *locationBias `json:"locationBias,omitempty"`
}

type locationBias struct {
	Circle circle `json:"circle"`
}

type circle struct {
	Center latLng  `json:"center"`
	Radius float64 `json:"radius"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type placePayload struct {
	ID                string             `json:"id"`
	DisplayName       *text              `json:"displayName"`
	FormattedAddress  string             `json:"formattedAddress"`
	Location          *latLng            `json:"location"`
	AddressComponents []addressComponent `json:"addressComponents"`
	Types             []string           `json:"types"`
	PrimaryType       string             `json:"primaryType"`
}

type text struct {
	Text string `json:"text"`
}

type addressComponent struct {
	LongText  string   `json:"longText"`
	ShortText string   `json:"shortText"`
	Types     []string `json:"types"`
}

type searchTextResponse struct {
	Places []placePayload `json:"places"`
}

// Search runs autocomplete-style free-text search, biased toward the hint's
// coordinates when present. Failures log and return empty.
func (c *GoogleClient) Search(ctx context.Context, query string, bias *types.LocationHint) ([]types.GeocodeResult, error) {
	if !c.IsConfigured() || query == "" {
		return nil, nil
	}

	ctx, span := otel.Tracer("places").Start(ctx, "GoogleClient.Search")
	defer span.End()
	span.SetAttributes(attribute.Int("query.length", len(query)))

	reqBody := searchTextRequest{TextQuery: query, PageSize: searchPageSize}
	if bias != nil && bias.Latitude != nil && bias.Longitude != nil {
		radius := countryBiasRadiusMeters
		if bias.IsCity {
			radius = cityBiasRadiusMeters
		}
		reqBody.LocationBias = &locationBias{Circle: circle{
			Center: latLng{Latitude: *bias.Latitude, Longitude: *bias.Longitude},
			Radius: radius,
		}}
		span.SetAttributes(attribute.String("bias.country", bias.CountryCode))
	}

	start := time.Now()
	payload, err := c.post(ctx, "/v1/places:searchText", reqBody, "places.id,places.displayName,places.formattedAddress")
	observability.ObserveGatewayCall("search", err, time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		c.logger.Warn("places search failed", "query", excerpt(query), "error", err)
		return nil, nil
	}

	var resp searchTextResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		span.RecordError(err)
		c.logger.Warn("places search returned malformed body", "error", err)
		return nil, nil
	}

	results := make([]types.GeocodeResult, 0, len(resp.Places))
	for _, p := range resp.Places {
		if p.ID == "" || p.DisplayName == nil {
			continue
		}
		results = append(results, types.GeocodeResult{
			PlaceID: p.ID,
			Name:    p.DisplayName.Text,
			Address: p.FormattedAddress,
		})
	}
	span.SetAttributes(attribute.Int("results.count", len(results)))
	return results, nil
}

// GetDetails resolves a place id to full details. City/country come from the
// structured address components, never parsed out of the formatted address.
func (c *GoogleClient) GetDetails(ctx context.Context, placeID string) (*types.PlaceDetails, error) {
	if !c.IsConfigured() || placeID == "" {
		return nil, nil
	}

	ctx, span := otel.Tracer("places").Start(ctx, "GoogleClient.GetDetails")
	defer span.End()
	span.SetAttributes(attribute.String("place.id", placeID))

	start := time.Now()
	payload, err := c.get(ctx, "/v1/places/"+placeID, "id,displayName,formattedAddress,location,addressComponents,types,primaryType")
	observability.ObserveGatewayCall("details", err, time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "details failed")
		c.logger.Warn("place details failed", "place_id", placeID, "error", err)
		return nil, nil
	}

	var p placePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		span.RecordError(err)
		c.logger.Warn("place details returned malformed body", "place_id", placeID, "error", err)
		return nil, nil
	}
	if p.ID == "" || p.DisplayName == nil {
		return nil, nil
	}

	details := &types.PlaceDetails{
		PlaceID:     p.ID,
		Name:        p.DisplayName.Text,
		Address:     p.FormattedAddress,
		PrimaryType: p.PrimaryType,
		Types:       p.Types,
	}
	if p.Location != nil {
		details.Latitude = &p.Location.Latitude
		details.Longitude = &p.Location.Longitude
	}
	for _, comp := range p.AddressComponents {
		for _, t := range comp.Types {
			switch t {
			case "locality", "postal_town":
				if details.City == "" {
					details.City = comp.LongText
				}
			case "country":
				details.Country = comp.LongText
				details.CountryCode = comp.ShortText
			}
		}
	}
	return details, nil
}

func (c *GoogleClient) post(ctx context.Context, path string, body any, fieldMask string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	buf, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuthHeaders(req, fieldMask)
	return c.do(req)
}

func (c *GoogleClient) get(ctx context.Context, path, fieldMask string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	c.setAuthHeaders(req, fieldMask)
	return c.do(req)
}

func (c *GoogleClient) setAuthHeaders(req *http.Request, fieldMask string) {
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)
}

func (c *GoogleClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, excerpt(string(payload)))
	}
	return payload, nil
}

// excerpt keeps logs free of full user/vendor payloads.
func excerpt(s string) string {
	const max = 80
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
