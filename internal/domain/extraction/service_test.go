package extraction

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/roamlog/roamlog-api/internal/types"
)

type MockPlacesClient struct {
	mock.Mock
}

func (m *MockPlacesClient) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockPlacesClient) Search(ctx context.Context, query string, bias *types.LocationHint) ([]types.GeocodeResult, error) {
	args := m.Called(ctx, query, bias)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.GeocodeResult), args.Error(1)
}

func (m *MockPlacesClient) GetDetails(ctx context.Context, placeID string) (*types.PlaceDetails, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PlaceDetails), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestService(gateway *MockPlacesClient, timeout time.Duration) *ServiceImpl {
	return NewServiceImpl(gateway, DefaultScoringWeights(), timeout, testLogger())
}

func TestExtractPlaceHappyPath(t *testing.T) {
	gateway := new(MockPlacesClient)
	gateway.On("IsConfigured").Return(true)
	gateway.On("Search", mock.Anything, "Uluwatu Temple", mock.Anything).
		Return([]types.GeocodeResult{{PlaceID: "p1", Name: "Uluwatu Temple"}}, nil)
	gateway.On("Search", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	lat, lng := -8.8291, 115.0849
	gateway.On("GetDetails", mock.Anything, "p1").Return(&types.PlaceDetails{
		PlaceID:     "p1",
		Name:        "Uluwatu Temple",
		Address:     "Pecatu, Bali, Indonesia",
		Latitude:    &lat,
		Longitude:   &lng,
		City:        "Pecatu",
		Country:     "Indonesia",
		CountryCode: "ID",
		PrimaryType: "tourist_attraction",
		Types:       []string{"tourist_attraction", "place_of_worship"},
	}, nil)

	svc := newTestService(gateway, 5*time.Second)
	got := svc.ExtractPlace(context.Background(), types.RawContent{
		Title: "Amazing sunset at Uluwatu Temple #bali",
	})

	require.NotNil(t, got)
	assert.Equal(t, "Uluwatu Temple", got.Name)
	assert.Equal(t, "ID", got.CountryCode)
	assert.GreaterOrEqual(t, got.Confidence, 0.75)
}

func TestExtractPlaceUnconfiguredMakesNoCalls(t *testing.T) {
	gateway := new(MockPlacesClient)
	gateway.On("IsConfigured").Return(false)

	svc := newTestService(gateway, 5*time.Second)
	got := svc.ExtractPlace(context.Background(), types.RawContent{
		Title: "Amazing sunset at Uluwatu Temple",
	})

	assert.Nil(t, got)
	gateway.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
	gateway.AssertNotCalled(t, "GetDetails", mock.Anything, mock.Anything)
}

func TestExtractPlaceNoCandidates(t *testing.T) {
	gateway := new(MockPlacesClient)
	gateway.On("IsConfigured").Return(true)

	svc := newTestService(gateway, 5*time.Second)
	assert.Nil(t, svc.ExtractPlace(context.Background(), types.RawContent{}))
	gateway.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestExtractPlaceNoMatch(t *testing.T) {
	gateway := new(MockPlacesClient)
	gateway.On("IsConfigured").Return(true)
	gateway.On("Search", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	svc := newTestService(gateway, 5*time.Second)
	got := svc.ExtractPlace(context.Background(), types.RawContent{
		Title: "Amazing sunset at Uluwatu Temple",
	})
	assert.Nil(t, got)
}

func TestExtractPlacePicksBestScoredNotFirst(t *testing.T) {
	gateway := new(MockPlacesClient)
	gateway.On("IsConfigured").Return(true)

	gateway.On("Search", mock.Anything, "Dream Tours", mock.Anything).
		Return([]types.GeocodeResult{{PlaceID: "agency", Name: "Dream Tours"}}, nil)
	gateway.On("Search", mock.Anything, "Ancient Museum", mock.Anything).
		Return([]types.GeocodeResult{{PlaceID: "museum", Name: "Ancient Museum"}}, nil)
	gateway.On("Search", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	gateway.On("GetDetails", mock.Anything, "agency").Return(&types.PlaceDetails{
		PlaceID: "agency", Name: "Dream Tours", PrimaryType: "travel_agency",
	}, nil)
	gateway.On("GetDetails", mock.Anything, "museum").Return(&types.PlaceDetails{
		PlaceID: "museum", Name: "Ancient Museum", PrimaryType: "museum",
	}, nil)

	svc := newTestService(gateway, 5*time.Second)
	got := svc.ExtractPlace(context.Background(), types.RawContent{
		Title: `day two: "Dream Tours" then "Ancient Museum"`,
	})

	// Both resolve with exact-match confidence; the type signals must flip
	// the ranking away from the earlier agency candidate.
	require.NotNil(t, got)
	assert.Equal(t, "Ancient Museum", got.Name)
}

func TestExtractPlaceSequentialFallback(t *testing.T) {
	gateway := new(MockPlacesClient)
	gateway.On("IsConfigured").Return(true)

	// Candidates beyond the parallel window resolve; the first five do not.
	gateway.On("Search", mock.Anything, "Lucky Spot", mock.Anything).
		Return([]types.GeocodeResult{{PlaceID: "p9", Name: "Lucky Spot"}}, nil)
	gateway.On("Search", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	gateway.On("GetDetails", mock.Anything, "p9").Return(&types.PlaceDetails{
		PlaceID: "p9", Name: "Lucky Spot",
	}, nil)

	svc := newTestService(gateway, 5*time.Second)
	got := svc.ExtractPlace(context.Background(), types.RawContent{
		Title:   `"Aaa Bbb" "Ccc Ddd" "Eee Fff" "Ggg Hhh" "Iii Jjj" "Lucky Spot"`,
		Caption: "",
	})

	require.NotNil(t, got)
	assert.Equal(t, "Lucky Spot", got.Name)
}

func TestExtractPlaceTimeoutReturnsNil(t *testing.T) {
	gateway := new(MockPlacesClient)
	gateway.On("IsConfigured").Return(true)
	gateway.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			<-ctx.Done()
		}).
		Return(nil, context.DeadlineExceeded)

	svc := newTestService(gateway, 150*time.Millisecond)

	start := time.Now()
	got := svc.ExtractPlace(context.Background(), types.RawContent{
		Title: "Amazing sunset at Uluwatu Temple",
	})
	elapsed := time.Since(start)

	assert.Nil(t, got)
	assert.Less(t, elapsed, 2*time.Second)
}

func TestExtractPlaceGatewayErrorsDegradeToNil(t *testing.T) {
	gateway := new(MockPlacesClient)
	gateway.On("IsConfigured").Return(true)
	gateway.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	svc := newTestService(gateway, 5*time.Second)
	got := svc.ExtractPlace(context.Background(), types.RawContent{
		Title: "Amazing sunset at Uluwatu Temple",
	})
	assert.Nil(t, got)
}
