package entry

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamlog/roamlog-api/internal/types"
)

func newTestRepo(t *testing.T) (*RepositoryImpl, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	return NewRepositoryImpl(mockPool, logger), mockPool
}

func TestCreateEntry_InsertsRow(t *testing.T) {
	repo, mockPool := newTestRepo(t)

	userID := uuid.New()
	entryID := uuid.New()
	now := time.Now()
	req := types.CreateEntryRequest{
		SourceURL:  "https://www.instagram.com/reel/xyz/",
		Title:      "weekend in Porto",
		Caption:    "francesinha at \"Cafe Santiago\"",
		AuthorName: "porto.eats",
	}

	mockPool.ExpectQuery("INSERT INTO entries").
		WithArgs(userID, req.SourceURL, req.Title, req.Caption, req.AuthorName).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(entryID, now, now))

	entry, err := repo.CreateEntry(context.Background(), userID, req)

	require.NoError(t, err)
	assert.Equal(t, entryID, entry.ID)
	assert.Equal(t, userID, entry.UserID)
	assert.Equal(t, req.SourceURL, entry.SourceURL)
	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestGetEntry_NotFound(t *testing.T) {
	repo, mockPool := newTestRepo(t)

	userID, entryID := uuid.New(), uuid.New()
	mockPool.ExpectQuery("SELECT (.+) FROM entries").
		WithArgs(entryID, userID).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetEntry(context.Background(), userID, entryID)

	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestListEntries_FiltersByHasPlace(t *testing.T) {
	repo, mockPool := newTestRepo(t)

	userID := uuid.New()
	hasPlace := true
	placeID := uuid.New()
	now := time.Now()

	mockPool.ExpectQuery(`SELECT .+ FROM entries e WHERE .+ e\.place_id IS NOT NULL`).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "user_id", "source_url", "title", "caption",
			"author_name", "place_id", "created_at", "updated_at",
		}).AddRow(
			uuid.New(), userID, "https://example.com/v/1", "title", "caption",
			"author", &placeID, now, now,
		))

	entries, err := repo.ListEntries(context.Background(), userID, types.EntryFilter{HasPlace: &hasPlace, Limit: 10})

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, placeID, *entries[0].PlaceID)
	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestSoftDeleteEntry(t *testing.T) {
	repo, mockPool := newTestRepo(t)
	userID, entryID := uuid.New(), uuid.New()

	t.Run("deletes once", func(t *testing.T) {
		mockPool.ExpectExec("UPDATE entries SET deleted_at").
			WithArgs(entryID, userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.SoftDeleteEntry(context.Background(), userID, entryID))
	})

	t.Run("second delete is not found", func(t *testing.T) {
		mockPool.ExpectExec("UPDATE entries SET deleted_at").
			WithArgs(entryID, userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.SoftDeleteEntry(context.Background(), userID, entryID)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestSavePlace_UpsertsByGooglePlaceID(t *testing.T) {
	repo, mockPool := newTestRepo(t)

	placeID := uuid.New()
	lat, lng := -8.8289, 115.0868
	place := &types.DetectedPlace{
		GooglePlaceID: "ChIJsinglefin",
		Name:          "Single Fin Bali",
		Address:       "Pantai Suluban, Uluwatu",
		Latitude:      &lat,
		Longitude:     &lng,
		City:          "Uluwatu",
		Country:       "Indonesia",
		CountryCode:   "ID",
		Confidence:    0.95,
		PrimaryType:   "bar",
		Types:         []string{"bar", "restaurant"},
	}

	mockPool.ExpectQuery("INSERT INTO places").
		WithArgs(
			place.GooglePlaceID, place.Name, place.Address,
			place.Latitude, place.Longitude,
			place.City, place.Country, place.CountryCode,
			place.Confidence, place.PrimaryType, place.Types,
		).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(placeID))

	id, err := repo.SavePlace(context.Background(), place)

	require.NoError(t, err)
	assert.Equal(t, placeID, id)
	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestAttachPlace_MissingEntry(t *testing.T) {
	repo, mockPool := newTestRepo(t)
	entryID, placeID := uuid.New(), uuid.New()

	mockPool.ExpectExec("UPDATE entries SET place_id").
		WithArgs(placeID, entryID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.AttachPlace(context.Background(), entryID, placeID)

	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestListEntriesWithoutPlace(t *testing.T) {
	repo, mockPool := newTestRepo(t)
	now := time.Now()

	mockPool.ExpectQuery("SELECT (.+) FROM entries").
		WithArgs(25).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "user_id", "source_url", "title", "caption",
			"author_name", "place_id", "created_at", "updated_at",
		}).AddRow(
			uuid.New(), uuid.New(), "https://example.com/v/9", "no place yet", "",
			"", nil, now, now,
		))

	entries, err := repo.ListEntriesWithoutPlace(context.Background(), 25)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].PlaceID)
}
