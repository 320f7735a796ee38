package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/roamlog/roamlog-api/internal/types"
)

var _ Repository = (*RepositoryImpl)(nil)

// Repository persists entries and the places detected for them.
type Repository interface {
	CreateEntry(ctx context.Context, userID uuid.UUID, req types.CreateEntryRequest) (*types.Entry, error)
	GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*types.Entry, error)
	ListEntries(ctx context.Context, userID uuid.UUID, filter types.EntryFilter) ([]types.Entry, error)
	SoftDeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error

	// SavePlace upserts by google_place_id and returns the row id.
	SavePlace(ctx context.Context, place *types.DetectedPlace) (uuid.UUID, error)
	AttachPlace(ctx context.Context, entryID, placeID uuid.UUID) error
	ListEntriesWithoutPlace(ctx context.Context, limit int) ([]types.Entry, error)
}

// DBTX is the subset of pgxpool.Pool the repository needs; pgxmock satisfies
// it in tests.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type RepositoryImpl struct {
	logger *slog.Logger
	db     DBTX
}

func NewRepositoryImpl(db DBTX, logger *slog.Logger) *RepositoryImpl {
	return &RepositoryImpl{logger: logger, db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *RepositoryImpl) CreateEntry(ctx context.Context, userID uuid.UUID, req types.CreateEntryRequest) (*types.Entry, error) {
	ctx, span := otel.Tracer("EntryRepository").Start(ctx, "CreateEntry")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	query := `
        INSERT INTO entries (user_id, source_url, title, caption, author_name)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at
    `
	entry := &types.Entry{
		UserID:     userID,
		SourceURL:  req.SourceURL,
		Title:      req.Title,
		Caption:    req.Caption,
		AuthorName: req.AuthorName,
	}
	err := r.db.QueryRow(ctx, query,
		userID, req.SourceURL, req.Title, req.Caption, req.AuthorName,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return nil, fmt.Errorf("failed to insert entry: %w", err)
	}
	return entry, nil
}

func (r *RepositoryImpl) GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*types.Entry, error) {
	query := `
        SELECT id, user_id, source_url, title, caption, author_name, place_id, created_at, updated_at
        FROM entries
        WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
    `
	var entry types.Entry
	err := r.db.QueryRow(ctx, query, entryID, userID).Scan(
		&entry.ID, &entry.UserID, &entry.SourceURL, &entry.Title,
		&entry.Caption, &entry.AuthorName, &entry.PlaceID,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return &entry, nil
}

func (r *RepositoryImpl) ListEntries(ctx context.Context, userID uuid.UUID, filter types.EntryFilter) ([]types.Entry, error) {
	ctx, span := otel.Tracer("EntryRepository").Start(ctx, "ListEntries")
	defer span.End()

	builder := psql.
		Select("e.id", "e.user_id", "e.source_url", "e.title", "e.caption",
			"e.author_name", "e.place_id", "e.created_at", "e.updated_at").
		From("entries e").
		Where(sq.Eq{"e.user_id": userID}).
		Where("e.deleted_at IS NULL").
		OrderBy("e.created_at DESC")

	if filter.HasPlace != nil {
		if *filter.HasPlace {
			builder = builder.Where("e.place_id IS NOT NULL")
		} else {
			builder = builder.Where("e.place_id IS NULL")
		}
	}
	if filter.CountryCode != "" {
		builder = builder.
			Join("places p ON p.id = e.place_id").
			Where(sq.Eq{"p.country_code": filter.CountryCode})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []types.Entry
	for rows.Next() {
		var entry types.Entry
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.SourceURL, &entry.Title,
			&entry.Caption, &entry.AuthorName, &entry.PlaceID,
			&entry.CreatedAt, &entry.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading entries: %w", err)
	}
	span.SetAttributes(attribute.Int("entries.count", len(entries)))
	return entries, nil
}

func (r *RepositoryImpl) SoftDeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	query := `
        UPDATE entries SET deleted_at = NOW(), updated_at = NOW()
        WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
    `
	tag, err := r.db.Exec(ctx, query, entryID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return types.ErrNotFound
	}
	return nil
}

func (r *RepositoryImpl) SavePlace(ctx context.Context, place *types.DetectedPlace) (uuid.UUID, error) {
	ctx, span := otel.Tracer("EntryRepository").Start(ctx, "SavePlace")
	defer span.End()
	span.SetAttributes(attribute.String("place.name", place.Name))

	query := `
        INSERT INTO places (
            google_place_id, name, address, latitude, longitude,
            city, country, country_code, confidence, primary_type, types
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        ON CONFLICT (google_place_id) DO UPDATE SET
            name = EXCLUDED.name,
            address = EXCLUDED.address,
            confidence = EXCLUDED.confidence
        RETURNING id
    `
	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		place.GooglePlaceID, place.Name, place.Address,
		place.Latitude, place.Longitude,
		place.City, place.Country, place.CountryCode,
		place.Confidence, place.PrimaryType, place.Types,
	).Scan(&id)
	if err != nil {
		span.RecordError(err)
		return uuid.Nil, fmt.Errorf("failed to upsert place: %w", err)
	}
	return id, nil
}

func (r *RepositoryImpl) AttachPlace(ctx context.Context, entryID, placeID uuid.UUID) error {
	query := `UPDATE entries SET place_id = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL`
	tag, err := r.db.Exec(ctx, query, placeID, entryID)
	if err != nil {
		return fmt.Errorf("failed to attach place: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return types.ErrNotFound
	}
	return nil
}

func (r *RepositoryImpl) ListEntriesWithoutPlace(ctx context.Context, limit int) ([]types.Entry, error) {
	query := `
        SELECT id, user_id, source_url, title, caption, author_name, place_id, created_at, updated_at
        FROM entries
        WHERE place_id IS NULL AND deleted_at IS NULL
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries without place: %w", err)
	}
	defer rows.Close()

	var entries []types.Entry
	for rows.Next() {
		var entry types.Entry
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.SourceURL, &entry.Title,
			&entry.Caption, &entry.AuthorName, &entry.PlaceID,
			&entry.CreatedAt, &entry.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
