package entry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/roamlog/roamlog-api/internal/domain/extraction"
	"github.com/roamlog/roamlog-api/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service is the entry-creation workflow: it persists entries and enriches
// them with detected places. Extraction is best-effort — its failure never
// fails the user's save.
type Service interface {
	CreateEntry(ctx context.Context, userID uuid.UUID, req types.CreateEntryRequest) (*types.Entry, error)
	GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*types.Entry, error)
	ListEntries(ctx context.Context, userID uuid.UUID, filter types.EntryFilter) ([]types.Entry, error)
	DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error

	// ReextractPending re-runs place extraction for entries saved without a
	// place, e.g. after the gazetteer or gateway config improved. Returns
	// how many entries gained a place.
	ReextractPending(ctx context.Context, batchSize int) (int, error)
}

const reextractConcurrency = 4

type ServiceImpl struct {
	logger    *slog.Logger
	repo      Repository
	extractor extraction.Service
}

func NewServiceImpl(repo Repository, extractor extraction.Service, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		repo:      repo,
		extractor: extractor,
	}
}

func (s *ServiceImpl) CreateEntry(ctx context.Context, userID uuid.UUID, req types.CreateEntryRequest) (*types.Entry, error) {
	ctx, span := otel.Tracer("EntryService").Start(ctx, "CreateEntry")
	defer span.End()

	if strings.TrimSpace(req.SourceURL) == "" {
		return nil, fmt.Errorf("%w: source_url is required", types.ErrBadRequest)
	}

	entry, err := s.repo.CreateEntry(ctx, userID, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create entry")
		s.logger.Error("failed to create entry", slog.Any("error", err))
		return nil, err
	}

	// Enrich if possible, stay silent otherwise. The entry is already saved;
	// nothing past this point may fail the request.
	detected := s.extractor.ExtractPlace(ctx, types.RawContent{
		Title:      req.Title,
		Caption:    req.Caption,
		AuthorName: req.AuthorName,
	})
	if detected != nil {
		if placeID, err := s.attachDetected(ctx, entry.ID, detected); err != nil {
			s.logger.Warn("failed to attach detected place", "entry_id", entry.ID, "error", err)
		} else {
			entry.PlaceID = &placeID
			entry.Place = detected
			span.SetAttributes(attribute.String("place.name", detected.Name))
		}
	}
	return entry, nil
}

func (s *ServiceImpl) attachDetected(ctx context.Context, entryID uuid.UUID, detected *types.DetectedPlace) (uuid.UUID, error) {
	placeID, err := s.repo.SavePlace(ctx, detected)
	if err != nil {
		return uuid.Nil, err
	}
	if err := s.repo.AttachPlace(ctx, entryID, placeID); err != nil {
		return uuid.Nil, err
	}
	return placeID, nil
}

func (s *ServiceImpl) GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*types.Entry, error) {
	return s.repo.GetEntry(ctx, userID, entryID)
}

func (s *ServiceImpl) ListEntries(ctx context.Context, userID uuid.UUID, filter types.EntryFilter) ([]types.Entry, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	return s.repo.ListEntries(ctx, userID, filter)
}

func (s *ServiceImpl) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	if err := s.repo.SoftDeleteEntry(ctx, userID, entryID); err != nil {
		s.logger.Error("failed to delete entry", "entry_id", entryID, "error", err)
		return err
	}
	return nil
}

func (s *ServiceImpl) ReextractPending(ctx context.Context, batchSize int) (int, error) {
	ctx, span := otel.Tracer("EntryService").Start(ctx, "ReextractPending")
	defer span.End()

	if batchSize <= 0 {
		batchSize = 50
	}
	entries, err := s.repo.ListEntriesWithoutPlace(ctx, batchSize)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	span.SetAttributes(attribute.Int("entries.count", len(entries)))

	var enriched atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(reextractConcurrency)
	for _, e := range entries {
		g.Go(func() error {
			detected := s.extractor.ExtractPlace(ctx, types.RawContent{
				Title:      e.Title,
				Caption:    e.Caption,
				AuthorName: e.AuthorName,
			})
			if detected == nil {
				return nil
			}
			if _, err := s.attachDetected(ctx, e.ID, detected); err != nil {
				s.logger.Warn("re-extraction attach failed", "entry_id", e.ID, "error", err)
				return nil
			}
			enriched.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(enriched.Load()), err
	}
	return int(enriched.Load()), nil
}
