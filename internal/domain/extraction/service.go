// Package extraction turns noisy social-post metadata into a best-guess
// place: candidate phrases come out of the text, a gazetteer hint biases the
// geocoder, and the top-ranked resolved place wins. The pipeline is
// best-effort enrichment — every failure path degrades to "no place found",
// never to an error the caller must handle.
package extraction

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/roamlog/roamlog-api/internal/places"
	"github.com/roamlog/roamlog-api/internal/types"
	"github.com/roamlog/roamlog-api/pkg/observability"
)

const (
	// parallelCandidates is how many of the top candidates race concurrently
	// before the sequential fallback kicks in.
	parallelCandidates = 5

	// DefaultOverallTimeout bounds one whole extraction call.
	DefaultOverallTimeout = 10 * time.Second
)

var _ Service = (*ServiceImpl)(nil)

// Service is the single operation this subsystem exposes. A nil result means
// "no place found" and is a normal outcome, not an error.
type Service interface {
	ExtractPlace(ctx context.Context, content types.RawContent) *types.DetectedPlace
}

type ServiceImpl struct {
	logger  *slog.Logger
	gateway places.Client
	weights ScoringWeights
	timeout time.Duration
	cache   *cache.Cache
}

func NewServiceImpl(gateway places.Client, weights ScoringWeights, timeout time.Duration, logger *slog.Logger) *ServiceImpl {
	if timeout <= 0 {
		timeout = DefaultOverallTimeout
	}
	return &ServiceImpl{
		logger:  logger,
		gateway: gateway,
		weights: weights,
		timeout: timeout,
		cache:   cache.New(5*time.Minute, 10*time.Minute),
	}
}

type candidateResult struct {
	index int
	place *types.DetectedPlace
}

// ExtractPlace runs the full pipeline: candidates, location hints, a
// concurrent search over the top candidates, a sequential fallback over the
// rest, and score-based selection. Bounded by the overall timeout; on
// timeout partial results are discarded and nil is returned.
func (s *ServiceImpl) ExtractPlace(ctx context.Context, content types.RawContent) *types.DetectedPlace {
	ctx, span := otel.Tracer("ExtractionService").Start(ctx, "ExtractPlace")
	defer span.End()

	start := time.Now()
	defer func() { observability.ExtractionDuration.Observe(time.Since(start).Seconds()) }()

	if !s.gateway.IsConfigured() {
		observability.ExtractionAttempts.WithLabelValues("unconfigured").Inc()
		s.logger.Debug("place extraction skipped, gateway not configured")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	candidates := ExtractCandidates(content)
	span.SetAttributes(attribute.Int("candidates.count", len(candidates)))
	if len(candidates) == 0 {
		observability.ExtractionAttempts.WithLabelValues("no_candidates").Inc()
		s.logger.Info("no place candidates in content", "title", excerpt(content.Title))
		return nil
	}

	hints := ExtractLocationHints(CleanPlatformNoiseGuarded(content.Title) + " " + Truncate(content.Caption, MaxTextLen))
	var bias *types.LocationHint
	if len(hints) > 0 {
		bias = &hints[0]
		span.SetAttributes(attribute.String("bias.country", bias.CountryCode))
	}

	results, timedOut := s.resolveParallel(ctx, candidates, bias)
	if timedOut {
		observability.ExtractionAttempts.WithLabelValues("timeout").Inc()
		span.SetStatus(codes.Error, "extraction timed out")
		s.logger.Warn("place extraction timed out", "elapsed", time.Since(start))
		return nil
	}

	// Parallel phase came up dry: walk the remaining candidates one at a
	// time and stop at the first success. Slower, but rescues recall.
	if len(results) == 0 {
		for i := parallelCandidates; i < len(candidates); i++ {
			if ctx.Err() != nil {
				observability.ExtractionAttempts.WithLabelValues("timeout").Inc()
				s.logger.Warn("place extraction timed out in fallback", "elapsed", time.Since(start))
				return nil
			}
			if place := s.resolve(ctx, candidates[i], bias); place != nil {
				results = append(results, candidateResult{index: i, place: place})
				break
			}
		}
	}

	if len(results) == 0 {
		observability.ExtractionAttempts.WithLabelValues("no_match").Inc()
		s.logger.Info("no candidate resolved to a place", "candidates", len(candidates))
		return nil
	}

	best := results[0]
	bestScore := s.weights.RankScore(best.place, bias, best.index)
	for _, r := range results[1:] {
		if score := s.weights.RankScore(r.place, bias, r.index); score > bestScore {
			best, bestScore = r, score
		}
	}

	observability.ExtractionAttempts.WithLabelValues("detected").Inc()
	span.SetAttributes(
		attribute.String("place.name", best.place.Name),
		attribute.Float64("place.confidence", best.place.Confidence),
	)
	s.logger.Debug("place detected",
		"name", best.place.Name,
		"confidence", best.place.Confidence,
		"candidate_index", best.index,
	)
	return best.place
}

// resolveParallel fans the top candidates out concurrently and collects
// whatever resolves. On context expiry it abandons in-flight lookups and
// reports the timeout; partial results are not returned.
func (s *ServiceImpl) resolveParallel(ctx context.Context, candidates []string, bias *types.LocationHint) ([]candidateResult, bool) {
	n := len(candidates)
	if n > parallelCandidates {
		n = parallelCandidates
	}

	resultCh := make(chan candidateResult, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int, candidate string) {
			defer wg.Done()
			resultCh <- candidateResult{index: idx, place: s.resolve(ctx, candidate, bias)}
		}(i, candidates[i])
	}
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	var results []candidateResult
	for {
		select {
		case r, ok := <-resultCh:
			if !ok {
				return results, false
			}
			if r.place != nil {
				results = append(results, r)
			}
		case <-ctx.Done():
			return nil, true
		}
	}
}

// resolve takes one candidate through search and detail lookup. Any failure
// along the way means this candidate yields nothing; there are no retries.
func (s *ServiceImpl) resolve(ctx context.Context, candidate string, bias *types.LocationHint) *types.DetectedPlace {
	cacheKey := "candidate:" + strings.ToLower(candidate)
	if cached, ok := s.cache.Get(cacheKey); ok {
		if place, ok := cached.(*types.DetectedPlace); ok {
			return place
		}
	}

	hits, err := s.gateway.Search(ctx, candidate, bias)
	if err != nil || len(hits) == 0 {
		if err != nil {
			s.logger.Warn("candidate search failed", "candidate", excerpt(candidate), "error", err)
		}
		return nil
	}

	details, err := s.gateway.GetDetails(ctx, hits[0].PlaceID)
	if err != nil || details == nil {
		if err != nil {
			s.logger.Warn("candidate details failed", "candidate", excerpt(candidate), "error", err)
		}
		return nil
	}

	place := &types.DetectedPlace{
		GooglePlaceID: details.PlaceID,
		Name:          details.Name,
		Address:       details.Address,
		Latitude:      details.Latitude,
		Longitude:     details.Longitude,
		City:          details.City,
		Country:       details.Country,
		CountryCode:   details.CountryCode,
		Confidence:    s.weights.Confidence(candidate, details.Name, true),
		PrimaryType:   details.PrimaryType,
		Types:         details.Types,
	}
	s.cache.Set(cacheKey, place, cache.DefaultExpiration)
	return place
}

// excerpt keeps user content out of logs above debug level.
func excerpt(s string) string {
	const max = 60
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
