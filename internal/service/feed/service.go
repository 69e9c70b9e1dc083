// Package feed aggregates the reviewable collections into one time-ordered
// activity feed: concurrent source fetch, normalization through the collection
// registry, bounded newest-first window, TTL cache with explicit invalidation.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

const (
	DefaultWindowLimit = 50
	DefaultCacheTTL    = 5 * time.Minute
)

// Source supplies normalized feed items for one collection.
type Source interface {
	Collection() string
	Fetch(ctx context.Context, limit int) ([]domain.FeedItem, error)
}

// Service computes and caches the aggregated feed.
type Service struct {
	log     *slog.Logger
	sources []Source
	limit   int
	ttl     time.Duration

	group singleflight.Group

	mu        sync.Mutex
	items     []domain.FeedItem
	fetchedAt time.Time
	stale     bool
	// gen increments on every invalidation. A recompute that started under an
	// older gen stores its result but leaves the cache stale, so the change
	// that arrived mid-flight is picked up by the next read.
	gen uint64
}

// NewService creates the feed aggregator over the given sources.
// limit <= 0 and ttl <= 0 fall back to the defaults.
func NewService(log *slog.Logger, limit int, ttl time.Duration, sources ...Source) *Service {
	if limit <= 0 {
		limit = DefaultWindowLimit
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Service{
		log:     log.With("service", "feed"),
		sources: sources,
		limit:   limit,
		ttl:     ttl,
	}
}

// Feed returns the aggregated feed, newest first, at most the configured
// window of items. Fresh cached results are served without touching the
// stores; otherwise exactly one recompute runs and concurrent callers wait
// for its result. The aggregation is all-or-nothing: any source failure
// fails the whole call and the previous cache content is kept.
func (s *Service) Feed(ctx context.Context) ([]domain.FeedItem, error) {
	s.mu.Lock()
	if !s.stale && !s.fetchedAt.IsZero() && time.Since(s.fetchedAt) < s.ttl {
		items := s.items
		s.mu.Unlock()
		return items, nil
	}
	s.mu.Unlock()

	// WithoutCancel: the shared recompute must not die with the first caller
	// that goes away while others are still waiting on it.
	recomputeCtx := context.WithoutCancel(ctx)
	v, err, shared := s.group.Do("feed", func() (any, error) {
		return s.recompute(recomputeCtx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.log.DebugContext(ctx, "feed recompute shared with concurrent readers")
	}

	return v.([]domain.FeedItem), nil
}

// Invalidate marks the cached feed stale. Idempotent and cheap: callers
// invoke it on every write and on every change notification.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.stale = true
	s.gen++
	s.mu.Unlock()
}

func (s *Service) recompute(ctx context.Context) ([]domain.FeedItem, error) {
	s.mu.Lock()
	startGen := s.gen
	s.mu.Unlock()

	start := time.Now()
	items, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(items, compareItems)
	if len(items) > s.limit {
		items = items[:s.limit]
	}

	s.mu.Lock()
	s.items = items
	s.fetchedAt = time.Now()
	// An invalidation that raced this recompute re-marks the cache stale.
	s.stale = s.gen != startGen
	raced := s.stale
	s.mu.Unlock()

	s.log.InfoContext(ctx, "feed recomputed",
		slog.Int("items", len(items)),
		slog.Duration("duration", time.Since(start)),
		slog.Bool("stale_on_store", raced),
	)

	return items, nil
}

// fetchAll queries every source concurrently. Each source fetches at most
// the window limit: a source's items beyond its own top slots can never make
// the merged window.
func (s *Service) fetchAll(ctx context.Context) ([]domain.FeedItem, error) {
	g, gctx := errgroup.WithContext(ctx)
	results := make([][]domain.FeedItem, len(s.sources))

	for i, src := range s.sources {
		g.Go(func() error {
			items, err := src.Fetch(gctx, s.limit)
			if err != nil {
				return &domain.SourceFetchError{Collection: src.Collection(), Err: err}
			}
			results[i] = items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("aggregate feed: %w", err)
	}

	merged := make([]domain.FeedItem, 0, len(s.sources)*s.limit)
	for _, items := range results {
		merged = append(merged, items...)
	}

	return merged, nil
}

// compareItems orders newest first. Ties on CreatedAt break on collection
// name, then id, keeping the window deterministic across recomputes.
func compareItems(a, b domain.FeedItem) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	if c := strings.Compare(a.SourceCollection, b.SourceCollection); c != 0 {
		return c
	}
	return strings.Compare(a.ID.String(), b.ID.String())
}
