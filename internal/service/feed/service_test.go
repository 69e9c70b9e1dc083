package feed

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

func staticSource(collection string, items ...domain.FeedItem) *sourceMock {
	return &sourceMock{
		CollectionFunc: func() string { return collection },
		FetchFunc: func(ctx context.Context, limit int) ([]domain.FeedItem, error) {
			if len(items) > limit {
				return items[:limit], nil
			}
			return items, nil
		},
	}
}

func item(collection string, createdAt time.Time) domain.FeedItem {
	return domain.FeedItem{
		ID:               uuid.New(),
		SourceCollection: collection,
		CreatedAt:        createdAt,
		ReviewStatus:     domain.ReviewUnreviewed,
	}
}

func TestFeed_MergesNewestFirst(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	t1 := item(domain.CollectionVacation, base)
	t2 := item(domain.CollectionTravel, base.Add(time.Hour))
	t3 := item(domain.CollectionEquipment, base.Add(2*time.Hour))

	svc := NewService(slog.Default(), 50, time.Minute,
		staticSource(domain.CollectionVacation, t1),
		staticSource(domain.CollectionTravel, t2),
		staticSource(domain.CollectionEquipment, t3),
	)

	got, err := svc.Feed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("items: got %d, want 3", len(got))
	}
	wantOrder := []uuid.UUID{t3.ID, t2.ID, t1.ID}
	for i, want := range wantOrder {
		if got[i].ID != want {
			t.Errorf("position %d: got %s (%s), want %s", i, got[i].ID, got[i].SourceCollection, want)
		}
	}
}

func TestFeed_TieBreakIsDeterministic(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	a := item(domain.CollectionEquipment, at)
	b := item(domain.CollectionTravel, at)
	c := item(domain.CollectionVacation, at)

	svc := NewService(slog.Default(), 50, time.Minute,
		staticSource(domain.CollectionVacation, c),
		staticSource(domain.CollectionTravel, b),
		staticSource(domain.CollectionEquipment, a),
	)

	got, err := svc.Feed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Equal timestamps order by collection name: equipment, travel, vacation.
	if got[0].ID != a.ID || got[1].ID != b.ID || got[2].ID != c.ID {
		t.Errorf("tie-break order: got [%s %s %s]",
			got[0].SourceCollection, got[1].SourceCollection, got[2].SourceCollection)
	}
}

func TestFeed_TruncatesToWindowLimit(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	var vacation, travel []domain.FeedItem
	for i := 0; i < 40; i++ {
		vacation = append(vacation, item(domain.CollectionVacation, base.Add(time.Duration(i)*time.Minute)))
		travel = append(travel, item(domain.CollectionTravel, base.Add(time.Duration(i)*time.Second)))
	}

	svc := NewService(slog.Default(), 50, time.Minute,
		staticSource(domain.CollectionVacation, vacation...),
		staticSource(domain.CollectionTravel, travel...),
	)

	got, err := svc.Feed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 50 {
		t.Fatalf("items: got %d, want 50", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Fatalf("items out of order at %d: %v after %v", i, got[i].CreatedAt, got[i-1].CreatedAt)
		}
	}
}

func TestFeed_AllOrNothingOnSourceFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	ok := staticSource(domain.CollectionVacation, item(domain.CollectionVacation, time.Now()))
	failing := &sourceMock{
		CollectionFunc: func() string { return domain.CollectionTravel },
		FetchFunc: func(ctx context.Context, limit int) ([]domain.FeedItem, error) {
			return nil, cause
		},
	}

	svc := NewService(slog.Default(), 50, time.Minute, ok, failing)

	_, err := svc.Feed(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var sfe *domain.SourceFetchError
	if !errors.As(err, &sfe) {
		t.Fatalf("expected SourceFetchError, got %T: %v", err, err)
	}
	if sfe.Collection != domain.CollectionTravel {
		t.Errorf("failing collection: got %q, want %q", sfe.Collection, domain.CollectionTravel)
	}
	if !errors.Is(err, cause) {
		t.Error("underlying cause should be preserved")
	}
}

func TestFeed_FailureKeepsPreviousCacheForNextSuccess(t *testing.T) {
	t.Parallel()

	var fail atomic.Bool
	var fetches atomic.Int64
	first := item(domain.CollectionVacation, time.Now())
	src := &sourceMock{
		CollectionFunc: func() string { return domain.CollectionVacation },
		FetchFunc: func(ctx context.Context, limit int) ([]domain.FeedItem, error) {
			fetches.Add(1)
			if fail.Load() {
				return nil, errors.New("db down")
			}
			return []domain.FeedItem{first}, nil
		},
	}

	svc := NewService(slog.Default(), 50, time.Minute, src)
	ctx := context.Background()

	if _, err := svc.Feed(ctx); err != nil {
		t.Fatalf("first feed: %v", err)
	}

	svc.Invalidate()
	fail.Store(true)
	if _, err := svc.Feed(ctx); err == nil {
		t.Fatal("expected error while source is failing")
	}

	// Failure must not clear staleness: recovery triggers a fresh fetch.
	fail.Store(false)
	got, err := svc.Feed(ctx)
	if err != nil {
		t.Fatalf("feed after recovery: %v", err)
	}
	if len(got) != 1 || got[0].ID != first.ID {
		t.Fatalf("unexpected items after recovery: %+v", got)
	}
	if fetches.Load() != 3 {
		t.Errorf("fetches: got %d, want 3", fetches.Load())
	}
}

func TestFeed_ServesCachedResultWithinTTL(t *testing.T) {
	t.Parallel()

	src := staticSource(domain.CollectionVacation, item(domain.CollectionVacation, time.Now()))
	svc := NewService(slog.Default(), 50, time.Minute, src)
	ctx := context.Background()

	if _, err := svc.Feed(ctx); err != nil {
		t.Fatalf("first feed: %v", err)
	}
	if _, err := svc.Feed(ctx); err != nil {
		t.Fatalf("second feed: %v", err)
	}

	if calls := len(src.FetchCalls()); calls != 1 {
		t.Errorf("fetch calls: got %d, want 1 (second read must hit the cache)", calls)
	}
}

func TestFeed_TTLExpiryTriggersRecompute(t *testing.T) {
	t.Parallel()

	src := staticSource(domain.CollectionVacation, item(domain.CollectionVacation, time.Now()))
	svc := NewService(slog.Default(), 50, 20*time.Millisecond, src)
	ctx := context.Background()

	if _, err := svc.Feed(ctx); err != nil {
		t.Fatalf("first feed: %v", err)
	}

	time.Sleep(50 * time.Millisecond)

	if _, err := svc.Feed(ctx); err != nil {
		t.Fatalf("second feed: %v", err)
	}
	if calls := len(src.FetchCalls()); calls != 2 {
		t.Errorf("fetch calls: got %d, want 2 (TTL expired)", calls)
	}
}

func TestFeed_InvalidateForcesRecompute(t *testing.T) {
	t.Parallel()

	src := staticSource(domain.CollectionVacation, item(domain.CollectionVacation, time.Now()))
	svc := NewService(slog.Default(), 50, time.Minute, src)
	ctx := context.Background()

	if _, err := svc.Feed(ctx); err != nil {
		t.Fatalf("first feed: %v", err)
	}

	svc.Invalidate()

	if _, err := svc.Feed(ctx); err != nil {
		t.Fatalf("second feed: %v", err)
	}
	if calls := len(src.FetchCalls()); calls != 2 {
		t.Errorf("fetch calls: got %d, want 2 (invalidation must bypass the cache)", calls)
	}
}

func TestFeed_SingleRecomputeUnderConcurrentReads(t *testing.T) {
	t.Parallel()

	var fetches atomic.Int64
	release := make(chan struct{})
	src := &sourceMock{
		CollectionFunc: func() string { return domain.CollectionVacation },
		FetchFunc: func(ctx context.Context, limit int) ([]domain.FeedItem, error) {
			fetches.Add(1)
			<-release
			return []domain.FeedItem{item(domain.CollectionVacation, time.Now())}, nil
		},
	}

	svc := NewService(slog.Default(), 50, time.Minute, src)
	ctx := context.Background()

	const readers = 10
	var wg sync.WaitGroup
	errs := make(chan error, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Feed(ctx)
			errs <- err
		}()
	}

	// Let every reader reach the singleflight barrier, then release the fetch.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("reader error: %v", err)
		}
	}
	if got := fetches.Load(); got != 1 {
		t.Errorf("fetches: got %d, want 1 (exactly one recompute in flight)", got)
	}
}

func TestFeed_InvalidationDuringRecomputeKeepsCacheStale(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	var fetches atomic.Int64
	src := &sourceMock{
		CollectionFunc: func() string { return domain.CollectionVacation },
		FetchFunc: func(ctx context.Context, limit int) ([]domain.FeedItem, error) {
			if fetches.Add(1) == 1 {
				close(started)
				<-release
			}
			return []domain.FeedItem{item(domain.CollectionVacation, time.Now())}, nil
		},
	}

	svc := NewService(slog.Default(), 50, time.Minute, src)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := svc.Feed(ctx)
		done <- err
	}()

	// Invalidate while the first recompute is mid-flight.
	<-started
	svc.Invalidate()
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("in-flight feed: %v", err)
	}

	// The stored result may miss the change that raced it, so the next read
	// must recompute instead of serving the cache.
	if _, err := svc.Feed(ctx); err != nil {
		t.Fatalf("follow-up feed: %v", err)
	}
	if got := fetches.Load(); got != 2 {
		t.Errorf("fetches: got %d, want 2 (stale-marked cache must be recomputed)", got)
	}
}
