package feed

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

const listenRetryDelay = 5 * time.Second

// cacheInvalidator is the single side effect both refresh triggers share.
type cacheInvalidator interface {
	Invalidate()
}

// changeListener delivers change notifications. Listen blocks until the
// context is canceled or the underlying connection fails.
type changeListener interface {
	Listen(ctx context.Context, onChange func(payload string)) error
}

// Invalidator fans two triggers into one idempotent refresh path: database
// change notifications and a fallback polling ticker covering anything the
// notification channel misses. Both mark the feed cache stale and signal
// subscribed views to re-read.
type Invalidator struct {
	log      *slog.Logger
	cache    cacheInvalidator
	listener changeListener
	interval time.Duration

	mu     sync.Mutex
	subs   map[int]chan struct{}
	nextID int
}

// NewInvalidator creates an Invalidator. interval <= 0 disables the polling
// ticker, leaving notifications as the only trigger.
func NewInvalidator(log *slog.Logger, cache cacheInvalidator, listener changeListener, interval time.Duration) *Invalidator {
	return &Invalidator{
		log:      log.With("service", "feed_invalidator"),
		cache:    cache,
		listener: listener,
		interval: interval,
		subs:     make(map[int]chan struct{}),
	}
}

// Run blocks until ctx is canceled, maintaining the notification subscription
// (with reconnect backoff) and the polling ticker. Teardown stops the ticker,
// releases the listening connection, and leaves no goroutines behind.
func (inv *Invalidator) Run(ctx context.Context) {
	var wg sync.WaitGroup

	if inv.interval > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inv.runTicker(ctx)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		inv.runListener(ctx)
	}()

	wg.Wait()
	inv.log.Info("invalidator stopped")
}

// Subscribe registers a refresh-signal channel for a dependent view.
// The channel has capacity 1 and signals are coalesced: a slow consumer sees
// one pending signal, never a backlog. The returned func unsubscribes.
func (inv *Invalidator) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	inv.mu.Lock()
	id := inv.nextID
	inv.nextID++
	inv.subs[id] = ch
	inv.mu.Unlock()

	cancel := func() {
		inv.mu.Lock()
		delete(inv.subs, id)
		inv.mu.Unlock()
	}

	return ch, cancel
}

func (inv *Invalidator) runTicker(ctx context.Context) {
	ticker := time.NewTicker(inv.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			inv.markStale(ctx, "ticker", "")
		}
	}
}

func (inv *Invalidator) runListener(ctx context.Context) {
	for {
		err := inv.listener.Listen(ctx, func(payload string) {
			inv.markStale(ctx, "notification", payload)
		})
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			return
		}

		inv.log.WarnContext(ctx, "change listener disconnected, retrying",
			slog.String("error", err.Error()),
			slog.Duration("retry_in", listenRetryDelay),
		)

		select {
		case <-ctx.Done():
			return
		case <-time.After(listenRetryDelay):
		}
	}
}

// markStale is the shared refresh path. It is idempotent: marking an already
// stale cache again is a no-op beyond the generation bump, and broadcast
// sends are non-blocking.
func (inv *Invalidator) markStale(ctx context.Context, trigger, payload string) {
	inv.cache.Invalidate()

	inv.mu.Lock()
	for _, ch := range inv.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	subscribers := len(inv.subs)
	inv.mu.Unlock()

	inv.log.DebugContext(ctx, "feed cache marked stale",
		slog.String("trigger", trigger),
		slog.String("payload", payload),
		slog.Int("subscribers", subscribers),
	)
}
