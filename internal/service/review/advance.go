package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// Advance moves a record one step along the review cycle:
// unreviewed -> in_progress -> done -> unreviewed. A record whose status was
// never set counts as unreviewed. Returns the status that was written.
//
// Concurrent advances of the same record are not serialized: the last write
// wins and the loser's transition is silently overwritten.
func (s *Service) Advance(ctx context.Context, collection string, id uuid.UUID) (domain.ReviewStatus, error) {
	store, ok := s.stores[collection]
	if !ok {
		return "", fmt.Errorf("advance review for %q: %w", collection, domain.ErrUnknownCollection)
	}
	if id == uuid.Nil {
		return "", domain.NewValidationError("id", "required")
	}

	current, err := store.GetReviewStatus(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get review status: %w", err)
	}

	next := current.Next()
	if err := store.SetReviewStatus(ctx, id, next); err != nil {
		return "", fmt.Errorf("set review status: %w: %w", domain.ErrWriteFailed, err)
	}

	s.feed.Invalidate()

	s.log.InfoContext(ctx, "review status advanced",
		slog.String("collection", collection),
		slog.String("record_id", id.String()),
		slog.String("from", current.String()),
		slog.String("to", next.String()),
	)

	return next, nil
}
