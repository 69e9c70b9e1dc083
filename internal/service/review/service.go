package review

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// statusStore is the slice of a record repository the review workflow needs:
// reading and writing the review_status column of a single row.
type statusStore interface {
	GetReviewStatus(ctx context.Context, id uuid.UUID) (domain.ReviewStatus, error)
	SetReviewStatus(ctx context.Context, id uuid.UUID, status domain.ReviewStatus) error
}

type feedInvalidator interface {
	Invalidate()
}

// Service advances records through the review cycle.
type Service struct {
	stores map[string]statusStore
	feed   feedInvalidator
	log    *slog.Logger
}

// NewService creates a new Review service over the three record collections.
func NewService(
	log *slog.Logger,
	vacation statusStore,
	travel statusStore,
	equipment statusStore,
	feed feedInvalidator,
) *Service {
	return &Service{
		stores: map[string]statusStore{
			domain.CollectionVacation:  vacation,
			domain.CollectionTravel:    travel,
			domain.CollectionEquipment: equipment,
		},
		feed: feed,
		log:  log.With("service", "review"),
	}
}
