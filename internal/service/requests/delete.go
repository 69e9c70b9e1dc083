package requests

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// DeleteVacation removes a vacation request.
func (s *Service) DeleteVacation(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if err := s.vacation.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete vacation request: %w", err)
	}

	s.feed.Invalidate()
	s.logDeleted(ctx, domain.CollectionVacation, id)
	return nil
}

// DeleteTravel removes a travel notice.
func (s *Service) DeleteTravel(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if err := s.travel.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete travel notice: %w", err)
	}

	s.feed.Invalidate()
	s.logDeleted(ctx, domain.CollectionTravel, id)
	return nil
}

// DeleteEquipment removes an equipment request.
func (s *Service) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if err := s.equipment.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete equipment request: %w", err)
	}

	s.feed.Invalidate()
	s.logDeleted(ctx, domain.CollectionEquipment, id)
	return nil
}

func (s *Service) logDeleted(ctx context.Context, collection string, id uuid.UUID) {
	s.log.InfoContext(ctx, "request deleted",
		slog.String("collection", collection),
		slog.String("record_id", id.String()),
	)
}
