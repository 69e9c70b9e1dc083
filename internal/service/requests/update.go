package requests

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// UpdateVacation applies a partial update to a vacation request.
func (s *Service) UpdateVacation(ctx context.Context, id uuid.UUID, input UpdateVacationInput) (*domain.VacationRequest, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	req, err := s.vacation.Update(ctx, id, domain.VacationUpdate{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Comment:   input.Comment,
	})
	if err != nil {
		return nil, fmt.Errorf("update vacation request: %w", err)
	}

	s.feed.Invalidate()
	s.logUpdated(ctx, domain.CollectionVacation, id)
	return req, nil
}

// UpdateTravel applies a partial update to a travel notice.
func (s *Service) UpdateTravel(ctx context.Context, id uuid.UUID, input UpdateTravelInput) (*domain.TravelNotice, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	notice, err := s.travel.Update(ctx, id, domain.TravelUpdate{
		Destination: input.Destination,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Purpose:     input.Purpose,
	})
	if err != nil {
		return nil, fmt.Errorf("update travel notice: %w", err)
	}

	s.feed.Invalidate()
	s.logUpdated(ctx, domain.CollectionTravel, id)
	return notice, nil
}

// UpdateEquipment applies a partial update to an equipment request.
func (s *Service) UpdateEquipment(ctx context.Context, id uuid.UUID, input UpdateEquipmentInput) (*domain.EquipmentRequest, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	req, err := s.equipment.Update(ctx, id, domain.EquipmentUpdate{
		Item:          input.Item,
		Justification: input.Justification,
	})
	if err != nil {
		return nil, fmt.Errorf("update equipment request: %w", err)
	}

	s.feed.Invalidate()
	s.logUpdated(ctx, domain.CollectionEquipment, id)
	return req, nil
}

func (s *Service) logUpdated(ctx context.Context, collection string, id uuid.UUID) {
	s.log.InfoContext(ctx, "request updated",
		slog.String("collection", collection),
		slog.String("record_id", id.String()),
	)
}
