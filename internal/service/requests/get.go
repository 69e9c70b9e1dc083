package requests

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// GetVacation returns a single vacation request by id.
func (s *Service) GetVacation(ctx context.Context, id uuid.UUID) (*domain.VacationRequest, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	req, err := s.vacation.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get vacation request: %w", err)
	}
	return req, nil
}

// GetTravel returns a single travel notice by id.
func (s *Service) GetTravel(ctx context.Context, id uuid.UUID) (*domain.TravelNotice, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	notice, err := s.travel.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get travel notice: %w", err)
	}
	return notice, nil
}

// GetEquipment returns a single equipment request by id.
func (s *Service) GetEquipment(ctx context.Context, id uuid.UUID) (*domain.EquipmentRequest, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	req, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get equipment request: %w", err)
	}
	return req, nil
}
