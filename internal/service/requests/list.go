package requests

import (
	"context"
	"fmt"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// VacationPage is one page of vacation requests with the collection total.
type VacationPage struct {
	Items []*domain.VacationRequest
	Total int
}

// TravelPage is one page of travel notices with the collection total.
type TravelPage struct {
	Items []*domain.TravelNotice
	Total int
}

// EquipmentPage is one page of equipment requests with the collection total.
type EquipmentPage struct {
	Items []*domain.EquipmentRequest
	Total int
}

// ListVacation returns a page of vacation requests, newest first.
func (s *Service) ListVacation(ctx context.Context, input ListInput) (*VacationPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	limit := normalizeLimit(input.Limit)

	items, total, err := s.vacation.List(ctx, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list vacation requests: %w", err)
	}
	return &VacationPage{Items: items, Total: total}, nil
}

// ListTravel returns a page of travel notices, newest first.
func (s *Service) ListTravel(ctx context.Context, input ListInput) (*TravelPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	limit := normalizeLimit(input.Limit)

	items, total, err := s.travel.List(ctx, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list travel notices: %w", err)
	}
	return &TravelPage{Items: items, Total: total}, nil
}

// ListEquipment returns a page of equipment requests, newest first.
func (s *Service) ListEquipment(ctx context.Context, input ListInput) (*EquipmentPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	limit := normalizeLimit(input.Limit)

	items, total, err := s.equipment.List(ctx, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list equipment requests: %w", err)
	}
	return &EquipmentPage{Items: items, Total: total}, nil
}

func normalizeLimit(limit int) int {
	if limit == 0 {
		return DefaultLimit
	}
	return limit
}
