package requests

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// SubmitVacation creates a new vacation request in the unreviewed state.
func (s *Service) SubmitVacation(ctx context.Context, input SubmitVacationInput) (*domain.VacationRequest, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	req, err := s.vacation.Insert(ctx, &domain.VacationRequest{
		ID:            uuid.New(),
		EmployeeName:  strings.TrimSpace(input.EmployeeName),
		EmployeeEmail: strings.TrimSpace(input.EmployeeEmail),
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Comment:       trimOrNil(input.Comment),
		ReviewStatus:  domain.ReviewUnreviewed,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert vacation request: %w", err)
	}

	s.feed.Invalidate()
	s.logSubmitted(ctx, domain.CollectionVacation, req.ID)
	return req, nil
}

// SubmitTravel creates a new travel notice in the unreviewed state.
func (s *Service) SubmitTravel(ctx context.Context, input SubmitTravelInput) (*domain.TravelNotice, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	notice, err := s.travel.Insert(ctx, &domain.TravelNotice{
		ID:            uuid.New(),
		EmployeeName:  strings.TrimSpace(input.EmployeeName),
		EmployeeEmail: strings.TrimSpace(input.EmployeeEmail),
		Destination:   strings.TrimSpace(input.Destination),
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Purpose:       trimOrNil(input.Purpose),
		ReviewStatus:  domain.ReviewUnreviewed,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert travel notice: %w", err)
	}

	s.feed.Invalidate()
	s.logSubmitted(ctx, domain.CollectionTravel, notice.ID)
	return notice, nil
}

// SubmitEquipment creates a new equipment request in the unreviewed state.
func (s *Service) SubmitEquipment(ctx context.Context, input SubmitEquipmentInput) (*domain.EquipmentRequest, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	req, err := s.equipment.Insert(ctx, &domain.EquipmentRequest{
		ID:            uuid.New(),
		EmployeeName:  strings.TrimSpace(input.EmployeeName),
		EmployeeEmail: strings.TrimSpace(input.EmployeeEmail),
		Item:          strings.TrimSpace(input.Item),
		Justification: trimOrNil(input.Justification),
		ReviewStatus:  domain.ReviewUnreviewed,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert equipment request: %w", err)
	}

	s.feed.Invalidate()
	s.logSubmitted(ctx, domain.CollectionEquipment, req.ID)
	return req, nil
}

func (s *Service) logSubmitted(ctx context.Context, collection string, id uuid.UUID) {
	s.log.InfoContext(ctx, "request submitted",
		slog.String("collection", collection),
		slog.String("record_id", id.String()),
	)
}
