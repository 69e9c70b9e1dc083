package feed

import (
	"context"
	"fmt"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// Repository listers consumed by the built-in sources. Each source pulls the
// newest page of its collection and normalizes rows through the registry.

type vacationLister interface {
	List(ctx context.Context, limit, offset int) ([]*domain.VacationRequest, int, error)
}

type travelLister interface {
	List(ctx context.Context, limit, offset int) ([]*domain.TravelNotice, int, error)
}

type equipmentLister interface {
	List(ctx context.Context, limit, offset int) ([]*domain.EquipmentRequest, int, error)
}

// NewVacationSource adapts the vacation repository into a feed Source.
func NewVacationSource(repo vacationLister) Source {
	return &vacationSource{repo: repo}
}

type vacationSource struct {
	repo vacationLister
}

func (s *vacationSource) Collection() string { return domain.CollectionVacation }

func (s *vacationSource) Fetch(ctx context.Context, limit int) ([]domain.FeedItem, error) {
	rows, _, err := s.repo.List(ctx, limit, 0)
	if err != nil {
		return nil, err
	}
	return normalizeAll(rows)
}

// NewTravelSource adapts the travel repository into a feed Source.
func NewTravelSource(repo travelLister) Source {
	return &travelSource{repo: repo}
}

type travelSource struct {
	repo travelLister
}

func (s *travelSource) Collection() string { return domain.CollectionTravel }

func (s *travelSource) Fetch(ctx context.Context, limit int) ([]domain.FeedItem, error) {
	rows, _, err := s.repo.List(ctx, limit, 0)
	if err != nil {
		return nil, err
	}
	return normalizeAll(rows)
}

// NewEquipmentSource adapts the equipment repository into a feed Source.
func NewEquipmentSource(repo equipmentLister) Source {
	return &equipmentSource{repo: repo}
}

type equipmentSource struct {
	repo equipmentLister
}

func (s *equipmentSource) Collection() string { return domain.CollectionEquipment }

func (s *equipmentSource) Fetch(ctx context.Context, limit int) ([]domain.FeedItem, error) {
	rows, _, err := s.repo.List(ctx, limit, 0)
	if err != nil {
		return nil, err
	}
	return normalizeAll(rows)
}

func normalizeAll[T domain.Record](rows []T) ([]domain.FeedItem, error) {
	items := make([]domain.FeedItem, 0, len(rows))
	for _, row := range rows {
		item, err := Normalize(row)
		if err != nil {
			return nil, fmt.Errorf("normalize record: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}
