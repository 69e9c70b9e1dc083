package requests

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type vacationStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VacationRequest, error)
	List(ctx context.Context, limit, offset int) ([]*domain.VacationRequest, int, error)
	Insert(ctx context.Context, req *domain.VacationRequest) (*domain.VacationRequest, error)
	Update(ctx context.Context, id uuid.UUID, params domain.VacationUpdate) (*domain.VacationRequest, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type travelStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TravelNotice, error)
	List(ctx context.Context, limit, offset int) ([]*domain.TravelNotice, int, error)
	Insert(ctx context.Context, notice *domain.TravelNotice) (*domain.TravelNotice, error)
	Update(ctx context.Context, id uuid.UUID, params domain.TravelUpdate) (*domain.TravelNotice, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type equipmentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.EquipmentRequest, error)
	List(ctx context.Context, limit, offset int) ([]*domain.EquipmentRequest, int, error)
	Insert(ctx context.Context, req *domain.EquipmentRequest) (*domain.EquipmentRequest, error)
	Update(ctx context.Context, id uuid.UUID, params domain.EquipmentUpdate) (*domain.EquipmentRequest, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type feedInvalidator interface {
	Invalidate()
}

// Service provides CRUD operations over the three request collections.
// Every successful write marks the activity feed cache stale.
type Service struct {
	vacation  vacationStore
	travel    travelStore
	equipment equipmentStore
	feed      feedInvalidator
	log       *slog.Logger
}

// NewService creates a new Requests service.
func NewService(
	log *slog.Logger,
	vacation vacationStore,
	travel travelStore,
	equipment equipmentStore,
	feed feedInvalidator,
) *Service {
	return &Service{
		vacation:  vacation,
		travel:    travel,
		equipment: equipment,
		feed:      feed,
		log:       log.With("service", "requests"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
