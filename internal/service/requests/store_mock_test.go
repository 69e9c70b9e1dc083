package requests

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

var (
	_ vacationStore  = &vacationStoreMock{}
	_ travelStore    = &travelStoreMock{}
	_ equipmentStore = &equipmentStoreMock{}
)

type vacationStoreMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.VacationRequest, error)
	ListFunc    func(ctx context.Context, limit, offset int) ([]*domain.VacationRequest, int, error)
	InsertFunc  func(ctx context.Context, req *domain.VacationRequest) (*domain.VacationRequest, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, params domain.VacationUpdate) (*domain.VacationRequest, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Limit  int
			Offset int
		}
		Insert []struct {
			Req *domain.VacationRequest
		}
		Update []struct {
			ID     uuid.UUID
			Params domain.VacationUpdate
		}
		Delete []struct {
			ID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *vacationStoreMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.VacationRequest, error) {
	if mock.GetByIDFunc == nil {
		panic("vacationStoreMock.GetByIDFunc: method is nil but vacationStore.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *vacationStoreMock) List(ctx context.Context, limit, offset int) ([]*domain.VacationRequest, int, error) {
	if mock.ListFunc == nil {
		panic("vacationStoreMock.ListFunc: method is nil but vacationStore.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Limit  int
		Offset int
	}{Limit: limit, Offset: offset})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *vacationStoreMock) Insert(ctx context.Context, req *domain.VacationRequest) (*domain.VacationRequest, error) {
	if mock.InsertFunc == nil {
		panic("vacationStoreMock.InsertFunc: method is nil but vacationStore.Insert was just called")
	}
	mock.lock.Lock()
	mock.calls.Insert = append(mock.calls.Insert, struct {
		Req *domain.VacationRequest
	}{Req: req})
	mock.lock.Unlock()
	return mock.InsertFunc(ctx, req)
}

func (mock *vacationStoreMock) Update(ctx context.Context, id uuid.UUID, params domain.VacationUpdate) (*domain.VacationRequest, error) {
	if mock.UpdateFunc == nil {
		panic("vacationStoreMock.UpdateFunc: method is nil but vacationStore.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		ID     uuid.UUID
		Params domain.VacationUpdate
	}{ID: id, Params: params})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *vacationStoreMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("vacationStoreMock.DeleteFunc: method is nil but vacationStore.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *vacationStoreMock) InsertCalls() []struct{ Req *domain.VacationRequest } {
	mock.lock.RLock()
	calls := mock.calls.Insert
	mock.lock.RUnlock()
	return calls
}

func (mock *vacationStoreMock) UpdateCalls() []struct {
	ID     uuid.UUID
	Params domain.VacationUpdate
} {
	mock.lock.RLock()
	calls := mock.calls.Update
	mock.lock.RUnlock()
	return calls
}

func (mock *vacationStoreMock) ListCalls() []struct {
	Limit  int
	Offset int
} {
	mock.lock.RLock()
	calls := mock.calls.List
	mock.lock.RUnlock()
	return calls
}

func (mock *vacationStoreMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	calls := mock.calls.Delete
	mock.lock.RUnlock()
	return calls
}

type travelStoreMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.TravelNotice, error)
	ListFunc    func(ctx context.Context, limit, offset int) ([]*domain.TravelNotice, int, error)
	InsertFunc  func(ctx context.Context, notice *domain.TravelNotice) (*domain.TravelNotice, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, params domain.TravelUpdate) (*domain.TravelNotice, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Insert []struct {
			Notice *domain.TravelNotice
		}
		Update []struct {
			ID     uuid.UUID
			Params domain.TravelUpdate
		}
	}
	lock sync.RWMutex
}

func (mock *travelStoreMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.TravelNotice, error) {
	if mock.GetByIDFunc == nil {
		panic("travelStoreMock.GetByIDFunc: method is nil but travelStore.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *travelStoreMock) List(ctx context.Context, limit, offset int) ([]*domain.TravelNotice, int, error) {
	if mock.ListFunc == nil {
		panic("travelStoreMock.ListFunc: method is nil but travelStore.List was just called")
	}
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *travelStoreMock) Insert(ctx context.Context, notice *domain.TravelNotice) (*domain.TravelNotice, error) {
	if mock.InsertFunc == nil {
		panic("travelStoreMock.InsertFunc: method is nil but travelStore.Insert was just called")
	}
	mock.lock.Lock()
	mock.calls.Insert = append(mock.calls.Insert, struct {
		Notice *domain.TravelNotice
	}{Notice: notice})
	mock.lock.Unlock()
	return mock.InsertFunc(ctx, notice)
}

func (mock *travelStoreMock) Update(ctx context.Context, id uuid.UUID, params domain.TravelUpdate) (*domain.TravelNotice, error) {
	if mock.UpdateFunc == nil {
		panic("travelStoreMock.UpdateFunc: method is nil but travelStore.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		ID     uuid.UUID
		Params domain.TravelUpdate
	}{ID: id, Params: params})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *travelStoreMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("travelStoreMock.DeleteFunc: method is nil but travelStore.Delete was just called")
	}
	return mock.DeleteFunc(ctx, id)
}

func (mock *travelStoreMock) InsertCalls() []struct{ Notice *domain.TravelNotice } {
	mock.lock.RLock()
	calls := mock.calls.Insert
	mock.lock.RUnlock()
	return calls
}

func (mock *travelStoreMock) UpdateCalls() []struct {
	ID     uuid.UUID
	Params domain.TravelUpdate
} {
	mock.lock.RLock()
	calls := mock.calls.Update
	mock.lock.RUnlock()
	return calls
}

type equipmentStoreMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.EquipmentRequest, error)
	ListFunc    func(ctx context.Context, limit, offset int) ([]*domain.EquipmentRequest, int, error)
	InsertFunc  func(ctx context.Context, req *domain.EquipmentRequest) (*domain.EquipmentRequest, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, params domain.EquipmentUpdate) (*domain.EquipmentRequest, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Insert []struct {
			Req *domain.EquipmentRequest
		}
		Delete []struct {
			ID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *equipmentStoreMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.EquipmentRequest, error) {
	if mock.GetByIDFunc == nil {
		panic("equipmentStoreMock.GetByIDFunc: method is nil but equipmentStore.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *equipmentStoreMock) List(ctx context.Context, limit, offset int) ([]*domain.EquipmentRequest, int, error) {
	if mock.ListFunc == nil {
		panic("equipmentStoreMock.ListFunc: method is nil but equipmentStore.List was just called")
	}
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *equipmentStoreMock) Insert(ctx context.Context, req *domain.EquipmentRequest) (*domain.EquipmentRequest, error) {
	if mock.InsertFunc == nil {
		panic("equipmentStoreMock.InsertFunc: method is nil but equipmentStore.Insert was just called")
	}
	mock.lock.Lock()
	mock.calls.Insert = append(mock.calls.Insert, struct {
		Req *domain.EquipmentRequest
	}{Req: req})
	mock.lock.Unlock()
	return mock.InsertFunc(ctx, req)
}

func (mock *equipmentStoreMock) Update(ctx context.Context, id uuid.UUID, params domain.EquipmentUpdate) (*domain.EquipmentRequest, error) {
	if mock.UpdateFunc == nil {
		panic("equipmentStoreMock.UpdateFunc: method is nil but equipmentStore.Update was just called")
	}
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *equipmentStoreMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("equipmentStoreMock.DeleteFunc: method is nil but equipmentStore.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *equipmentStoreMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	calls := mock.calls.Delete
	mock.lock.RUnlock()
	return calls
}
