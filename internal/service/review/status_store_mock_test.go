package review

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

var _ statusStore = &statusStoreMock{}

type statusStoreMock struct {
	GetReviewStatusFunc func(ctx context.Context, id uuid.UUID) (domain.ReviewStatus, error)
	SetReviewStatusFunc func(ctx context.Context, id uuid.UUID, status domain.ReviewStatus) error

	calls struct {
		GetReviewStatus []struct {
			ID uuid.UUID
		}
		SetReviewStatus []struct {
			ID     uuid.UUID
			Status domain.ReviewStatus
		}
	}
	lockGetReviewStatus sync.RWMutex
	lockSetReviewStatus sync.RWMutex
}

func (mock *statusStoreMock) GetReviewStatus(ctx context.Context, id uuid.UUID) (domain.ReviewStatus, error) {
	if mock.GetReviewStatusFunc == nil {
		panic("statusStoreMock.GetReviewStatusFunc: method is nil but statusStore.GetReviewStatus was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetReviewStatus.Lock()
	mock.calls.GetReviewStatus = append(mock.calls.GetReviewStatus, callInfo)
	mock.lockGetReviewStatus.Unlock()
	return mock.GetReviewStatusFunc(ctx, id)
}

func (mock *statusStoreMock) SetReviewStatus(ctx context.Context, id uuid.UUID, status domain.ReviewStatus) error {
	if mock.SetReviewStatusFunc == nil {
		panic("statusStoreMock.SetReviewStatusFunc: method is nil but statusStore.SetReviewStatus was just called")
	}
	callInfo := struct {
		ID     uuid.UUID
		Status domain.ReviewStatus
	}{ID: id, Status: status}
	mock.lockSetReviewStatus.Lock()
	mock.calls.SetReviewStatus = append(mock.calls.SetReviewStatus, callInfo)
	mock.lockSetReviewStatus.Unlock()
	return mock.SetReviewStatusFunc(ctx, id, status)
}

func (mock *statusStoreMock) SetReviewStatusCalls() []struct {
	ID     uuid.UUID
	Status domain.ReviewStatus
} {
	mock.lockSetReviewStatus.RLock()
	calls := mock.calls.SetReviewStatus
	mock.lockSetReviewStatus.RUnlock()
	return calls
}
