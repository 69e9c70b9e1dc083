package feed

import (
	"context"
	"sync"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

var _ Source = &sourceMock{}

type sourceMock struct {
	CollectionFunc func() string
	FetchFunc      func(ctx context.Context, limit int) ([]domain.FeedItem, error)

	calls struct {
		Collection []struct{}
		Fetch      []struct {
			Limit int
		}
	}
	lockCollection sync.RWMutex
	lockFetch      sync.RWMutex
}

func (mock *sourceMock) Collection() string {
	if mock.CollectionFunc == nil {
		panic("sourceMock.CollectionFunc: method is nil but Source.Collection was just called")
	}
	mock.lockCollection.Lock()
	mock.calls.Collection = append(mock.calls.Collection, struct{}{})
	mock.lockCollection.Unlock()
	return mock.CollectionFunc()
}

func (mock *sourceMock) Fetch(ctx context.Context, limit int) ([]domain.FeedItem, error) {
	if mock.FetchFunc == nil {
		panic("sourceMock.FetchFunc: method is nil but Source.Fetch was just called")
	}
	callInfo := struct{ Limit int }{Limit: limit}
	mock.lockFetch.Lock()
	mock.calls.Fetch = append(mock.calls.Fetch, callInfo)
	mock.lockFetch.Unlock()
	return mock.FetchFunc(ctx, limit)
}

func (mock *sourceMock) FetchCalls() []struct{ Limit int } {
	mock.lockFetch.RLock()
	calls := mock.calls.Fetch
	mock.lockFetch.RUnlock()
	return calls
}
