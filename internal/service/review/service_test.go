package review

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

type invalidatorMock struct {
	calls atomic.Int64
}

func (m *invalidatorMock) Invalidate() { m.calls.Add(1) }

func fixedStore(current domain.ReviewStatus) *statusStoreMock {
	return &statusStoreMock{
		GetReviewStatusFunc: func(ctx context.Context, id uuid.UUID) (domain.ReviewStatus, error) {
			return current, nil
		},
		SetReviewStatusFunc: func(ctx context.Context, id uuid.UUID, status domain.ReviewStatus) error {
			return nil
		},
	}
}

func newTestService(vacation, travel, equipment *statusStoreMock, feed *invalidatorMock) *Service {
	return NewService(slog.Default(), vacation, travel, equipment, feed)
}

func TestAdvance_Transitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current domain.ReviewStatus
		want    domain.ReviewStatus
	}{
		{"unreviewed to in_progress", domain.ReviewUnreviewed, domain.ReviewInProgress},
		{"in_progress to done", domain.ReviewInProgress, domain.ReviewDone},
		{"done wraps to unreviewed", domain.ReviewDone, domain.ReviewUnreviewed},
		{"unset counts as unreviewed", "", domain.ReviewInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := fixedStore(tt.current)
			feed := &invalidatorMock{}
			svc := newTestService(store, fixedStore(""), fixedStore(""), feed)

			id := uuid.New()
			got, err := svc.Advance(context.Background(), domain.CollectionVacation, id)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("status: got %q, want %q", got, tt.want)
			}

			writes := store.SetReviewStatusCalls()
			if len(writes) != 1 {
				t.Fatalf("writes: got %d, want 1", len(writes))
			}
			if writes[0].ID != id || writes[0].Status != tt.want {
				t.Errorf("write: got (%s, %q), want (%s, %q)", writes[0].ID, writes[0].Status, id, tt.want)
			}
			if feed.calls.Load() != 1 {
				t.Errorf("feed invalidations: got %d, want 1", feed.calls.Load())
			}
		})
	}
}

func TestAdvance_RoutesToCollectionStore(t *testing.T) {
	t.Parallel()

	vacation := fixedStore(domain.ReviewUnreviewed)
	travel := fixedStore(domain.ReviewUnreviewed)
	equipment := fixedStore(domain.ReviewUnreviewed)
	svc := newTestService(vacation, travel, equipment, &invalidatorMock{})

	if _, err := svc.Advance(context.Background(), domain.CollectionTravel, uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(travel.SetReviewStatusCalls()) != 1 {
		t.Error("travel store was not written")
	}
	if len(vacation.SetReviewStatusCalls()) != 0 || len(equipment.SetReviewStatusCalls()) != 0 {
		t.Error("advance touched the wrong collection")
	}
}

func TestAdvance_UnknownCollection(t *testing.T) {
	t.Parallel()

	svc := newTestService(fixedStore(""), fixedStore(""), fixedStore(""), &invalidatorMock{})

	_, err := svc.Advance(context.Background(), "payroll", uuid.New())
	if !errors.Is(err, domain.ErrUnknownCollection) {
		t.Fatalf("expected ErrUnknownCollection, got: %v", err)
	}
}

func TestAdvance_NilID(t *testing.T) {
	t.Parallel()

	svc := newTestService(fixedStore(""), fixedStore(""), fixedStore(""), &invalidatorMock{})

	_, err := svc.Advance(context.Background(), domain.CollectionVacation, uuid.Nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got: %v", err)
	}
}

func TestAdvance_RecordNotFound(t *testing.T) {
	t.Parallel()

	store := &statusStoreMock{
		GetReviewStatusFunc: func(ctx context.Context, id uuid.UUID) (domain.ReviewStatus, error) {
			return "", domain.ErrNotFound
		},
	}
	feed := &invalidatorMock{}
	svc := newTestService(store, fixedStore(""), fixedStore(""), feed)

	_, err := svc.Advance(context.Background(), domain.CollectionVacation, uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if feed.calls.Load() != 0 {
		t.Error("failed advance must not invalidate the feed")
	}
}

func TestAdvance_WriteFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	store := &statusStoreMock{
		GetReviewStatusFunc: func(ctx context.Context, id uuid.UUID) (domain.ReviewStatus, error) {
			return domain.ReviewInProgress, nil
		},
		SetReviewStatusFunc: func(ctx context.Context, id uuid.UUID, status domain.ReviewStatus) error {
			return cause
		},
	}
	feed := &invalidatorMock{}
	svc := newTestService(store, fixedStore(""), fixedStore(""), feed)

	_, err := svc.Advance(context.Background(), domain.CollectionVacation, uuid.New())
	if !errors.Is(err, domain.ErrWriteFailed) {
		t.Fatalf("expected ErrWriteFailed, got: %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("underlying cause should be preserved")
	}
	if feed.calls.Load() != 0 {
		t.Error("failed write must not invalidate the feed")
	}
}

func TestAdvance_WriteRaceVanishedRow(t *testing.T) {
	t.Parallel()

	store := &statusStoreMock{
		GetReviewStatusFunc: func(ctx context.Context, id uuid.UUID) (domain.ReviewStatus, error) {
			return domain.ReviewDone, nil
		},
		SetReviewStatusFunc: func(ctx context.Context, id uuid.UUID, status domain.ReviewStatus) error {
			return domain.ErrNotFound
		},
	}
	svc := newTestService(store, fixedStore(""), fixedStore(""), &invalidatorMock{})

	// The row was deleted between read and write: both the write failure and
	// the not-found cause stay matchable.
	_, err := svc.Advance(context.Background(), domain.CollectionVacation, uuid.New())
	if !errors.Is(err, domain.ErrWriteFailed) {
		t.Fatalf("expected ErrWriteFailed, got: %v", err)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound to be preserved, got: %v", err)
	}
}
