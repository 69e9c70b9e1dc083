package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/opsdesk/opsdesk-backend/internal/adapter/postgres"
	"github.com/opsdesk/opsdesk-backend/internal/adapter/postgres/testhelper"
	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

func TestListener_ReceivesTableTriggerNotification(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	listener := postgres.NewListener(pool, "record_changes")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	payloads := make(chan string, 16)
	done := make(chan error, 1)
	go func() {
		done <- listener.Listen(ctx, func(payload string) {
			payloads <- payload
		})
	}()

	// Give the goroutine time to issue LISTEN before triggering a change.
	time.Sleep(500 * time.Millisecond)

	testhelper.SeedVacationRequest(t, pool, time.Now().UTC(), domain.ReviewUnreviewed)

	select {
	case payload := <-payloads:
		if payload != "vacation_requests" {
			t.Fatalf("payload: got %q, want %q", payload, "vacation_requests")
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for notification")
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Fatalf("Listen on cancel: got %v, want context.Canceled", err)
	}
}

func TestListener_CancelBeforeNotification(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	listener := postgres.NewListener(pool, "idle_channel")

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- listener.Listen(ctx, func(string) {})
	}()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("Listen: got %v, want context.Canceled", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Listen did not return after cancel")
	}
}
