// Command cleanup physically removes done records older than the configured
// retention period from all three collections. It is intended to be invoked
// by an external cron job, not as an in-process goroutine.
//
// The three purges run in a single transaction so a failure leaves every
// collection untouched.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/opsdesk/opsdesk-backend/internal/adapter/postgres"
	"github.com/opsdesk/opsdesk-backend/internal/adapter/postgres/equipment"
	"github.com/opsdesk/opsdesk-backend/internal/adapter/postgres/travel"
	"github.com/opsdesk/opsdesk-backend/internal/adapter/postgres/vacation"
	"github.com/opsdesk/opsdesk-backend/internal/app"
	"github.com/opsdesk/opsdesk-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	vacationRepo := vacation.New(pool)
	travelRepo := travel.New(pool)
	equipmentRepo := equipment.New(pool)
	txManager := postgres.NewTxManager(pool)

	threshold := time.Now().AddDate(0, 0, -cfg.Cleanup.RetentionDays)

	var vacationDeleted, travelDeleted, equipmentDeleted int64
	err = txManager.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		if vacationDeleted, err = vacationRepo.HardDeleteDoneBefore(ctx, threshold); err != nil {
			return err
		}
		if travelDeleted, err = travelRepo.HardDeleteDoneBefore(ctx, threshold); err != nil {
			return err
		}
		equipmentDeleted, err = equipmentRepo.HardDeleteDoneBefore(ctx, threshold)
		return err
	})
	if err != nil {
		logger.Error("purge failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("purge completed",
		slog.Int64("vacation_deleted", vacationDeleted),
		slog.Int64("travel_deleted", travelDeleted),
		slog.Int64("equipment_deleted", equipmentDeleted),
		slog.Time("threshold", threshold),
	)
}
