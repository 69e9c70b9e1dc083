package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/internal/adapter/postgres"
	"github.com/opsdesk/opsdesk-backend/internal/adapter/postgres/equipment"
	"github.com/opsdesk/opsdesk-backend/internal/adapter/postgres/travel"
	"github.com/opsdesk/opsdesk-backend/internal/adapter/postgres/vacation"
	"github.com/opsdesk/opsdesk-backend/internal/auth"
	"github.com/opsdesk/opsdesk-backend/internal/config"
	"github.com/opsdesk/opsdesk-backend/internal/service/feed"
	"github.com/opsdesk/opsdesk-backend/internal/service/requests"
	"github.com/opsdesk/opsdesk-backend/internal/service/review"
	"github.com/opsdesk/opsdesk-backend/internal/transport/middleware"
	"github.com/opsdesk/opsdesk-backend/internal/transport/rest"
)

const writeRequestsPerMinute = 120

// Run is the application entry point. It loads configuration, wires the
// repositories and services, and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	vacationRepo := vacation.New(pool)
	travelRepo := travel.New(pool)
	equipmentRepo := equipment.New(pool)

	feedSvc := feed.NewService(logger, cfg.Feed.WindowLimit, cfg.Feed.CacheTTL,
		feed.NewVacationSource(vacationRepo),
		feed.NewTravelSource(travelRepo),
		feed.NewEquipmentSource(equipmentRepo),
	)

	listener := postgres.NewListener(pool, cfg.Feed.NotifyChannel)
	invalidator := feed.NewInvalidator(logger, feedSvc, listener, cfg.Feed.RefreshInterval)

	invCtx, invCancel := context.WithCancel(context.Background())
	defer invCancel()
	invDone := make(chan struct{})
	go func() {
		defer close(invDone)
		invalidator.Run(invCtx)
	}()

	reviewSvc := review.NewService(logger, vacationRepo, travelRepo, equipmentRepo, feedSvc)
	requestsSvc := requests.NewService(logger, vacationRepo, travelRepo, equipmentRepo, feedSvc)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
		Feed:     rest.NewFeedHandler(feedSvc, invalidator, logger),
		Review:   rest.NewReviewHandler(reviewSvc, logger),
		Requests: rest.NewRequestsHandler(requestsSvc, logger),
	}, rateLimiter.Limit(writeRequestsPerMinute))

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtValidator{jwtManager}),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		invCancel()
		<-invDone
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", slog.String("error", err.Error()))
	}

	invCancel()
	<-invDone

	logger.Info("stopped")
	return nil
}

// jwtValidator adapts the JWT manager to the auth middleware contract.
type jwtValidator struct {
	jwt *auth.JWTManager
}

func (v jwtValidator) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	return v.jwt.ValidateAccessToken(token)
}
