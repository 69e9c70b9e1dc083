package rest

import (
	"net/http"

	"github.com/opsdesk/opsdesk-backend/internal/transport/middleware"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Feed     *FeedHandler
	Review   *ReviewHandler
	Requests *RequestsHandler
}

// NewRouter builds the HTTP route table. writeLimit is applied to mutating
// endpoints only; pass nil to disable rate limiting (tests).
func NewRouter(h Handlers, writeLimit middleware.Middleware) http.Handler {
	if writeLimit == nil {
		writeLimit = func(next http.Handler) http.Handler { return next }
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	mux.HandleFunc("GET /api/v1/feed", h.Feed.Feed)
	mux.HandleFunc("GET /api/v1/feed/events", h.Feed.Events)

	mux.Handle("POST /api/v1/reviews/{collection}/{id}/advance",
		writeLimit(http.HandlerFunc(h.Review.Advance)))

	mux.HandleFunc("GET /api/v1/requests/{collection}", h.Requests.List)
	mux.HandleFunc("GET /api/v1/requests/{collection}/{id}", h.Requests.Get)
	mux.Handle("POST /api/v1/requests/{collection}",
		writeLimit(http.HandlerFunc(h.Requests.Create)))
	mux.Handle("PATCH /api/v1/requests/{collection}/{id}",
		writeLimit(http.HandlerFunc(h.Requests.Update)))
	mux.Handle("DELETE /api/v1/requests/{collection}/{id}",
		writeLimit(http.HandlerFunc(h.Requests.Delete)))

	return mux
}
