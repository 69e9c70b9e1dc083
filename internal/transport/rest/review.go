package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// reviewService defines the minimal interface needed by ReviewHandler.
type reviewService interface {
	Advance(ctx context.Context, collection string, id uuid.UUID) (domain.ReviewStatus, error)
}

// ReviewHandler serves the review workflow endpoint.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

type advanceResponse struct {
	ID           string `json:"id"`
	Collection   string `json:"collection"`
	ReviewStatus string `json:"reviewStatus"`
}

// Advance handles POST /api/v1/reviews/{collection}/{id}/advance.
func (h *ReviewHandler) Advance(w http.ResponseWriter, r *http.Request) {
	collection := r.PathValue("collection")

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	status, err := h.svc.Advance(r.Context(), collection, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, advanceResponse{
		ID:           id.String(),
		Collection:   collection,
		ReviewStatus: status.String(),
	})
}

func (h *ReviewHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownCollection):
		writeError(w, http.StatusNotFound, "unknown collection")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
