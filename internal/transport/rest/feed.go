package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// feedService defines the minimal interface needed by FeedHandler.
type feedService interface {
	Feed(ctx context.Context) ([]domain.FeedItem, error)
}

// feedSubscriber delivers refresh signals for the SSE stream.
type feedSubscriber interface {
	Subscribe() (<-chan struct{}, func())
}

// FeedHandler serves the aggregated activity feed.
type FeedHandler struct {
	svc    feedService
	events feedSubscriber
	log    *slog.Logger
}

// NewFeedHandler creates a FeedHandler.
func NewFeedHandler(svc feedService, events feedSubscriber, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{
		svc:    svc,
		events: events,
		log:    logger.With("handler", "feed"),
	}
}

type detailFieldResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type feedItemResponse struct {
	ID           string                `json:"id"`
	Collection   string                `json:"collection"`
	CreatedAt    time.Time             `json:"createdAt"`
	SubjectName  string                `json:"subjectName"`
	SubjectEmail string                `json:"subjectEmail"`
	Category     string                `json:"category"`
	Summary      string                `json:"summary"`
	Detail       []detailFieldResponse `json:"detail"`
	ReviewStatus string                `json:"reviewStatus"`
}

type feedResponse struct {
	Items []feedItemResponse `json:"items"`
}

// Feed handles GET /api/v1/feed.
func (h *FeedHandler) Feed(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Feed(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := feedResponse{Items: make([]feedItemResponse, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, toFeedItemResponse(item))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Events handles GET /api/v1/feed/events. It streams a server-sent "refresh"
// event whenever the feed cache is invalidated, until the client disconnects.
func (h *FeedHandler) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	signals, cancel := h.events.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// Initial event so clients render immediately after connecting.
	fmt.Fprint(w, "event: refresh\ndata: {}\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-signals:
			fmt.Fprint(w, "event: refresh\ndata: {}\n\n")
			flusher.Flush()
		}
	}
}

func (h *FeedHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var sfe *domain.SourceFetchError
	switch {
	case errors.As(err, &sfe):
		h.log.ErrorContext(r.Context(), "feed source failed",
			slog.String("collection", sfe.Collection),
			slog.String("error", sfe.Err.Error()),
		)
		writeError(w, http.StatusBadGateway, "feed temporarily unavailable")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toFeedItemResponse(item domain.FeedItem) feedItemResponse {
	detail := make([]detailFieldResponse, 0, len(item.Detail))
	for _, f := range item.Detail {
		detail = append(detail, detailFieldResponse{Label: f.Label, Value: f.Value})
	}
	return feedItemResponse{
		ID:           item.ID.String(),
		Collection:   item.SourceCollection,
		CreatedAt:    item.CreatedAt,
		SubjectName:  item.SubjectName,
		SubjectEmail: item.SubjectEmail,
		Category:     string(item.Category),
		Summary:      item.Summary,
		Detail:       detail,
		ReviewStatus: item.ReviewStatus.String(),
	}
}
