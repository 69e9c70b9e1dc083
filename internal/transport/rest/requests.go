package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
	"github.com/opsdesk/opsdesk-backend/internal/service/requests"
)

const dateLayout = "2006-01-02"

// requestsService defines the minimal interface needed by RequestsHandler.
type requestsService interface {
	SubmitVacation(ctx context.Context, input requests.SubmitVacationInput) (*domain.VacationRequest, error)
	SubmitTravel(ctx context.Context, input requests.SubmitTravelInput) (*domain.TravelNotice, error)
	SubmitEquipment(ctx context.Context, input requests.SubmitEquipmentInput) (*domain.EquipmentRequest, error)

	UpdateVacation(ctx context.Context, id uuid.UUID, input requests.UpdateVacationInput) (*domain.VacationRequest, error)
	UpdateTravel(ctx context.Context, id uuid.UUID, input requests.UpdateTravelInput) (*domain.TravelNotice, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, input requests.UpdateEquipmentInput) (*domain.EquipmentRequest, error)

	ListVacation(ctx context.Context, input requests.ListInput) (*requests.VacationPage, error)
	ListTravel(ctx context.Context, input requests.ListInput) (*requests.TravelPage, error)
	ListEquipment(ctx context.Context, input requests.ListInput) (*requests.EquipmentPage, error)

	GetVacation(ctx context.Context, id uuid.UUID) (*domain.VacationRequest, error)
	GetTravel(ctx context.Context, id uuid.UUID) (*domain.TravelNotice, error)
	GetEquipment(ctx context.Context, id uuid.UUID) (*domain.EquipmentRequest, error)

	DeleteVacation(ctx context.Context, id uuid.UUID) error
	DeleteTravel(ctx context.Context, id uuid.UUID) error
	DeleteEquipment(ctx context.Context, id uuid.UUID) error
}

// RequestsHandler serves CRUD endpoints for the three record collections.
type RequestsHandler struct {
	svc requestsService
	log *slog.Logger
}

// NewRequestsHandler creates a RequestsHandler.
func NewRequestsHandler(svc requestsService, logger *slog.Logger) *RequestsHandler {
	return &RequestsHandler{svc: svc, log: logger.With("handler", "requests")}
}

// ---------------------------------------------------------------------------
// Request / response bodies
// ---------------------------------------------------------------------------

type submitVacationRequest struct {
	EmployeeName  string  `json:"employeeName"`
	EmployeeEmail string  `json:"employeeEmail"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	Comment       *string `json:"comment"`
}

type submitTravelRequest struct {
	EmployeeName  string  `json:"employeeName"`
	EmployeeEmail string  `json:"employeeEmail"`
	Destination   string  `json:"destination"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	Purpose       *string `json:"purpose"`
}

type submitEquipmentRequest struct {
	EmployeeName  string  `json:"employeeName"`
	EmployeeEmail string  `json:"employeeEmail"`
	Item          string  `json:"item"`
	Justification *string `json:"justification"`
}

type updateVacationRequest struct {
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Comment   *string `json:"comment"`
}

type updateTravelRequest struct {
	Destination *string `json:"destination"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Purpose     *string `json:"purpose"`
}

type updateEquipmentRequest struct {
	Item          *string `json:"item"`
	Justification *string `json:"justification"`
}

type vacationResponse struct {
	ID            string    `json:"id"`
	EmployeeName  string    `json:"employeeName"`
	EmployeeEmail string    `json:"employeeEmail"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	Comment       *string   `json:"comment,omitempty"`
	ReviewStatus  string    `json:"reviewStatus"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type travelResponse struct {
	ID            string    `json:"id"`
	EmployeeName  string    `json:"employeeName"`
	EmployeeEmail string    `json:"employeeEmail"`
	Destination   string    `json:"destination"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	Purpose       *string   `json:"purpose,omitempty"`
	ReviewStatus  string    `json:"reviewStatus"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type equipmentResponse struct {
	ID            string    `json:"id"`
	EmployeeName  string    `json:"employeeName"`
	EmployeeEmail string    `json:"employeeEmail"`
	Item          string    `json:"item"`
	Justification *string   `json:"justification,omitempty"`
	ReviewStatus  string    `json:"reviewStatus"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type listResponse struct {
	Items any `json:"items"`
	Total int `json:"total"`
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// Create handles POST /api/v1/requests/{collection}.
func (h *RequestsHandler) Create(w http.ResponseWriter, r *http.Request) {
	switch r.PathValue("collection") {
	case domain.CollectionVacation:
		h.createVacation(w, r)
	case domain.CollectionTravel:
		h.createTravel(w, r)
	case domain.CollectionEquipment:
		h.createEquipment(w, r)
	default:
		writeError(w, http.StatusNotFound, "unknown collection")
	}
}

// Update handles PATCH /api/v1/requests/{collection}/{id}.
func (h *RequestsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	switch r.PathValue("collection") {
	case domain.CollectionVacation:
		h.updateVacation(w, r, id)
	case domain.CollectionTravel:
		h.updateTravel(w, r, id)
	case domain.CollectionEquipment:
		h.updateEquipment(w, r, id)
	default:
		writeError(w, http.StatusNotFound, "unknown collection")
	}
}

// List handles GET /api/v1/requests/{collection}.
func (h *RequestsHandler) List(w http.ResponseWriter, r *http.Request) {
	input := requests.ListInput{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}

	switch r.PathValue("collection") {
	case domain.CollectionVacation:
		page, err := h.svc.ListVacation(r.Context(), input)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		items := make([]vacationResponse, 0, len(page.Items))
		for _, req := range page.Items {
			items = append(items, toVacationResponse(req))
		}
		writeJSON(w, http.StatusOK, listResponse{Items: items, Total: page.Total})
	case domain.CollectionTravel:
		page, err := h.svc.ListTravel(r.Context(), input)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		items := make([]travelResponse, 0, len(page.Items))
		for _, notice := range page.Items {
			items = append(items, toTravelResponse(notice))
		}
		writeJSON(w, http.StatusOK, listResponse{Items: items, Total: page.Total})
	case domain.CollectionEquipment:
		page, err := h.svc.ListEquipment(r.Context(), input)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		items := make([]equipmentResponse, 0, len(page.Items))
		for _, req := range page.Items {
			items = append(items, toEquipmentResponse(req))
		}
		writeJSON(w, http.StatusOK, listResponse{Items: items, Total: page.Total})
	default:
		writeError(w, http.StatusNotFound, "unknown collection")
	}
}

// Get handles GET /api/v1/requests/{collection}/{id}.
func (h *RequestsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	switch r.PathValue("collection") {
	case domain.CollectionVacation:
		req, err := h.svc.GetVacation(r.Context(), id)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toVacationResponse(req))
	case domain.CollectionTravel:
		notice, err := h.svc.GetTravel(r.Context(), id)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toTravelResponse(notice))
	case domain.CollectionEquipment:
		req, err := h.svc.GetEquipment(r.Context(), id)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toEquipmentResponse(req))
	default:
		writeError(w, http.StatusNotFound, "unknown collection")
	}
}

// Delete handles DELETE /api/v1/requests/{collection}/{id}.
func (h *RequestsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var err error
	switch r.PathValue("collection") {
	case domain.CollectionVacation:
		err = h.svc.DeleteVacation(r.Context(), id)
	case domain.CollectionTravel:
		err = h.svc.DeleteTravel(r.Context(), id)
	case domain.CollectionEquipment:
		err = h.svc.DeleteEquipment(r.Context(), id)
	default:
		writeError(w, http.StatusNotFound, "unknown collection")
		return
	}
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Per-collection bodies
// ---------------------------------------------------------------------------

func (h *RequestsHandler) createVacation(w http.ResponseWriter, r *http.Request) {
	var body submitVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	start, ok := parseDate(w, body.StartDate, "startDate")
	if !ok {
		return
	}
	end, ok := parseDate(w, body.EndDate, "endDate")
	if !ok {
		return
	}

	req, err := h.svc.SubmitVacation(r.Context(), requests.SubmitVacationInput{
		EmployeeName:  body.EmployeeName,
		EmployeeEmail: body.EmployeeEmail,
		StartDate:     start,
		EndDate:       end,
		Comment:       body.Comment,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toVacationResponse(req))
}

func (h *RequestsHandler) createTravel(w http.ResponseWriter, r *http.Request) {
	var body submitTravelRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	start, ok := parseDate(w, body.StartDate, "startDate")
	if !ok {
		return
	}
	end, ok := parseDate(w, body.EndDate, "endDate")
	if !ok {
		return
	}

	notice, err := h.svc.SubmitTravel(r.Context(), requests.SubmitTravelInput{
		EmployeeName:  body.EmployeeName,
		EmployeeEmail: body.EmployeeEmail,
		Destination:   body.Destination,
		StartDate:     start,
		EndDate:       end,
		Purpose:       body.Purpose,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTravelResponse(notice))
}

func (h *RequestsHandler) createEquipment(w http.ResponseWriter, r *http.Request) {
	var body submitEquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.svc.SubmitEquipment(r.Context(), requests.SubmitEquipmentInput{
		EmployeeName:  body.EmployeeName,
		EmployeeEmail: body.EmployeeEmail,
		Item:          body.Item,
		Justification: body.Justification,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEquipmentResponse(req))
}

func (h *RequestsHandler) updateVacation(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var body updateVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	start, ok := parseOptionalDate(w, body.StartDate, "startDate")
	if !ok {
		return
	}
	end, ok := parseOptionalDate(w, body.EndDate, "endDate")
	if !ok {
		return
	}

	req, err := h.svc.UpdateVacation(r.Context(), id, requests.UpdateVacationInput{
		StartDate: start,
		EndDate:   end,
		Comment:   body.Comment,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toVacationResponse(req))
}

func (h *RequestsHandler) updateTravel(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var body updateTravelRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	start, ok := parseOptionalDate(w, body.StartDate, "startDate")
	if !ok {
		return
	}
	end, ok := parseOptionalDate(w, body.EndDate, "endDate")
	if !ok {
		return
	}

	notice, err := h.svc.UpdateTravel(r.Context(), id, requests.UpdateTravelInput{
		Destination: body.Destination,
		StartDate:   start,
		EndDate:     end,
		Purpose:     body.Purpose,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTravelResponse(notice))
}

func (h *RequestsHandler) updateEquipment(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var body updateEquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.svc.UpdateEquipment(r.Context(), id, requests.UpdateEquipmentInput{
		Item:          body.Item,
		Justification: body.Justification,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEquipmentResponse(req))
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (h *RequestsHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "conflict")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func parseDate(w http.ResponseWriter, value, field string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		writeError(w, http.StatusBadRequest, field+" must be formatted as YYYY-MM-DD")
		return time.Time{}, false
	}
	return t, true
}

func parseOptionalDate(w http.ResponseWriter, value *string, field string) (*time.Time, bool) {
	if value == nil {
		return nil, true
	}
	t, ok := parseDate(w, *value, field)
	if !ok {
		return nil, false
	}
	return &t, true
}

func queryInt(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func toVacationResponse(req *domain.VacationRequest) vacationResponse {
	return vacationResponse{
		ID:            req.ID.String(),
		EmployeeName:  req.EmployeeName,
		EmployeeEmail: req.EmployeeEmail,
		StartDate:     req.StartDate.Format(dateLayout),
		EndDate:       req.EndDate.Format(dateLayout),
		Comment:       req.Comment,
		ReviewStatus:  req.ReviewStatus.String(),
		CreatedAt:     req.CreatedAt,
		UpdatedAt:     req.UpdatedAt,
	}
}

func toTravelResponse(notice *domain.TravelNotice) travelResponse {
	return travelResponse{
		ID:            notice.ID.String(),
		EmployeeName:  notice.EmployeeName,
		EmployeeEmail: notice.EmployeeEmail,
		Destination:   notice.Destination,
		StartDate:     notice.StartDate.Format(dateLayout),
		EndDate:       notice.EndDate.Format(dateLayout),
		Purpose:       notice.Purpose,
		ReviewStatus:  notice.ReviewStatus.String(),
		CreatedAt:     notice.CreatedAt,
		UpdatedAt:     notice.UpdatedAt,
	}
}

func toEquipmentResponse(req *domain.EquipmentRequest) equipmentResponse {
	return equipmentResponse{
		ID:            req.ID.String(),
		EmployeeName:  req.EmployeeName,
		EmployeeEmail: req.EmployeeEmail,
		Item:          req.Item,
		Justification: req.Justification,
		ReviewStatus:  req.ReviewStatus.String(),
		CreatedAt:     req.CreatedAt,
		UpdatedAt:     req.UpdatedAt,
	}
}
