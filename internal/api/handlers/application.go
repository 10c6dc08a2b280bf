package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rgalvan/jobtracker-api/internal/api/middleware"
	"github.com/rgalvan/jobtracker-api/internal/api/respond"
	"github.com/rgalvan/jobtracker-api/internal/domain"
	"github.com/rgalvan/jobtracker-api/internal/service"
)

const dateLayout = "2006-01-02"

type ApplicationHandler struct {
	appService *service.ApplicationService
}

func NewApplicationHandler(appService *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appService: appService}
}

// CreateApplicationRequest has no owner field on purpose: the owner is
// always the authenticated caller.
type CreateApplicationRequest struct {
	CompanyName string `json:"companyName" validate:"required,max=100"`
	JobTitle    string `json:"jobTitle" validate:"required,max=100"`
	Status      string `json:"status" validate:"omitempty,oneof=APPLIED INTERVIEWING OFFERED REJECTED"`
	DateApplied string `json:"dateApplied" validate:"omitempty,datetime=2006-01-02"`
	Notes       string `json:"notes" validate:"max=500"`
}

// UpdateApplicationRequest is a partial update: nil fields leave the
// stored value untouched.
type UpdateApplicationRequest struct {
	CompanyName *string `json:"companyName" validate:"omitempty,max=100"`
	JobTitle    *string `json:"jobTitle" validate:"omitempty,max=100"`
	Status      *string `json:"status" validate:"omitempty,oneof=APPLIED INTERVIEWING OFFERED REJECTED"`
	DateApplied *string `json:"dateApplied" validate:"omitempty,datetime=2006-01-02"`
	Notes       *string `json:"notes" validate:"omitempty,max=500"`
}

// ApplicationResponse is the outward record view. The owner reference
// is never serialized.
type ApplicationResponse struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	JobTitle    string `json:"jobTitle"`
	Status      string `json:"status"`
	DateApplied string `json:"dateApplied"`
	Notes       string `json:"notes"`
}

func toApplicationResponse(app *domain.JobApplication) ApplicationResponse {
	return ApplicationResponse{
		ID:          app.ID.String(),
		CompanyName: app.CompanyName,
		JobTitle:    app.JobTitle,
		Status:      string(app.Status),
		DateApplied: time.Time(app.DateApplied).Format(dateLayout),
		Notes:       app.Notes,
	}
}

func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetCurrentUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	apps, err := h.appService.ListOwned(r.Context(), user.ID)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	resp := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		resp = append(resp, toApplicationResponse(app))
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetCurrentUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.DomainError(w, domain.ErrApplicationNotFound)
		return
	}

	app, err := h.appService.GetOwned(r.Context(), user.ID, id)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toApplicationResponse(app))
}

func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetCurrentUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !validateRequest(w, req) {
		return
	}

	input := service.CreateApplicationInput{
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		Status:      domain.ApplicationStatus(req.Status),
		Notes:       req.Notes,
	}
	if req.DateApplied != "" {
		date, err := time.Parse(dateLayout, req.DateApplied)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "dateApplied must be a date in YYYY-MM-DD format")
			return
		}
		input.DateApplied = &date
	}

	app, err := h.appService.Create(r.Context(), user.ID, input)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toApplicationResponse(app))
}

func (h *ApplicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetCurrentUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.DomainError(w, domain.ErrApplicationNotFound)
		return
	}

	var req UpdateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !validateRequest(w, req) {
		return
	}

	update := domain.ApplicationUpdate{
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		Notes:       req.Notes,
	}
	if req.Status != nil {
		status := domain.ApplicationStatus(*req.Status)
		update.Status = &status
	}
	if req.DateApplied != nil {
		date, err := time.Parse(dateLayout, *req.DateApplied)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "dateApplied must be a date in YYYY-MM-DD format")
			return
		}
		update.DateApplied = &date
	}

	app, err := h.appService.Update(r.Context(), user.ID, id, update)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toApplicationResponse(app))
}

func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetCurrentUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.DomainError(w, domain.ErrApplicationNotFound)
		return
	}

	if err := h.appService.Delete(r.Context(), user.ID, id); err != nil {
		respond.DomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
