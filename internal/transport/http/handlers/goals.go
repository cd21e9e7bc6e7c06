package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/goals"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type GoalsHandler struct {
	store *goals.Store
}

func NewGoalsHandler(store *goals.Store) *GoalsHandler {
	return &GoalsHandler{store: store}
}

func (h *GoalsHandler) Register(r chi.Router) {
	r.Get("/goals", h.list)
	r.Post("/goals", h.create)
	r.Put("/goals/{id}", h.update)
	r.Delete("/goals/{id}", h.delete)
}

func (h *GoalsHandler) list(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var (
		items []goals.Goal
		err   error
	)
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		items, err = h.store.ListByEmployee(r.Context(), employeeID)
	} else {
		items, err = h.store.List(r.Context())
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal_error", "could not list goals", requestID)
		return
	}

	page := shared.ParsePagination(r, 50, 200)
	api.Success(w, paginate(items, page), requestID)
}

type goalPayload struct {
	EmployeeID  string `json:"employeeId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`
	TargetDate  string `json:"targetDate"`
	Notes       string `json:"notes"`
}

func (h *GoalsHandler) decode(w http.ResponseWriter, r *http.Request, requestID string) (goals.Goal, bool) {
	var payload goalPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid json body", requestID)
		return goals.Goal{}, false
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employeeId is required")
	v.Required("title", payload.Title, "title is required")
	v.Enum("status", payload.Status, goals.Statuses(), "unknown status")
	if payload.Progress < 0 || payload.Progress > 100 {
		v.Add("progress", "must be between 0 and 100")
	}

	var target *time.Time
	if payload.TargetDate != "" {
		if parsed, ok := v.Date("targetDate", payload.TargetDate); ok {
			target = &parsed
		}
	}
	if v.Reject(w, requestID) {
		return goals.Goal{}, false
	}

	return goals.Goal{
		EmployeeID:  payload.EmployeeID,
		Title:       payload.Title,
		Description: payload.Description,
		Category:    payload.Category,
		Status:      payload.Status,
		Progress:    payload.Progress,
		TargetDate:  target,
		Notes:       payload.Notes,
	}, true
}

func (h *GoalsHandler) create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	goal, ok := h.decode(w, r, requestID)
	if !ok {
		return
	}

	id, err := h.store.Create(r.Context(), goal)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal_error", "could not create goal", requestID)
		return
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *GoalsHandler) update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	goal, ok := h.decode(w, r, requestID)
	if !ok {
		return
	}

	if err := h.store.Update(r.Context(), chi.URLParam(r, "id"), goal); err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "goal not found", requestID)
		return
	}
	api.Success(w, map[string]string{"id": chi.URLParam(r, "id")}, requestID)
}

func (h *GoalsHandler) delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := h.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "goal not found", requestID)
		return
	}
	api.Success(w, map[string]string{"id": chi.URLParam(r, "id")}, requestID)
}
