package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/tasks"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type TasksHandler struct {
	store *tasks.Store
}

func NewTasksHandler(store *tasks.Store) *TasksHandler {
	return &TasksHandler{store: store}
}

func (h *TasksHandler) Register(r chi.Router) {
	r.Get("/tasks", h.list)
	r.Post("/tasks", h.create)
	r.Put("/tasks/{id}", h.update)
	r.Delete("/tasks/{id}", h.delete)
}

func (h *TasksHandler) list(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var (
		items []tasks.Task
		err   error
	)
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		items, err = h.store.ListByEmployee(r.Context(), employeeID)
	} else {
		items, err = h.store.List(r.Context())
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal_error", "could not list tasks", requestID)
		return
	}

	page := shared.ParsePagination(r, 50, 200)
	api.Success(w, paginate(items, page), requestID)
}

type taskPayload struct {
	EmployeeID     string  `json:"employeeId"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Priority       string  `json:"priority"`
	Status         string  `json:"status"`
	DueDate        string  `json:"dueDate"`
	EstimatedHours float64 `json:"estimatedHours"`
	ActualHours    float64 `json:"actualHours"`
	QualityRating  float64 `json:"qualityRating"`
	Comments       string  `json:"comments"`
}

func (h *TasksHandler) decode(w http.ResponseWriter, r *http.Request, requestID string) (tasks.Task, bool) {
	var payload taskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid json body", requestID)
		return tasks.Task{}, false
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employeeId is required")
	v.Required("title", payload.Title, "title is required")
	v.Enum("priority", payload.Priority, tasks.Priorities(), "unknown priority")
	v.Enum("status", payload.Status, tasks.Statuses(), "unknown status")
	v.NonNegative("estimatedHours", payload.EstimatedHours)
	v.NonNegative("actualHours", payload.ActualHours)
	if payload.QualityRating < 0 || payload.QualityRating > 5 {
		v.Add("qualityRating", "must be between 0 and 5")
	}

	var due *time.Time
	if payload.DueDate != "" {
		if parsed, ok := v.Date("dueDate", payload.DueDate); ok {
			due = &parsed
		}
	}
	if v.Reject(w, requestID) {
		return tasks.Task{}, false
	}

	return tasks.Task{
		EmployeeID:     payload.EmployeeID,
		Title:          payload.Title,
		Description:    payload.Description,
		Priority:       payload.Priority,
		Status:         payload.Status,
		DueDate:        due,
		EstimatedHours: payload.EstimatedHours,
		ActualHours:    payload.ActualHours,
		QualityRating:  payload.QualityRating,
		Comments:       payload.Comments,
	}, true
}

func (h *TasksHandler) create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	task, ok := h.decode(w, r, requestID)
	if !ok {
		return
	}
	if user, authed := middleware.GetUser(r.Context()); authed {
		task.CreatedBy = user.UserID
	}

	id, err := h.store.Create(r.Context(), task)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal_error", "could not create task", requestID)
		return
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *TasksHandler) update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	task, ok := h.decode(w, r, requestID)
	if !ok {
		return
	}

	if err := h.store.Update(r.Context(), chi.URLParam(r, "id"), task); err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "task not found", requestID)
		return
	}
	api.Success(w, map[string]string{"id": chi.URLParam(r, "id")}, requestID)
}

func (h *TasksHandler) delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := h.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "task not found", requestID)
		return
	}
	api.Success(w, map[string]string{"id": chi.URLParam(r, "id")}, requestID)
}
