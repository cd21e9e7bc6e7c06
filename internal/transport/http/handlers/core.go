package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type CoreHandler struct {
	store *core.Store
}

func NewCoreHandler(store *core.Store) *CoreHandler {
	return &CoreHandler{store: store}
}

func (h *CoreHandler) Register(r chi.Router) {
	r.Get("/employees", h.listEmployees)
	r.Get("/employees/{id}", h.getEmployee)
	r.Get("/departments", h.listDepartments)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(auth.RoleHR))
		r.Post("/employees", h.createEmployee)
		r.Put("/employees/{id}", h.updateEmployee)
	})
}

func (h *CoreHandler) listEmployees(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	employees, err := h.store.ListEmployees(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal_error", "could not list employees", requestID)
		return
	}

	page := shared.ParsePagination(r, 50, 200)
	api.Success(w, paginate(employees, page), requestID)
}

func (h *CoreHandler) getEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	emp, err := h.store.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *CoreHandler) listDepartments(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	departments, err := h.store.ListDepartments(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal_error", "could not list departments", requestID)
		return
	}
	api.Success(w, departments, requestID)
}

type employeePayload struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Email      string `json:"email"`
	Status     string `json:"status"`
}

func (h *CoreHandler) createEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid json body", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Required("department", payload.Department, "department is required")
	v.Required("email", payload.Email, "email is required")
	v.Enum("status", payload.Status, []string{core.EmployeeStatusActive, core.EmployeeStatusInactive}, "unknown status")
	if v.Reject(w, requestID) {
		return
	}

	if _, err := h.store.EnsureDepartment(r.Context(), payload.Department); err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal_error", "could not persist department", requestID)
		return
	}

	id, err := h.store.CreateEmployee(r.Context(), core.Employee{
		Name:       payload.Name,
		Department: payload.Department,
		Position:   payload.Position,
		Email:      payload.Email,
		Status:     payload.Status,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal_error", "could not create employee", requestID)
		return
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *CoreHandler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid json body", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Required("department", payload.Department, "department is required")
	v.Enum("status", payload.Status, []string{core.EmployeeStatusActive, core.EmployeeStatusInactive}, "unknown status")
	if v.Reject(w, requestID) {
		return
	}

	if _, err := h.store.EnsureDepartment(r.Context(), payload.Department); err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal_error", "could not persist department", requestID)
		return
	}

	err := h.store.UpdateEmployee(r.Context(), chi.URLParam(r, "id"), core.Employee{
		Name:       payload.Name,
		Department: payload.Department,
		Position:   payload.Position,
		Email:      payload.Email,
		Status:     payload.Status,
	})
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
		return
	}
	api.Success(w, map[string]string{"id": chi.URLParam(r, "id")}, requestID)
}

func paginate[T any](items []T, page shared.Pagination) []T {
	if page.Offset >= len(items) {
		return []T{}
	}
	end := page.Offset + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[page.Offset:end]
}
