package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/timesheet"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type TimesheetHandler struct {
	store *timesheet.Store
}

func NewTimesheetHandler(store *timesheet.Store) *TimesheetHandler {
	return &TimesheetHandler{store: store}
}

func (h *TimesheetHandler) Register(r chi.Router) {
	r.Get("/time-entries", h.list)
	r.Post("/time-entries", h.create)
	r.Delete("/time-entries/{id}", h.delete)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(auth.RoleManager, auth.RoleHR))
		r.Patch("/time-entries/{id}/status", h.setStatus)
	})
}

func (h *TimesheetHandler) list(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	query := r.URL.Query()

	start, end, ok := parseRange(w, query.Get("start_date"), query.Get("end_date"), requestID)
	if !ok {
		return
	}

	var (
		entries []timesheet.Entry
		err     error
	)
	if employeeID := query.Get("employee_id"); employeeID != "" {
		entries, err = h.store.ListByEmployee(r.Context(), employeeID, start, end)
	} else {
		entries, err = h.store.ListRange(r.Context(), start, end)
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal_error", "could not list time entries", requestID)
		return
	}
	api.Success(w, entries, requestID)
}

type timeEntryPayload struct {
	EmployeeID string  `json:"employeeId"`
	Date       string  `json:"date"`
	ClockIn    string  `json:"clockIn"`
	ClockOut   string  `json:"clockOut"`
	Hours      float64 `json:"hours"`
	HourType   string  `json:"hourType"`
	Notes      string  `json:"notes"`
}

func (h *TimesheetHandler) create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload timeEntryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid json body", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employeeId is required")
	date, _ := v.Date("date", payload.Date)
	v.NonNegative("hours", payload.Hours)
	v.Enum("hourType", payload.HourType, timesheet.HourTypes(), "unknown hour type")
	if v.Reject(w, requestID) {
		return
	}

	id, err := h.store.Create(r.Context(), timesheet.Entry{
		EmployeeID: payload.EmployeeID,
		Date:       date,
		ClockIn:    payload.ClockIn,
		ClockOut:   payload.ClockOut,
		Hours:      payload.Hours,
		HourType:   payload.HourType,
		Notes:      payload.Notes,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal_error", "could not create time entry", requestID)
		return
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *TimesheetHandler) setStatus(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid json body", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("status", payload.Status, "status is required")
	v.Enum("status", payload.Status, timesheet.Statuses(), "unknown status")
	if v.Reject(w, requestID) {
		return
	}

	if err := h.store.SetStatus(r.Context(), chi.URLParam(r, "id"), payload.Status); err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "time entry not found", requestID)
		return
	}
	api.Success(w, map[string]string{"id": chi.URLParam(r, "id"), "status": payload.Status}, requestID)
}

func (h *TimesheetHandler) delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := h.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "time entry not found", requestID)
		return
	}
	api.Success(w, map[string]string{"id": chi.URLParam(r, "id")}, requestID)
}

// parseRange applies the default reporting window (trailing 30 days) when the
// query omits dates, and rejects inverted ranges.
func parseRange(w http.ResponseWriter, startRaw, endRaw, requestID string) (time.Time, time.Time, bool) {
	v := shared.NewValidator()

	var start, end time.Time
	if endRaw == "" {
		end = time.Now().Truncate(24 * time.Hour)
	} else {
		end, _ = v.Date("end_date", endRaw)
	}
	if startRaw == "" {
		start = end.AddDate(0, 0, -30)
	} else {
		start, _ = v.Date("start_date", startRaw)
	}
	v.DateOrder("start_date", start, "end_date", end)
	if v.Reject(w, requestID) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
