package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/reports"
	"hrdesk/internal/platform/jobs"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
)

type ReportsHandler struct {
	service *reports.Service
	jobs    *jobs.Service
}

func NewReportsHandler(service *reports.Service, jobRunner *jobs.Service) *ReportsHandler {
	return &ReportsHandler{service: service, jobs: jobRunner}
}

func (h *ReportsHandler) Register(r chi.Router) {
	r.Get("/reports/summary", h.summary)
	r.Get("/reports/export/csv", h.export(h.service.ExportCSV))
	r.Get("/reports/export/excel", h.export(h.service.ExportWorkbook))
	r.Get("/reports/export/pdf", h.export(h.service.ExportPDF))
	r.Post("/reports/export/all", h.exportAll)
	r.Get("/reports/jobs", h.recentJobs)
}

func (h *ReportsHandler) summary(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	filters, ok := h.parseFilters(w, r, requestID)
	if !ok {
		return
	}
	api.Success(w, h.service.Summary(r.Context(), filters), requestID)
}

func (h *ReportsHandler) export(fn func(context.Context, reports.Filters) (reports.Export, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := middleware.GetRequestID(r.Context())

		filters, ok := h.parseFilters(w, r, requestID)
		if !ok {
			return
		}

		export, err := fn(r.Context(), filters)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "export_failed", "report export failed", requestID)
			return
		}

		w.Header().Set("Content-Type", export.MIME)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(export.Data)))
		if _, err := w.Write(export.Data); err != nil {
			// Client hung up mid-download; the export itself succeeded.
			return
		}
	}
}

func (h *ReportsHandler) exportAll(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	filters, ok := h.parseFilters(w, r, requestID)
	if !ok {
		return
	}
	api.Success(w, h.service.ExportAll(r.Context(), filters), requestID)
}

func (h *ReportsHandler) recentJobs(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}
	runs, err := h.jobs.Recent(r.Context(), limit)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal_error", "could not list job runs", requestID)
		return
	}
	api.Success(w, runs, requestID)
}

func (h *ReportsHandler) parseFilters(w http.ResponseWriter, r *http.Request, requestID string) (reports.Filters, bool) {
	query := r.URL.Query()

	start, end, ok := parseRange(w, query.Get("start_date"), query.Get("end_date"), requestID)
	if !ok {
		return reports.Filters{}, false
	}

	recordType := query.Get("record_type")
	if recordType == "" {
		recordType = reports.TypeAll
	}
	switch recordType {
	case reports.TypeAll, reports.TypeTimeEntries, reports.TypeTasks, reports.TypeGoals:
	default:
		api.Fail(w, http.StatusBadRequest, "bad_request", "unknown record_type", requestID)
		return reports.Filters{}, false
	}

	employeeID := query.Get("employee_id")
	if employeeID == "" {
		employeeID = reports.EmployeeAll
	}

	return reports.Filters{
		StartDate:  start,
		EndDate:    end,
		EmployeeID: employeeID,
		RecordType: recordType,
		Locale:     query.Get("lang"),
	}, true
}
