package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/geoattend/geoattend-backend-go/internal/domain/report"
	"github.com/geoattend/geoattend-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	AttendanceRecap(w http.ResponseWriter, r *http.Request)
	Lateness(w http.ResponseWriter, r *http.Request)
	WorkHours(w http.ResponseWriter, r *http.Request)
	Leave(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func rangeQuery(r *http.Request) report.RangeQuery {
	return report.RangeQuery{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}
}

// AttendanceRecap implements ReportHandler.
func (h *reportHandlerImpl) AttendanceRecap(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.AttendanceRecap(r.Context(), rangeQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Lateness implements ReportHandler.
func (h *reportHandlerImpl) Lateness(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Lateness(r.Context(), rangeQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// WorkHours implements ReportHandler.
func (h *reportHandlerImpl) WorkHours(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.WorkHours(r.Context(), rangeQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Leave implements ReportHandler.
func (h *reportHandlerImpl) Leave(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Leave(r.Context(), rangeQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Export implements ReportHandler.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	tab := chi.URLParam(r, "tab")

	filename, content, err := h.reportService.Export(r.Context(), tab, rangeQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	_, _ = w.Write(content)
}
