package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/geoattend/geoattend-backend-go/internal/domain/worklog"
	"github.com/geoattend/geoattend-backend-go/internal/handler/http/response"
)

type WorkLogHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	RequestLeave(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	DecideLeave(w http.ResponseWriter, r *http.Request)
	CorrectCheckOut(w http.ResponseWriter, r *http.Request)
	ResetAll(w http.ResponseWriter, r *http.Request)
}

type workLogHandlerImpl struct {
	workLogService worklog.WorkLogService
}

func NewWorkLogHandler(workLogService worklog.WorkLogService) WorkLogHandler {
	return &workLogHandlerImpl{
		workLogService: workLogService,
	}
}

// CheckIn implements WorkLogHandler.
func (h *workLogHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req worklog.CheckInRequest

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	file, fileHeader, err := r.FormFile("photo")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Attendance evidence photo is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	req.File = file
	req.FileHeader = fileHeader

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.workLogService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check-in successful", result)
}

// CheckOut implements WorkLogHandler.
func (h *workLogHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req worklog.CheckOutRequest

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Photo is optional on the way out
	file, fileHeader, err := r.FormFile("photo")
	if err == nil {
		defer file.Close()
		req.File = file
		req.FileHeader = fileHeader
	} else if err != http.ErrMissingFile {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.workLogService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-out successful", result)
}

// RequestLeave implements WorkLogHandler.
func (h *workLogHandlerImpl) RequestLeave(w http.ResponseWriter, r *http.Request) {
	var req worklog.LeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.workLogService.RequestLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

// GetToday implements WorkLogHandler.
func (h *workLogHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.workLogService.GetToday(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements WorkLogHandler.
func (h *workLogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := worklog.ListFilter{
		From:       r.URL.Query().Get("from"),
		To:         r.URL.Query().Get("to"),
		EmployeeID: r.URL.Query().Get("employee_id"),
	}

	result, err := h.workLogService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DecideLeave implements WorkLogHandler.
func (h *workLogHandlerImpl) DecideLeave(w http.ResponseWriter, r *http.Request) {
	var req worklog.LeaveDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.WorkLogID = chi.URLParam(r, "id")

	result, err := h.workLogService.DecideLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request "+req.Decision, result)
}

// CorrectCheckOut implements WorkLogHandler.
func (h *workLogHandlerImpl) CorrectCheckOut(w http.ResponseWriter, r *http.Request) {
	var req worklog.CorrectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.WorkLogID = chi.URLParam(r, "id")

	result, err := h.workLogService.CorrectCheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-out corrected", result)
}

// ResetAll implements WorkLogHandler.
func (h *workLogHandlerImpl) ResetAll(w http.ResponseWriter, r *http.Request) {
	if err := h.workLogService.ResetAll(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All work logs deleted", nil)
}
