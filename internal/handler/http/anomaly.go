package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/geoattend/geoattend-backend-go/internal/domain/anomaly"
	"github.com/geoattend/geoattend-backend-go/internal/handler/http/response"
)

type AnomalyHandler interface {
	Analyze(w http.ResponseWriter, r *http.Request)
}

type anomalyHandlerImpl struct {
	anomalyService anomaly.AnomalyService
}

func NewAnomalyHandler(anomalyService anomaly.AnomalyService) AnomalyHandler {
	return &anomalyHandlerImpl{
		anomalyService: anomalyService,
	}
}

// Analyze implements AnomalyHandler.
func (h *anomalyHandlerImpl) Analyze(w http.ResponseWriter, r *http.Request) {
	result, err := h.anomalyService.Analyze(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
