package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/simonindia/safety-api/internal/service"
)

type DataHandler struct {
	dataService *service.DataService
	logger      *zap.Logger
}

func NewDataHandler(dataService *service.DataService, logger *zap.Logger) *DataHandler {
	return &DataHandler{
		dataService: dataService,
		logger:      logger,
	}
}

// Snapshot returns every project, observation and subcontractor in one
// payload for the frontend's initial load
func (h *DataHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	data, err := h.dataService.Snapshot(r.Context())
	if err != nil {
		h.logger.Error("failed to load data snapshot", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to load data")
		return
	}

	respondJSON(w, http.StatusOK, data)
}
