package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/simonindia/safety-api/internal/domain"
	"github.com/simonindia/safety-api/internal/service"
)

type ObservationHandler struct {
	observationService *service.ObservationService
	logger             *zap.Logger
}

func NewObservationHandler(observationService *service.ObservationService, logger *zap.Logger) *ObservationHandler {
	return &ObservationHandler{
		observationService: observationService,
		logger:             logger,
	}
}

func (h *ObservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateObservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	obs, err := h.observationService.Create(r.Context(), &req)
	if err != nil {
		h.handleObservationError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, obs)
}

func (h *ObservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid observation ID")
		return
	}

	var req domain.UpdateObservationRequest
	if err := decodeStrict(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	obs, err := h.observationService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleObservationError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, obs)
}

func (h *ObservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid observation ID")
		return
	}

	if err := h.observationService.Delete(r.Context(), id); err != nil {
		h.handleObservationError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Observation deleted"})
}

// handleObservationError maps service errors to HTTP status codes
func (h *ObservationHandler) handleObservationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrObservationNotFound):
		respondWithError(w, http.StatusNotFound, "Observation not found")
	default:
		h.logger.Error("observation handler error", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
