package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/simonindia/safety-api/internal/domain"
	"github.com/simonindia/safety-api/internal/service"
)

type SubContractorHandler struct {
	subContractorService *service.SubContractorService
	logger               *zap.Logger
}

func NewSubContractorHandler(subContractorService *service.SubContractorService, logger *zap.Logger) *SubContractorHandler {
	return &SubContractorHandler{
		subContractorService: subContractorService,
		logger:               logger,
	}
}

func (h *SubContractorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSubContractorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	sub, err := h.subContractorService.Create(r.Context(), &req)
	if err != nil {
		h.handleSubContractorError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, sub)
}

func (h *SubContractorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid subcontractor ID")
		return
	}

	var req domain.UpdateSubContractorRequest
	if err := decodeStrict(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	sub, err := h.subContractorService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleSubContractorError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, sub)
}

func (h *SubContractorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid subcontractor ID")
		return
	}

	if err := h.subContractorService.Delete(r.Context(), id); err != nil {
		h.handleSubContractorError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Subcontractor deleted"})
}

// handleSubContractorError maps service errors to HTTP status codes
func (h *SubContractorHandler) handleSubContractorError(w http.ResponseWriter, err error) {
	var refErr *service.ReferencedError
	switch {
	case errors.Is(err, service.ErrSubContractorFieldsRequired):
		respondWithError(w, http.StatusBadRequest, "Project code and name are required.")
	case errors.Is(err, service.ErrProjectNotFound):
		respondWithError(w, http.StatusNotFound, "Project not found.")
	case errors.Is(err, service.ErrSubContractorNotFound):
		respondWithError(w, http.StatusNotFound, "Subcontractor not found")
	case errors.As(err, &refErr):
		respondWithError(w, http.StatusBadRequest, refErr.Error())
	default:
		h.logger.Error("subcontractor handler error", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
