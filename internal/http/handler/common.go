package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/simonindia/safety-api/internal/domain"
)

var validate = validator.New()

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondWithError sends a standardized JSON error response
func respondWithError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, domain.ErrorResponse{Error: message})
}

// respondValidationError reports the first missing field by its JSON name
func respondValidationError(w http.ResponseWriter, err error) {
	if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 {
		respondWithError(w, http.StatusBadRequest,
			fmt.Sprintf("Missing required field: %s", toJSONFieldName(ve[0].Field())))
		return
	}
	respondWithError(w, http.StatusBadRequest, "Validation failed")
}

// toJSONFieldName converts a Go struct field name to its JSON equivalent (camelCase)
func toJSONFieldName(field string) string {
	if len(field) == 0 {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// decodeStrict decodes a request body rejecting unknown JSON keys. Partial
// update endpoints use it so a typoed field name fails loudly instead of
// silently leaving the record unchanged.
func decodeStrict(r *http.Request, target interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}

// parseIDParam extracts the numeric {id} URL parameter
func parseIDParam(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
