package handler

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"github.com/simonindia/safety-api/internal/service"
)

type ExportHandler struct {
	exportService *service.ExportService
	logger        *zap.Logger
}

func NewExportHandler(exportService *service.ExportService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		logger:        logger,
	}
}

// Export returns all observations as a CSV attachment. The document is built
// in memory first so a failure produces a clean JSON error instead of a
// truncated file.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.exportService.WriteCSV(r.Context(), &buf, requestBaseURL(r)); err != nil {
		h.logger.Error("failed to export observations", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to export observations")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="safety_observations.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// requestBaseURL reconstructs scheme://host from the incoming request so
// exported attachment links resolve outside the API
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
