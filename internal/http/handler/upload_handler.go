package handler

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/simonindia/safety-api/internal/storage"
)

type UploadHandler struct {
	store  storage.BlobStore
	logger *zap.Logger
}

func NewUploadHandler(store storage.BlobStore, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		store:  store,
		logger: logger,
	}
}

// Serve streams a stored attachment back to the client
func (h *UploadHandler) Serve(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	rc, contentType, err := h.store.Open(r.Context(), filename)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "File not found")
		return
	}
	defer rc.Close()

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	if _, err := io.Copy(w, rc); err != nil {
		h.logger.Warn("failed to stream file", zap.Error(err), zap.String("filename", filename))
	}
}
