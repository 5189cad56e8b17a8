package http

import (
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gorilla/mux"

	"nexus-asset-manager/internal/logger"
	"nexus-asset-manager/internal/storage"
)

// FileHandler serves generated print output from storage
type FileHandler struct {
	files storage.StorageInterface
}

func NewFileHandler(files storage.StorageInterface) *FileHandler {
	return &FileHandler{files: files}
}

// Download streams the file stored under ?key=
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing key parameter"})
		return
	}

	file, err := h.files.ReadFile(r.Context(), key)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer file.Close()

	if exists, size, err := h.files.FileExists(r.Context(), key); err == nil && exists {
		w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	}
	w.Header().Set("Content-Type", contentTypeFor(key))
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, file); err != nil {
		logger.WarnContext(r.Context(), "File download interrupted", "key", key, "error", err)
	}
}

// Remove deletes a stored file. Unknown keys succeed.
func (h *FileHandler) Remove(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing key parameter"})
		return
	}
	if err := h.files.DeleteFile(r.Context(), key); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Determine content type from file extension
func contentTypeFor(key string) string {
	switch filepath.Ext(key) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}

func RegisterFileRoutes(router *mux.Router, files storage.StorageInterface) {
	h := NewFileHandler(files)
	router.HandleFunc("/api/files", h.Download).Methods(http.MethodGet)
	router.HandleFunc("/api/files", h.Remove).Methods(http.MethodDelete)
}
