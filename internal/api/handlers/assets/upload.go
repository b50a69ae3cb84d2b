// Package assets handles admin cover-image uploads.
package assets

import (
	"encoding/json"
	"net/http"

	"github.com/AhmedAli0123/books-by-karl/internal/storage"
)

// maxUploadBytes bounds a single cover image.
const maxUploadBytes = 10 << 20

type Handler struct {
	uploader storage.Uploader
}

func NewHandler(uploader storage.Uploader) *Handler {
	return &Handler{uploader: uploader}
}

// Upload: POST /admin/upload
// Multipart field "file". Answers the bare shapes the panel's upload widget
// expects: {"url": ..., "id": ...} on success, {"error": ...} otherwise.
func (h *Handler) Upload() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing file field")
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		up, err := h.uploader.Upload(r.Context(), file, header.Filename, contentType, header.Size)
		if err != nil {
			writeError(w, http.StatusBadGateway, "upload failed")
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(map[string]string{"url": up.URL, "id": up.ID})
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
