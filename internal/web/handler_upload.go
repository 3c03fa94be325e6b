package web

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Adithya700/Wadrobe/internal/domain"
)

const maxUploadSize = 50 * 1024 * 1024 // 50 MB

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.writeError(w, http.StatusBadRequest, "No image uploaded")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "No image uploaded")
		return
	}
	defer closeWithLog(file, "upload file", s.logger)

	userID := domain.DefaultUserID
	if raw := strings.TrimSpace(r.FormValue("user_id")); raw != "" {
		userID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}
	}

	_, err = s.service.AddItem(r.Context(), userID,
		r.FormValue("name"), r.FormValue("category"), r.FormValue("color"),
		header.Filename, file)
	if err != nil {
		s.logger.Error("upload failed", "user_id", userID, "error", err)
		s.writeDomainError(w, err, "Upload failed")
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]string{"message": "Item uploaded successfully"})
}

func (s *Server) handleGetImage(w http.ResponseWriter, r *http.Request) {
	imagePath := "/uploads/" + r.PathValue("file")

	reader, mimeType, err := s.images.Open(r.Context(), imagePath)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer closeWithLog(reader, "image reader", s.logger)

	w.Header().Set("Content-Type", mimeType)
	if _, err := io.Copy(w, reader); err != nil {
		s.logger.Error("write image failed", "image_path", imagePath, "error", err)
	}
}

// closeWithLog closes c and logs any error, using label to identify the resource.
func closeWithLog(c io.Closer, label string, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Error("failed to close resource", "label", label, "error", err)
	}
}
