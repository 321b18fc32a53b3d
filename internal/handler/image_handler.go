package handlers

import (
	"mime"
	"net/http"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

type ImageResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
}

// UploadImage accepts a multipart form with an "image" file and returns the
// public URL of the stored object.
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	current, ok := requireUser(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, r, http.StatusBadRequest, "File is too large or the form is malformed")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mime.TypeByExtension(filepath.Ext(header.Filename))
	}

	url, err := h.ImageService.Upload(r.Context(), current.UserID, header.Filename, contentType, file, header.Size)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.Log.WithFields(logrus.Fields{"user_id": current.UserID, "url": url}).Info("Image uploaded")
	writeJSON(w, http.StatusCreated, ImageResponse{Message: "Image uploaded successfully", ImageURL: url})
}
