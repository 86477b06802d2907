package controller

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Invia-shubham/Food_Ordering_Backend/config"
	"github.com/Invia-shubham/Food_Ordering_Backend/helper"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func allowedImageExt(filename string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(filename))]
}

// UploadImage stores a single multipart image on disk and returns the URL it
// is served from under /uploads.
func UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, config.App.MaxUploadSize)

	if err := r.ParseMultipartForm(config.App.MaxUploadSize); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Could not parse upload, file may be too large")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		helper.RespondError(w, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	if !allowedImageExt(header.Filename) {
		helper.RespondError(w, http.StatusBadRequest, "Unsupported image type")
		return
	}

	if err := os.MkdirAll(config.App.UploadDir, 0o755); err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Could not store file")
		return
	}

	filename := uuid.New().String() + strings.ToLower(filepath.Ext(header.Filename))
	dst, err := os.Create(filepath.Join(config.App.UploadDir, filename))
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Could not store file")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Could not store file")
		return
	}

	helper.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"message":  "File uploaded successfully",
		"file_url": "/uploads/" + filename,
	})
}
