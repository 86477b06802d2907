package controller

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Invia-shubham/Food_Ordering_Backend/config"
)

func TestAllowedImageExt(t *testing.T) {
	allowed := []string{"photo.jpg", "photo.JPG", "dish.jpeg", "logo.png", "anim.gif", "pic.webp"}
	for _, name := range allowed {
		assert.True(t, allowedImageExt(name), "%s should be allowed", name)
	}

	rejected := []string{"script.sh", "page.html", "doc.pdf", "noextension", "archive.tar.gz"}
	for _, name := range rejected {
		assert.False(t, allowedImageExt(name), "%s should be rejected", name)
	}
}

func multipartImage(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadImage(t *testing.T) {
	config.App.UploadDir = t.TempDir()
	config.App.MaxUploadSize = 8 << 20

	body, contentType := multipartImage(t, "image", "dish.png", "fake png bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	UploadImage(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		FileURL string `json:"file_url"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.True(t, strings.HasPrefix(resp.FileURL, "/uploads/"))
	assert.True(t, strings.HasSuffix(resp.FileURL, ".png"))

	stored := filepath.Join(config.App.UploadDir, strings.TrimPrefix(resp.FileURL, "/uploads/"))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(data))
}

func TestUploadImageRejectsBadType(t *testing.T) {
	config.App.UploadDir = t.TempDir()
	config.App.MaxUploadSize = 8 << 20

	body, contentType := multipartImage(t, "image", "script.sh", "#!/bin/sh")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	UploadImage(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadImageRequiresFile(t *testing.T) {
	config.App.UploadDir = t.TempDir()
	config.App.MaxUploadSize = 8 << 20

	body, contentType := multipartImage(t, "not_image", "dish.png", "fake png bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	UploadImage(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
