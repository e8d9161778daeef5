package controller

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"void-apparel/service"
	"void-apparel/store"
)

func noisyPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x*7 + y), G: uint8(y * 13), B: uint8(x ^ y), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func multipartUpload(t *testing.T, path string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(uploadFormField, "art.png")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestGraphicController_UploadRemovesSpilledParts(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	studio := service.NewStudioService(service.NewGraphicLibraryService(nil, ""))
	c := NewGraphicController(service.NewGraphicUploadService(), studio, NewSessionResolver(store.NewRegistry(), false), 1<<20)
	c.memoryBytes = 1024

	data := noisyPNG(t, 64, 64)
	require.Greater(t, len(data), 1024)

	w := httptest.NewRecorder()
	c.UploadGraphic(w, multipartUpload(t, "/api/graphics/upload", data))
	require.Equal(t, http.StatusOK, w.Code)

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGraphicController_UploadTooLarge(t *testing.T) {
	studio := service.NewStudioService(service.NewGraphicLibraryService(nil, ""))
	c := NewGraphicController(service.NewGraphicUploadService(), studio, NewSessionResolver(store.NewRegistry(), false), 512)

	w := httptest.NewRecorder()
	c.UploadGraphic(w, multipartUpload(t, "/api/graphics/upload", noisyPNG(t, 64, 64)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
