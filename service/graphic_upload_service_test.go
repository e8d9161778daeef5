package service

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 7 {
		img.Set(x, h/2, color.RGBA{R: 220, G: 38, B: 38, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeDataURL(t *testing.T, dataURL string) image.Image {
	t.Helper()
	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(dataURL, prefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, prefix))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestGraphicUploadService_ResizesLargeImages(t *testing.T) {
	svc := NewGraphicUploadService()

	out, err := svc.Process("big.png", encodeTestPNG(t, 2048, 1024))
	require.NoError(t, err)

	assert.Equal(t, "big.png", out.Name)
	assert.Equal(t, 1024, out.Width)
	assert.Equal(t, 512, out.Height)
	assert.Greater(t, out.Bytes, 0)

	img := decodeDataURL(t, out.DataURL)
	assert.Equal(t, 1024, img.Bounds().Dx())
	assert.Equal(t, 512, img.Bounds().Dy())
}

func TestGraphicUploadService_KeepsSmallImages(t *testing.T) {
	svc := NewGraphicUploadService()

	out, err := svc.Process("small.png", encodeTestPNG(t, 200, 100))
	require.NoError(t, err)
	assert.Equal(t, 200, out.Width)
	assert.Equal(t, 100, out.Height)
}

func TestGraphicUploadService_RejectsNonImages(t *testing.T) {
	svc := NewGraphicUploadService()

	_, err := svc.Process("notes.txt", []byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestGraphicUploadService_RejectsCorruptImages(t *testing.T) {
	svc := NewGraphicUploadService()
	data := encodeTestPNG(t, 10, 10)[:40]

	_, err := svc.Process("broken.png", data)
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestGraphicUploadService_RejectsOversizedDimensions(t *testing.T) {
	svc := NewGraphicUploadService()

	_, err := svc.Process("wide.png", encodeTestPNG(t, maxSourceDimension+1, 1))
	assert.ErrorIs(t, err, ErrNotAnImage)
	assert.Contains(t, err.Error(), "exceeds the size limit")
}

func TestGraphicUploadService_RejectsTooManyPixels(t *testing.T) {
	svc := NewGraphicUploadService()
	svc.maxSourcePixels = 20 * 20

	_, err := svc.Process("square.png", encodeTestPNG(t, 21, 20))
	assert.ErrorIs(t, err, ErrNotAnImage)

	out, err := svc.Process("square.png", encodeTestPNG(t, 20, 20))
	require.NoError(t, err)
	assert.Equal(t, 20, out.Width)
}
