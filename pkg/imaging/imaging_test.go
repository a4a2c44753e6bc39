package imaging_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"go-resume-builder/pkg/imaging"

	"github.com/stretchr/testify/assert"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDetectFormat(t *testing.T) {
	t.Run("Should sniff PNG from magic bytes", func(t *testing.T) {
		mime, ok := imaging.DetectFormat(pngBytes(t, 4, 4))
		assert.True(t, ok)
		assert.Equal(t, "image/png", mime)
	})

	t.Run("Should reject non-image bytes regardless of claimed type", func(t *testing.T) {
		_, ok := imaging.DetectFormat([]byte("%PDF-1.4 not an image"))
		assert.False(t, ok)
	})

	t.Run("Should reject tiny payloads", func(t *testing.T) {
		_, ok := imaging.DetectFormat([]byte{0xFF})
		assert.False(t, ok)
	})
}

func TestValidateUpload(t *testing.T) {
	t.Run("Should reject oversize files before looking at content", func(t *testing.T) {
		big := make([]byte, imaging.MaxUploadBytes+1)
		copy(big, []byte{0xFF, 0xD8, 0xFF}) // valid JPEG magic, size still wins
		err := imaging.ValidateUpload(big)
		assert.ErrorIs(t, err, imaging.ErrTooLarge)
	})

	t.Run("Should reject disallowed types", func(t *testing.T) {
		err := imaging.ValidateUpload([]byte("GIF is fine but this is text"))
		assert.ErrorIs(t, err, imaging.ErrUnsupportedType)
	})

	t.Run("Should accept a valid image within the cap", func(t *testing.T) {
		assert.NoError(t, imaging.ValidateUpload(pngBytes(t, 4, 4)))
	})
}

func TestValidateZoom(t *testing.T) {
	assert.NoError(t, imaging.ValidateZoom(1.0))
	assert.NoError(t, imaging.ValidateZoom(3.0))
	assert.ErrorIs(t, imaging.ValidateZoom(0.5), imaging.ErrZoomOutOfRange)
	assert.ErrorIs(t, imaging.ValidateZoom(3.1), imaging.ErrZoomOutOfRange)
}

func TestCrop(t *testing.T) {
	src, err := imaging.Decode(pngBytes(t, 10, 8))
	assert.NoError(t, err)

	t.Run("Should produce the rectangle's own dimensions", func(t *testing.T) {
		out, err := imaging.Crop(src, imaging.Rect{X: 2, Y: 2, Width: 4, Height: 3})
		assert.NoError(t, err)
		assert.Equal(t, 4, out.Bounds().Dx())
		assert.Equal(t, 3, out.Bounds().Dy())
	})

	t.Run("Should reject a rectangle outside the image", func(t *testing.T) {
		_, err := imaging.Crop(src, imaging.Rect{X: 8, Y: 0, Width: 5, Height: 5})
		assert.Error(t, err)
	})

	t.Run("Should reject empty rectangles", func(t *testing.T) {
		_, err := imaging.Crop(src, imaging.Rect{X: 0, Y: 0, Width: 0, Height: 3})
		assert.Error(t, err)
	})
}

func TestEncodeJPEG(t *testing.T) {
	src, err := imaging.Decode(pngBytes(t, 6, 6))
	assert.NoError(t, err)

	out, err := imaging.EncodeJPEG(src)
	assert.NoError(t, err)

	mime, ok := imaging.DetectFormat(out)
	assert.True(t, ok)
	assert.Equal(t, "image/jpeg", mime)
}
