// Package imaging implements the profile-photo crop pipeline: upload
// validation, decoding, cropping and JPEG encoding. Nothing here touches
// the document model; the caller applies the resulting URL as a single
// field mutation.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // Register GIF decoder
	"image/jpeg"
	_ "image/png" // Register PNG decoder

	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// MaxUploadBytes is the hard cap on selected files (5 MiB).
const MaxUploadBytes = 5 << 20

// Zoom range the crop UI allows.
const (
	ZoomMin = 1.0
	ZoomMax = 3.0
)

// JPEGQuality matches the editor's canvas export quality (0.9).
const JPEGQuality = 90

var (
	ErrTooLarge        = errors.New("imaging: file exceeds the 5 MiB limit")
	ErrUnsupportedType = errors.New("imaging: file type not allowed (jpeg, png, gif, webp)")
	ErrZoomOutOfRange  = errors.New("imaging: zoom must be between 1 and 3")
)

// Magic byte signatures for the image allow-list.
var imageSignatures = map[string][][]byte{
	"image/jpeg": {{0xFF, 0xD8, 0xFF}},
	"image/png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	"image/gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}}, // GIF87a & GIF89a
	"image/webp": {{0x52, 0x49, 0x46, 0x46}},                                                   // RIFF header
}

// Rect is a crop rectangle in source pixel coordinates.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DetectFormat sniffs the MIME type from the file's magic bytes. The
// client-reported content type is never trusted.
func DetectFormat(data []byte) (string, bool) {
	if len(data) < 4 {
		return "", false
	}
	for mime, sigs := range imageSignatures {
		for _, sig := range sigs {
			if bytes.HasPrefix(data, sig) {
				return mime, true
			}
		}
	}
	return "", false
}

// ValidateUpload runs the two admission checks: size cap first, then
// the MIME allow-list. It must reject before any decode or network call.
func ValidateUpload(data []byte) error {
	if len(data) > MaxUploadBytes {
		return fmt.Errorf("%w: got %d bytes", ErrTooLarge, len(data))
	}
	if _, ok := DetectFormat(data); !ok {
		return ErrUnsupportedType
	}
	return nil
}

// ValidateZoom range-checks the crop UI's zoom level.
func ValidateZoom(zoom float64) error {
	if zoom < ZoomMin || zoom > ZoomMax {
		return ErrZoomOutOfRange
	}
	return nil
}

// Decode parses the raw bytes into an image. JPEG, PNG and GIF come
// from the standard decoders; WebP from x/image.
func Decode(data []byte) (image.Image, error) {
	mime, ok := DetectFormat(data)
	if !ok {
		return nil, ErrUnsupportedType
	}
	if mime == "image/webp" {
		return webp.Decode(bytes.NewReader(data))
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode failed: %w", err)
	}
	return img, nil
}

// Crop renders the rectangle onto a fresh buffer at the rectangle's own
// pixel dimensions. No scaling happens beyond what the rectangle
// implies.
func Crop(src image.Image, r Rect) (image.Image, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("imaging: invalid crop size %dx%d", r.Width, r.Height)
	}
	bounds := src.Bounds()
	region := image.Rect(bounds.Min.X+r.X, bounds.Min.Y+r.Y, bounds.Min.X+r.X+r.Width, bounds.Min.Y+r.Y+r.Height)
	if !region.In(bounds) {
		return nil, fmt.Errorf("imaging: crop %v outside image bounds %v", region, bounds)
	}

	dst := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	draw.Copy(dst, image.Point{}, src, region, draw.Src, nil)
	return dst, nil
}

// EncodeJPEG serializes the cropped raster for upload.
func EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("imaging: encode failed: %w", err)
	}
	return buf.Bytes(), nil
}
