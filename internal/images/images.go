// Package images implements upload normalization: decode, composite onto
// an opaque white background, bound the dimensions, and re-encode lossy.
// It is a pure bytes-in/bytes-out pipeline; the caller persists the result.
package images

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	// Register the webp decoder; png, jpeg, gif, tiff and bmp are
	// registered by the imaging package itself.
	_ "golang.org/x/image/webp"
)

// Output bounds and encoding quality. Images larger than the bounds are
// downscaled preserving aspect ratio; smaller ones are never upscaled.
const (
	MaxWidth  = 800
	MaxHeight = 600
	Quality   = 80
)

// outputExt is the extension of normalized files. The pipeline always
// re-encodes to JPEG regardless of the input format.
const outputExt = ".jpg"

// Upload constraint errors.
var (
	ErrTooLarge          = errors.New("file exceeds the maximum upload size")
	ErrUnsupportedFormat = errors.New("file type not allowed")
)

// allowedExtensions is the upload allow-list, checked before any decoding.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// AllowedExtensions returns the allow-list as a sorted display string.
func AllowedExtensions() string {
	return "png, jpg, jpeg, gif, webp"
}

// ProcessError wraps a decode or encode failure so callers can map it to a
// rejection rather than an internal failure.
type ProcessError struct {
	Err error
}

func (e *ProcessError) Error() string {
	return "processing image: " + e.Err.Error()
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// CheckFilename rejects filenames whose extension is not in the allow-list.
func CheckFilename(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	if !allowedExtensions[ext] {
		return ErrUnsupportedFormat
	}
	return nil
}

// Normalize decodes data, flattens any transparency or palette color onto
// an opaque white background, downscales to fit MaxWidth x MaxHeight
// preserving aspect ratio, and re-encodes as JPEG at the fixed quality.
// Inputs larger than maxBytes are rejected with ErrTooLarge before any
// decoding. Decode and encode failures return a ProcessError.
func Normalize(data []byte, maxBytes int64) ([]byte, error) {
	if int64(len(data)) > maxBytes {
		return nil, ErrTooLarge
	}

	src, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &ProcessError{Err: err}
	}

	// Flatten onto white. Transparency is discarded deliberately:
	// downstream display assumes no alpha, and JPEG cannot carry one.
	bounds := src.Bounds()
	flat := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	flat = imaging.Overlay(flat, src, image.Pt(0, 0), 1.0)

	if bounds.Dx() > MaxWidth || bounds.Dy() > MaxHeight {
		flat = imaging.Fit(flat, MaxWidth, MaxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flat, imaging.JPEG, imaging.JPEGQuality(Quality)); err != nil {
		return nil, &ProcessError{Err: err}
	}
	return buf.Bytes(), nil
}

// Filename generates a random unique name for a normalized image.
func Filename() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "") + outputExt
}
