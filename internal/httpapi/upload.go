// Image upload: extension and size constraints, the normalization
// pipeline, and persistence under a random filename in the uploads
// directory served at /uploads/.
package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/ShalunBdk/ZavodHelper/internal/images"
)

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	// Bound the whole request body; multipart framing needs a little
	// headroom beyond the file cap itself.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1<<20)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	if err := images.CheckFilename(header.Filename); err != nil {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("File type not allowed. Use: %s", images.AllowedExtensions()))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, s.tooLargeDetail())
		return
	}

	processed, err := images.Normalize(data, s.cfg.MaxUploadBytes)
	if err != nil {
		s.uploadError(w, r, err)
		return
	}

	uploadDir := s.cfg.Uploads()
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		s.storeError(w, r, err, "")
		return
	}
	name := images.Filename()
	if err := os.WriteFile(filepath.Join(uploadDir, name), processed, 0644); err != nil {
		s.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"url":      "uploads/" + name,
		"filename": name,
		"size":     len(processed),
	})
}

// uploadError maps normalization failures to 400 responses.
func (s *Server) uploadError(w http.ResponseWriter, r *http.Request, err error) {
	var perr *images.ProcessError
	switch {
	case errors.Is(err, images.ErrTooLarge):
		writeError(w, http.StatusBadRequest, s.tooLargeDetail())
	case errors.Is(err, images.ErrUnsupportedFormat):
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("File type not allowed. Use: %s", images.AllowedExtensions()))
	case errors.As(err, &perr):
		writeError(w, http.StatusBadRequest, "Failed to process image: "+perr.Err.Error())
	default:
		s.storeError(w, r, err, "")
	}
}

func (s *Server) tooLargeDetail() string {
	return fmt.Sprintf("File too large. Max size: %dMB", s.cfg.MaxUploadBytes/(1<<20))
}
