// Bulk transfer endpoints: whole-store export, strictly additive import,
// and the confirmed destructive clear.
package httpapi

import (
	"net/http"

	"github.com/ShalunBdk/ZavodHelper/pkg/types"
)

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.store.Export()
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var snapshot types.Snapshot
	if err := decodeBody(r, &snapshot); err != nil {
		s.storeError(w, r, err, "")
		return
	}

	counts, err := s.store.Import(snapshot)
	if err != nil {
		// Items imported before the failure stay committed.
		s.storeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"imported": counts,
	})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		s.storeError(w, r, types.ErrConfirmationRequired, "")
		return
	}
	if _, err := s.store.ClearItems(); err != nil {
		s.storeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
