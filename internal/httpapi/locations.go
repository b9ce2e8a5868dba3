// Location endpoints. Deleting a location removes association rows only.
package httpapi

import (
	"net/http"

	"github.com/ShalunBdk/ZavodHelper/pkg/types"
)

func (s *Server) handleListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := s.store.ListLocations()
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, locations)
}

func (s *Server) handleGetLocation(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	location, err := s.store.GetLocation(id)
	if err != nil {
		s.storeError(w, r, err, "Location not found")
		return
	}
	writeJSON(w, http.StatusOK, location)
}

func (s *Server) handleCreateLocation(w http.ResponseWriter, r *http.Request) {
	var in types.LocationCreate
	if err := decodeBody(r, &in); err != nil {
		s.storeError(w, r, err, "")
		return
	}
	location, err := s.store.CreateLocation(in)
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, location)
}

func (s *Server) handleUpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	var in types.LocationUpdate
	if err := decodeBody(r, &in); err != nil {
		s.storeError(w, r, err, "")
		return
	}
	location, err := s.store.UpdateLocation(id, in)
	if err != nil {
		s.storeError(w, r, err, "Location not found")
		return
	}
	writeJSON(w, http.StatusOK, location)
}

func (s *Server) handleDeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	existed, err := s.store.DeleteLocation(id)
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	if !existed {
		writeError(w, http.StatusNotFound, "Location not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted", "id": id})
}
