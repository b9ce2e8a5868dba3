// Item endpoints: paginated summaries, title search, full trees, creation
// with the whole page/action tree, partial update, and deletion.
package httpapi

import (
	"net/http"

	"github.com/ShalunBdk/ZavodHelper/pkg/types"
)

// Pagination bounds for the summary listing.
const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	filter, err := queryFilter(r)
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	skip, err := queryInt(r, "skip", 0)
	if err != nil || skip < 0 {
		writeError(w, http.StatusBadRequest, "skip must be a non-negative integer")
		return
	}
	limit, err := queryInt(r, "limit", defaultListLimit)
	if err != nil || limit < 1 || limit > maxListLimit {
		writeError(w, http.StatusBadRequest, "limit must be between 1 and 1000")
		return
	}

	items, err := s.store.ListItems(filter, skip, limit)
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleSearchItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "q must not be empty")
		return
	}
	filter, err := queryFilter(r)
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}

	items, err := s.store.SearchItems(q, filter)
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	item, err := s.store.GetItem(id)
	if err != nil {
		s.storeError(w, r, err, "Item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var in types.ItemCreate
	if err := decodeBody(r, &in); err != nil {
		s.storeError(w, r, err, "")
		return
	}
	item, err := s.store.CreateItem(in)
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	var in types.ItemUpdate
	if err := decodeBody(r, &in); err != nil {
		s.storeError(w, r, err, "")
		return
	}
	item, err := s.store.UpdateItem(id, in)
	if err != nil {
		s.storeError(w, r, err, "Item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	existed, err := s.store.DeleteItem(id)
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	if !existed {
		writeError(w, http.StatusNotFound, "Item not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted", "id": id})
}

func (s *Server) handleIncidents(w http.ResponseWriter, r *http.Request) {
	s.itemsByType(w, r, types.ItemTypeIncident)
}

func (s *Server) handleInstructions(w http.ResponseWriter, r *http.Request) {
	s.itemsByType(w, r, types.ItemTypeInstruction)
}

// itemsByType serves the fixed-type full-tree listings, honoring the
// optional category/location filters.
func (s *Server) itemsByType(w http.ResponseWriter, r *http.Request, t types.ItemType) {
	filter, err := queryFilter(r)
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	items, err := s.store.ItemsByType(t, filter)
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, items)
}
