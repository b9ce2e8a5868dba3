// Category endpoints. Deleting a category detaches its items; it never
// deletes them.
package httpapi

import (
	"net/http"

	"github.com/ShalunBdk/ZavodHelper/pkg/types"
)

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.store.ListCategories()
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	category, err := s.store.GetCategory(id)
	if err != nil {
		s.storeError(w, r, err, "Category not found")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var in types.CategoryCreate
	if err := decodeBody(r, &in); err != nil {
		s.storeError(w, r, err, "")
		return
	}
	category, err := s.store.CreateCategory(in)
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	var in types.CategoryUpdate
	if err := decodeBody(r, &in); err != nil {
		s.storeError(w, r, err, "")
		return
	}
	category, err := s.store.UpdateCategory(id, in)
	if err != nil {
		s.storeError(w, r, err, "Category not found")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	existed, err := s.store.DeleteCategory(id)
	if err != nil {
		s.storeError(w, r, err, "")
		return
	}
	if !existed {
		writeError(w, http.StatusNotFound, "Category not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted", "id": id})
}
