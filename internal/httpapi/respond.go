// Response helpers and the error-taxonomy mapping: validation failures and
// upload constraint violations become 400, missing entities 404, anything
// else an internal failure. No error is silently swallowed.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ShalunBdk/ZavodHelper/pkg/types"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the common error body shape.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// storeError maps a store error to a response. notFoundDetail names the
// missing entity in the 404 body.
func (s *Server) storeError(w http.ResponseWriter, r *http.Request, err error, notFoundDetail string) {
	var verr *types.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"detail": verr.Message,
			"field":  verr.Field,
		})
	case errors.Is(err, types.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundDetail)
	case errors.Is(err, types.ErrConfirmationRequired):
		writeError(w, http.StatusBadRequest, "Set confirm=true to clear all data")
	default:
		s.log.Error().Err(err).Str("path", r.URL.Path).Msg("store operation failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// urlID parses the {id} route parameter.
func urlID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, &types.ValidationError{Field: "id", Message: "must be an integer"}
	}
	return id, nil
}

// decodeBody unmarshals a JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &types.ValidationError{Field: "body", Message: "invalid JSON body"}
	}
	return nil
}

// queryInt parses an optional integer query parameter with a default.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &types.ValidationError{Field: name, Message: "must be an integer"}
	}
	return n, nil
}

// queryID parses an optional id query parameter, nil when absent.
func queryID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, &types.ValidationError{Field: name, Message: "must be an integer"}
	}
	return &id, nil
}

// queryFilter assembles the shared item_type/category_id/location_id
// filter from query parameters.
func queryFilter(r *http.Request) (types.ItemFilter, error) {
	var f types.ItemFilter

	if raw := r.URL.Query().Get("item_type"); raw != "" {
		t, err := types.ParseItemType(raw)
		if err != nil {
			return f, err
		}
		f.Type = &t
	}

	categoryID, err := queryID(r, "category_id")
	if err != nil {
		return f, err
	}
	f.CategoryID = categoryID

	locationID, err := queryID(r, "location_id")
	if err != nil {
		return f, err
	}
	f.LocationID = locationID

	return f, nil
}
