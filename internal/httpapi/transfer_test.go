package httpapi

import (
	"net/http"
	"testing"

	"github.com/ShalunBdk/ZavodHelper/pkg/types"
)

func TestExportImportRoundTrip(t *testing.T) {
	s := newTestServer(t)
	createItem(t, s, "Broken press", types.ItemTypeIncident)
	createItem(t, s, "Startup checklist", types.ItemTypeInstruction)

	w := doJSON(t, s, http.MethodGet, "/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var snap types.Snapshot
	decodeResponse(t, w, &snap)
	if len(snap.Incidents) != 1 || len(snap.Instructions) != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	w = doJSON(t, s, http.MethodDelete, "/clear?confirm=true", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(t, s, http.MethodPost, "/import", snap)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Status   string             `json:"status"`
		Imported types.ImportCounts `json:"imported"`
	}
	decodeResponse(t, w, &body)
	if body.Status != "success" {
		t.Errorf("unexpected status %q", body.Status)
	}
	if body.Imported.Incidents != 1 || body.Imported.Instructions != 1 {
		t.Errorf("unexpected counts: %+v", body.Imported)
	}

	w = doJSON(t, s, http.MethodGet, "/items", nil)
	var items []types.ItemSummary
	decodeResponse(t, w, &items)
	if len(items) != 2 {
		t.Errorf("expected 2 items after import, got %d", len(items))
	}
}

func TestClearRequiresConfirmation(t *testing.T) {
	s := newTestServer(t)
	createItem(t, s, "Survivor", types.ItemTypeIncident)

	w := doJSON(t, s, http.MethodDelete, "/clear", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if d := detail(t, w); d != "Set confirm=true to clear all data" {
		t.Errorf("unexpected detail %q", d)
	}

	// confirm must be exactly "true".
	w = doJSON(t, s, http.MethodDelete, "/clear?confirm=yes", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for confirm=yes, got %d", w.Code)
	}

	w = doJSON(t, s, http.MethodGet, "/items", nil)
	var items []types.ItemSummary
	decodeResponse(t, w, &items)
	if len(items) != 1 {
		t.Errorf("unconfirmed clear must not delete, got %d items", len(items))
	}
}

func TestClearKeepsReferences(t *testing.T) {
	s := newTestServer(t)
	doJSON(t, s, http.MethodPost, "/categories",
		types.CategoryCreate{Name: "Press", ItemType: types.ItemTypeIncident})
	doJSON(t, s, http.MethodPost, "/locations",
		types.LocationCreate{Name: "Shop 1", Code: "S1"})
	createItem(t, s, "Doomed", types.ItemTypeIncident)

	w := doJSON(t, s, http.MethodDelete, "/clear?confirm=true", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	decodeResponse(t, w, &body)
	if body["status"] != "cleared" {
		t.Errorf("unexpected body: %v", body)
	}

	var items []types.ItemSummary
	w = doJSON(t, s, http.MethodGet, "/items", nil)
	decodeResponse(t, w, &items)
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}

	var categories []types.Category
	w = doJSON(t, s, http.MethodGet, "/categories", nil)
	decodeResponse(t, w, &categories)
	if len(categories) != 1 {
		t.Errorf("clear must keep categories, got %d", len(categories))
	}

	var locations []types.Location
	w = doJSON(t, s, http.MethodGet, "/locations", nil)
	decodeResponse(t, w, &locations)
	if len(locations) != 1 {
		t.Errorf("clear must keep locations, got %d", len(locations))
	}
}

func TestImportInvalidBody(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/import", "not a snapshot")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed snapshot, got %d", w.Code)
	}
}
