package sqlite

import (
	"errors"
	"testing"

	"github.com/ShalunBdk/ZavodHelper/pkg/types"
)

func TestCreateLocationRoundTrip(t *testing.T) {
	s := newTestStore(t)

	loc, err := s.CreateLocation(types.LocationCreate{Name: "Assembly hall", Code: "AH-1", Order: 2})
	if err != nil {
		t.Fatalf("CreateLocation failed: %v", err)
	}
	if loc.ID == 0 {
		t.Error("expected assigned id")
	}
	if loc.Name != "Assembly hall" || loc.Code != "AH-1" || loc.Order != 2 {
		t.Errorf("unexpected location: %+v", loc)
	}
	if loc.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestCreateLocationValidation(t *testing.T) {
	s := newTestStore(t)

	var verr *types.ValidationError
	_, err := s.CreateLocation(types.LocationCreate{Name: "", Code: "X"})
	if !errors.As(err, &verr) || verr.Field != "name" {
		t.Errorf("expected name ValidationError, got %v", err)
	}
	_, err = s.CreateLocation(types.LocationCreate{Name: "X", Code: ""})
	if !errors.As(err, &verr) || verr.Field != "code" {
		t.Errorf("expected code ValidationError, got %v", err)
	}
}

func TestCreateLocationUniqueConstraints(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CreateLocation(types.LocationCreate{Name: "Warehouse", Code: "WH"}); err != nil {
		t.Fatalf("CreateLocation failed: %v", err)
	}

	var verr *types.ValidationError
	_, err := s.CreateLocation(types.LocationCreate{Name: "Warehouse", Code: "WH-2"})
	if !errors.As(err, &verr) || verr.Field != "name" {
		t.Errorf("expected duplicate-name ValidationError, got %v", err)
	}
	_, err = s.CreateLocation(types.LocationCreate{Name: "Warehouse 2", Code: "WH"})
	if !errors.As(err, &verr) || verr.Field != "code" {
		t.Errorf("expected duplicate-code ValidationError, got %v", err)
	}
}

func TestUpdateLocationPartial(t *testing.T) {
	s := newTestStore(t)
	loc, err := s.CreateLocation(types.LocationCreate{Name: "Shop 1", Code: "S1", Order: 1})
	if err != nil {
		t.Fatalf("CreateLocation failed: %v", err)
	}

	name := "Shop 1 (renamed)"
	got, err := s.UpdateLocation(loc.ID, types.LocationUpdate{Name: &name})
	if err != nil {
		t.Fatalf("UpdateLocation failed: %v", err)
	}
	if got.Name != name {
		t.Errorf("expected renamed location, got %q", got.Name)
	}
	if got.Code != "S1" || got.Order != 1 {
		t.Errorf("omitted fields changed: %+v", got)
	}
}

func TestUpdateLocationDuplicateCode(t *testing.T) {
	s := newTestStore(t)
	s.CreateLocation(types.LocationCreate{Name: "Shop 1", Code: "S1"})
	loc, _ := s.CreateLocation(types.LocationCreate{Name: "Shop 2", Code: "S2"})

	code := "S1"
	var verr *types.ValidationError
	_, err := s.UpdateLocation(loc.ID, types.LocationUpdate{Code: &code})
	if !errors.As(err, &verr) || verr.Field != "code" {
		t.Errorf("expected duplicate-code ValidationError, got %v", err)
	}
}

func TestUpdateLocationNotFound(t *testing.T) {
	s := newTestStore(t)

	name := "Ghost"
	_, err := s.UpdateLocation(404, types.LocationUpdate{Name: &name})
	if !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteLocationKeepsItems(t *testing.T) {
	s := newTestStore(t)
	loc, _ := s.CreateLocation(types.LocationCreate{Name: "Shop 1", Code: "S1"})
	item, err := s.CreateItem(types.ItemCreate{
		Title:       "Tagged",
		ItemType:    types.ItemTypeIncident,
		LocationIDs: []int64{loc.ID},
	})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	existed, err := s.DeleteLocation(loc.ID)
	if err != nil {
		t.Fatalf("DeleteLocation failed: %v", err)
	}
	if !existed {
		t.Fatal("expected DeleteLocation to report an existing row")
	}

	got, err := s.GetItem(item.ID)
	if err != nil {
		t.Fatalf("item must survive location deletion, got %v", err)
	}
	if len(got.Locations) != 0 {
		t.Errorf("expected associations removed, got %v", got.Locations)
	}

	existed, err = s.DeleteLocation(loc.ID)
	if err != nil {
		t.Fatalf("second DeleteLocation failed: %v", err)
	}
	if existed {
		t.Error("expected second delete to report a missing row")
	}
}

func TestListLocationsOrder(t *testing.T) {
	s := newTestStore(t)
	s.CreateLocation(types.LocationCreate{Name: "Last", Code: "Z", Order: 9})
	s.CreateLocation(types.LocationCreate{Name: "First", Code: "A", Order: 1})

	locations, err := s.ListLocations()
	if err != nil {
		t.Fatalf("ListLocations failed: %v", err)
	}
	if len(locations) != 2 || locations[0].Name != "First" || locations[1].Name != "Last" {
		t.Errorf("unexpected order: %+v", locations)
	}
}
