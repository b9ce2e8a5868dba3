// This file implements location reference management. Locations relate to
// items many-to-many; deleting a location removes association rows only.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ShalunBdk/ZavodHelper/pkg/types"
)

// CreateLocation validates and persists a location. Name and code are
// unique; violations surface as ValidationError.
func (s *Store) CreateLocation(in types.LocationCreate) (*types.Location, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var id int64
	err := s.inTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			"INSERT INTO locations (name, code, ordinal, created_at) VALUES (?, ?, ?, ?)",
			in.Name, in.Code, in.Order, formatTime(time.Now()),
		)
		if err != nil {
			return locationConstraintError(err)
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.GetLocation(id)
}

// GetLocation returns a location or ErrNotFound.
func (s *Store) GetLocation(id int64) (*types.Location, error) {
	var (
		loc     types.Location
		created string
	)
	err := s.db.QueryRow(
		"SELECT location_id, name, code, ordinal, created_at FROM locations WHERE location_id = ?", id,
	).Scan(&loc.ID, &loc.Name, &loc.Code, &loc.Order, &created)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting location %d: %w", id, err)
	}
	loc.CreatedAt = parseTime(created)
	return &loc, nil
}

// ListLocations returns all locations in display order.
func (s *Store) ListLocations() ([]types.Location, error) {
	rows, err := s.db.Query(
		"SELECT location_id, name, code, ordinal, created_at FROM locations ORDER BY ordinal ASC, location_id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	defer rows.Close()

	locations := []types.Location{}
	for rows.Next() {
		var (
			loc     types.Location
			created string
		)
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Code, &loc.Order, &created); err != nil {
			return nil, err
		}
		loc.CreatedAt = parseTime(created)
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

// UpdateLocation applies the fields present in the payload.
func (s *Store) UpdateLocation(id int64, in types.LocationUpdate) (*types.Location, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	err := s.inTx(func(tx *sql.Tx) error {
		var name, code string
		var ordinal int
		err := tx.QueryRow(
			"SELECT name, code, ordinal FROM locations WHERE location_id = ?", id,
		).Scan(&name, &code, &ordinal)
		if err == sql.ErrNoRows {
			return types.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("loading location %d: %w", id, err)
		}

		if in.Name != nil {
			name = *in.Name
		}
		if in.Code != nil {
			code = *in.Code
		}
		if in.Order != nil {
			ordinal = *in.Order
		}

		_, err = tx.Exec(
			"UPDATE locations SET name = ?, code = ?, ordinal = ? WHERE location_id = ?",
			name, code, ordinal, id,
		)
		if err != nil {
			return locationConstraintError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetLocation(id)
}

// DeleteLocation removes the location and its association rows. Associated
// items are untouched. Returns whether a row existed.
func (s *Store) DeleteLocation(id int64) (bool, error) {
	var existed bool
	err := s.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM item_locations WHERE location_id = ?", id); err != nil {
			return fmt.Errorf("removing location associations: %w", err)
		}
		res, err := tx.Exec("DELETE FROM locations WHERE location_id = ?", id)
		if err != nil {
			return fmt.Errorf("deleting location %d: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		existed = n > 0
		return nil
	})
	return existed, err
}

// locationConstraintError maps the driver's unique-constraint failure on
// name or code to a ValidationError; anything else passes through. The
// driver exposes no typed constraint error, so this matches its message.
func locationConstraintError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed: locations.name"):
		return &types.ValidationError{Field: "name", Message: "a location with this name already exists"}
	case strings.Contains(msg, "UNIQUE constraint failed: locations.code"):
		return &types.ValidationError{Field: "code", Message: "a location with this code already exists"}
	default:
		return fmt.Errorf("persisting location: %w", err)
	}
}
