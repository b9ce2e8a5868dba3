// This file implements category reference management. Items reference
// categories weakly: deleting a category detaches its items (category_id
// set to null) and never cascades into them.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ShalunBdk/ZavodHelper/pkg/types"
)

// CreateCategory validates and persists a category, applying icon/color
// defaults, and returns the stored row.
func (s *Store) CreateCategory(in types.CategoryCreate) (*types.Category, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.Icon == "" {
		in.Icon = types.DefaultCategoryIcon
	}
	if in.Color == "" {
		in.Color = types.DefaultCategoryColor
	}

	var id int64
	err := s.inTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			"INSERT INTO categories (name, item_type, icon, color, ordinal, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			in.Name, string(in.ItemType), in.Icon, in.Color, in.Order, formatTime(time.Now()),
		)
		if err != nil {
			return fmt.Errorf("inserting category: %w", err)
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.GetCategory(id)
}

// GetCategory returns a category with its computed item count, or
// ErrNotFound.
func (s *Store) GetCategory(id int64) (*types.Category, error) {
	var (
		cat     types.Category
		created string
	)
	err := s.db.QueryRow(
		`SELECT c.category_id, c.name, c.item_type, c.icon, c.color, c.ordinal, c.created_at,
    (SELECT COUNT(*) FROM items i WHERE i.category_id = c.category_id) AS items_count
FROM categories c WHERE c.category_id = ?`, id,
	).Scan(&cat.ID, &cat.Name, &cat.ItemType, &cat.Icon, &cat.Color, &cat.Order, &created, &cat.Items)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting category %d: %w", id, err)
	}
	cat.CreatedAt = parseTime(created)
	return &cat, nil
}

// ListCategories returns all categories in display order, each decorated
// with its item count. The count is computed on read, never cached.
func (s *Store) ListCategories() ([]types.Category, error) {
	rows, err := s.db.Query(
		`SELECT c.category_id, c.name, c.item_type, c.icon, c.color, c.ordinal, c.created_at,
    (SELECT COUNT(*) FROM items i WHERE i.category_id = c.category_id) AS items_count
FROM categories c ORDER BY c.ordinal ASC, c.category_id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	categories := []types.Category{}
	for rows.Next() {
		var (
			cat     types.Category
			created string
		)
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.ItemType, &cat.Icon, &cat.Color,
			&cat.Order, &created, &cat.Items); err != nil {
			return nil, err
		}
		cat.CreatedAt = parseTime(created)
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

// CountItemsInCategory returns how many items reference the category.
func (s *Store) CountItemsInCategory(id int64) (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM items WHERE category_id = ?", id).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting items in category %d: %w", id, err)
	}
	return n, nil
}

// UpdateCategory applies the fields present in the payload. The item_type
// is fixed at creation and not updatable.
func (s *Store) UpdateCategory(id int64, in types.CategoryUpdate) (*types.Category, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	err := s.inTx(func(tx *sql.Tx) error {
		var name, icon, color string
		var ordinal int
		err := tx.QueryRow(
			"SELECT name, icon, color, ordinal FROM categories WHERE category_id = ?", id,
		).Scan(&name, &icon, &color, &ordinal)
		if err == sql.ErrNoRows {
			return types.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("loading category %d: %w", id, err)
		}

		if in.Name != nil {
			name = *in.Name
		}
		if in.Icon != nil {
			icon = *in.Icon
		}
		if in.Color != nil {
			color = *in.Color
		}
		if in.Order != nil {
			ordinal = *in.Order
		}

		_, err = tx.Exec(
			"UPDATE categories SET name = ?, icon = ?, color = ?, ordinal = ? WHERE category_id = ?",
			name, icon, color, ordinal, id,
		)
		if err != nil {
			return fmt.Errorf("updating category %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetCategory(id)
}

// DeleteCategory removes the category and detaches referencing items by
// nulling their category_id. Items themselves are never deleted. Returns
// whether a row existed.
func (s *Store) DeleteCategory(id int64) (bool, error) {
	var existed bool
	err := s.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec("UPDATE items SET category_id = NULL WHERE category_id = ?", id); err != nil {
			return fmt.Errorf("detaching items from category %d: %w", id, err)
		}
		res, err := tx.Exec("DELETE FROM categories WHERE category_id = ?", id)
		if err != nil {
			return fmt.Errorf("deleting category %d: %w", id, err)
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
