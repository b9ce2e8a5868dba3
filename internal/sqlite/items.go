// This file implements the item hierarchy operations: create/get/update/
// delete/list/search over items and their owned pages and actions.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ShalunBdk/ZavodHelper/pkg/types"
)

// querier is satisfied by both *sql.DB and *sql.Tx so read helpers can run
// inside or outside a transaction.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// summarySelect is the shared projection for listing and search: item row,
// page count, and the denormalized category columns.
const summarySelect = `SELECT i.item_id, i.title, i.item_type, i.created_at, i.updated_at,
    (SELECT COUNT(*) FROM pages p WHERE p.item_id = i.item_id) AS pages_count,
    c.category_id, c.name, c.icon, c.color
FROM items i
LEFT JOIN categories c ON c.category_id = i.category_id`

// CreateItem validates and persists an item together with its full
// page/action tree in one transaction, then returns the freshly loaded
// tree. Pages and actions receive dense 0..n-1 order in input order.
// Unknown location ids are silently dropped.
func (s *Store) CreateItem(in types.ItemCreate) (*types.Item, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var id int64
	err := s.inTx(func(tx *sql.Tx) error {
		now := formatTime(time.Now())
		res, err := tx.Exec(
			"INSERT INTO items (title, item_type, category_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			in.Title, string(in.ItemType), nullableID(in.CategoryID), now, now,
		)
		if err != nil {
			return fmt.Errorf("inserting item: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading item id: %w", err)
		}
		if err := replaceLocations(tx, id, in.LocationIDs); err != nil {
			return err
		}
		return insertPages(tx, id, in.Pages, now)
	})
	if err != nil {
		return nil, err
	}
	return s.GetItem(id)
}

// GetItem returns the full item tree (pages and actions in persisted
// order) or ErrNotFound.
func (s *Store) GetItem(id int64) (*types.Item, error) {
	return loadItem(s.db, id)
}

// UpdateItem applies only the fields present in the payload. A present
// Pages field (even empty) discards and replaces the whole page subtree; a
// present LocationIDs field replaces the association set. Returns the
// refreshed tree, or ErrNotFound when no such item exists.
func (s *Store) UpdateItem(id int64, in types.ItemUpdate) (*types.Item, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	err := s.inTx(func(tx *sql.Tx) error {
		var (
			title    string
			itemType string
			catID    sql.NullInt64
		)
		err := tx.QueryRow(
			"SELECT title, item_type, category_id FROM items WHERE item_id = ?", id,
		).Scan(&title, &itemType, &catID)
		if err == sql.ErrNoRows {
			return types.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("loading item %d: %w", id, err)
		}

		if in.Title != nil {
			title = *in.Title
		}
		if in.ItemType != nil {
			itemType = string(*in.ItemType)
		}
		if in.CategoryID.Set {
			catID = sql.NullInt64{Int64: in.CategoryID.Value, Valid: in.CategoryID.Valid}
		}

		now := formatTime(time.Now())
		if _, err := tx.Exec(
			"UPDATE items SET title = ?, item_type = ?, category_id = ?, updated_at = ? WHERE item_id = ?",
			title, itemType, catID, now, id,
		); err != nil {
			return fmt.Errorf("updating item %d: %w", id, err)
		}

		if in.LocationIDs != nil {
			if err := replaceLocations(tx, id, *in.LocationIDs); err != nil {
				return err
			}
		}
		if in.Pages != nil {
			if err := deletePages(tx, id); err != nil {
				return err
			}
			if err := insertPages(tx, id, *in.Pages, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetItem(id)
}

// DeleteItem removes the item and, transitively, its pages, actions, and
// location associations. Returns whether a row existed.
func (s *Store) DeleteItem(id int64) (bool, error) {
	var existed bool
	err := s.inTx(func(tx *sql.Tx) error {
		if err := deletePages(tx, id); err != nil {
			return err
		}
		if _, err := tx.Exec("DELETE FROM item_locations WHERE item_id = ?", id); err != nil {
			return fmt.Errorf("deleting item locations: %w", err)
		}
		res, err := tx.Exec("DELETE FROM items WHERE item_id = ?", id)
		if err != nil {
			return fmt.Errorf("deleting item %d: %w", id, err)
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

// ClearItems removes every item with its full subtree and association rows.
// Categories and locations stay. Returns the number of items removed.
func (s *Store) ClearItems() (int64, error) {
	var removed int64
	err := s.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM actions"); err != nil {
			return fmt.Errorf("clearing actions: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM pages"); err != nil {
			return fmt.Errorf("clearing pages: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM item_locations"); err != nil {
			return fmt.Errorf("clearing item locations: %w", err)
		}
		res, err := tx.Exec("DELETE FROM items")
		if err != nil {
			return fmt.Errorf("clearing items: %w", err)
		}
		removed, err = res.RowsAffected()
		return err
	})
	return removed, err
}

// ListItems returns paginated summaries ordered by most recent update
// first. An empty result is not an error.
func (s *Store) ListItems(f types.ItemFilter, offset, limit int) ([]types.ItemSummary, error) {
	query := summarySelect
	where, args := filterClauses(f)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY i.updated_at DESC, i.item_id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	return s.querySummaries(query, args)
}

// SearchItems returns summaries of items whose title contains text
// case-insensitively, ordered alphabetically by title.
func (s *Store) SearchItems(text string, f types.ItemFilter) ([]types.ItemSummary, error) {
	where, args := filterClauses(f)
	where = append([]string{"i.title LIKE '%' || ? || '%' COLLATE NOCASE"}, where...)
	args = append([]any{text}, args...)

	query := summarySelect + " WHERE " + strings.Join(where, " AND ") +
		" ORDER BY i.title COLLATE NOCASE ASC, i.item_id ASC"
	return s.querySummaries(query, args)
}

// ItemsByType returns full item trees of the given type, ordered by id
// ascending. Used for the type-scoped listings and for export.
func (s *Store) ItemsByType(t types.ItemType, f types.ItemFilter) ([]types.Item, error) {
	f.Type = &t
	where, args := filterClauses(f)
	query := "SELECT i.item_id FROM items i WHERE " + strings.Join(where, " AND ") + " ORDER BY i.item_id ASC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items by type: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items := make([]types.Item, 0, len(ids))
	for _, id := range ids {
		item, err := loadItem(s.db, id)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

// filterClauses renders the optional filter fields as WHERE fragments.
func filterClauses(f types.ItemFilter) ([]string, []any) {
	var (
		where []string
		args  []any
	)
	if f.Type != nil {
		where = append(where, "i.item_type = ?")
		args = append(args, string(*f.Type))
	}
	if f.CategoryID != nil {
		where = append(where, "i.category_id = ?")
		args = append(args, *f.CategoryID)
	}
	if f.LocationID != nil {
		where = append(where, "EXISTS (SELECT 1 FROM item_locations il WHERE il.item_id = i.item_id AND il.location_id = ?)")
		args = append(args, *f.LocationID)
	}
	return where, args
}

// querySummaries runs a summarySelect-shaped query and attaches the
// location summaries for all returned items in one extra query.
func (s *Store) querySummaries(query string, args []any) ([]types.ItemSummary, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	summaries := []types.ItemSummary{}
	for rows.Next() {
		var (
			sum      types.ItemSummary
			created  string
			updated  string
			catID    sql.NullInt64
			catName  sql.NullString
			catIcon  sql.NullString
			catColor sql.NullString
		)
		if err := rows.Scan(&sum.ID, &sum.Title, &sum.ItemType, &created, &updated,
			&sum.PagesCount, &catID, &catName, &catIcon, &catColor); err != nil {
			return nil, err
		}
		sum.CreatedAt = parseTime(created)
		sum.UpdatedAt = parseTime(updated)
		if catID.Valid {
			sum.Category = &types.CategorySummary{
				ID:    catID.Int64,
				Name:  catName.String,
				Icon:  catIcon.String,
				Color: catColor.String,
			}
		}
		sum.Locations = []types.LocationSummary{}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.attachLocationSummaries(summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// attachLocationSummaries loads the location summaries for every listed
// item with a single IN query.
func (s *Store) attachLocationSummaries(summaries []types.ItemSummary) error {
	if len(summaries) == 0 {
		return nil
	}

	index := make(map[int64]int, len(summaries))
	placeholders := make([]string, 0, len(summaries))
	args := make([]any, 0, len(summaries))
	for i, sum := range summaries {
		index[sum.ID] = i
		placeholders = append(placeholders, "?")
		args = append(args, sum.ID)
	}

	query := `SELECT il.item_id, l.location_id, l.name, l.code
FROM item_locations il
JOIN locations l ON l.location_id = il.location_id
WHERE il.item_id IN (` + strings.Join(placeholders, ", ") + `)
ORDER BY l.ordinal ASC, l.location_id ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return fmt.Errorf("loading item locations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			itemID int64
			loc    types.LocationSummary
		)
		if err := rows.Scan(&itemID, &loc.ID, &loc.Name, &loc.Code); err != nil {
			return err
		}
		i := index[itemID]
		summaries[i].Locations = append(summaries[i].Locations, loc)
	}
	return rows.Err()
}

// loadItem hydrates the full item tree: row, category summary, locations,
// and pages with actions in ordinal order.
func loadItem(q querier, id int64) (*types.Item, error) {
	var (
		item     types.Item
		created  string
		updated  string
		catID    sql.NullInt64
		catName  sql.NullString
		catIcon  sql.NullString
		catColor sql.NullString
	)
	err := q.QueryRow(
		`SELECT i.item_id, i.title, i.item_type, i.category_id, i.created_at, i.updated_at,
    c.name, c.icon, c.color
FROM items i
LEFT JOIN categories c ON c.category_id = i.category_id
WHERE i.item_id = ?`, id,
	).Scan(&item.ID, &item.Title, &item.ItemType, &catID, &created, &updated,
		&catName, &catIcon, &catColor)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting item %d: %w", id, err)
	}
	item.CreatedAt = parseTime(created)
	item.UpdatedAt = parseTime(updated)
	if catID.Valid {
		v := catID.Int64
		item.CategoryID = &v
		item.Category = &types.CategorySummary{
			ID:    catID.Int64,
			Name:  catName.String,
			Icon:  catIcon.String,
			Color: catColor.String,
		}
	}

	item.Locations, err = loadItemLocations(q, id)
	if err != nil {
		return nil, err
	}
	item.Pages, err = loadPages(q, id)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func loadItemLocations(q querier, itemID int64) ([]types.LocationSummary, error) {
	rows, err := q.Query(
		`SELECT l.location_id, l.name, l.code
FROM item_locations il
JOIN locations l ON l.location_id = il.location_id
WHERE il.item_id = ?
ORDER BY l.ordinal ASC, l.location_id ASC`, itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("loading locations for item %d: %w", itemID, err)
	}
	defer rows.Close()

	locations := []types.LocationSummary{}
	for rows.Next() {
		var loc types.LocationSummary
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Code); err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

func loadPages(q querier, itemID int64) ([]types.Page, error) {
	rows, err := q.Query(
		`SELECT page_id, item_id, title, time, image, ordinal, created_at, updated_at
FROM pages WHERE item_id = ? ORDER BY ordinal ASC, page_id ASC`, itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("loading pages for item %d: %w", itemID, err)
	}
	defer rows.Close()

	pages := []types.Page{}
	for rows.Next() {
		var (
			page    types.Page
			image   sql.NullString
			created string
			updated string
		)
		if err := rows.Scan(&page.ID, &page.ItemID, &page.Title, &page.Time,
			&image, &page.Order, &created, &updated); err != nil {
			return nil, err
		}
		page.Image = image.String
		page.CreatedAt = parseTime(created)
		page.UpdatedAt = parseTime(updated)
		page.Actions = []types.Action{}
		pages = append(pages, page)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(pages) == 0 {
		return pages, nil
	}

	byPage := make(map[int64]int, len(pages))
	for i, p := range pages {
		byPage[p.ID] = i
	}

	arows, err := q.Query(
		`SELECT a.action_id, a.page_id, a.text, a.ordinal, a.created_at
FROM actions a
JOIN pages p ON p.page_id = a.page_id
WHERE p.item_id = ?
ORDER BY p.ordinal ASC, a.ordinal ASC, a.action_id ASC`, itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("loading actions for item %d: %w", itemID, err)
	}
	defer arows.Close()

	for arows.Next() {
		var (
			action  types.Action
			created string
		)
		if err := arows.Scan(&action.ID, &action.PageID, &action.Text, &action.Order, &created); err != nil {
			return nil, err
		}
		action.CreatedAt = parseTime(created)
		i := byPage[action.PageID]
		pages[i].Actions = append(pages[i].Actions, action)
	}
	return pages, arows.Err()
}

// insertPages persists the page inputs with dense 0..n-1 order, each page's
// actions likewise. Empty page time falls back to the default label.
func insertPages(tx *sql.Tx, itemID int64, pages []types.PageInput, now string) error {
	for i, p := range pages {
		pageTime := p.Time
		if pageTime == "" {
			pageTime = types.DefaultPageTime
		}
		var image any
		if p.Image != "" {
			image = p.Image
		}
		res, err := tx.Exec(
			"INSERT INTO pages (item_id, title, time, image, ordinal, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			itemID, p.Title, pageTime, image, i, now, now,
		)
		if err != nil {
			return fmt.Errorf("inserting page %d: %w", i, err)
		}
		pageID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading page id: %w", err)
		}
		for j, text := range p.Actions {
			if _, err := tx.Exec(
				"INSERT INTO actions (page_id, text, ordinal, created_at) VALUES (?, ?, ?, ?)",
				pageID, text, j, now,
			); err != nil {
				return fmt.Errorf("inserting action %d of page %d: %w", j, i, err)
			}
		}
	}
	return nil
}

// deletePages removes the item's whole page subtree, actions first.
func deletePages(tx *sql.Tx, itemID int64) error {
	if _, err := tx.Exec(
		"DELETE FROM actions WHERE page_id IN (SELECT page_id FROM pages WHERE item_id = ?)", itemID,
	); err != nil {
		return fmt.Errorf("deleting actions: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM pages WHERE item_id = ?", itemID); err != nil {
		return fmt.Errorf("deleting pages: %w", err)
	}
	return nil
}

// replaceLocations replaces the item's association set with the subset of
// requested ids that exist. Unknown ids simply match no rows.
func replaceLocations(tx *sql.Tx, itemID int64, ids []int64) error {
	if _, err := tx.Exec("DELETE FROM item_locations WHERE item_id = ?", itemID); err != nil {
		return fmt.Errorf("clearing item locations: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(ids))
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		placeholders = append(placeholders, "?")
		args = append(args, id)
	}
	rows, err := tx.Query(
		"SELECT location_id FROM locations WHERE location_id IN ("+strings.Join(placeholders, ", ")+")",
		args...,
	)
	if err != nil {
		return fmt.Errorf("resolving location ids: %w", err)
	}
	defer rows.Close()

	var found []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return err
		}
		found = append(found, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, locID := range found {
		if _, err := tx.Exec(
			"INSERT INTO item_locations (item_id, location_id) VALUES (?, ?)", itemID, locID,
		); err != nil {
			return fmt.Errorf("associating location %d: %w", locID, err)
		}
	}
	return nil
}

// nullableID converts an optional id to a driver value.
func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}
