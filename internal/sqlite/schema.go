// Schema DDL for the knowledge-base tables.
package sqlite

// The page and action `ordinal` columns carry the display order; they are
// rewritten densely from 0 whenever a page set is (re)created, so gaps never
// accumulate. Referential integrity mirrors the ownership model: pages and
// actions are owned (CASCADE), the category reference is weak (SET NULL),
// and item_locations is a pure association table.
const (
	createCategories = `CREATE TABLE IF NOT EXISTS categories (
    category_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    item_type TEXT NOT NULL,
    icon TEXT NOT NULL,
    color TEXT NOT NULL,
    ordinal INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);`

	createLocations = `CREATE TABLE IF NOT EXISTS locations (
    location_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    code TEXT NOT NULL UNIQUE,
    ordinal INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);`

	createItems = `CREATE TABLE IF NOT EXISTS items (
    item_id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    item_type TEXT NOT NULL,
    category_id INTEGER REFERENCES categories(category_id) ON DELETE SET NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createPages = `CREATE TABLE IF NOT EXISTS pages (
    page_id INTEGER PRIMARY KEY AUTOINCREMENT,
    item_id INTEGER NOT NULL REFERENCES items(item_id) ON DELETE CASCADE,
    title TEXT NOT NULL,
    time TEXT NOT NULL,
    image TEXT,
    ordinal INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createActions = `CREATE TABLE IF NOT EXISTS actions (
    action_id INTEGER PRIMARY KEY AUTOINCREMENT,
    page_id INTEGER NOT NULL REFERENCES pages(page_id) ON DELETE CASCADE,
    text TEXT NOT NULL,
    ordinal INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);`

	createItemLocations = `CREATE TABLE IF NOT EXISTS item_locations (
    item_id INTEGER NOT NULL REFERENCES items(item_id) ON DELETE CASCADE,
    location_id INTEGER NOT NULL REFERENCES locations(location_id) ON DELETE CASCADE,
    PRIMARY KEY (item_id, location_id)
);`

	createIndexes = `CREATE INDEX IF NOT EXISTS idx_items_type ON items(item_type);
CREATE INDEX IF NOT EXISTS idx_items_title ON items(title);
CREATE INDEX IF NOT EXISTS idx_items_category ON items(category_id);
CREATE INDEX IF NOT EXISTS idx_pages_item ON pages(item_id);
CREATE INDEX IF NOT EXISTS idx_actions_page ON actions(page_id);`
)

// schemaStatements lists all DDL in dependency order.
var schemaStatements = []string{
	createCategories,
	createLocations,
	createItems,
	createPages,
	createActions,
	createItemLocations,
	createIndexes,
}
