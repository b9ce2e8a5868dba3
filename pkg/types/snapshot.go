package types

// Snapshot is the full export representation of all items, grouped by type.
// It is an administrative backup format: flat page/action trees without
// row ids for children.
type Snapshot struct {
	Incidents    []SnapshotItem `json:"incidents"`
	Instructions []SnapshotItem `json:"instructions"`
}

// SnapshotItem is one exported item. The ID is informational only; import
// always creates new records and never reuses snapshot ids.
type SnapshotItem struct {
	ID          int64          `json:"id,omitempty"`
	Title       string         `json:"title"`
	CategoryID  *int64         `json:"category_id,omitempty"`
	LocationIDs []int64        `json:"location_ids,omitempty"`
	Pages       []SnapshotPage `json:"pages"`
}

// SnapshotPage is one exported page with its action texts in order.
type SnapshotPage struct {
	Title   string   `json:"title"`
	Time    string   `json:"time"`
	Image   string   `json:"image"`
	Actions []string `json:"actions"`
}

// ImportCounts reports how many items an import created per type.
type ImportCounts struct {
	Incidents    int `json:"incidents"`
	Instructions int `json:"instructions"`
}
