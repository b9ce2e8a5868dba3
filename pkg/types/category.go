package types

import (
	"fmt"
	"time"
)

// Defaults for decorative category fields.
const (
	DefaultCategoryIcon  = "📁"
	DefaultCategoryColor = "#3498db"
)

// Category is a named, typed grouping for items. Items reference it weakly:
// deleting a category detaches its items instead of deleting them.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ItemType  ItemType  `json:"item_type"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	Order     int       `json:"order"`
	Items     int       `json:"items_count"`
	CreatedAt time.Time `json:"created_at"`
}

// CategorySummary is the denormalized category shape attached to items.
type CategorySummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// CategoryCreate is the payload for creating a category. Icon and Color
// fall back to defaults when empty. ItemType is fixed at creation.
type CategoryCreate struct {
	Name     string   `json:"name"`
	ItemType ItemType `json:"item_type"`
	Icon     string   `json:"icon"`
	Color    string   `json:"color"`
	Order    int      `json:"order"`
}

// Validate checks the creation payload constraints.
func (c CategoryCreate) Validate() error {
	if c.Name == "" {
		return errRequired("name")
	}
	if len(c.Name) > MaxTitleLen {
		return errTooLong("name", MaxTitleLen)
	}
	if !c.ItemType.Valid() {
		return &ValidationError{Field: "item_type", Message: fmt.Sprintf("unknown item type %q", string(c.ItemType))}
	}
	return nil
}

// CategoryUpdate is the partial-update payload. ItemType is deliberately
// not updatable; it is fixed at creation.
type CategoryUpdate struct {
	Name  *string `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
	Order *int    `json:"order"`
}

// Validate checks constraints on the fields present in the payload.
func (u CategoryUpdate) Validate() error {
	if u.Name != nil {
		if *u.Name == "" {
			return errRequired("name")
		}
		if len(*u.Name) > MaxTitleLen {
			return errTooLong("name", MaxTitleLen)
		}
	}
	return nil
}
