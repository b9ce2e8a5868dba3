package types

import (
	"fmt"
	"time"
)

// ItemType classifies a knowledge-base item.
type ItemType string

// Recognized item types.
const (
	ItemTypeIncident    ItemType = "incident"
	ItemTypeInstruction ItemType = "instruction"
)

// Valid reports whether t is a recognized item type.
func (t ItemType) Valid() bool {
	return t == ItemTypeIncident || t == ItemTypeInstruction
}

// ParseItemType converts a string to an ItemType, rejecting unknown values.
func ParseItemType(s string) (ItemType, error) {
	t := ItemType(s)
	if !t.Valid() {
		return "", &ValidationError{Field: "item_type", Message: fmt.Sprintf("unknown item type %q", s)}
	}
	return t, nil
}

// Field length limits shared by creation and update payloads.
const (
	MaxTitleLen  = 255
	MaxTimeLen   = 50
	MaxActionLen = 1000
)

// Defaults applied to page fields when a payload omits them.
const (
	DefaultPageTitle = "Page"
	DefaultPageTime  = "5 minutes"
)

// Item is a top-level knowledge-base record, either an incident report or an
// operating instruction. It exclusively owns its ordered pages and holds a
// weak reference to a category plus a non-owning association to locations.
type Item struct {
	ID         int64             `json:"id"`
	Title      string            `json:"title"`
	ItemType   ItemType          `json:"item_type"`
	CategoryID *int64            `json:"category_id"`
	Category   *CategorySummary  `json:"category,omitempty"`
	Locations  []LocationSummary `json:"locations"`
	Pages      []Page            `json:"pages"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// Page is one ordered step within an item's procedure.
type Page struct {
	ID        int64     `json:"id"`
	ItemID    int64     `json:"item_id"`
	Title     string    `json:"title"`
	Time      string    `json:"time"`
	Image     string    `json:"image,omitempty"`
	Order     int       `json:"order"`
	Actions   []Action  `json:"actions"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Action is one ordered atomic instruction within a page.
type Action struct {
	ID        int64     `json:"id"`
	PageID    int64     `json:"page_id"`
	Text      string    `json:"text"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemSummary is the listing shape: no page bodies, only a page count and
// denormalized category/location summaries.
type ItemSummary struct {
	ID         int64             `json:"id"`
	Title      string            `json:"title"`
	ItemType   ItemType          `json:"item_type"`
	PagesCount int               `json:"pages_count"`
	Category   *CategorySummary  `json:"category,omitempty"`
	Locations  []LocationSummary `json:"locations"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// ItemFilter narrows listing and search operations. Nil fields do not
// filter.
type ItemFilter struct {
	Type       *ItemType
	CategoryID *int64
	LocationID *int64
}

// PageInput is a page within a creation or replace-all update payload.
// The position in the enclosing slice is the display order; actions are
// plain strings whose position is likewise their order.
type PageInput struct {
	Title   string   `json:"title"`
	Time    string   `json:"time"`
	Image   string   `json:"image"`
	Actions []string `json:"actions"`
}

// ItemCreate is the payload for creating an item together with its full
// page/action tree.
type ItemCreate struct {
	Title       string      `json:"title"`
	ItemType    ItemType    `json:"item_type"`
	CategoryID  *int64      `json:"category_id,omitempty"`
	LocationIDs []int64     `json:"location_ids,omitempty"`
	Pages       []PageInput `json:"pages"`
}

// Validate checks all field constraints before any persistence happens.
func (c ItemCreate) Validate() error {
	if c.Title == "" {
		return errRequired("title")
	}
	if len(c.Title) > MaxTitleLen {
		return errTooLong("title", MaxTitleLen)
	}
	if !c.ItemType.Valid() {
		return &ValidationError{Field: "item_type", Message: fmt.Sprintf("unknown item type %q", string(c.ItemType))}
	}
	return validatePages(c.Pages)
}

// ItemUpdate is the partial-update payload. Every field is optional; a nil
// pointer means the field was omitted and the stored value is kept. Pages
// and LocationIDs, when present (even empty), replace the stored set
// wholesale. CategoryID distinguishes omitted from explicit null.
type ItemUpdate struct {
	Title       *string      `json:"title"`
	ItemType    *ItemType    `json:"item_type"`
	CategoryID  OptionalID   `json:"category_id"`
	LocationIDs *[]int64     `json:"location_ids"`
	Pages       *[]PageInput `json:"pages"`
}

// Validate checks constraints on all fields present in the payload.
func (u ItemUpdate) Validate() error {
	if u.Title != nil {
		if *u.Title == "" {
			return errRequired("title")
		}
		if len(*u.Title) > MaxTitleLen {
			return errTooLong("title", MaxTitleLen)
		}
	}
	if u.ItemType != nil && !u.ItemType.Valid() {
		return &ValidationError{Field: "item_type", Message: fmt.Sprintf("unknown item type %q", string(*u.ItemType))}
	}
	if u.Pages != nil {
		return validatePages(*u.Pages)
	}
	return nil
}

func validatePages(pages []PageInput) error {
	for i, p := range pages {
		if p.Title == "" {
			return errRequired(fmt.Sprintf("pages[%d].title", i))
		}
		if len(p.Title) > MaxTitleLen {
			return errTooLong(fmt.Sprintf("pages[%d].title", i), MaxTitleLen)
		}
		if len(p.Time) > MaxTimeLen {
			return errTooLong(fmt.Sprintf("pages[%d].time", i), MaxTimeLen)
		}
		for j, a := range p.Actions {
			if a == "" {
				return errRequired(fmt.Sprintf("pages[%d].actions[%d]", i, j))
			}
			if len(a) > MaxActionLen {
				return errTooLong(fmt.Sprintf("pages[%d].actions[%d]", i, j), MaxActionLen)
			}
		}
	}
	return nil
}
