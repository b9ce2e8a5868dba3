package types

import "time"

// Location is a named site or unit tag with a unique name and code. Items
// associate with locations many-to-many; deleting a location removes only
// the association rows.
type Location struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

// LocationSummary is the denormalized location shape attached to items.
type LocationSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// LocationCreate is the payload for creating a location.
type LocationCreate struct {
	Name  string `json:"name"`
	Code  string `json:"code"`
	Order int    `json:"order"`
}

// Validate checks the creation payload constraints.
func (c LocationCreate) Validate() error {
	if c.Name == "" {
		return errRequired("name")
	}
	if len(c.Name) > MaxTitleLen {
		return errTooLong("name", MaxTitleLen)
	}
	if c.Code == "" {
		return errRequired("code")
	}
	if len(c.Code) > MaxTimeLen {
		return errTooLong("code", MaxTimeLen)
	}
	return nil
}

// LocationUpdate is the partial-update payload.
type LocationUpdate struct {
	Name  *string `json:"name"`
	Code  *string `json:"code"`
	Order *int    `json:"order"`
}

// Validate checks constraints on the fields present in the payload.
func (u LocationUpdate) Validate() error {
	if u.Name != nil {
		if *u.Name == "" {
			return errRequired("name")
		}
		if len(*u.Name) > MaxTitleLen {
			return errTooLong("name", MaxTitleLen)
		}
	}
	if u.Code != nil {
		if *u.Code == "" {
			return errRequired("code")
		}
		if len(*u.Code) > MaxTimeLen {
			return errTooLong("code", MaxTimeLen)
		}
	}
	return nil
}
