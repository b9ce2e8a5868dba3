package types

import "encoding/json"

// OptionalID is a nullable reference field that distinguishes three states
// in a partial-update payload: key absent (Set == false), key present with
// null (Set && !Valid), and key present with a value (Set && Valid).
// The zero value means "absent".
type OptionalID struct {
	Set   bool
	Valid bool
	Value int64
}

// UnmarshalJSON is only invoked when the key is present in the payload, so
// its invocation alone marks the field as set.
func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalJSON encodes the value, or null when unset or null.
func (o OptionalID) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr returns the value as a nullable pointer: nil when absent or null.
func (o OptionalID) Ptr() *int64 {
	if !o.Set || !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
