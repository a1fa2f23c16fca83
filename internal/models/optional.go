package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state JSON field for partial updates. A field absent
// from the payload leaves the column untouched, an explicit null clears it,
// and a value replaces it.
type Optional[T any] struct {
	Value T
	Valid bool // false when the payload carried an explicit null
	Set   bool // false when the field was absent from the payload
}

func NewOptional[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true, Set: true}
}

// Null returns an Optional representing an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
