package models

import (
	"encoding/json"
	"errors"
)

// Category is an opaque category record, passed through as read.
type Category struct {
	raw json.RawMessage
}

// NewCategory wraps an already encoded JSON value.
func NewCategory(raw json.RawMessage) Category {
	return Category{raw: raw}
}

func (c *Category) UnmarshalJSON(data []byte) error {
	if !json.Valid(data) {
		return errors.New("invalid category JSON")
	}
	c.raw = append(c.raw[:0], data...)
	return nil
}

func (c Category) MarshalJSON() ([]byte, error) {
	if len(c.raw) == 0 {
		return []byte("null"), nil
	}
	return c.raw, nil
}
