package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Product is a catalog record. Only ID and Category are interpreted;
// the full original JSON object is kept and written back unchanged.
type Product struct {
	ID       string
	Category string

	raw json.RawMessage
}

type productFields struct {
	ID       json.RawMessage `json:"id"`
	Category *string         `json:"category"`
}

// UnmarshalJSON decodes a product object. The id may be a JSON string or
// number; numbers keep their literal text.
func (p *Product) UnmarshalJSON(data []byte) error {
	var fields productFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	id, err := decodeID(fields.ID)
	if err != nil {
		return err
	}

	p.ID = id
	p.Category = ""
	if fields.Category != nil {
		p.Category = *fields.Category
	}
	p.raw = append(p.raw[:0], data...)
	return nil
}

// MarshalJSON writes the original object, or a minimal one for products
// built in code.
func (p Product) MarshalJSON() ([]byte, error) {
	if len(p.raw) > 0 {
		return p.raw, nil
	}
	return json.Marshal(struct {
		ID       string `json:"id"`
		Category string `json:"category"`
	}{p.ID, p.Category})
}

func decodeID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", fmt.Errorf("product id must be a string or number: %w", err)
		}
		return n.String(), nil
	}
}
