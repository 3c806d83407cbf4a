package handlers

import (
	"net/url"
	"strings"
)

// ParseQuery splits a raw query string into key/value pairs.
//
// Pieces are separated by '&' and split on the first '='. Only values are
// percent-decoded ('+' stays a plus); a value that does not decode is kept
// as sent. A key without '=' maps to "". Later keys replace earlier ones.
func ParseQuery(raw string) map[string]string {
	params := make(map[string]string)
	if raw == "" {
		return params
	}

	for _, piece := range strings.Split(raw, "&") {
		key, value, _ := strings.Cut(piece, "=")
		if decoded, err := url.PathUnescape(value); err == nil {
			value = decoded
		}
		params[key] = value
	}
	return params
}
