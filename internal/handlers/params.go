package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// pathParam returns a chi URL parameter percent-decoded exactly once.
// chi matches on RawPath when the request has one (e.g. an escaped '/'),
// and on the already decoded Path otherwise.
func pathParam(r *http.Request, name string) string {
	value := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return value
	}
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}
