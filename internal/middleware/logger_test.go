package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/goods-catalog/pkg/logger"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info")

	handler := Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Item Not Found"}`))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/product/9?x=1", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http request", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/product/9", entry["path"])
	assert.Equal(t, "x=1", entry["query"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Equal(t, float64(len(`{"message":"Item Not Found"}`)), entry["bytes"])
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	ww := wrap(rec)

	_, _ = ww.Write([]byte("x"))
	ww.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusOK, ww.statusCode, "status is fixed by the first write")
	assert.Same(t, ww, wrap(ww))
}

type observation struct {
	route  string
	method string
	status int
}

type fakeObserver struct {
	seen []observation
}

func (f *fakeObserver) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	f.seen = append(f.seen, observation{route, method, status})
}

func TestMetrics(t *testing.T) {
	obs := &fakeObserver{}

	r := chi.NewRouter()
	r.Use(Metrics(obs))
	r.Get("/api/product/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/product/9", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, []observation{
		{"/api/product/{id}", "GET", http.StatusNotFound},
		{"unmatched", "GET", http.StatusNotFound},
	}, obs.seen)
}
