package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Lixing-Zhang/goods-catalog/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RouterConfig wires the public router.
type RouterConfig struct {
	APIPrefix   string
	ImagePrefix string
	Products    *ProductHandler
	Images      http.Handler
	Metrics     middleware.RequestObserver
	Logger      *slog.Logger
}

// DefaultImagePrefix is the URL prefix of the static image route.
const DefaultImagePrefix = "/img"

// NewRouter builds the public route table. Routes are tried in this order:
//
//	ANY     {image}/*          raw image bytes, no JSON or CORS headers
//	OPTIONS any path           200, empty body
//	GET     {prefix}           list goods (also {prefix}/)
//	GET     {prefix}/category  list categories
//	GET     {prefix}/{id}      get item
//	other methods on the three routes above: 200 null
//	anything else: 404 {"message":"Not Found"}
//
// Static segments win over {id}, so "category" is never looked up as an id.
func NewRouter(cfg RouterConfig) http.Handler {
	imagePrefix := cfg.ImagePrefix
	if imagePrefix == "" {
		imagePrefix = DefaultImagePrefix
	}
	imagePrefix = strings.TrimSuffix(imagePrefix, "/")

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}
	r.Use(chimiddleware.Recoverer)

	r.Handle(imagePrefix+"/*", cfg.Images)

	api := chi.NewRouter()
	// CORS first: the fixed headers set by JSONHeaders must win over the
	// per-request values go-chi/cors writes on a preflight.
	api.Use(middleware.CORS())
	api.Use(middleware.JSONHeaders)
	api.Use(middleware.Preflight)

	// Set before Route so the product sub-router inherits them.
	api.NotFound(cfg.Products.NotFound)
	api.MethodNotAllowed(cfg.Products.Unsupported)

	api.Route(cfg.APIPrefix, func(r chi.Router) {
		r.Get("/", cfg.Products.ListProducts)
		r.Get("/category", cfg.Products.ListCategories)
		r.Get("/{id}", cfg.Products.GetProduct)
	})

	r.Mount("/", api)
	r.NotFound(api.ServeHTTP)

	return r
}

// NewAdminRouter builds the operational routes served on the admin listener.
func NewAdminRouter(health http.Handler, metrics http.Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Method(http.MethodGet, "/health", health)
	r.Method(http.MethodGet, "/metrics", metrics)

	return r
}
