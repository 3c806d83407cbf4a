package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/goods-catalog/internal/apierr"
	"github.com/Lixing-Zhang/goods-catalog/internal/service"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ListProducts handles GET {prefix} and GET {prefix}/
// Query parameters:
// - category: case-insensitive exact category match
// - list: comma separated ids; present but empty selects nothing
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := ParseQuery(r.URL.RawQuery)

	filter := service.ProductFilter{Category: params["category"]}
	if list, ok := params["list"]; ok {
		filter.List = &list
	}

	products, err := h.service.ListProducts(r.Context(), filter)
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}

// GetProduct handles GET {prefix}/{id}
// - 200: the matching record
// - 404: {"message":"Item Not Found"}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := pathParam(r, "id")

	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		if errors.Is(err, apierr.NotFound) {
			h.logger.Debug("product not found", "productId", productID)
		}
		writeFailure(w, r, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}

// ListCategories handles GET {prefix}/category
func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, categories, h.logger)
}

// Unsupported answers a known route hit with a method other than GET.
// The body is JSON null with status 200.
func (h *ProductHandler) Unsupported(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, nil, h.logger)
}

// NotFound answers any path outside the route table.
func (h *ProductHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, apierr.BadRoute, h.logger)
}
