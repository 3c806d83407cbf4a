package service

import (
	"context"
	"strings"

	"github.com/Lixing-Zhang/goods-catalog/internal/models"
	"github.com/Lixing-Zhang/goods-catalog/internal/repository"
)

// ProductFilter narrows ListProducts.
//
// Category is matched case-insensitively against the whole product category;
// an empty value disables the filter. List is a comma separated set of ids:
// nil disables the filter, a pointer to "" selects nothing.
type ProductFilter struct {
	Category string
	List     *string
}

// ProductService handles business logic for products
type ProductService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductService creates a new product service
func NewProductService(products repository.ProductRepository, categories repository.CategoryRepository) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
	}
}

// ListProducts returns the products matching every active filter, in catalog order
func (s *ProductService) ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	if filter.List != nil && *filter.List == "" {
		return []models.Product{}, nil
	}

	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return FilterProducts(products, filter), nil
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.products.GetByID(ctx, id)
}

// ListCategories returns every category, unfiltered
func (s *ProductService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.GetAll(ctx)
}

// FilterProducts applies filter to products without touching the input slice.
func FilterProducts(products []models.Product, filter ProductFilter) []models.Product {
	if filter.List != nil && *filter.List == "" {
		return []models.Product{}
	}

	category := strings.ToLower(strings.TrimSpace(filter.Category))

	var ids map[string]struct{}
	if filter.List != nil {
		tokens := strings.Split(*filter.List, ",")
		ids = make(map[string]struct{}, len(tokens))
		for _, id := range tokens {
			ids[id] = struct{}{}
		}
	}

	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if filter.Category != "" && strings.ToLower(p.Category) != category {
			continue
		}
		if ids != nil {
			if _, ok := ids[p.ID]; !ok {
				continue
			}
		}
		result = append(result, p)
	}
	return result
}
