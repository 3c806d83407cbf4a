package repository

import (
	"context"

	"github.com/Lixing-Zhang/goods-catalog/internal/apierr"
	"github.com/Lixing-Zhang/goods-catalog/internal/models"
)

var (
	// ErrProductNotFound is the typed 404 the router writes verbatim.
	ErrProductNotFound = apierr.NotFound
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// FileProductRepository implements ProductRepository over a JSON array file.
// Every call reads the file again; nothing is cached between calls.
type FileProductRepository struct {
	source *jsonFile
}

// NewFileProductRepository creates a repository reading products from path
func NewFileProductRepository(path string, opts ...Option) *FileProductRepository {
	return &FileProductRepository{
		source: newJSONFile("products", path, opts...),
	}
}

// GetAll returns all products in file order
func (r *FileProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.source.load(ctx, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// GetByID returns the first product with the given ID
func (r *FileProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	products, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, ErrProductNotFound
}
