package repository

import (
	"context"

	"github.com/Lixing-Zhang/goods-catalog/internal/models"
)

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
}

// FileCategoryRepository implements CategoryRepository over a JSON array file.
type FileCategoryRepository struct {
	source *jsonFile
}

// NewFileCategoryRepository creates a repository reading categories from path
func NewFileCategoryRepository(path string, opts ...Option) *FileCategoryRepository {
	return &FileCategoryRepository{
		source: newJSONFile("categories", path, opts...),
	}
}

// GetAll returns every category in file order
func (r *FileCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.source.load(ctx, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}
