package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/goods-catalog/internal/apierr"
)

// writeFile creates a data file in a fresh temp dir and returns its path
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

const testProducts = `[
	{"id":"1","category":"Bread","title":"Rye"},
	{"id":"2","category":"Milk","title":"Kefir"},
	{"id":"3","category":"Bread","title":"Baguette"}
]`

func TestFileProductRepository_GetAll(t *testing.T) {
	repo := NewFileProductRepository(writeFile(t, "db.json", testProducts))

	products, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)

	ids := []string{products[0].ID, products[1].ID, products[2].ID}
	assert.Equal(t, []string{"1", "2", "3"}, ids, "file order must be preserved")
}

func TestFileProductRepository_EmptySources(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.json") }},
		{"empty file", func(t *testing.T) string { return writeFile(t, "db.json", "") }},
		{"whitespace only", func(t *testing.T) string { return writeFile(t, "db.json", " \n\t") }},
		{"json null", func(t *testing.T) string { return writeFile(t, "db.json", "null") }},
		{"empty array", func(t *testing.T) string { return writeFile(t, "db.json", "[]") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFileProductRepository(tt.path(t))

			products, err := repo.GetAll(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, products)
			assert.Empty(t, products)
		})
	}
}

func TestFileProductRepository_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"truncated", `[{"id":"1"`},
		{"object instead of array", `{"id":"1"}`},
		{"bad id type", `[{"id":true}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFileProductRepository(writeFile(t, "db.json", tt.content))

			_, err := repo.GetAll(context.Background())
			require.Error(t, err)

			var apiErr *apierr.Error
			assert.False(t, errors.As(err, &apiErr), "load failures must not look like application errors")
		})
	}
}

func TestFileProductRepository_ReadsFreshOnEveryCall(t *testing.T) {
	path := writeFile(t, "db.json", `[{"id":"1","category":"Bread"}]`)
	repo := NewFileProductRepository(path)

	products, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	require.NoError(t, os.WriteFile(path, []byte(testProducts), 0644))

	products, err = repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestFileProductRepository_GetByID(t *testing.T) {
	repo := NewFileProductRepository(writeFile(t, "db.json", testProducts))
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		product, err := repo.GetByID(ctx, "2")
		require.NoError(t, err)

		out, err := json.Marshal(product)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"2","category":"Milk","title":"Kefir"}`, string(out))
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "9")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("first match wins", func(t *testing.T) {
		dup := NewFileProductRepository(writeFile(t, "db.json",
			`[{"id":"5","category":"A"},{"id":"5","category":"B"}]`))

		product, err := dup.GetByID(ctx, "5")
		require.NoError(t, err)
		assert.Equal(t, "A", product.Category)
	})
}

func TestFileProductRepository_CancelledContext(t *testing.T) {
	repo := NewFileProductRepository(writeFile(t, "db.json", testProducts))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithLoadHook(t *testing.T) {
	type call struct {
		source string
		failed bool
	}
	var calls []call
	hook := WithLoadHook(func(source string, err error) {
		calls = append(calls, call{source, err != nil})
	})

	products := NewFileProductRepository(writeFile(t, "db.json", testProducts), hook)
	broken := NewFileCategoryRepository(writeFile(t, "category.json", "{"), hook)

	_, err := products.GetAll(context.Background())
	require.NoError(t, err)
	_, err = broken.GetAll(context.Background())
	require.Error(t, err)

	assert.Equal(t, []call{{"products", false}, {"categories", true}}, calls)
}
