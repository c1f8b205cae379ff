// Package repository persists the product catalog as a single JSON array file.
package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/quotecraft/quotecraft-backend/internal/catalog/domain"
)

type Repo struct {
	path string
}

func NewRepo(path string) *Repo {
	return &Repo{path: path}
}

// List returns the full catalog. A missing file reads as an empty catalog.
func (r *Repo) List() ([]domain.Product, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.Product{}, nil
		}
		return nil, fmt.Errorf("read products file: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse products file: %w", err)
	}
	return products, nil
}

// Replace overwrites the entire catalog with the given products.
func (r *Repo) Replace(products []domain.Product) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal products: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write products file: %w", err)
	}
	return nil
}
