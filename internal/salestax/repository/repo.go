// Package repository persists the sales tax rate as a plain-text file
// holding a single floating-point percentage.
package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultRate is returned when the rate file is missing or unreadable.
const DefaultRate = 8.25

type Repo struct {
	path string
}

func NewRepo(path string) *Repo {
	return &Repo{path: path}
}

// Get reads the stored rate. Any read or parse failure falls back to
// DefaultRate; a missing rate file is a normal first-run condition, not
// an error the caller needs to handle.
func (r *Repo) Get() float64 {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return DefaultRate
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return DefaultRate
	}
	return rate
}

// Set writes the rate as its decimal text representation.
func (r *Repo) Set(rate float64) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	text := strconv.FormatFloat(rate, 'f', -1, 64)
	if err := os.WriteFile(r.path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write sales tax file: %w", err)
	}
	return nil
}
