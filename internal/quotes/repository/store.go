// Package repository persists quotes as individual JSON documents on disk.
package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/quotecraft/quotecraft-backend/internal/quotes/domain"
)

// Store maps quote numbers to JSON documents inside a dedicated quotes
// directory, one file per quote named quote-<quoteNumber>.json.
//
// There is no locking: concurrent writers racing on the same filename are
// last-writer-wins. The app assumes a single operator, so this is a
// documented limitation rather than something the store serializes.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created lazily
// on the first write, not here.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes the quote as pretty-printed JSON to quote-<quoteNumber>.json,
// creating the quotes directory if it does not exist yet. The returned
// filename is the base name of the written file.
func (s *Store) Save(quote *domain.Quote) (string, error) {
	filename := domain.Filename(quote.QuoteNumber)
	if err := s.write(quote, filename); err != nil {
		return "", err
	}
	return filename, nil
}

// Update overwrites the named file in place with the full new document.
// Unlike Save it requires the file to already exist; updating a quote that
// was deleted underneath the user reports domain.ErrQuoteNotFound.
func (s *Store) Update(quote *domain.Quote, filename string) error {
	if _, err := os.Stat(filepath.Join(s.dir, filename)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ErrQuoteNotFound
		}
		return fmt.Errorf("stat quote file: %w", err)
	}
	return s.write(quote, filename)
}

func (s *Store) write(quote *domain.Quote, filename string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create quotes directory: %w", err)
	}

	data, err := json.MarshalIndent(quote, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal quote: %w", err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return fmt.Errorf("write quote file: %w", err)
	}
	return nil
}

// Read returns the raw contents of the named quote file, or
// domain.ErrQuoteNotFound if it does not exist.
func (s *Store) Read(filename string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrQuoteNotFound
		}
		return nil, fmt.Errorf("read quote file: %w", err)
	}
	return data, nil
}

// List returns all .json filenames in the quotes directory, newest first.
// Ordering compares the timestamp embedded in the filename; because every
// component of the quote number is fixed-width zero-padded, a plain string
// comparison orders the same as a numeric one. Filenames whose timestamp
// cannot be extracted keep their relative position (the sort is stable).
// A missing directory lists as empty rather than failing.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read quotes directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		files = append(files, entry.Name())
	}

	sort.SliceStable(files, func(i, j int) bool {
		a, errA := domain.NumberFromFilename(files[i])
		b, errB := domain.NumberFromFilename(files[j])
		if errA != nil || errB != nil {
			return false
		}
		return a > b
	})

	return files, nil
}

// Delete removes the named quote file. Deleting a file that does not exist
// reports domain.ErrQuoteNotFound and leaves everything else untouched.
func (s *Store) Delete(filename string) error {
	if err := os.Remove(filepath.Join(s.dir, filename)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ErrQuoteNotFound
		}
		return fmt.Errorf("delete quote file: %w", err)
	}
	return nil
}
