// Package repository persists the customer list as a single JSON array file.
package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/quotecraft/quotecraft-backend/internal/customers/domain"
)

// Repo stores all customers in one JSON document and rewrites the whole
// array on every mutation. There is no per-record locking; the app assumes
// a single operator.
type Repo struct {
	path string
	now  func() time.Time
}

func NewRepo(path string) *Repo {
	return &Repo{path: path, now: time.Now}
}

// NewRepoWithClock creates a Repo with an injected clock (for testing id
// assignment).
func NewRepoWithClock(path string, now func() time.Time) *Repo {
	return &Repo{path: path, now: now}
}

// List returns all customers. A missing file reads as an empty list.
func (r *Repo) List() ([]domain.Customer, error) {
	return r.readAll()
}

// Add assigns the new customer an id derived from the current time
// (milliseconds since epoch, matching the ids already on disk), appends it
// and rewrites the file.
func (r *Repo) Add(customer domain.Customer) (*domain.Customer, error) {
	customers, err := r.readAll()
	if err != nil {
		return nil, err
	}

	customer.ID = strconv.FormatInt(r.now().UnixMilli(), 10)
	customers = append(customers, customer)

	if err := r.writeAll(customers); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Update replaces the customer with the matching id in place.
func (r *Repo) Update(customer domain.Customer) error {
	customers, err := r.readAll()
	if err != nil {
		return err
	}

	for i := range customers {
		if customers[i].ID == customer.ID {
			customers[i] = customer
			return r.writeAll(customers)
		}
	}
	return domain.ErrCustomerNotFound
}

// Delete removes the customer with the given id.
func (r *Repo) Delete(id string) error {
	customers, err := r.readAll()
	if err != nil {
		return err
	}

	kept := customers[:0]
	for _, customer := range customers {
		if customer.ID != id {
			kept = append(kept, customer)
		}
	}
	if len(kept) == len(customers) {
		return domain.ErrCustomerNotFound
	}
	return r.writeAll(kept)
}

func (r *Repo) readAll() ([]domain.Customer, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.Customer{}, nil
		}
		return nil, fmt.Errorf("read customers file: %w", err)
	}

	var customers []domain.Customer
	if err := json.Unmarshal(data, &customers); err != nil {
		return nil, fmt.Errorf("parse customers file: %w", err)
	}
	return customers, nil
}

func (r *Repo) writeAll(customers []domain.Customer) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	data, err := json.MarshalIndent(customers, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal customers: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write customers file: %w", err)
	}
	return nil
}
