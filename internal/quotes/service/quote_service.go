// Package service orchestrates the quote lifecycle: create, edit, view,
// list, delete.
package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/quotecraft/quotecraft-backend/internal/quotes/domain"
	"github.com/quotecraft/quotecraft-backend/internal/quotes/pricing"
	"github.com/quotecraft/quotecraft-backend/internal/quotes/repository"
)

// SaveResult is what the UI sees after a save or update attempt. Storage
// failures surface here as a message, never as a fault that crosses the
// handler boundary.
type SaveResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Filename string `json:"filename,omitempty"`

	// NotFound distinguishes a vanished target file from a generic storage
	// failure so the HTTP layer can answer 404 instead of 500.
	NotFound bool `json:"-"`
}

// Entry pairs a stored quote with the filename it lives under.
type Entry struct {
	Filename string       `json:"filename"`
	Quote    domain.Quote `json:"quote"`
}

// QuoteService sequences pricing, numbering and storage for the quote flows.
type QuoteService struct {
	store *repository.Store
	now   func() time.Time
}

// NewQuoteService creates a QuoteService using the local wall clock.
func NewQuoteService(store *repository.Store) *QuoteService {
	return &QuoteService{store: store, now: time.Now}
}

// NewQuoteServiceWithClock creates a QuoteService with an injected clock
// (for testing quote number assignment).
func NewQuoteServiceWithClock(store *repository.Store, now func() time.Time) *QuoteService {
	return &QuoteService{store: store, now: now}
}

// Create computes the total from the submitted line items, assigns a quote
// number from the current time unless the submission already carries one,
// and saves the document. The submitted total is ignored; the stored total
// is always recomputed server-side.
func (s *QuoteService) Create(quote domain.Quote) SaveResult {
	quote.Total = pricing.Total(quote.Products)
	if quote.QuoteNumber == "" {
		quote.QuoteNumber = domain.NumberAt(s.now())
	}

	filename, err := s.store.Save(&quote)
	if err != nil {
		log.Printf("Error saving quote: %v", err)
		return SaveResult{Success: false, Message: "Error saving quote"}
	}

	return SaveResult{
		Success:  true,
		Message:  fmt.Sprintf("Quote saved as %s", filename),
		Filename: filename,
	}
}

// Update recomputes the total and overwrites the named file with the full
// new document. The quote number submitted with the edit is preserved as-is
// so an edited quote never changes identity.
func (s *QuoteService) Update(quote domain.Quote, filename string) SaveResult {
	quote.Total = pricing.Total(quote.Products)

	if err := s.store.Update(&quote, filename); err != nil {
		if err == domain.ErrQuoteNotFound {
			return SaveResult{Success: false, Message: "Quote not found", NotFound: true}
		}
		log.Printf("Error updating quote: %v", err)
		return SaveResult{Success: false, Message: "Error updating quote"}
	}

	return SaveResult{Success: true, Message: "Quote updated successfully!", Filename: filename}
}

// Get loads and parses a single stored quote. Both edit and the read-only
// view use this path; the difference is only whether the caller writes back.
func (s *QuoteService) Get(filename string) (*domain.Quote, error) {
	data, err := s.store.Read(filename)
	if err != nil {
		return nil, err
	}

	var quote domain.Quote
	if err := json.Unmarshal(data, &quote); err != nil {
		return nil, fmt.Errorf("parse quote %s: %w", filename, err)
	}
	return &quote, nil
}

// List returns all stored quotes newest first, paired with their filenames.
// Entries that cannot be read or parsed are skipped with a log line so one
// corrupt file never takes down the whole index.
func (s *QuoteService) List() ([]Entry, error) {
	files, err := s.store.List()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(files))
	for _, filename := range files {
		quote, err := s.Get(filename)
		if err != nil {
			log.Printf("Skipping unreadable quote file %s: %v", filename, err)
			continue
		}
		entries = append(entries, Entry{Filename: filename, Quote: *quote})
	}
	return entries, nil
}

// Delete removes a stored quote. Deleting a filename that does not exist
// returns domain.ErrQuoteNotFound and leaves the remaining files untouched.
func (s *QuoteService) Delete(filename string) error {
	return s.store.Delete(filename)
}
