// Package pdf renders a stored quote into a printable PDF document.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/quotecraft/quotecraft-backend/internal/quotes/domain"
	"github.com/quotecraft/quotecraft-backend/internal/quotes/pricing"
)

type Generator struct{}

func New() *Generator { return &Generator{} }

// Generate renders the quote as an A4 portrait PDF and returns its bytes.
func (g *Generator) Generate(q domain.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Quote %s", q.QuoteNumber), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Price Quote")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Quote #%s", q.QuoteNumber))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Customer: %s", q.CustomerName))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", q.ProjectName))
	pdf.Ln(6)
	if q.Description != "" {
		pdf.Cell(0, 6, trim(q.Description, 90))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(70, 7, "Product")
	pdf.Cell(30, 7, "Length")
	pdf.Cell(30, 7, "Width")
	pdf.Cell(30, 7, "$/sq ft")
	pdf.Cell(30, 7, "Line Total")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for _, item := range q.Products {
		pdf.Cell(70, 6, trim(item.ProductDescription, 40))
		pdf.Cell(30, 6, formatDimension(item.LengthFeet, item.LengthInches))
		pdf.Cell(30, 6, formatDimension(item.WidthFeet, item.WidthInches))
		pdf.Cell(30, 6, fmt.Sprintf("%.2f", item.Price))
		pdf.Cell(30, 6, fmt.Sprintf("%.2f", pricing.LineTotal(item)))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Total: $%.2f", q.Total))
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("Generated %s", time.Now().Format("January 2, 2006")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatDimension(feet, inches float64) string {
	return fmt.Sprintf("%g ft %g in", feet, inches)
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "..."
}
