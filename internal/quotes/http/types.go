package http

import (
	"github.com/quotecraft/quotecraft-backend/internal/quotes/domain"
	"github.com/quotecraft/quotecraft-backend/internal/quotes/pdf"
	"github.com/quotecraft/quotecraft-backend/internal/quotes/service"
)

// Handler bundles the dependencies for quote HTTP endpoints.
type Handler struct {
	svc *service.QuoteService
	pdf *pdf.Generator
}

func New(svc *service.QuoteService) *Handler {
	return &Handler{svc: svc, pdf: pdf.New()}
}

// quoteReq mirrors the create/edit quote form. The binding tags carry the
// same schema checks the form applies: names at least two characters,
// dimensions and prices non-negative.
type quoteReq struct {
	CustomerName string        `json:"customerName" binding:"required,min=2"`
	ProjectName  string        `json:"projectName" binding:"required,min=2"`
	Description  string        `json:"description"`
	Products     []lineItemReq `json:"products" binding:"dive"`
	QuoteNumber  string        `json:"quoteNumber"`
}

type lineItemReq struct {
	ProductDescription string  `json:"productDescription"`
	LengthFeet         float64 `json:"lengthFeet" binding:"min=0"`
	LengthInches       float64 `json:"lengthInches" binding:"min=0"`
	WidthFeet          float64 `json:"widthFeet" binding:"min=0"`
	WidthInches        float64 `json:"widthInches" binding:"min=0"`
	Price              float64 `json:"price" binding:"min=0"`
}

func (r quoteReq) toDomain() domain.Quote {
	items := make([]domain.LineItem, 0, len(r.Products))
	for _, p := range r.Products {
		items = append(items, domain.LineItem{
			ProductDescription: p.ProductDescription,
			LengthFeet:         p.LengthFeet,
			LengthInches:       p.LengthInches,
			WidthFeet:          p.WidthFeet,
			WidthInches:        p.WidthInches,
			Price:              p.Price,
		})
	}
	return domain.Quote{
		CustomerName: r.CustomerName,
		ProjectName:  r.ProjectName,
		Description:  r.Description,
		Products:     items,
		QuoteNumber:  r.QuoteNumber,
	}
}
