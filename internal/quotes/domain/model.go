package domain

// LineItem is one product entry on a quote: a selected catalog product with
// user-entered dimensions and the per-square-foot price captured at selection
// time. Later catalog price changes do not affect saved quotes.
type LineItem struct {
	ProductDescription string  `json:"productDescription"`
	LengthFeet         float64 `json:"lengthFeet"`
	LengthInches       float64 `json:"lengthInches"`
	WidthFeet          float64 `json:"widthFeet"`
	WidthInches        float64 `json:"widthInches"`
	Price              float64 `json:"price"`
}

// Quote represents a saved price quote. The JSON field names match the
// documents already on disk, so renaming any of them is a breaking change.
type Quote struct {
	CustomerName string     `json:"customerName"`
	ProjectName  string     `json:"projectName"`
	Description  string     `json:"description,omitempty"`
	Products     []LineItem `json:"products"`
	Total        float64    `json:"total"`
	QuoteNumber  string     `json:"quoteNumber"`
}
