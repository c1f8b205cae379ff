package domain

// Product is one entry in the catalog of available glass products. The
// catalog lives in a single document that is wholesale-replaced on every
// edit, so entries carry no identity beyond their description.
type Product struct {
	Description        string  `json:"description"`
	SquareFootagePrice float64 `json:"squareFootagePrice"`
	Dimensions         string  `json:"dimensions,omitempty"`
}
