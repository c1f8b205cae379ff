package domain

import "errors"

// Customer is one entry in the customer list. The id is assigned when the
// customer is created and is the sole lookup key for update and delete.
type Customer struct {
	ID                 string `json:"id"`
	CompanyName        string `json:"companyName"`
	RepresentativeName string `json:"representativeName"`
	Address            string `json:"address"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	TaxExempt          bool   `json:"taxExempt"`
}

var ErrCustomerNotFound = errors.New("customer not found")
