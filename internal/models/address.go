package models

import (
	"errors"
	"fmt"
)

// Address holds the billing/shipping address applied during checkout.
// Company, State, Address2 and Fax are optional; the remaining fields are
// required by the billing form.
type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Company   string `json:"company,omitempty"`
	Country   string `json:"country"`
	State     string `json:"state,omitempty"`
	City      string `json:"city"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone"`
	Fax       string `json:"fax,omitempty"`
}

// ErrMissingAddressField indicates a required address field is empty. The
// checkout workflow refuses to drive the billing form with incomplete data.
var ErrMissingAddressField = errors.New("required address field is empty")

// Validate checks that every required field is non-empty.
func (a Address) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", a.FirstName},
		{"lastName", a.LastName},
		{"email", a.Email},
		{"country", a.Country},
		{"city", a.City},
		{"address1", a.Address1},
		{"zip", a.Zip},
		{"phone", a.Phone},
	}

	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingAddressField, f.name)
		}
	}
	return nil
}
