package models

import (
	"errors"
	"strings"
	"testing"
)

func validAddress() Address {
	return Address{
		FirstName: "John",
		LastName:  "Smith",
		Email:     "john.smith@example.com",
		Country:   "United States",
		State:     "California",
		City:      "Los Angeles",
		Address1:  "123 Main Street",
		Zip:       "90001",
		Phone:     "5551234567",
	}
}

func TestAddress_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Address)
		wantErr bool
		field   string
	}{
		{
			name:    "valid address",
			mutate:  func(a *Address) {},
			wantErr: false,
		},
		{
			name:    "optional fields may be empty",
			mutate:  func(a *Address) { a.Company, a.State, a.Address2, a.Fax = "", "", "", "" },
			wantErr: false,
		},
		{
			name:    "missing first name",
			mutate:  func(a *Address) { a.FirstName = "" },
			wantErr: true,
			field:   "firstName",
		},
		{
			name:    "missing last name",
			mutate:  func(a *Address) { a.LastName = "" },
			wantErr: true,
			field:   "lastName",
		},
		{
			name:    "missing email",
			mutate:  func(a *Address) { a.Email = "" },
			wantErr: true,
			field:   "email",
		},
		{
			name:    "missing country",
			mutate:  func(a *Address) { a.Country = "" },
			wantErr: true,
			field:   "country",
		},
		{
			name:    "missing city",
			mutate:  func(a *Address) { a.City = "" },
			wantErr: true,
			field:   "city",
		},
		{
			name:    "missing address line",
			mutate:  func(a *Address) { a.Address1 = "" },
			wantErr: true,
			field:   "address1",
		},
		{
			name:    "missing zip",
			mutate:  func(a *Address) { a.Zip = "" },
			wantErr: true,
			field:   "zip",
		},
		{
			name:    "missing phone",
			mutate:  func(a *Address) { a.Phone = "" },
			wantErr: true,
			field:   "phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := validAddress()
			tt.mutate(&addr)

			err := addr.Validate()

			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrMissingAddressField) {
					t.Errorf("Validate() error = %v, want ErrMissingAddressField", err)
				}
				if !strings.Contains(err.Error(), tt.field) {
					t.Errorf("Validate() error %q does not name field %q", err, tt.field)
				}
			}
		})
	}
}

func TestProductSelection_Validate(t *testing.T) {
	tests := []struct {
		name      string
		selection ProductSelection
		wantErr   error
	}{
		{
			name:      "valid selection",
			selection: ProductSelection{Name: "14.1-inch Laptop", URL: "/141-inch-laptop", Quantity: 1},
			wantErr:   nil,
		},
		{
			name:      "missing URL",
			selection: ProductSelection{Name: "Laptop", Quantity: 1},
			wantErr:   ErrMissingProductURL,
		},
		{
			name:      "zero quantity",
			selection: ProductSelection{URL: "/141-inch-laptop", Quantity: 0},
			wantErr:   ErrInvalidQuantity,
		},
		{
			name:      "negative quantity",
			selection: ProductSelection{URL: "/141-inch-laptop", Quantity: -2},
			wantErr:   ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.selection.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewVerificationRun(t *testing.T) {
	run, err := NewVerificationRun("place-order", true, "1445123", "all invariants held")
	if err != nil {
		t.Fatalf("NewVerificationRun() unexpected error = %v", err)
	}
	if run.ID == "" {
		t.Error("run ID should not be empty")
	}
	if !run.Passed {
		t.Error("expected run to be marked passed")
	}
	if run.OrderNumber != "1445123" {
		t.Errorf("expected order number 1445123, got %s", run.OrderNumber)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	if _, err := NewVerificationRun("", true, "", ""); !errors.Is(err, ErrMissingScenario) {
		t.Errorf("NewVerificationRun(\"\") error = %v, want ErrMissingScenario", err)
	}
}
