package order

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
)

// ShippingAddress holds the contact and delivery fields captured from the
// checkout form. Stored as a single JSONB column on the order.
type ShippingAddress struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Company    string `json:"company,omitempty"`
	Country    string `json:"country"`
	Address    string `json:"address"`
	Address2   string `json:"address2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"pin"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Notes      string `json:"notes,omitempty"`
}

// requiredFields maps form field names to accessors, in form order.
// Validation is a presence checklist only: the email is checked for
// presence, not shape, matching the storefront's behavior.
var requiredFields = []struct {
	name    string
	value   func(a *ShippingAddress) string
	message string
}{
	{"firstName", func(a *ShippingAddress) string { return a.FirstName }, "First name is required."},
	{"lastName", func(a *ShippingAddress) string { return a.LastName }, "Last name is required."},
	{"address", func(a *ShippingAddress) string { return a.Address }, "Street address is required."},
	{"city", func(a *ShippingAddress) string { return a.City }, "Town/City is required."},
	{"pin", func(a *ShippingAddress) string { return a.PostalCode }, "PIN Code is required."},
	{"phone", func(a *ShippingAddress) string { return a.Phone }, "Phone is required."},
	{"email", func(a *ShippingAddress) string { return a.Email }, "Email is required."},
}

// Validate checks required-field presence. All failing fields are reported
// together so the client can mark each input independently.
func (a *ShippingAddress) Validate() error {
	errs := shared.NewValidationErrors()
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(a)) == "" {
			errs.Add(f.name, f.message)
		}
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// FullName returns the customer's display name
func (a *ShippingAddress) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// OneLine returns a single-line rendering for emails and logs
func (a *ShippingAddress) OneLine() string {
	parts := []string{a.Address}
	if a.Address2 != "" {
		parts = append(parts, a.Address2)
	}
	parts = append(parts, a.City, a.State, a.PostalCode)
	return strings.Join(parts, ", ")
}

// Value implements driver.Valuer for JSONB storage
func (a ShippingAddress) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner for JSONB retrieval
func (a *ShippingAddress) Scan(value interface{}) error {
	if value == nil {
		*a = ShippingAddress{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("cannot scan %T into ShippingAddress", value)
	}
}
