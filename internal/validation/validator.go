package validation

import (
	"fmt"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/openmenustandard/go-openmenu/internal/oms"
)

// commonVendorTypes lists well-known vendor type tokens. The field is an
// open string; the list is advisory, not a closed set.
var commonVendorTypes = []string{
	"restaurant", "cafe", "fast-food", "coffee-shop", "bakery", "grocery",
	"food-truck", "catering", "pizzeria", "pub", "bar",
}

// New returns a configured validator with the custom field validators
// registered. The returned validator drives the structural pass that
// runs before the semantic checks.
func New() *validatorv10.Validate {
	v := validatorv10.New()
	_ = v.RegisterValidation("vendor_type", func(fl validatorv10.FieldLevel) bool {
		return ValidateVendorType(fl.Field().String()) == nil
	})
	return v
}

// ValidateVendorType accepts any non-empty vendor type string.
func ValidateVendorType(s string) error {
	if s == "" {
		return fmt.Errorf("%w: vendor type must not be empty (common types: %v)",
			oms.ErrInvalidVendorType, commonVendorTypes)
	}
	return nil
}

// ValidateCustomizationType checks a raw customization type token.
func ValidateCustomizationType(s string) error {
	_, err := oms.ParseCustomizationType(s)
	return err
}
