// Package validation decides whether an OpenMenuStandard document is
// well-formed. All validators are fail-fast: the first violation found
// is returned and the pass stops.
package validation

import (
	"fmt"
	"math"

	"github.com/openmenustandard/go-openmenu/internal/oms"
)

// paymentTolerance is the absolute slack allowed between the payment
// total and the sum of its components.
const paymentTolerance = 0.01

var structural = New()

// Document validates a complete document: the structural field pass
// first, then each item's customization definitions and selections,
// then the order if one is attached.
func Document(doc *oms.Document) error {
	if len(doc.Items) == 0 {
		return fmt.Errorf("%w: document has no items", oms.ErrValidation)
	}

	if err := structural.Struct(doc); err != nil {
		return fmt.Errorf("%w: %v", oms.ErrValidation, err)
	}

	for i := range doc.Items {
		item := &doc.Items[i]
		if item.Customizations != nil {
			if err := Customizations(item.Customizations); err != nil {
				return err
			}
		}
		if len(item.Selections) > 0 {
			if item.Customizations == nil {
				return fmt.Errorf("%w: item %s has selections without customizations", oms.ErrValidation, item.ID)
			}
			if err := SelectedCustomizations(item.Selections, item.Customizations); err != nil {
				return err
			}
		}
	}

	if doc.Order != nil {
		return Order(doc.Order, doc.Items)
	}
	return nil
}

// Customizations checks that customization definitions are internally
// consistent: options present for select kinds, the default's variant
// matching the type tag, default membership, and default bounds.
func Customizations(customizations []oms.Customization) error {
	for i := range customizations {
		c := &customizations[i]
		switch c.Type {
		case oms.SingleSelect:
			if len(c.Options) == 0 {
				return fmt.Errorf("%w: options for customization %s", oms.ErrMissingRequiredField, c.ID)
			}
			id, ok := c.Default.AsString()
			if !ok {
				return fmt.Errorf("%w: default value type mismatch for single_select customization %s",
					oms.ErrInvalidFieldValue, c.ID)
			}
			if !optionExists(c.Options, id) {
				return fmt.Errorf("%w: default value %q not found in options for customization %s",
					oms.ErrInvalidFieldValue, id, c.ID)
			}

		case oms.MultiSelect:
			if len(c.Options) == 0 {
				return fmt.Errorf("%w: options for customization %s", oms.ErrMissingRequiredField, c.ID)
			}
			ids, ok := c.Default.AsStringArray()
			if !ok {
				return fmt.Errorf("%w: default value type mismatch for multi_select customization %s",
					oms.ErrInvalidFieldValue, c.ID)
			}
			for _, id := range ids {
				if !optionExists(c.Options, id) {
					return fmt.Errorf("%w: default value %q not found in options for customization %s",
						oms.ErrInvalidFieldValue, id, c.ID)
				}
			}
			if err := checkCardinality(len(ids), c, "default selections"); err != nil {
				return err
			}

		case oms.Quantity, oms.Range:
			value, ok := c.Default.AsNumber()
			if !ok {
				return fmt.Errorf("%w: default value type mismatch for %s customization %s",
					oms.ErrInvalidFieldValue, c.Type, c.ID)
			}
			if err := checkBounds(value, c, "default value"); err != nil {
				return err
			}

		case oms.Boolean:
			if _, ok := c.Default.AsBool(); !ok {
				return fmt.Errorf("%w: default value type mismatch for boolean customization %s",
					oms.ErrInvalidFieldValue, c.ID)
			}

		case oms.Text:
			if _, ok := c.Default.AsString(); !ok {
				return fmt.Errorf("%w: default value type mismatch for text customization %s",
					oms.ErrInvalidFieldValue, c.ID)
			}

		default:
			return fmt.Errorf("%w: %s", oms.ErrInvalidCustomizationType, c.Type)
		}
	}
	return nil
}

// SelectedCustomizations checks a customer's selections against the
// authoritative customization list. Completeness first: every required
// customization must be selected. Then correctness: each selection must
// resolve, carry the right variant, and satisfy membership, cardinality
// and bounds. Unknown ids are rejected; unselected optional
// customizations are permitted.
func SelectedCustomizations(selected []oms.SelectedCustomization, available []oms.Customization) error {
	for i := range available {
		if !available[i].Required {
			continue
		}
		if !hasSelection(selected, available[i].ID) {
			return fmt.Errorf("%w: required customization %s not selected",
				oms.ErrMissingRequiredField, available[i].ID)
		}
	}

	for i := range selected {
		sel := &selected[i]
		c := findCustomization(available, sel.CustomizationID)
		if c == nil {
			return fmt.Errorf("%w: selected customization %s not found in available customizations",
				oms.ErrInvalidFieldValue, sel.CustomizationID)
		}

		switch c.Type {
		case oms.SingleSelect:
			id, ok := sel.Selection.AsString()
			if !ok {
				return fmt.Errorf("%w: selection type mismatch for single_select customization %s",
					oms.ErrInvalidFieldValue, c.ID)
			}
			if !optionExists(c.Options, id) {
				return fmt.Errorf("%w: selected value %q not found in options for customization %s",
					oms.ErrInvalidFieldValue, id, c.ID)
			}

		case oms.MultiSelect:
			ids, ok := sel.Selection.AsStringArray()
			if !ok {
				return fmt.Errorf("%w: selection type mismatch for multi_select customization %s",
					oms.ErrInvalidFieldValue, c.ID)
			}
			for _, id := range ids {
				if !optionExists(c.Options, id) {
					return fmt.Errorf("%w: selected value %q not found in options for customization %s",
						oms.ErrInvalidFieldValue, id, c.ID)
				}
			}
			if err := checkCardinality(len(ids), c, "selections"); err != nil {
				return err
			}

		case oms.Quantity, oms.Range:
			value, ok := sel.Selection.AsNumber()
			if !ok {
				return fmt.Errorf("%w: selection type mismatch for %s customization %s",
					oms.ErrInvalidFieldValue, c.Type, c.ID)
			}
			if err := checkBounds(value, c, "selected value"); err != nil {
				return err
			}

		case oms.Boolean:
			if _, ok := sel.Selection.AsBool(); !ok {
				return fmt.Errorf("%w: selection type mismatch for boolean customization %s",
					oms.ErrInvalidFieldValue, c.ID)
			}

		case oms.Text:
			if _, ok := sel.Selection.AsString(); !ok {
				return fmt.Errorf("%w: selection type mismatch for text customization %s",
					oms.ErrInvalidFieldValue, c.ID)
			}
		}
	}
	return nil
}

// Order checks the payment arithmetic and the delivery/type coupling.
func Order(order *oms.Order, items []oms.Item) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: order has no items", oms.ErrValidation)
	}

	if p := order.Payment; p != nil {
		if p.Total <= 0 {
			return fmt.Errorf("%w: payment total must be greater than zero", oms.ErrInvalidFieldValue)
		}
		if p.Subtotal != nil && p.Tax != nil && p.Tip != nil {
			sum := *p.Subtotal + *p.Tax + *p.Tip
			if math.Abs(sum-p.Total) > paymentTolerance {
				return fmt.Errorf("%w: payment components (subtotal + tax + tip = %v) do not add up to total (%v)",
					oms.ErrInvalidFieldValue, sum, p.Total)
			}
		}
	}

	// A delivery payload with no type set is accepted; the coupling is
	// intentionally asymmetric.
	if order.Delivery != nil && order.Type != nil && *order.Type != oms.Delivery {
		return fmt.Errorf("%w: order type must be %q when delivery information is provided",
			oms.ErrInvalidFieldValue, oms.Delivery)
	}
	if order.Type != nil && *order.Type == oms.Delivery && order.Delivery == nil {
		return fmt.Errorf("%w: delivery information is required for delivery orders",
			oms.ErrMissingRequiredField)
	}

	return nil
}

func optionExists(options []oms.CustomizationOption, id string) bool {
	for i := range options {
		if options[i].ID == id {
			return true
		}
	}
	return false
}

func hasSelection(selected []oms.SelectedCustomization, customizationID string) bool {
	for i := range selected {
		if selected[i].CustomizationID == customizationID {
			return true
		}
	}
	return false
}

// findCustomization is first-match; duplicate ids are tolerated and the
// earliest definition wins.
func findCustomization(available []oms.Customization, id string) *oms.Customization {
	for i := range available {
		if available[i].ID == id {
			return &available[i]
		}
	}
	return nil
}

func checkCardinality(count int, c *oms.Customization, what string) error {
	if c.MinSelections != nil && count < *c.MinSelections {
		return fmt.Errorf("%w: %s count is less than min_selections for customization %s",
			oms.ErrInvalidFieldValue, what, c.ID)
	}
	if c.MaxSelections != nil && count > *c.MaxSelections {
		return fmt.Errorf("%w: %s count is greater than max_selections for customization %s",
			oms.ErrInvalidFieldValue, what, c.ID)
	}
	return nil
}

func checkBounds(value float64, c *oms.Customization, what string) error {
	if c.Min != nil && value < *c.Min {
		return fmt.Errorf("%w: %s %v is less than min %v for customization %s",
			oms.ErrInvalidFieldValue, what, value, *c.Min, c.ID)
	}
	if c.Max != nil && value > *c.Max {
		return fmt.Errorf("%w: %s %v is greater than max %v for customization %s",
			oms.ErrInvalidFieldValue, what, value, *c.Max, c.ID)
	}
	return nil
}
