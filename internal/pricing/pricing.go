// Package pricing computes the monetary delta a set of customization
// selections contributes to an item's price.
package pricing

import "github.com/openmenustandard/go-openmenu/internal/oms"

// Adjustments returns the signed price delta for the given selections
// against the item's customization definitions. It is a best-effort
// calculator, not a validation gate: selections whose customization id
// does not resolve are silently skipped, and callers that need strict
// correctness must run the selection validator separately. The item is
// never mutated.
//
// Single-select adds the matched option's price adjustment, multi-select
// sums the matched options', and quantity multiplies the unit price
// adjustment by the full selected amount. Boolean, text and range
// selections have no monetary effect.
func Adjustments(item *oms.Item, selected []oms.SelectedCustomization) float64 {
	var total float64

	for i := range selected {
		sel := &selected[i]
		c := item.FindCustomization(sel.CustomizationID)
		if c == nil {
			continue
		}

		switch c.Type {
		case oms.SingleSelect:
			if id, ok := sel.Selection.AsString(); ok {
				total += optionAdjustment(c.Options, id)
			}
		case oms.MultiSelect:
			if ids, ok := sel.Selection.AsStringArray(); ok {
				for _, id := range ids {
					total += optionAdjustment(c.Options, id)
				}
			}
		case oms.Quantity:
			if qty, ok := sel.Selection.AsNumber(); ok && c.UnitPriceAdjustment != nil {
				total += *c.UnitPriceAdjustment * qty
			}
		}
	}

	return total
}

// optionAdjustment returns the price adjustment of the first option
// matching id, or zero when the option is unknown or carries no price.
func optionAdjustment(options []oms.CustomizationOption, id string) float64 {
	for i := range options {
		if options[i].ID == id {
			if options[i].PriceAdjustment != nil {
				return *options[i].PriceAdjustment
			}
			return 0
		}
	}
	return 0
}
