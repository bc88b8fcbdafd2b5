package deeplink

import (
	"strconv"
	"strings"

	"github.com/openmenustandard/go-openmenu/internal/oms"
)

// ApplySelectionParam reads the customization parameter ("c") from a
// link and upserts a selection for the first customization of the
// document's first item, coercing the raw string to the variant the
// customization's type expects. Links without the parameter are a
// no-op.
func ApplySelectionParam(link string, doc *oms.Document) error {
	params, err := Parse(link)
	if err != nil {
		return err
	}
	preset, ok := params["c"]
	if !ok || len(doc.Items) == 0 {
		return nil
	}

	item := &doc.Items[0]
	if len(item.Customizations) == 0 {
		return nil
	}
	c := &item.Customizations[0]

	item.UpsertSelection(oms.SelectedCustomization{
		CustomizationID: c.ID,
		Selection:       coerce(preset, c.Type),
	})
	return nil
}

// coerce maps a raw query value onto the variant a customization type
// expects. Unparseable numbers fall back to 1 for quantities and 0 for
// ranges.
func coerce(raw string, t oms.CustomizationType) oms.Value {
	switch t {
	case oms.MultiSelect:
		return oms.StringArrayValue([]string{raw})
	case oms.Quantity:
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return oms.NumberValue(n)
		}
		return oms.NumberValue(1)
	case oms.Range:
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return oms.NumberValue(n)
		}
		return oms.NumberValue(0)
	case oms.Boolean:
		switch strings.ToLower(raw) {
		case "true", "1", "yes":
			return oms.BoolValue(true)
		}
		return oms.BoolValue(false)
	}
	// single_select and text take the raw string.
	return oms.StringValue(raw)
}
