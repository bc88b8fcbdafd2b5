package oms

import (
	"encoding/json"
	"fmt"
	"time"
)

// Process-wide constants of the OpenMenuStandard.
const (
	Version       = "1.0"
	MIMEType      = "application/vnd.openmenu+json"
	FileExtension = "omenu"
	URLScheme     = "omenu://"
)

// New assembles a document from its required parts.
func New(metadata Metadata, vendor Vendor, items []Item) *Document {
	return &Document{
		Version:  Version,
		Metadata: metadata,
		Vendor:   vendor,
		Items:    items,
	}
}

// NewWithOrder assembles a document that already carries an order.
func NewWithOrder(metadata Metadata, vendor Vendor, items []Item, order Order) *Document {
	doc := New(metadata, vendor, items)
	doc.Order = &order
	return doc
}

// Now builds an empty document for a vendor stamped with the current
// time and default metadata.
func Now(vendorID, vendorName, vendorType string) *Document {
	return New(
		Metadata{
			Created: time.Now().UTC(),
			Source:  "open_menu_standard",
			Locale:  "en-US",
		},
		Vendor{ID: vendorID, Name: vendorName, Type: vendorType},
		nil,
	)
}

// AddItem appends an item. Item ids are not checked for uniqueness.
func (d *Document) AddItem(item Item) {
	d.Items = append(d.Items, item)
}

// RemoveItem drops every item with the given id and reports whether
// anything was removed.
func (d *Document) RemoveItem(itemID string) bool {
	kept := d.Items[:0]
	for _, item := range d.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	removed := len(kept) < len(d.Items)
	d.Items = kept
	return removed
}

// FindItem returns a pointer to the first item with the given id, or
// nil. The pointer aliases the document's item slice, so it also serves
// as the mutable accessor; it is invalidated by AddItem/RemoveItem.
func (d *Document) FindItem(itemID string) *Item {
	for i := range d.Items {
		if d.Items[i].ID == itemID {
			return &d.Items[i]
		}
	}
	return nil
}

// SetOrder attaches order information to the document.
func (d *Document) SetOrder(order Order) {
	d.Order = &order
}

// UpdateOrderStatus changes the status of the attached order. It fails
// when no order has been set yet.
func (d *Document) UpdateOrderStatus(status OrderStatus) error {
	if d.Order == nil {
		return fmt.Errorf("%w: order", ErrMissingRequiredField)
	}
	d.Order.Status = &status
	return nil
}

// CalculateTotalPrice sums item prices times quantity over all items.
// An item's calculated price takes precedence over its base price; a
// missing base price counts as zero and a missing quantity as one.
// ok is false when the sum is not strictly positive, which deliberately
// makes a zero-priced catalog indistinguishable from absent price data.
func (d *Document) CalculateTotalPrice() (total float64, ok bool) {
	for _, item := range d.Items {
		price := 0.0
		if item.BasePrice != nil {
			price = *item.BasePrice
		}
		if item.Calculated != nil {
			price = item.Calculated.ItemPrice
		}
		quantity := 1.0
		if item.Quantity != nil {
			quantity = float64(*item.Quantity)
		}
		total += price * quantity
	}
	if total > 0 {
		return total, true
	}
	return 0, false
}

// UpsertSelection stores a selection on the item, replacing any
// existing entry for the same customization id.
func (it *Item) UpsertSelection(sel SelectedCustomization) {
	for i := range it.Selections {
		if it.Selections[i].CustomizationID == sel.CustomizationID {
			it.Selections[i].Selection = sel.Selection
			return
		}
	}
	it.Selections = append(it.Selections, sel)
}

// FindCustomization returns the first customization with the given id,
// or nil. Duplicate ids are tolerated; lookup is first-match.
func (it *Item) FindCustomization(id string) *Customization {
	for i := range it.Customizations {
		if it.Customizations[i].ID == id {
			return &it.Customizations[i]
		}
	}
	return nil
}

// ExtractSelections collects each item's selections keyed by item id.
// Items without selections are omitted.
func (d *Document) ExtractSelections() map[string][]SelectedCustomization {
	result := make(map[string][]SelectedCustomization)
	for _, item := range d.Items {
		if len(item.Selections) > 0 {
			result[item.ID] = item.Selections
		}
	}
	return result
}

// AddExtension stores an opaque payload under a namespace. The content
// is never validated; a later write to the same namespace wins.
func (d *Document) AddExtension(namespace string, data json.RawMessage) {
	if d.Extensions == nil {
		d.Extensions = make(Extensions)
	}
	d.Extensions[namespace] = data
}

// GetExtension returns the payload stored under a namespace, or nil.
func (d *Document) GetExtension(namespace string) json.RawMessage {
	return d.Extensions[namespace]
}
