// Package deeplink builds and parses omenu:// links of the form
// omenu://action?v=vendorId[&l=locationId][&i=itemId][&c=customizationId].
// The action is an open string taken from the path segment.
package deeplink

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/openmenustandard/go-openmenu/internal/oms"
)

// Params captures the optional components of a link.
type Params struct {
	LocationID      string
	ItemID          string
	CustomizationID string
}

// Build assembles a link for an action and vendor with the optional
// parameters in canonical order.
func Build(action, vendorID string, p Params) string {
	var b strings.Builder
	b.WriteString(oms.URLScheme)
	b.WriteString(action)
	b.WriteString("?v=")
	b.WriteString(vendorID)
	if p.LocationID != "" {
		b.WriteString("&l=")
		b.WriteString(p.LocationID)
	}
	if p.ItemID != "" {
		b.WriteString("&i=")
		b.WriteString(p.ItemID)
	}
	if p.CustomizationID != "" {
		b.WriteString("&c=")
		b.WriteString(p.CustomizationID)
	}
	return b.String()
}

// VendorURL builds a view link for a vendor.
func VendorURL(vendorID, locationID string) string {
	return Build("view", vendorID, Params{LocationID: locationID})
}

// OrderURL builds an order link for an item.
func OrderURL(vendorID, itemID, locationID, customizationID string) string {
	return Build("order", vendorID, Params{
		LocationID:      locationID,
		ItemID:          itemID,
		CustomizationID: customizationID,
	})
}

// CustomizeURL builds a customize link for an item.
func CustomizeURL(vendorID, itemID, locationID string) string {
	return Build("customize", vendorID, Params{LocationID: locationID, ItemID: itemID})
}

// ShareURL builds a share link for a vendor or item.
func ShareURL(vendorID, itemID, locationID string) string {
	return Build("share", vendorID, Params{LocationID: locationID, ItemID: itemID})
}

// ForDocument derives the natural link for a document: an order link on
// the first item, or a plain view link when the document has no items.
func ForDocument(doc *oms.Document) string {
	locationID := ""
	if doc.Vendor.LocationID != nil {
		locationID = *doc.Vendor.LocationID
	}
	if len(doc.Items) > 0 {
		return OrderURL(doc.Vendor.ID, doc.Items[0].ID, locationID, "")
	}
	return VendorURL(doc.Vendor.ID, locationID)
}

// Parse extracts the action and all query pairs from a link into a flat
// string map. Values are kept verbatim with no type coercion; the
// action is stored under the "action" key.
func Parse(link string) (map[string]string, error) {
	if !strings.HasPrefix(link, oms.URLScheme) {
		return nil, fmt.Errorf("%w: URL must start with %s", oms.ErrInvalidURL, oms.URLScheme)
	}

	rest := strings.TrimPrefix(link, oms.URLScheme)
	action, query, _ := strings.Cut(rest, "?")

	params := map[string]string{"action": action}

	values, err := url.ParseQuery(query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse query: %v", oms.ErrInvalidURL, err)
	}
	for key, vals := range values {
		if len(vals) > 0 {
			params[key] = vals[len(vals)-1]
		}
	}

	return params, nil
}

// AddParams appends extra query pairs to an existing link.
func AddParams(link string, params map[string]string) (string, error) {
	if !strings.HasPrefix(link, oms.URLScheme) {
		return "", fmt.Errorf("%w: URL must start with %s", oms.ErrInvalidURL, oms.URLScheme)
	}
	var b strings.Builder
	b.WriteString(link)
	for key, value := range params {
		b.WriteString("&")
		b.WriteString(key)
		b.WriteString("=")
		b.WriteString(value)
	}
	return b.String(), nil
}
