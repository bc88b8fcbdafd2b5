// Package checkout turns a customized document into a priced draft
// order. It is the caller-side bridge between the pricing engine and
// the document: the engine only reports deltas, checkout combines them
// with base prices into CalculatedValues and builds the payment record.
package checkout

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/openmenustandard/go-openmenu/internal/oms"
	"github.com/openmenustandard/go-openmenu/internal/pricing"
)

// Generator produces draft orders for a document.
type Generator struct {
	TaxRate  float64
	Currency string
	nowFunc  func() time.Time
	newID    func() string
}

// NewGenerator returns a Generator with the given tax rate and
// currency code.
func NewGenerator(taxRate float64, currency string) *Generator {
	return &Generator{
		TaxRate:  taxRate,
		Currency: currency,
		nowFunc:  time.Now,
		newID:    uuid.NewString,
	}
}

// Reprice writes CalculatedValues on every item that carries
// selections, combining the base price with the pricing engine's
// delta. Items without selections are left untouched.
func (g *Generator) Reprice(doc *oms.Document) {
	for i := range doc.Items {
		item := &doc.Items[i]
		if len(item.Selections) == 0 {
			continue
		}
		base := 0.0
		if item.BasePrice != nil {
			base = *item.BasePrice
		}
		item.Calculated = &oms.CalculatedValues{
			ItemPrice: base + pricing.Adjustments(item, item.Selections),
		}
	}
}

// GenerateOrder attaches a draft pickup order to the document. The
// subtotal comes from the document total, tax is applied at the
// configured rate rounded to cents, and the payment starts unpaid.
func (g *Generator) GenerateOrder(doc *oms.Document, customerID string) error {
	subtotal, _ := doc.CalculateTotalPrice()
	tax := math.Round(subtotal*g.TaxRate*100) / 100
	total := subtotal + tax

	now := g.nowFunc().UTC()
	pickup := now.Add(30 * time.Minute)
	id := fmt.Sprintf("order-%s", g.newID())
	status := oms.StatusDraft
	orderType := oms.Pickup
	paymentStatus := oms.Unpaid

	order := oms.Order{
		ID:         &id,
		Status:     &status,
		Created:    &now,
		PickupTime: &pickup,
		Type:       &orderType,
		Payment: &oms.Payment{
			Status:   &paymentStatus,
			Subtotal: &subtotal,
			Tax:      &tax,
			Total:    total,
			Currency: g.Currency,
		},
	}
	if customerID != "" {
		order.Customer = &oms.Customer{ID: &customerID}
	}

	doc.SetOrder(order)
	return nil
}

// IsTapToOrder reports whether a document can drive a tap-to-order
// flow: a vendor id, at least one item, and a base price on every item.
func IsTapToOrder(doc *oms.Document) bool {
	if doc.Vendor.ID == "" || len(doc.Items) == 0 {
		return false
	}
	for i := range doc.Items {
		if doc.Items[i].BasePrice == nil {
			return false
		}
	}
	return true
}
