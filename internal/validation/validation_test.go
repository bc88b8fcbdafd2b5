package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/openmenustandard/go-openmenu/internal/oms"
)

func f64(v float64) *float64 { return &v }
func iptr(v int) *int        { return &v }

func sizeCustomization() oms.Customization {
	return oms.Customization{
		ID:       "size",
		Name:     "Size",
		Type:     oms.SingleSelect,
		Required: true,
		Default:  oms.StringValue("medium"),
		Options: []oms.CustomizationOption{
			{ID: "small", Name: "Small", PriceAdjustment: f64(-0.50)},
			{ID: "medium", Name: "Medium"},
			{ID: "large", Name: "Large", PriceAdjustment: f64(0.50)},
		},
	}
}

func shotsCustomization() oms.Customization {
	return oms.Customization{
		ID:                  "shots",
		Name:                "Espresso Shots",
		Type:                oms.Quantity,
		Default:             oms.NumberValue(2),
		Min:                 f64(1),
		Max:                 f64(5),
		UnitPriceAdjustment: f64(0.75),
	}
}

func flavorCustomization() oms.Customization {
	return oms.Customization{
		ID:            "flavor",
		Name:          "Flavor Syrup",
		Type:          oms.MultiSelect,
		Default:       oms.StringArrayValue([]string{}),
		MinSelections: iptr(0),
		MaxSelections: iptr(2),
		Options: []oms.CustomizationOption{
			{ID: "vanilla", Name: "Vanilla"},
			{ID: "caramel", Name: "Caramel"},
			{ID: "hazelnut", Name: "Hazelnut"},
		},
	}
}

func coffeeDocument() *oms.Document {
	return oms.New(
		oms.Metadata{Created: time.Now().UTC(), Source: "open_menu_standard", Locale: "en-US"},
		oms.Vendor{ID: "coffee-1", Name: "Coffee Shop", Type: "coffee-shop"},
		[]oms.Item{{
			ID:        "latte",
			Name:      "Latte",
			Category:  "coffee",
			BasePrice: f64(4.50),
			Customizations: []oms.Customization{
				sizeCustomization(), shotsCustomization(), flavorCustomization(),
			},
		}},
	)
}

func TestDocumentValid(t *testing.T) {
	if err := Document(coffeeDocument()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDocumentNoItems(t *testing.T) {
	doc := coffeeDocument()
	doc.Items = nil
	err := Document(doc)
	if !errors.Is(err, oms.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestDocumentMissingVendorID(t *testing.T) {
	doc := coffeeDocument()
	doc.Vendor.ID = ""
	if err := Document(doc); !errors.Is(err, oms.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestDocumentMissingItemName(t *testing.T) {
	doc := coffeeDocument()
	doc.Items[0].Name = ""
	if err := Document(doc); !errors.Is(err, oms.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestDocumentSelectionsWithoutCustomizations(t *testing.T) {
	doc := coffeeDocument()
	doc.Items[0].Customizations = nil
	doc.Items[0].Selections = []oms.SelectedCustomization{
		{CustomizationID: "size", Selection: oms.StringValue("large")},
	}
	err := Document(doc)
	if !errors.Is(err, oms.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if !strings.Contains(err.Error(), "selections without customizations") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestCustomizationsSelectWithoutOptions(t *testing.T) {
	c := sizeCustomization()
	c.Options = nil
	err := Customizations([]oms.Customization{c})
	if !errors.Is(err, oms.ErrMissingRequiredField) {
		t.Fatalf("expected ErrMissingRequiredField, got %v", err)
	}
}

func TestCustomizationsDefaultTypeMismatch(t *testing.T) {
	c := sizeCustomization()
	c.Default = oms.NumberValue(2)
	err := Customizations([]oms.Customization{c})
	if !errors.Is(err, oms.ErrInvalidFieldValue) {
		t.Fatalf("expected ErrInvalidFieldValue, got %v", err)
	}
	if !strings.Contains(err.Error(), "type mismatch") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestCustomizationsDefaultNotAnOption(t *testing.T) {
	c := sizeCustomization()
	c.Default = oms.StringValue("venti")
	err := Customizations([]oms.Customization{c})
	if !errors.Is(err, oms.ErrInvalidFieldValue) {
		t.Fatalf("expected ErrInvalidFieldValue, got %v", err)
	}
	if !strings.Contains(err.Error(), "not found in options") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestCustomizationsMultiSelectDefaultOverMax(t *testing.T) {
	c := flavorCustomization()
	c.Default = oms.StringArrayValue([]string{"vanilla", "caramel", "hazelnut"})
	err := Customizations([]oms.Customization{c})
	if !errors.Is(err, oms.ErrInvalidFieldValue) {
		t.Fatalf("expected ErrInvalidFieldValue, got %v", err)
	}
	if !strings.Contains(err.Error(), "max_selections") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestCustomizationsQuantityDefaultOutOfBounds(t *testing.T) {
	c := shotsCustomization()
	c.Default = oms.NumberValue(0)
	err := Customizations([]oms.Customization{c})
	if !errors.Is(err, oms.ErrInvalidFieldValue) {
		t.Fatalf("expected ErrInvalidFieldValue, got %v", err)
	}
	if !strings.Contains(err.Error(), "less than min") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestCustomizationsBooleanDefaultMismatch(t *testing.T) {
	c := oms.Customization{
		ID:      "decaf",
		Name:    "Decaf",
		Type:    oms.Boolean,
		Default: oms.StringValue("no"),
	}
	if err := Customizations([]oms.Customization{c}); !errors.Is(err, oms.ErrInvalidFieldValue) {
		t.Fatalf("expected ErrInvalidFieldValue, got %v", err)
	}
}

func TestCustomizationsUnknownType(t *testing.T) {
	c := oms.Customization{ID: "weird", Name: "Weird", Type: "slider", Default: oms.NumberValue(1)}
	if err := Customizations([]oms.Customization{c}); !errors.Is(err, oms.ErrInvalidCustomizationType) {
		t.Fatalf("expected ErrInvalidCustomizationType, got %v", err)
	}
}

func TestCustomizationsFailFastOrdering(t *testing.T) {
	first := sizeCustomization()
	first.Options = nil // missing options
	second := shotsCustomization()
	second.Default = oms.NumberValue(99) // out of bounds

	err := Customizations([]oms.Customization{first, second})
	if !errors.Is(err, oms.ErrMissingRequiredField) {
		t.Fatalf("expected first violation to be reported, got %v", err)
	}
	if !strings.Contains(err.Error(), "size") {
		t.Fatalf("expected error to name the first customization, got %v", err)
	}
}

func TestSelectedValid(t *testing.T) {
	available := []oms.Customization{sizeCustomization(), shotsCustomization(), flavorCustomization()}
	selected := []oms.SelectedCustomization{
		{CustomizationID: "size", Selection: oms.StringValue("large")},
		{CustomizationID: "flavor", Selection: oms.StringArrayValue([]string{"vanilla"})},
	}
	if err := SelectedCustomizations(selected, available); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSelectedRequiredMissing(t *testing.T) {
	available := []oms.Customization{sizeCustomization()}
	err := SelectedCustomizations(nil, available)
	if !errors.Is(err, oms.ErrMissingRequiredField) {
		t.Fatalf("expected ErrMissingRequiredField, got %v", err)
	}
	if !strings.Contains(err.Error(), "required customization size not selected") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestSelectedCompletenessBeforeCorrectness(t *testing.T) {
	available := []oms.Customization{sizeCustomization()}
	selected := []oms.SelectedCustomization{
		{CustomizationID: "unknown", Selection: oms.StringValue("x")},
	}
	err := SelectedCustomizations(selected, available)
	if !errors.Is(err, oms.ErrMissingRequiredField) {
		t.Fatalf("expected missing-required error before unknown-id error, got %v", err)
	}
}

func TestSelectedUnknownCustomization(t *testing.T) {
	available := []oms.Customization{flavorCustomization()}
	selected := []oms.SelectedCustomization{
		{CustomizationID: "syrup", Selection: oms.StringValue("vanilla")},
	}
	err := SelectedCustomizations(selected, available)
	if !errors.Is(err, oms.ErrInvalidFieldValue) {
		t.Fatalf("expected ErrInvalidFieldValue, got %v", err)
	}
	if !strings.Contains(err.Error(), "not found in available customizations") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestSelectedValueNotAnOption(t *testing.T) {
	available := []oms.Customization{sizeCustomization()}
	selected := []oms.SelectedCustomization{
		{CustomizationID: "size", Selection: oms.StringValue("venti")},
	}
	err := SelectedCustomizations(selected, available)
	if !errors.Is(err, oms.ErrInvalidFieldValue) {
		t.Fatalf("expected ErrInvalidFieldValue, got %v", err)
	}
}

func TestSelectedMultiSelectOverMax(t *testing.T) {
	available := []oms.Customization{flavorCustomization()}
	selected := []oms.SelectedCustomization{
		{CustomizationID: "flavor", Selection: oms.StringArrayValue([]string{"vanilla", "caramel", "hazelnut"})},
	}
	err := SelectedCustomizations(selected, available)
	if !errors.Is(err, oms.ErrInvalidFieldValue) {
		t.Fatalf("expected ErrInvalidFieldValue, got %v", err)
	}
	if !strings.Contains(err.Error(), "max_selections") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestSelectedQuantityOutOfBounds(t *testing.T) {
	available := []oms.Customization{shotsCustomization()}
	selected := []oms.SelectedCustomization{
		{CustomizationID: "shots", Selection: oms.NumberValue(6)},
	}
	err := SelectedCustomizations(selected, available)
	if !errors.Is(err, oms.ErrInvalidFieldValue) {
		t.Fatalf("expected ErrInvalidFieldValue, got %v", err)
	}
	if !strings.Contains(err.Error(), "greater than max") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestSelectedVariantMismatch(t *testing.T) {
	available := []oms.Customization{shotsCustomization()}
	selected := []oms.SelectedCustomization{
		{CustomizationID: "shots", Selection: oms.StringValue("three")},
	}
	err := SelectedCustomizations(selected, available)
	if !errors.Is(err, oms.ErrInvalidFieldValue) {
		t.Fatalf("expected ErrInvalidFieldValue, got %v", err)
	}
	if !strings.Contains(err.Error(), "type mismatch") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestSelectedOptionalUnselected(t *testing.T) {
	available := []oms.Customization{flavorCustomization()}
	if err := SelectedCustomizations(nil, available); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSelectedDuplicateIDFirstDefinitionWins(t *testing.T) {
	strict := shotsCustomization()
	loose := shotsCustomization()
	loose.Max = f64(100)

	selected := []oms.SelectedCustomization{
		{CustomizationID: "shots", Selection: oms.NumberValue(50)},
	}
	err := SelectedCustomizations(selected, []oms.Customization{strict, loose})
	if !errors.Is(err, oms.ErrInvalidFieldValue) {
		t.Fatalf("expected first definition's bounds to apply, got %v", err)
	}
}

func orderItems() []oms.Item {
	return []oms.Item{{ID: "latte", Name: "Latte", Category: "coffee", BasePrice: f64(4.50)}}
}

func TestOrderValid(t *testing.T) {
	order := &oms.Order{
		Payment: &oms.Payment{
			Subtotal: f64(10.00),
			Tax:      f64(0.80),
			Tip:      f64(2.00),
			Total:    12.80,
			Currency: "USD",
		},
	}
	if err := Order(order, orderItems()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderNoItems(t *testing.T) {
	if err := Order(&oms.Order{}, nil); !errors.Is(err, oms.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestOrderTotalNotPositive(t *testing.T) {
	order := &oms.Order{Payment: &oms.Payment{Total: 0, Currency: "USD"}}
	err := Order(order, orderItems())
	if !errors.Is(err, oms.ErrInvalidFieldValue) {
		t.Fatalf("expected ErrInvalidFieldValue, got %v", err)
	}
	if !strings.Contains(err.Error(), "greater than zero") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestOrderPaymentTolerance(t *testing.T) {
	order := &oms.Order{
		Payment: &oms.Payment{
			Subtotal: f64(10.00),
			Tax:      f64(0.80),
			Tip:      f64(2.00),
			Total:    12.81,
			Currency: "USD",
		},
	}
	if err := Order(order, orderItems()); err != nil {
		t.Fatalf("expected 0.01 discrepancy to be tolerated, got %v", err)
	}

	order.Payment.Total = 12.82
	err := Order(order, orderItems())
	if !errors.Is(err, oms.ErrInvalidFieldValue) {
		t.Fatalf("expected ErrInvalidFieldValue for 0.02 discrepancy, got %v", err)
	}
	if !strings.Contains(err.Error(), "do not add up") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestOrderPaymentComponentsOptional(t *testing.T) {
	order := &oms.Order{
		Payment: &oms.Payment{
			Subtotal: f64(10.00),
			Tax:      f64(0.80),
			Total:    99.99, // no tip, arithmetic not checked
			Currency: "USD",
		},
	}
	if err := Order(order, orderItems()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderDeliveryCoupling(t *testing.T) {
	delivery := oms.Delivery
	pickup := oms.Pickup
	info := &oms.DeliveryInfo{Address: oms.Address{Street: "1 Main St", City: "Springfield"}}

	// type=delivery without payload
	err := Order(&oms.Order{Type: &delivery}, orderItems())
	if !errors.Is(err, oms.ErrMissingRequiredField) {
		t.Fatalf("expected ErrMissingRequiredField, got %v", err)
	}

	// payload with non-delivery type
	err = Order(&oms.Order{Type: &pickup, Delivery: info}, orderItems())
	if !errors.Is(err, oms.ErrInvalidFieldValue) {
		t.Fatalf("expected ErrInvalidFieldValue, got %v", err)
	}

	// payload with no type at all is accepted
	if err := Order(&oms.Order{Delivery: info}, orderItems()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// matched pair
	if err := Order(&oms.Order{Type: &delivery, Delivery: info}, orderItems()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDocumentWithOrder(t *testing.T) {
	doc := coffeeDocument()
	delivery := oms.Delivery
	doc.SetOrder(oms.Order{Type: &delivery})
	if err := Document(doc); !errors.Is(err, oms.ErrMissingRequiredField) {
		t.Fatalf("expected order validation to run, got %v", err)
	}
}
