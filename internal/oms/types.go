package oms

import (
	"encoding/json"
	"fmt"
	"time"
)

// Document is a complete OpenMenuStandard document: one vendor, its
// items, and optionally the order being built against them.
type Document struct {
	Version    string     `json:"oms_version" validate:"required"`
	Metadata   Metadata   `json:"metadata"`
	Vendor     Vendor     `json:"vendor"`
	Items      []Item     `json:"items" validate:"min=1,dive"`
	Order      *Order     `json:"order,omitempty"`
	Extensions Extensions `json:"extensions,omitempty"`
}

// Metadata describes where and when the document was produced.
type Metadata struct {
	Created time.Time `json:"created"`
	Source  string    `json:"source" validate:"required"`
	Locale  string    `json:"locale" validate:"required"` // RFC 5646 language tag
}

// Vendor identifies the food service provider.
type Vendor struct {
	ID           string          `json:"id" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	Type         string          `json:"type" validate:"required,vendor_type"`
	LocationID   *string         `json:"location_id,omitempty"`
	LocationName *string         `json:"location_name,omitempty"`
	Address      *Address        `json:"address,omitempty"`
	Contact      *Contact        `json:"contact,omitempty"`
	Hours        []BusinessHours `json:"hours,omitempty"`
	Cuisine      []string        `json:"cuisine,omitempty"`
	Services     []string        `json:"services,omitempty"`
}

// Address is a physical street address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Contact holds vendor contact details.
type Contact struct {
	Phone   *string `json:"phone,omitempty"`
	Website *string `json:"website,omitempty"`
}

// BusinessHours lists the open ranges for one day of the week.
type BusinessHours struct {
	Day    DayOfWeek   `json:"day"`
	Ranges []TimeRange `json:"ranges"`
}

// TimeRange is an open/close pair in 24-hour HH:MM form.
type TimeRange struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// DayOfWeek is a lowercase weekday token.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

func (d *DayOfWeek) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch DayOfWeek(s) {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		*d = DayOfWeek(s)
		return nil
	}
	return fmt.Errorf("unrecognized day of week %q", s)
}

// Item is a single menu entry. Combo meals nest their parts as
// component items; the component tree is owned and has no cycles.
type Item struct {
	ID             string                  `json:"id" validate:"required"`
	Name           string                  `json:"name" validate:"required"`
	Category       string                  `json:"category" validate:"required"`
	VendorID       *string                 `json:"vendor_id,omitempty"`
	Description    *string                 `json:"description,omitempty"`
	Subcategory    *string                 `json:"subcategory,omitempty"`
	ImageURL       *string                 `json:"image_url,omitempty"`
	BasePrice      *float64                `json:"base_price,omitempty"`
	Currency       *string                 `json:"currency,omitempty"` // ISO 4217
	Nutrition      *Nutrition              `json:"nutrition,omitempty"`
	Customizations []Customization         `json:"customizations,omitempty" validate:"omitempty,dive"`
	Selections     []SelectedCustomization `json:"selected_customizations,omitempty"`
	Quantity       *int                    `json:"quantity,omitempty"`
	Note           *string                 `json:"item_note,omitempty"`
	Calculated     *CalculatedValues       `json:"calculated,omitempty"`
	Components     []Item                  `json:"components,omitempty" validate:"omitempty,dive"`
	Availability   *Availability           `json:"availability,omitempty"`
	Popularity     *Popularity             `json:"popularity,omitempty"`
}

// Nutrition carries per-serving nutritional facts for an item.
type Nutrition struct {
	ServingSize   *NutrientAmount           `json:"serving_size,omitempty"`
	Calories      *float64                  `json:"calories,omitempty"`
	Protein       *NutrientAmount           `json:"protein,omitempty"`
	Fat           *NutrientAmount           `json:"fat,omitempty"`
	Carbohydrates *NutrientAmount           `json:"carbohydrates,omitempty"`
	Sodium        *NutrientAmount           `json:"sodium,omitempty"`
	Cholesterol   *NutrientAmount           `json:"cholesterol,omitempty"`
	Vitamins      []VitaminMineral          `json:"vitamins,omitempty"`
	Minerals      []VitaminMineral          `json:"minerals,omitempty"`
	Allergens     []string                  `json:"allergens,omitempty"`
	DietaryFlags  []string                  `json:"dietary_flags,omitempty"`
	HealthClaims  []string                  `json:"health_claims,omitempty"`
	Ingredients   []IngredientGroup         `json:"ingredients,omitempty"`
	Standards     *NutritionStandards       `json:"nutrition_standards,omitempty"`
}

// NutrientAmount is a measured value with an optional per-component
// breakdown (e.g. fat split into saturated/trans).
type NutrientAmount struct {
	Value   float64                   `json:"value"`
	Unit    string                    `json:"unit"`
	Details map[string]NutrientAmount `json:"details,omitempty"`
}

// VitaminMineral is one vitamin or mineral line.
type VitaminMineral struct {
	Name              string   `json:"name"`
	Value             float64  `json:"value"`
	Unit              string   `json:"unit"`
	DailyValuePercent *float64 `json:"daily_value_percent,omitempty"`
}

// IngredientGroup names a set of ingredients.
type IngredientGroup struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
}

// NutritionStandards records regulatory compliance metadata.
type NutritionStandards struct {
	UsFda        *UsFdaInfo        `json:"us_fda,omitempty"`
	EuRegulation *EuRegulationInfo `json:"eu_regulation,omitempty"`
}

type UsFdaInfo struct {
	ServingSizeDescription string `json:"serving_size_description"`
	DailyValueYear         int    `json:"daily_value_year"`
}

type EuRegulationInfo struct {
	ReferenceIntakeDescription string `json:"reference_intake_description"`
}

// Customization is one configurable dimension of an item. The type tag
// decides which of the type-specific constraint fields apply.
type Customization struct {
	ID            string               `json:"id" validate:"required"`
	Name          string               `json:"name" validate:"required"`
	Type          CustomizationType    `json:"type"`
	Required      bool                 `json:"required"`
	Default       Value                `json:"default"`
	MinSelections *int                 `json:"min_selections,omitempty"` // multi_select
	MaxSelections *int                 `json:"max_selections,omitempty"` // multi_select
	Min           *float64             `json:"min,omitempty"`            // quantity, range
	Max           *float64             `json:"max,omitempty"`            // quantity, range
	Step          *float64             `json:"step,omitempty"`           // stored, not enforced
	UnitPriceAdjustment      *float64                  `json:"unit_price_adjustment,omitempty"` // quantity
	UnitNutritionAdjustments map[string]NutrientAmount `json:"unit_nutrition_adjustments,omitempty"`
	Options       []CustomizationOption `json:"options,omitempty"` // select kinds
}

// CustomizationType is the closed set of customization kinds.
type CustomizationType string

const (
	SingleSelect CustomizationType = "single_select"
	MultiSelect  CustomizationType = "multi_select"
	Quantity     CustomizationType = "quantity"
	Boolean      CustomizationType = "boolean"
	Text         CustomizationType = "text"
	Range        CustomizationType = "range"
)

// ParseCustomizationType converts a wire token to a CustomizationType.
func ParseCustomizationType(s string) (CustomizationType, error) {
	switch CustomizationType(s) {
	case SingleSelect, MultiSelect, Quantity, Boolean, Text, Range:
		return CustomizationType(s), nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidCustomizationType, s)
}

func (t *CustomizationType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCustomizationType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// CustomizationOption is one concrete choice within a select-kind
// customization.
type CustomizationOption struct {
	ID                   string                    `json:"id" validate:"required"`
	Name                 string                    `json:"name" validate:"required"`
	PriceAdjustment      *float64                  `json:"price_adjustment,omitempty"`
	NutritionAdjustments map[string]NutrientAmount `json:"nutrition_adjustments,omitempty"`
	Allergens            []string                  `json:"allergens,omitempty"`
	DietaryFlags         []string                  `json:"dietary_flags,omitempty"`
}

// SelectedCustomization ties a customer's chosen value to a
// customization definition by id.
type SelectedCustomization struct {
	CustomizationID string `json:"customization_id" validate:"required"`
	Selection       Value  `json:"selection"`
}

// CalculatedValues holds caller-computed results derived from the
// selections. When present, ItemPrice takes precedence over the item's
// base price in totals.
type CalculatedValues struct {
	ItemPrice         float64            `json:"item_price"`
	AdjustedNutrition map[string]float64 `json:"adjusted_nutrition,omitempty"`
}

// Availability restricts when an item can be ordered.
type Availability struct {
	StartDate  *string  `json:"start_date,omitempty"`
	EndDate    *string  `json:"end_date,omitempty"`
	TimesOfDay []string `json:"times_of_day,omitempty"`
	DaysOfWeek []string `json:"days_of_week,omitempty"`
}

// Popularity carries ranking metadata for an item.
type Popularity struct {
	Rank *int     `json:"rank,omitempty"`
	Tags []string `json:"tags,omitempty"`
}

// Order is a customer transaction against the document's items.
type Order struct {
	ID            *string        `json:"id,omitempty"`
	Status        *OrderStatus   `json:"status,omitempty"`
	Created       *time.Time     `json:"created,omitempty"`
	PickupTime    *time.Time     `json:"pickup_time,omitempty"`
	DeliveryTime  *time.Time     `json:"delivery_time,omitempty"`
	Type          *OrderType     `json:"type,omitempty"`
	CustomerNotes *string        `json:"customer_notes,omitempty"`
	Payment       *Payment       `json:"payment,omitempty"`
	Customer      *Customer      `json:"customer,omitempty"`
	Delivery      *DeliveryInfo  `json:"delivery,omitempty"`
}

// OrderStatus is the order lifecycle state.
type OrderStatus string

const (
	StatusDraft      OrderStatus = "draft"
	StatusSubmitted  OrderStatus = "submitted"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusInProgress OrderStatus = "inprogress"
	StatusReady      OrderStatus = "ready"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch OrderStatus(raw) {
	case StatusDraft, StatusSubmitted, StatusConfirmed, StatusInProgress,
		StatusReady, StatusCompleted, StatusCancelled:
		*s = OrderStatus(raw)
		return nil
	}
	return fmt.Errorf("unrecognized order status %q", raw)
}

// OrderType is the fulfillment kind.
type OrderType string

const (
	Pickup   OrderType = "pickup"
	Delivery OrderType = "delivery"
	DineIn   OrderType = "dinein"
)

func (t *OrderType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch OrderType(raw) {
	case Pickup, Delivery, DineIn:
		*t = OrderType(raw)
		return nil
	}
	return fmt.Errorf("unrecognized order type %q", raw)
}

// Payment is the monetary record attached to an order. Total and
// Currency are mandatory; the component amounts are optional.
type Payment struct {
	Status   *PaymentStatus `json:"status,omitempty"`
	Method   *string        `json:"method,omitempty"`
	Subtotal *float64       `json:"subtotal,omitempty"`
	Tax      *float64       `json:"tax,omitempty"`
	Tip      *float64       `json:"tip,omitempty"`
	Total    float64        `json:"total"`
	Currency string         `json:"currency" validate:"required"` // ISO 4217
}

// PaymentStatus marks whether the payment has settled.
type PaymentStatus string

const (
	Unpaid PaymentStatus = "unpaid"
	Paid   PaymentStatus = "paid"
)

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch PaymentStatus(raw) {
	case Unpaid, Paid:
		*s = PaymentStatus(raw)
		return nil
	}
	return fmt.Errorf("unrecognized payment status %q", raw)
}

// Customer identifies who placed the order.
type Customer struct {
	ID    *string `json:"id,omitempty"`
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

// DeliveryInfo is the fulfillment payload for delivery orders.
type DeliveryInfo struct {
	Address      Address `json:"address"`
	Instructions *string `json:"instructions,omitempty"`
}

// Extensions maps a vendor namespace to an opaque payload. Content is
// never validated; writes are last-write-wins.
type Extensions map[string]json.RawMessage
