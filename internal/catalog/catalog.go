// Package catalog provides canned starter documents for common vendor
// types, plus a minimal-document builder. Templates are valid documents
// and double as fixtures elsewhere in the module.
package catalog

import (
	"fmt"
	"time"

	"github.com/openmenustandard/go-openmenu/internal/oms"
	"github.com/openmenustandard/go-openmenu/internal/validation"
)

// MinimalDocument builds a single-item document with the given vendor
// and item identity and validates it before returning.
func MinimalDocument(vendorID, vendorName, vendorType, itemID, itemName, itemCategory string) (*oms.Document, error) {
	doc := oms.New(
		defaultMetadata(),
		oms.Vendor{ID: vendorID, Name: vendorName, Type: vendorType},
		[]oms.Item{{ID: itemID, Name: itemName, Category: itemCategory}},
	)
	if err := validation.Document(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Template returns a starter document for a vendor type.
func Template(vendorType string) (*oms.Document, error) {
	switch vendorType {
	case "restaurant":
		return restaurantTemplate(), nil
	case "cafe":
		return cafeTemplate(), nil
	case "fast-food":
		return fastFoodTemplate(), nil
	case "coffee-shop":
		return CoffeeShopTemplate(), nil
	case "pizzeria":
		return pizzeriaTemplate(), nil
	}
	return nil, fmt.Errorf("%w: %s", oms.ErrInvalidVendorType, vendorType)
}

func defaultMetadata() oms.Metadata {
	return oms.Metadata{
		Created: time.Now().UTC(),
		Source:  "open_menu_standard",
		Locale:  "en-US",
	}
}

func restaurantTemplate() *oms.Document {
	cookingPref := oms.Customization{
		ID:       "cooking-pref",
		Name:     "Cooking Preference",
		Type:     oms.SingleSelect,
		Required: true,
		Default:  oms.StringValue("medium"),
		Options: []oms.CustomizationOption{
			{ID: "rare", Name: "Rare"},
			{ID: "medium-rare", Name: "Medium Rare"},
			{ID: "medium", Name: "Medium"},
			{ID: "medium-well", Name: "Medium Well"},
			{ID: "well-done", Name: "Well Done"},
		},
	}
	side := oms.Customization{
		ID:       "side",
		Name:     "Side",
		Type:     oms.SingleSelect,
		Required: true,
		Default:  oms.StringValue("fries"),
		Options: []oms.CustomizationOption{
			{ID: "fries", Name: "French Fries"},
			{ID: "salad", Name: "House Salad"},
			{ID: "soup", Name: "Soup of the Day"},
		},
	}
	return oms.New(
		defaultMetadata(),
		oms.Vendor{ID: "restaurant-template", Name: "Restaurant Template", Type: "restaurant"},
		[]oms.Item{{
			ID:             "steak",
			Name:           "New York Strip Steak",
			Category:       "entree",
			Description:    str("12oz New York Strip steak with choice of side"),
			BasePrice:      f64(29.99),
			Currency:       str("USD"),
			Customizations: []oms.Customization{cookingPref, side},
		}},
	)
}

func cafeTemplate() *oms.Document {
	bread := oms.Customization{
		ID:       "bread",
		Name:     "Bread",
		Type:     oms.SingleSelect,
		Required: true,
		Default:  oms.StringValue("wheat"),
		Options: []oms.CustomizationOption{
			{ID: "wheat", Name: "Wheat", Allergens: []string{"wheat"}},
			{ID: "white", Name: "White", Allergens: []string{"wheat"}},
			{ID: "rye", Name: "Rye", Allergens: []string{"wheat"}},
		},
	}
	cheese := oms.Customization{
		ID:      "cheese",
		Name:    "Cheese",
		Type:    oms.SingleSelect,
		Default: oms.StringValue("cheddar"),
		Options: []oms.CustomizationOption{
			{ID: "cheddar", Name: "Cheddar", Allergens: []string{"dairy"}},
			{ID: "swiss", Name: "Swiss", Allergens: []string{"dairy"}},
			{ID: "none", Name: "No Cheese", DietaryFlags: []string{"dairy_free"}},
		},
	}
	return oms.New(
		defaultMetadata(),
		oms.Vendor{ID: "cafe-template", Name: "Cafe Template", Type: "cafe"},
		[]oms.Item{{
			ID:             "turkey-sandwich",
			Name:           "Turkey Sandwich",
			Category:       "sandwich",
			Description:    str("Roasted turkey breast with lettuce, tomato, and choice of cheese and bread"),
			BasePrice:      f64(8.99),
			Currency:       str("USD"),
			Customizations: []oms.Customization{bread, cheese},
		}},
	)
}

func fastFoodTemplate() *oms.Document {
	burger := oms.Item{
		ID:          "burger",
		Name:        "Cheeseburger",
		Category:    "burger",
		Description: str("Quarter-pound beef patty with cheese, lettuce, tomato, and special sauce"),
		BasePrice:   f64(4.99),
		Currency:    str("USD"),
	}
	drink := oms.Customization{
		ID:       "drink",
		Name:     "Drink",
		Type:     oms.SingleSelect,
		Required: true,
		Default:  oms.StringValue("cola"),
		Options: []oms.CustomizationOption{
			{ID: "cola", Name: "Cola"},
			{ID: "diet-cola", Name: "Diet Cola"},
			{ID: "lemon-lime", Name: "Lemon-Lime Soda"},
		},
	}
	side := oms.Customization{
		ID:       "side",
		Name:     "Side",
		Type:     oms.SingleSelect,
		Required: true,
		Default:  oms.StringValue("fries"),
		Options: []oms.CustomizationOption{
			{ID: "fries", Name: "French Fries"},
			{ID: "onion-rings", Name: "Onion Rings", PriceAdjustment: f64(1.00)},
		},
	}
	return oms.New(
		defaultMetadata(),
		oms.Vendor{ID: "fast-food-template", Name: "Fast Food Template", Type: "fast-food"},
		[]oms.Item{{
			ID:             "combo",
			Name:           "Cheeseburger Combo",
			Category:       "combo",
			Description:    str("Cheeseburger with fries and a drink"),
			BasePrice:      f64(7.99),
			Currency:       str("USD"),
			Customizations: []oms.Customization{drink, side},
			Components:     []oms.Item{burger},
		}},
	)
}

// CoffeeShopTemplate is exported because its latte item, with the
// size/milk/shots/flavor customizations, is the canonical pricing
// example used across the module's tests.
func CoffeeShopTemplate() *oms.Document {
	size := oms.Customization{
		ID:       "size",
		Name:     "Size",
		Type:     oms.SingleSelect,
		Required: true,
		Default:  oms.StringValue("medium"),
		Options: []oms.CustomizationOption{
			{ID: "small", Name: "Small (12oz)", PriceAdjustment: f64(-0.50)},
			{ID: "medium", Name: "Medium (16oz)", PriceAdjustment: f64(0)},
			{ID: "large", Name: "Large (20oz)", PriceAdjustment: f64(0.50)},
		},
	}
	milk := oms.Customization{
		ID:       "milk",
		Name:     "Milk",
		Type:     oms.SingleSelect,
		Required: true,
		Default:  oms.StringValue("whole"),
		Options: []oms.CustomizationOption{
			{ID: "whole", Name: "Whole Milk", PriceAdjustment: f64(0), Allergens: []string{"dairy"}},
			{ID: "skim", Name: "Skim Milk", PriceAdjustment: f64(0), Allergens: []string{"dairy"}},
			{ID: "almond", Name: "Almond Milk", PriceAdjustment: f64(0.75),
				Allergens: []string{"tree-nuts"}, DietaryFlags: []string{"dairy_free", "vegan"}},
			{ID: "oat", Name: "Oat Milk", PriceAdjustment: f64(0.75),
				Allergens: []string{"gluten"}, DietaryFlags: []string{"dairy_free", "vegan"}},
		},
	}
	shots := oms.Customization{
		ID:                  "shots",
		Name:                "Espresso Shots",
		Type:                oms.Quantity,
		Required:            true,
		Default:             oms.NumberValue(2),
		Min:                 f64(1),
		Max:                 f64(5),
		Step:                f64(1),
		UnitPriceAdjustment: f64(0.75),
	}
	flavor := oms.Customization{
		ID:            "flavor",
		Name:          "Flavor Syrup",
		Type:          oms.MultiSelect,
		Default:       oms.StringArrayValue([]string{}),
		MinSelections: iptr(0),
		MaxSelections: iptr(3),
		Options: []oms.CustomizationOption{
			{ID: "vanilla", Name: "Vanilla", PriceAdjustment: f64(0.50)},
			{ID: "caramel", Name: "Caramel", PriceAdjustment: f64(0.50)},
			{ID: "hazelnut", Name: "Hazelnut", PriceAdjustment: f64(0.50), Allergens: []string{"tree-nuts"}},
		},
	}
	customizations := []oms.Customization{size, milk, shots, flavor}
	return oms.New(
		defaultMetadata(),
		oms.Vendor{ID: "coffee-shop-template", Name: "Coffee Shop Template", Type: "coffee-shop"},
		[]oms.Item{
			{
				ID:             "latte",
				Name:           "Latte",
				Category:       "coffee",
				Description:    str("Espresso with steamed milk"),
				BasePrice:      f64(4.50),
				Currency:       str("USD"),
				Customizations: customizations,
			},
			{
				ID:             "cappuccino",
				Name:           "Cappuccino",
				Category:       "coffee",
				Description:    str("Espresso with equal parts steamed milk and foamed milk"),
				BasePrice:      f64(4.25),
				Currency:       str("USD"),
				Customizations: customizations,
			},
		},
	)
}

func pizzeriaTemplate() *oms.Document {
	size := oms.Customization{
		ID:       "size",
		Name:     "Size",
		Type:     oms.SingleSelect,
		Required: true,
		Default:  oms.StringValue("medium"),
		Options: []oms.CustomizationOption{
			{ID: "small", Name: `Small (10")`, PriceAdjustment: f64(-2.00)},
			{ID: "medium", Name: `Medium (12")`, PriceAdjustment: f64(0)},
			{ID: "large", Name: `Large (14")`, PriceAdjustment: f64(2.00)},
			{ID: "x-large", Name: `X-Large (16")`, PriceAdjustment: f64(4.00)},
		},
	}
	crust := oms.Customization{
		ID:       "crust",
		Name:     "Crust",
		Type:     oms.SingleSelect,
		Required: true,
		Default:  oms.StringValue("regular"),
		Options: []oms.CustomizationOption{
			{ID: "regular", Name: "Regular", PriceAdjustment: f64(0), Allergens: []string{"wheat"}},
			{ID: "thin", Name: "Thin", PriceAdjustment: f64(0), Allergens: []string{"wheat"}},
			{ID: "stuffed", Name: "Cheese-Stuffed", PriceAdjustment: f64(2.50), Allergens: []string{"wheat", "dairy"}},
			{ID: "gluten-free", Name: "Gluten-Free", PriceAdjustment: f64(3.00), DietaryFlags: []string{"gluten_free"}},
		},
	}
	toppings := oms.Customization{
		ID:            "toppings",
		Name:          "Toppings",
		Type:          oms.MultiSelect,
		Default:       oms.StringArrayValue([]string{}),
		MinSelections: iptr(0),
		MaxSelections: iptr(10),
		Options: []oms.CustomizationOption{
			{ID: "pepperoni", Name: "Pepperoni", PriceAdjustment: f64(1.50)},
			{ID: "sausage", Name: "Sausage", PriceAdjustment: f64(1.50)},
			{ID: "mushrooms", Name: "Mushrooms", PriceAdjustment: f64(1.00), DietaryFlags: []string{"vegetarian"}},
			{ID: "onions", Name: "Onions", PriceAdjustment: f64(1.00), DietaryFlags: []string{"vegetarian"}},
			{ID: "peppers", Name: "Bell Peppers", PriceAdjustment: f64(1.00), DietaryFlags: []string{"vegetarian"}},
			{ID: "olives", Name: "Black Olives", PriceAdjustment: f64(1.00), DietaryFlags: []string{"vegetarian"}},
		},
	}
	return oms.New(
		defaultMetadata(),
		oms.Vendor{ID: "pizzeria-template", Name: "Pizzeria Template", Type: "pizzeria"},
		[]oms.Item{{
			ID:             "cheese-pizza",
			Name:           "Cheese Pizza",
			Category:       "pizza",
			Description:    str("Classic cheese pizza with tomato sauce and mozzarella"),
			BasePrice:      f64(12.99),
			Currency:       str("USD"),
			Customizations: []oms.Customization{size, crust, toppings},
		}},
	)
}

func str(s string) *string   { return &s }
func f64(v float64) *float64 { return &v }
func iptr(v int) *int        { return &v }
