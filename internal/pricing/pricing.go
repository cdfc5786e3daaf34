// Package pricing computes the registration price breakdown from the selected
// options and an optional promo discount. All amounts are whole dollars.
package pricing

import "math"

const (
	BasePrice      = 499
	EarlyBirdPrice = 399
)

const (
	materialsKitPrice     = 75
	networkingDinnerPrice = 60
)

var accommodationRates = map[string]int{
	"single": 200,
	"double": 120,
	"none":   0,
}

// The "none" food option is a deliberate $50 discount, not a zero rate.
var foodRates = map[string]int{
	"standard":   50,
	"vegetarian": 50,
	"vegan":      60,
	"none":       -50,
}

var certificateRates = map[string]int{
	"digital":  0,
	"hardcopy": 25,
}

type Options struct {
	AccommodationType string `json:"accommodation_type"`
	FoodPreference    string `json:"food_preference"`
	CertificateType   string `json:"certificate_type"`
	MaterialsKit      bool   `json:"materials_kit"`
	NetworkingDinner  bool   `json:"networking_dinner"`
}

type Breakdown struct {
	BasePrice        int `json:"base_price"`
	Accommodation    int `json:"accommodation"`
	Food             int `json:"food"`
	Certificate      int `json:"certificate"`
	MaterialsKit     int `json:"materials_kit"`
	NetworkingDinner int `json:"networking_dinner"`
	Discount         int `json:"discount"`
	Total            int `json:"total"`
}

// Calculate maps the selected options to a price breakdown. Unknown option
// keys rate 0. Total is the sum of all line items minus the discount, floored
// at zero.
func Calculate(opts Options, discount int) Breakdown {
	if discount < 0 {
		discount = 0
	}

	b := Breakdown{
		BasePrice:     BasePrice,
		Accommodation: accommodationRates[opts.AccommodationType],
		Food:          foodRates[opts.FoodPreference],
		Certificate:   certificateRates[opts.CertificateType],
		Discount:      discount,
	}

	if opts.MaterialsKit {
		b.MaterialsKit = materialsKitPrice
	}
	if opts.NetworkingDinner {
		b.NetworkingDinner = networkingDinnerPrice
	}

	subtotal := b.BasePrice + b.Accommodation + b.Food + b.Certificate +
		b.MaterialsKit + b.NetworkingDinner

	b.Total = subtotal - discount
	if b.Total < 0 {
		b.Total = 0
	}

	return b
}

// Discount converts a promo code into a dollar amount. Percentage codes apply
// against the base price only; add-ons are never discounted.
func Discount(discountType string, discountValue int) int {
	switch discountType {
	case "percentage":
		return int(math.Round(float64(BasePrice) * float64(discountValue) / 100))
	case "fixed":
		return discountValue
	default:
		return 0
	}
}
