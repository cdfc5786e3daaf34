package models

import "time"

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// PromoCode codes are stored upper-cased; lookups fold the input the same way.
type PromoCode struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	DiscountType  string    `json:"discount_type"`
	DiscountValue int       `json:"discount_value"`
	IsActive      bool      `json:"is_active"`
	UsageLimit    int       `json:"usage_limit"`
	CurrentUses   int       `json:"current_uses"`
	ExpiresAt     time.Time `json:"expires_at,omitempty"`
}

// Usable reports whether the code can still be redeemed. Validity is derived,
// never stored.
func (p *PromoCode) Usable(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if !p.ExpiresAt.IsZero() && now.After(p.ExpiresAt) {
		return false
	}
	return p.CurrentUses < p.UsageLimit
}
