package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"dentalSummit/internal/models"
	"dentalSummit/internal/storage"
)

func (s *Storage) GetPromoCode(code string) (*models.PromoCode, error) {
	query := `
		SELECT id, code, discount_type, discount_value, is_active, usage_limit,
			current_uses, expires_at
		FROM promo_codes
		WHERE code = $1`

	var promo models.PromoCode
	var expiresAt sql.NullTime

	err := s.DB.QueryRow(query, strings.ToUpper(code)).Scan(
		&promo.ID,
		&promo.Code,
		&promo.DiscountType,
		&promo.DiscountValue,
		&promo.IsActive,
		&promo.UsageLimit,
		&promo.CurrentUses,
		&expiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get promo code: %w", err)
	}

	if expiresAt.Valid {
		promo.ExpiresAt = expiresAt.Time
	}

	return &promo, nil
}

// RedeemPromoCode increments the usage counter atomically with the limit
// check, so concurrent registrations cannot over-redeem a limited code.
func (s *Storage) RedeemPromoCode(code string) error {
	query := `
		UPDATE promo_codes
		SET current_uses = current_uses + 1
		WHERE code = $1
			AND is_active
			AND current_uses < usage_limit
			AND (expires_at IS NULL OR expires_at > NOW())`

	result, err := s.DB.Exec(query, strings.ToUpper(code))
	if err != nil {
		return fmt.Errorf("failed to redeem promo code: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to redeem promo code: %w", err)
	}

	if affected == 0 {
		return storage.ErrPromoExhausted
	}

	return nil
}
