package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dentalSummit/internal/models"
	"dentalSummit/internal/storage"
)

const registrationColumns = `id, confirmation_number, first_name, last_name, email,
	phone, clinic, license_number, accommodation_type, food_preference,
	certificate_type, materials_kit, networking_dinner, promo_code, pricing,
	event_id, status, payment_status, payment_intent_id, paid_at, created_at`

func scanRegistration(row interface{ Scan(...any) error }) (*models.Registration, error) {
	var reg models.Registration
	var pricingRaw []byte
	var paidAt sql.NullTime

	err := row.Scan(
		&reg.ID,
		&reg.ConfirmationNumber,
		&reg.FirstName,
		&reg.LastName,
		&reg.Email,
		&reg.Phone,
		&reg.Clinic,
		&reg.LicenseNumber,
		&reg.AccommodationType,
		&reg.FoodPreference,
		&reg.CertificateType,
		&reg.MaterialsKit,
		&reg.NetworkingDinner,
		&reg.PromoCode,
		&pricingRaw,
		&reg.EventID,
		&reg.Status,
		&reg.PaymentStatus,
		&reg.PaymentIntentID,
		&paidAt,
		&reg.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = json.Unmarshal(pricingRaw, &reg.Pricing); err != nil {
		return nil, fmt.Errorf("failed to decode pricing snapshot: %w", err)
	}
	if paidAt.Valid {
		reg.PaidAt = paidAt.Time
	}

	return &reg, nil
}

func (s *Storage) SaveRegistration(reg *models.Registration) error {
	pricingRaw, err := json.Marshal(reg.Pricing)
	if err != nil {
		return fmt.Errorf("failed to encode pricing snapshot: %w", err)
	}

	query := `
		INSERT INTO registrations (id, confirmation_number, first_name, last_name,
			email, phone, clinic, license_number, accommodation_type,
			food_preference, certificate_type, materials_kit, networking_dinner,
			promo_code, pricing, event_id, status, payment_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19)`

	_, err = s.DB.Exec(query,
		reg.ID,
		reg.ConfirmationNumber,
		reg.FirstName,
		reg.LastName,
		reg.Email,
		reg.Phone,
		reg.Clinic,
		reg.LicenseNumber,
		reg.AccommodationType,
		reg.FoodPreference,
		reg.CertificateType,
		reg.MaterialsKit,
		reg.NetworkingDinner,
		reg.PromoCode,
		pricingRaw,
		reg.EventID,
		reg.Status,
		reg.PaymentStatus,
		reg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create registration: %w", err)
	}

	return nil
}

func (s *Storage) getRegistration(where string, arg any) (*models.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE ` + where

	reg, err := scanRegistration(s.DB.QueryRow(query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}

	return reg, nil
}

func (s *Storage) GetRegistrationByID(id string) (*models.Registration, error) {
	return s.getRegistration(`id = $1`, id)
}

func (s *Storage) GetRegistrationByConfirmation(confirmationNumber string) (*models.Registration, error) {
	return s.getRegistration(`confirmation_number = $1`, confirmationNumber)
}

func (s *Storage) GetRegistrationByPaymentIntent(intentID string) (*models.Registration, error) {
	return s.getRegistration(`payment_intent_id = $1`, intentID)
}

func (s *Storage) SetPaymentIntent(id, intentID string) error {
	query := `
		UPDATE registrations
		SET payment_intent_id = $2, payment_status = 'processing'
		WHERE id = $1`

	result, err := s.DB.Exec(query, id, intentID)
	if err != nil {
		return fmt.Errorf("failed to set payment intent: %w", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// CompletePayment is a plain status set, so webhook replays and repeated
// confirm calls land on the same end state.
func (s *Storage) CompletePayment(id string, paidAt time.Time) error {
	query := `
		UPDATE registrations
		SET payment_status = 'completed', status = 'confirmed', paid_at = $2
		WHERE id = $1`

	result, err := s.DB.Exec(query, id, paidAt)
	if err != nil {
		return fmt.Errorf("failed to complete payment: %w", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s *Storage) FailPayment(id string) error {
	query := `
		UPDATE registrations
		SET payment_status = 'failed'
		WHERE id = $1`

	result, err := s.DB.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to mark payment failed: %w", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// UpdateRegistrationStatus patches status and/or payment status; empty values
// leave the current column untouched.
func (s *Storage) UpdateRegistrationStatus(id, status, paymentStatus string) error {
	query := `
		UPDATE registrations
		SET status = COALESCE(NULLIF($2, ''), status),
			payment_status = COALESCE(NULLIF($3, ''), payment_status)
		WHERE id = $1`

	result, err := s.DB.Exec(query, id, status, paymentStatus)
	if err != nil {
		return fmt.Errorf("failed to update registration: %w", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}
