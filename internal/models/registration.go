package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"dentalSummit/internal/pricing"
)

const (
	RegistrationStatusPending   = "pending"
	RegistrationStatusConfirmed = "confirmed"
)

const (
	PaymentStatusPending    = "pending"
	PaymentStatusProcessing = "processing"
	PaymentStatusCompleted  = "completed"
	PaymentStatusFailed     = "failed"
)

type Registration struct {
	ID                 string `json:"id"`
	ConfirmationNumber string `json:"confirmation_number"`

	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Clinic        string `json:"clinic"`
	LicenseNumber string `json:"license_number"`

	AccommodationType string `json:"accommodation_type"`
	FoodPreference    string `json:"food_preference"`
	CertificateType   string `json:"certificate_type"`
	MaterialsKit      bool   `json:"materials_kit"`
	NetworkingDinner  bool   `json:"networking_dinner"`
	PromoCode         string `json:"promo_code,omitempty"`

	// Snapshot taken at creation, immutable afterwards.
	Pricing pricing.Breakdown `json:"pricing"`

	EventID         string    `json:"event_id,omitempty"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	PaymentIntentID string    `json:"payment_intent_id,omitempty"`
	PaidAt          time.Time `json:"paid_at,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewConfirmationNumber issues a human-readable code like DS-2026-4F7A2C,
// used for public lookup without exposing the record id.
func NewConfirmationNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("DS-%d-%s", now.Year(), suffix)
}
