package createRegistration

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"dentalSummit/internal/lib/api/response"
	"dentalSummit/internal/lib/logger/sl"
	"dentalSummit/internal/models"
	"dentalSummit/internal/pricing"
	"dentalSummit/internal/storage"
)

type RegistrationRequest struct {
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone"`
	Clinic        string `json:"clinic"`
	LicenseNumber string `json:"license_number"`

	AccommodationType string `json:"accommodation_type" validate:"omitempty,oneof=single double none"`
	FoodPreference    string `json:"food_preference" validate:"omitempty,oneof=standard vegetarian vegan none"`
	CertificateType   string `json:"certificate_type" validate:"omitempty,oneof=digital hardcopy"`
	MaterialsKit      bool   `json:"materials_kit"`
	NetworkingDinner  bool   `json:"networking_dinner"`

	PromoCode string `json:"promo_code"`
	EventID   string `json:"event_id"`
}

type RegistrationResponse struct {
	response.Response
	RegistrationID     string            `json:"registration_id"`
	ConfirmationNumber string            `json:"confirmation_number"`
	Pricing            pricing.Breakdown `json:"pricing"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationStore
type RegistrationStore interface {
	GetPromoCode(code string) (*models.PromoCode, error)
	RedeemPromoCode(code string) error
	GetEvent(id string) (*models.Event, error)
	GetUpcomingEvent() (*models.Event, error)
	SaveRegistration(reg *models.Registration) error
	IncrementRegistrations(eventID string) error
}

// New runs the registration workflow: validate, resolve the promo code,
// compute the pricing snapshot, resolve the target event, persist, and bump
// the event seat counter. An unusable promo code is rejected here too, same
// as on the preview endpoint.
func New(log *slog.Logger, store RegistrationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.createRegistration.New"

		log = log.With(slog.String("op", op))

		var req RegistrationRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		now := time.Now()

		discount := 0
		if req.PromoCode != "" {
			promo, err := store.GetPromoCode(req.PromoCode)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					render.Status(r, http.StatusBadRequest)
					render.JSON(w, r, response.Error("field PromoCode is not a known promo code"))
					return
				}

				log.Error("failed to look up promo code", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create registration"))
				return
			}

			if !promo.Usable(now) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("field PromoCode is expired or exhausted"))
				return
			}

			discount = pricing.Discount(promo.DiscountType, promo.DiscountValue)
		}

		breakdown := pricing.Calculate(pricing.Options{
			AccommodationType: req.AccommodationType,
			FoodPreference:    req.FoodPreference,
			CertificateType:   req.CertificateType,
			MaterialsKit:      req.MaterialsKit,
			NetworkingDinner:  req.NetworkingDinner,
		}, discount)

		// A registration without a resolvable event is allowed; it simply
		// stays unlinked.
		event := resolveEvent(log, store, req.EventID)
		if event != nil && event.IsFull {
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("event is full"))
			return
		}

		if req.PromoCode != "" {
			// Atomic with the usage-limit check; losing the race here means
			// another registration took the last redemption.
			if err = store.RedeemPromoCode(req.PromoCode); err != nil {
				if errors.Is(err, storage.ErrPromoExhausted) {
					render.Status(r, http.StatusConflict)
					render.JSON(w, r, response.Error("promo code expired or exhausted"))
					return
				}

				log.Error("failed to redeem promo code", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create registration"))
				return
			}
		}

		reg := &models.Registration{
			ID:                 uuid.NewString(),
			ConfirmationNumber: models.NewConfirmationNumber(now),
			FirstName:          req.FirstName,
			LastName:           req.LastName,
			Email:              req.Email,
			Phone:              req.Phone,
			Clinic:             req.Clinic,
			LicenseNumber:      req.LicenseNumber,
			AccommodationType:  req.AccommodationType,
			FoodPreference:     req.FoodPreference,
			CertificateType:    req.CertificateType,
			MaterialsKit:       req.MaterialsKit,
			NetworkingDinner:   req.NetworkingDinner,
			PromoCode:          req.PromoCode,
			Pricing:            breakdown,
			Status:             models.RegistrationStatusPending,
			PaymentStatus:      models.PaymentStatusPending,
			CreatedAt:          now,
		}
		if event != nil {
			reg.EventID = event.ID
		}

		if err = store.SaveRegistration(reg); err != nil {
			log.Error("failed to save registration", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create registration"))
			return
		}

		if event != nil {
			if err = store.IncrementRegistrations(event.ID); err != nil {
				if errors.Is(err, storage.ErrEventFull) {
					log.Warn("event filled up during registration", slog.String("event_id", event.ID))
					render.Status(r, http.StatusConflict)
					render.JSON(w, r, response.Error("event is full"))
					return
				}

				log.Error("failed to increment registrations", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create registration"))
				return
			}
		}

		log.Info("registration created",
			slog.String("id", reg.ID),
			slog.String("confirmation_number", reg.ConfirmationNumber),
			slog.Int("total", breakdown.Total),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, RegistrationResponse{
			Response:           response.OK(),
			RegistrationID:     reg.ID,
			ConfirmationNumber: reg.ConfirmationNumber,
			Pricing:            breakdown,
		})
	}
}

func resolveEvent(log *slog.Logger, store RegistrationStore, eventID string) *models.Event {
	if eventID != "" {
		event, err := store.GetEvent(eventID)
		if err != nil {
			log.Warn("requested event not resolvable", slog.String("event_id", eventID), sl.Err(err))
			return nil
		}
		return event
	}

	event, err := store.GetUpcomingEvent()
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Warn("failed to resolve upcoming event", sl.Err(err))
		}
		return nil
	}

	return event
}
