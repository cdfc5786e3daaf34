package calculatePricing

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"dentalSummit/internal/lib/api/response"
	"dentalSummit/internal/lib/logger/sl"
	"dentalSummit/internal/models"
	"dentalSummit/internal/pricing"
	"dentalSummit/internal/storage"
)

type PricingRequest struct {
	AccommodationType string `json:"accommodation_type" validate:"omitempty,oneof=single double none"`
	FoodPreference    string `json:"food_preference" validate:"omitempty,oneof=standard vegetarian vegan none"`
	CertificateType   string `json:"certificate_type" validate:"omitempty,oneof=digital hardcopy"`
	MaterialsKit      bool   `json:"materials_kit"`
	NetworkingDinner  bool   `json:"networking_dinner"`
	PromoCode         string `json:"promo_code"`
}

type PricingResponse struct {
	response.Response
	Pricing    pricing.Breakdown `json:"pricing"`
	PromoValid bool              `json:"promo_valid"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PromoGetter
type PromoGetter interface {
	GetPromoCode(code string) (*models.PromoCode, error)
}

// New previews the price for a set of options. An unusable promo code is
// reported explicitly via promo_valid and contributes no discount; the
// preview has no side effects.
func New(log *slog.Logger, promos PromoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.calculatePricing.New"

		log = log.With(slog.String("op", op))

		var req PricingRequest

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

		discount := 0
		promoValid := false

		if req.PromoCode != "" {
			promo, err := promos.GetPromoCode(req.PromoCode)
			switch {
			case err == nil && promo.Usable(time.Now()):
				discount = pricing.Discount(promo.DiscountType, promo.DiscountValue)
				promoValid = true
			case err != nil && !errors.Is(err, storage.ErrNotFound):
				log.Warn("failed to look up promo code", sl.Err(err))
			}
		}

		breakdown := pricing.Calculate(pricing.Options{
			AccommodationType: req.AccommodationType,
			FoodPreference:    req.FoodPreference,
			CertificateType:   req.CertificateType,
			MaterialsKit:      req.MaterialsKit,
			NetworkingDinner:  req.NetworkingDinner,
		}, discount)

		log.Info("pricing calculated",
			slog.Int("total", breakdown.Total),
			slog.Bool("promo_valid", promoValid),
		)

		render.JSON(w, r, PricingResponse{
			Response:   response.OK(),
			Pricing:    breakdown,
			PromoValid: promoValid,
		})
	}
}
