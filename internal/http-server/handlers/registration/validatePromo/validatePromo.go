package validatePromo

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

const (
	ReasonNotFound  = "not found"
	ReasonExhausted = "expired or exhausted"
)

type PromoRequest struct {
	PromoCode string `json:"promo_code" validate:"required"`
}

type PromoResponse struct {
	response.Response
	Valid         bool   `json:"valid"`
	Reason        string `json:"reason,omitempty"`
	DiscountType  string `json:"discount_type,omitempty"`
	DiscountValue int    `json:"discount_value,omitempty"`
	Discount      int    `json:"discount,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PromoGetter
type PromoGetter interface {
	GetPromoCode(code string) (*models.PromoCode, error)
}

// New checks a promo code without redeeming it.
func New(log *slog.Logger, promos PromoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.validatePromo.New"

		log = log.With(slog.String("op", op))

		var req PromoRequest

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

		promo, err := promos.GetPromoCode(req.PromoCode)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				render.JSON(w, r, PromoResponse{
					Response: response.OK(),
					Valid:    false,
					Reason:   ReasonNotFound,
				})
				return
			}

			log.Error("failed to look up promo code", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to validate promo code"))
			return
		}

		if !promo.Usable(time.Now()) {
			render.JSON(w, r, PromoResponse{
				Response: response.OK(),
				Valid:    false,
				Reason:   ReasonExhausted,
			})
			return
		}

		log.Info("promo code valid", slog.String("code", promo.Code))

		render.JSON(w, r, PromoResponse{
			Response:      response.OK(),
			Valid:         true,
			DiscountType:  promo.DiscountType,
			DiscountValue: promo.DiscountValue,
			Discount:      pricing.Discount(promo.DiscountType, promo.DiscountValue),
		})
	}
}
