package updateRegistration

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"dentalSummit/internal/lib/api/response"
	"dentalSummit/internal/lib/logger/sl"
	"dentalSummit/internal/storage"
)

type UpdateRequest struct {
	Status        string `json:"status" validate:"omitempty,oneof=pending confirmed"`
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=pending processing completed failed"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationUpdater
type RegistrationUpdater interface {
	UpdateRegistrationStatus(id, status, paymentStatus string) error
}

// New is the administrative patch: only status and payment status are
// mutable, everything else on a registration is immutable after creation.
func New(log *slog.Logger, registrations RegistrationUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.updateRegistration.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("registration id is required"))
			return
		}

		var req UpdateRequest

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

		if req.Status == "" && req.PaymentStatus == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("nothing to update"))
			return
		}

		if err = registrations.UpdateRegistrationStatus(id, req.Status, req.PaymentStatus); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("registration not found"))
				return
			}

			log.Error("failed to update registration", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update registration"))
			return
		}

		log.Info("registration updated",
			slog.String("id", id),
			slog.String("status", req.Status),
			slog.String("payment_status", req.PaymentStatus),
		)

		render.JSON(w, r, response.OK())
	}
}
