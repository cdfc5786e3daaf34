package getRegistration

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"dentalSummit/internal/lib/api/response"
	"dentalSummit/internal/lib/logger/sl"
	"dentalSummit/internal/models"
	"dentalSummit/internal/storage"
)

type RegistrationResponse struct {
	response.Response
	Registration *models.Registration `json:"registration"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationGetter
type RegistrationGetter interface {
	GetRegistrationByConfirmation(confirmationNumber string) (*models.Registration, error)
}

// New looks up a registration by its public confirmation number.
func New(log *slog.Logger, registrations RegistrationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.getRegistration.New"

		log = log.With(slog.String("op", op))

		confirmationNumber := chi.URLParam(r, "confirmationNumber")
		if confirmationNumber == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("confirmation number is required"))
			return
		}

		reg, err := registrations.GetRegistrationByConfirmation(confirmationNumber)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("registration not found"))
				return
			}

			log.Error("failed to get registration", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get registration"))
			return
		}

		render.JSON(w, r, RegistrationResponse{
			Response:     response.OK(),
			Registration: reg,
		})
	}
}
